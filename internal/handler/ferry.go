package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

var weekdays = map[string]bool{
	"monday": true, "tuesday": true, "wednesday": true, "thursday": true,
	"friday": true, "saturday": true, "sunday": true,
}

// normalizeClock parses a timetable time and normalizes it to HH:MM:SS.
// Both "07:30" and "07:30:00" are accepted.
func normalizeClock(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if t, err := time.Parse("15:04:05", s); err == nil {
		return t.Format("15:04:05"), true
	}
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Format("15:04:05"), true
	}
	return "", false
}

type ferryReq struct {
	RouteName     string   `json:"route_name"`
	DepartureTime string   `json:"departure_time"`
	ArrivalTime   string   `json:"arrival_time"`
	Duration      string   `json:"duration"`
	Price         string   `json:"price"`
	DaysOfWeek    []string `json:"days_of_week"`
	Notes         string   `json:"notes"`
	IsActive      *bool    `json:"is_active"`
	Order         *int     `json:"order"`
}

func (r *ferryReq) validate() string {
	r.RouteName = strings.TrimSpace(r.RouteName)
	r.Price = strings.TrimSpace(r.Price)
	if r.RouteName == "" {
		return "route_name is required"
	}
	dep, ok := normalizeClock(r.DepartureTime)
	if !ok {
		return "departure_time must be HH:MM or HH:MM:SS"
	}
	arr, ok := normalizeClock(r.ArrivalTime)
	if !ok {
		return "arrival_time must be HH:MM or HH:MM:SS"
	}
	r.DepartureTime, r.ArrivalTime = dep, arr
	if r.Price != "" && !pricePattern.MatchString(r.Price) {
		return "price must be a decimal amount"
	}
	for i, d := range r.DaysOfWeek {
		d = strings.ToLower(strings.TrimSpace(d))
		if !weekdays[d] {
			return "unknown day of week: " + r.DaysOfWeek[i]
		}
		r.DaysOfWeek[i] = d
	}
	return ""
}

func (r *ferryReq) apply(f *repository.FerrySchedule) {
	f.RouteName = r.RouteName
	f.DepartureTime = r.DepartureTime
	f.ArrivalTime = r.ArrivalTime
	f.Duration = r.Duration
	f.Price = r.Price
	f.DaysOfWeek = r.DaysOfWeek
	f.Notes = r.Notes
	f.IsActive = r.IsActive == nil || *r.IsActive
}

// ListFerrySchedules returns timetable entries in display order.
func (h *AdminHandler) ListFerrySchedules(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.Ferries.List(ctx, activeFilter(c))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetFerrySchedule returns one timetable entry.
func (h *AdminHandler) GetFerrySchedule(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	f, err := h.Ferries.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// CreateFerrySchedule inserts a timetable entry.
func (h *AdminHandler) CreateFerrySchedule(c echo.Context) error {
	var req ferryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	f := &repository.FerrySchedule{Position: orderOrAppend(req.Order)}
	req.apply(f)

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Ferries.Create(ctx, f); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "ferry-schedules", "created", f.ID, 1)
	return c.JSON(http.StatusCreated, f)
}

// UpdateFerrySchedule rewrites a timetable entry's content fields.
func (h *AdminHandler) UpdateFerrySchedule(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req ferryReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	f := &repository.FerrySchedule{ID: id}
	req.apply(f)

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Ferries.Update(ctx, f); err != nil {
		return writeRepoErr(c, err)
	}
	out, err := h.Ferries.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "ferry-schedules", "updated", id, 1)
	return c.JSON(http.StatusOK, out)
}

// DeleteFerrySchedule removes an entry and renumbers the rest.
func (h *AdminHandler) DeleteFerrySchedule(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Ferries.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "ferry-schedules", "deleted", id, 1)
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// MoveFerrySchedule swaps the entry with its neighbor in display order.
func (h *AdminHandler) MoveFerrySchedule(c echo.Context) error {
	return h.moveResource(c, "ferry-schedules", func(ec echo.Context, id uint64, dir ordering.Direction) (bool, error) {
		ctx, cancel := reqCtx(ec)
		defer cancel()
		return h.Ferries.Move(ctx, id, dir)
	})
}
