package handler

// dataset.go serves the whole-dataset export and import endpoints. Export
// streams a dated JSON attachment; import validates the uploaded document
// fully before the transactional replace, so a rejected file changes
// nothing.

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/repository"
)

// maxImportBytes caps the uploaded dataset file.
const maxImportBytes = 20 << 20

// ExportDataset returns every transportation collection as one JSON
// download named after the current date.
func (h *AdminHandler) ExportDataset(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	ds, err := h.Dataset.Snapshot(ctx)
	if err != nil {
		return writeRepoErr(c, err)
	}

	name := fmt.Sprintf("transportation-export-%s.json", time.Now().UTC().Format("2006-01-02"))
	c.Response().Header().Set(echo.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.JSON(http.StatusOK, ds)
}

// ImportDataset replaces the whole transportation dataset from an uploaded
// JSON file (multipart field "file"). Validation runs over the entire
// document first; any invalid record rejects the import before a row is
// written. Responds with the number of imported records.
func (h *AdminHandler) ImportDataset(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file required"})
	}
	if fh.Size > maxImportBytes {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "file too large"})
	}
	src, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "unreadable upload"})
	}
	defer src.Close()

	var ds repository.TransportationDataset
	dec := json.NewDecoder(io.LimitReader(src, maxImportBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&ds); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid JSON: " + err.Error()})
	}
	if msg := validateDataset(&ds); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := reqCtx(c)
	defer cancel()
	n, err := h.Dataset.Replace(ctx, &ds)
	if err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transportation", "replaced", 0, n)
	return c.JSON(http.StatusOK, echo.Map{"imported_count": n})
}

// validateDataset applies the same write-path rules the per-resource
// endpoints enforce, so an imported file can't smuggle in records a manual
// edit would have rejected.
func validateDataset(ds *repository.TransportationDataset) string {
	for i, t := range ds.TransferTypes {
		if strings.TrimSpace(t.Name) == "" {
			return fmt.Sprintf("transfer_types[%d]: name is required", i)
		}
		if !icons.ValidIcon(t.Icon) {
			return fmt.Sprintf("transfer_types[%d]: unknown icon %q", i, t.Icon)
		}
		if !icons.ValidGradient(t.Gradient) {
			return fmt.Sprintf("transfer_types[%d]: unknown gradient %q", i, t.Gradient)
		}
	}
	for i, a := range ds.AtollTransfers {
		if strings.TrimSpace(a.AtollName) == "" {
			return fmt.Sprintf("atoll_transfers[%d]: atoll_name is required", i)
		}
		if !icons.ValidIcon(a.Icon) {
			return fmt.Sprintf("atoll_transfers[%d]: unknown icon %q", i, a.Icon)
		}
		if !icons.ValidGradient(a.Gradient) {
			return fmt.Sprintf("atoll_transfers[%d]: unknown gradient %q", i, a.Gradient)
		}
		for j, rt := range a.Resorts {
			if strings.TrimSpace(rt.ResortName) == "" {
				return fmt.Sprintf("atoll_transfers[%d].resorts[%d]: resort_name is required", i, j)
			}
			if !pricePattern.MatchString(rt.Price) {
				return fmt.Sprintf("atoll_transfers[%d].resorts[%d]: invalid price %q", i, j, rt.Price)
			}
			if !icons.ValidTransferType(rt.TransferType) {
				return fmt.Sprintf("atoll_transfers[%d].resorts[%d]: unknown transfer_type %q", i, j, rt.TransferType)
			}
		}
	}
	for i, f := range ds.FAQs {
		if strings.TrimSpace(f.Question) == "" || strings.TrimSpace(f.Answer) == "" {
			return fmt.Sprintf("faqs[%d]: question and answer are required", i)
		}
		if !icons.ValidIcon(f.Icon) {
			return fmt.Sprintf("faqs[%d]: unknown icon %q", i, f.Icon)
		}
	}

	sections := []struct {
		key   string
		items []*repository.SectionItem
	}{
		{"contact_methods", ds.ContactMethods},
		{"booking_steps", ds.BookingSteps},
		{"benefits", ds.Benefits},
		{"pricing_factors", ds.PricingFactors},
		{"content", ds.Content},
	}
	for _, sl := range sections {
		for i, s := range sl.items {
			if strings.TrimSpace(s.Title) == "" {
				return fmt.Sprintf("%s[%d]: title is required", sl.key, i)
			}
			if !icons.ValidIcon(s.Icon) {
				return fmt.Sprintf("%s[%d]: unknown icon %q", sl.key, i, s.Icon)
			}
		}
	}

	for i, f := range ds.FerrySchedules {
		if strings.TrimSpace(f.RouteName) == "" {
			return fmt.Sprintf("ferry_schedules[%d]: route_name is required", i)
		}
		dep, ok := normalizeClock(f.DepartureTime)
		if !ok {
			return fmt.Sprintf("ferry_schedules[%d]: invalid departure_time %q", i, f.DepartureTime)
		}
		arr, ok := normalizeClock(f.ArrivalTime)
		if !ok {
			return fmt.Sprintf("ferry_schedules[%d]: invalid arrival_time %q", i, f.ArrivalTime)
		}
		f.DepartureTime, f.ArrivalTime = dep, arr
		if f.Price != "" && !pricePattern.MatchString(f.Price) {
			return fmt.Sprintf("ferry_schedules[%d]: invalid price %q", i, f.Price)
		}
		for _, d := range f.DaysOfWeek {
			if !weekdays[strings.ToLower(strings.TrimSpace(d))] {
				return fmt.Sprintf("ferry_schedules[%d]: unknown day of week %q", i, d)
			}
		}
	}
	return ""
}
