package handler

import (
	"net/http"
	"regexp"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

// pricePattern accepts a plain decimal with up to two fraction digits.
// Prices never pass through a float; the string goes straight into the
// DECIMAL column.
var pricePattern = regexp.MustCompile(`^\d{1,10}(\.\d{1,2})?$`)

type resortReq struct {
	AtollID      uint64 `json:"atoll"`
	ResortName   string `json:"resort_name"`
	Price        string `json:"price"`
	Duration     string `json:"duration"`
	TransferType string `json:"transfer_type"`
	IsActive     *bool  `json:"is_active"`
	Order        *int   `json:"order"`
}

func (r *resortReq) validate() string {
	r.ResortName = strings.TrimSpace(r.ResortName)
	r.Price = strings.TrimSpace(r.Price)
	if r.ResortName == "" {
		return "resort_name is required"
	}
	if !pricePattern.MatchString(r.Price) {
		return "price must be a decimal amount"
	}
	if !icons.ValidTransferType(r.TransferType) {
		return "unknown transfer_type"
	}
	return ""
}

// ListResorts returns every pricing row grouped by atoll in display order.
// The nested view lives on the atoll endpoints; this flat list backs the
// admin table.
func (h *AdminHandler) ListResorts(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.Resorts.List(ctx, activeFilter(c))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetResort returns one resort pricing row.
func (h *AdminHandler) GetResort(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	rt, err := h.Resorts.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, rt)
}

// CreateResort inserts a pricing row under its atoll. A missing parent
// atoll is a 404.
func (h *AdminHandler) CreateResort(c echo.Context) error {
	var req resortReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.AtollID == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "atoll is required"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	rt := &repository.ResortTransfer{
		AtollID:      req.AtollID,
		ResortName:   req.ResortName,
		Price:        req.Price,
		Duration:     req.Duration,
		TransferType: req.TransferType,
		IsActive:     req.IsActive == nil || *req.IsActive,
		Position:     orderOrAppend(req.Order),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Resorts.Create(ctx, rt); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "resort-transfers", "created", rt.ID, 1)
	return c.JSON(http.StatusCreated, rt)
}

// UpdateResort rewrites a pricing row. A row stays with its atoll for its
// whole lifetime, so any atoll field in the body is ignored.
func (h *AdminHandler) UpdateResort(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req resortReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	rt := &repository.ResortTransfer{
		ID:           id,
		ResortName:   req.ResortName,
		Price:        req.Price,
		Duration:     req.Duration,
		TransferType: req.TransferType,
		IsActive:     req.IsActive == nil || *req.IsActive,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Resorts.Update(ctx, rt); err != nil {
		return writeRepoErr(c, err)
	}
	out, err := h.Resorts.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "resort-transfers", "updated", id, 1)
	return c.JSON(http.StatusOK, out)
}

// DeleteResort removes a pricing row; siblings in the same atoll are
// renumbered.
func (h *AdminHandler) DeleteResort(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Resorts.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "resort-transfers", "deleted", id, 1)
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// MoveResort swaps the row with its neighbor inside the owning atoll.
func (h *AdminHandler) MoveResort(c echo.Context) error {
	return h.moveResource(c, "resort-transfers", func(ec echo.Context, id uint64, dir ordering.Direction) (bool, error) {
		ctx, cancel := reqCtx(ec)
		defer cancel()
		return h.Resorts.Move(ctx, id, dir)
	})
}
