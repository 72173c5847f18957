package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

// transferTypeReq is the write payload for transfer type cards. Order is a
// pointer so "absent" (append at the end) is distinguishable from zero.
type transferTypeReq struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Gradient     string   `json:"gradient"`
	Features     []string `json:"features"`
	PricingRange string   `json:"pricing_range"`
	BestFor      string   `json:"best_for"`
	Pros         []string `json:"pros"`
	Cons         []string `json:"cons"`
	IsActive     *bool    `json:"is_active"`
	Order        *int     `json:"order"`
}

func (r *transferTypeReq) validate() string {
	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		return "name is required"
	}
	if !icons.ValidIcon(r.Icon) {
		return "unknown icon"
	}
	if !icons.ValidGradient(r.Gradient) {
		return "unknown gradient"
	}
	return ""
}

func (r *transferTypeReq) apply(t *repository.TransferType) {
	t.Name = r.Name
	t.Description = r.Description
	t.Icon = r.Icon
	t.Gradient = r.Gradient
	t.Features = r.Features
	t.PricingRange = r.PricingRange
	t.BestFor = r.BestFor
	t.Pros = r.Pros
	t.Cons = r.Cons
	t.IsActive = r.IsActive == nil || *r.IsActive
}

// ListTransferTypes returns all transfer types in display order. ?active=
// narrows on the active flag.
func (h *AdminHandler) ListTransferTypes(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.Types.List(ctx, activeFilter(c))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetTransferType returns one transfer type by id.
func (h *AdminHandler) GetTransferType(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	t, err := h.Types.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, t)
}

// CreateTransferType inserts a card; without an explicit order it appends.
func (h *AdminHandler) CreateTransferType(c echo.Context) error {
	var req transferTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	t := &repository.TransferType{Position: orderOrAppend(req.Order)}
	req.apply(t)

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Types.Create(ctx, t); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transfer-types", "created", t.ID, 1)
	return c.JSON(http.StatusCreated, t)
}

// UpdateTransferType rewrites a card's content fields. Ordering changes go
// through Move, not update.
func (h *AdminHandler) UpdateTransferType(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req transferTypeReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	t := &repository.TransferType{ID: id}
	req.apply(t)

	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Types.Update(ctx, t); err != nil {
		return writeRepoErr(c, err)
	}
	out, err := h.Types.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transfer-types", "updated", id, 1)
	return c.JSON(http.StatusOK, out)
}

// DeleteTransferType removes a card; surviving cards are renumbered.
func (h *AdminHandler) DeleteTransferType(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Types.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transfer-types", "deleted", id, 1)
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// MoveTransferType swaps the card with its neighbor. A boundary no-op
// returns moved=false with a 200 so the dashboard can disable arrows.
func (h *AdminHandler) MoveTransferType(c echo.Context) error {
	return h.moveResource(c, "transfer-types", func(ec echo.Context, id uint64, dir ordering.Direction) (bool, error) {
		ctx, cancel := reqCtx(ec)
		defer cancel()
		return h.Types.Move(ctx, id, dir)
	})
}

type moveReq struct {
	Direction string `json:"direction"`
}

// moveResource implements the shared POST /:id/move shape for every ordered
// collection.
func (h *AdminHandler) moveResource(c echo.Context, resource string, move func(echo.Context, uint64, ordering.Direction) (bool, error)) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req moveReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	dir, ok := ordering.ParseDirection(req.Direction)
	if !ok {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "direction must be up or down"})
	}
	moved, err := move(c, id, dir)
	if err != nil {
		return writeRepoErr(c, err)
	}
	if moved {
		h.contentChanged(c, GroupTransport, resource, "moved", id, 1)
	}
	return c.JSON(http.StatusOK, echo.Map{"moved": moved})
}
