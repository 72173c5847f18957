package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

type atollReq struct {
	AtollName   string `json:"atoll_name"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Gradient    string `json:"gradient"`
	IsActive    *bool  `json:"is_active"`
	Order       *int   `json:"order"`
}

func (r *atollReq) validate() string {
	r.AtollName = strings.TrimSpace(r.AtollName)
	if r.AtollName == "" {
		return "atoll_name is required"
	}
	if !icons.ValidIcon(r.Icon) {
		return "unknown icon"
	}
	if !icons.ValidGradient(r.Gradient) {
		return "unknown gradient"
	}
	return ""
}

// ListAtolls returns all atolls with their resort rows attached.
func (h *AdminHandler) ListAtolls(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.Atolls.ListWithResorts(ctx, activeFilter(c))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetAtoll returns one atoll with its resorts.
func (h *AdminHandler) GetAtoll(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	a, err := h.Atolls.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, a)
}

// CreateAtoll inserts an atoll with an empty resort list.
func (h *AdminHandler) CreateAtoll(c echo.Context) error {
	var req atollReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	a := &repository.AtollTransfer{
		AtollName:   req.AtollName,
		Description: req.Description,
		Icon:        req.Icon,
		Gradient:    req.Gradient,
		IsActive:    req.IsActive == nil || *req.IsActive,
		Position:    orderOrAppend(req.Order),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Atolls.Create(ctx, a); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "atoll-transfers", "created", a.ID, 1)
	return c.JSON(http.StatusCreated, a)
}

// UpdateAtoll rewrites the atoll's content fields; its resort list is
// managed through the resort endpoints.
func (h *AdminHandler) UpdateAtoll(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req atollReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	a := &repository.AtollTransfer{
		ID:          id,
		AtollName:   req.AtollName,
		Description: req.Description,
		Icon:        req.Icon,
		Gradient:    req.Gradient,
		IsActive:    req.IsActive == nil || *req.IsActive,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Atolls.Update(ctx, a); err != nil {
		return writeRepoErr(c, err)
	}
	out, err := h.Atolls.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "atoll-transfers", "updated", id, 1)
	return c.JSON(http.StatusOK, out)
}

// DeleteAtoll removes the atoll and every resort row it owns.
func (h *AdminHandler) DeleteAtoll(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.Atolls.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "atoll-transfers", "deleted", id, 1)
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// MoveAtoll swaps the atoll with its neighbor in display order.
func (h *AdminHandler) MoveAtoll(c echo.Context) error {
	return h.moveResource(c, "atoll-transfers", func(ec echo.Context, id uint64, dir ordering.Direction) (bool, error) {
		ctx, cancel := reqCtx(ec)
		defer cancel()
		return h.Atolls.Move(ctx, id, dir)
	})
}
