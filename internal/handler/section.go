package handler

// section.go serves the five kind-scoped list resources (contact methods,
// booking steps, benefits, pricing factors, content blocks). One set of
// handlers is parameterized by kind; the router binds each kind to its own
// URL prefix.

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

// sectionSlug maps a kind to the resource name used in routes and events.
// "content" is already a collective noun and stays singular.
func sectionSlug(kind repository.SectionKind) string {
	if kind == repository.KindContent {
		return "transfer-content"
	}
	return "transfer-" + strings.ReplaceAll(string(kind), "_", "-") + "s"
}

type sectionReq struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
	Value       string `json:"value"`
	IsActive    *bool  `json:"is_active"`
	Order       *int   `json:"order"`
}

func (r *sectionReq) validate() string {
	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		return "title is required"
	}
	if !icons.ValidIcon(r.Icon) {
		return "unknown icon"
	}
	return ""
}

// ListSections lists one kind's items in display order.
func (h *AdminHandler) ListSections(kind repository.SectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := reqCtx(c)
		defer cancel()
		out, err := h.Sections.List(ctx, kind, activeFilter(c))
		if err != nil {
			return writeRepoErr(c, err)
		}
		return c.JSON(http.StatusOK, out)
	}
}

// GetSection fetches one item; ids from other kinds 404.
func (h *AdminHandler) GetSection(kind repository.SectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		s, err := h.Sections.GetByID(ctx, kind, id)
		if err != nil {
			return writeRepoErr(c, err)
		}
		return c.JSON(http.StatusOK, s)
	}
}

// CreateSection inserts an item at the end of its kind's list unless an
// explicit order is given.
func (h *AdminHandler) CreateSection(kind repository.SectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req sectionReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
		if msg := req.validate(); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}

		s := &repository.SectionItem{
			Kind:        kind,
			Title:       req.Title,
			Description: req.Description,
			Icon:        req.Icon,
			Value:       req.Value,
			IsActive:    req.IsActive == nil || *req.IsActive,
			Position:    orderOrAppend(req.Order),
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.Sections.Create(ctx, s); err != nil {
			return writeRepoErr(c, err)
		}
		h.contentChanged(c, GroupTransport, sectionSlug(kind), "created", s.ID, 1)
		return c.JSON(http.StatusCreated, s)
	}
}

// UpdateSection rewrites an item's content fields within its kind.
func (h *AdminHandler) UpdateSection(kind repository.SectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		var req sectionReq
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
		}
		if msg := req.validate(); msg != "" {
			return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
		}

		s := &repository.SectionItem{
			ID:          id,
			Kind:        kind,
			Title:       req.Title,
			Description: req.Description,
			Icon:        req.Icon,
			Value:       req.Value,
			IsActive:    req.IsActive == nil || *req.IsActive,
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.Sections.Update(ctx, s); err != nil {
			return writeRepoErr(c, err)
		}
		out, err := h.Sections.GetByID(ctx, kind, id)
		if err != nil {
			return writeRepoErr(c, err)
		}
		h.contentChanged(c, GroupTransport, sectionSlug(kind), "updated", id, 1)
		return c.JSON(http.StatusOK, out)
	}
}

// DeleteSection removes an item and renumbers the rest of its kind.
func (h *AdminHandler) DeleteSection(kind repository.SectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, ok := parseID(c, "id")
		if !ok {
			return nil
		}
		ctx, cancel := reqCtx(c)
		defer cancel()
		if err := h.Sections.Delete(ctx, kind, id); err != nil {
			return writeRepoErr(c, err)
		}
		h.contentChanged(c, GroupTransport, sectionSlug(kind), "deleted", id, 1)
		return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
	}
}

// MoveSection swaps the item with its neighbor within its kind.
func (h *AdminHandler) MoveSection(kind repository.SectionKind) echo.HandlerFunc {
	return func(c echo.Context) error {
		return h.moveResource(c, sectionSlug(kind), func(ec echo.Context, id uint64, dir ordering.Direction) (bool, error) {
			ctx, cancel := reqCtx(ec)
			defer cancel()
			return h.Sections.Move(ctx, kind, id, dir)
		})
	}
}
