package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/icons"
	"github.com/atollway/travel-content-api/internal/ordering"
	"github.com/atollway/travel-content-api/internal/repository"
)

type faqReq struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
	Category string `json:"category"`
	Icon     string `json:"icon"`
	IsActive *bool  `json:"is_active"`
	Order    *int   `json:"order"`
}

func (r *faqReq) validate() string {
	r.Question = strings.TrimSpace(r.Question)
	r.Answer = strings.TrimSpace(r.Answer)
	r.Category = strings.TrimSpace(r.Category)
	if r.Question == "" {
		return "question is required"
	}
	if r.Answer == "" {
		return "answer is required"
	}
	if !icons.ValidIcon(r.Icon) {
		return "unknown icon"
	}
	return ""
}

// ListFAQs returns FAQs in display order. ?category= narrows to one
// category ("all" and an empty value mean unfiltered); ?active= narrows on
// the active flag.
func (h *AdminHandler) ListFAQs(c echo.Context) error {
	ctx, cancel := reqCtx(c)
	defer cancel()
	out, err := h.FAQs.List(ctx, c.QueryParam("category"), activeFilter(c))
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

// GetFAQ returns one FAQ by id.
func (h *AdminHandler) GetFAQ(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	f, err := h.FAQs.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	return c.JSON(http.StatusOK, f)
}

// CreateFAQ inserts a question/answer pair.
func (h *AdminHandler) CreateFAQ(c echo.Context) error {
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	f := &repository.TransferFAQ{
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Icon:     req.Icon,
		IsActive: req.IsActive == nil || *req.IsActive,
		Position: orderOrAppend(req.Order),
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.FAQs.Create(ctx, f); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transfer-faqs", "created", f.ID, 1)
	return c.JSON(http.StatusCreated, f)
}

// UpdateFAQ rewrites a FAQ's content fields.
func (h *AdminHandler) UpdateFAQ(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	var req faqReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	f := &repository.TransferFAQ{
		ID:       id,
		Question: req.Question,
		Answer:   req.Answer,
		Category: req.Category,
		Icon:     req.Icon,
		IsActive: req.IsActive == nil || *req.IsActive,
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.FAQs.Update(ctx, f); err != nil {
		return writeRepoErr(c, err)
	}
	out, err := h.FAQs.GetByID(ctx, id)
	if err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transfer-faqs", "updated", id, 1)
	return c.JSON(http.StatusOK, out)
}

// DeleteFAQ removes a FAQ and renumbers the rest.
func (h *AdminHandler) DeleteFAQ(c echo.Context) error {
	id, ok := parseID(c, "id")
	if !ok {
		return nil
	}
	ctx, cancel := reqCtx(c)
	defer cancel()
	if err := h.FAQs.Delete(ctx, id); err != nil {
		return writeRepoErr(c, err)
	}
	h.contentChanged(c, GroupTransport, "transfer-faqs", "deleted", id, 1)
	return c.JSON(http.StatusOK, echo.Map{"message": "deleted"})
}

// MoveFAQ swaps the FAQ with its neighbor in display order.
func (h *AdminHandler) MoveFAQ(c echo.Context) error {
	return h.moveResource(c, "transfer-faqs", func(ec echo.Context, id uint64, dir ordering.Direction) (bool, error) {
		ctx, cancel := reqCtx(ec)
		defer cancel()
		return h.FAQs.Move(ctx, id, dir)
	})
}
