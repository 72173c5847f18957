package handler

// common.go bundles the admin handler's dependencies and the helpers shared
// by every resource handler: id parsing, error-to-status mapping, the
// ?active= query filter and the post-mutation fan-out (event publish plus
// cache invalidation).

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/atollway/travel-content-api/internal/config"
	"github.com/atollway/travel-content-api/internal/middleware"
	"github.com/atollway/travel-content-api/internal/queue"
	"github.com/atollway/travel-content-api/internal/repository"
	qp "github.com/atollway/travel-content-api/internal/service"
)

// Cache groups used by the response cache middleware. Mutating any
// transportation resource invalidates "transport"; homepage writes
// invalidate "homepage".
const (
	GroupTransport = "transport"
	GroupHomepage  = "homepage"
)

// AdminHandler serves the authenticated content-management endpoints. Every
// store field is an interface so tests can substitute in-memory fakes.
type AdminHandler struct {
	Types    TransferTypeStore
	Atolls   AtollStore
	Resorts  ResortStore
	FAQs     FAQStore
	Sections SectionStore
	Ferries  FerryStore
	Homepage HomepageStore
	Dataset  DatasetStore
	Cache    *middleware.Invalidator
	Cfg      config.Config

	// Publish overrides the event publisher; nil means RabbitMQ.
	Publish func(context.Context, queue.ContentChangedEvent) error
}

// reqTimeout bounds every database round trip from the handlers.
const reqTimeout = 5 * time.Second

func reqCtx(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), reqTimeout)
}

// parseID reads a numeric path parameter. The boolean is false when the
// parameter is not a positive integer; the 400 response is already written.
func parseID(c echo.Context, name string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		_ = c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
		return 0, false
	}
	return id, true
}

// activeFilter interprets the optional ?active= query parameter. Nil means
// no filtering; the admin list endpoints and the public aggregate share it.
func activeFilter(c echo.Context) *bool {
	switch c.QueryParam("active") {
	case "true", "1":
		v := true
		return &v
	case "false", "0":
		v := false
		return &v
	}
	return nil
}

// actorID extracts the authenticated user's id from the JWT claims stored
// by the auth middleware. Claims decode numbers as float64.
func actorID(c echo.Context) uint64 {
	switch v := c.Get("user_id").(type) {
	case float64:
		return uint64(v)
	case uint64:
		return v
	case int64:
		return uint64(v)
	case string:
		n, _ := strconv.ParseUint(v, 10, 64)
		return n
	}
	return 0
}

// writeRepoErr maps repository sentinels onto HTTP statuses. Unknown errors
// become a 500 and are logged; clients never see internal detail.
func writeRepoErr(c echo.Context, err error) error {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		return c.JSON(http.StatusNotFound, echo.Map{"error": "not found"})
	case errors.Is(err, repository.ErrConflict):
		return c.JSON(http.StatusConflict, echo.Map{"error": "conflict"})
	case errors.Is(err, repository.ErrForbidden):
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	case errors.Is(err, context.DeadlineExceeded):
		return c.JSON(http.StatusGatewayTimeout, echo.Map{"error": "timeout"})
	}
	log.Printf("handler: %s %s failed: %v", c.Request().Method, c.Path(), err)
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": "internal error"})
}

// contentChanged runs the post-mutation fan-out: it drops the cached
// responses of the affected group and publishes a content.changed event.
// The publish happens in the background with its own deadline so a slow or
// absent broker never delays the admin response.
func (h *AdminHandler) contentChanged(c echo.Context, group, resource, action string, recordID uint64, count int) {
	if h.Cache != nil {
		h.Cache.Invalidate(c.Request().Context(), group)
	}
	ev := queue.ContentChangedEvent{
		Resource:   resource,
		Action:     action,
		RecordID:   recordID,
		ActorID:    actorID(c),
		Count:      count,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	publish := h.Publish
	if publish == nil {
		publish = qp.PublishContentChanged
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), reqTimeout)
		defer cancel()
		_ = publish(ctx, ev)
	}()
}

// orderOrAppend converts the optional "order" request field into the
// repository convention: a missing value means append (-1).
func orderOrAppend(order *int) int {
	if order == nil || *order < 0 {
		return -1
	}
	return *order
}
