package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atollway/travel-content-api/internal/queue"
	"github.com/atollway/travel-content-api/internal/repository"
)

func newTestHandler() *AdminHandler {
	resorts := &fakeResortStore{}
	return &AdminHandler{
		Types:    &fakeTypeStore{},
		Atolls:   &fakeAtollStore{resorts: resorts},
		Resorts:  resorts,
		FAQs:     &fakeFAQStore{},
		Sections: &fakeSectionStore{},
		Ferries:  &fakeFerryStore{},
		Homepage: &fakeHomepageStore{},
		Dataset:  &fakeDatasetStore{},
		Publish:  func(context.Context, queue.ContentChangedEvent) error { return nil },
	}
}

// do runs a handler against a synthetic request and returns the recorder.
func do(t *testing.T, h echo.HandlerFunc, method, target, body string, params map[string]string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	for k, v := range params {
		c.SetParamNames(k)
		c.SetParamValues(v)
	}
	require.NoError(t, h(c))
	return rec
}

func TestCreateTransferTypeAppends(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h.CreateTransferType, http.MethodPost, "/api/transfer-types",
		`{"name":"Speedboat","icon":"speedboat","gradient":"ocean"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var first repository.TransferType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, uint64(1), first.ID)
	assert.Equal(t, 0, first.Position)
	assert.True(t, first.IsActive, "is_active defaults to true")

	rec = do(t, h.CreateTransferType, http.MethodPost, "/api/transfer-types",
		`{"name":"Seaplane","icon":"seaplane","gradient":"sunset"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var second repository.TransferType
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, 1, second.Position, "second create appends after the first")
}

func TestCreateTransferTypeRejectsUnknownIcon(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h.CreateTransferType, http.MethodPost, "/api/transfer-types",
		`{"name":"Rocket","icon":"rocket"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h.CreateTransferType, http.MethodPost, "/api/transfer-types",
		`{"name":"Boat","gradient":"neon"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h.CreateTransferType, http.MethodPost, "/api/transfer-types",
		`{"name":"   "}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteTransferTypeRenumbers(t *testing.T) {
	h := newTestHandler()
	store := h.Types.(*fakeTypeStore)
	for _, name := range []string{"A", "B", "C"} {
		do(t, h.CreateTransferType, http.MethodPost, "/", `{"name":"`+name+`"}`, nil)
	}

	rec := do(t, h.DeleteTransferType, http.MethodDelete, "/", "", map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)

	require.Len(t, store.items, 2)
	assert.Equal(t, 0, store.items[0].Position)
	assert.Equal(t, 1, store.items[1].Position)
	assert.Equal(t, "A", store.items[0].Name)
	assert.Equal(t, "C", store.items[1].Name)
}

func TestDeleteTransferTypeMissing(t *testing.T) {
	h := newTestHandler()
	rec := do(t, h.DeleteTransferType, http.MethodDelete, "/", "", map[string]string{"id": "9"})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMoveTransferType(t *testing.T) {
	h := newTestHandler()
	store := h.Types.(*fakeTypeStore)
	for _, name := range []string{"A", "B"} {
		do(t, h.CreateTransferType, http.MethodPost, "/", `{"name":"`+name+`"}`, nil)
	}

	rec := do(t, h.MoveTransferType, http.MethodPost, "/", `{"direction":"up"}`,
		map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp map[string]bool
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp["moved"])
	assert.Equal(t, "B", store.items[0].Name)

	// already at the top: boundary no-op
	rec = do(t, h.MoveTransferType, http.MethodPost, "/", `{"direction":"up"}`,
		map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp["moved"])

	rec = do(t, h.MoveTransferType, http.MethodPost, "/", `{"direction":"diagonal"}`,
		map[string]string{"id": "2"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSectionKindScoping(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h.CreateSection(repository.KindContactMethod), http.MethodPost, "/",
		`{"title":"Call us","icon":"phone","value":"+960 123-4567"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var item repository.SectionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &item))

	// the same id is invisible through another kind's endpoints
	rec = do(t, h.GetSection(repository.KindBookingStep), http.MethodGet, "/", "",
		map[string]string{"id": "1"})
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h.GetSection(repository.KindContactMethod), http.MethodGet, "/", "",
		map[string]string{"id": "1"})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSectionPositionsIndependentPerKind(t *testing.T) {
	h := newTestHandler()

	do(t, h.CreateSection(repository.KindBenefit), http.MethodPost, "/", `{"title":"Fast"}`, nil)
	rec := do(t, h.CreateSection(repository.KindBookingStep), http.MethodPost, "/", `{"title":"Choose resort"}`, nil)

	var step repository.SectionItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &step))
	assert.Equal(t, 0, step.Position, "first booking step starts its own sequence")
}

func TestBulkUpdateValidatesRating(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h.BulkUpdate, http.MethodPost, "/",
		`{"testimonials":[{"name":"Aisha","rating":6,"comment":"great"}]}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, h.BulkUpdate, http.MethodPost, "/",
		`{"testimonials":[{"name":"Aisha","rating":5,"comment":"great","is_active":true}],
		  "hero":{"title":"Welcome","is_active":true}}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var doc repository.HomepageDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &doc))
	require.NotNil(t, doc.Hero)
	assert.Equal(t, "Welcome", doc.Hero.Title)
	require.Len(t, doc.Testimonials, 1)
	assert.Equal(t, 0, doc.Testimonials[0].Position)
}

func TestDashboardSeesInactiveRowsPublicDoesNot(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h.BulkUpdate, http.MethodPost, "/",
		`{"features":[
			{"title":"Active","icon":"check","is_active":true},
			{"title":"Hidden","icon":"check","is_active":false}
		]}`, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h.DashboardData, http.MethodGet, "/", "", nil)
	var dash repository.HomepageDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	assert.Len(t, dash.Features, 2)

	rec = do(t, h.PublicHomepage, http.MethodGet, "/", "", nil)
	var pub repository.HomepageDocument
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &pub))
	assert.Len(t, pub.Features, 1)
	assert.Equal(t, "Active", pub.Features[0].Title)
}

func TestTransportationAggregate(t *testing.T) {
	h := newTestHandler()
	h.Types.(*fakeTypeStore).items = []*repository.TransferType{
		{ID: 1, Name: "Speedboat", IsActive: true},
		{ID: 2, Name: "Old ferry", IsActive: false, Position: 1},
	}
	h.Atolls.(*fakeAtollStore).items = []*repository.AtollTransfer{
		{ID: 1, AtollName: "North Malé", IsActive: true,
			Resorts: []*repository.ResortTransfer{{ID: 1, ResortName: "Reef Resort", Price: "150.00", IsActive: true}}},
	}
	h.FAQs.(*fakeFAQStore).items = []*repository.TransferFAQ{
		{ID: 1, Question: "How long?", Category: "timing", IsActive: true},
	}
	h.Ferries.(*fakeFerryStore).items = []*repository.FerrySchedule{
		{ID: 1, RouteName: "Malé – Maafushi", IsActive: true},
	}

	rec := do(t, h.Transportation, http.MethodGet, "/api/transportation?active=true", "", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	for _, key := range []string{"transfer_types", "atoll_transfers", "faqs", "contact_methods",
		"booking_steps", "benefits", "pricing_factors", "content", "ferry_schedules"} {
		assert.Contains(t, page, key)
	}

	var types []*repository.TransferType
	require.NoError(t, json.Unmarshal(page["transfer_types"], &types))
	require.Len(t, types, 1, "inactive entries filtered out")
	assert.Equal(t, "Speedboat", types[0].Name)
}

func TestListFAQsCategoryFilter(t *testing.T) {
	h := newTestHandler()
	h.FAQs.(*fakeFAQStore).items = []*repository.TransferFAQ{
		{ID: 1, Question: "a", Category: "timing", IsActive: true},
		{ID: 2, Question: "b", Category: "pricing", IsActive: true},
	}

	rec := do(t, h.ListFAQs, http.MethodGet, "/api/transfer-faqs?category=pricing", "", nil)
	var out []*repository.TransferFAQ
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "pricing", out[0].Category)

	// "all" means unfiltered
	rec = do(t, h.ListFAQs, http.MethodGet, "/api/transfer-faqs?category=all", "", nil)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.Len(t, out, 2)
}

func TestParseIDRejectsGarbage(t *testing.T) {
	h := newTestHandler()
	rec := do(t, h.GetTransferType, http.MethodGet, "/", "", map[string]string{"id": "abc"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	rec = do(t, h.GetTransferType, http.MethodGet, "/", "", map[string]string{"id": "0"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
