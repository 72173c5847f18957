package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atollway/travel-content-api/internal/repository"
)

func seedAtolls(h *AdminHandler, names ...string) {
	store := h.Atolls.(*fakeAtollStore)
	for i, name := range names {
		store.items = append(store.items, &repository.AtollTransfer{
			ID:        uint64(i + 1),
			AtollName: name,
			IsActive:  true,
			Position:  i,
		})
	}
}

func TestCreateResortAppendsWithinAtoll(t *testing.T) {
	h := newTestHandler()
	seedAtolls(h, "North Malé", "Baa")

	rec := do(t, h.CreateResort, http.MethodPost, "/api/resort-transfers",
		`{"atoll":1,"resort_name":"Kurumba","price":"45.00","transfer_type":"speedboat"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var first repository.ResortTransfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &first))
	assert.Equal(t, 0, first.Position)
	assert.True(t, first.IsActive, "is_active defaults to true")

	rec = do(t, h.CreateResort, http.MethodPost, "/api/resort-transfers",
		`{"atoll":1,"resort_name":"Baros","price":"120","transfer_type":"speedboat"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var second repository.ResortTransfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &second))
	assert.Equal(t, 1, second.Position, "second row appends within the same atoll")

	rec = do(t, h.CreateResort, http.MethodPost, "/api/resort-transfers",
		`{"atoll":2,"resort_name":"Soneva Fushi","price":"450.50","transfer_type":"seaplane"}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var other repository.ResortTransfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &other))
	assert.Equal(t, 0, other.Position, "positions are scoped per atoll")
}

func TestCreateResortValidation(t *testing.T) {
	h := newTestHandler()
	seedAtolls(h, "North Malé")

	rec := do(t, h.CreateResort, http.MethodPost, "/",
		`{"resort_name":"Kurumba","price":"45.00","transfer_type":"speedboat"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "atoll is required")

	rec = do(t, h.CreateResort, http.MethodPost, "/",
		`{"atoll":1,"resort_name":"Kurumba","price":"45.000","transfer_type":"speedboat"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "price allows two fraction digits at most")

	rec = do(t, h.CreateResort, http.MethodPost, "/",
		`{"atoll":1,"resort_name":"Kurumba","price":"45.00","transfer_type":"submarine"}`, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code, "unknown transfer type")
}

func TestDeleteResortRenumbersSiblings(t *testing.T) {
	h := newTestHandler()
	seedAtolls(h, "North Malé")
	store := h.Resorts.(*fakeResortStore)
	for _, name := range []string{"Kurumba", "Baros", "Bandos"} {
		do(t, h.CreateResort, http.MethodPost, "/",
			`{"atoll":1,"resort_name":"`+name+`","price":"45.00","transfer_type":"speedboat"}`, nil)
	}

	rec := do(t, h.DeleteResort, http.MethodDelete, "/", "", map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)

	left := store.byAtoll(1)
	require.Len(t, left, 2)
	assert.Equal(t, "Kurumba", left[0].ResortName)
	assert.Equal(t, 0, left[0].Position)
	assert.Equal(t, "Bandos", left[1].ResortName)
	assert.Equal(t, 1, left[1].Position)
}

func TestDeleteLastResortLeavesAtollEmpty(t *testing.T) {
	h := newTestHandler()
	seedAtolls(h, "North Malé")
	do(t, h.CreateResort, http.MethodPost, "/",
		`{"atoll":1,"resort_name":"Kurumba","price":"45.00","transfer_type":"speedboat"}`, nil)

	rec := do(t, h.DeleteResort, http.MethodDelete, "/", "", map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(t, h.GetAtoll, http.MethodGet, "/", "", map[string]string{"id": "1"})
	require.Equal(t, http.StatusOK, rec.Code)

	var atoll repository.AtollTransfer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &atoll))
	assert.Empty(t, atoll.Resorts)
	assert.Contains(t, rec.Body.String(), `"resorts":[]`,
		"the re-fetched atoll reports an empty list, not null")
}

func TestMoveResortStaysWithinAtoll(t *testing.T) {
	h := newTestHandler()
	seedAtolls(h, "North Malé", "Baa")
	store := h.Resorts.(*fakeResortStore)
	for _, body := range []string{
		`{"atoll":1,"resort_name":"Kurumba","price":"45.00","transfer_type":"speedboat"}`,
		`{"atoll":1,"resort_name":"Baros","price":"120.00","transfer_type":"speedboat"}`,
		`{"atoll":2,"resort_name":"Soneva Fushi","price":"450.00","transfer_type":"seaplane"}`,
	} {
		do(t, h.CreateResort, http.MethodPost, "/", body, nil)
	}

	rec := do(t, h.MoveResort, http.MethodPost, "/", `{"direction":"up"}`,
		map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"moved":true`)

	left := store.byAtoll(1)
	assert.Equal(t, "Baros", left[0].ResortName)
	assert.Equal(t, "Kurumba", left[1].ResortName)
	assert.Equal(t, 0, store.byAtoll(2)[0].Position, "the other atoll is untouched")

	rec = do(t, h.MoveResort, http.MethodPost, "/", `{"direction":"up"}`,
		map[string]string{"id": "2"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"moved":false`, "top row cannot move further up")
}
