package handler

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atollway/travel-content-api/internal/repository"
)

func TestNormalizeClock(t *testing.T) {
	got, ok := normalizeClock("07:30")
	require.True(t, ok)
	assert.Equal(t, "07:30:00", got)

	got, ok = normalizeClock("23:59:59")
	require.True(t, ok)
	assert.Equal(t, "23:59:59", got)

	for _, bad := range []string{"25:00", "7:30pm", "noon", ""} {
		_, ok := normalizeClock(bad)
		assert.False(t, ok, bad)
	}
}

func TestFerryValidation(t *testing.T) {
	var req ferryReq

	req = ferryReq{RouteName: "Malé – Maafushi", DepartureTime: "07:30", ArrivalTime: "09:00",
		DaysOfWeek: []string{"Monday", "friday"}}
	assert.Empty(t, req.validate())
	assert.Equal(t, "07:30:00", req.DepartureTime)
	assert.Equal(t, []string{"monday", "friday"}, req.DaysOfWeek, "weekday names are normalized")

	req = ferryReq{RouteName: "", DepartureTime: "07:30", ArrivalTime: "09:00"}
	assert.NotEmpty(t, req.validate())

	req = ferryReq{RouteName: "r", DepartureTime: "07:30", ArrivalTime: "09:00",
		DaysOfWeek: []string{"someday"}}
	assert.NotEmpty(t, req.validate())

	req = ferryReq{RouteName: "r", DepartureTime: "07:30", ArrivalTime: "09:00", Price: "12.345"}
	assert.NotEmpty(t, req.validate(), "more than two fraction digits rejected")
}

func TestCreateFerrySchedule(t *testing.T) {
	h := newTestHandler()

	rec := do(t, h.CreateFerrySchedule, http.MethodPost, "/api/ferry-schedules",
		`{"route_name":"Malé – Maafushi","departure_time":"15:00","arrival_time":"16:30","price":"3.00","days_of_week":["monday"]}`, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var f repository.FerrySchedule
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &f))
	assert.Equal(t, "15:00:00", f.DepartureTime)
	assert.Equal(t, 0, f.Position)
}
