package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gitfeed/gitfeed.go/common"
	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func getEvents(t *testing.T, controller *EventsController, query string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/events"+query, nil)
	rec := httptest.NewRecorder()
	assert.NoError(t, controller.ListEvents(e.NewContext(req, rec)))
	return rec
}

func TestListEventsReturnsStoredEvents(t *testing.T) {
	store := &fakeStore{events: []models.Event{
		{
			ID:        1,
			RequestID: "abc123",
			Author:    "alice",
			Action:    common.ActionPush,
			ToBranch:  "main",
			Timestamp: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		},
		{
			ID:         2,
			RequestID:  "42",
			Author:     "carol",
			Action:     common.ActionPullRequest,
			FromBranch: "feature-x",
			ToBranch:   "main",
			Timestamp:  time.Date(2025, 1, 2, 0, 0, 0, 0, time.UTC),
		},
	}}
	controller := &EventsController{store: store, defaultLimit: 10}

	rec := getEvents(t, controller, "")
	assert.Equal(t, http.StatusOK, rec.Code)

	response := []Event{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response, 2)
	assert.Equal(t, "alice", response[0].Author)
	assert.Equal(t, common.ActionPush, response[0].Action)
	assert.Equal(t, "feature-x", response[1].FromBranch)
}

func TestListEventsEmptyStoreReturnsEmptyArray(t *testing.T) {
	controller := &EventsController{store: &fakeStore{}, defaultLimit: 10}

	rec := getEvents(t, controller, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	// [] and not null, the UI depends on it
	assert.Equal(t, "[]", rec.Body.String()[:2])
}

func TestListEventsStoreFailureIsNotAnEmptyFeed(t *testing.T) {
	controller := &EventsController{store: &fakeStore{listErr: errors.New("timeout")}, defaultLimit: 10}

	rec := getEvents(t, controller, "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "[]")
}

func TestListEventsLimitParam(t *testing.T) {
	store := &fakeStore{events: []models.Event{{ID: 1}, {ID: 2}, {ID: 3}}}
	controller := &EventsController{store: store, defaultLimit: 10}

	rec := getEvents(t, controller, "?limit=2")
	response := []Event{}
	assert.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
	assert.Len(t, response, 2)
}

func TestListEventsRejectsBadParams(t *testing.T) {
	controller := &EventsController{store: &fakeStore{}, defaultLimit: 10}

	assert.Equal(t, http.StatusBadRequest, getEvents(t, controller, "?limit=zero").Code)
	assert.Equal(t, http.StatusBadRequest, getEvents(t, controller, "?limit=-1").Code)
	assert.Equal(t, http.StatusBadRequest, getEvents(t, controller, "?order=sideways").Code)
}
