package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/gitfeed/gitfeed.go/lib/responses"
	"github.com/gitfeed/gitfeed.go/lib/service"
	"github.com/labstack/echo/v4"
)

type eventLister interface {
	ListEvents(ctx context.Context, limit int, order string) ([]models.Event, error)
}

// EventsController : Read projection controller struct
type EventsController struct {
	store        eventLister
	defaultLimit int
}

func NewEventsController(svc *service.GitfeedService) *EventsController {
	return &EventsController{
		store:        svc,
		defaultLimit: svc.Config.EventListLimit,
	}
}

type Event struct {
	ID         int64     `json:"id"`
	RequestID  string    `json:"request_id"`
	Author     string    `json:"author"`
	Action     string    `json:"action"`
	FromBranch string    `json:"from_branch"`
	ToBranch   string    `json:"to_branch"`
	Timestamp  time.Time `json:"timestamp"`
}

// ListEvents returns stored events ordered by timestamp, chronological by
// default (?order=desc for newest first, ?limit=N to override the page size).
// An empty store yields [] and a store failure yields a 500, the two are never
// conflated.
func (controller *EventsController) ListEvents(c echo.Context) error {
	limit := controller.defaultLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			return c.JSON(responses.BadArgumentsError.HttpStatusCode, responses.BadArgumentsError)
		}
		limit = parsed
	}

	order := service.OrderAsc
	if raw := c.QueryParam("order"); raw != "" {
		if raw != service.OrderAsc && raw != service.OrderDesc {
			return c.JSON(responses.BadArgumentsError.HttpStatusCode, responses.BadArgumentsError)
		}
		order = raw
	}

	events, err := controller.store.ListEvents(c.Request().Context(), limit, order)
	if err != nil {
		c.Logger().Errorf("Failed to list events: %v", err)
		return c.JSON(responses.StoreUnavailableError.HttpStatusCode, responses.StoreUnavailableError)
	}

	response := make([]Event, len(events))
	for i, event := range events {
		response[i] = Event{
			ID:         event.ID,
			RequestID:  event.RequestID,
			Author:     event.Author,
			Action:     event.Action,
			FromBranch: event.FromBranch,
			ToBranch:   event.ToBranch,
			Timestamp:  event.Timestamp,
		}
	}
	return c.JSON(http.StatusOK, response)
}
