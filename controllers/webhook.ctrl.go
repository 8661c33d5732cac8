package controllers

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gitfeed/gitfeed.go/common"
	"github.com/gitfeed/gitfeed.go/db/models"
	"github.com/gitfeed/gitfeed.go/lib/hooks"
	"github.com/gitfeed/gitfeed.go/lib/responses"
	"github.com/gitfeed/gitfeed.go/lib/security"
	"github.com/gitfeed/gitfeed.go/lib/service"
	"github.com/labstack/echo/v4"
)

type eventSaver interface {
	SaveEvent(ctx context.Context, event *models.Event) error
}

// WebhookController : Webhook receiver controller struct
type WebhookController struct {
	store  eventSaver
	secret string
}

func NewWebhookController(svc *service.GitfeedService) *WebhookController {
	return &WebhookController{
		store:  svc,
		secret: svc.Config.WebhookSecret,
	}
}

type WebhookReceiverResponse struct {
	Status string `json:"status"`
	Id     int64  `json:"id"`
}

type WebhookTestResponse struct {
	Status    string    `json:"status"`
	Message   string    `json:"message"`
	Timestamp time.Time `json:"timestamp"`
}

// Receiver handles one webhook delivery: verify the signature over the raw
// bytes, normalize the payload, store the event. The same byte slice feeds the
// verifier and the JSON decoder; re-serializing the parsed payload before
// verification would break the MAC on any key-order or whitespace change.
func (controller *WebhookController) Receiver(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		c.Logger().Errorf("Failed to read webhook body: %v", err)
		return c.JSON(responses.BadArgumentsError.HttpStatusCode, responses.BadArgumentsError)
	}

	signature := c.Request().Header.Get(common.GithubSignatureHeader)
	if err := security.VerifySignature(body, signature, controller.secret); err != nil {
		c.Logger().Infof("Rejected webhook delivery: %v", err)
		return c.JSON(responses.InvalidSignatureError.HttpStatusCode, responses.InvalidSignatureError)
	}

	eventType := c.Request().Header.Get(common.GithubEventHeader)
	event, err := hooks.Normalize(eventType, body, time.Now().UTC())
	if err != nil {
		c.Logger().Infof("Rejected webhook payload [event type: %s]: %v", eventType, err)
		resp := responses.BadWebhookPayloadError
		resp.Message = err.Error()
		return c.JSON(resp.HttpStatusCode, resp)
	}

	if err := controller.store.SaveEvent(c.Request().Context(), event); err != nil {
		c.Logger().Errorf("Failed to store event [request id: %s action: %s]: %v", event.RequestID, event.Action, err)
		sentry.CaptureException(err)
		// the source host retries deliveries on 5xx and the upsert is
		// idempotent, so this path is safe to retry
		return c.JSON(responses.StoreUnavailableError.HttpStatusCode, responses.StoreUnavailableError)
	}

	c.Logger().Infof("Stored event [request id: %s action: %s author: %s]", event.RequestID, event.Action, event.Author)
	return c.JSON(http.StatusCreated, &WebhookReceiverResponse{
		Status: "success",
		Id:     event.ID,
	})
}

// Test is a connectivity probe for webhook configuration.
func (controller *WebhookController) Test(c echo.Context) error {
	return c.JSON(http.StatusOK, &WebhookTestResponse{
		Status:    "ok",
		Message:   "Webhook endpoint is working",
		Timestamp: time.Now().UTC(),
	})
}
