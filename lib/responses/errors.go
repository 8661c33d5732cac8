package responses

import (
	"net/http"

	"github.com/getsentry/sentry-go"
	sentryecho "github.com/getsentry/sentry-go/echo"
	"github.com/labstack/echo/v4"
)

type ErrorResponse struct {
	Error          bool   `json:"error"`
	Code           int    `json:"code"`
	Message        string `json:"message"`
	HttpStatusCode int    `json:"-"`
}

var GeneralServerError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "Something went wrong. Please try again later",
	HttpStatusCode: 500,
}

var BadArgumentsError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "Bad arguments",
	HttpStatusCode: 400,
}

var InvalidSignatureError = ErrorResponse{
	Error:          true,
	Code:           1,
	Message:        "invalid webhook signature",
	HttpStatusCode: 401,
}

var BadWebhookPayloadError = ErrorResponse{
	Error:          true,
	Code:           8,
	Message:        "unrecognized or incomplete webhook payload",
	HttpStatusCode: 400,
}

var StoreUnavailableError = ErrorResponse{
	Error:          true,
	Code:           6,
	Message:        "event store unavailable. Safe to retry the delivery",
	HttpStatusCode: 500,
}

func HTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	c.Logger().Error(err)
	if hub := sentryecho.GetHubFromContext(c); hub != nil && isErrAllowedForSentry(err) {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetExtra("RequestID", c.Response().Header().Get(echo.HeaderXRequestID))
			hub.CaptureException(err)
		})
	}
	if he, ok := err.(*echo.HTTPError); ok {
		c.JSON(he.Code, he.Message)
		return
	}
	c.JSON(http.StatusInternalServerError, GeneralServerError)
}

// Signature rejections are expected noise (anyone can POST garbage at a
// public webhook endpoint), so they are kept out of Sentry.
func isErrAllowedForSentry(err error) bool {
	he, ok := err.(*echo.HTTPError)
	if !ok {
		return true
	}
	return he.Code != http.StatusUnauthorized
}
