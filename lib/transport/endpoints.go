package transport

import (
	"github.com/gitfeed/gitfeed.go/controllers"
	"github.com/gitfeed/gitfeed.go/lib/service"
	"github.com/labstack/echo/v4"
)

func RegisterEndpoints(svc *service.GitfeedService, e *echo.Echo, homeHTML string, logMw echo.MiddlewareFunc) {
	webhookCtrl := controllers.NewWebhookController(svc)
	eventsCtrl := controllers.NewEventsController(svc)

	e.POST("/webhook/receiver", webhookCtrl.Receiver, logMw)
	e.GET("/webhook/test", webhookCtrl.Test)

	if svc.Config.EventsCacheTTL > 0 {
		cacheClient := CreateCacheClient(svc.Config.EventsCacheTTL)
		e.GET("/api/events", eventsCtrl.ListEvents, cacheClient.Middleware())
	} else {
		e.GET("/api/events", eventsCtrl.ListEvents)
	}

	e.GET("/", controllers.NewHomeController(homeHTML).Home)
}
