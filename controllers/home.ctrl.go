package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HomeController : HomeController struct
type HomeController struct {
	html string
}

func NewHomeController(html string) *HomeController {
	return &HomeController{html: html}
}

// Home serves the browser timeline page.
func (controller *HomeController) Home(c echo.Context) error {
	return c.HTML(http.StatusOK, controller.html)
}
