package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/calendarhint/controller"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, c *controller.HintController, mw *middleware.Middleware) {
	private := e.Group("/api/v1/private/calendar-hints", mw.AuthMiddleware())
	private.GET("", c.GetHints)
}
