package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/notification/controller"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, c *controller.NotificationController, mw *middleware.Middleware) {
	private := e.Group("/api/v1/private/notifications", mw.AuthMiddleware())
	private.GET("", c.ListMy)
	private.GET("/unread-count", c.CountUnread)
	private.PUT("/mark-read", c.MarkAsRead)
	private.PUT("/mark-all-read", c.MarkAllAsRead)
}
