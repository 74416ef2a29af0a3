package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/booking/controller"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, c *controller.BookingController, mw *middleware.Middleware) {
	private := e.Group("/api/v1/private/bookings", mw.AuthMiddleware())

	private.POST("", c.CreateBooking)
	private.POST("/check-availability", c.CheckAvailability)
	private.GET("/my-bookings", c.ListMyBookings)
	private.GET("/room/:roomId", c.ListRoomBookings)
	private.GET("/:id", c.GetBooking)
	private.PUT("/:id", c.RescheduleBooking)
	private.POST("/:id/cancel", c.CancelBooking)
}
