package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, c *controller.AuthController, mw *middleware.Middleware) {
	public := e.Group("/api/v1/auth")
	public.POST("/register", c.Register)
	public.POST("/login", c.Login)

	private := e.Group("/api/v1/private/auth", mw.AuthMiddleware())
	private.POST("/logout", c.Logout)
	private.GET("/me", c.Me)
}
