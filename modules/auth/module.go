package auth

import (
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/auth/controller"
	"room-booking-api/modules/auth/router"
	"room-booking-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

// Init registers the auth HTTP surface. The service is built by the
// server before the middleware, since the middleware uses it as its
// token validator.
func Init(e *echo.Echo, svc service.AuthServiceInterface, mw *middleware.Middleware) {
	ctrl := controller.NewAuthController(svc)
	router.RegisterRoutes(e, ctrl, mw)

	logger.Info("AuthModule:Init:Done")
}
