package calendarhint

import (
	"room-booking-api/core/config"
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/modules/calendarhint/controller"
	"room-booking-api/modules/calendarhint/router"
	"room-booking-api/modules/calendarhint/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Echo, mw *middleware.Middleware) {
	svc := service.NewHintService(config.Get().CalendarFeed)
	ctrl := controller.NewHintController(svc)
	router.RegisterRoutes(e, ctrl, mw)

	logger.Info("CalendarHintModule:Init:Done")
}
