package notification

import (
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/core/queue"
	"room-booking-api/modules/notification/controller"
	"room-booking-api/modules/notification/repository"
	"room-booking-api/modules/notification/router"
	"room-booking-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

// Init wires the notification module and returns a notifier the
// booking module uses to publish lifecycle events.
func Init(e *echo.Echo, db database.IDatabase, q *queue.Queue, mw *middleware.Middleware) *service.BookingNotifier {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)
	router.RegisterRoutes(e, ctrl, mw)

	q.HandleFunc(service.TaskBookingEvent, svc.HandleBookingEventTask)

	logger.Info("NotificationModule:Init:Done")
	return service.NewBookingNotifier(q.Client())
}
