package booking

import (
	"fmt"

	"room-booking-api/core/config"
	"room-booking-api/core/database"
	"room-booking-api/core/logger"
	"room-booking-api/core/middleware"
	"room-booking-api/core/queue"
	"room-booking-api/modules/booking/controller"
	"room-booking-api/modules/booking/repository"
	"room-booking-api/modules/booking/router"
	"room-booking-api/modules/booking/service"
	roomservice "room-booking-api/modules/room/service"

	"github.com/labstack/echo/v4"
)

// Init wires the booking module: ledger repository, transaction
// coordinator, lifecycle sweeper, HTTP surface. The room service is
// injected so bookings resolve rooms through the registry rather than
// reaching into its tables.
func Init(
	e *echo.Echo,
	db database.IDatabase,
	rooms roomservice.RoomServiceInterface,
	idem service.IdempotencyStore,
	notifier service.Notifier,
	q *queue.Queue,
	mw *middleware.Middleware,
) {
	cfg := config.Get()

	repo := repository.NewBookingRepository(db)
	svc := service.NewBookingService(repo, rooms, idem, notifier, cfg.Booking)
	ctrl := controller.NewBookingController(svc)
	router.RegisterRoutes(e, ctrl, mw)

	lifecycle := service.NewLifecycleService(repo)
	q.HandleFunc(service.TaskSweepCompleted, lifecycle.HandleSweepTask)
	spec := fmt.Sprintf("@every %dm", cfg.Booking.SweepIntervalMinutes)
	if err := q.RegisterPeriodic(spec, service.NewSweepTask()); err != nil {
		logger.Error("BookingModule:Init:RegisterPeriodic", "error", err)
	}

	logger.Info("BookingModule:Init:Done")
}
