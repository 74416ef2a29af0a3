package controller

import (
	"room-booking-api/core/constants"
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/core/utils"
	"room-booking-api/modules/booking/dto"
	"room-booking-api/modules/booking/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// BookingController handles booking HTTP requests
type BookingController struct {
	controller.BaseController
	BookingService service.BookingServiceInterface
}

func NewBookingController(svc service.BookingServiceInterface) *BookingController {
	return &BookingController{
		BaseController: controller.NewBaseController(),
		BookingService: svc,
	}
}

// claimsFromContext extracts the authenticated caller from JWT context
func (c *BookingController) claimsFromContext(ctx echo.Context) (*utils.TokenClaims, error) {
	tokenData := ctx.Get(constants.ContextTokenData)
	if tokenData == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "User not authenticated", nil)
	}
	claims, ok := tokenData.(*utils.TokenClaims)
	if !ok {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid token data", nil)
	}
	return claims, nil
}

// CreateBooking handles POST /bookings
// @Summary Create booking
// @Description Book a room for a time slot; fails with ROOM_UNAVAILABLE on conflict
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param Idempotency-Key header string false "Caller-supplied retry deduplication key"
// @Param request body dto.CreateBookingRequest true "Booking request"
// @Success 201 {object} dto.BookingResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/bookings [post]
func (c *BookingController) CreateBooking(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}
	req.IdempotencyKey = ctx.Request().Header.Get("Idempotency-Key")

	result, appErr := c.BookingService.Create(ctx.Request().Context(), claims, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, result, "Booking created successfully")
}

// CheckAvailability handles POST /bookings/check-availability
// @Summary Check room availability
// @Description Report whether a room is free for the requested interval
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AvailabilityCheckRequest true "Slot to check"
// @Success 200 {object} dto.AvailabilityCheckResponse
// @Failure 400 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/bookings/check-availability [post]
func (c *BookingController) CheckAvailability(ctx echo.Context) error {
	var req dto.AvailabilityCheckRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.CheckAvailability(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// GetBooking handles GET /bookings/:id
// @Summary Get booking
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Router /private/bookings/{id} [get]
func (c *BookingController) GetBooking(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	result, appErr := c.BookingService.GetBooking(ctx.Request().Context(), claims, bookingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// RescheduleBooking handles PUT /bookings/:id
// @Summary Reschedule booking
// @Description Move a booking to a new interval, excluding itself from the conflict check
// @Tags Booking
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RescheduleBookingRequest true "New interval"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/bookings/{id} [put]
func (c *BookingController) RescheduleBooking(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	var req dto.RescheduleBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	result, appErr := c.BookingService.Reschedule(ctx.Request().Context(), claims, bookingID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking rescheduled successfully")
}

// CancelBooking handles POST /bookings/:id/cancel
// @Summary Cancel booking
// @Description Cancel a booking; idempotent on already-cancelled bookings
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} dto.BookingResponse
// @Failure 403 {object} errors.AppError
// @Failure 404 {object} errors.AppError
// @Failure 409 {object} errors.AppError
// @Router /private/bookings/{id}/cancel [post]
func (c *BookingController) CancelBooking(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	bookingID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid booking ID")
	}

	result, appErr := c.BookingService.Cancel(ctx.Request().Context(), claims, bookingID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Booking cancelled successfully")
}

// ListRoomBookings handles GET /bookings/room/:roomId
// @Summary List room bookings
// @Description List bookings for a room in a date range (default today + 3 weeks)
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param roomId path string true "Room ID"
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param status query string false "upcoming | completed | cancelled"
// @Success 200 {array} dto.BookingResponse
// @Failure 404 {object} errors.AppError
// @Router /private/bookings/room/{roomId} [get]
func (c *BookingController) ListRoomBookings(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("roomId"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	var req dto.ListBookingsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid query parameters")
	}

	result, appErr := c.BookingService.ListRoomBookings(ctx.Request().Context(), roomID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}

// ListMyBookings handles GET /bookings/my-bookings
// @Summary List my bookings
// @Description List bookings where the caller is requester or participant
// @Tags Booking
// @Security BearerAuth
// @Produce json
// @Param start_date query string false "YYYY-MM-DD"
// @Param end_date query string false "YYYY-MM-DD"
// @Param status query string false "upcoming | completed | cancelled"
// @Success 200 {array} dto.BookingResponse
// @Router /private/bookings/my-bookings [get]
func (c *BookingController) ListMyBookings(ctx echo.Context) error {
	claims, err := c.claimsFromContext(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "User not authenticated")
	}

	var req dto.ListBookingsRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid query parameters")
	}

	result, appErr := c.BookingService.ListMyBookings(ctx.Request().Context(), claims, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, result, "Success")
}
