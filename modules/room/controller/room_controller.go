package controller

import (
	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/room/dto"
	"room-booking-api/modules/room/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RoomController handles room registry HTTP requests
type RoomController struct {
	controller.BaseController
	RoomService service.RoomServiceInterface
}

func NewRoomController(svc service.RoomServiceInterface) *RoomController {
	return &RoomController{
		BaseController: controller.NewBaseController(),
		RoomService:    svc,
	}
}

// ListRooms handles GET /rooms
// @Summary List rooms
// @Description List all rooms with capacity, price and amenities
// @Tags Room
// @Produce json
// @Success 200 {array} entity.Room
// @Router /rooms [get]
func (c *RoomController) ListRooms(ctx echo.Context) error {
	rooms, appErr := c.RoomService.ListRooms(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, rooms, "Success")
}

// GetRoom handles GET /rooms/:id
// @Summary Get room
// @Description Get a room by ID
// @Tags Room
// @Produce json
// @Param id path string true "Room ID"
// @Success 200 {object} entity.Room
// @Failure 404 {object} errors.AppError
// @Router /rooms/{id} [get]
func (c *RoomController) GetRoom(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	room, appErr := c.RoomService.GetRoom(ctx.Request().Context(), roomID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, room, "Success")
}

// GetRoomBySlug handles GET /rooms/slug/:slug
// @Summary Get room by slug
// @Tags Room
// @Produce json
// @Param slug path string true "Room slug"
// @Success 200 {object} entity.Room
// @Failure 404 {object} errors.AppError
// @Router /rooms/slug/{slug} [get]
func (c *RoomController) GetRoomBySlug(ctx echo.Context) error {
	room, appErr := c.RoomService.GetRoomBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, room, "Success")
}

// CreateRoom handles POST /rooms (manager only)
// @Summary Create room
// @Tags Room
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateRoomRequest true "Room data"
// @Success 201 {object} entity.Room
// @Failure 400 {object} errors.AppError
// @Failure 403 {object} errors.AppError
// @Router /private/rooms [post]
func (c *RoomController) CreateRoom(ctx echo.Context) error {
	var req dto.CreateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	room, appErr := c.RoomService.CreateRoom(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, room, "Room created successfully")
}

// UpdateRoom handles PUT /rooms/:id (manager only)
// @Summary Update room
// @Tags Room
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Room ID"
// @Param request body dto.UpdateRoomRequest true "Fields to update"
// @Success 200 {object} entity.Room
// @Failure 404 {object} errors.AppError
// @Router /private/rooms/{id} [put]
func (c *RoomController) UpdateRoom(ctx echo.Context) error {
	roomID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid room ID")
	}

	var req dto.UpdateRoomRequest
	if err := ctx.Bind(&req); err != nil {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid request body")
	}

	room, appErr := c.RoomService.UpdateRoom(ctx.Request().Context(), roomID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, room, "Room updated successfully")
}
