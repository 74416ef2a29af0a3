package router

import (
	"room-booking-api/core/middleware"
	"room-booking-api/modules/room/controller"

	"github.com/labstack/echo/v4"
)

type RoomRouter struct {
	Controller *controller.RoomController
}

func NewRoomRouter(ctrl *controller.RoomController) *RoomRouter {
	return &RoomRouter{Controller: ctrl}
}

func (r *RoomRouter) Setup(e *echo.Echo, mw *middleware.Middleware) {
	v1 := e.Group("/api/v1")

	rooms := v1.Group("/rooms")
	rooms.GET("", r.Controller.ListRooms)
	rooms.GET("/slug/:slug", r.Controller.GetRoomBySlug)
	rooms.GET("/:id", r.Controller.GetRoom)

	priv := v1.Group("/private/rooms", mw.AuthMiddleware(), mw.ManagerMiddleware())
	priv.POST("", r.Controller.CreateRoom)
	priv.PUT("/:id", r.Controller.UpdateRoom)
}
