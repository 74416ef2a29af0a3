package controller

import (
	"time"

	"room-booking-api/core/controller"
	"room-booking-api/core/errors"
	"room-booking-api/modules/calendarhint/dto"
	"room-booking-api/modules/calendarhint/service"

	"github.com/labstack/echo/v4"
)

type HintController struct {
	controller.BaseController
	HintService service.HintServiceInterface
}

func NewHintController(svc service.HintServiceInterface) *HintController {
	return &HintController{
		BaseController: controller.NewBaseController(),
		HintService:    svc,
	}
}

// GetHints handles GET /calendar-hints
// @Summary Calendar hints for a day
// @Description Advisory external events for a date; hints never block bookings
// @Tags CalendarHints
// @Security BearerAuth
// @Produce json
// @Param date query string false "YYYY-MM-DD, defaults to today"
// @Success 200 {object} dto.EventHintsResponse
// @Failure 400 {object} errors.AppError
// @Router /private/calendar-hints [get]
func (c *HintController) GetHints(ctx echo.Context) error {
	day := time.Now().UTC()
	if raw := ctx.QueryParam("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid date, expected YYYY-MM-DD")
		}
		day = parsed
	}

	events := c.HintService.FetchEvents(ctx.Request().Context(), day)
	return c.SuccessResponse(ctx, &dto.EventHintsResponse{
		Date:   day.Format("2006-01-02"),
		Events: events,
	}, "Success")
}
