package api

import (
	"errors"
	"net/http"

	reqdto "timeslot-api/internal/handler/dto/request"
	resdto "timeslot-api/internal/handler/dto/response"
	"timeslot-api/internal/handler/httperr"
	"timeslot-api/internal/handler/middleware"
	"timeslot-api/internal/usecase/commands"
	"timeslot-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	bookingCommands commands.BookingCommands
	scheduleQueries queries.ScheduleQueries
}

func NewAdminHandler(bookingCommands commands.BookingCommands, scheduleQueries queries.ScheduleQueries) *AdminHandler {
	return &AdminHandler{
		bookingCommands: bookingCommands,
		scheduleQueries: scheduleQueries,
	}
}

// @Summary Clear all bookings
// @Description Deletes every booking, best effort per record
// @Tags admin
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Success 200 {object} resdto.ClearAllResponse
// @Failure 403 {object} map[string]string
// @Router /admin/clear [post]
func (h *AdminHandler) ClearBookings(c *gin.Context) {
	actor := middleware.GetActor(c)
	result, err := h.bookingCommands.ClearAll(c.Request.Context(), actor)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin access required", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromClearAllResult(result))
}

// @Summary Usage statistics
// @Description Booking totals for the admin dashboard
// @Tags admin
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Success 200 {object} resdto.UsageResponse
// @Failure 403 {object} map[string]string
// @Router /admin/stats [get]
func (h *AdminHandler) UsageStats(c *gin.Context) {
	view, err := h.scheduleQueries.Usage(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromUsageView(view))
}

// @Summary Update schedule hours
// @Description Changes the bookable hour range at runtime
// @Tags admin
// @Accept json
// @Produce json
// @Param X-Admin-Secret header string true "Admin secret"
// @Param request body reqdto.UpdateSettingsRequest true "New hour range"
// @Success 200 {object} resdto.SettingsResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /admin/settings [put]
func (h *AdminHandler) UpdateSettings(c *gin.Context) {
	var req reqdto.UpdateSettingsRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	actor := middleware.GetActor(c)
	snap, err := h.bookingCommands.UpdateScheduleHours(c.Request.Context(), actor, *req.StartHour, *req.EndHour)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Admin access required", nil)
		case errors.Is(err, commands.ErrInvalidSettings):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Start hour must be before end hour, within 0-24", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromScheduleSnapshot(snap))
}
