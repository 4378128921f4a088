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

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	scheduleQueries queries.ScheduleQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, scheduleQueries queries.ScheduleQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		scheduleQueries: scheduleQueries,
	}
}

// @Summary List bookings
// @Description Full snapshot of all bookings across all weeks
// @Tags bookings
// @Produce json
// @Success 200 {array} resdto.BookingResponse
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	views, err := h.scheduleQueries.ListAll(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	response := make([]*resdto.BookingResponse, len(views))
	for i, v := range views {
		response[i] = resdto.FromBookingView(v)
	}
	c.JSON(http.StatusOK, response)
}

// @Summary Create or update a booking
// @Description Books the addressed slot, or updates it when the actor owns it (admins may also rename the owner)
// @Tags bookings
// @Accept json
// @Produce json
// @Param X-Actor-Name header string true "Self-declared actor name"
// @Param X-Admin-Secret header string false "Admin secret"
// @Param request body reqdto.UpsertBookingRequest true "Slot address and notes"
// @Success 200 {object} resdto.BookingResponse
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings [put]
func (h *BookingHandler) UpsertBooking(c *gin.Context) {
	var req reqdto.UpsertBookingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", nil)
		return
	}

	params, err := req.ToParams()
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format", nil)
		return
	}

	actor := middleware.GetActor(c)
	result, err := h.bookingCommands.Upsert(c.Request.Context(), actor, params)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidSlot):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Slot is outside the bookable schedule", nil)
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to modify this booking", nil)
		case errors.Is(err, commands.ErrConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Slot was modified concurrently, reload and retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	status := http.StatusOK
	if result.Created {
		status = http.StatusCreated
	}
	c.JSON(status, resdto.FromBooking(result.Record))
}

// @Summary Delete a booking
// @Description Deletes the booking in the addressed slot (owner or admin)
// @Tags bookings
// @Produce json
// @Param X-Actor-Name header string true "Self-declared actor name"
// @Param X-Admin-Secret header string false "Admin secret"
// @Param slotId path string true "Canonical slot id"
// @Success 204
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{slotId} [delete]
func (h *BookingHandler) DeleteBooking(c *gin.Context) {
	slotID := c.Param("slotId")

	actor := middleware.GetActor(c)
	if err := h.bookingCommands.Delete(c.Request.Context(), actor, slotID); err != nil {
		switch {
		case errors.Is(err, commands.ErrMalformedSlotID):
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Malformed slot id", nil)
		case errors.Is(err, commands.ErrNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
		case errors.Is(err, commands.ErrPermissionDenied):
			httperr.AbortWithError(c, http.StatusForbidden, err, "Not allowed to delete this booking", nil)
		case errors.Is(err, commands.ErrConflict):
			httperr.AbortWithError(c, http.StatusConflict, err, "Booking was modified concurrently, reload and retry", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.Status(http.StatusNoContent)
}
