package api

import (
	"net/http"
	"time"

	resdto "timeslot-api/internal/handler/dto/response"
	"timeslot-api/internal/handler/httperr"
	"timeslot-api/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type ScheduleHandler struct {
	scheduleQueries queries.ScheduleQueries
}

func NewScheduleHandler(scheduleQueries queries.ScheduleQueries) *ScheduleHandler {
	return &ScheduleHandler{scheduleQueries: scheduleQueries}
}

// @Summary Week schedule
// @Description Bookings, owner colors and occupancy stats for the Sunday-aligned week containing the given date
// @Tags schedule
// @Produce json
// @Param date query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param q query string false "Case-insensitive owner name filter"
// @Success 200 {object} resdto.WeekResponse
// @Failure 400 {object} map[string]string
// @Router /schedule/week [get]
func (h *ScheduleHandler) Week(c *gin.Context) {
	refDate := time.Now().UTC()
	if dateStr := c.Query("date"); dateStr != "" {
		parsed, err := time.ParseInLocation("2006-01-02", dateStr, time.UTC)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DD", nil)
			return
		}
		refDate = parsed
	}

	view, err := h.scheduleQueries.Week(c.Request.Context(), refDate, c.Query("q"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromWeekView(view))
}
