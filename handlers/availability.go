package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"timehuddle/models"
	"timehuddle/services/availability"
	"timehuddle/utils"
)

// AvailabilityHandler serves the read-side availability endpoints.
type AvailabilityHandler struct {
	Service availability.AvailabilityService
	Logger  *zap.Logger
}

func NewAvailabilityHandler(svc availability.AvailabilityService, logger *zap.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc, Logger: logger}
}

// GetScheduleAvailability handles GET /api/availability/:scheduleId.
// Query params: start, end (RFC3339, required), timeZone (IANA name, default
// UTC), bufferBefore/bufferAfter (minutes), and duration (minutes). When
// duration is set the response is a list of bookable slot start times
// instead of raw intervals.
//
// This is the presentation boundary: results are converted into the
// requested timezone here and nowhere else.
func (h *AvailabilityHandler) GetScheduleAvailability(c *gin.Context) {
	requestID := uuid.New().String()
	scheduleID := c.Param("scheduleId")

	rangeStart, rangeEnd, ok := parseRange(c)
	if !ok {
		return
	}

	tzName := c.DefaultQuery("timeZone", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid timeZone", tzName)
		return
	}

	bufferBefore := minutesQuery(c, "bufferBefore")
	bufferAfter := minutesQuery(c, "bufferAfter")

	intervals, err := h.Service.GetAvailability(c.Request.Context(), scheduleID, rangeStart, rangeEnd, bufferBefore, bufferAfter)
	if err != nil {
		h.renderComputeError(c, requestID, err)
		return
	}

	if duration := minutesQuery(c, "duration"); duration > 0 {
		starts := SlotStarts(intervals, duration, duration, time.Now())
		slots := make([]string, len(starts))
		for i, t := range starts {
			slots[i] = t.In(loc).Format(time.RFC3339)
		}
		c.JSON(http.StatusOK, gin.H{"timeZone": tzName, "slots": slots})
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeZone": tzName, "intervals": renderIntervals(intervals, loc)})
}

// GetUserAvailability handles GET /api/users/:userId/availability: the
// coalesced union of availability across every schedule the user owns.
// Same query params as the single-schedule endpoint, minus duration.
func (h *AvailabilityHandler) GetUserAvailability(c *gin.Context) {
	requestID := uuid.New().String()
	userID := c.Param("userId")

	rangeStart, rangeEnd, ok := parseRange(c)
	if !ok {
		return
	}

	tzName := c.DefaultQuery("timeZone", "UTC")
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid timeZone", tzName)
		return
	}

	intervals, err := h.Service.GetUserAvailability(c.Request.Context(), userID, rangeStart, rangeEnd, minutesQuery(c, "bufferBefore"), minutesQuery(c, "bufferAfter"))
	if err != nil {
		h.renderComputeError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeZone": tzName, "userId": userID, "intervals": renderIntervals(intervals, loc)})
}

// TeamAvailabilityRequest is the body of POST /api/availability/team.
type TeamAvailabilityRequest struct {
	ScheduleIDs  []string                `json:"scheduleIds" binding:"required,min=1"`
	Policy       models.SchedulingPolicy `json:"policy" binding:"required"`
	Start        time.Time               `json:"start" binding:"required"`
	End          time.Time               `json:"end" binding:"required"`
	TimeZone     string                  `json:"timeZone"`
	BufferBefore int                     `json:"bufferBeforeMinutes"`
	BufferAfter  int                     `json:"bufferAfterMinutes"`
}

// GetTeamAvailability handles POST /api/availability/team: merged
// availability across every listed schedule under the given policy.
func (h *AvailabilityHandler) GetTeamAvailability(c *gin.Context) {
	requestID := uuid.New().String()

	var input TeamAvailabilityRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	tzName := input.TimeZone
	if tzName == "" {
		tzName = "UTC"
	}
	loc, err := time.LoadLocation(tzName)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid timeZone", tzName)
		return
	}

	merged, err := h.Service.GetTeamAvailability(
		c.Request.Context(),
		input.ScheduleIDs,
		input.Policy,
		input.Start, input.End,
		time.Duration(input.BufferBefore)*time.Minute,
		time.Duration(input.BufferAfter)*time.Minute,
	)
	if err != nil {
		h.renderComputeError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"timeZone": tzName, "policy": input.Policy, "intervals": renderIntervals(merged, loc)})
}

// LuckyUserRequest is the body of POST /api/availability/lucky-user.
type LuckyUserRequest struct {
	EventTypeID  string             `json:"eventTypeId" binding:"required"`
	Hosts        []models.EventHost `json:"hosts" binding:"required,min=1"`
	LookbackDays int                `json:"lookbackDays"`
}

// PickLuckyUser handles POST /api/availability/lucky-user: previews which
// round-robin host would receive the next booking.
func (h *AvailabilityHandler) PickLuckyUser(c *gin.Context) {
	requestID := uuid.New().String()

	var input LuckyUserRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	lookbackDays := input.LookbackDays
	if lookbackDays <= 0 {
		lookbackDays = 30
	}

	lucky, err := h.Service.PickLuckyUser(c.Request.Context(), input.EventTypeID, input.Hosts, time.Duration(lookbackDays)*24*time.Hour)
	if err != nil {
		h.renderComputeError(c, requestID, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"luckyUser": lucky})
}

func (h *AvailabilityHandler) renderComputeError(c *gin.Context, requestID string, err error) {
	var confErr *availability.ConfigurationError
	if errors.As(err, &confErr) {
		utils.JSONError(c, http.StatusUnprocessableEntity, "schedule is misconfigured", confErr.Message)
		return
	}
	h.Logger.Error("availability computation failed",
		zap.String("requestID", requestID),
		zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "failed to compute availability", "")
}

func parseRange(c *gin.Context) (time.Time, time.Time, bool) {
	start, err := time.Parse(time.RFC3339, c.Query("start"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid start", "start must be RFC3339")
		return time.Time{}, time.Time{}, false
	}
	end, err := time.Parse(time.RFC3339, c.Query("end"))
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid end", "end must be RFC3339")
		return time.Time{}, time.Time{}, false
	}
	if !end.After(start) {
		utils.JSONError(c, http.StatusBadRequest, "invalid range", "end must be after start")
		return time.Time{}, time.Time{}, false
	}
	return start, end, true
}

func minutesQuery(c *gin.Context, name string) time.Duration {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes < 0 {
		return 0
	}
	return time.Duration(minutes) * time.Minute
}

func renderIntervals(intervals []models.TimeInterval, loc *time.Location) []gin.H {
	out := make([]gin.H, len(intervals))
	for i, iv := range intervals {
		out[i] = gin.H{
			"start": iv.Start.In(loc).Format(time.RFC3339),
			"end":   iv.End.In(loc).Format(time.RFC3339),
		}
	}
	return out
}
