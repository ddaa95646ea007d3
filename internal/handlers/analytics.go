package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/auth"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/clock"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/dto"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	svc *service.AnalyticsService
}

func NewAnalyticsHandler(svc *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{svc: svc}
}

// Get godoc
// @Summary      Completion analytics for the last N days
// @Description  days is clamped to [1,365]; default 7. Read-only, safe to retry.
// @Tags         analytics
// @Produce      json
// @Security     CookieAuth
// @Param        days  query     int  false  "Window size in days"
// @Success      200   {object}  dto.AnalyticsResponse
// @Failure      400   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /analytics [get]
func (h *AnalyticsHandler) Get(c *gin.Context) {
	days := 7
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "days must be an integer"})
			return
		}
		days = n
	}
	rep, err := h.svc.Report(c.Request.Context(), auth.UserIDFromContext(c), days)
	if err != nil {
		if errors.Is(err, service.ErrAggregationFailed) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error(), "retryable": true})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reportToResponse(rep))
}

func reportToResponse(rep dom.AnalyticsReport) dto.AnalyticsResponse {
	daily := make([]dto.DailyStatResponse, len(rep.DailyStats))
	for i, d := range rep.DailyStats {
		daily[i] = dto.DailyStatResponse{
			Date:           d.Day,
			Completed:      d.Completed,
			Total:          d.Total,
			CompletionRate: d.CompletionRate,
		}
	}
	breakdown := make(map[string]dto.PriorityStatResponse, len(rep.PriorityBreakdown))
	for p, s := range rep.PriorityBreakdown {
		breakdown[string(p)] = dto.PriorityStatResponse{Total: s.Total, Completed: s.Completed}
	}
	progress := make(map[int64]map[string]dto.TaskDayCellResponse, len(rep.TaskProgressByDate))
	for taskID, byDay := range rep.TaskProgressByDate {
		cells := make(map[string]dto.TaskDayCellResponse, len(byDay))
		for day, cell := range byDay {
			cells[day] = dto.TaskDayCellResponse{Completed: cell.Completed, CompletedAt: cell.CompletedAt}
		}
		progress[taskID] = cells
	}
	return dto.AnalyticsResponse{
		DateRange: dto.DateRangeResponse{
			StartDate: clock.DayKey(rep.Range.Start),
			EndDate:   clock.DayKey(rep.Range.End),
			Days:      rep.Range.Days,
		},
		DailyStats:         daily,
		TotalTasks:         rep.TotalTasks,
		CompletedTasks:     rep.CompletedTasks,
		CompletionRate:     rep.CompletionRate,
		PriorityBreakdown:  breakdown,
		TaskProgressByDate: progress,
	}
}
