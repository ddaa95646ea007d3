package handlers

import (
	"errors"
	"net/http"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/auth"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/clock"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/dto"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type ProgressHandler struct {
	svc *service.ProgressService
}

func NewProgressHandler(svc *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{svc: svc}
}

// Toggle godoc
// @Summary      Toggle a task's completion for today
// @Description  Creates today's completion record if absent, deletes it if present.
// @Tags         progress
// @Produce      json
// @Security     CookieAuth
// @Param        id   path      int  true  "Task ID"
// @Success      200  {object}  dto.ToggleResponse
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /tasks/{id}/toggle [post]
func (h *ProgressHandler) Toggle(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	res, err := h.svc.Toggle(c.Request.Context(), auth.UserIDFromContext(c), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	resp := dto.ToggleResponse{Completed: res.Completed, Day: res.Day}
	if res.Completion != nil {
		cr := completionToResponse(*res.Completion)
		resp.Completion = &cr
	}
	c.JSON(http.StatusOK, resp)
}

// Today godoc
// @Summary      List today's completions with their tasks
// @Tags         progress
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.TodayProgressResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks/progress/today [get]
func (h *ProgressHandler) Today(c *gin.Context) {
	list, err := h.svc.Today(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.CompletionWithTaskResponse, len(list))
	for i, cw := range list {
		items[i] = dto.CompletionWithTaskResponse{
			CompletionResponse: completionToResponse(cw.DailyCompletion),
			Task:               taskToResponse(cw.Task),
		}
	}
	c.JSON(http.StatusOK, dto.TodayProgressResponse{Day: clock.DayKey(clock.Today()), Items: items})
}

// Cleanup godoc
// @Summary      Prune completion/focus records whose task was deleted
// @Tags         progress
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.CleanupResponse
// @Failure      500  {object}  map[string]string
// @Router       /tasks/progress/cleanup [post]
func (h *ProgressHandler) Cleanup(c *gin.Context) {
	res, err := h.svc.Cleanup(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.CleanupResponse{
		CompletionsPruned:  res.Completions,
		FocusEntriesPruned: res.FocusEntries,
	})
}

func completionToResponse(c dom.DailyCompletion) dto.CompletionResponse {
	return dto.CompletionResponse{
		ID:          c.ID,
		TaskID:      c.TaskID,
		Day:         c.DayKey(),
		Completed:   c.Completed,
		CompletedAt: c.CompletedAt,
	}
}
