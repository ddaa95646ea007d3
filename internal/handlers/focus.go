package handlers

import (
	"errors"
	"net/http"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/auth"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/dto"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/service"

	"github.com/gin-gonic/gin"
)

type FocusHandler struct {
	svc *service.FocusService
}

func NewFocusHandler(svc *service.FocusService) *FocusHandler {
	return &FocusHandler{svc: svc}
}

// State godoc
// @Summary      Get the focus list and whether focus mode is active
// @Tags         focus
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.FocusStateResponse
// @Failure      500  {object}  map[string]string
// @Router       /focus [get]
func (h *FocusHandler) State(c *gin.Context) {
	st, err := h.svc.State(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	items := make([]dto.FocusEntryWithTaskResponse, len(st.Entries))
	for i, e := range st.Entries {
		items[i] = dto.FocusEntryWithTaskResponse{
			FocusEntryResponse: focusEntryToResponse(e.FocusEntry),
			Task:               taskToResponse(e.Task),
		}
	}
	c.JSON(http.StatusOK, dto.FocusStateResponse{Enabled: st.Enabled, Items: items})
}

// Enable godoc
// @Summary      Reset focus mode to an empty active state
// @Tags         focus
// @Security     CookieAuth
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /focus/enable [post]
func (h *FocusHandler) Enable(c *gin.Context) {
	if err := h.svc.Enable(c.Request.Context(), auth.UserIDFromContext(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Disable godoc
// @Summary      Exit focus mode, clearing the list
// @Tags         focus
// @Security     CookieAuth
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /focus/disable [post]
func (h *FocusHandler) Disable(c *gin.Context) {
	if err := h.svc.Disable(c.Request.Context(), auth.UserIDFromContext(c)); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Add godoc
// @Summary      Add a task to the focus list
// @Tags         focus
// @Accept       json
// @Produce      json
// @Security     CookieAuth
// @Param        body  body      dto.AddFocusTaskRequest  true  "Task to add"
// @Success      201   {object}  dto.FocusEntryResponse
// @Failure      400   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /focus/tasks [post]
func (h *FocusHandler) Add(c *gin.Context) {
	var req dto.AddFocusTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	e, err := h.svc.Add(c.Request.Context(), auth.UserIDFromContext(c), req.TaskID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		if errors.Is(err, service.ErrAlreadyInFocus) {
			c.JSON(http.StatusConflict, gin.H{"error": "task already in focus"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, focusEntryToResponse(e))
}

// Remove godoc
// @Summary      Remove a focus entry and renumber the rest
// @Tags         focus
// @Security     CookieAuth
// @Param        focusId  path  int  true  "Focus entry ID"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /focus/tasks/{focusId} [delete]
func (h *FocusHandler) Remove(c *gin.Context) {
	id, ok := parseID(c, "focusId")
	if !ok {
		return
	}
	if err := h.svc.Remove(c.Request.Context(), auth.UserIDFromContext(c), id); err != nil {
		if errors.Is(err, service.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Reorder godoc
// @Summary      Apply new order values to focus entries
// @Description  Entries not owned by the caller are skipped silently.
// @Tags         focus
// @Accept       json
// @Security     CookieAuth
// @Param        body  body  dto.ReorderFocusRequest  true  "New orders"
// @Success      204
// @Failure      400  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /focus/reorder [put]
func (h *FocusHandler) Reorder(c *gin.Context) {
	var req dto.ReorderFocusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	orders := make([]repo.FocusOrder, len(req.FocusOrders))
	for i, o := range req.FocusOrders {
		orders[i] = repo.FocusOrder{EntryID: o.FocusID, Order: o.Order}
	}
	if err := h.svc.Reorder(c.Request.Context(), auth.UserIDFromContext(c), orders); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.Status(http.StatusNoContent)
}

// Available godoc
// @Summary      List tasks not currently in the focus list
// @Tags         focus
// @Produce      json
// @Security     CookieAuth
// @Success      200  {object}  dto.ListTasksResponse
// @Failure      500  {object}  map[string]string
// @Router       /focus/available [get]
func (h *FocusHandler) Available(c *gin.Context) {
	list, err := h.svc.Available(c.Request.Context(), auth.UserIDFromContext(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ListTasksResponse{Items: tasksToResponses(list)})
}

func focusEntryToResponse(e dom.FocusEntry) dto.FocusEntryResponse {
	return dto.FocusEntryResponse{
		ID:      e.ID,
		TaskID:  e.TaskID,
		Order:   e.SortOrder,
		AddedAt: e.AddedAt,
	}
}
