package dto

import "time"

type AddFocusTaskRequest struct {
	TaskID int64 `json:"task_id" binding:"required,gt=0"`
}

// FocusOrderItem names a new order for one entry in a reorder payload.
type FocusOrderItem struct {
	FocusID int64 `json:"focus_id" binding:"required,gt=0"`
	Order   int   `json:"order" binding:"required"`
}

// ReorderFocusRequest is the JSON body for PUT /focus/reorder.
type ReorderFocusRequest struct {
	FocusOrders []FocusOrderItem `json:"focus_orders" binding:"required"`
}

type FocusEntryResponse struct {
	ID      int64     `json:"id"`
	TaskID  int64     `json:"task_id"`
	Order   int       `json:"order"`
	AddedAt time.Time `json:"added_at"`
}

type FocusEntryWithTaskResponse struct {
	FocusEntryResponse
	Task TaskResponse `json:"task"`
}

// FocusStateResponse is the focus list plus the derived enabled flag.
type FocusStateResponse struct {
	Enabled bool                         `json:"enabled"`
	Items   []FocusEntryWithTaskResponse `json:"items"`
}
