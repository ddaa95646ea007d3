package dto

import "time"

type DateRangeResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Days      int    `json:"days"`
}

type DailyStatResponse struct {
	Date           string  `json:"date"`
	Completed      int     `json:"completed"`
	Total          int     `json:"total"`
	CompletionRate float64 `json:"completionRate"`
}

type PriorityStatResponse struct {
	Total     int `json:"total"`
	Completed int `json:"completed"`
}

type TaskDayCellResponse struct {
	Completed   bool      `json:"completed"`
	CompletedAt time.Time `json:"completedAt"`
}

// AnalyticsResponse is the aggregate for GET /analytics. Daily stats are
// newest first; taskProgressByDate keys are task IDs, then YYYY-MM-DD days.
type AnalyticsResponse struct {
	DateRange          DateRangeResponse                        `json:"dateRange"`
	DailyStats         []DailyStatResponse                      `json:"dailyStats"`
	TotalTasks         int                                      `json:"totalTasks"`
	CompletedTasks     int                                      `json:"completedTasks"`
	CompletionRate     float64                                  `json:"completionRate"`
	PriorityBreakdown  map[string]PriorityStatResponse          `json:"priorityBreakdown"`
	TaskProgressByDate map[int64]map[string]TaskDayCellResponse `json:"taskProgressByDate"`
}
