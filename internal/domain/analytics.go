package domain

import "time"

// DateRange is the inclusive reference-day window of a report.
type DateRange struct {
	Start time.Time
	End   time.Time
	Days  int
}

// DailyStat is one day's completion counts. Total is the number of tracked
// tasks; CompletionRate is completed/total*100 rounded to one decimal, 0 when
// total is 0.
type DailyStat struct {
	Day            string
	Completed      int
	Total          int
	CompletionRate float64
}

// PriorityStat counts a priority bucket's tasks and how many of them have at
// least one completion in the report range.
type PriorityStat struct {
	Total     int
	Completed int
}

// TaskDayCell is one cell of the task-by-day progress matrix.
type TaskDayCell struct {
	Completed   bool
	CompletedAt time.Time
}

// AnalyticsReport is the aggregate over the last N reference days.
// DailyStats is ordered newest first and always has exactly Range.Days
// entries.
type AnalyticsReport struct {
	Range              DateRange
	DailyStats         []DailyStat
	TotalTasks         int
	CompletedTasks     int
	CompletionRate     float64
	PriorityBreakdown  map[Priority]PriorityStat
	TaskProgressByDate map[int64]map[string]TaskDayCell
}
