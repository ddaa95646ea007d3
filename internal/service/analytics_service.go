package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/VanshSharmaSDE/Tickr-sub000/internal/cache"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/clock"
	dom "github.com/VanshSharmaSDE/Tickr-sub000/internal/domain"
	"github.com/VanshSharmaSDE/Tickr-sub000/internal/repo"

	"golang.org/x/sync/singleflight"
)

// ErrAggregationFailed wraps store read errors during analytics. The
// aggregation is read-only, so callers may retry.
var ErrAggregationFailed = errors.New("analytics aggregation failed")

const (
	minWindowDays = 1
	maxWindowDays = 365
)

// AnalyticsService builds N-day completion reports on demand.
type AnalyticsService struct {
	tasks       repo.TaskRepo
	completions repo.CompletionRepo
	stats       *cache.StatsCache
	sf          singleflight.Group
	now         func() time.Time
}

// NewAnalyticsService creates an AnalyticsService. If c is nil, caching is
// disabled.
func NewAnalyticsService(tasks repo.TaskRepo, completions repo.CompletionRepo, c *cache.StatsCache) *AnalyticsService {
	return &AnalyticsService{tasks: tasks, completions: completions, stats: c, now: time.Now}
}

// Report aggregates the last days calendar days (clamped to [1,365]) ending
// today in the reference timezone.
func (s *AnalyticsService) Report(ctx context.Context, userID int64, days int) (dom.AnalyticsReport, error) {
	days = clampDays(days)

	if s.stats != nil {
		day := clock.DayKey(s.now())
		key := "report:" + strconv.FormatInt(userID, 10) + ":" + day + ":" + strconv.Itoa(days)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if rep, err := s.stats.Get(ctx, userID, day, days); err == nil && rep != nil {
				return *rep, nil
			}
			rep, err := s.build(ctx, userID, days)
			if err != nil {
				return nil, err
			}
			_ = s.stats.Set(ctx, userID, day, days, rep)
			return rep, nil
		})
		if err != nil {
			return dom.AnalyticsReport{}, err
		}
		return v.(dom.AnalyticsReport), nil
	}
	return s.build(ctx, userID, days)
}

func (s *AnalyticsService) build(ctx context.Context, userID int64, days int) (dom.AnalyticsReport, error) {
	tasks, err := s.tasks.List(ctx, userID)
	if err != nil {
		return dom.AnalyticsReport{}, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	end := clock.ReferenceDay(s.now())
	start := end.AddDate(0, 0, -(days - 1))

	comps, err := s.completions.ListRange(ctx, userID, clock.DayKey(start), clock.DayKey(end))
	if err != nil {
		return dom.AnalyticsReport{}, fmt.Errorf("%w: %v", ErrAggregationFailed, err)
	}

	perDay := make(map[string]int, days)
	completedTasks := make(map[int64]bool)
	progress := make(map[int64]map[string]dom.TaskDayCell)
	for _, c := range comps {
		key := c.DayKey()
		perDay[key]++
		completedTasks[c.TaskID] = true
		if progress[c.TaskID] == nil {
			progress[c.TaskID] = make(map[string]dom.TaskDayCell)
		}
		progress[c.TaskID][key] = dom.TaskDayCell{Completed: true, CompletedAt: c.CompletedAt}
	}

	// One entry per day in range, zero-valued when nothing happened.
	// Built oldest first, exposed newest first.
	daily := make([]dom.DailyStat, 0, days)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		key := clock.DayKey(d)
		done := perDay[key]
		daily = append(daily, dom.DailyStat{
			Day:            key,
			Completed:      done,
			Total:          len(tasks),
			CompletionRate: rate(done, len(tasks)),
		})
	}
	for i, j := 0, len(daily)-1; i < j; i, j = i+1, j-1 {
		daily[i], daily[j] = daily[j], daily[i]
	}

	breakdown := make(map[dom.Priority]dom.PriorityStat, 3)
	for _, p := range dom.Priorities() {
		breakdown[p] = dom.PriorityStat{}
	}
	for _, t := range tasks {
		stat := breakdown[t.Priority]
		stat.Total++
		if completedTasks[t.ID] {
			stat.Completed++
		}
		breakdown[t.Priority] = stat
	}

	return dom.AnalyticsReport{
		Range:              dom.DateRange{Start: start, End: end, Days: days},
		DailyStats:         daily,
		TotalTasks:         len(tasks),
		CompletedTasks:     len(completedTasks),
		CompletionRate:     rate(len(completedTasks), len(tasks)),
		PriorityBreakdown:  breakdown,
		TaskProgressByDate: progress,
	}, nil
}

func clampDays(n int) int {
	if n < minWindowDays {
		return minWindowDays
	}
	if n > maxWindowDays {
		return maxWindowDays
	}
	return n
}

// rate is completed/total*100 rounded to one decimal; 0 when total is 0.
func rate(completed, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(completed)/float64(total)*1000) / 10
}
