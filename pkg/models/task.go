package models

import "time"

// NoTask is the reserved sentinel ID meaning "no task". Stored tasks always
// have non-negative IDs.
const NoTask int64 = -1

// Task is one unit of work tracked in a task file. Deadline is an absolute
// instant in Unix seconds; Progress and EstimatedTime are effort in seconds.
type Task struct {
	ID            int64
	Progress      int64
	Deadline      int64
	EstimatedTime int64
	Name          string
	Description   string
}

// CompletionFraction returns Progress/EstimatedTime. A task with zero
// estimated time counts as already complete.
func (t Task) CompletionFraction() float64 {
	if t.EstimatedTime == 0 {
		return 1.0
	}
	return float64(t.Progress) / float64(t.EstimatedTime)
}

// Completed reports whether logged progress has reached the estimate.
// Completed tasks are removed from the store, never persisted.
func (t Task) Completed() bool {
	return t.Progress >= t.EstimatedTime
}

// TimeLeft returns the seconds until the deadline at the given instant,
// negative for overdue tasks.
func (t Task) TimeLeft(now time.Time) int64 {
	return t.Deadline - now.Unix()
}

// RemainingWork returns the seconds of effort still expected. Never negative.
func (t Task) RemainingWork() int64 {
	if t.Progress > t.EstimatedTime {
		return 0
	}
	return t.EstimatedTime - t.Progress
}

// DueString renders the deadline as YYYY-MM-DD HH:MM:SS in the local time zone.
func (t Task) DueString() string {
	return time.Unix(t.Deadline, 0).Local().Format("2006-01-02 15:04:05")
}
