package stats

import (
	"math"
	"time"

	"focustask/internal/task"
)

type Summary struct {
	Total     int
	Completed int
	Pending   int
	High      int
	Medium    int
	Low       int
	// Efficiency is the completed share in whole percent, 0 for no tasks.
	Efficiency int
}

func Compute(tasks []task.Task) Summary {
	var s Summary
	for _, t := range tasks {
		s.Total++
		if t.Completed {
			s.Completed++
		}
		switch t.Priority {
		case task.High:
			s.High++
		case task.Medium:
			s.Medium++
		case task.Low:
			s.Low++
		}
	}
	s.Pending = s.Total - s.Completed
	if s.Total > 0 {
		s.Efficiency = int(math.Round(float64(s.Completed) * 100 / float64(s.Total)))
	}
	return s
}

// WeekLabels matches the order of Weekly's buckets.
var WeekLabels = [7]string{"Sen", "Sel", "Rab", "Kam", "Jum", "Sab", "Min"}

// Weekly counts completed tasks per day of the Monday-based week holding now.
// Index 0 is Monday.
func Weekly(tasks []task.Task, now time.Time) [7]int {
	var out [7]int
	start := task.Midnight(now).AddDate(0, 0, -mondayIndex(now.Weekday()))
	end := start.AddDate(0, 0, 7)
	for _, t := range tasks {
		if !t.Completed {
			continue
		}
		d := task.Midnight(t.Date)
		if d.Before(start) || !d.Before(end) {
			continue
		}
		out[mondayIndex(d.Weekday())]++
	}
	return out
}

// WeekSummary aggregates only the tasks dated in the week holding now.
func WeekSummary(tasks []task.Task, now time.Time) Summary {
	start := task.Midnight(now).AddDate(0, 0, -mondayIndex(now.Weekday()))
	end := start.AddDate(0, 0, 7)
	in := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		d := task.Midnight(t.Date)
		if !d.Before(start) && d.Before(end) {
			in = append(in, t)
		}
	}
	return Compute(in)
}

// Review splits tasks for the daily review, keeping list order.
func Review(tasks []task.Task) (completed, pending []task.Task) {
	for _, t := range tasks {
		if t.Completed {
			completed = append(completed, t)
		} else {
			pending = append(pending, t)
		}
	}
	return completed, pending
}

func mondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}
