// Package view derives what the home screen shows: the tasks of the selected
// relative day, ordered by the selected sort option.
package view

import (
	"fmt"
	"strings"
	"time"

	"focustask/internal/task"
)

type RelativeDay int

const (
	Today RelativeDay = iota
	Tomorrow
	Yesterday
)

// Days is the tab order.
var Days = []RelativeDay{Today, Tomorrow, Yesterday}

func (d RelativeDay) Label() string {
	switch d {
	case Today:
		return "Hari Ini"
	case Tomorrow:
		return "Besok"
	case Yesterday:
		return "Kemarin"
	default:
		return "?"
	}
}

func (d RelativeDay) String() string {
	switch d {
	case Today:
		return "today"
	case Tomorrow:
		return "tomorrow"
	case Yesterday:
		return "yesterday"
	default:
		return fmt.Sprintf("day(%d)", int(d))
	}
}

func ParseDay(v string) (RelativeDay, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for _, d := range Days {
		if v == d.String() || v == strings.ToLower(d.Label()) {
			return d, nil
		}
	}
	return Today, fmt.Errorf("unknown day %q", v)
}

// Next cycles through Days.
func (d RelativeDay) Next() RelativeDay {
	return Days[(int(d)+1)%len(Days)]
}

// TargetDate returns the midnight of the calendar day d refers to, in now's
// location. Unknown values fall back to today.
func TargetDate(d RelativeDay, now time.Time) time.Time {
	switch d {
	case Tomorrow:
		now = now.AddDate(0, 0, 1)
	case Yesterday:
		now = now.AddDate(0, 0, -1)
	}
	return task.Midnight(now)
}

// Filter returns the tasks dated on d's target day, in list order.
func Filter(tasks []task.Task, d RelativeDay, now time.Time) []task.Task {
	target := TargetDate(d, now)
	out := make([]task.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.OnDate(target) {
			out = append(out, t)
		}
	}
	return out
}
