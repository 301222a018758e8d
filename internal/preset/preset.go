// Package preset holds weekday task templates and the one-time seeding of
// illustrative tasks on first load.
package preset

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"focustask/internal/task"
)

var ErrInvalidDay = errors.New("invalid weekday")

type Preset struct {
	ID          string
	Title       string
	Description string
	Priority    task.Priority
	Day         time.Weekday
	Time        time.Time
	Active      bool
}

type Draft struct {
	Title       string
	Description string
	Priority    task.Priority
	Day         time.Weekday
	Time        time.Time
}

func New(d Draft) (Preset, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Preset{}, fmt.Errorf("%w: got %q", task.ErrEmptyTitle, d.Title)
	}
	if !d.Priority.Valid() {
		return Preset{}, fmt.Errorf("%w: %d", task.ErrInvalidPriority, int(d.Priority))
	}
	if d.Day < time.Sunday || d.Day > time.Saturday {
		return Preset{}, fmt.Errorf("%w: %d", ErrInvalidDay, int(d.Day))
	}
	if d.Time.IsZero() {
		return Preset{}, fmt.Errorf("%w: preset %q", task.ErrMissingTime, title)
	}
	return Preset{
		ID:          uuid.NewString(),
		Title:       title,
		Description: d.Description,
		Priority:    d.Priority,
		Day:         d.Day,
		Time:        d.Time,
		Active:      true,
	}, nil
}

func (p Preset) SortTitle() string           { return p.Title }
func (p Preset) SortTime() time.Time         { return p.Time }
func (p Preset) SortPriority() task.Priority { return p.Priority }

// Week lists weekdays in display order, Monday first.
var Week = []time.Weekday{
	time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday,
}

var dayLabels = map[time.Weekday]string{
	time.Monday:    "Senin",
	time.Tuesday:   "Selasa",
	time.Wednesday: "Rabu",
	time.Thursday:  "Kamis",
	time.Friday:    "Jumat",
	time.Saturday:  "Sabtu",
	time.Sunday:    "Minggu",
}

func DayLabel(d time.Weekday) string {
	if l, ok := dayLabels[d]; ok {
		return l
	}
	return d.String()
}

// ParseDay accepts Indonesian or English weekday names, case-insensitive.
func ParseDay(v string) (time.Weekday, error) {
	v = strings.ToLower(strings.TrimSpace(v))
	for d, l := range dayLabels {
		if v == strings.ToLower(l) || v == strings.ToLower(d.String()) {
			return d, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidDay, v)
}
