package task

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Priority int

const (
	Low Priority = iota
	Medium
	High
)

var (
	ErrEmptyTitle      = errors.New("title cannot be empty")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrMissingTime     = errors.New("time is required")
)

func (p Priority) Valid() bool {
	return p >= Low && p <= High
}

func (p Priority) String() string {
	switch p {
	case Low:
		return "low"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

// Label is the name shown in the app.
func (p Priority) Label() string {
	switch p {
	case Low:
		return "Rendah"
	case Medium:
		return "Sedang"
	case High:
		return "Tinggi"
	default:
		return "?"
	}
}

// ParsePriority accepts the English and Indonesian names in any case.
func ParsePriority(v string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "low", "rendah":
		return Low, nil
	case "medium", "sedang":
		return Medium, nil
	case "high", "tinggi":
		return High, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, v)
}

type Task struct {
	ID          string
	Title       string
	Description string
	Priority    Priority
	Time        time.Time
	Date        time.Time
	Completed   bool
}

// Draft is the add-task form payload.
type Draft struct {
	Title       string
	Description string
	Priority    Priority
	Time        time.Time
	// Date is normalized to midnight by New; zero means the day of Time.
	Date time.Time
}

func New(d Draft) (Task, error) {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return Task{}, fmt.Errorf("%w: got %q", ErrEmptyTitle, d.Title)
	}
	if !d.Priority.Valid() {
		return Task{}, fmt.Errorf("%w: %d", ErrInvalidPriority, int(d.Priority))
	}
	if d.Time.IsZero() {
		return Task{}, fmt.Errorf("%w: task %q", ErrMissingTime, title)
	}
	date := d.Date
	if date.IsZero() {
		date = d.Time
	}
	return Task{
		ID:          uuid.NewString(),
		Title:       title,
		Description: d.Description,
		Priority:    d.Priority,
		Time:        d.Time,
		Date:        Midnight(date),
	}, nil
}

// Midnight drops the time-of-day component, keeping t's location.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func (t Task) SortTitle() string      { return t.Title }
func (t Task) SortTime() time.Time    { return t.Time }
func (t Task) SortPriority() Priority { return t.Priority }

// OnDate reports whether the task is bucketed on the calendar day of day.
func (t Task) OnDate(day time.Time) bool {
	return Midnight(t.Date).Equal(Midnight(day))
}
