package view

import (
	"cmp"
	"slices"
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"focustask/internal/task"
)

type SortValue string

const (
	SortNone            SortValue = ""
	SortTitleAsc        SortValue = "task-asc"
	SortTitleDesc       SortValue = "task-desc"
	SortDateNear        SortValue = "date-near"
	SortDateFar         SortValue = "date-far"
	SortPriorityLowHigh SortValue = "priority-low-high"
	SortPriorityHighLow SortValue = "priority-high-low"
)

type SortOption struct {
	ID    string
	Label string
	Value SortValue
}

var options = []SortOption{
	{ID: "1", Label: "Priority High to Low", Value: SortPriorityHighLow},
	{ID: "2", Label: "Priority Low to High", Value: SortPriorityLowHigh},
	{ID: "3", Label: "Name A-Z", Value: SortTitleAsc},
	{ID: "4", Label: "Name Z-A", Value: SortTitleDesc},
	{ID: "5", Label: "Due Dates closest to now", Value: SortDateNear},
	{ID: "6", Label: "Due Dates farthest from now", Value: SortDateFar},
}

// Options returns the dropdown entries in display order.
func Options() []SortOption {
	return slices.Clone(options)
}

func OptionFor(v SortValue) (SortOption, bool) {
	for _, o := range options {
		if o.Value == v {
			return o, true
		}
	}
	return SortOption{}, false
}

// NextOption cycles through Options; an unknown value starts at the first.
func NextOption(v SortValue) SortOption {
	for i, o := range options {
		if o.Value == v {
			return options[(i+1)%len(options)]
		}
	}
	return options[0]
}

// Sortable is anything the sort engine can order. Tasks and presets both are.
type Sortable interface {
	SortTitle() string
	SortTime() time.Time
	SortPriority() task.Priority
}

// Sort returns a stably ordered copy of items. Ties keep their input order.
// An unknown or empty value leaves the order as is.
func Sort[T Sortable](items []T, v SortValue) []T {
	out := slices.Clone(items)
	var less func(a, b T) int
	switch v {
	case SortTitleAsc, SortTitleDesc:
		c := collate.New(language.Indonesian)
		less = func(a, b T) int { return c.CompareString(a.SortTitle(), b.SortTitle()) }
		if v == SortTitleDesc {
			less = func(a, b T) int { return c.CompareString(b.SortTitle(), a.SortTitle()) }
		}
	case SortDateNear:
		less = func(a, b T) int { return a.SortTime().Compare(b.SortTime()) }
	case SortDateFar:
		less = func(a, b T) int { return b.SortTime().Compare(a.SortTime()) }
	case SortPriorityLowHigh:
		less = func(a, b T) int { return cmp.Compare(a.SortPriority(), b.SortPriority()) }
	case SortPriorityHighLow:
		less = func(a, b T) int { return cmp.Compare(b.SortPriority(), a.SortPriority()) }
	default:
		return out
	}
	slices.SortStableFunc(out, less)
	return out
}

// Splice writes visible back into all: the slots held by visible's tasks are
// refilled in visible's order, every other task keeps its position.
func Splice(all, visible []task.Task) []task.Task {
	ids := make(map[string]struct{}, len(visible))
	for _, t := range visible {
		ids[t.ID] = struct{}{}
	}
	out := slices.Clone(all)
	next := 0
	for i, t := range out {
		if _, ok := ids[t.ID]; !ok {
			continue
		}
		if next >= len(visible) {
			break
		}
		out[i] = visible[next]
		next++
	}
	return out
}
