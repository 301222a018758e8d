// Package app is the application state of the home and preset screens and
// the transitions applied to it.
package app

import (
	"fmt"
	"time"

	"focustask/internal/preset"
	"focustask/internal/stats"
	"focustask/internal/task"
	"focustask/internal/view"
)

type State struct {
	Tasks   task.List
	Presets preset.List
	Day     view.RelativeDay
	Sort    view.SortValue
	// PresetSort orders the preset screen independently of the home list.
	PresetSort view.SortValue
	Seeded     bool
}

func NewState() State {
	return State{Day: view.Today, Sort: view.SortPriorityHighLow, PresetSort: view.SortPriorityHighLow}
}

// Action is one of the types below.
type Action interface {
	action()
}

type (
	AddTask      struct{ Draft task.Draft }
	ToggleTask   struct{ ID string }
	DeleteTask   struct{ ID string }
	ReorderTasks struct{ Order task.List }
	SelectDay    struct{ Day view.RelativeDay }
	SelectSort   struct{ Value view.SortValue }
	SortPresets  struct{ Value view.SortValue }
	AddPreset    struct{ Draft preset.Draft }
	TogglePreset struct{ ID string }
	DeletePreset struct{ ID string }
	Seed         struct{}
)

// MoveTask shifts a task by Delta places within the current view.
type MoveTask struct {
	ID    string
	Delta int
}

func (AddTask) action()      {}
func (ToggleTask) action()   {}
func (DeleteTask) action()   {}
func (ReorderTasks) action() {}
func (MoveTask) action()     {}
func (SelectDay) action()    {}
func (SelectSort) action()   {}
func (SortPresets) action()  {}
func (AddPreset) action()    {}
func (TogglePreset) action() {}
func (DeletePreset) action() {}
func (Seed) action()         {}

// Reduce applies a to s. On error s is returned unchanged.
func Reduce(s State, a Action, now time.Time) (State, error) {
	switch a := a.(type) {
	case AddTask:
		t, err := task.New(a.Draft)
		if err != nil {
			return s, err
		}
		s.Tasks = s.Tasks.Add(t)
	case ToggleTask:
		s.Tasks = s.Tasks.Toggle(a.ID)
	case DeleteTask:
		s.Tasks = s.Tasks.Remove(a.ID)
	case ReorderTasks:
		s.Tasks = s.Tasks.Reorder(a.Order)
	case MoveTask:
		s.Tasks = s.Tasks.Reorder(move(s, a, now))
	case SelectDay:
		s.Day = a.Day
	case SelectSort:
		s.Sort = a.Value
	case SortPresets:
		s.PresetSort = a.Value
	case AddPreset:
		p, err := preset.New(a.Draft)
		if err != nil {
			return s, err
		}
		s.Presets = s.Presets.Add(p)
	case TogglePreset:
		s.Presets = s.Presets.ToggleActive(a.ID)
	case DeletePreset:
		s.Presets = s.Presets.Remove(a.ID)
	case Seed:
		if s.Seeded {
			return s, nil
		}
		s.Tasks = preset.Materialize(s.Tasks, preset.Illustrative(now))
		s.Seeded = true
	default:
		return s, fmt.Errorf("unknown action %T", a)
	}
	return s, nil
}

// move swaps the task with its neighbour in the visible order and writes that
// order back into the full list.
func move(s State, a MoveTask, now time.Time) task.List {
	visible := s.Visible(now)
	from := -1
	for i, t := range visible {
		if t.ID == a.ID {
			from = i
			break
		}
	}
	to := from + a.Delta
	if from < 0 || to < 0 || to >= len(visible) {
		return s.Tasks
	}
	visible[from], visible[to] = visible[to], visible[from]
	return view.Splice(s.Tasks, visible)
}

// Visible is the home list: the selected day's tasks in the selected order.
func (s State) Visible(now time.Time) []task.Task {
	return view.Sort(view.Filter(s.Tasks, s.Day, now), s.Sort)
}

func (s State) VisiblePresets() []preset.Preset {
	return view.Sort(s.Presets, s.PresetSort)
}

func (s State) Summary() stats.Summary {
	return stats.Compute(s.Tasks)
}
