package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"focustask/internal/app"
	"focustask/internal/task"
	"focustask/internal/view"
)

const timeLayout = "15:04"

var (
	priorityChoices = []string{task.Low.Label(), task.Medium.Label(), task.High.Label()}
	taskDayChoices  = []string{view.Today.Label(), view.Tomorrow.Label()}
)

func taskForm(now time.Time) *formState {
	return &formState{kind: formTask, fields: []field{
		{label: "Title"},
		{label: "Description"},
		{label: "Priority", value: task.Medium.Label(), choices: priorityChoices},
		{label: "Day", value: view.Today.Label(), choices: taskDayChoices},
		{label: "Time (HH:MM)", value: now.Format(timeLayout)},
	}}
}

func (m Model) updateHome(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	visible := m.state.Visible(m.now())
	// The list can shrink under the cursor when the day rolls over.
	m.cursor = clampCursor(m.cursor, len(visible))
	switch key {
	case k.Add:
		return m.openForm(taskForm(m.now()))
	case k.Toggle:
		if len(visible) == 0 {
			return m, nil
		}
		if m.state.Day == view.Yesterday {
			m.status = "Past tasks cannot be changed"
			return m, nil
		}
		t := visible[m.cursor]
		var ok bool
		if m, ok = m.dispatch(app.ToggleTask{ID: t.ID}); ok {
			m.log.Info("task toggled", zap.String("id", t.ID), zap.Bool("completed", !t.Completed))
			m.status = fmt.Sprintf("%q marked %s", t.Title, humanDone(!t.Completed))
		}
	case k.Delete:
		if len(visible) == 0 {
			return m, nil
		}
		t := visible[m.cursor]
		var ok bool
		if m, ok = m.dispatch(app.DeleteTask{ID: t.ID}); ok {
			m.log.Info("task deleted", zap.String("id", t.ID))
			m.status = fmt.Sprintf("Deleted %q", t.Title)
		}
	case k.MoveUp, k.MoveDown:
		if len(visible) == 0 {
			return m, nil
		}
		delta := 1
		if key == k.MoveUp {
			delta = -1
		}
		t := visible[m.cursor]
		m, _ = m.dispatch(app.MoveTask{ID: t.ID, Delta: delta})
		m.cursor = clampCursor(indexOf(m.state.Visible(m.now()), t.ID), m.listLen())
	case k.NextDay:
		m, _ = m.dispatch(app.SelectDay{Day: m.state.Day.Next()})
		m.cursor = 0
	case k.Sort:
		opt := view.NextOption(m.state.Sort)
		m, _ = m.dispatch(app.SelectSort{Value: opt.Value})
		m.status = "Sorted by " + opt.Label
	}
	return m, nil
}

func (m Model) submitTask() (tea.Model, tea.Cmd) {
	f := m.form
	now := m.now()
	priority, err := task.ParsePriority(f.value(fieldPriority))
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("priority invalid: %v", err))
		return m, nil
	}
	day, err := view.ParseDay(f.value(fieldDay))
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("day invalid: %v", err))
		return m, nil
	}
	at, err := parseClock(f.value(fieldTime), view.TargetDate(day, now))
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("time invalid: %v", err))
		return m, nil
	}
	draft := task.Draft{
		Title:       f.value(fieldTitle),
		Description: strings.TrimSpace(f.value(fieldDescription)),
		Priority:    priority,
		Time:        at,
		Date:        task.Midnight(at),
	}
	next, ok := m.dispatch(app.AddTask{Draft: draft})
	if !ok {
		return next, nil
	}
	m = next.closeForm(fmt.Sprintf("Added %q to %s", strings.TrimSpace(draft.Title), day.Label()))
	m.log.Info("task added", zap.String("title", strings.TrimSpace(draft.Title)), zap.Stringer("day", day))
	return m, nil
}

// parseClock places an HH:MM time of day on day.
func parseClock(v string, day time.Time) (time.Time, error) {
	t, err := time.Parse(timeLayout, strings.TrimSpace(v))
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(day.Year(), day.Month(), day.Day(), t.Hour(), t.Minute(), 0, 0, day.Location()), nil
}

func indexOf(tasks []task.Task, id string) int {
	for i, t := range tasks {
		if t.ID == id {
			return i
		}
	}
	return 0
}

func (m Model) viewHome() string {
	var b strings.Builder
	sum := m.state.Summary()
	b.WriteString(subtitleStyle.Render("Manage your daily tasks efficiently"))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Total %d • %s • %s\n\n",
		sum.Total,
		doneStyle.Render(fmt.Sprintf("Selesai %d", sum.Completed)),
		pendingStyle.Render(fmt.Sprintf("Pending %d", sum.Pending))))

	days := make([]string, 0, len(view.Days))
	for _, d := range view.Days {
		if d == m.state.Day {
			days = append(days, activeTabStyle.Render(d.Label()))
		} else {
			days = append(days, tabStyle.Render(d.Label()))
		}
	}
	b.WriteString(strings.Join(days, " "))
	sortLabel := "Sort by ▼"
	if opt, ok := view.OptionFor(m.state.Sort); ok {
		sortLabel = opt.Label + " ▼"
	}
	b.WriteString("   " + dimStyle.Render(sortLabel))
	b.WriteString("\n\n")

	visible := m.state.Visible(m.now())
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("No tasks for " + m.state.Day.Label() + ". Press '" + m.cfg.Keys.Add + "' to add one."))
		b.WriteString("\n")
		return b.String()
	}
	for i, t := range visible {
		b.WriteString(m.renderTask(i, t))
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderTask(i int, t task.Task) string {
	cursor := " "
	if m.cursor == i && m.form == nil {
		cursor = cursorStyle.Render(">")
	}
	checkbox := "[ ]"
	if t.Completed {
		checkbox = doneStyle.Render("[x]")
	}
	if m.state.Day == view.Yesterday {
		checkbox = "   "
	}
	body := fmt.Sprintf("%s %s %s %s %s", cursor, checkbox, t.Title,
		priorityStyle(t.Priority).Render("● "+t.Priority.Label()),
		dimStyle.Render(t.Time.Format(timeLayout)))
	if t.Description != "" {
		body += "\n      " + dimStyle.Render(t.Description)
	}
	return body
}
