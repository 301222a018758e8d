package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"focustask/internal/app"
	"focustask/internal/preset"
	"focustask/internal/task"
	"focustask/internal/view"
)

func weekdayChoices() []string {
	out := make([]string, len(preset.Week))
	for i, d := range preset.Week {
		out[i] = preset.DayLabel(d)
	}
	return out
}

func presetForm(now time.Time) *formState {
	return &formState{kind: formPreset, fields: []field{
		{label: "Title"},
		{label: "Description"},
		{label: "Priority", value: task.Medium.Label(), choices: priorityChoices},
		{label: "Day", value: preset.DayLabel(time.Monday), choices: weekdayChoices()},
		{label: "Time (HH:MM)", value: now.Format(timeLayout)},
	}}
}

func (m Model) updatePresets(key string) (tea.Model, tea.Cmd) {
	k := m.cfg.Keys
	visible := m.state.VisiblePresets()
	m.cursor = clampCursor(m.cursor, len(visible))
	switch key {
	case k.Add:
		return m.openForm(presetForm(m.now()))
	case k.Toggle:
		if len(visible) == 0 {
			return m, nil
		}
		p := visible[m.cursor]
		var ok bool
		if m, ok = m.dispatch(app.TogglePreset{ID: p.ID}); ok {
			m.log.Info("preset toggled", zap.String("id", p.ID), zap.Bool("active", !p.Active))
			m.status = fmt.Sprintf("%q %s", p.Title, activeLabel(!p.Active))
		}
	case k.Delete:
		if len(visible) == 0 {
			return m, nil
		}
		p := visible[m.cursor]
		m.mode = modeConfirmDelete
		m.pendingDel = &pendingDelete{id: p.ID, title: p.Title}
		m.status = fmt.Sprintf("Delete preset \"%s\"? y/n", p.Title)
	case k.Sort:
		opt := view.NextOption(m.state.PresetSort)
		m, _ = m.dispatch(app.SortPresets{Value: opt.Value})
		m.status = "Sorted by " + opt.Label
	}
	return m, nil
}

func (m Model) submitPreset() (tea.Model, tea.Cmd) {
	f := m.form
	priority, err := task.ParsePriority(f.value(fieldPriority))
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("priority invalid: %v", err))
		return m, nil
	}
	day, err := preset.ParseDay(f.value(fieldDay))
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("day invalid: %v", err))
		return m, nil
	}
	at, err := parseClock(f.value(fieldTime), m.now())
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("time invalid: %v", err))
		return m, nil
	}
	draft := preset.Draft{
		Title:       f.value(fieldTitle),
		Description: strings.TrimSpace(f.value(fieldDescription)),
		Priority:    priority,
		Day:         day,
		Time:        at,
	}
	next, ok := m.dispatch(app.AddPreset{Draft: draft})
	if !ok {
		return next, nil
	}
	m = next.closeForm(fmt.Sprintf("Preset %q added for %s", strings.TrimSpace(draft.Title), preset.DayLabel(day)))
	m.log.Info("preset added", zap.String("title", strings.TrimSpace(draft.Title)), zap.Stringer("day", day))
	return m, nil
}

func activeLabel(active bool) string {
	if active {
		return "active"
	}
	return "inactive"
}

func (m Model) viewPresets() string {
	var b strings.Builder
	b.WriteString(subtitleStyle.Render("Automatic tasks for chosen days of the week"))
	b.WriteString("\n")
	sortLabel := "Sort by ▼"
	if opt, ok := view.OptionFor(m.state.PresetSort); ok {
		sortLabel = opt.Label + " ▼"
	}
	b.WriteString(dimStyle.Render(sortLabel))
	b.WriteString("\n\n")

	visible := m.state.VisiblePresets()
	if len(visible) == 0 {
		b.WriteString(dimStyle.Render("No presets yet. Press '" + m.cfg.Keys.Add + "' to create one."))
		b.WriteString("\n")
		return b.String()
	}
	for i, p := range visible {
		cursor := " "
		if m.cursor == i && m.form == nil {
			cursor = cursorStyle.Render(">")
		}
		toggle := dimStyle.Render("○ off")
		if p.Active {
			toggle = doneStyle.Render("● on ")
		}
		b.WriteString(fmt.Sprintf("%s %s %-8s %s %s %s\n", cursor, toggle, preset.DayLabel(p.Day), p.Title,
			priorityStyle(p.Priority).Render(p.Priority.Label()),
			dimStyle.Render(p.Time.Format(timeLayout))))
		if p.Description != "" {
			b.WriteString("      " + dimStyle.Render(p.Description) + "\n")
		}
	}
	return b.String()
}
