package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"focustask/internal/stats"
	"focustask/internal/task"
	"focustask/internal/view"
)

const barWidth = 20

func (m Model) viewAnalysis() string {
	var b strings.Builder
	now := m.now()
	all := m.state.Summary()
	week := stats.WeekSummary(m.state.Tasks, now)

	b.WriteString(subtitleStyle.Render("Your productivity at a glance"))
	b.WriteString("\n\n")
	b.WriteString(cardStyle.Render(fmt.Sprintf("Efisiensi %d%%\nSelesai %d/%d minggu ini", week.Efficiency, week.Completed, week.Total)))
	b.WriteString("\n\n")

	b.WriteString(titleStyle.Render("Selesai per hari"))
	b.WriteString("\n")
	weekly := stats.Weekly(m.state.Tasks, now)
	peak := 0
	for _, n := range weekly {
		peak = max(peak, n)
	}
	for i, n := range weekly {
		b.WriteString(fmt.Sprintf("%-4s %s %d\n", stats.WeekLabels[i], bar(n, peak), n))
	}
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("Prioritas"))
	b.WriteString("\n")
	for _, p := range []struct {
		priority task.Priority
		count    int
	}{{task.High, all.High}, {task.Medium, all.Medium}, {task.Low, all.Low}} {
		b.WriteString(fmt.Sprintf("%-7s %s %d\n", p.priority.Label(),
			priorityStyle(p.priority).Render(strings.Repeat("█", scaled(p.count, all.Total))), p.count))
	}
	return b.String()
}

func bar(n, peak int) string {
	return doneStyle.Render(strings.Repeat("█", scaled(n, peak))) + dimStyle.Render(strings.Repeat("░", barWidth-scaled(n, peak)))
}

func scaled(n, of int) int {
	if of <= 0 {
		return 0
	}
	return n * barWidth / of
}

func (m Model) updateReview(key string) (tea.Model, tea.Cmd) {
	if key != m.cfg.Keys.Edit {
		return m, nil
	}
	m.mode = modeReflect
	m.input.SetValue(m.reflection)
	m.input.Placeholder = "What went well today?"
	m.input.EchoMode = textinput.EchoNormal
	m.status = "Writing reflection. Enter to save, Esc to cancel."
	return m, m.input.Focus()
}

func (m Model) updateReflect(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Cancel:
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case m.cfg.Keys.Confirm:
		body := strings.TrimSpace(m.input.Value())
		m.mode = modeList
		m.input.Blur()
		if m.notes == nil {
			m.reflection = body
			m.status = "Reflection kept for this session"
			return m, nil
		}
		if err := m.notes.SaveReflection(m.now(), body); err != nil {
			m.log.Error("save reflection", zap.Error(err))
			m.status = errorStyle.Render(fmt.Sprintf("Error: %v", err))
			return m, nil
		}
		m.reflection = body
		m.status = "Reflection saved"
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) loadReflection() Model {
	if m.notes == nil {
		return m
	}
	body, err := m.notes.Reflection(m.now())
	if err != nil {
		m.log.Warn("load reflection", zap.Error(err))
		return m
	}
	m.reflection = body
	return m
}

func (m Model) viewReview() string {
	var b strings.Builder
	today := view.Filter(m.state.Tasks, view.Today, m.now())
	done, pending := stats.Review(today)

	b.WriteString(subtitleStyle.Render("Review Harian • " + m.now().Format("Monday, 02 Jan 2006")))
	b.WriteString("\n\n")
	b.WriteString(doneStyle.Render(fmt.Sprintf("Selesai (%d)", len(done))))
	b.WriteString("\n")
	for _, t := range done {
		b.WriteString("  ✓ " + t.Title + "\n")
	}
	b.WriteString(pendingStyle.Render(fmt.Sprintf("Belum selesai (%d)", len(pending))))
	b.WriteString("\n")
	for _, t := range pending {
		b.WriteString("  • " + t.Title + "\n")
	}
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("Refleksi"))
	b.WriteString("\n")
	switch {
	case m.mode == modeReflect:
		b.WriteString(m.input.View())
	case m.reflection == "":
		b.WriteString(dimStyle.Render("Press '" + m.cfg.Keys.Edit + "' to write a reflection."))
	default:
		b.WriteString(m.reflection)
	}
	b.WriteString("\n")
	return b.String()
}

func (m Model) profileForm() *formState {
	return &formState{kind: formProfile, fields: []field{
		{label: "Name", value: m.profile.Name},
		{label: "Email", value: m.profile.Email},
		{label: "Bio", value: m.profile.Bio},
	}}
}

func (m Model) updateProfile(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Edit:
		return m.openForm(m.profileForm())
	case m.cfg.Keys.Logout:
		if m.busy {
			return m, nil
		}
		m.busy = true
		m.status = "Signing out…"
		return m, tea.Batch(m.spinner.Tick, logout(m.session))
	}
	return m, nil
}

func (m Model) submitProfile() (tea.Model, tea.Cmd) {
	f := m.form
	name := strings.TrimSpace(f.value(fieldName))
	if name == "" {
		m.status = errorStyle.Render("Error: name is required")
		return m, nil
	}
	m.profile.Name = name
	m.profile.Email = strings.TrimSpace(f.value(fieldProfileEmail))
	m.profile.Bio = strings.TrimSpace(f.value(fieldBio))
	return m.closeForm("Profile updated"), nil
}

func (m Model) viewProfile() string {
	var b strings.Builder
	u, ok := m.session.User()
	account := "signed out"
	if ok {
		account = u.Email
		if u.IsGuest() {
			account = "guest"
		}
	}
	sum := m.state.Summary()
	b.WriteString(cardStyle.Render(fmt.Sprintf("%s\n%s\n%s",
		titleStyle.Render(m.profile.Name), m.profile.Email, dimStyle.Render(m.profile.Bio))))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Account: %s\n", account))
	b.WriteString(fmt.Sprintf("Tasks %d • Selesai %d • Efisiensi %d%%\n", sum.Total, sum.Completed, sum.Efficiency))
	if m.busy {
		b.WriteString(m.spinner.View() + "\n")
	}
	return b.String()
}
