package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"focustask/internal/app"
	"focustask/internal/auth"
	"focustask/internal/config"
	"focustask/internal/view"
)

type screen int

const (
	screenLoading screen = iota
	screenAuth
	screenHome
	screenPresets
	screenAnalysis
	screenReview
	screenProfile
)

// tabs is the order of the signed-in screens.
var tabs = []screen{screenHome, screenPresets, screenAnalysis, screenReview, screenProfile}

func (s screen) label() string {
	switch s {
	case screenHome:
		return "Dashboard"
	case screenPresets:
		return "Preset"
	case screenAnalysis:
		return "Analisis"
	case screenReview:
		return "Review"
	case screenProfile:
		return "Profil"
	default:
		return ""
	}
}

type mode int

const (
	modeList mode = iota
	modeForm
	modeConfirmDelete
	modeReflect
)

// Notes stores the daily review reflection.
type Notes interface {
	SaveReflection(day time.Time, body string) error
	Reflection(day time.Time) (string, error)
}

type Model struct {
	cfg     config.Config
	session *auth.Session
	notes   Notes
	log     *zap.Logger
	now     func() time.Time

	state      app.State
	screen     screen
	mode       mode
	cursor     int
	input      textinput.Model
	spinner    spinner.Model
	status     string
	busy       bool
	form       *formState
	pendingDel *pendingDelete
	reflection string
	profile    config.Profile
}

type pendingDelete struct {
	id    string
	title string
}

func New(cfg config.Config, session *auth.Session, notes Notes, log *zap.Logger, now func() time.Time) Model {
	if log == nil {
		log = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 40

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	state := app.NewState()
	if d, err := view.ParseDay(cfg.DefaultDay); err == nil {
		state.Day = d
	}
	if _, ok := view.OptionFor(view.SortValue(cfg.DefaultSort)); ok {
		state.Sort = view.SortValue(cfg.DefaultSort)
	}

	return Model{
		cfg:     cfg,
		session: session,
		notes:   notes,
		log:     log,
		now:     now,
		state:   state,
		screen:  screenLoading,
		mode:    modeList,
		input:   ti,
		spinner: sp,
		profile: cfg.Profile,
	}
}

func Run(cfg config.Config, session *auth.Session, notes Notes, log *zap.Logger) error {
	program := tea.NewProgram(New(cfg, session, notes, log, time.Now))
	_, err := program.Run()
	return err
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, restoreSession(m.session))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenLoading {
			return m, nil
		}
		if m.screen == screenAuth {
			return m.updateAuth(msg.String(), msg)
		}
		if m.form != nil {
			return m.updateForm(msg.String(), msg)
		}
		if m.mode == modeConfirmDelete {
			return m.updateDeleteConfirm(msg.String())
		}
		if m.mode == modeReflect {
			return m.updateReflect(msg.String(), msg)
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = max(msg.Width-20, 10)
	case spinner.TickMsg:
		if m.screen != screenLoading && !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case sessionRestoredMsg:
		return m.onRestored(msg)
	case authResultMsg:
		return m.onAuthResult(msg)
	case loggedOutMsg:
		return m.onLoggedOut(msg)
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case m.cfg.Keys.Quit:
		return m, tea.Quit
	case m.cfg.Keys.NextScreen:
		return m.switchScreen(1), nil
	case m.cfg.Keys.PrevScreen:
		return m.switchScreen(-1), nil
	case m.cfg.Keys.Down, "down":
		m.cursor = clampCursor(m.cursor+1, m.listLen())
		return m, nil
	case m.cfg.Keys.Up, "up":
		m.cursor = clampCursor(m.cursor-1, m.listLen())
		return m, nil
	}
	switch m.screen {
	case screenHome:
		return m.updateHome(key)
	case screenPresets:
		return m.updatePresets(key)
	case screenReview:
		return m.updateReview(key)
	case screenProfile:
		return m.updateProfile(key)
	}
	return m, nil
}

func (m Model) listLen() int {
	switch m.screen {
	case screenHome:
		return len(m.state.Visible(m.now()))
	case screenPresets:
		return len(m.state.Presets)
	}
	return 0
}

func (m Model) switchScreen(delta int) Model {
	idx := 0
	for i, s := range tabs {
		if s == m.screen {
			idx = i
			break
		}
	}
	m.screen = tabs[wrapIndex(idx+delta, len(tabs))]
	m.cursor = 0
	m.status = ""
	if m.screen == screenReview {
		m = m.loadReflection()
	}
	return m
}

// dispatch runs an action through the reducer and reports failures on the
// status line.
func (m Model) dispatch(a app.Action) (Model, bool) {
	next, err := app.Reduce(m.state, a, m.now())
	if err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("Error: %v", err))
		m.log.Debug("action rejected", zap.String("action", fmt.Sprintf("%T", a)), zap.Error(err))
		return m, false
	}
	m.state = next
	m.cursor = clampCursor(m.cursor, m.listLen())
	return m, true
}

func (m Model) openForm(f *formState) (Model, tea.Cmd) {
	m.form = f
	m.mode = modeForm
	m.status = f.prompt()
	return m, m.loadField()
}

func (m *Model) loadField() tea.Cmd {
	fl := m.form.current()
	m.input.SetValue(fl.value)
	m.input.Placeholder = fl.label
	m.input.EchoMode = textinput.EchoNormal
	if fl.secret {
		m.input.EchoMode = textinput.EchoPassword
	}
	if len(fl.choices) > 0 {
		m.input.Blur()
		return nil
	}
	return m.input.Focus()
}

func (m *Model) storeField() {
	fl := m.form.current()
	if len(fl.choices) == 0 {
		fl.value = m.input.Value()
	}
}

func (m Model) closeForm(status string) Model {
	m.form = nil
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
	m.status = status
	return m
}

func (m Model) updateForm(key string, msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	f := m.form
	switch key {
	case m.cfg.Keys.Cancel:
		if m.screen == screenAuth {
			return m, nil
		}
		return m.closeForm("Cancelled"), nil
	case "tab", "down":
		m.storeField()
		f.move(1)
		m.status = f.prompt()
		return m, m.loadField()
	case "shift+tab", "up":
		m.storeField()
		f.move(-1)
		m.status = f.prompt()
		return m, m.loadField()
	case "left", "right":
		if len(f.current().choices) > 0 {
			if key == "left" {
				f.cycle(-1)
			} else {
				f.cycle(1)
			}
			return m, nil
		}
	case m.cfg.Keys.Confirm:
		m.storeField()
		if !f.last() {
			f.move(1)
			m.status = f.prompt()
			return m, m.loadField()
		}
		return m.submitForm()
	}
	if len(f.current().choices) > 0 {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) submitForm() (tea.Model, tea.Cmd) {
	switch m.form.kind {
	case formTask:
		return m.submitTask()
	case formPreset:
		return m.submitPreset()
	case formLogin, formRegister:
		return m.submitAuth()
	case formProfile:
		return m.submitProfile()
	}
	return m, nil
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "n", "N", m.cfg.Keys.Cancel:
		m.status = "Delete cancelled"
		m.mode = modeList
		m.pendingDel = nil
		return m, nil
	case "y", "Y":
		if m.pendingDel == nil {
			m.status = "Nothing to delete"
			m.mode = modeList
			return m, nil
		}
		id, title := m.pendingDel.id, m.pendingDel.title
		m.mode = modeList
		m.pendingDel = nil
		var ok bool
		if m, ok = m.dispatch(app.DeletePreset{ID: id}); ok {
			m.log.Info("preset deleted", zap.String("id", id))
			m.status = fmt.Sprintf("Deleted preset %q", title)
		}
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("FocusTask"))
	b.WriteString("\n")

	switch m.screen {
	case screenLoading:
		b.WriteString("\n" + m.spinner.View() + " Loading session…\n")
		return b.String()
	case screenAuth:
		b.WriteString(m.viewAuth())
		return b.String()
	}

	b.WriteString(renderTabs(m.screen))
	b.WriteString("\n\n")

	switch m.screen {
	case screenHome:
		b.WriteString(m.viewHome())
	case screenPresets:
		b.WriteString(m.viewPresets())
	case screenAnalysis:
		b.WriteString(m.viewAnalysis())
	case screenReview:
		b.WriteString(m.viewReview())
	case screenProfile:
		b.WriteString(m.viewProfile())
	}

	if m.form != nil {
		b.WriteString("\n---\n")
		b.WriteString(titleStyle.Render(m.form.title()))
		b.WriteString("\n")
		b.WriteString(m.form.render(m.input.View()))
	}

	b.WriteString("\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(dimStyle.Render(m.renderHelp()))

	return b.String()
}

func renderTabs(active screen) string {
	parts := make([]string, 0, len(tabs))
	for _, s := range tabs {
		if s == active {
			parts = append(parts, activeTabStyle.Render(s.label()))
		} else {
			parts = append(parts, tabStyle.Render(s.label()))
		}
	}
	return strings.Join(parts, " ")
}

func (m Model) renderHelp() string {
	k := m.cfg.Keys
	if m.form != nil {
		return "tab/shift+tab move • ←/→ choose • enter next/save • esc cancel"
	}
	common := fmt.Sprintf("%s/%s screen • %s quit", k.NextScreen, k.PrevScreen, k.Quit)
	switch m.screen {
	case screenHome:
		return fmt.Sprintf("%s/%s move • %s add • %s toggle • %s delete • %s/%s reorder • %s day • %s sort • ",
			k.Up, k.Down, k.Add, keyName(k.Toggle), k.Delete, k.MoveUp, k.MoveDown, k.NextDay, k.Sort) + common
	case screenPresets:
		return fmt.Sprintf("%s/%s move • %s add • %s active • %s delete • %s sort • ",
			k.Up, k.Down, k.Add, keyName(k.Toggle), k.Delete, k.Sort) + common
	case screenReview:
		return fmt.Sprintf("%s write reflection • ", k.Edit) + common
	case screenProfile:
		return fmt.Sprintf("%s edit • %s logout • ", k.Edit, k.Logout) + common
	}
	return common
}

func keyName(k string) string {
	if k == " " {
		return "space"
	}
	return k
}

func clampCursor(cur, n int) int {
	if n <= 0 {
		return 0
	}
	if cur < 0 {
		return 0
	}
	if cur >= n {
		return n - 1
	}
	return cur
}

func wrapIndex(idx, n int) int {
	if n <= 0 {
		return 0
	}
	idx %= n
	if idx < 0 {
		idx += n
	}
	return idx
}

func humanDone(done bool) string {
	if done {
		return "done"
	}
	return "pending"
}
