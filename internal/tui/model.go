package tui

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/domain"
	"tasklist/internal/logging"
	"tasklist/internal/services"
)

type uiMode int

const (
	modeNormal uiMode = iota
	modeAdd
	modeManage
	modeEdit
)

const helpLine = "j/k move • a add • enter manage • q quit"

// Model is the interactive task list. Every request goes through the
// controller, and the rows shown are always the controller's last refresh.
type Model struct {
	ctx   context.Context
	tasks services.TaskList
	title string

	mode     uiMode
	cursor   int
	input    string
	selected domain.Task

	status    string
	statusErr bool

	// err is a storage failure; the program quits as soon as it is set.
	err error

	styles styles
}

// NewModel creates a model over tasks. The controller should already have
// been refreshed.
func NewModel(ctx context.Context, tasks services.TaskList, title string) *Model {
	return &Model{
		ctx:    ctx,
		tasks:  tasks,
		title:  title,
		mode:   modeNormal,
		styles: defaultStyles(),
	}
}

// Err returns the storage error that ended the session, if any.
func (m *Model) Err() error {
	return m.err
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if key.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.mode {
	case modeAdd, modeEdit:
		m.updateInputMode(key)
	case modeManage:
		m.updateManageMode(key)
	default:
		if key.String() == "q" {
			return m, tea.Quit
		}
		m.updateNormalMode(key)
	}

	if m.err != nil {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) updateNormalMode(msg tea.KeyMsg) {
	switch msg.String() {
	case "j", "down":
		m.moveCursor(1)
	case "k", "up":
		m.moveCursor(-1)
	case "a":
		m.mode = modeAdd
		m.input = ""
	case "enter":
		task, err := m.tasks.SelectByPosition(m.cursor)
		if err != nil {
			return
		}
		m.selected = task
		m.mode = modeManage
	}
}

func (m *Model) updateManageMode(msg tea.KeyMsg) {
	switch msg.String() {
	case "e":
		m.mode = modeEdit
		m.input = m.selected.Name
	case "d":
		out, err := m.tasks.RequestDelete(m.ctx, m.selected)
		m.finish(out, err)
	case "esc":
		m.mode = modeNormal
	}
}

func (m *Model) updateInputMode(msg tea.KeyMsg) {
	switch msg.String() {
	case "esc":
		m.mode = modeNormal
		m.input = ""
		return
	case "enter":
		m.submit()
		return
	}

	switch msg.Type {
	case tea.KeyBackspace, tea.KeyCtrlH:
		m.input = trimLastRune(m.input)
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
}

func (m *Model) submit() {
	if m.mode == modeAdd {
		out, err := m.tasks.RequestCreate(m.ctx, m.input)
		m.finish(out, err)
		return
	}

	out, err := m.tasks.RequestUpdate(m.ctx, m.selected, m.input)
	if err == nil && !out.Success {
		// keep the dialog open so the name can be fixed
		m.setStatus(out.Message, true)
		return
	}
	m.finish(out, err)
}

// finish closes the open dialog and shows the outcome.
func (m *Model) finish(out services.Outcome, err error) {
	m.mode = modeNormal
	m.input = ""
	if err != nil {
		logging.Default().WithComponent("tui").Errorf("%v", err)
		m.err = err
		return
	}
	if out.Message != "" {
		m.setStatus(out.Message, !out.Success)
	}
	m.clampCursor()
}

func (m *Model) setStatus(text string, isErr bool) {
	m.status = text
	m.statusErr = isErr
}

func (m *Model) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

func (m *Model) clampCursor() {
	n := len(m.tasks.Names())
	if m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.title.Render(m.title))
	b.WriteString("\n")

	names := m.tasks.Names()
	if len(names) == 0 {
		b.WriteString(m.styles.empty.Render("No tasks. Press a to add one."))
		b.WriteString("\n")
	}
	for i, name := range names {
		if i == m.cursor {
			b.WriteString(m.styles.selected.Render("> " + name))
		} else {
			b.WriteString(m.styles.item.Render(name))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if prompt := m.promptLine(); prompt != "" {
		b.WriteString(m.styles.prompt.Render(prompt))
		b.WriteString("\n")
	}
	if m.status != "" {
		style := m.styles.status
		if m.statusErr {
			style = m.styles.errorMsg
		}
		b.WriteString(style.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.styles.help.Render(helpLine))
	return b.String()
}

func (m *Model) promptLine() string {
	switch m.mode {
	case modeAdd:
		return "New task: " + m.input + "█"
	case modeEdit:
		return "Rename: " + m.input + "█"
	case modeManage:
		return fmt.Sprintf("%q: e edit • d delete • esc cancel", m.selected.Name)
	}
	return ""
}

func trimLastRune(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
