package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"cleanlist/internal/app"
	"cleanlist/internal/config"
)

type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputRename
)

const emptyPlaceholder = "No tasks yet."

type Model struct {
	app      *app.App
	keys     keyMap
	help     help.Model
	input    textinput.Model
	styles   styles
	cursor   int
	mode     inputMode
	renameID int64
	status   string
}

func Run(a *app.App, cfg config.Config) error {
	program := tea.NewProgram(NewModel(a, cfg))
	_, err := program.Run()
	return err
}

func NewModel(a *app.App, cfg config.Config) Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 0
	ti.Width = 40

	return Model{
		app:    a,
		keys:   newKeyMap(cfg.Keys),
		help:   help.New(),
		input:  ti,
		styles: newStyles(a.Theme()),
		status: fmt.Sprintf("Press '%s' to add a task.", cfg.Keys.Add),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateList(msg)
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
		m.help.Width = msg.Width
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m = m.closeInput()
		m.status = "Cancelled"
		return m, nil
	case key.Matches(msg, m.keys.Confirm):
		if m.mode == inputRename {
			return m.commitRename()
		}
		return m.commitAdd()
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

// commitAdd keeps the input open after a successful add so several tasks
// can be entered in a row. Blank input is ignored.
func (m Model) commitAdd() (tea.Model, tea.Cmd) {
	_, added, err := m.app.Add(m.input.Value())
	if err != nil {
		m.status = fmt.Sprintf("save failed: %v", err)
		return m, nil
	}
	if !added {
		return m, nil
	}
	m.input.SetValue("")
	m.cursor = clampCursor(len(m.app.Tasks())-1, len(m.app.Tasks()))
	m.status = "Added task"
	return m, nil
}

// commitRename stores the field's value as typed, without trimming.
func (m Model) commitRename() (tea.Model, tea.Cmd) {
	if err := m.app.Rename(m.renameID, m.input.Value()); err != nil {
		m.status = fmt.Sprintf("rename failed: %v", err)
		return m, nil
	}
	m = m.closeInput()
	m.status = "Renamed task"
	return m, nil
}

func (m Model) closeInput() Model {
	m.mode = inputNone
	m.renameID = 0
	m.input.SetValue("")
	m.input.Blur()
	return m
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	list := m.app.Tasks()
	edit := m.app.Mode() == app.ModeEdit

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Down):
		m.cursor = clampCursor(m.cursor+1, len(list))
	case key.Matches(msg, m.keys.Up):
		m.cursor = clampCursor(m.cursor-1, len(list))
	case key.Matches(msg, m.keys.Toggle):
		if len(list) == 0 {
			return m, nil
		}
		if err := m.app.Toggle(list[m.cursor].ID); err != nil {
			m.status = fmt.Sprintf("toggle failed: %v", err)
			return m, nil
		}
		m.status = "Toggled task"
	case edit && key.Matches(msg, m.keys.Add):
		m.mode = inputAdd
		m.input.SetValue("")
		m.input.Placeholder = "What needs doing?"
		m.status = "Type a task and press Enter"
		cmd := m.input.Focus()
		return m, cmd
	case edit && key.Matches(msg, m.keys.Rename):
		if len(list) == 0 {
			return m, nil
		}
		t, ok := m.app.Task(list[m.cursor].ID)
		if !ok {
			return m, nil
		}
		m.mode = inputRename
		m.renameID = t.ID
		m.input.SetValue(t.Text)
		m.input.CursorEnd()
		m.status = "Rename: Enter to save, Esc to cancel"
		cmd := m.input.Focus()
		return m, cmd
	case edit && key.Matches(msg, m.keys.Delete):
		if len(list) == 0 {
			return m, nil
		}
		if err := m.app.Delete(list[m.cursor].ID); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
			return m, nil
		}
		m.cursor = clampCursor(m.cursor, len(list)-1)
		m.status = "Deleted task"
	case edit && key.Matches(msg, m.keys.View):
		if len(list) == 0 {
			m.status = "Add a task first"
			return m, nil
		}
		m.app.EnterViewMode()
		m.status = ""
	case !edit && key.Matches(msg, m.keys.Edit):
		m.app.EnterEditMode()
		m.status = ""
	case key.Matches(msg, m.keys.Theme):
		if err := m.app.ToggleTheme(); err != nil {
			m.status = fmt.Sprintf("theme not saved: %v", err)
			return m, nil
		}
		m.styles = newStyles(m.app.Theme())
	case key.Matches(msg, m.keys.Export):
		if !m.app.CanExport() {
			m.status = "Nothing to export"
			return m, nil
		}
		path, err := m.app.Export()
		if err != nil {
			m.status = fmt.Sprintf("export failed: %v", err)
			return m, nil
		}
		m.status = "Saved " + path
	}
	return m, nil
}

func (m Model) View() string {
	v := m.app.Render()
	var b strings.Builder

	b.WriteString(m.styles.title.Render(v.Heading))
	b.WriteString("  ")
	b.WriteString(themeIcon(v.Theme))
	b.WriteString("\n\n")

	if v.Empty {
		b.WriteString(m.styles.muted.Render(emptyPlaceholder))
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderRows(v))
	}

	if v.ShowInput {
		b.WriteString("\n")
		if m.mode == inputAdd {
			b.WriteString(m.input.View())
		} else {
			b.WriteString(m.styles.muted.Render("+ new task"))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.styles.status.Render(m.status))
		b.WriteString("\n")
	}
	b.WriteString(m.help.View(m.helpKeys(v)))

	return b.String()
}

func (m Model) renderRows(v app.ListView) string {
	var b strings.Builder
	for i, row := range v.Rows {
		cursor := " "
		if m.cursor == i && m.mode != inputAdd {
			cursor = m.styles.cursor.Render(">")
		}

		checkbox := "[ ]"
		if row.Completed {
			checkbox = "[x]"
		}

		var text string
		switch {
		case m.mode == inputRename && row.ID == m.renameID:
			text = m.input.View()
		case row.Editable:
			text = m.styles.field.Render(row.Text)
		case row.Completed:
			text = m.styles.done.Render(row.Text)
		default:
			text = m.styles.pending.Render(row.Text)
		}

		fmt.Fprintf(&b, "%s %s %s", cursor, checkbox, text)
		if row.Deletable {
			b.WriteString(" ")
			b.WriteString(m.styles.remove.Render("✕"))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) helpKeys(v app.ListView) helpKeys {
	if m.mode != inputNone {
		return helpKeys{m.keys.Confirm, m.keys.Cancel}
	}
	k := m.keys
	view, export := k.View, k.Export
	view.SetEnabled(v.AdvanceEnabled)
	export.SetEnabled(v.ExportEnabled)
	if v.Mode == app.ModeView {
		return helpKeys{k.Up, k.Down, k.Toggle, k.Edit, export, k.Theme, k.Quit}
	}
	return helpKeys{k.Up, k.Down, k.Add, k.Toggle, k.Rename, k.Delete, view, export, k.Theme, k.Quit}
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
