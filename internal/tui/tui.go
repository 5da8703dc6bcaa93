// Package tui is the interactive Bubble Tea front end over the task list.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Keegan-JunBugg/tasks/internal/task"
	"github.com/Keegan-JunBugg/tasks/internal/ui"
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	t task.Task
}

func (i listItem) line() string {
	box := ui.BoxUnchecked
	if i.t.Done {
		box = ui.BoxChecked
	}
	return fmt.Sprintf("%s %s (%s · %s)", box, i.t.Title, i.t.PriorityLabel(), i.t.Assignee)
}

// Implement list.Item
func (i listItem) Title() string       { return i.line() }
func (i listItem) Description() string { return i.t.Note }
func (i listItem) FilterValue() string { return i.t.Title }

// itemDelegate renders each task on a single line.
type itemDelegate struct{}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, _ := item.(listItem)

	box := ui.MutedStyle.Render(ui.BoxUnchecked)
	text := it.t.Title
	if it.t.Done {
		box = ui.SuccessStyle.Render(ui.BoxChecked)
		text = ui.DoneStyle.Render(text)
	}
	meta := ui.MutedStyle.Render(fmt.Sprintf("(%s · %s)", it.t.PriorityLabel(), it.t.Assignee))

	prefix := "  "
	if index == m.Index() {
		prefix = ui.SelectedStyle.Render("> ")
	}
	fmt.Fprintf(w, "%s%s %s %s\n", prefix, box, text, meta)
}

type model struct {
	list     list.Model
	tasks    []task.Task // canonical full list
	hideDone bool
	changed  bool
	assignee string

	width, height int

	// Inline add/edit share one text input.
	adding    bool
	editing   bool
	editIndex int // index into tasks
	inputErr  string
	ti        textinput.Model

	// Single-level delete undo.
	canUndo   bool
	undoIndex int
	undoTask  *task.Task
}

// Run starts the interactive list over tasks and returns the (possibly
// updated) list plus whether anything changed. newAssignee is used for
// tasks added inline.
func Run(tasks []task.Task, newAssignee string) ([]task.Task, bool, error) {
	l := list.New(nil, itemDelegate{}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = ui.TitleStyle
	l.Styles.HelpStyle = ui.HelpStyle
	l.Styles.PaginationStyle = ui.HelpStyle
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")

	binds := []key.Binding{
		key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "toggle done")),
		key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pending only")),
		key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		key.NewBinding(key.WithKeys("u"), key.WithHelp("u", "undo delete")),
	}
	l.AdditionalShortHelpKeys = func() []key.Binding { return binds[:2] }
	l.AdditionalFullHelpKeys = func() []key.Binding { return binds }

	m := model{
		list:     l,
		tasks:    tasks,
		assignee: newAssignee,
	}
	m.ti = textinput.New()
	m.ti.Prompt = "> "
	m.ti.CharLimit = 200
	m.refresh()

	p := tea.NewProgram(m, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return tasks, false, err
	}
	fm, ok := finalModel.(model)
	if !ok {
		return tasks, false, nil
	}
	return fm.tasks, fm.changed, nil
}

// refresh rebuilds the visible list from the canonical task slice.
func (m *model) refresh() {
	items := make([]list.Item, 0, len(m.tasks))
	for _, t := range m.tasks {
		if m.hideDone && t.Done {
			continue
		}
		items = append(items, listItem{t: t})
	}
	m.list.SetItems(items)

	d, p := 0, 0
	for _, t := range m.tasks {
		if t.Done {
			d++
		} else {
			p++
		}
	}
	title := fmt.Sprintf("%s   %s %d  %s %d  %s %d",
		ui.TitleStyle.Render("Tasks"),
		ui.SuccessStyle.Render("✔"), d,
		ui.PendingStyle.Render("•"), p,
		ui.AccentStyle.Render("Total"), len(m.tasks),
	)
	if m.hideDone {
		title += ui.MutedStyle.Render("  [pending only]")
	}
	m.list.Title = title
}

// fullIndex maps the selected visible row back to the canonical slice.
func (m *model) fullIndex(visible int) int {
	if visible < 0 {
		return -1
	}
	if !m.hideDone {
		if visible >= len(m.tasks) {
			return -1
		}
		return visible
	}
	seen := 0
	for i, t := range m.tasks {
		if t.Done {
			continue
		}
		if seen == visible {
			return i
		}
		seen++
	}
	return -1
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = ws.Width, ws.Height
	}

	// add / edit mode: the text input owns the keys
	if m.adding || m.editing {
		var cmd tea.Cmd
		if x, ok := msg.(tea.KeyMsg); ok {
			switch x.String() {
			case "enter":
				title := strings.TrimSpace(m.ti.Value())
				if title == "" {
					m.inputErr = "Title cannot be empty"
					return m, nil
				}
				if m.adding {
					m.tasks = append(m.tasks, task.New(title, "", task.PriorityMed, m.assignee))
				} else if m.editIndex >= 0 && m.editIndex < len(m.tasks) {
					m.tasks[m.editIndex].Title = title
				}
				m.changed = true
				m.closeInput()
				m.refresh()
				return m, nil
			case "esc":
				m.closeInput()
				return m, nil
			}
		}
		m.ti, cmd = m.ti.Update(msg)
		return m, cmd
	}

	if msg, ok := msg.(tea.KeyMsg); ok && m.list.FilterState() != list.Filtering {
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit

		case " ":
			if i := m.fullIndex(m.list.Index()); i >= 0 {
				if m.tasks[i].Done {
					m.tasks[i].MarkUndone()
				} else {
					m.tasks[i].MarkDone()
				}
				m.changed = true
				m.refresh()
			}
			return m, nil

		case "p":
			m.hideDone = !m.hideDone
			m.refresh()
			return m, nil

		case "d":
			if i := m.fullIndex(m.list.Index()); i >= 0 {
				removed := m.tasks[i]
				m.undoTask = &removed
				m.undoIndex = i
				m.canUndo = true
				m.tasks = append(m.tasks[:i], m.tasks[i+1:]...)
				m.changed = true
				m.refresh()
			}
			return m, nil

		case "u":
			if m.canUndo && m.undoTask != nil {
				i := m.undoIndex
				if i < 0 {
					i = 0
				}
				if i > len(m.tasks) {
					i = len(m.tasks)
				}
				m.tasks = append(m.tasks[:i], append([]task.Task{*m.undoTask}, m.tasks[i:]...)...)
				m.changed = true
				m.canUndo = false
				m.undoTask = nil
				m.refresh()
			}
			return m, nil

		case "a":
			m.adding = true
			m.inputErr = ""
			m.ti.SetValue("")
			m.ti.Placeholder = "New task title..."
			m.ti.Focus()
			return m, nil

		case "e":
			if i := m.fullIndex(m.list.Index()); i >= 0 {
				m.editing = true
				m.editIndex = i
				m.inputErr = ""
				m.ti.SetValue(m.tasks[i].Title)
				m.ti.CursorEnd()
				m.ti.Placeholder = "Edit task title..."
				m.ti.Focus()
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *model) closeInput() {
	m.adding = false
	m.editing = false
	m.inputErr = ""
	m.ti.SetValue("")
	m.ti.Blur()
}

func (m model) View() string {
	w, h := m.width, m.height
	if w == 0 {
		w, h = 80, 24
	}
	listHeight := h - 4
	if m.adding || m.editing {
		listHeight = h - 6
	}
	m.list.SetSize(w-2, listHeight)

	content := m.list.View()
	if m.adding || m.editing {
		bar := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("8")).
			Padding(0, 1)
		title := "Add task"
		if m.editing {
			title = "Edit task"
		}
		if m.inputErr != "" {
			title += "  " + ui.ErrorStyle.Render(m.inputErr)
		}
		content = content + "\n" + bar.Render(title+"\n"+m.ti.View())
	}
	return content
}
