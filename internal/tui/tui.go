// Package tui is the interactive task browser behind `todo list -i`.
// Every action goes through the task store and is persisted immediately,
// exactly like the matching subcommand.
package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todolist/internal/model"
	"github.com/idilsaglam/todolist/internal/todo"
	"github.com/idilsaglam/todolist/internal/ui"
)

// listItem adapts a task to bubbles/list.Item.
type listItem struct {
	index int // 1-based position in the store
	task  model.Task
}

func (i listItem) Title() string       { return i.task.Description }
func (i listItem) Description() string { return "" }
func (i listItem) FilterValue() string { return i.task.Description }

// itemDelegate renders one task per line.
type itemDelegate struct {
	styles ui.Styles
}

func (d itemDelegate) Height() int                             { return 1 }
func (d itemDelegate) Spacing() int                            { return 0 }
func (d itemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	box := d.styles.Muted.Render("[ ]")
	text := it.task.Description
	if it.task.Completed {
		box = d.styles.Success.Render("[x]")
		text = d.styles.Done.Render(text)
	}
	prefix := "  "
	if index == m.Index() {
		prefix = d.styles.Selected.Render(">") + " "
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, d.styles.Muted.Render(fmt.Sprintf("%2d.", it.index)), box, text)
}

type keyMap struct {
	complete key.Binding
	purge    key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		complete: key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "complete")),
		purge:    key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete completed")),
	}
}

// Model is the Bubble Tea model for the task browser.
type Model struct {
	store  *todo.Store
	styles ui.Styles
	keys   keyMap
	list   list.Model

	status    string
	statusErr bool
	changes   int
}

// New builds a browser over s.
func New(s *todo.Store, styles ui.Styles) Model {
	keys := newKeyMap()
	l := list.New(nil, itemDelegate{styles: styles}, 0, 0)
	l.SetShowHelp(true)
	l.SetShowPagination(true)
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = styles.Title
	l.FilterInput.Prompt = "/ "
	l.SetStatusBarItemName("task", "tasks")
	l.AdditionalShortHelpKeys = func() []key.Binding { return []key.Binding{keys.complete, keys.purge} }
	l.AdditionalFullHelpKeys = func() []key.Binding { return []key.Binding{keys.complete, keys.purge} }

	m := Model{store: s, styles: styles, keys: keys, list: l}
	m.refresh()
	return m
}

// Changes reports how many persisted mutations the session made.
func (m Model) Changes() int { return m.changes }

// refresh rebuilds the list from the store; indices shift after deletions.
func (m *Model) refresh() tea.Cmd {
	tasks := m.store.Tasks()
	items := make([]list.Item, 0, len(tasks))
	done := 0
	for i, t := range tasks {
		items = append(items, listItem{index: i + 1, task: t})
		if t.Completed {
			done++
		}
	}
	m.list.Title = fmt.Sprintf("%s  %s %d  %s %d  %s",
		m.styles.Title.Render("Todos"),
		m.styles.Success.Render("✔"), done,
		m.styles.Pending.Render("•"), len(tasks)-done,
		m.styles.Muted.Render(ui.ProgressBar(done, len(tasks), 20)),
	)
	return m.list.SetItems(items)
}

func (m *Model) setStatus(msg string, isErr bool) {
	m.status, m.statusErr = msg, isErr
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		h, v := m.styles.Frame.GetFrameSize()
		m.list.SetSize(msg.Width-h, msg.Height-v-1)
		return m, nil

	case tea.KeyMsg:
		// Keys belong to the filter input while it is focused.
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case msg.String() == "ctrl+c", msg.String() == "q":
			return m, tea.Quit
		case msg.String() == "esc" && m.list.FilterState() == list.Unfiltered:
			return m, tea.Quit
		case key.Matches(msg, m.keys.complete):
			return m, m.completeSelected()
		case key.Matches(msg, m.keys.purge):
			return m, m.deleteCompleted()
		}
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *Model) completeSelected() tea.Cmd {
	it, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return nil
	}
	res, err := m.store.Complete(it.index)
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}
	if res.AlreadyCompleted {
		m.setStatus("Task already completed: "+res.Task.Description, false)
		return nil
	}
	m.changes++
	m.setStatus("Completed task: "+res.Task.Description, false)
	return m.refresh()
}

func (m *Model) deleteCompleted() tea.Cmd {
	n, err := m.store.DeleteCompleted()
	if err != nil {
		m.setStatus(err.Error(), true)
		return nil
	}
	m.changes++
	m.setStatus(fmt.Sprintf("Deleted %d completed tasks", n), false)
	return m.refresh()
}

func (m Model) View() string {
	content := m.list.View()
	status := m.styles.Muted.Render(m.status)
	if m.statusErr {
		status = m.styles.Error.Render(m.status)
	}
	return m.styles.Frame.Render(strings.TrimRight(content, "\n") + "\n" + status)
}

// Run starts the browser on the alternate screen and returns the number of
// persisted changes once the user quits.
func Run(s *todo.Store, theme ui.Theme, opts ...tea.ProgramOption) (int, error) {
	styles := ui.NewStyles(lipgloss.DefaultRenderer(), theme)
	opts = append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)
	final, err := tea.NewProgram(New(s, styles), opts...).Run()
	if err != nil {
		return 0, err
	}
	fm, ok := final.(Model)
	if !ok {
		return 0, nil
	}
	return fm.Changes(), nil
}
