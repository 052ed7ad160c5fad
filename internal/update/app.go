package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/akarpov/tasktrack/internal/model"
	"github.com/akarpov/tasktrack/internal/storage"
)

type View string

const (
	ViewActive  View = "Active"
	ViewArchive View = "Archive"
)

type StatusBar struct {
	Text    string
	IsError bool
}

type KeyMap struct {
	Up       string
	Down     string
	Complete string
	Delete   string
	Archive  string
	Toggle   string
	Reload   string
	Help     string
	Quit     string
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       "k",
		Down:     "j",
		Complete: "c",
		Delete:   "x",
		Archive:  "a",
		Toggle:   "tab",
		Reload:   "r",
		Help:     "?",
		Quit:     "q",
	}
}

// Model is the interactive task browser. It talks to the same storage
// engine as the subcommands; every keypress that mutates state issues a
// command and reloads from the store, so the screen never drifts from
// the file.
type Model struct {
	Store storage.Store
	Now   func() time.Time

	CurrentView View
	Tasks       []model.Task
	Archived    []model.ArchivedTask
	Cursor      int
	Status      StatusBar
	HelpVisible bool
	Loading     bool
	Quitting    bool
	Keys        KeyMap

	spin spinner.Model
}

func NewModel(store storage.Store) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	return Model{
		Store:       store,
		Now:         time.Now,
		CurrentView: ViewActive,
		Keys:        DefaultKeyMap(),
		Loading:     true,
		spin:        sp,
	}
}

type tasksLoadedMsg struct {
	Tasks []model.Task
}

type archiveLoadedMsg struct {
	Items []model.ArchivedTask
}

type opDoneMsg struct {
	Text string
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type AppErrorMsg struct {
	Err error
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spin.Tick, m.loadCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)

	case tasksLoadedMsg:
		m.Tasks = typed.Tasks
		m.Loading = false
		m.clampCursor()
		return m, nil

	case archiveLoadedMsg:
		m.Archived = typed.Items
		m.Loading = false
		m.clampCursor()
		return m, nil

	case opDoneMsg:
		m.Status = StatusBar{Text: typed.Text}
		m.Loading = true
		return m, m.loadCmd()

	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil

	case AppErrorMsg:
		m.Loading = false
		if errors.Is(typed.Err, storage.ErrNotInitialized) {
			m.Status = StatusBar{Text: "no task database yet, add a task to create one"}
			m.Tasks = nil
			m.Archived = nil
			return m, nil
		}
		m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
		return m, nil

	case spinner.TickMsg:
		if !m.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(typed)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit

	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil

	case "up", m.Keys.Up:
		if m.Cursor > 0 {
			m.Cursor--
		}
		return m, nil

	case "down", m.Keys.Down:
		if m.Cursor < m.rowCount()-1 {
			m.Cursor++
		}
		return m, nil

	case m.Keys.Toggle:
		if m.CurrentView == ViewActive {
			m.CurrentView = ViewArchive
		} else {
			m.CurrentView = ViewActive
		}
		m.Cursor = 0
		m.Loading = true
		return m, m.loadCmd()

	case m.Keys.Reload:
		m.Loading = true
		return m, m.loadCmd()

	case m.Keys.Complete:
		id, ok := m.selectedID()
		if !ok || m.CurrentView != ViewActive {
			return m, nil
		}
		return m, m.completeCmd(id)

	case m.Keys.Delete:
		id, ok := m.selectedID()
		if !ok || m.CurrentView != ViewActive {
			return m, nil
		}
		return m, m.deleteCmd(id)

	case m.Keys.Archive:
		id, ok := m.selectedID()
		if !ok || m.CurrentView != ViewActive {
			return m, nil
		}
		return m, m.archiveCmd(id)
	}
	return m, nil
}

func (m Model) loadCmd() tea.Cmd {
	store := m.Store
	if m.CurrentView == ViewArchive {
		return func() tea.Msg {
			items, err := store.ListArchived(context.Background(), storage.AllProjects)
			if err != nil {
				return AppErrorMsg{Err: err}
			}
			return archiveLoadedMsg{Items: items}
		}
	}
	return func() tea.Msg {
		tasks, err := store.ListActive(context.Background(), storage.AllProjects)
		if err != nil {
			return AppErrorMsg{Err: err}
		}
		return tasksLoadedMsg{Tasks: tasks}
	}
}

func (m Model) completeCmd(id uint64) tea.Cmd {
	store := m.Store
	return func() tea.Msg {
		if err := store.ApplyUpdate(context.Background(), id, true, false); err != nil {
			return AppErrorMsg{Err: err}
		}
		return opDoneMsg{Text: fmt.Sprintf("marked task %d complete", id)}
	}
}

func (m Model) deleteCmd(id uint64) tea.Cmd {
	store := m.Store
	return func() tea.Msg {
		if err := store.ApplyUpdate(context.Background(), id, false, true); err != nil {
			return AppErrorMsg{Err: err}
		}
		return opDoneMsg{Text: fmt.Sprintf("deleted task %d", id)}
	}
}

func (m Model) archiveCmd(id uint64) tea.Cmd {
	store := m.Store
	return func() tea.Msg {
		if err := store.Archive(context.Background(), id); err != nil {
			return AppErrorMsg{Err: err}
		}
		return opDoneMsg{Text: fmt.Sprintf("archived task %d", id)}
	}
}

func (m Model) rowCount() int {
	if m.CurrentView == ViewArchive {
		return len(m.Archived)
	}
	return len(m.Tasks)
}

func (m *Model) clampCursor() {
	if max := m.rowCount() - 1; m.Cursor > max {
		m.Cursor = max
	}
	if m.Cursor < 0 {
		m.Cursor = 0
	}
}

func (m Model) selectedID() (uint64, bool) {
	if m.CurrentView == ViewArchive {
		return 0, false
	}
	if m.Cursor < 0 || m.Cursor >= len(m.Tasks) {
		return 0, false
	}
	return m.Tasks[m.Cursor].ID, true
}
