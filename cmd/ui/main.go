// Terminal UI for the todo API: pending/completed tabs, add, toggle and
// delete, with optimistic updates that roll back when the server call fails.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/hassan-newpage/todo-nextjs/pkg/client"
	"github.com/hassan-newpage/todo-nextjs/pkg/optimistic"

	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	apiURL := flag.String("api", "http://localhost:8080", "base URL of the todo API")
	flag.Parse()

	m := newModel(client.New(*apiURL))
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatalf("ui: %v", err)
	}
}

type tab int

const (
	tabPending tab = iota
	tabCompleted
)

type model struct {
	api    *client.Client
	state  *optimistic.State
	tab    tab
	cursor int
	adding bool
	input  string
	status string
	loaded bool
}

func newModel(api *client.Client) *model {
	return &model{api: api, state: optimistic.NewState()}
}

type listMsg struct {
	todos []client.Todo
	err   error
}

type createdMsg struct {
	mut  *optimistic.Mutation
	todo client.Todo
	err  error
}

type updatedMsg struct {
	mut  *optimistic.Mutation
	todo client.Todo
	err  error
}

type deletedMsg struct {
	mut *optimistic.Mutation
	err error
}

func (m *model) Init() tea.Cmd {
	return m.fetchList()
}

func (m *model) fetchList() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		todos, err := m.api.ListTodos(ctx)
		return listMsg{todos: todos, err: err}
	}
}

func (m *model) createCmd(mut *optimistic.Mutation, in client.TodoInput) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		t, err := m.api.CreateTodo(ctx, in)
		return createdMsg{mut: mut, todo: t, err: err}
	}
}

func (m *model) toggleCmd(mut *optimistic.Mutation, id string, completed bool) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		t, err := m.api.UpdateTodo(ctx, id, client.TodoPatch{Completed: &completed})
		return updatedMsg{mut: mut, todo: t, err: err}
	}
}

func (m *model) deleteCmd(mut *optimistic.Mutation, id string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		err := m.api.DeleteTodo(ctx, id)
		return deletedMsg{mut: mut, err: err}
	}
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case listMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
			return m, nil
		}
		m.loaded = true
		m.status = ""
		m.state.Replace(msg.todos)
		m.clampCursor()
		return m, nil

	case createdMsg:
		if msg.err != nil {
			m.state.Rollback(msg.mut)
			m.status = msg.err.Error()
		} else {
			m.state.Commit(msg.mut, &msg.todo)
		}
		m.clampCursor()
		return m, nil

	case updatedMsg:
		if msg.err != nil {
			m.state.Rollback(msg.mut)
			m.status = msg.err.Error()
		} else {
			m.state.Commit(msg.mut, &msg.todo)
		}
		m.clampCursor()
		return m, nil

	case deletedMsg:
		if msg.err != nil {
			m.state.Rollback(msg.mut)
			m.status = msg.err.Error()
		} else {
			m.state.Commit(msg.mut, nil)
		}
		m.clampCursor()
		return m, nil

	case tea.KeyMsg:
		if m.adding {
			return m.updateAdding(msg)
		}
		return m.updateBrowsing(msg)
	}
	return m, nil
}

func (m *model) updateAdding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.adding = false
		m.input = ""
	case tea.KeyEnter:
		title := strings.TrimSpace(m.input)
		m.adding = false
		m.input = ""
		if title == "" {
			return m, nil
		}
		in := client.TodoInput{Title: title}
		mut := m.state.StageCreate(in)
		return m, m.createCmd(mut, in)
	case tea.KeyBackspace:
		if len(m.input) > 0 {
			runes := []rune(m.input)
			m.input = string(runes[:len(runes)-1])
		}
	case tea.KeySpace:
		m.input += " "
	case tea.KeyRunes:
		m.input += string(msg.Runes)
	}
	return m, nil
}

func (m *model) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "tab":
		if m.tab == tabPending {
			m.tab = tabCompleted
		} else {
			m.tab = tabPending
		}
		m.cursor = 0
	case "r":
		return m, m.fetchList()
	case "a":
		m.adding = true
		m.input = ""
		m.status = ""
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.visible())-1 {
			m.cursor++
		}
	case " ", "enter":
		todos := m.visible()
		if m.cursor < len(todos) {
			t := todos[m.cursor]
			mut := m.state.StageUpdate(t.ID, client.TodoPatch{Completed: boolPtr(!t.Completed)})
			if mut != nil {
				return m, m.toggleCmd(mut, t.ID, !t.Completed)
			}
		}
	case "d":
		todos := m.visible()
		if m.cursor < len(todos) {
			t := todos[m.cursor]
			mut := m.state.StageDelete(t.ID)
			if mut != nil {
				m.clampCursor()
				return m, m.deleteCmd(mut, t.ID)
			}
		}
	}
	return m, nil
}

func (m *model) visible() []client.Todo {
	if m.tab == tabPending {
		return m.state.Pending()
	}
	return m.state.Completed()
}

func (m *model) clampCursor() {
	if n := len(m.visible()); m.cursor >= n && n > 0 {
		m.cursor = n - 1
	} else if n == 0 {
		m.cursor = 0
	}
}

func (m *model) View() string {
	var b strings.Builder
	b.WriteString("Todo\n\n")

	pending, completed := m.state.Pending(), m.state.Completed()
	tabs := []string{
		fmt.Sprintf("Pending (%d)", len(pending)),
		fmt.Sprintf("Completed (%d)", len(completed)),
	}
	if m.tab == tabPending {
		tabs[0] = "[" + tabs[0] + "]"
	} else {
		tabs[1] = "[" + tabs[1] + "]"
	}
	b.WriteString(tabs[0] + "  " + tabs[1] + "\n\n")

	if !m.loaded {
		b.WriteString("  loading...\n")
	} else {
		todos := m.visible()
		if len(todos) == 0 {
			if m.tab == tabPending {
				b.WriteString("  No pending tasks. Add a task to get started!\n")
			} else {
				b.WriteString("  No completed tasks yet.\n")
			}
		}
		for i, t := range todos {
			cursor := "  "
			if i == m.cursor {
				cursor = "> "
			}
			check := "[ ]"
			if t.Completed {
				check = "[x]"
			}
			line := fmt.Sprintf("%s%s %s", cursor, check, t.Title)
			if strings.HasPrefix(t.ID, "temp-") {
				line += " (saving...)"
			}
			if t.TaskDate != "" {
				line += "  " + t.TaskDate
			}
			if t.TaskTime != nil {
				line += " " + *t.TaskTime
			}
			b.WriteString(line + "\n")
		}
	}

	if m.adding {
		b.WriteString("\nNew task: " + m.input + "▌\n")
		b.WriteString("enter: save  esc: cancel\n")
	} else {
		b.WriteString("\na: add  space: toggle  d: delete  tab: switch  r: refresh  q: quit\n")
	}
	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}
	return b.String()
}

func boolPtr(v bool) *bool { return &v }
