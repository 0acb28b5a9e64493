// Package planner hosts the Bubble Tea program for the trek event planner.
package planner

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/trek/pkg/app"
	"tableflip.dev/trek/pkg/event"
	"tableflip.dev/trek/pkg/session"
	"tableflip.dev/trek/pkg/store"
)

type mode int

const (
	modeBrowse mode = iota
	modeForm
)

// form field order
const (
	fieldTitle = iota
	fieldStart
	fieldEnd
	fieldDescription
	fieldColor
	fieldCount
)

type eventItem struct{ e event.Event }

func (it eventItem) Title() string { return it.e.Title }
func (it eventItem) Description() string {
	if it.e.End.IsZero() {
		return string(it.e.Start)
	}
	return fmt.Sprintf("%s → %s", it.e.Start, it.e.End)
}
func (it eventItem) FilterValue() string { return it.e.Title }

type eventsLoadedMsg struct{ items []list.Item }
type changeMsg struct{ owner string }
type errMsg struct{ err error }

// Model contains the planner UI state.
type Model struct {
	svc   *app.Service
	owner string
	ctx   context.Context
	sess  *session.Session

	mode mode

	events list.Model
	inputs []textinput.Model
	focus  int

	status string

	changes <-chan store.Change

	termWidth  int
	termHeight int
}

// New creates a planner model backed by the Service.
func New(svc *app.Service, owner string) Model {
	d := list.NewDefaultDelegate()
	d.SetSpacing(0)

	l := list.New([]list.Item{}, d, 80, 20)
	l.Title = "Upcoming"
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)

	inputs := make([]textinput.Model, fieldCount)
	for i := range inputs {
		ti := textinput.New()
		ti.CharLimit = 256
		ti.Prompt = ""
		inputs[i] = ti
	}
	inputs[fieldTitle].Placeholder = "Title"
	inputs[fieldStart].Placeholder = "Start (2026-01-02T15:04)"
	inputs[fieldEnd].Placeholder = "End"
	inputs[fieldDescription].Placeholder = "Description"
	inputs[fieldColor].Placeholder = event.DefaultColor

	ctx := context.Background()
	m := Model{
		svc:    svc,
		owner:  owner,
		ctx:    ctx,
		sess:   session.New(),
		mode:   modeBrowse,
		events: l,
		inputs: inputs,
		status: "j/k move, a add, e edit, d delete, r refresh, q quit",
	}
	if ch, err := svc.Watch(ctx); err == nil {
		m.changes = ch
	}
	return m
}

// Init loads initial data and begins watching for store changes.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadEvents(), m.waitForChange())
}

func (m *Model) loadEvents() tea.Cmd {
	return func() tea.Msg {
		events, err := m.svc.Upcoming(m.ctx, m.owner)
		if err != nil {
			return errMsg{err}
		}
		items := make([]list.Item, 0, len(events))
		for _, e := range events {
			items = append(items, eventItem{e: e})
		}
		return eventsLoadedMsg{items}
	}
}

func (m *Model) waitForChange() tea.Cmd {
	if m.changes == nil {
		return nil
	}
	ch := m.changes
	return func() tea.Msg {
		c, ok := <-ch
		if !ok {
			return nil
		}
		return changeMsg{owner: c.Owner}
	}
}

func (m *Model) selected() *event.Event {
	if len(m.events.Items()) == 0 {
		return nil
	}
	sel := m.events.SelectedItem()
	if sel == nil {
		return nil
	}
	it, _ := sel.(eventItem)
	return &it.e
}

// Update handles messages and keybindings.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd
	skipListRouting := false

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.termWidth = msg.Width
		m.termHeight = msg.Height
		m.applySizes()
	case errMsg:
		m.status = "ERR: " + msg.err.Error()
	case eventsLoadedMsg:
		m.events.SetItems(msg.items)
	case changeMsg:
		if msg.owner == m.owner {
			cmds = append(cmds, m.loadEvents())
		}
		cmds = append(cmds, m.waitForChange())
	case tea.KeyMsg:
		switch m.mode {
		case modeForm:
			switch msg.String() {
			case "esc":
				m.sess.Cancel()
				m.mode = modeBrowse
				m.blurInputs()
				m.status = "Cancelled"
				skipListRouting = true
			case "tab", "down":
				m.focusField((m.focus + 1) % fieldCount, &cmds)
				skipListRouting = true
			case "shift+tab", "up":
				m.focusField((m.focus+fieldCount-1)%fieldCount, &cmds)
				skipListRouting = true
			case "enter", "ctrl+s":
				if msg.String() == "enter" && m.focus < fieldCount-1 {
					m.focusField(m.focus+1, &cmds)
					skipListRouting = true
					break
				}
				m.commit(&cmds)
				skipListRouting = true
			default:
				var cmd tea.Cmd
				m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
				cmds = append(cmds, cmd)
				skipListRouting = true
			}
		case modeBrowse:
			switch msg.String() {
			case "q", "ctrl+c":
				cmds = append(cmds, tea.Quit)
			case "j", "down":
				m.events.CursorDown()
			case "k", "up":
				m.events.CursorUp()
			case "r":
				cmds = append(cmds, m.loadEvents())
			case "a":
				if err := m.sess.OpenForCreate("", ""); err != nil {
					m.status = "ERR: " + err.Error()
					break
				}
				m.openForm(m.sess.Draft(), &cmds)
				m.status = "New event (enter/ctrl+s save, esc cancel)"
				skipListRouting = true
			case "e":
				if e := m.selected(); e != nil {
					if err := m.sess.OpenForEdit(*e); err != nil {
						m.status = "ERR: " + err.Error()
						break
					}
					m.openForm(m.sess.Draft(), &cmds)
					m.status = "Edit event (enter/ctrl+s save, esc cancel)"
					skipListRouting = true
				}
			case "d":
				if e := m.selected(); e != nil {
					if err := m.sess.OpenForEdit(*e); err != nil {
						m.status = "ERR: " + err.Error()
						break
					}
					if _, err := m.sess.Delete(m.ctx, m.owner, m.svc.Persistence); err != nil {
						m.sess.Cancel()
						m.status = "ERR: " + err.Error()
					} else {
						m.status = "Deleted"
						cmds = append(cmds, m.loadEvents())
					}
				}
			}
		}
	}

	if m.mode == modeBrowse && !skipListRouting {
		var cmd tea.Cmd
		m.events, cmd = m.events.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) openForm(draft event.Event, cmds *[]tea.Cmd) {
	m.mode = modeForm
	m.inputs[fieldTitle].SetValue(draft.Title)
	m.inputs[fieldStart].SetValue(string(draft.Start))
	m.inputs[fieldEnd].SetValue(string(draft.End))
	m.inputs[fieldDescription].SetValue(draft.Description)
	m.inputs[fieldColor].SetValue(draft.Color)
	m.focusField(fieldTitle, cmds)
}

func (m *Model) focusField(i int, cmds *[]tea.Cmd) {
	m.focus = i
	for j := range m.inputs {
		if j == i {
			if cmd := m.inputs[j].Focus(); cmd != nil {
				*cmds = append(*cmds, cmd)
			}
			m.inputs[j].CursorEnd()
		} else {
			m.inputs[j].Blur()
		}
	}
	*cmds = append(*cmds, textinput.Blink)
}

func (m *Model) blurInputs() {
	for j := range m.inputs {
		m.inputs[j].Blur()
	}
}

func (m *Model) commit(cmds *[]tea.Cmd) {
	draft := m.sess.Draft()
	draft.Title = m.inputs[fieldTitle].Value()
	draft.Start = event.Timestamp(m.inputs[fieldStart].Value())
	draft.End = event.Timestamp(m.inputs[fieldEnd].Value())
	draft.Description = m.inputs[fieldDescription].Value()
	draft.Color = event.NormalizeColor(m.inputs[fieldColor].Value())

	if err := m.sess.SetDraft(draft); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	if _, err := m.sess.Commit(m.ctx, m.owner, m.svc.Persistence); err != nil {
		m.status = "ERR: " + err.Error()
		return
	}
	m.mode = modeBrowse
	m.blurInputs()
	m.status = "Saved"
	*cmds = append(*cmds, m.loadEvents())
}

// View renders the upcoming list plus the form overlay while editing.
func (m Model) View() string {
	body := m.events.View()

	if e := m.selected(); e != nil && e.Description != "" && m.mode == modeBrowse {
		width := m.termWidth
		if width <= 0 {
			width = 80
		}
		desc := wordwrap.String(e.Description, width-2)
		body += "\n\n" + lipgloss.NewStyle().Faint(true).Render(desc)
	}

	if m.mode == modeForm {
		labels := []string{"Title", "Start", "End", "Description", "Color"}
		form := ""
		for i, ti := range m.inputs {
			marker := "  "
			if i == m.focus {
				marker = "» "
			}
			form += fmt.Sprintf("%s%-12s %s\n", marker, labels[i], ti.View())
		}
		panel := lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(1, 2)
		body += "\n\n" + panel.Render(form)
	}

	status := lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render(m.status)
	return body + "\n\n" + status
}

func (m *Model) applySizes() {
	if m.termWidth == 0 || m.termHeight == 0 {
		return
	}
	height := m.termHeight - 8
	if height < 5 {
		height = 5
	}
	m.events.SetSize(m.termWidth, height)
}

// Run starts the planner program.
func Run(svc *app.Service, owner string) error {
	p := tea.NewProgram(New(svc, owner), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
