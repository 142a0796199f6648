// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     currencyinput
// Description: Bubbletea component hosting a currency field
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package currencyinput is a bubbletea component that edits a currency
// amount. It keeps its text in a bubbles textinput and lets a field.Field
// filter and regroup every edit.
package currencyinput

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/internal/format"
)

// ChangedMsg carries a change reported by the field with the given id
type ChangedMsg struct {
	ID     string
	Name   string
	Change field.Change
}

// inputHost exposes a textinput as the buffer of a field
type inputHost struct {
	input *textinput.Model
}

func (h inputHost) Text() string        { return h.input.Value() }
func (h inputHost) SetText(text string) { h.input.SetValue(text) }
func (h inputHost) Cursor() int         { return h.input.Position() }
func (h inputHost) SetCursor(pos int)   { h.input.SetCursor(pos) }

// Model is the currency input component
type Model struct {
	input *textinput.Model
	field *field.Field

	// changes reported since the last Update
	pending *[]field.Change

	Keys   KeyMap
	Styles Styles
	Label  string
}

// New creates a component for cfg. Options are passed to the field.
func New(label string, cfg field.Config, opts ...field.Option) (Model, error) {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = "0"

	input := &ti
	pending := &[]field.Change{}

	f, err := field.New(inputHost{input: input}, cfg, opts...)
	if err != nil {
		return Model{}, err
	}
	f.Stream().Subscribe(func(c field.Change) {
		*pending = append(*pending, c)
	})
	// the APPLIED change of attaching was published before the subscription
	if c, ok := f.Stream().Load(); ok {
		*pending = append(*pending, c)
	}

	return Model{
		input:   input,
		field:   f,
		pending: pending,
		Keys:    DefaultKeyMap(),
		Styles:  DefaultStyles(),
		Label:   label,
	}, nil
}

// Field returns the underlying controller
func (m Model) Field() *field.Field { return m.field }

// Focused reports whether the component has focus
func (m Model) Focused() bool { return m.field.Focused() }

// Focus gives the component focus
func (m Model) Focus() (Model, tea.Cmd) {
	cmd := m.input.Focus()
	m.field.SetFocused(true)
	return m, tea.Batch(cmd, m.drain())
}

// Blur removes focus, which commits the value
func (m Model) Blur() (Model, tea.Cmd) {
	m.input.Blur()
	m.field.SetFocused(false)
	return m, m.drain()
}

// Configure replaces the field configuration and returns the resulting
// change messages
func (m Model) Configure(cfg field.Config) (Model, tea.Cmd, error) {
	if err := m.field.Configure(cfg); err != nil {
		return m, nil, err
	}
	return m, m.drain(), nil
}

// Flush returns the changes reported since the last Update, such as the
// APPLIED change of attaching the field
func (m Model) Flush() tea.Cmd {
	return m.drain()
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles keys while focused and forwards cursor blinking
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		*m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	if !m.field.Focused() {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.Keys.Commit):
		return m.Blur()

	case key.Matches(keyMsg, m.Keys.Paste):
		m.field.Paste()

	case key.Matches(keyMsg, m.Keys.Backspace):
		m.field.DeleteBackward()

	case key.Matches(keyMsg, m.Keys.Delete):
		m.field.DeleteForward()

	case key.Matches(keyMsg, m.Keys.Clear):
		m.field.SetText("")

	case key.Matches(keyMsg, m.Keys.Left, m.Keys.Right, m.Keys.Home, m.Keys.End):
		var cmd tea.Cmd
		*m.input, cmd = m.input.Update(msg)
		return m, cmd

	case keyMsg.Type == tea.KeyRunes && !keyMsg.Alt:
		pos := m.input.Position()
		m.field.Apply(pos, pos, string(keyMsg.Runes))
	}

	return m, m.drain()
}

// drain turns the changes collected by the stream subscription into a
// command emitting ChangedMsg values
func (m Model) drain() tea.Cmd {
	if len(*m.pending) == 0 {
		return nil
	}
	changes := *m.pending
	*m.pending = nil

	cmds := make([]tea.Cmd, 0, len(changes))
	for _, c := range changes {
		msg := ChangedMsg{ID: m.field.ID(), Name: m.field.Name(), Change: c}
		cmds = append(cmds, func() tea.Msg { return msg })
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Sequence(cmds...)
}

// View renders the text, the ghost zeros, the spacing and the glyph
func (m Model) View() string {
	var b strings.Builder
	if m.field.Focused() {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(m.Styles.Text.Render(m.input.Value()))
	}
	if ghost := m.field.GhostZeros(); ghost != "" {
		b.WriteString(m.Styles.Ghost.Render(ghost))
	}
	b.WriteString(strings.Repeat(" ", m.field.Config().Spacing))
	b.WriteString(m.Styles.Glyph.Render(m.field.Glyph()))

	frame := m.Styles.Frame
	switch {
	case m.field.State() == format.StateBelowMin || m.field.State() == format.StateAboveMax:
		frame = m.Styles.InvalidFrame
	case m.field.Focused():
		frame = m.Styles.FocusedFrame
	}
	return frame.Render(b.String())
}

// Width returns the display width of the unframed line
func (m Model) Width() int {
	return utf8.RuneCountInString(m.input.Value()+m.field.GhostZeros()) +
		m.field.Config().Spacing + utf8.RuneCountInString(m.field.Glyph())
}
