// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     tui
// Description: Demo program with one currency input per configured field
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	mdwlog "github.com/msto63/currencyedit/foundation/core/log"
	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/internal/format"
	"github.com/msto63/currencyedit/internal/tui/currencyinput"
	"github.com/msto63/currencyedit/pkg/core/config"
)

// ConfigChangedMsg carries a reloaded configuration or the reload error
type ConfigChangedMsg struct {
	Config *config.Config
	Err    error
}

// Event is one entry of the event log
type Event struct {
	Field  string
	Change field.Change
}

func (e Event) String() string {
	return e.Field + "  " + e.Change.String()
}

// Option configures the demo model
type Option func(*Model)

// WithLogger sets the logger handed to every field
func WithLogger(logger *mdwlog.Logger) Option {
	return func(m *Model) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClipboard overrides the system clipboard
func WithClipboard(clipboard field.Clipboard) Option {
	return func(m *Model) {
		m.clipboard = clipboard
	}
}

// Model is the main TUI model
type Model struct {
	cfg    *config.Config
	inputs []currencyinput.Model
	focus  int

	events []Event
	err    error

	keys  KeyMap
	help  help.Model
	width int

	logger    *mdwlog.Logger
	clipboard field.Clipboard

	// attach changes of every field, delivered by Init
	initCmd tea.Cmd
}

// NewModel creates the demo for cfg and focuses the first field
func NewModel(cfg *config.Config, opts ...Option) (Model, error) {
	m := Model{
		cfg:       cfg,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    mdwlog.Nop(),
		clipboard: currencyinput.SystemClipboard{},
	}
	for _, opt := range opts {
		opt(&m)
	}

	var cmds []tea.Cmd
	for _, fc := range cfg.Fields {
		input, err := m.newInput(fc)
		if err != nil {
			return Model{}, err
		}
		m.inputs = append(m.inputs, input)
		cmds = append(cmds, input.Flush())
	}

	if len(m.inputs) > 0 {
		var cmd tea.Cmd
		m.inputs[0], cmd = m.inputs[0].Focus()
		cmds = append(cmds, cmd)
	}
	m.initCmd = tea.Batch(cmds...)
	return m, nil
}

func (m Model) newInput(fc config.FieldConfig) (currencyinput.Model, error) {
	fieldCfg, err := fc.Build()
	if err != nil {
		return currencyinput.Model{}, err
	}
	return currencyinput.New(fc.Label, fieldCfg,
		field.WithName(fc.Name),
		field.WithLogger(m.logger),
		field.WithClipboard(m.clipboard),
	)
}

// Inputs returns the field components in display order
func (m Model) Inputs() []currencyinput.Model { return m.inputs }

// Focus returns the index of the focused field
func (m Model) Focus() int { return m.focus }

// Events returns the event log, oldest first
func (m Model) Events() []Event { return m.events }

// Err returns the last reload error
func (m Model) Err() error { return m.err }

// Init initializes the model
func (m Model) Init() tea.Cmd {
	if len(m.inputs) == 0 {
		return nil
	}
	return tea.Batch(m.initCmd, m.inputs[m.focus].Init())
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			return m.moveFocus(1)
		case key.Matches(msg, m.keys.Prev):
			return m.moveFocus(-1)
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.updateFocused(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case currencyinput.ChangedMsg:
		m.record(Event{Field: msg.Name, Change: msg.Change})
		return m, nil

	case ConfigChangedMsg:
		return m.reconfigure(msg)
	}

	return m.updateFocused(msg)
}

// updateFocused forwards msg to the focused field. A key pressed after
// enter committed the field gives it focus back first.
func (m Model) updateFocused(msg tea.Msg) (tea.Model, tea.Cmd) {
	if len(m.inputs) == 0 {
		return m, nil
	}
	var focusCmd, cmd tea.Cmd
	if _, ok := msg.(tea.KeyMsg); ok && !m.inputs[m.focus].Focused() {
		m.inputs[m.focus], focusCmd = m.inputs[m.focus].Focus()
	}
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, tea.Batch(focusCmd, cmd)
}

// moveFocus blurs the focused field, which commits it, and focuses the
// field delta steps away. A single field committed by enter is refocused.
func (m Model) moveFocus(delta int) (tea.Model, tea.Cmd) {
	switch {
	case len(m.inputs) == 0:
		return m, nil
	case len(m.inputs) == 1:
		if m.inputs[0].Focused() {
			return m, nil
		}
		var cmd tea.Cmd
		m.inputs[0], cmd = m.inputs[0].Focus()
		return m, cmd
	}
	var blurCmd, focusCmd tea.Cmd
	m.inputs[m.focus], blurCmd = m.inputs[m.focus].Blur()
	m.focus = (m.focus + delta + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus], focusCmd = m.inputs[m.focus].Focus()
	return m, tea.Batch(blurCmd, focusCmd)
}

func (m *Model) record(ev Event) {
	m.logger.Debug("value changed", mdwlog.Fields{
		"field": ev.Field,
		"state": ev.Change.State.String(),
	})
	m.events = append(m.events, ev)
	if limit := m.cfg.UI.EventLogSize; limit > 0 && len(m.events) > limit {
		m.events = m.events[len(m.events)-limit:]
	}
}

// reconfigure applies a reloaded config. Fields are matched by name: known
// ones are reconfigured in place, new ones appended, missing ones removed.
func (m Model) reconfigure(msg ConfigChangedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		m.err = msg.Err
		m.logger.WarnWithErr("config reload failed", msg.Err)
		return m, nil
	}

	existing := make(map[string]currencyinput.Model, len(m.inputs))
	focusedName := ""
	for i, input := range m.inputs {
		existing[input.Field().Name()] = input
		if i == m.focus {
			focusedName = input.Field().Name()
		}
	}

	var cmds []tea.Cmd
	inputs := make([]currencyinput.Model, 0, len(msg.Config.Fields))
	focus := 0
	for _, fc := range msg.Config.Fields {
		input, ok := existing[fc.Name]
		if ok {
			fieldCfg, err := fc.Build()
			if err != nil {
				m.err = err
				return m, nil
			}
			var cmd tea.Cmd
			input, cmd, err = input.Configure(fieldCfg)
			if err != nil {
				m.err = err
				return m, nil
			}
			input.Label = fc.Label
			cmds = append(cmds, cmd)
		} else {
			var err error
			input, err = m.newInput(fc)
			if err != nil {
				m.err = err
				return m, nil
			}
			cmds = append(cmds, input.Flush())
		}
		if fc.Name == focusedName {
			focus = len(inputs)
		}
		inputs = append(inputs, input)
	}

	if len(inputs) > 0 && !inputs[focus].Focused() {
		var cmd tea.Cmd
		inputs[focus], cmd = inputs[focus].Focus()
		cmds = append(cmds, cmd)
	}

	m.cfg = msg.Config
	m.inputs = inputs
	m.focus = focus
	m.err = nil
	m.logger.Info("config reloaded", mdwlog.Int("fields", len(inputs)))
	return m, tea.Batch(cmds...)
}

// View renders the UI
func (m Model) View() string {
	var s strings.Builder

	s.WriteString(RenderTitle(m.cfg.UI.Title))
	s.WriteString("\n")

	for i, input := range m.inputs {
		label := LabelStyle
		if i == m.focus {
			label = FocusedLabelStyle
		}
		s.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, label.Render(input.Label), input.View()))
		s.WriteString("\n")
	}

	s.WriteString(m.renderStatusBar())
	s.WriteString("\n")

	if len(m.events) > 0 {
		s.WriteString(SubtitleStyle.Render("events"))
		s.WriteString("\n")
		for _, ev := range m.events {
			s.WriteString(renderEvent(ev))
			s.WriteString("\n")
		}
	}

	if m.err != nil {
		s.WriteString(RenderError(m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(HelpStyle.Render(m.help.View(m.keys)))
	return s.String()
}

// renderStatusBar shows the latest change of the focused field, read from
// its stream
func (m Model) renderStatusBar() string {
	if len(m.inputs) == 0 {
		return StatusBarStyle.Render("no fields configured")
	}
	f := m.inputs[m.focus].Field()
	status := f.Name() + ": no value yet"
	if c, ok := f.Stream().Load(); ok {
		status = fmt.Sprintf("%s: %s", f.Name(), c)
	}
	if m.width > 0 {
		return StatusBarStyle.Width(m.width).Render(status)
	}
	return StatusBarStyle.Render(status)
}

func renderEvent(ev Event) string {
	switch ev.Change.State {
	case format.StateApplied:
		return AppliedEventStyle.Render(ev.String())
	case format.StateBelowMin, format.StateAboveMax:
		return RejectedEventStyle.Render(ev.String())
	default:
		return EventStyle.Render(ev.String())
	}
}
