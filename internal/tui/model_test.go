package tui

import (
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/format"
	"github.com/msto63/currencyedit/internal/tui/currencyinput"
	"github.com/msto63/currencyedit/pkg/core/config"
)

type stubClipboard string

func (s stubClipboard) ReadAll() (string, error) { return string(s), nil }

func intPtr(i int) *int { return &i }

func decPtr(s string) *mathx.Decimal {
	d := mathx.MustNewDecimal(s)
	return &d
}

func testConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.EventLogSize = 3
	cfg.Fields = []config.FieldConfig{
		{Name: "price", Label: "Price", Digits: intPtr(2), Max: decPtr("1000")},
		{Name: "tip", Label: "Tip", Currency: mathx.CurrencyEUR},
	}
	return cfg
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m, err := NewModel(testConfig(), WithClipboard(stubClipboard("42")))
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	return m
}

// send feeds msg and every message produced by the returned command back
// into the model, the way the bubbletea runtime would
func send(m Model, msg tea.Msg) Model {
	queue := []tea.Msg{msg}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]

		updated, cmd := m.Update(next)
		m = updated.(Model)
		queue = append(queue, collect(cmd)...)
	}
	return m
}

// collect runs cmd and flattens batches, keeping only messages the model
// handles itself
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, collect(c)...)
		}
		return out
	case currencyinput.ChangedMsg, ConfigChangedMsg:
		return []tea.Msg{msg}
	default:
		return nil
	}
}

// typeText clears the focused field and types text into it
func typeText(m Model, text string) Model {
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlU})
	for _, r := range text {
		m = send(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return m
}

func TestNewModelFocusesFirstField(t *testing.T) {
	m := newTestModel(t)

	if len(m.Inputs()) != 2 {
		t.Fatalf("len(Inputs()) = %d, want 2", len(m.Inputs()))
	}
	if !m.Inputs()[0].Focused() || m.Inputs()[1].Focused() {
		t.Error("only the first field should be focused")
	}
	if got := m.Inputs()[0].Field().Text(); got != "0.00" {
		t.Errorf("price text = %q, want 0.00", got)
	}
}

func TestNewModelInvalidField(t *testing.T) {
	cfg := testConfig()
	cfg.Fields[0].Min = decPtr("5")
	cfg.Fields[0].Max = decPtr("1")

	if _, err := NewModel(cfg); err == nil {
		t.Error("NewModel() expected error for crossed bounds")
	}
}

func TestTabCommitsAndMovesFocus(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "1500")
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})

	if m.Focus() != 1 {
		t.Fatalf("Focus() = %d, want 1", m.Focus())
	}
	price := m.Inputs()[0].Field()
	if got := price.Text(); got != "1 000.00" {
		t.Errorf("price text = %q, want %q", got, "1 000.00")
	}
	if price.State() != format.StateApplied {
		t.Errorf("price state = %v, want applied", price.State())
	}

	events := m.Events()
	if len(events) == 0 {
		t.Fatal("no events recorded")
	}
	last := events[len(events)-1]
	if last.Field != "price" || last.Change.State != format.StateApplied {
		t.Errorf("last event = %v, want price applied", last)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.Focus() != 0 {
		t.Errorf("Focus() = %d, want 0 after shift+tab", m.Focus())
	}
}

func TestEventLogIsCapped(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "123456")

	if got := len(m.Events()); got != 3 {
		t.Errorf("len(Events()) = %d, want 3", got)
	}
	last := m.Events()[2]
	if last.Change.Value == nil || last.Change.Value.String() != "123456" {
		t.Errorf("last event = %v, want 123456", last)
	}
}

func TestPasteThroughDemo(t *testing.T) {
	m := newTestModel(t)
	m = send(m, tea.KeyMsg{Type: tea.KeyCtrlV})

	if got := m.Inputs()[0].Field().Text(); got != "42.00" {
		t.Errorf("text after paste = %q, want 42.00", got)
	}
}

func TestConfigChangedReconfigures(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "900")

	next := testConfig()
	next.Fields[0].Max = decPtr("500")
	next.Fields[0].Label = "Net price"
	next.Fields = append(next.Fields[:1], config.FieldConfig{Name: "fee", Label: "Fee"})

	m = send(m, ConfigChangedMsg{Config: next})

	if m.Err() != nil {
		t.Fatalf("Err() = %v", m.Err())
	}
	inputs := m.Inputs()
	if len(inputs) != 2 {
		t.Fatalf("len(Inputs()) = %d, want 2", len(inputs))
	}
	if got := inputs[0].Field().Text(); got != "500" {
		t.Errorf("price text = %q, want 500", got)
	}
	if inputs[0].Label != "Net price" {
		t.Errorf("Label = %q, want Net price", inputs[0].Label)
	}
	if inputs[1].Field().Name() != "fee" {
		t.Errorf("second field = %q, want fee", inputs[1].Field().Name())
	}
	if !inputs[0].Focused() || m.Focus() != 0 {
		t.Error("price should keep focus")
	}
}

func TestConfigChangedError(t *testing.T) {
	m := newTestModel(t)
	m = send(m, ConfigChangedMsg{Err: errors.New("broken file")})

	if m.Err() == nil {
		t.Fatal("Err() = nil, want reload error")
	}
	if len(m.Inputs()) != 2 {
		t.Errorf("inputs changed on failed reload")
	}
	if !strings.Contains(m.View(), "broken file") {
		t.Error("View() does not show the reload error")
	}
}

func TestQuit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c returned no command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("ctrl+c did not quit")
	}
}

func TestViewShowsFieldsAndStatus(t *testing.T) {
	m := newTestModel(t)
	m = typeText(m, "12")
	view := m.View()

	for _, want := range []string{"Price", "Tip", "₽", "€", "price: value=12 state=ok"} {
		if !strings.Contains(view, want) {
			t.Errorf("View() missing %q", want)
		}
	}
}

func TestEnterThenTypeRefocuses(t *testing.T) {
	m, err := NewModel(config.Default())
	if err != nil {
		t.Fatalf("NewModel() error = %v", err)
	}
	if len(m.Inputs()) != 1 {
		t.Fatalf("len(Inputs()) = %d, want 1", len(m.Inputs()))
	}

	m = typeText(m, "12")
	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.Inputs()[0].Focused() {
		t.Fatal("enter should commit and blur the field")
	}

	m = typeText(m, "7")
	f := m.Inputs()[0].Field()
	if !m.Inputs()[0].Focused() {
		t.Error("typing after enter should refocus the field")
	}
	if got := f.Text(); got != "7" {
		t.Errorf("text after retyping = %q, want 7", got)
	}

	m = send(m, tea.KeyMsg{Type: tea.KeyEnter})
	m = send(m, tea.KeyMsg{Type: tea.KeyTab})
	if !m.Inputs()[0].Focused() {
		t.Error("tab should refocus a single committed field")
	}
}

func TestInitReportsAttachedFields(t *testing.T) {
	m := newTestModel(t)
	for _, msg := range collect(m.Init()) {
		m = send(m, msg)
	}

	var names []string
	for _, ev := range m.Events() {
		if ev.Change.State != format.StateApplied {
			t.Errorf("event %v, want applied", ev)
		}
		names = append(names, ev.Field)
	}
	if got := strings.Join(names, ","); got != "price,tip" {
		t.Errorf("attach events = %s, want price,tip", got)
	}
}
