package replay

import (
	"fmt"
	"io"
	"strconv"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/field"
	"github.com/msto63/currencyedit/internal/format"
)

// Result is the field display after one step. Step 0 is the state right
// after the field was attached.
type Result struct {
	Step     int
	Action   string
	Accepted bool
	Text     string
	Cursor   int
	Ghost    string
	State    format.State
	Value    *mathx.Decimal
	Focused  bool
}

// scriptClipboard holds the content of the current paste step
type scriptClipboard struct {
	content string
}

func (c *scriptClipboard) ReadAll() (string, error) { return c.content, nil }

// Run attaches a field with cfg to a fresh buffer, focuses it and replays
// the steps. opts are passed to the field; the clipboard is replaced.
func Run(script *Script, cfg field.Config, opts ...field.Option) ([]Result, error) {
	buf := field.NewBuffer()
	clip := &scriptClipboard{}

	f, err := field.New(buf, cfg, append(opts, field.WithClipboard(clip))...)
	if err != nil {
		return nil, err
	}

	results := []Result{snapshot(f, buf, 0, "attach", true)}
	f.SetFocused(true)

	for i, step := range script.Steps {
		accepted := apply(f, buf, clip, step)
		results = append(results, snapshot(f, buf, i+1, step.String(), accepted))
	}
	return results, nil
}

func apply(f *field.Field, buf *field.Buffer, clip *scriptClipboard, step Step) bool {
	switch {
	case step.Type != nil:
		accepted := true
		for _, r := range *step.Type {
			pos := buf.Cursor()
			if !f.Apply(pos, pos, string(r)) {
				accepted = false
			}
		}
		return accepted

	case step.Cursor != nil:
		buf.SetCursor(*step.Cursor)
		return buf.Cursor() == *step.Cursor

	case step.Backspace > 0:
		accepted := true
		for n := 0; n < step.Backspace; n++ {
			accepted = f.DeleteBackward() && accepted
		}
		return accepted

	case step.Delete > 0:
		accepted := true
		for n := 0; n < step.Delete; n++ {
			accepted = f.DeleteForward() && accepted
		}
		return accepted

	case step.Paste != nil:
		clip.content = *step.Paste
		return f.Paste()

	case step.Value != nil:
		return f.SetValue(*step.Value) == nil

	case step.Focus != nil:
		f.SetFocused(*step.Focus)
		return true

	case step.Clear:
		return f.SetText("")
	}
	return false
}

func snapshot(f *field.Field, buf *field.Buffer, n int, action string, accepted bool) Result {
	r := Result{
		Step:     n,
		Action:   action,
		Accepted: accepted,
		Text:     buf.Text(),
		Cursor:   buf.Cursor(),
		Ghost:    f.GhostZeros(),
		State:    f.State(),
		Focused:  f.Focused(),
	}
	if c, ok := f.Stream().Load(); ok {
		r.Value = c.Value
	}
	return r
}

// Print writes one line per result
func Print(w io.Writer, results []Result, glyph string) error {
	for _, r := range results {
		mark := " "
		if !r.Accepted {
			mark = "!"
		}
		value := "<nil>"
		if r.Value != nil {
			value = r.Value.String()
		}
		display := strconv.Quote(r.Text + r.Ghost + " " + glyph)
		_, err := fmt.Fprintf(w, "%3d %s %-24s %-20s cursor=%-3d state=%-9s value=%s\n",
			r.Step, mark, r.Action, display, r.Cursor, r.State, value)
		if err != nil {
			return err
		}
	}
	return nil
}
