package field

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	mdwlog "github.com/msto63/currencyedit/foundation/core/log"
	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/format"
)

// Host is the text buffer a field formats. Cursor offsets count runes.
type Host interface {
	Text() string
	SetText(text string)
	Cursor() int
	SetCursor(pos int)
}

// Clipboard provides the latest copied plain text
type Clipboard interface {
	ReadAll() (string, error)
}

// OnValueChanged receives every value the field reports
type OnValueChanged func(value *mathx.Decimal, state format.State)

// EditEvent describes a mutation the host already applied to its buffer.
// Cursor is the rune offset in New right after the inserted text.
type EditEvent struct {
	Inserted string
	New      string
	Old      string
	Cursor   int
}

// Option configures a Field
type Option func(*Field)

// WithLogger sets the logger; fields log nothing by default
func WithLogger(logger *mdwlog.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithClipboard sets the clipboard used by Paste
func WithClipboard(clipboard Clipboard) Option {
	return func(f *Field) {
		f.clipboard = clipboard
	}
}

// WithOnValueChanged sets the change callback
func WithOnValueChanged(fn OnValueChanged) Option {
	return func(f *Field) {
		f.onValueChanged = fn
	}
}

// WithName names the field in logs
func WithName(name string) Option {
	return func(f *Field) {
		f.name = name
	}
}

// Field formats currency input in a host buffer
type Field struct {
	host      Host
	cfg       Config
	focused   bool
	state     format.State
	clipboard Clipboard

	onValueChanged OnValueChanged
	stream         *Stream

	id     string
	name   string
	logger *mdwlog.Logger
}

// New attaches a field to host. The start value is rendered as committed
// text and reported with StateApplied.
func New(host Host, cfg Config, opts ...Option) (*Field, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	f := &Field{
		host:   host,
		cfg:    cfg,
		stream: NewStream(),
		id:     uuid.New().String(),
		logger: mdwlog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	f.logger = f.logger.WithFields(mdwlog.Fields{
		"field_id": f.id,
		"field":    f.name,
	})

	f.host.SetText(format.Format(format.PrepareToShow(cfg.Start, cfg.Digits)))
	f.Commit()

	f.logger.Debug("field attached", mdwlog.Fields{
		"digits":   cfg.Digits.String(),
		"currency": cfg.Currency.Code(),
	})
	return f, nil
}

// ID returns the unique id of the field
func (f *Field) ID() string { return f.id }

// Name returns the name given with WithName
func (f *Field) Name() string { return f.name }

// Config returns the current configuration
func (f *Field) Config() Config { return f.cfg }

// Stream returns the stream of reported changes
func (f *Field) Stream() *Stream { return f.stream }

// State returns the state of the last report
func (f *Field) State() format.State { return f.state }

// Focused reports whether the field has focus
func (f *Field) Focused() bool { return f.focused }

// Text returns the displayed text
func (f *Field) Text() string { return f.host.Text() }

// Glyph returns the currency symbol drawn after the text
func (f *Field) Glyph() string { return f.cfg.Currency.Symbol() }

// GhostZeros returns the padding that commit would append to the text
func (f *Field) GhostZeros() string {
	return format.Pad(f.host.Text(), f.cfg.Digits)
}

// Value parses the displayed text. It returns nil when the text holds no
// number.
func (f *Field) Value() *mathx.Decimal {
	return mathx.ParseDecimal(format.Strip(f.host.Text()))
}

// OnValueChanged replaces the change callback
func (f *Field) OnValueChanged(fn OnValueChanged) {
	f.onValueChanged = fn
}

// Filter runs the input filter against the current text
func (f *Field) Filter(candidate string, start, end int) string {
	return format.Filter(candidate, f.host.Text(), start, end, f.cfg.Digits)
}

// Apply replaces the rune range [start,end) with candidate if the filter
// accepts the result, then reformats. It reports whether the edit happened.
func (f *Field) Apply(start, end int, candidate string) bool {
	current := f.host.Text()
	if !format.Accepts(candidate, current, start, end, f.cfg.Digits) {
		f.logger.Trace("edit rejected", mdwlog.Fields{"candidate": candidate})
		return false
	}

	inserted := strings.ReplaceAll(candidate, ",", ".")
	n := utf8.RuneCountInString(current)
	lo := start
	if end < lo {
		lo = end
	}
	lo = max(0, min(lo, n))

	f.HandleEdit(EditEvent{
		Inserted: inserted,
		New:      format.Splice(current, start, end, inserted),
		Old:      current,
		Cursor:   lo + utf8.RuneCountInString(inserted),
	})
	return true
}

// DeleteBackward removes the character in front of the cursor. A group
// separator is skipped so the digit before it goes instead.
func (f *Field) DeleteBackward() bool {
	runes := []rune(f.host.Text())
	pos := min(f.host.Cursor(), len(runes))
	if pos <= 0 {
		return false
	}
	start := pos - 1
	if runes[start] == format.Separator && start > 0 {
		start--
	}
	return f.Apply(start, pos, "")
}

// DeleteForward removes the character behind the cursor, skipping a group
// separator the same way
func (f *Field) DeleteForward() bool {
	runes := []rune(f.host.Text())
	pos := max(f.host.Cursor(), 0)
	if pos >= len(runes) {
		return false
	}
	end := pos + 1
	if runes[pos] == format.Separator && end < len(runes) {
		end++
	}
	return f.Apply(pos, end, "")
}

// HandleEdit reformats a mutation the host already performed and reports
// the result: the live state while focused, a commit otherwise
func (f *Field) HandleEdit(ev EditEvent) {
	text, cursor := format.Reflow(ev.Old, ev.New, ev.Inserted, ev.Cursor)
	if f.host.Text() != text {
		f.host.SetText(text)
	}
	f.host.SetCursor(cursor)

	if !f.focused {
		f.Commit()
		return
	}

	value := f.Value()
	f.report(value, format.Evaluate(value, f.cfg.Min, f.cfg.Max))
}

// SetFocused changes focus. Losing focus commits the value.
func (f *Field) SetFocused(focused bool) {
	if f.focused == focused {
		return
	}
	f.focused = focused
	if !focused {
		f.Commit()
	}
}

// Commit normalizes, clamps and pads the value and reports it with
// StateApplied. An empty field commits as zero.
func (f *Field) Commit() {
	value := mathx.Zero()
	if v := f.Value(); v != nil {
		value = *v
	}

	value = format.Normalize(value, f.cfg.Digits)
	value = format.ClampTo(value, f.cfg.Min, f.cfg.Max, f.cfg.Digits)
	value = format.PrepareToShow(value, f.cfg.Digits)

	text := format.Format(value)
	if f.host.Text() != text {
		f.host.SetText(text)
		f.host.SetCursor(utf8.RuneCountInString(text))
	}

	f.logger.Debug("value committed", mdwlog.Fields{"value": value.String()})
	f.report(&value, format.StateApplied)
}

// SetText replaces the whole text as if typed. It reports whether the
// filter accepted it.
func (f *Field) SetText(text string) bool {
	return f.Apply(0, utf8.RuneCountInString(f.host.Text()), text)
}

// SetValue displays value. Negative values cannot be shown.
func (f *Field) SetValue(value mathx.Decimal) error {
	if value.IsNegative() {
		return mdwerror.New("negative values cannot be displayed").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("field.SetValue").
			WithDetail("value", value.String())
	}
	f.replace(format.Normalize(value, f.cfg.Digits).String())
	return nil
}

// Paste replaces the text with the clipboard content. Commas count as
// decimal points and spaces are ignored. Content that is not a number is
// ignored and Paste returns false.
func (f *Field) Paste() bool {
	if f.clipboard == nil {
		return false
	}
	content, err := f.clipboard.ReadAll()
	if err != nil {
		f.logger.Debug("clipboard unavailable", mdwlog.Err(err))
		return false
	}

	cleaned := strings.ReplaceAll(strings.ReplaceAll(content, ",", "."), " ", "")
	value := mathx.ParseDecimal(cleaned)
	if value == nil || value.IsNegative() {
		f.logger.Debug("clipboard content ignored", mdwlog.Fields{"content": content})
		return false
	}

	f.replace(format.PrepareToShow(*value, f.cfg.Digits).String())
	return true
}

// replace swaps the whole text for flat text that is known to be valid
func (f *Field) replace(flat string) {
	f.HandleEdit(EditEvent{
		Inserted: flat,
		New:      flat,
		Old:      f.host.Text(),
		Cursor:   utf8.RuneCountInString(flat),
	})
}

// SetMin changes the minimum. A minimum above the maximum is rejected.
func (f *Field) SetMin(min *mathx.Decimal) error {
	if err := validateBounds(min, f.cfg.Max); err != nil {
		return err
	}
	f.cfg.Min = min
	f.reclamp()
	return nil
}

// SetMax changes the maximum. A maximum below the minimum is rejected.
func (f *Field) SetMax(max *mathx.Decimal) error {
	if err := validateBounds(f.cfg.Min, max); err != nil {
		return err
	}
	f.cfg.Max = max
	f.reclamp()
	return nil
}

// SetDigits changes the accuracy and truncates the text to it
func (f *Field) SetDigits(digits format.Digits) error {
	if !digits.IsValid() {
		return mdwerror.Newf("invalid accuracy %d: must be non-negative", int(digits)).
			WithCode(mdwerror.CodeInvalidAccuracy).
			WithOperation("field.SetDigits").
			WithDetail("digits", int(digits))
	}
	f.cfg.Digits = digits
	f.refit()
	return nil
}

// SetCurrency changes the glyph
func (f *Field) SetCurrency(currency mathx.CurrencyType) error {
	if !currency.IsValid() {
		return mdwerror.Newf("unknown currency type %d", int(currency)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("field.SetCurrency")
	}
	f.cfg.Currency = currency
	return nil
}

// SetSpacing changes the gap before the glyph
func (f *Field) SetSpacing(spacing int) error {
	if spacing < 0 {
		return mdwerror.Newf("invalid spacing %d: must be non-negative", spacing).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("field.SetSpacing")
	}
	f.cfg.Spacing = spacing
	return nil
}

// Configure replaces the whole configuration. The start value only matters
// when the field is created and is kept as given. Nothing is applied when
// cfg is invalid.
func (f *Field) Configure(cfg Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	f.cfg = cfg
	f.logger.Info("field reconfigured", mdwlog.Fields{
		"digits":   cfg.Digits.String(),
		"currency": cfg.Currency.Code(),
	})
	f.refit()
	return nil
}

// reclamp moves a value outside new bounds onto the nearest bound
func (f *Field) reclamp() {
	if !f.focused {
		f.Commit()
		return
	}
	value := f.Value()
	if value == nil {
		return
	}
	clamped := format.ClampTo(*value, f.cfg.Min, f.cfg.Max, f.cfg.Digits)
	if !clamped.Equal(*value) {
		f.replace(clamped.String())
	}
}

// refit brings the text in line with the whole configuration
func (f *Field) refit() {
	if !f.focused {
		f.Commit()
		return
	}
	if !format.Accepts("", f.host.Text(), 0, 0, f.cfg.Digits) {
		if value := f.Value(); value != nil {
			f.replace(format.Normalize(*value, f.cfg.Digits).String())
		}
	}
	f.reclamp()
}

// report hands a change to the callback and the stream
func (f *Field) report(value *mathx.Decimal, state format.State) {
	f.state = state
	if f.onValueChanged != nil {
		f.onValueChanged(value, state)
	}
	f.stream.publish(Change{Value: value, State: state})
}
