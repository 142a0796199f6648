package field

import (
	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/internal/format"
)

// DefaultSpacing is the gap between the text and the currency glyph
const DefaultSpacing = 2

// Config holds the formatting configuration of a field
type Config struct {
	Min      *mathx.Decimal
	Max      *mathx.Decimal
	Digits   format.Digits
	Start    mathx.Decimal
	Currency mathx.CurrencyType
	Spacing  int
}

// DefaultConfig returns a field without bounds, with unlimited fractional
// digits, starting at 0 in the default currency
func DefaultConfig() Config {
	return Config{
		Digits:   format.Unlimited,
		Currency: mathx.DefaultCurrency,
		Spacing:  DefaultSpacing,
	}
}

// Validate checks the invariants of the configuration
func (c Config) Validate() error {
	if err := validateBounds(c.Min, c.Max); err != nil {
		return err
	}
	if !c.Digits.IsValid() {
		return mdwerror.Newf("invalid accuracy %d: must be non-negative", int(c.Digits)).
			WithCode(mdwerror.CodeInvalidAccuracy).
			WithOperation("field.Config.Validate").
			WithDetail("digits", int(c.Digits))
	}
	if !c.Currency.IsValid() {
		return mdwerror.Newf("unknown currency type %d", int(c.Currency)).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("field.Config.Validate")
	}
	if c.Spacing < 0 {
		return mdwerror.Newf("invalid spacing %d: must be non-negative", c.Spacing).
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("field.Config.Validate")
	}
	if c.Start.IsNegative() {
		return mdwerror.New("start value must not be negative").
			WithCode(mdwerror.CodeInvalidConfig).
			WithOperation("field.Config.Validate").
			WithDetail("start", c.Start.String())
	}
	return nil
}

func validateBounds(min, max *mathx.Decimal) error {
	if min != nil && max != nil && min.GreaterThan(*max) {
		return mdwerror.Newf("minimum %s is greater than maximum %s", min, max).
			WithCode(mdwerror.CodeInvalidBounds).
			WithOperation("field.validateBounds").
			WithDetail("min", min.String()).
			WithDetail("max", max.String())
	}
	return nil
}
