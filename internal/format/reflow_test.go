package format

import (
	"strings"
	"testing"

	"github.com/msto63/currencyedit/foundation/utils/mathx"
)

func TestGroup(t *testing.T) {
	tests := map[string]string{
		"":           "",
		"0":          "0",
		"123":        "123",
		"1234":       "1 234",
		"123456":     "123 456",
		"1234567":    "1 234 567",
		"1234567890": "1 234 567 890",
	}
	for in, want := range tests {
		if got := Group(in); got != want {
			t.Errorf("Group(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestFormat(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"1234.5":     "1 234.5",
		"1234567.00": "1 234 567.00",
		"-98765":     "-98 765",
		"999":        "999",
	}
	for in, want := range tests {
		if got := Format(mathx.MustNewDecimal(in)); got != want {
			t.Errorf("Format(%s) = %q, want %q", in, got, want)
		}
	}
}

func TestReflow(t *testing.T) {
	tests := []struct {
		name       string
		old        string
		raw        string
		inserted   string
		cursor     int
		wantText   string
		wantCursor int
	}{
		{"digit typed in front of placeholder zero", "0", "40", "4", 1, "4", 1},
		{"digit typed after placeholder zero", "0", "04", "4", 2, "4", 1},
		{"third digit", "12", "125", "5", 3, "125", 3},
		{"fourth digit inside", "125", "1245", "4", 3, "1 245", 4},
		{"fourth digit at end", "125", "1254", "4", 4, "1 254", 5},
		{"fourth digit at start", "125", "4125", "4", 1, "4 125", 1},
		{"leading zeros", "", "0012", "", 4, "12", 2},
		{"separator already present", "1 234", "1 2345", "5", 6, "12 345", 6},
		{"delete regroups", "1 234", "1 24", "", 3, "124", 2},
		{"point kept as typed", "12", "12.", ".", 3, "12.", 3},
		{"fraction not grouped", "1 234.5", "1 234.56", "6", 8, "1 234.56", 8},
		{"integer emptied", "5.25", ".25", "", 0, "0.25", 0},
		{"integer emptied after point typed", "", ".", ".", 1, "0.", 2},
		{"all deleted", "5", "", "", 0, "0", 0},
		{"grouping counts from integer end", "123 456.7", "1234 456.7", "4", 4, "1 234 456.7", 5},
		{"cursor past end clamped", "12", "123", "3", 99, "123", 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, cursor := Reflow(tt.old, tt.raw, tt.inserted, tt.cursor)
			if text != tt.wantText || cursor != tt.wantCursor {
				t.Errorf("Reflow(%q, %q, %q, %d) = (%q, %d), want (%q, %d)",
					tt.old, tt.raw, tt.inserted, tt.cursor, text, cursor, tt.wantText, tt.wantCursor)
			}
		})
	}
}

func canonicalSamples() []string {
	return []string{
		"0", "7", "12", "999", "1 000", "12 345", "123 456", "1 234 567",
		"0.5", "0.", "12.", "1 234.50", "98 765 432.1", "100 000 000.000",
	}
}

func TestReflowIdempotent(t *testing.T) {
	for _, text := range canonicalSamples() {
		runes := []rune(text)
		for cursor := 0; cursor <= len(runes); cursor++ {
			// a cursor right behind a separator settles in front of it
			if cursor > 0 && runes[cursor-1] == Separator {
				continue
			}
			got, gotCursor := Reflow(text, text, "", cursor)
			if got != text || gotCursor != cursor {
				t.Errorf("Reflow(%q, cursor %d) = (%q, %d), want unchanged", text, cursor, got, gotCursor)
			}
		}
	}
}

func TestReflowGroupingInvariant(t *testing.T) {
	raws := []string{"1", "12345678", "1 2 3 4 5 6 7", "000123456789", "9999999.99", "12 34 56."}
	for _, raw := range raws {
		text, _ := Reflow("", raw, "", len([]rune(raw)))
		integer := text
		if point := strings.IndexByte(text, '.'); point != -1 {
			integer = text[:point]
		}
		groups := strings.Split(integer, " ")
		for i, g := range groups {
			if g == "" {
				t.Errorf("Reflow(%q) = %q has an empty group", raw, text)
			}
			if i > 0 && len(g) != GroupSize {
				t.Errorf("Reflow(%q) = %q has group %q of size %d", raw, text, g, len(g))
			}
			if i == 0 && len(g) > GroupSize {
				t.Errorf("Reflow(%q) = %q has oversized leading group %q", raw, text, g)
			}
		}
	}
}

func TestReflowRoundTrip(t *testing.T) {
	values := []string{"0", "5", "1234", "1234.5", "1000000.00", "0.07", "123456789.123"}
	for _, v := range values {
		value := mathx.MustNewDecimal(v)
		display := Format(value)
		text, _ := Reflow(display, display, "", 0)

		parsed := mathx.ParseDecimal(Strip(text))
		if parsed == nil {
			t.Fatalf("Strip(%q) did not parse", text)
		}
		if !parsed.Equal(value) {
			t.Errorf("round trip of %s = %s", v, parsed)
		}
	}
}
