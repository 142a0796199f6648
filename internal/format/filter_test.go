package format

import "testing"

func TestFilter(t *testing.T) {
	tests := []struct {
		name       string
		candidate  string
		current    string
		start, end int
		digits     Digits
		want       string
	}{
		{"digit appended", "5", "12", 2, 2, 2, "5"},
		{"comma becomes point", ",", "12", 2, 2, 2, "."},
		{"point with zero digits", ".", "12", 2, 2, 0, ""},
		{"third fractional digit", "3", "1.25", 4, 4, 2, ""},
		{"second fractional digit", "5", "1.2", 3, 3, 2, "5"},
		{"unlimited fraction", "9", "1.2345", 6, 6, Unlimited, "9"},
		{"letter rejected", "a", "12", 2, 2, 2, ""},
		{"minus rejected", "-", "12", 0, 0, 2, ""},
		{"grouped text accepted", "7", "1 234", 5, 5, 2, "7"},
		{"replace selection", "9", "1 234", 0, 5, 2, "9"},
		{"indexes clamped", "1", "12", -4, 40, 2, "1"},
		{"pasted grouped amount", "1 000,50", "", 0, 0, 2, "1 000.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(tt.candidate, tt.current, tt.start, tt.end, tt.digits)
			if got != tt.want {
				t.Errorf("Filter(%q, %q, %d, %d, %v) = %q, want %q",
					tt.candidate, tt.current, tt.start, tt.end, tt.digits, got, tt.want)
			}
		})
	}
}

func TestFilterRejectsSecondPoint(t *testing.T) {
	current := "1.2"
	for pos := 0; pos <= len(current); pos++ {
		for _, digits := range []Digits{Unlimited, 1, 2, 5} {
			if got := Filter(".", current, pos, pos, digits); got != "" {
				t.Errorf("Filter(\".\", %q, %d, %d, %v) = %q, want rejection", current, pos, pos, digits, got)
			}
		}
	}
}

func TestAcceptsDeletion(t *testing.T) {
	if !Accepts("", "1 234", 4, 5, 2) {
		t.Error("deleting a digit should be accepted")
	}
	if Accepts("", "1.2.3", 0, 1, 2) {
		t.Error("deletion leaving two points should be rejected")
	}
}

func TestSplice(t *testing.T) {
	tests := []struct {
		text       string
		start, end int
		repl       string
		want       string
	}{
		{"1234", 1, 3, "x", "1x4"},
		{"1234", 3, 1, "", "14"},
		{"12", 5, 9, "3", "123"},
		{"₽12", 1, 1, "0", "₽012"},
	}
	for _, tt := range tests {
		if got := Splice(tt.text, tt.start, tt.end, tt.repl); got != tt.want {
			t.Errorf("Splice(%q, %d, %d, %q) = %q, want %q", tt.text, tt.start, tt.end, tt.repl, got, tt.want)
		}
	}
}

func TestRuleStats(t *testing.T) {
	Filter("1", "", 0, 0, 7)
	rules, hits, misses := RuleStats()

	Filter("2", "1", 1, 1, 7)
	rulesAfter, hitsAfter, missesAfter := RuleStats()

	if rules < 1 || rulesAfter != rules {
		t.Errorf("rules = %d then %d, want the same non-zero count", rules, rulesAfter)
	}
	if hitsAfter <= hits {
		t.Errorf("hits = %d then %d, want an increase", hits, hitsAfter)
	}
	if missesAfter != misses {
		t.Errorf("misses = %d then %d, want no new miss", misses, missesAfter)
	}
}
