package format

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/msto63/currencyedit/pkg/core/cache"
)

// Filter rules compiled per accuracy
var ruleCache = cache.New[Digits, *regexp.Regexp](cache.Config{MaxItems: 32})

// RuleStats reports how many accuracies have a compiled rule and how often
// a lookup found one
func RuleStats() (rules int, hits, misses int64) {
	hits, misses, _ = ruleCache.Stats()
	return ruleCache.Size(), hits, misses
}

// rule returns the anchored pattern for the whole field text at an accuracy
func rule(digits Digits) *regexp.Regexp {
	re, _ := ruleCache.GetOrSet(digits, func() (*regexp.Regexp, error) {
		var pattern string
		switch {
		case digits.IsUnlimited():
			pattern = `^[ 0-9]*(\.[0-9]*)?$`
		case digits == 0:
			pattern = `^[ 0-9]*$`
		default:
			pattern = `^[ 0-9]*(\.[0-9]{0,` + strconv.Itoa(int(digits)) + `})?$`
		}
		return regexp.MustCompile(pattern), nil
	})
	return re
}

// Filter decides whether replacing current[start:end] with candidate yields
// an acceptable field text. It returns the candidate with "," turned into "."
// when accepted and "" when the edit must be suppressed. Indexes are rune
// offsets and are clamped into the text.
func Filter(candidate, current string, start, end int, digits Digits) string {
	normalized := strings.ReplaceAll(candidate, ",", ".")
	if !rule(digits).MatchString(Splice(current, start, end, normalized)) {
		return ""
	}
	return normalized
}

// Accepts reports whether the edit passes the filter. Unlike Filter it
// distinguishes an accepted deletion from a rejected insertion.
func Accepts(candidate, current string, start, end int, digits Digits) bool {
	normalized := strings.ReplaceAll(candidate, ",", ".")
	return rule(digits).MatchString(Splice(current, start, end, normalized))
}

// Splice replaces the rune range [start,end) of text with replacement.
// Out of range or reversed indexes are clamped.
func Splice(text string, start, end int, replacement string) string {
	runes := []rune(text)
	start = clampIndex(start, len(runes))
	end = clampIndex(end, len(runes))
	if end < start {
		start, end = end, start
	}
	return string(runes[:start]) + replacement + string(runes[end:])
}

func clampIndex(i, length int) int {
	if i < 0 {
		return 0
	}
	if i > length {
		return length
	}
	return i
}
