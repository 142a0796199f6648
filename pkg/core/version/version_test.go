package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Application", Application},
		{"Field", Field},
		{"Format", Format},
		{"Config", Config},
		{"Interface", Interface},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"field", "field", Field},
		{"format", "format", Format},
		{"config", "config", Config},
		{"tui", "tui", Interface},
		{"unknown component", "unknown", Application},
		{"empty component", "", Application},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComponentVersion(tt.component); got != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, got, tt.expected)
			}
		})
	}
}

func TestComponents(t *testing.T) {
	for _, c := range Components() {
		if ComponentVersion(c) == "" {
			t.Errorf("ComponentVersion(%q) is empty", c)
		}
	}
}
