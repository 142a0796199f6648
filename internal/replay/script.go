// ============================================================================
// currencyedit - Currency input for the terminal
// ============================================================================
//
// Package:     replay
// Description: Keystroke scripts replayed against a headless field
// Author:      Mike Stoffels
// Created:     2026-10-19
// License:     MIT
// ============================================================================

// Package replay runs YAML keystroke scripts against a field backed by an
// in-memory buffer and reports the display after every step.
package replay

import (
	"bytes"
	"errors"
	"io"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	"github.com/msto63/currencyedit/foundation/utils/mathx"
	"github.com/msto63/currencyedit/pkg/core/config"
)

// Script is a field configuration plus the steps to replay
type Script struct {
	// Field names a field of the application config. Empty means the
	// first one.
	Field string `yaml:"field"`

	// Config replaces the named field's attributes when set
	Config *config.FieldConfig `yaml:"config"`

	Steps []Step `yaml:"steps"`
}

// Step is a single action. Exactly one of its fields is set.
type Step struct {
	Type      *string        `yaml:"type"`
	Cursor    *int           `yaml:"cursor"`
	Backspace int            `yaml:"backspace"`
	Delete    int            `yaml:"delete"`
	Paste     *string        `yaml:"paste"`
	Value     *mathx.Decimal `yaml:"value"`
	Focus     *bool          `yaml:"focus"`
	Clear     bool           `yaml:"clear"`
}

// actions counts the fields set on s
func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Type != nil, s.Cursor != nil, s.Backspace > 0, s.Delete > 0,
		s.Paste != nil, s.Value != nil, s.Focus != nil, s.Clear,
	} {
		if set {
			n++
		}
	}
	return n
}

// String describes the step for the replay output
func (s Step) String() string {
	switch {
	case s.Type != nil:
		return "type " + strconv.Quote(*s.Type)
	case s.Cursor != nil:
		return "cursor " + strconv.Itoa(*s.Cursor)
	case s.Backspace > 0:
		return "backspace x" + strconv.Itoa(s.Backspace)
	case s.Delete > 0:
		return "delete x" + strconv.Itoa(s.Delete)
	case s.Paste != nil:
		return "paste " + strconv.Quote(*s.Paste)
	case s.Value != nil:
		return "value " + s.Value.String()
	case s.Focus != nil && *s.Focus:
		return "focus"
	case s.Focus != nil:
		return "blur"
	case s.Clear:
		return "clear"
	default:
		return "noop"
	}
}

// Load reads a script file
func Load(path string) (*Script, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read script: "+path).
			WithCode(code).
			WithOperation("replay.Load").
			WithDetail("path", path)
	}
	return Parse(content)
}

// Parse decodes a YAML script and checks that every step holds one action
func Parse(content []byte) (*Script, error) {
	var script Script
	dec := yaml.NewDecoder(bytes.NewReader(content))
	dec.KnownFields(true)
	if err := dec.Decode(&script); err != nil && !errors.Is(err, io.EOF) {
		return nil, mdwerror.Wrap(err, "failed to parse script").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("replay.Parse")
	}

	for i, step := range script.Steps {
		if step.actions() != 1 {
			return nil, mdwerror.Newf("step %d must hold exactly one action", i+1).
				WithCode(mdwerror.CodeInvalidFormat).
				WithOperation("replay.Parse").
				WithDetail("step", i+1)
		}
	}
	return &script, nil
}

// Resolve picks the field attributes the script runs with: the inline
// config when present, otherwise the named or first field of app
func (s *Script) Resolve(app *config.Config) (config.FieldConfig, error) {
	if s.Config != nil {
		fc := *s.Config
		if fc.Name == "" {
			fc.Name = s.Field
		}
		if fc.Name == "" {
			fc.Name = "replay"
		}
		return fc, nil
	}

	if s.Field == "" {
		if len(app.Fields) == 0 {
			return config.FieldConfig{}, mdwerror.New("config has no fields").
				WithCode(mdwerror.CodeNotFound).
				WithOperation("replay.Resolve")
		}
		return app.Fields[0], nil
	}

	fc, ok := app.FieldByName(s.Field)
	if !ok {
		return config.FieldConfig{}, mdwerror.New("unknown field \""+s.Field+"\"").
			WithCode(mdwerror.CodeNotFound).
			WithOperation("replay.Resolve").
			WithDetail("field", s.Field)
	}
	return fc, nil
}
