package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/currencyedit/foundation/core/error"
	"github.com/msto63/currencyedit/pkg/core/config"
)

func TestNewLogger_Output(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{
		Name:   "test",
		Level:  "debug",
		Format: "json",
		Output: &buf,
	})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}
	defer logger.Close()

	logger.Debug("committed")

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not json: %v (%q)", err, buf.String())
	}
	if !strings.Contains(buf.String(), "committed") {
		t.Errorf("output = %q, want message", buf.String())
	}
	if logger.Name() != "test" {
		t.Errorf("Name() = %v, want test", logger.Name())
	}
}

func TestNewLogger_LevelFilter(t *testing.T) {
	var buf bytes.Buffer
	logger, err := NewLogger(LoggerConfig{Name: "test", Level: "warn", Format: "text", Output: &buf})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info logged at warn level: %q", buf.String())
	}
	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("output = %q, want warning", buf.String())
	}
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")
	logger, err := NewLogger(LoggerConfig{Name: "test", Level: "info", Format: "logfmt", File: path})
	if err != nil {
		t.Fatalf("NewLogger() error = %v", err)
	}

	logger.Info("written")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if err := logger.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(content), "written") {
		t.Errorf("file = %q, want message", content)
	}
}

func TestNewLogger_Invalid(t *testing.T) {
	tests := []struct {
		name string
		cfg  LoggerConfig
	}{
		{"level", LoggerConfig{Level: "loud", Format: "text"}},
		{"format", LoggerConfig{Level: "info", Format: "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewLogger(tt.cfg)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
				t.Errorf("NewLogger() error = %v, want invalid config", err)
			}
		})
	}
}

func TestNewQuietLogger(t *testing.T) {
	logger, err := NewQuietLogger(DefaultLoggerConfig("tui"))
	if err != nil {
		t.Fatalf("NewQuietLogger() error = %v", err)
	}
	// must not reach the terminal
	logger.Error("discarded")
}

func TestFromConfig(t *testing.T) {
	cfg := FromConfig("app", config.LoggingConfig{Level: "debug", Format: "json", File: "/tmp/x.log"})

	if cfg.Name != "app" || cfg.Level != "debug" || cfg.Format != "json" || cfg.File != "/tmp/x.log" {
		t.Errorf("FromConfig() = %+v", cfg)
	}

	empty := FromConfig("app", config.LoggingConfig{})
	if empty.Level != "info" || empty.Format != "text" {
		t.Errorf("FromConfig(empty) = %+v, want info/text defaults", empty)
	}
}
