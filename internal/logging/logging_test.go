package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/charmbracelet/log"

	"github.com/nibzard/tareas/internal/config"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		input string
		want  log.Level
	}{
		{"debug", log.DebugLevel},
		{"info", log.InfoLevel},
		{"warn", log.WarnLevel},
		{"warning", log.WarnLevel},
		{"ERROR", log.ErrorLevel},
		{" fatal ", log.FatalLevel},
		{"", log.InfoLevel},
		{"verbose", log.InfoLevel},
	}
	for _, tt := range tests {
		if got := ParseLevel(tt.input); got != tt.want {
			t.Errorf("ParseLevel(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseFormatter(t *testing.T) {
	tests := []struct {
		input string
		want  log.Formatter
	}{
		{"json", log.JSONFormatter},
		{"logfmt", log.LogfmtFormatter},
		{"text", log.TextFormatter},
		{"JSON", log.JSONFormatter},
		{"", log.TextFormatter},
		{"xml", log.TextFormatter},
	}
	for _, tt := range tests {
		if got := ParseFormatter(tt.input); got != tt.want {
			t.Errorf("ParseFormatter(%q): got %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestNewTextOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, DefaultOptions())

	logger.Debug("hidden")
	logger.Info("tasks loaded", "count", 3)

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Errorf("debug line written at info level: %q", out)
	}
	for _, want := range []string{"INFO", Prefix, "tasks loaded", "count=3"} {
		if !strings.Contains(out, want) {
			t.Errorf("output %q missing %q", out, want)
		}
	}
}

func TestNewJSONOutput(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Formatter = log.JSONFormatter
	logger := New(&buf, opts)

	logger.Warn("skipping invalid task", "index", 2)

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry["msg"] != "skipping invalid task" {
		t.Errorf("msg: got %v", entry["msg"])
	}
	if entry["prefix"] != Prefix {
		t.Errorf("prefix: got %v, want %q", entry["prefix"], Prefix)
	}
	if entry["index"] != float64(2) {
		t.Errorf("index: got %v", entry["index"])
	}
}

func TestOptionsFromConfig(t *testing.T) {
	cfg := &config.Config{
		LogLevel:      "debug",
		LogFormat:     "logfmt",
		LogTimestamps: true,
		LogCaller:     true,
	}
	opts := OptionsFromConfig(cfg)

	if opts.Level != log.DebugLevel {
		t.Errorf("Level: got %v, want debug", opts.Level)
	}
	if opts.Formatter != log.LogfmtFormatter {
		t.Errorf("Formatter: got %v, want logfmt", opts.Formatter)
	}
	if !opts.ReportTimestamp || !opts.ReportCaller {
		t.Errorf("report flags: got %+v", opts)
	}
	if opts.Prefix != Prefix {
		t.Errorf("Prefix: got %q, want %q", opts.Prefix, Prefix)
	}

	if got := OptionsFromConfig(nil); got != DefaultOptions() {
		t.Errorf("nil config: got %+v, want defaults", got)
	}
}

func TestDiscard(t *testing.T) {
	// Must not panic or write anywhere.
	Discard().Error("ignored", "err", "boom")
}
