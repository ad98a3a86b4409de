package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestLoggerStructuredOutput(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("debug", &buf).WithComponent("dispatcher")
	l.Infow("rule.produced", map[string]any{"rule": "en|1-5", "generator": "en"})

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected log output")
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if rec["level"] != "info" {
		t.Fatalf("unexpected level: %#v", rec["level"])
	}
	if rec["msg"] != "rule.produced" {
		t.Fatalf("unexpected msg: %#v", rec["msg"])
	}
	if rec["component"] != "dispatcher" {
		t.Fatalf("unexpected component: %#v", rec["component"])
	}
	if rec["rule"] != "en|1-5" {
		t.Fatalf("unexpected field rule: %#v", rec["rule"])
	}
	if rec["generator"] != "en" {
		t.Fatalf("unexpected field generator: %#v", rec["generator"])
	}
}

func TestLoggerLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("error", &buf)
	l.Infow("should_not_log", nil)
	l.Warnw("should_not_log", nil)
	l.Errorw("should_log", nil)
	out := strings.TrimSpace(buf.String())
	lines := strings.Split(out, "\n")
	if len(lines) != 1 {
		t.Fatalf("expected one line, got %d: %q", len(lines), out)
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatalf("expected JSON log line: %v", err)
	}
	if rec["level"] != "error" {
		t.Fatalf("unexpected level: %#v", rec["level"])
	}
}

func TestEnabled(t *testing.T) {
	l := NewLoggerWithWriter("warn", &bytes.Buffer{})
	if l.Enabled(LevelInfo) || !l.Enabled(LevelWarn) || !l.Enabled(LevelError) {
		t.Fatal("unexpected level gating")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		"warning": LevelWarn,
		"error":   LevelError,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestWithComponent_Replaces(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerWithWriter("info", &buf).WithComponent("cli").WithComponent("dispatcher")
	l.Infow("ready", nil)

	line := strings.TrimSpace(buf.String())
	if strings.Count(line, `"component"`) != 1 || !strings.Contains(line, `"component":"dispatcher"`) {
		t.Fatalf("unexpected component attrs: %s", line)
	}
}
