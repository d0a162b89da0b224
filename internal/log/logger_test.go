package log

import (
	"bytes"
	"encoding/json"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
)

func TestJSONFormatterOutput(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := logrus.New()
	Configure(logger, buf, "info", "json")

	logger.WithField("tool", "gw_get_user").Info("test message")

	var payload map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &payload); err != nil {
		t.Fatalf("expected JSON output, got error: %v", err)
	}
	if payload["msg"] != "test message" {
		t.Fatalf("expected msg field to be 'test message', got %v", payload["msg"])
	}
	if payload["tool"] != "gw_get_user" {
		t.Fatalf("expected tool field, got %v", payload["tool"])
	}
}

func TestLevelParsing(t *testing.T) {
	logger := logrus.New()
	Configure(logger, &bytes.Buffer{}, "debug", "text")
	if logger.GetLevel() != logrus.DebugLevel {
		t.Fatalf("expected debug level, got %s", logger.GetLevel())
	}
	Configure(logger, nil, "loud", "text")
	if logger.GetLevel() != logrus.InfoLevel {
		t.Fatalf("expected fallback to info, got %s", logger.GetLevel())
	}
}

func TestNewLoggerWritesToStderr(t *testing.T) {
	logger := NewLogger("warn", "json")
	if logger.Out != os.Stderr {
		t.Fatalf("expected stderr output")
	}
	if logger.GetLevel() != logrus.WarnLevel {
		t.Fatalf("expected warn level, got %s", logger.GetLevel())
	}
}

func TestPrettyFormatter(t *testing.T) {
	f := &PrettyFormatter{NoColor: true}
	entry := &logrus.Entry{
		Time:    time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC),
		Level:   logrus.WarnLevel,
		Message: "Tool call failed",
		Data: logrus.Fields{
			"tool":        "gw_delete_user",
			"status":      "confirmation_required",
			"duration_ms": 3,
		},
	}

	out, err := f.Format(entry)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	want := "15:04:05 ⚠ Tool call failed gw_delete_user duration_ms=3 status=confirmation_required\n"
	if string(out) != want {
		t.Fatalf("expected %q, got %q", want, out)
	}
}

func TestPrettyFormatterColorsStatus(t *testing.T) {
	f := &PrettyFormatter{}
	entry := &logrus.Entry{
		Level:   logrus.InfoLevel,
		Message: "Tool call completed",
		Data:    logrus.Fields{"status": "success"},
	}
	out, _ := f.Format(entry)
	if !strings.Contains(string(out), colorGreen+"success"+colorReset) {
		t.Fatalf("expected green status, got %q", out)
	}
}
