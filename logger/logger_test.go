package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"strings"
	"testing"
)

func newBufferLogger(buf *bytes.Buffer, level string) *Logger {
	return New(&Config{Level: level, Format: FormatJSON, Writer: buf}, "test-svc")
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.Service() != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.Service())
	}
}

func TestNewInvalidLevel(t *testing.T) {
	l := New(&Config{Level: "invalid-level", Format: FormatJSON}, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	if l := NewFromEnv("env-svc"); l == nil {
		t.Fatal("expected non-nil logger")
	}
}

func TestJSONOutput_Fields(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, "info")
	l.WithComponent("youtube").Info("tracks listed", Fields(FieldVideoID, "abc", "count", 2))

	var entry map[string]interface{}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("output is not JSON: %v (%q)", err, buf.String())
	}
	if entry[FieldService] != "test-svc" {
		t.Errorf("expected service field, got %v", entry[FieldService])
	}
	if entry[FieldComponent] != "youtube" {
		t.Errorf("expected component field, got %v", entry[FieldComponent])
	}
	if entry[FieldVideoID] != "abc" {
		t.Errorf("expected video_id field, got %v", entry[FieldVideoID])
	}
	if entry["message"] != "tracks listed" {
		t.Errorf("unexpected message %v", entry["message"])
	}
}

func TestWithContext_RequestID(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, "info")
	ctx := ContextWithRequestID(context.Background(), "req-42")
	l.WithContext(ctx).Info("handled")

	if !strings.Contains(buf.String(), `"request_id":"req-42"`) {
		t.Errorf("expected request id in output, got %q", buf.String())
	}
	if RequestIDFromContext(context.Background()) != "" {
		t.Error("expected empty request id for bare context")
	}
}

func TestWithContext_NoRequestIDReturnsSameLogger(t *testing.T) {
	l := NewNop()
	if l.WithContext(context.Background()) != l {
		t.Error("expected the same logger when no request id is present")
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	l := newBufferLogger(&buf, "info")
	l.WithError(os.ErrNotExist).Error("lookup failed")
	if !strings.Contains(buf.String(), "file does not exist") {
		t.Errorf("expected error text in output, got %q", buf.String())
	}
}

func TestConsoleFormat_NoColor(t *testing.T) {
	var buf bytes.Buffer
	l := New(&Config{Level: "info", Format: FormatConsole, NoColor: true, Writer: &buf}, "transcriptd")
	l.Warn("slow provider")
	out := buf.String()
	if !strings.Contains(out, "[TRA][WRN]") {
		t.Errorf("expected service and level tags, got %q", out)
	}
	if !strings.Contains(out, "slow provider") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestInit_SetsGlobal(t *testing.T) {
	var buf bytes.Buffer
	Init(&Config{ServiceName: "svc", Level: "debug", Format: FormatJSON, Writer: &buf})
	if GetGlobalLogger().Service() != "svc" {
		t.Errorf("expected global logger for svc, got %q", GetGlobalLogger().Service())
	}
	Debug("debug msg")
	if !strings.Contains(buf.String(), "debug msg") {
		t.Errorf("expected package-level Debug to reach the global logger, got %q", buf.String())
	}
}

func TestGetGlobalLoggerDefault(t *testing.T) {
	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected default global logger to be created")
	}
}

func TestRegistry(t *testing.T) {
	custom := NewNop()
	Register("custom", custom)
	if Get("custom") != custom {
		t.Error("expected registered logger")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{}
	cfg.ApplyDefaults()
	if cfg.Level != "info" {
		t.Errorf("expected level 'info', got %q", cfg.Level)
	}
	if cfg.Format != FormatConsole {
		t.Errorf("expected format 'console', got %q", cfg.Format)
	}
	if cfg.Output != "stdout" {
		t.Errorf("expected output 'stdout', got %q", cfg.Output)
	}
	if !cfg.Timestamp {
		t.Error("expected Timestamp to be true")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", Format: "json", Output: "stdout"}, false},
		{"valid console stderr", Config{Level: "debug", Format: "console", Output: "stderr"}, false},
		{"invalid level", Config{Level: "bad", Format: "json", Output: "stdout"}, true},
		{"invalid format", Config{Level: "info", Format: "xml", Output: "stdout"}, true},
		{"invalid output", Config{Level: "info", Format: "json", Output: "file"}, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.cfg.Validate()
			if (err != nil) != tc.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestFieldsHelpers(t *testing.T) {
	f := Fields("a", 1, "b")
	if len(f) != 1 || f["a"] != 1 {
		t.Errorf("unexpected fields %v", f)
	}
	ef := ErrorFields("fetch", os.ErrClosed)
	if ef[FieldOperation] != "fetch" {
		t.Errorf("unexpected operation %v", ef[FieldOperation])
	}
}
