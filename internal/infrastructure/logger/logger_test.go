package logger

import (
	"testing"

	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"DEBUG":   zapcore.DebugLevel,
		"info":    zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		"error":   zapcore.ErrorLevel,
		"":        zapcore.InfoLevel,
		"bogus":   zapcore.InfoLevel,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Fatalf("parseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}

func TestInitIsIdempotent(t *testing.T) {
	first := Init("development", "debug")
	second := Init("production", "error")
	if first == nil || first != second {
		t.Fatalf("expected Init to return the same logger on repeated calls")
	}
	if Get() != first {
		t.Fatalf("expected Get to return the initialized logger")
	}
	if Named("order.usecase") == nil {
		t.Fatalf("expected named logger")
	}
}
