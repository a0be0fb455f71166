package config

import (
	"testing"
	"time"
)

func TestGetEnvFallback(t *testing.T) {
	if got := GetEnv("SPACEGARBAGE_TEST_UNSET", "tcell"); got != "tcell" {
		t.Errorf("Expected fallback tcell, got %q", got)
	}
	t.Setenv("SPACEGARBAGE_TEST_SET", "ansi")
	if got := GetEnv("SPACEGARBAGE_TEST_SET", "tcell"); got != "ansi" {
		t.Errorf("Expected ansi, got %q", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  int
	}{
		{"valid", "42", 42},
		{"negative", "-3", -3},
		{"garbage", "forty", 7},
		{"empty", "", 7},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("SPACEGARBAGE_TEST_INT", tt.value)
			if got := GetEnvInt("SPACEGARBAGE_TEST_INT", 7); got != tt.want {
				t.Errorf("Expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestGetEnvBool(t *testing.T) {
	t.Setenv("SPACEGARBAGE_TEST_BOOL", "true")
	if !GetEnvBool("SPACEGARBAGE_TEST_BOOL", false) {
		t.Error("Expected true")
	}
	t.Setenv("SPACEGARBAGE_TEST_BOOL", "maybe")
	if GetEnvBool("SPACEGARBAGE_TEST_BOOL", false) {
		t.Error("Expected fallback false for unparsable value")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("SPACEGARBAGE_TEST_DUR", "250ms")
	if got := GetEnvDuration("SPACEGARBAGE_TEST_DUR", time.Second); got != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %v", got)
	}
	t.Setenv("SPACEGARBAGE_TEST_DUR", "-1s")
	if got := GetEnvDuration("SPACEGARBAGE_TEST_DUR", time.Second); got != time.Second {
		t.Errorf("Expected fallback for negative duration, got %v", got)
	}
}
