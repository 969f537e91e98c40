package main

import (
	"context"
	"os"
	"testing"
	"time"
)

func TestFormatUptime(t *testing.T) {
	cases := []struct {
		dur      time.Duration
		expected string
	}{
		{time.Second * 5, "5 seconds"},
		{time.Second * 65, "1 minute, 5 seconds"},
		{time.Second * 3665, "1 hour, 1 minute, 5 seconds"},
		{time.Second * 3600, "1 hour, 0 minutes, 0 seconds"},
		{time.Second * 1, "1 second"},
	}
	for _, c := range cases {
		got := formatUptime(c.dur)
		if got != c.expected {
			t.Errorf("formatUptime(%v) = %q, want %q", c.dur, got, c.expected)
		}
	}
}

func TestPlural(t *testing.T) {
	if plural(1) != "" {
		t.Errorf("plural(1) = %q, want \"\"", plural(1))
	}
	if plural(0) != "s" || plural(2) != "s" {
		t.Errorf("plural(0), plural(2) should be \"s\"")
	}
}

func TestGetEnvDuration(t *testing.T) {
	t.Setenv("TEST_DURATION", "2s")
	if got := getEnvDuration("TEST_DURATION", time.Second); got != 2*time.Second {
		t.Errorf("getEnvDuration = %v, want 2s", got)
	}
	os.Setenv("TEST_DURATION", "notaduration")
	if got := getEnvDuration("TEST_DURATION", 3*time.Second); got != 3*time.Second {
		t.Errorf("getEnvDuration fallback = %v, want 3s", got)
	}
	os.Setenv("TEST_DURATION", "-5m")
	if got := getEnvDuration("TEST_DURATION", 4*time.Second); got != 4*time.Second {
		t.Errorf("getEnvDuration negative = %v, want 4s", got)
	}
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if got := getEnvInt("TEST_INT", 7); got != 42 {
		t.Errorf("getEnvInt = %d, want 42", got)
	}
	os.Setenv("TEST_INT", "notanint")
	if got := getEnvInt("TEST_INT", 8); got != 8 {
		t.Errorf("getEnvInt fallback = %d, want 8", got)
	}
	os.Unsetenv("TEST_INT")
	if got := getEnvInt("TEST_INT", 9); got != 9 {
		t.Errorf("getEnvInt fallback unset = %d, want 9", got)
	}
}

func TestGetEnvString(t *testing.T) {
	t.Setenv("TEST_STRING", "words.json")
	if got := getEnvString("TEST_STRING", "x"); got != "words.json" {
		t.Errorf("getEnvString = %q, want words.json", got)
	}
	if got := getEnvString("TEST_STRING_UNSET", "x"); got != "x" {
		t.Errorf("getEnvString fallback = %q, want x", got)
	}
}

func TestWithRequestID(t *testing.T) {
	if got := withRequestID(context.Background(), "msg %s"); got != "msg %s" {
		t.Errorf("withRequestID without id = %q", got)
	}
	ctx := context.WithValue(context.Background(), requestIDKey, "abc%d")
	if got := withRequestID(ctx, "msg %s"); got != "[request_id=abc%%d] msg %s" {
		t.Errorf("withRequestID = %q", got)
	}
}
