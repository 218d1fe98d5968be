package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("TEST_ENV_KEY", "")
	if got := envOrDefault("TEST_ENV_KEY", "fallback"); got != "fallback" {
		t.Fatalf("got %q", got)
	}
	t.Setenv("TEST_ENV_KEY", "set")
	if got := envOrDefault("TEST_ENV_KEY", "fallback"); got != "set" {
		t.Fatalf("got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want time.Duration
	}{
		{"unset", "", time.Minute},
		{"valid", "90s", 90 * time.Second},
		{"garbage", "soon", time.Minute},
		{"zero", "0s", time.Minute},
		{"negative", "-10s", time.Minute},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("TEST_DURATION_KEY", tc.raw)
			if got := durationEnvOrDefault("TEST_DURATION_KEY", time.Minute); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		def  bool
		want bool
	}{
		{"", true, true},
		{"", false, false},
		{"1", false, true},
		{"true", false, true},
		{"TRUE", false, true},
		{"yes", false, true},
		{"0", true, false},
		{"false", true, false},
		{"no", true, false},
		{"maybe", true, true},
		{" true ", false, true},
	}
	for _, tc := range cases {
		t.Setenv("TEST_BOOL_KEY", tc.raw)
		if got := boolEnvOrDefault("TEST_BOOL_KEY", tc.def); got != tc.want {
			t.Fatalf("raw %q def %v: got %v, want %v", tc.raw, tc.def, got, tc.want)
		}
	}
}

func TestIntEnvOrDefault(t *testing.T) {
	cases := []struct {
		raw  string
		want int
	}{
		{"", 7},
		{"42", 42},
		{"nope", 7},
		{"0", 7},
		{"-3", 7},
	}
	for _, tc := range cases {
		t.Setenv("TEST_INT_KEY", tc.raw)
		if got := intEnvOrDefault("TEST_INT_KEY", 7); got != tc.want {
			t.Fatalf("raw %q: got %d, want %d", tc.raw, got, tc.want)
		}
	}
}
