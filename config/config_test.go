package config

import (
	"strings"
	"testing"
)

func setValidEnv(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8000")
	t.Setenv("ADDRESS", "127.0.0.1")
	t.Setenv("ENV", "test")
	t.Setenv("LOG_LEVEL", "info")
	t.Setenv("MEDICINES_FILE", "data/medicines.json")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_MODEL", "gpt-4o")
}

func TestLoadValid(t *testing.T) {
	setValidEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Port != "8000" {
		t.Errorf("expected port 8000, got %s", cfg.Port)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("expected model gpt-4o, got %s", cfg.OpenAIModel)
	}
	if cfg.MaxRequestBody != 52428800 {
		t.Errorf("expected 50MB default request body, got %d", cfg.MaxRequestBody)
	}
	if cfg.LogRetentionWeeks != 4 {
		t.Errorf("expected 4 weeks default retention, got %d", cfg.LogRetentionWeeks)
	}
}

func TestLoadDefaults(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENAI_MODEL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.OpenAIModel != "gpt-4o" {
		t.Errorf("expected default model gpt-4o, got %s", cfg.OpenAIModel)
	}
	if cfg.MedicinesFile != "data/medicines.json" {
		t.Errorf("unexpected medicines file %s", cfg.MedicinesFile)
	}
}

func TestLoadMissingAPIKey(t *testing.T) {
	setValidEnv(t)
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error for missing OPENAI_API_KEY")
	}
	if !strings.Contains(err.Error(), "OPENAI_API_KEY") {
		t.Errorf("expected OPENAI_API_KEY in error, got: %v", err)
	}
}

func TestLoadInvalidValues(t *testing.T) {
	testCases := []struct {
		name  string
		key   string
		value string
	}{
		{"Non-numeric port", "PORT", "abc"},
		{"Privileged port", "PORT", "80"},
		{"Port out of range", "PORT", "70000"},
		{"Bad address", "ADDRESS", "not-an-ip"},
		{"Public address", "ADDRESS", "8.8.8.8"},
		{"Unknown env", "ENV", "production"},
		{"Unknown log level", "LOG_LEVEL", "verbose"},
		{"Zero retention", "LOG_RETENTION_WEEKS", "0"},
		{"Retention too long", "LOG_RETENTION_WEEKS", "104"},
		{"Body limit too large", "MAX_REQUEST_BODY", "209715200"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			setValidEnv(t)
			t.Setenv(tc.key, tc.value)

			if _, err := Load(); err == nil {
				t.Errorf("expected error for %s=%s", tc.key, tc.value)
			}
		})
	}
}

func TestValidateAddressAcceptsPrivateRanges(t *testing.T) {
	for _, addr := range []string{"127.0.0.1", "localhost", "::1", "10.0.0.5", "192.168.1.10", "0.0.0.0"} {
		if err := validateAddress(addr); err != nil {
			t.Errorf("expected %s to be accepted: %v", addr, err)
		}
	}
}
