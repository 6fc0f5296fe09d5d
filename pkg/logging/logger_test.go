package logging

import (
	"testing"

	"github.com/ideahub/ideahub/pkg/config"
)

func TestInitLogger(t *testing.T) {
	tests := []struct {
		name   string
		level  string
		format string
	}{
		{"json info", "INFO", "json"},
		{"text debug", "DEBUG", "text"},
		{"json error", "ERROR", "json"},
		{"invalid level falls back", "NOPE", "json"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.LoggingConfig{Level: tt.level, Format: tt.format}
			if err := InitLogger(cfg); err != nil {
				t.Fatalf("InitLogger(%q, %q) failed: %v", tt.level, tt.format, err)
			}
			if Logger == nil {
				t.Fatal("Logger should be set after InitLogger")
			}
		})
	}
}

func TestGetLoggerFallback(t *testing.T) {
	Logger = nil
	if GetLogger() == nil {
		t.Fatal("GetLogger should never return nil")
	}
}

func TestWithComponent(t *testing.T) {
	if err := InitLogger(&config.LoggingConfig{Level: "INFO", Format: "json"}); err != nil {
		t.Fatalf("InitLogger failed: %v", err)
	}
	if WithComponent("admin") == nil {
		t.Fatal("WithComponent should return a logger")
	}
}
