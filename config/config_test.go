package config

import (
	"os"
	"testing"
	"time"
)

// TestLoadConfig_Defaults verifies that defaults are loaded.
func TestLoadConfig_Defaults(t *testing.T) {
	// Clear relevant env vars to ensure defaults are used
	_ = os.Unsetenv("EXCHANGE_NAME")
	_ = os.Unsetenv("VWSP_WINDOW_MINUTES")

	LoadConfig()

	if AppConfig.Exchange.Name != "GBCE" {
		t.Fatalf("expected default EXCHANGE_NAME=GBCE, got %q", AppConfig.Exchange.Name)
	}
	if AppConfig.Exchange.VWSPWindowMinutes != 5 {
		t.Fatalf("expected default VWSP_WINDOW_MINUTES=5, got %d", AppConfig.Exchange.VWSPWindowMinutes)
	}
	if AppConfig.Exchange.Window() != 5*time.Minute {
		t.Fatalf("expected 5m window, got %v", AppConfig.Exchange.Window())
	}
}

// TestLoadConfig_EnvOverride verifies environment variables take precedence
// over defaults.
func TestLoadConfig_EnvOverride(t *testing.T) {
	t.Setenv("EXCHANGE_NAME", "TESTX")
	t.Setenv("VWSP_WINDOW_MINUTES", "10")

	LoadConfig()

	if AppConfig.Exchange.Name != "TESTX" {
		t.Fatalf("expected EXCHANGE_NAME=TESTX, got %q", AppConfig.Exchange.Name)
	}
	if AppConfig.Exchange.Window() != 10*time.Minute {
		t.Fatalf("expected 10m window, got %v", AppConfig.Exchange.Window())
	}
}
