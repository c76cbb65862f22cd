package config

import "testing"

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Path != "public/data/simplified/definitions.json" {
		t.Errorf("unexpected default path %q", cfg.Path)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid: %v", err)
	}
}

func TestValidateEmptyPath(t *testing.T) {
	if err := (Config{}).Validate(); err == nil {
		t.Error("expected an error for an empty path")
	}
}
