package config

import (
	"testing"
)

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		config  Config
		wantErr bool
	}{
		{
			name: "valid config",
			config: Config{
				DatabaseURL:      "postgres://localhost:5432/risparmio",
				SavingsLabels:    []string{"Savings"},
				AllocationLabels: []string{"Allocation"},
			},
			wantErr: false,
		},
		{
			name: "missing database url",
			config: Config{
				SavingsLabels:    []string{"Savings"},
				AllocationLabels: []string{"Allocation"},
			},
			wantErr: true,
		},
		{
			name: "empty savings labels",
			config: Config{
				DatabaseURL:      "postgres://localhost:5432/risparmio",
				AllocationLabels: []string{"Allocation"},
			},
			wantErr: true,
		},
		{
			name: "empty allocation labels",
			config: Config{
				DatabaseURL:   "postgres://localhost:5432/risparmio",
				SavingsLabels: []string{"Savings"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.config.validate()
			if tt.wantErr && err == nil {
				t.Error("Expected validation error, got nil")
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Expected no error, got %v", err)
			}
		})
	}
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/risparmio")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if cfg.Port != "8080" {
		t.Errorf("Port = %q, want 8080", cfg.Port)
	}
	if len(cfg.SavingsLabels) != 2 || cfg.SavingsLabels[1] != "Risparmio" {
		t.Errorf("SavingsLabels = %v, want [Savings Risparmio]", cfg.SavingsLabels)
	}
	if len(cfg.AllocationLabels) != 2 || cfg.AllocationLabels[1] != "Accantonamento" {
		t.Errorf("AllocationLabels = %v, want [Allocation Accantonamento]", cfg.AllocationLabels)
	}
	if cfg.RateLimitPerMinute != 120 {
		t.Errorf("RateLimitPerMinute = %d, want 120", cfg.RateLimitPerMinute)
	}
}

func TestLoad_SplitsLists(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/risparmio")
	t.Setenv("EXCLUDED_INCOME_CATEGORIES", "Welfare, Refunds ,")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if len(cfg.ExcludedIncomeCategories) != 2 {
		t.Fatalf("ExcludedIncomeCategories = %v, want 2 entries", cfg.ExcludedIncomeCategories)
	}
	if cfg.ExcludedIncomeCategories[1] != "Refunds" {
		t.Errorf("Second entry = %q, want Refunds (trimmed)", cfg.ExcludedIncomeCategories[1])
	}
}
