package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestValidate_DefaultsAreValid verifies that the built-in defaults pass
// validation as-is.
func TestValidate_DefaultsAreValid(t *testing.T) {
	require.NoError(t, defaultConfig().validate())
}

// TestValidate_RejectsInvalidConfigs verifies that each invariant violation
// maps to the expected sentinel error.
func TestValidate_RejectsInvalidConfigs(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:    "empty address",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.Address = "" },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.RequestTimeout = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "negative shutdown timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.ShutdownTimeout = -time.Second },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero max delay",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxDelay = 0 },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "max delay at request timeout",
			mutate:  func(cfg *StructuredConfig) { cfg.Server.MaxDelay = cfg.Server.RequestTimeout },
			wantErr: ErrInvalidServerConfigs,
		},
		{
			name:    "zero rps",
			mutate:  func(cfg *StructuredConfig) { cfg.Limits.RPS = 0 },
			wantErr: ErrInvalidLimitsConfigs,
		},
		{
			name:    "negative burst",
			mutate:  func(cfg *StructuredConfig) { cfg.Limits.Burst = -1 },
			wantErr: ErrInvalidLimitsConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.validate(), tt.wantErr)
		})
	}
}
