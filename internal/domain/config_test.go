package domain

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeConfig(t *testing.T, raw string) ManagerConfig {
	t.Helper()

	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	var cfg ManagerConfig
	require.NoError(t, dec.Decode(&cfg))
	return cfg
}

const fullConfigJSON = `{
	"capacity": 128,
	"base_ttl": 300,
	"decay_half_life": 12.5,
	"prune_sample": 16,
	"prune_target_ratio": 0.8,
	"recency_half_life_ticks": 20,
	"habituation_start": 3,
	"habituation_scale": 0.5,
	"boredom_weight": 0.25,
	"frontier_novelty_threshold": 0.2,
	"frontier_patience": 4,
	"diffusion_interval": 10,
	"diffusion_kappa": 0.1,
	"exploration_churn_window": 32,
	"label": "ignored"
}`

func TestManagerConfigParams(t *testing.T) {
	t.Parallel()

	params, err := decodeConfig(t, fullConfigJSON).Params()
	require.NoError(t, err)

	assert.Equal(t, ManagerParams{
		Capacity:                 128,
		BaseTTL:                  300,
		DecayHalfLife:            12.5,
		PruneSample:              16,
		PruneTargetRatio:         0.8,
		RecencyHalfLifeTicks:     20,
		HabituationStart:         3,
		HabituationScale:         0.5,
		BoredomWeight:            0.25,
		FrontierNoveltyThreshold: 0.2,
		FrontierPatience:         4,
		DiffusionInterval:        10,
		DiffusionKappa:           0.1,
		ExplorationChurnWindow:   32,
	}, params)
}

func TestManagerConfigParamsErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(ManagerConfig)
		wantErr string
	}{
		{
			name:    "missing capacity",
			mutate:  func(c ManagerConfig) { delete(c, "capacity") },
			wantErr: `missing config parameter "capacity"`,
		},
		{
			name:    "missing last parameter",
			mutate:  func(c ManagerConfig) { delete(c, "exploration_churn_window") },
			wantErr: `missing config parameter "exploration_churn_window"`,
		},
		{
			name:    "fractional integer parameter",
			mutate:  func(c ManagerConfig) { c["capacity"] = json.Number("1.5") },
			wantErr: "decode manager config",
		},
		{
			name:    "string where number expected",
			mutate:  func(c ManagerConfig) { c["base_ttl"] = "long" },
			wantErr: "decode manager config",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := decodeConfig(t, fullConfigJSON)
			tt.mutate(cfg)

			_, err := cfg.Params()
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestManagerConfigParamsMissingIsSentinel(t *testing.T) {
	t.Parallel()

	_, err := ManagerConfig{}.Params()
	require.ErrorIs(t, err, ErrMissingConfigParam)
}
