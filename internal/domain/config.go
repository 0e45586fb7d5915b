package domain

import (
	"fmt"

	"github.com/go-viper/mapstructure/v2"
)

// ManagerConfig is the raw per-request configuration object. Numbers are kept
// as json.Number so the fingerprint reflects the literal request text.
type ManagerConfig map[string]any

// ManagerParams is the full parameter set a fresh manager is constructed from.
type ManagerParams struct {
	Capacity                 int     `mapstructure:"capacity" toml:"capacity"`
	BaseTTL                  float64 `mapstructure:"base_ttl" toml:"base_ttl"`
	DecayHalfLife            float64 `mapstructure:"decay_half_life" toml:"decay_half_life"`
	PruneSample              int     `mapstructure:"prune_sample" toml:"prune_sample"`
	PruneTargetRatio         float64 `mapstructure:"prune_target_ratio" toml:"prune_target_ratio"`
	RecencyHalfLifeTicks     float64 `mapstructure:"recency_half_life_ticks" toml:"recency_half_life_ticks"`
	HabituationStart         int     `mapstructure:"habituation_start" toml:"habituation_start"`
	HabituationScale         float64 `mapstructure:"habituation_scale" toml:"habituation_scale"`
	BoredomWeight            float64 `mapstructure:"boredom_weight" toml:"boredom_weight"`
	FrontierNoveltyThreshold float64 `mapstructure:"frontier_novelty_threshold" toml:"frontier_novelty_threshold"`
	FrontierPatience         int     `mapstructure:"frontier_patience" toml:"frontier_patience"`
	DiffusionInterval        int     `mapstructure:"diffusion_interval" toml:"diffusion_interval"`
	DiffusionKappa           float64 `mapstructure:"diffusion_kappa" toml:"diffusion_kappa"`
	ExplorationChurnWindow   int     `mapstructure:"exploration_churn_window" toml:"exploration_churn_window"`
}

// ManagerParamNames lists the configuration keys a manager cannot be built without.
var ManagerParamNames = []string{
	"capacity",
	"base_ttl",
	"decay_half_life",
	"prune_sample",
	"prune_target_ratio",
	"recency_half_life_ticks",
	"habituation_start",
	"habituation_scale",
	"boredom_weight",
	"frontier_novelty_threshold",
	"frontier_patience",
	"diffusion_interval",
	"diffusion_kappa",
	"exploration_churn_window",
}

// Params decodes the configuration into ManagerParams. Unknown keys are ignored
// so callers can carry extra settings without breaking construction.
func (c ManagerConfig) Params() (ManagerParams, error) {
	for _, name := range ManagerParamNames {
		if _, ok := c[name]; !ok {
			return ManagerParams{}, fmt.Errorf("%w %q", ErrMissingConfigParam, name)
		}
	}

	var params ManagerParams
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:     &params,
		ErrorUnset: true,
	})
	if err != nil {
		return ManagerParams{}, fmt.Errorf("create config decoder: %w", err)
	}

	if err := decoder.Decode(map[string]any(c)); err != nil {
		return ManagerParams{}, fmt.Errorf("decode manager config: %w", err)
	}

	return params, nil
}
