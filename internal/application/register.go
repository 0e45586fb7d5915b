package application

import (
	"context"
	"fmt"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/bnema/void-bridge/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultHeatGain = 0.5
	DefaultTTLBoost = 60
)

type reinforcement struct {
	results  domain.ReinforceResults
	heatGain float64
	ttlBoost float64
}

// decodeReinforcement reads the optional reinforce object and its tuning. It
// returns nil when there is nothing to reinforce.
func decodeReinforcement(req request) (*reinforcement, error) {
	raw, ok := req["reinforce"]
	if !ok || raw == nil {
		return nil, nil
	}
	obj, ok := raw.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("decode field %q: expected an object, got %s", "reinforce", jsonText(raw))
	}
	if len(obj) == 0 {
		return nil, nil
	}

	in := &reinforcement{heatGain: DefaultHeatGain, ttlBoost: DefaultTTLBoost}
	if _, err := req.decodeField("heat_gain", &in.heatGain); err != nil {
		return nil, err
	}
	if _, err := req.decodeField("ttl_boost", &in.ttlBoost); err != nil {
		return nil, err
	}

	results, err := forwardedResults(request(obj))
	if err != nil {
		return nil, err
	}
	in.results = results

	return in, nil
}

// forwardedResults copies only the keys the caller supplied, so the manager can
// tell "no ids given" from "zero ids". A key present with null counts as
// supplied and empty.
func forwardedResults(reinforce request) (domain.ReinforceResults, error) {
	var results domain.ReinforceResults

	if raw, ok := reinforce["ids"]; ok {
		ids, err := stringList("reinforce.ids", raw)
		if err != nil {
			return domain.ReinforceResults{}, err
		}
		results.IDs = ids
	}

	if raw, ok := reinforce["distances"]; ok {
		if raw != nil {
			if err := decodeValue("reinforce.distances", raw, &results.Distances); err != nil {
				return domain.ReinforceResults{}, err
			}
		}
		if results.Distances == nil {
			results.Distances = []float64{}
		}
	}

	return results, nil
}

// registerAndReinforce registers the chunks, applies optional reinforcement and
// persists. A reinforcement failure skips persistence, so memory can run ahead
// of disk until the next successful save.
func (b *Bridge) registerAndReinforce(ctx context.Context, manager ports.Manager, req request) (RegisterResponse, error) {
	ids, err := req.requireStrings("ids")
	if err != nil {
		return RegisterResponse{}, err
	}
	texts, err := req.requireStrings("texts")
	if err != nil {
		return RegisterResponse{}, err
	}

	if err := manager.RegisterChunks(ctx, ids, texts); err != nil {
		return RegisterResponse{}, fmt.Errorf("register chunks: %w", err)
	}
	b.logger.Debug(ctx, "registered chunks", zap.Int("count", len(ids)))

	in, err := decodeReinforcement(req)
	if err != nil {
		return RegisterResponse{}, fmt.Errorf("reinforce: %w", err)
	}
	if in != nil {
		if err := manager.Reinforce(ctx, in.results, in.heatGain, in.ttlBoost); err != nil {
			return RegisterResponse{}, fmt.Errorf("reinforce: %w", err)
		}
		b.logger.Debug(ctx, "applied reinforcement",
			zap.Bool("ids", in.results.HasIDs()),
			zap.Bool("distances", in.results.HasDistances()),
			zap.Float64("heat_gain", in.heatGain),
			zap.Float64("ttl_boost", in.ttlBoost))
	}

	if err := b.persist(ctx, manager); err != nil {
		return RegisterResponse{}, err
	}

	response := RegisterResponse{
		Stats:  manager.Stats(),
		Events: manager.ConsumeEvents(),
		Top:    manager.Top(b.topN),
	}
	if response.Events == nil {
		response.Events = []domain.Event{}
	}
	if response.Top == nil {
		response.Top = []domain.RankedEntry{}
	}

	return response, nil
}
