// Package void is an in-process memory manager: chunks gain heat when
// registered or reinforced, cool with a half-life, expire when their TTL runs
// out and are pruned coldest-first once capacity is exceeded.
package void

import (
	"context"
	"fmt"
	"math"
	"sort"
	"sync"

	"github.com/bnema/void-bridge/internal/domain"
	"github.com/bnema/void-bridge/internal/ports"
)

type entry struct {
	id            string
	text          string
	heat          float64
	ttl           float64
	hits          int64
	registrations int
	lastTick      int64
	habituated    bool
}

type counters struct {
	novel      int64
	pruned     int64
	expired    int64
	reinforced int64
}

type Manager struct {
	mu sync.Mutex

	params  domain.ManagerParams
	tick    int64
	entries map[string]*entry
	events  []domain.Event

	// churn holds the most recent registrations, true for novel ids.
	churn         []bool
	stagnantCalls int
	totals        counters
}

var _ ports.Manager = (*Manager)(nil)

func New(params domain.ManagerParams) (*Manager, error) {
	if err := validateParams(params); err != nil {
		return nil, err
	}

	return &Manager{
		params:  params,
		entries: map[string]*entry{},
	}, nil
}

func validateParams(p domain.ManagerParams) error {
	switch {
	case p.Capacity <= 0:
		return fmt.Errorf("%w: capacity must be positive, got %d", domain.ErrInvalidParams, p.Capacity)
	case p.BaseTTL <= 0:
		return fmt.Errorf("%w: base_ttl must be positive, got %g", domain.ErrInvalidParams, p.BaseTTL)
	case p.DecayHalfLife <= 0:
		return fmt.Errorf("%w: decay_half_life must be positive, got %g", domain.ErrInvalidParams, p.DecayHalfLife)
	case p.PruneSample < 1:
		return fmt.Errorf("%w: prune_sample must be at least 1, got %d", domain.ErrInvalidParams, p.PruneSample)
	case p.PruneTargetRatio <= 0 || p.PruneTargetRatio > 1:
		return fmt.Errorf("%w: prune_target_ratio must be in (0, 1], got %g", domain.ErrInvalidParams, p.PruneTargetRatio)
	case p.RecencyHalfLifeTicks <= 0:
		return fmt.Errorf("%w: recency_half_life_ticks must be positive, got %g", domain.ErrInvalidParams, p.RecencyHalfLifeTicks)
	case p.HabituationStart < 1:
		return fmt.Errorf("%w: habituation_start must be at least 1, got %d", domain.ErrInvalidParams, p.HabituationStart)
	case p.HabituationScale < 0:
		return fmt.Errorf("%w: habituation_scale must not be negative, got %g", domain.ErrInvalidParams, p.HabituationScale)
	case p.BoredomWeight < 0:
		return fmt.Errorf("%w: boredom_weight must not be negative, got %g", domain.ErrInvalidParams, p.BoredomWeight)
	case p.FrontierPatience < 1:
		return fmt.Errorf("%w: frontier_patience must be at least 1, got %d", domain.ErrInvalidParams, p.FrontierPatience)
	case p.DiffusionInterval < 1:
		return fmt.Errorf("%w: diffusion_interval must be at least 1, got %d", domain.ErrInvalidParams, p.DiffusionInterval)
	case p.DiffusionKappa < 0 || p.DiffusionKappa > 1:
		return fmt.Errorf("%w: diffusion_kappa must be in [0, 1], got %g", domain.ErrInvalidParams, p.DiffusionKappa)
	case p.ExplorationChurnWindow < 1:
		return fmt.Errorf("%w: exploration_churn_window must be at least 1, got %d", domain.ErrInvalidParams, p.ExplorationChurnWindow)
	}

	return nil
}

func (m *Manager) RegisterChunks(ctx context.Context, ids []string, texts []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(ids) != len(texts) {
		return fmt.Errorf("%w: %d ids, %d texts", domain.ErrLengthMismatch, len(ids), len(texts))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.advance()

	var novel, habituated []string
	for i, id := range ids {
		e, ok := m.entries[id]
		if !ok {
			m.entries[id] = &entry{
				id:            id,
				text:          texts[i],
				heat:          1,
				ttl:           m.params.BaseTTL,
				registrations: 1,
				lastTick:      m.tick,
			}
			novel = append(novel, id)
			m.recordChurn(true)
			continue
		}

		e.text = texts[i]
		e.registrations++
		e.lastTick = m.tick
		e.ttl = math.Max(e.ttl, m.params.BaseTTL)

		boost := 1.0
		if over := e.registrations - m.params.HabituationStart; over > 0 {
			boost = 1 / (1 + m.params.HabituationScale*float64(over))
			if !e.habituated {
				e.habituated = true
				habituated = append(habituated, id)
			}
		}
		e.heat += boost
		m.recordChurn(false)
	}

	m.totals.novel += int64(len(novel))
	m.emit(domain.EventNovel, novel, 0)
	m.emit(domain.EventHabituated, habituated, 0)

	m.trackFrontier(len(novel), len(ids))

	if len(m.entries) > m.params.Capacity {
		m.prune()
	}

	return nil
}

func (m *Manager) Reinforce(ctx context.Context, results domain.ReinforceResults, heatGain, ttlBoost float64) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if !finite(heatGain) || !finite(ttlBoost) {
		return fmt.Errorf("%w: heat_gain and ttl_boost must be finite, got %g and %g", domain.ErrInvalidParams, heatGain, ttlBoost)
	}
	if !results.HasIDs() {
		return nil
	}
	weighted := len(results.Distances) > 0
	if weighted && len(results.Distances) != len(results.IDs) {
		return fmt.Errorf("%w: %d ids, %d distances", domain.ErrLengthMismatch, len(results.IDs), len(results.Distances))
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	var reinforced []string
	for i, id := range results.IDs {
		e, ok := m.entries[id]
		if !ok {
			continue
		}

		factor := 1.0
		if weighted {
			factor = 1 / (1 + math.Max(0, results.Distances[i]))
		}

		e.heat = bounded(e.heat + heatGain*factor)
		e.ttl = bounded(e.ttl + ttlBoost*factor)
		e.hits++
		e.lastTick = m.tick
		reinforced = append(reinforced, id)
	}

	m.totals.reinforced += int64(len(reinforced))
	m.emit(domain.EventReinforced, reinforced, heatGain)

	return nil
}

func (m *Manager) Stats() domain.Stats {
	m.mu.Lock()
	defer m.mu.Unlock()

	stats := domain.Stats{
		Count:           len(m.entries),
		Capacity:        m.params.Capacity,
		Tick:            m.tick,
		Churn:           m.churnRatio(),
		NovelTotal:      m.totals.novel,
		PrunedTotal:     m.totals.pruned,
		ExpiredTotal:    m.totals.expired,
		ReinforcedTotal: m.totals.reinforced,
	}
	var total float64
	for _, e := range m.entries {
		total += e.heat
	}
	stats.TotalHeat = bounded(total)
	stats.MeanHeat = m.meanHeat()

	return stats
}

func (m *Manager) ConsumeEvents() []domain.Event {
	m.mu.Lock()
	defer m.mu.Unlock()

	drained := m.events
	m.events = nil
	return drained
}

func (m *Manager) Top(n int) []domain.RankedEntry {
	m.mu.Lock()
	defer m.mu.Unlock()

	if n <= 0 {
		return []domain.RankedEntry{}
	}

	ranked := m.ranked()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	if len(ranked) > n {
		ranked = ranked[:n]
	}

	return ranked
}

// ranked returns all entries with scores, ordered by id.
func (m *Manager) ranked() []domain.RankedEntry {
	ranked := make([]domain.RankedEntry, 0, len(m.entries))
	for _, e := range m.sortedEntries() {
		ranked = append(ranked, domain.RankedEntry{
			ID:    e.id,
			Text:  e.text,
			Heat:  e.heat,
			TTL:   e.ttl,
			Score: m.score(e),
		})
	}
	return ranked
}

func (m *Manager) score(e *entry) float64 {
	age := float64(m.tick - e.lastTick)
	recency := math.Pow(0.5, age/m.params.RecencyHalfLifeTicks)
	boredom := math.Max(0, float64(e.registrations-m.params.HabituationStart))
	return e.heat * recency / (1 + m.params.BoredomWeight*boredom)
}

// advance moves the clock one tick: heat decays, TTLs shrink, expired entries
// drop out and heat diffuses every diffusion_interval ticks.
func (m *Manager) advance() {
	m.tick++

	decay := math.Pow(0.5, 1/m.params.DecayHalfLife)
	var expired []string
	for _, e := range m.sortedEntries() {
		e.heat *= decay
		e.ttl--
		if e.ttl <= 0 {
			delete(m.entries, e.id)
			expired = append(expired, e.id)
		}
	}
	m.totals.expired += int64(len(expired))
	m.emit(domain.EventExpired, expired, 0)

	if m.tick%int64(m.params.DiffusionInterval) == 0 && len(m.entries) > 1 {
		mean := m.meanHeat()
		for _, e := range m.entries {
			e.heat = bounded(e.heat + m.params.DiffusionKappa*(mean-e.heat))
		}
		m.emitValue(domain.EventDiffused, mean)
	}
}

func (m *Manager) recordChurn(novel bool) {
	m.churn = append(m.churn, novel)
	if over := len(m.churn) - m.params.ExplorationChurnWindow; over > 0 {
		m.churn = append(m.churn[:0], m.churn[over:]...)
	}
}

func (m *Manager) churnRatio() float64 {
	if len(m.churn) == 0 {
		return 0
	}
	novel := 0
	for _, n := range m.churn {
		if n {
			novel++
		}
	}
	return float64(novel) / float64(len(m.churn))
}

func (m *Manager) trackFrontier(novel, total int) {
	if total == 0 {
		return
	}

	ratio := float64(novel) / float64(total)
	if ratio >= m.params.FrontierNoveltyThreshold {
		m.stagnantCalls = 0
		return
	}

	m.stagnantCalls++
	if m.stagnantCalls >= m.params.FrontierPatience {
		m.emitValue(domain.EventFrontierExhausted, ratio)
		m.stagnantCalls = 0
	}
}

// prune evicts the coldest entries among the prune_sample coldest until the
// store is back to capacity*prune_target_ratio. Capacity is always restored,
// even when that needs more evictions than the sample allows.
func (m *Manager) prune() {
	target := int(math.Floor(float64(m.params.Capacity) * m.params.PruneTargetRatio))
	evict := len(m.entries) - target
	if evict > m.params.PruneSample {
		evict = max(m.params.PruneSample, len(m.entries)-m.params.Capacity)
	}
	if evict <= 0 {
		return
	}

	ranked := m.ranked()
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score < ranked[j].Score
	})

	pruned := make([]string, 0, evict)
	for _, r := range ranked[:evict] {
		delete(m.entries, r.ID)
		pruned = append(pruned, r.ID)
	}
	sort.Strings(pruned)

	m.totals.pruned += int64(len(pruned))
	m.emit(domain.EventPruned, pruned, 0)
}

func (m *Manager) sortedEntries() []*entry {
	entries := make([]*entry, 0, len(m.entries))
	for _, e := range m.entries {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].id < entries[j].id
	})
	return entries
}

func (m *Manager) emit(kind domain.EventKind, ids []string, value float64) {
	if len(ids) == 0 {
		return
	}
	m.events = append(m.events, domain.Event{Kind: kind, Tick: m.tick, IDs: ids, Value: value})
}

func (m *Manager) emitValue(kind domain.EventKind, value float64) {
	m.events = append(m.events, domain.Event{Kind: kind, Tick: m.tick, Value: value})
}

// meanHeat is a running mean, so it stays finite even when the sum would not.
func (m *Manager) meanHeat() float64 {
	var mean float64
	k := 0
	for _, e := range m.sortedEntries() {
		k++
		mean = bounded(mean + e.heat/float64(k) - mean/float64(k))
	}
	return mean
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// bounded clamps v into the finite float64 range so state always encodes.
// NaN becomes 0.
func bounded(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	default:
		return v
	}
}
