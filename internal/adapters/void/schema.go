package void

import (
	"fmt"

	"github.com/bnema/void-bridge/internal/domain"
)

const currentSchemaVersion = 1

type stateSchema struct {
	Version       int                  `toml:"version"`
	Tick          int64                `toml:"tick"`
	StagnantCalls int                  `toml:"stagnant_calls"`
	Params        domain.ManagerParams `toml:"params"`
	Totals        totalsSchema         `toml:"totals"`
	ChurnWindow   []bool               `toml:"churn_window"`
	Entries       []entrySchema        `toml:"entries"`
}

type totalsSchema struct {
	Novel      int64 `toml:"novel"`
	Pruned     int64 `toml:"pruned"`
	Expired    int64 `toml:"expired"`
	Reinforced int64 `toml:"reinforced"`
}

type entrySchema struct {
	ID            string  `toml:"id"`
	Text          string  `toml:"text"`
	Heat          float64 `toml:"heat"`
	TTL           float64 `toml:"ttl"`
	Hits          int64   `toml:"hits"`
	Registrations int     `toml:"registrations"`
	LastTick      int64   `toml:"last_tick"`
	Habituated    bool    `toml:"habituated,omitempty"`
}

func (s *stateSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s stateSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported state schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(m *Manager) stateSchema {
	entries := make([]entrySchema, 0, len(m.entries))
	for _, e := range m.sortedEntries() {
		entries = append(entries, entrySchema{
			ID:            e.id,
			Text:          e.text,
			Heat:          e.heat,
			TTL:           e.ttl,
			Hits:          e.hits,
			Registrations: e.registrations,
			LastTick:      e.lastTick,
			Habituated:    e.habituated,
		})
	}

	return stateSchema{
		Version:       currentSchemaVersion,
		Tick:          m.tick,
		StagnantCalls: m.stagnantCalls,
		Params:        m.params,
		Totals: totalsSchema{
			Novel:      m.totals.novel,
			Pruned:     m.totals.pruned,
			Expired:    m.totals.expired,
			Reinforced: m.totals.reinforced,
		},
		ChurnWindow: append([]bool(nil), m.churn...),
		Entries:     entries,
	}
}

func fromSchema(s stateSchema) (*Manager, error) {
	m, err := New(s.Params)
	if err != nil {
		return nil, fmt.Errorf("restore params: %w", err)
	}

	m.tick = s.Tick
	m.stagnantCalls = s.StagnantCalls
	m.totals = counters{
		novel:      s.Totals.Novel,
		pruned:     s.Totals.Pruned,
		expired:    s.Totals.Expired,
		reinforced: s.Totals.Reinforced,
	}
	for _, novel := range s.ChurnWindow {
		m.recordChurn(novel)
	}

	for _, e := range s.Entries {
		if e.ID == "" {
			return nil, fmt.Errorf("restore entries: entry without id")
		}
		if _, dup := m.entries[e.ID]; dup {
			return nil, fmt.Errorf("restore entries: duplicate id %q", e.ID)
		}
		m.entries[e.ID] = &entry{
			id:            e.ID,
			text:          e.Text,
			heat:          bounded(e.Heat),
			ttl:           bounded(e.TTL),
			hits:          e.Hits,
			registrations: e.Registrations,
			lastTick:      e.LastTick,
			habituated:    e.Habituated,
		}
	}

	return m, nil
}
