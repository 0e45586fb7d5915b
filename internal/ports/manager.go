package ports

import (
	"context"

	"github.com/bnema/void-bridge/internal/domain"
)

// Manager is the stateful memory manager the bridge mediates. The bridge never
// looks past this surface.
type Manager interface {
	RegisterChunks(ctx context.Context, ids []string, texts []string) error
	Reinforce(ctx context.Context, results domain.ReinforceResults, heatGain, ttlBoost float64) error
	Stats() domain.Stats
	// ConsumeEvents returns queued events and clears the queue.
	ConsumeEvents() []domain.Event
	Top(n int) []domain.RankedEntry
	MarshalState() ([]byte, error)
}

type ManagerFactory interface {
	New(params domain.ManagerParams) (Manager, error)
	// Restore returns a nil Manager and nil error when state holds no usable manager.
	Restore(state []byte) (Manager, error)
}
