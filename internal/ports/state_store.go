package ports

import "context"

type StateStore interface {
	// Load returns a nil Manager and nil error when nothing usable is persisted at path.
	Load(ctx context.Context, path string) (Manager, error)
	Save(ctx context.Context, manager Manager, path string) error
}
