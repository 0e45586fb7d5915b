package statefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bnema/void-bridge/internal/ports"
)

const (
	stateFileMode   = 0o600
	stateDirMode    = 0o700
	tempFilePattern = ".void-state-*.tmp"
)

// Store persists manager state as an opaque blob; the factory owns the format.
type Store struct {
	factory ports.ManagerFactory
}

var _ ports.StateStore = (*Store)(nil)

func NewStore(factory ports.ManagerFactory) *Store {
	return &Store{factory: factory}
}

func (s *Store) Load(ctx context.Context, path string) (ports.Manager, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}

	manager, err := s.factory.Restore(data)
	if err != nil {
		return nil, fmt.Errorf("restore manager state: %w", err)
	}

	return manager, nil
}

func (s *Store) Save(ctx context.Context, manager ports.Manager, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := manager.MarshalState()
	if err != nil {
		return fmt.Errorf("encode manager state: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(filepath.Dir(path), tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}

	cleanup = false
	return nil
}

