package statefile

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/void-bridge/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStoreLoadMissingFileReturnsNil(t *testing.T) {
	t.Parallel()

	factory := mocks.NewMockManagerFactory(t)
	store := NewStore(factory)

	manager, err := store.Load(context.Background(), filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Nil(t, manager)
}

func TestStoreLoadDelegatesToFactory(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("version = 1\n"), 0o600))

	factory := mocks.NewMockManagerFactory(t)
	restored := mocks.NewMockManager(t)
	factory.EXPECT().Restore([]byte("version = 1\n")).Return(restored, nil).Once()

	manager, err := NewStore(factory).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Same(t, restored, manager)
}

func TestStoreLoadUnusableStateReturnsNil(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	factory := mocks.NewMockManagerFactory(t)
	factory.EXPECT().Restore(mock.Anything).Return(nil, nil).Once()

	manager, err := NewStore(factory).Load(context.Background(), path)
	require.NoError(t, err)
	assert.Nil(t, manager)
}

func TestStoreLoadWrapsRestoreError(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0o600))

	restoreErr := errors.New("bad toml")
	factory := mocks.NewMockManagerFactory(t)
	factory.EXPECT().Restore([]byte("garbage")).Return(nil, restoreErr).Once()

	_, err := NewStore(factory).Load(context.Background(), path)
	require.ErrorIs(t, err, restoreErr)
	assert.ErrorContains(t, err, "restore manager state")
}

func TestStoreSaveCreatesParentAndOverwrites(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "server", "data", "void-state.toml")
	store := NewStore(mocks.NewMockManagerFactory(t))

	first := mocks.NewMockManager(t)
	first.EXPECT().MarshalState().Return([]byte("tick = 1\n"), nil).Once()
	require.NoError(t, store.Save(context.Background(), first, path))

	second := mocks.NewMockManager(t)
	second.EXPECT().MarshalState().Return([]byte("tick = 2\n"), nil).Once()
	require.NoError(t, store.Save(context.Background(), second, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "tick = 2\n", string(data))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(stateFileMode), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not be left behind")
}

func TestStoreSaveEncodeFailureLeavesFileUntouched(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "state.toml")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	encodeErr := errors.New("encode failed")
	manager := mocks.NewMockManager(t)
	manager.EXPECT().MarshalState().Return(nil, encodeErr).Once()

	err := NewStore(mocks.NewMockManagerFactory(t)).Save(context.Background(), manager, path)
	require.ErrorIs(t, err, encodeErr)

	data, readErr := os.ReadFile(path)
	require.NoError(t, readErr)
	assert.Equal(t, "old", string(data))
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(mocks.NewMockManagerFactory(t))
	_, err := store.Load(ctx, filepath.Join(t.TempDir(), "state.toml"))
	require.ErrorIs(t, err, context.Canceled)

	err = store.Save(ctx, mocks.NewMockManager(t), filepath.Join(t.TempDir(), "state.toml"))
	require.ErrorIs(t, err, context.Canceled)
}

