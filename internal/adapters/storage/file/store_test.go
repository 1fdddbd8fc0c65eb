package file

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreRejectsInvalidKeys(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	testCases := []struct {
		name    string
		key     string
		wantErr string
	}{
		{name: "empty", key: "", wantErr: "storage key is empty"},
		{name: "whitespace", key: "   ", wantErr: "storage key is empty"},
		{name: "absolute", key: "/absolute/path", wantErr: "invalid storage key"},
		{name: "traversal", key: "../escape", wantErr: "invalid storage key"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := store.Set(context.Background(), tc.key, "value")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestStoreSetGetRoundTripAndPermissions(t *testing.T) {
	t.Parallel()

	root := t.TempDir()
	store := NewStore(root)

	require.NoError(t, store.Set(context.Background(), "userEmail", "jane@example.com"))

	got, err := store.Get(context.Background(), "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", got)

	info, err := os.Stat(filepath.Join(root, "userEmail"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(entryFileMode), info.Mode().Perm())

	require.NoError(t, store.Set(context.Background(), "userEmail", "john@example.com"))
	got, err = store.Get(context.Background(), "userEmail")
	require.NoError(t, err)
	assert.Equal(t, "john@example.com", got)
}

func TestStoreGetMissingKeyReturnsNotFound(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	_, err := store.Get(context.Background(), "isAuthenticated")
	assert.ErrorIs(t, err, domain.ErrStorageKeyNotFound)
}

func TestStoreRemoveIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewStore(t.TempDir())
	require.NoError(t, store.Set(context.Background(), "userEmail", "jane@example.com"))

	require.NoError(t, store.Remove(context.Background(), "userEmail"))
	require.NoError(t, store.Remove(context.Background(), "userEmail"))

	_, err := store.Get(context.Background(), "userEmail")
	assert.ErrorIs(t, err, domain.ErrStorageKeyNotFound)
}

func TestStoreHonorsCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	store := NewStore(t.TempDir())
	assert.ErrorIs(t, store.Set(ctx, "userEmail", "x"), context.Canceled)
}
