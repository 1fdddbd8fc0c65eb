package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/bnema/dreamai-cli/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStoreSetCurrentUserSurvivesReload(t *testing.T) {
	storage := newMemoryStorage()
	session := NewSessionStore(storage, quietLogger())

	require.NoError(t, session.SetCurrentUser(context.Background(), "jane@example.com"))
	assert.Equal(t, "jane@example.com", session.CurrentUserEmail(context.Background()))

	reloaded := NewSessionStore(storage, quietLogger())
	assert.Equal(t, "jane@example.com", reloaded.CurrentUserEmail(context.Background()))
	assert.True(t, reloaded.IsAuthenticated(context.Background()))

	flag, err := storage.Get(context.Background(), StorageKeyIsAuthenticated)
	require.NoError(t, err)
	assert.Equal(t, "true", flag)
}

func TestSessionStoreClearRemovesAllKeys(t *testing.T) {
	storage := newMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), StorageKeyLegacyUserData, `{"email":"old@example.com"}`))
	session := NewSessionStore(storage, quietLogger())

	require.NoError(t, session.SetCurrentUser(context.Background(), "jane@example.com"))
	require.NoError(t, session.SetCurrentUser(context.Background(), ""))

	assert.False(t, session.IsAuthenticated(context.Background()))
	assert.Empty(t, session.CurrentUserEmail(context.Background()))
	assert.False(t, storage.has(StorageKeyUserEmail))
	assert.False(t, storage.has(StorageKeyIsAuthenticated))
	assert.False(t, storage.has(StorageKeyLegacyUserData))
}

func TestSessionStoreIsAuthenticatedTracksIdentity(t *testing.T) {
	testCases := []struct {
		name  string
		email string
		want  bool
	}{
		{name: "empty", email: "", want: false},
		{name: "whitespace", email: "   ", want: false},
		{name: "email", email: "jane@example.com", want: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			session := NewSessionStore(newMemoryStorage(), quietLogger())
			require.NoError(t, session.SetCurrentUser(context.Background(), tc.email))
			assert.Equal(t, tc.want, session.IsAuthenticated(context.Background()))
		})
	}
}

func TestSessionStoreAuthHeaders(t *testing.T) {
	session := NewSessionStore(newMemoryStorage(), quietLogger())
	assert.Empty(t, session.AuthHeaders(context.Background()))

	require.NoError(t, session.SetCurrentUser(context.Background(), "jane@example.com"))
	assert.Equal(t, map[string]string{ports.IdentityHeader: "jane@example.com"}, session.AuthHeaders(context.Background()))
}

func TestSessionStoreIgnoresEmailWithoutAuthenticatedFlag(t *testing.T) {
	storage := newMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), StorageKeyUserEmail, "jane@example.com"))

	session := NewSessionStore(storage, quietLogger())
	assert.Empty(t, session.CurrentUserEmail(context.Background()))
}

func TestSessionStoreFallsBackToLegacyUserData(t *testing.T) {
	storage := newMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), StorageKeyLegacyUserData, `{"email":"legacy@example.com","name":"Legacy"}`))

	session := NewSessionStore(storage, quietLogger())
	assert.Equal(t, "legacy@example.com", session.CurrentUserEmail(context.Background()))
}

func TestSessionStoreMalformedLegacyUserDataIsAbsent(t *testing.T) {
	storage := newMemoryStorage()
	require.NoError(t, storage.Set(context.Background(), StorageKeyLegacyUserData, `{not json`))

	session := NewSessionStore(storage, quietLogger())
	assert.Empty(t, session.CurrentUserEmail(context.Background()))
}

func TestSessionStoreTreatsStorageFailureAsAbsent(t *testing.T) {
	storage := mocks.NewMockLocalStorage(t)
	storage.EXPECT().Get(mockAnyContext(), StorageKeyIsAuthenticated).Return("", errors.New("disk unplugged"))
	storage.EXPECT().Get(mockAnyContext(), StorageKeyLegacyUserData).Return("", errors.New("disk unplugged"))

	session := NewSessionStore(storage, quietLogger())
	assert.False(t, session.IsAuthenticated(context.Background()))
}

func TestSessionStoreSetCurrentUserReportsPersistFailure(t *testing.T) {
	storage := mocks.NewMockLocalStorage(t)
	storage.EXPECT().Set(mockAnyContext(), StorageKeyUserEmail, "jane@example.com").Return(errors.New("read-only"))

	session := NewSessionStore(storage, quietLogger())
	err := session.SetCurrentUser(context.Background(), "jane@example.com")
	require.Error(t, err)
	assert.ErrorContains(t, err, "persist session email")
}
