package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/sirupsen/logrus"
)

const (
	StorageKeyIsAuthenticated = "isAuthenticated"
	StorageKeyUserEmail       = "userEmail"
	// StorageKeyLegacyUserData holds a serialized profile written by older
	// clients. It is read as a fallback and removed on clear.
	StorageKeyLegacyUserData = "userData"
)

// SessionStore holds the current identity in memory and mirrors it to local
// storage so it survives restarts.
type SessionStore struct {
	storage ports.LocalStorage
	logger  logrus.FieldLogger

	mu    sync.RWMutex
	email string
}

var _ ports.IdentitySource = (*SessionStore)(nil)

func NewSessionStore(storage ports.LocalStorage, logger logrus.FieldLogger) *SessionStore {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &SessionStore{storage: storage, logger: logger}
}

// SetCurrentUser commits email as the current identity. An empty email clears
// the session, in memory and in storage.
func (s *SessionStore) SetCurrentUser(ctx context.Context, email string) error {
	email = strings.TrimSpace(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.email = email
	if email == "" {
		var errs error
		for _, key := range []string{StorageKeyUserEmail, StorageKeyIsAuthenticated, StorageKeyLegacyUserData} {
			if err := s.storage.Remove(ctx, key); err != nil {
				errs = errors.Join(errs, err)
			}
		}
		if errs != nil {
			return fmt.Errorf("clear session: %w", errs)
		}
		return nil
	}

	if err := s.storage.Set(ctx, StorageKeyUserEmail, email); err != nil {
		return fmt.Errorf("persist session email: %w", err)
	}
	if err := s.storage.Set(ctx, StorageKeyIsAuthenticated, "true"); err != nil {
		return fmt.Errorf("persist session flag: %w", err)
	}
	return nil
}

// CurrentUserEmail returns the in-memory identity, falling back to storage.
// Storage failures are logged and treated as no identity.
func (s *SessionStore) CurrentUserEmail(ctx context.Context) string {
	s.mu.RLock()
	email := s.email
	s.mu.RUnlock()
	if email != "" {
		return email
	}

	email = s.loadPersisted(ctx)
	if email == "" {
		return ""
	}

	s.mu.Lock()
	if s.email == "" {
		s.email = email
	}
	email = s.email
	s.mu.Unlock()

	return email
}

func (s *SessionStore) IsAuthenticated(ctx context.Context) bool {
	return s.CurrentUserEmail(ctx) != ""
}

// AuthHeaders carries the identity header only when a user is signed in.
func (s *SessionStore) AuthHeaders(ctx context.Context) map[string]string {
	headers := map[string]string{}
	if email := s.CurrentUserEmail(ctx); email != "" {
		headers[ports.IdentityHeader] = email
	}
	return headers
}

func (s *SessionStore) loadPersisted(ctx context.Context) string {
	flag, err := s.read(ctx, StorageKeyIsAuthenticated)
	if err == nil && flag == "true" {
		email, err := s.read(ctx, StorageKeyUserEmail)
		if err == nil && strings.TrimSpace(email) != "" {
			return strings.TrimSpace(email)
		}
	}

	raw, err := s.read(ctx, StorageKeyLegacyUserData)
	if err != nil || raw == "" {
		return ""
	}
	var legacy struct {
		Email string `json:"email"`
	}
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		s.logger.WithError(err).Warn("ignoring malformed legacy user data")
		return ""
	}
	return strings.TrimSpace(legacy.Email)
}

func (s *SessionStore) read(ctx context.Context, key string) (string, error) {
	value, err := s.storage.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, domain.ErrStorageKeyNotFound) {
			s.logger.WithError(err).WithField("key", key).Warn("read session storage")
		}
		return "", err
	}
	return value, nil
}
