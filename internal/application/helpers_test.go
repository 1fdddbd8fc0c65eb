package application

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"
)

type memoryStorage struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemoryStorage() *memoryStorage {
	return &memoryStorage{entries: map[string]string{}}
}

func (m *memoryStorage) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.entries[key]
	if !ok {
		return "", fmt.Errorf("storage entry %q: %w", key, domain.ErrStorageKeyNotFound)
	}
	return value, nil
}

func (m *memoryStorage) Set(_ context.Context, key string, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.entries[key] = value
	return nil
}

func (m *memoryStorage) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.entries, key)
	return nil
}

func (m *memoryStorage) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.entries[key]
	return ok
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("backend returned status %d", e.code)
}

func (e *statusError) HTTPStatus() int {
	return e.code
}

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func mockAnyContext() interface{} {
	return mock.Anything
}
