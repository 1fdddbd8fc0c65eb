package ports

import "context"

// LocalStorage is a persistent string key-value store for client state that
// must survive restarts.
type LocalStorage interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string) error
	Remove(ctx context.Context, key string) error
}
