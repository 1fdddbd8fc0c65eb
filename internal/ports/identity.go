package ports

import "context"

const IdentityHeader = "X-User-Email"

// IdentitySource resolves who the current user is for outgoing requests.
type IdentitySource interface {
	CurrentUserEmail(ctx context.Context) string
	AuthHeaders(ctx context.Context) map[string]string
}
