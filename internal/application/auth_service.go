package application

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/bnema/dreamai-cli/internal/domain"
	"github.com/bnema/dreamai-cli/internal/ports"
	"github.com/cenkalti/backoff/v5"
	"github.com/sirupsen/logrus"
)

type AuthState string

const (
	AuthStateLoading         AuthState = "loading"
	AuthStateUnauthenticated AuthState = "unauthenticated"
	AuthStateAuthenticated   AuthState = "authenticated"

	DefaultProfileRetryDelay = time.Second
)

// StatusCoder is implemented by backend errors that carry an HTTP status.
type StatusCoder interface {
	HTTPStatus() int
}

type AuthService struct {
	session    *SessionStore
	auth       ports.AuthBackend
	profiles   ports.ProfileBackend
	cache      *QueryCache
	logger     logrus.FieldLogger
	retryDelay time.Duration

	mu    sync.RWMutex
	state AuthState
	user  *domain.UserProfile
}

type AuthServiceOption func(*AuthService)

func WithProfileRetryDelay(delay time.Duration) AuthServiceOption {
	return func(s *AuthService) {
		s.retryDelay = delay
	}
}

func WithAuthLogger(logger logrus.FieldLogger) AuthServiceOption {
	return func(s *AuthService) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func NewAuthService(session *SessionStore, auth ports.AuthBackend, profiles ports.ProfileBackend, cache *QueryCache, opts ...AuthServiceOption) *AuthService {
	if cache == nil {
		cache = NewQueryCache(DefaultQueryStaleTime)
	}

	s := &AuthService{
		session:    session,
		auth:       auth,
		profiles:   profiles,
		cache:      cache,
		logger:     logrus.StandardLogger(),
		retryDelay: DefaultProfileRetryDelay,
		state:      AuthStateLoading,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *AuthService) State() AuthState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *AuthService) IsAuthenticated() bool {
	return s.State() == AuthStateAuthenticated
}

// User returns a copy of the current profile, or nil when signed out.
func (s *AuthService) User() *domain.UserProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// Init resolves the persisted identity into an authenticated session. A
// persisted identity whose profile cannot be loaded is cleared.
func (s *AuthService) Init(ctx context.Context) error {
	s.setState(AuthStateLoading, nil)

	email := s.session.CurrentUserEmail(ctx)
	if email == "" {
		s.setState(AuthStateUnauthenticated, nil)
		return nil
	}

	profile, err := s.fetchProfile(ctx, email, false)
	if err != nil {
		s.logger.WithError(err).WithField("email", email).Debug("restore session")
		return s.teardown(ctx)
	}

	s.setState(AuthStateAuthenticated, &profile)
	return nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)

	resp, err := s.auth.Login(ctx, domain.Credentials{Email: email, Password: password})
	if err == nil && !resp.Success {
		err = errors.New(loginFailureMessage(resp))
	}
	if err != nil {
		if clearErr := s.teardown(ctx); clearErr != nil {
			return fmt.Errorf("login: %w", errors.Join(err, clearErr))
		}
		return fmt.Errorf("login: %w", err)
	}

	if resp.Email != "" {
		email = resp.Email
	}
	if err := s.session.SetCurrentUser(ctx, email); err != nil {
		return fmt.Errorf("commit session: %w", err)
	}
	s.cache.Set(QueryKeyAuth, resp)

	minimal := domain.MinimalProfile(email, resp.Name)
	s.setState(AuthStateAuthenticated, &minimal)

	profile, err := s.fetchProfile(ctx, email, true)
	if err == nil {
		s.setState(AuthStateAuthenticated, &profile)
		return nil
	}

	if !isDefinitiveFailure(err) {
		s.logger.WithError(err).WithField("email", email).Warn("profile refresh failed, keeping minimal profile")
		return nil
	}

	if clearErr := s.teardown(ctx); clearErr != nil {
		err = errors.Join(err, clearErr)
	}
	return fmt.Errorf("load profile after login: %w: %w", domain.ErrInconsistentSession, err)
}

// Signup never touches the session; the user logs in afterwards.
func (s *AuthService) Signup(ctx context.Context, name, email, password string) (domain.SignupResponse, error) {
	resp, err := s.auth.Signup(ctx, domain.SignupRequest{Name: name, Email: email, Password: password})
	if err != nil {
		return domain.SignupResponse{}, fmt.Errorf("signup: %w", err)
	}
	return resp, nil
}

func (s *AuthService) Logout(ctx context.Context) error {
	return s.teardown(ctx)
}

// RefreshUserData drops the cached profile and fetches it again. Any failure
// ends the session.
func (s *AuthService) RefreshUserData(ctx context.Context) error {
	email := s.session.CurrentUserEmail(ctx)
	if email == "" {
		s.setState(AuthStateUnauthenticated, nil)
		return domain.ErrNotAuthenticated
	}

	profile, err := s.fetchProfile(ctx, email, true)
	if err != nil {
		if clearErr := s.teardown(ctx); clearErr != nil {
			err = errors.Join(err, clearErr)
		}
		return fmt.Errorf("refresh user data: %w", err)
	}

	s.setState(AuthStateAuthenticated, &profile)
	return nil
}

func (s *AuthService) fetchProfile(ctx context.Context, email string, force bool) (domain.UserProfile, error) {
	key := ProfileQueryKey(email)
	if force {
		s.cache.Remove(key)
	} else if cached, ok := s.cache.Get(key); ok {
		if profile, ok := cached.(domain.UserProfile); ok {
			return profile, nil
		}
	}

	profile, err := backoff.Retry(ctx, func() (domain.UserProfile, error) {
		profile, err := s.profiles.GetUserProfile(ctx)
		if errors.Is(err, domain.ErrNotAuthenticated) {
			return profile, backoff.Permanent(err)
		}
		return profile, err
	},
		backoff.WithBackOff(backoff.NewConstantBackOff(s.retryDelay)),
		backoff.WithMaxTries(2),
	)
	if err != nil {
		return domain.UserProfile{}, fmt.Errorf("get user profile: %w", err)
	}

	s.cache.Set(key, profile)
	return profile, nil
}

func (s *AuthService) teardown(ctx context.Context) error {
	err := s.session.SetCurrentUser(ctx, "")
	s.cache.Remove(QueryKeyAuth)
	s.cache.RemovePrefix(QueryKeyUserProfile)
	s.setState(AuthStateUnauthenticated, nil)
	return err
}

func (s *AuthService) setState(state AuthState, user *domain.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	s.user = user
}

// isDefinitiveFailure reports whether the backend answered and refused, as
// opposed to being unreachable or failing on its side.
func isDefinitiveFailure(err error) bool {
	if errors.Is(err, domain.ErrNotAuthenticated) {
		return true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var netErr net.Error
	if errors.As(err, &netErr) {
		return false
	}
	var coder StatusCoder
	if errors.As(err, &coder) {
		code := coder.HTTPStatus()
		return code >= 400 && code < 500
	}
	return false
}

func loginFailureMessage(resp domain.LoginResponse) string {
	if resp.Message != "" {
		return resp.Message
	}
	return "invalid credentials"
}
