package store

import (
	"context"
	"net/http"
	"sync"

	"habitctl/internal/api"
	"habitctl/internal/constants"
	"habitctl/internal/keyring"
	"habitctl/internal/logger"
	"habitctl/internal/models"
	"habitctl/internal/validation"
)

// Result is the outcome descriptor every store operation returns. Expected
// failures never surface as errors to callers; they land here as a message.
type Result struct {
	Success bool
	Error   string
}

func failure(err error) Result {
	return Result{Success: false, Error: err.Error()}
}

// SessionState is a point-in-time snapshot of the session. Authenticated,
// User, and Token always change together; a snapshot never shows one
// without the others.
type SessionState struct {
	Authenticated bool
	User          *models.User
	Token         string
	Loading       bool
	Err           string
}

// Session owns credential state. It is the sole authority for attaching
// credentials to outbound calls: every other component reaches the network
// through Request. Construct one at startup and pass it by handle.
type Session struct {
	client *api.Client
	creds  keyring.Credentials

	mu            sync.Mutex
	authenticated bool
	user          *models.User
	token         string
	loading       bool
	err           string
	subscribers   []func(authenticated bool)
}

// NewSession creates an anonymous session backed by the given API client
// and credential store.
func NewSession(client *api.Client, creds keyring.Credentials) *Session {
	return &Session{client: client, creds: creds}
}

// State returns a consistent snapshot of the session.
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return SessionState{
		Authenticated: s.authenticated,
		User:          s.user,
		Token:         s.token,
		Loading:       s.loading,
		Err:           s.err,
	}
}

// Authenticated reports whether the session currently holds a valid login.
func (s *Session) Authenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.authenticated
}

// Subscribe registers an observer invoked after every transition between
// the authenticated and anonymous states. Observers run outside the
// session lock and may call back into the store.
func (s *Session) Subscribe(fn func(authenticated bool)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}

// Request performs an API call with the current token attached. This is
// the single choke point other components use for authenticated calls.
func (s *Session) Request(ctx context.Context, method, endpoint string, body, out any) error {
	s.mu.Lock()
	token := s.token
	s.mu.Unlock()
	return s.client.Do(ctx, method, endpoint, token, body, out)
}

// Login exchanges credentials for tokens, persists them, fetches the user
// profile, and publishes the authenticated state. On any failure the
// session stays anonymous and the message is recorded.
func (s *Session) Login(ctx context.Context, email, password string) Result {
	s.startLoading()

	var tokens models.TokenPair
	err := s.client.Do(ctx, http.MethodPost, "/auth/login/email", "", map[string]string{
		"email":    email,
		"password": password,
	}, &tokens)
	if err != nil {
		s.loginFailed(err)
		return failure(err)
	}

	if err := s.creds.Set(constants.KeyringTokenKey, tokens.AccessToken); err != nil {
		s.loginFailed(err)
		return failure(err)
	}
	if err := s.creds.Set(constants.KeyringRefreshTokenKey, tokens.RefreshToken); err != nil {
		s.loginFailed(err)
		return failure(err)
	}

	var user models.User
	if err := s.client.Do(ctx, http.MethodGet, "/users/me", tokens.AccessToken, nil, &user); err != nil {
		s.loginFailed(err)
		return failure(err)
	}

	s.loginSucceeded(&user, tokens.AccessToken)
	logger.Info("Logged in", "email", user.Email)
	return Result{Success: true}
}

// Register creates an account and immediately logs in with the same
// credentials. Client-side validation runs before any network call.
func (s *Session) Register(ctx context.Context, data models.RegisterData) Result {
	if err := validation.Registration(data); err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return failure(err)
	}

	s.startLoading()

	var user models.User
	if err := s.client.Do(ctx, http.MethodPost, "/auth/register", "", data, &user); err != nil {
		s.loginFailed(err)
		return failure(err)
	}

	return s.Login(ctx, data.Email, data.Password)
}

// Logout clears both stored tokens and resets the session to anonymous.
// It is local-only: no server call is made and it cannot fail.
func (s *Session) Logout() {
	if err := s.creds.Delete(constants.KeyringTokenKey); err != nil && err != keyring.ErrNotFound {
		logger.Warn("Failed to clear token from keyring", "error", err)
	}
	if err := s.creds.Delete(constants.KeyringRefreshTokenKey); err != nil && err != keyring.ErrNotFound {
		logger.Warn("Failed to clear refresh token from keyring", "error", err)
	}

	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.authenticated = false
	s.user = nil
	s.token = ""
	s.loading = false
	s.err = ""
	s.mu.Unlock()

	if wasAuthenticated {
		s.notify(false)
	}
}

// Restore re-establishes a session from a previously stored token. A
// rejected or expired token is treated the same as having no session.
func (s *Session) Restore(ctx context.Context) Result {
	token, err := s.creds.Get(constants.KeyringTokenKey)
	if err != nil {
		return Result{Success: false, Error: "no stored session"}
	}

	s.startLoading()

	var user models.User
	if err := s.client.Do(ctx, http.MethodGet, "/users/me", token, nil, &user); err != nil {
		logger.Debug("Stored token rejected, clearing session", "error", err)
		s.Logout()
		return failure(err)
	}

	s.loginSucceeded(&user, token)
	return Result{Success: true}
}

// UpdateProfile applies a partial update to the current user's profile and
// replaces the cached user on success.
func (s *Session) UpdateProfile(ctx context.Context, update models.UserUpdate) Result {
	var user models.User
	if err := s.Request(ctx, http.MethodPut, "/users/me", update, &user); err != nil {
		s.mu.Lock()
		s.err = err.Error()
		s.mu.Unlock()
		return failure(err)
	}

	s.mu.Lock()
	s.user = &user
	s.mu.Unlock()
	return Result{Success: true}
}

func (s *Session) startLoading() {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()
}

// loginSucceeded publishes user and token in one critical section so no
// reader can observe the flag without the credentials.
func (s *Session) loginSucceeded(user *models.User, token string) {
	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.authenticated = true
	s.user = user
	s.token = token
	s.loading = false
	s.err = ""
	s.mu.Unlock()

	if !wasAuthenticated {
		s.notify(true)
	}
}

func (s *Session) loginFailed(err error) {
	s.mu.Lock()
	wasAuthenticated := s.authenticated
	s.authenticated = false
	s.user = nil
	s.token = ""
	s.loading = false
	s.err = err.Error()
	s.mu.Unlock()

	if wasAuthenticated {
		s.notify(false)
	}
}

func (s *Session) notify(authenticated bool) {
	s.mu.Lock()
	subscribers := make([]func(bool), len(s.subscribers))
	copy(subscribers, s.subscribers)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(authenticated)
	}
}
