// Package session owns the process-wide authentication state: the persisted
// credential and the identity of the authenticated user. All mutation of
// either goes through the Manager; other components only read.
package session

import (
	"context"
	"strings"
	"sync"

	"holocron/internal/client/api"
	"holocron/internal/client/credstore"
	"holocron/internal/client/models"
	"holocron/internal/logging"
)

// minPasswordLen is the minimum password length accepted at registration.
const minPasswordLen = 6

// State is the authentication state machine:
// Unauthenticated → Verifying → Authenticated, and back to Unauthenticated on
// logout or credential rejection.
type State int

const (
	StateUnauthenticated State = iota
	StateVerifying
	StateAuthenticated
)

func (s State) String() string {
	switch s {
	case StateVerifying:
		return "verifying"
	case StateAuthenticated:
		return "authenticated"
	default:
		return "unauthenticated"
	}
}

// API is the slice of the remote contract the session layer needs.
// api.HTTPClient satisfies it.
type API interface {
	Register(ctx context.Context, email, password string) error
	Login(ctx context.Context, email, password string) (string, error)
	CurrentUser(ctx context.Context) (*models.User, error)
}

// Manager maintains the single authentication state and its lifecycle.
//
// A stored credential is never trusted on mere presence: every (re-)
// established session is verified by fetching the current user, which is the
// single source of truth for "is this credential still good".
type Manager struct {
	api   API
	store credstore.Store
	log   logging.Logger

	mu    sync.Mutex
	state State
	user  *models.User
}

func NewManager(apiClient API, store credstore.Store, log logging.Logger) *Manager {
	return &Manager{
		api:   apiClient,
		store: store,
		log:   log,
		state: StateUnauthenticated,
	}
}

// Restore re-establishes a session from a previously persisted credential.
// It is invoked once at process start and never fails: any problem (absent
// credential, unreachable server, rejected token) ends in the
// Unauthenticated state, discarding the credential where appropriate.
func (m *Manager) Restore(ctx context.Context) {
	token, err := m.store.Token(ctx)
	if err != nil {
		m.log.Warn(ctx, "failed to read persisted credential", "error", err)
		m.setUnauthenticated()
		return
	}
	if token == "" {
		m.setUnauthenticated()
		return
	}

	m.setState(StateVerifying)

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		// The request layer already discards the credential on a 401;
		// discard again for network failures so a broken token does not
		// linger.
		if discardErr := m.store.Discard(ctx); discardErr != nil {
			m.log.Error(ctx, "failed to discard credential", "error", discardErr)
		}
		m.log.Info(ctx, "session restore failed", "error", err)
		m.setUnauthenticated()
		return
	}

	m.setAuthenticated(user)
	m.log.Info(ctx, "session restored", "email", user.Email)
}

// Login persists the credential, then verifies it by fetching the current
// user. On failure the credential is discarded, the state reverts to
// Unauthenticated, and the failure is propagated so login screens can show
// the reason.
func (m *Manager) Login(ctx context.Context, token string) error {
	if err := m.store.Save(ctx, token); err != nil {
		return err
	}

	m.setState(StateVerifying)

	user, err := m.api.CurrentUser(ctx)
	if err != nil {
		if discardErr := m.store.Discard(ctx); discardErr != nil {
			m.log.Error(ctx, "failed to discard credential", "error", discardErr)
		}
		m.setUnauthenticated()
		return err
	}

	m.setAuthenticated(user)
	return nil
}

// SignIn exchanges an email/password pair for a credential and establishes
// the session with it.
func (m *Manager) SignIn(ctx context.Context, email, password string) error {
	if strings.TrimSpace(email) == "" || password == "" {
		return api.NewValidationError("Please fill in all fields")
	}

	token, err := m.api.Login(ctx, email, password)
	if err != nil {
		return err
	}
	return m.Login(ctx, token)
}

// SignUp registers a new account and signs it in. Validation failures are
// reported before any network call.
func (m *Manager) SignUp(ctx context.Context, email, password, confirm string) error {
	if strings.TrimSpace(email) == "" || password == "" || confirm == "" {
		return api.NewValidationError("Please fill in all fields")
	}
	if password != confirm {
		return api.NewValidationError("Passwords do not match")
	}
	if len(password) < minPasswordLen {
		return api.NewValidationError("Password must be at least 6 characters long")
	}

	if err := m.api.Register(ctx, email, password); err != nil {
		return err
	}
	return m.SignIn(ctx, email, password)
}

// Logout discards the persisted credential and resets the state. It makes no
// network call and cannot fail; storage errors are logged and swallowed.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Discard(ctx); err != nil {
		m.log.Error(ctx, "failed to discard credential on logout", "error", err)
	}
	m.setUnauthenticated()
}

// Invalidate resets the in-memory state after the request layer reported a
// credential rejection. The persisted credential has already been discarded
// by then; wire this to api.HTTPClient.OnAuthRejected.
func (m *Manager) Invalidate() {
	m.setUnauthenticated()
}

// CurrentUser returns the authenticated user, or nil.
func (m *Manager) CurrentUser() *models.User {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.state != StateAuthenticated {
		return nil
	}
	return m.user
}

func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

func (m *Manager) IsAuthenticated() bool {
	return m.State() == StateAuthenticated
}

func (m *Manager) setState(s State) {
	m.mu.Lock()
	m.state = s
	m.mu.Unlock()
}

func (m *Manager) setAuthenticated(user *models.User) {
	m.mu.Lock()
	m.state = StateAuthenticated
	m.user = user
	m.mu.Unlock()
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.state = StateUnauthenticated
	m.user = nil
	m.mu.Unlock()
}
