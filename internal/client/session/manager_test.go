package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holocron/internal/client/api"
	"holocron/internal/client/models"
	"holocron/internal/logging"
)

// fakeAPI implements the API interface for unit tests.
type fakeAPI struct {
	RegisterErr error

	LoginToken string
	LoginErr   error

	User           *models.User
	CurrentUserErr error

	LastRegisterEmail string
	LastLoginEmail    string
	LastLoginPassword string
	CurrentUserCalls  int
}

func (f *fakeAPI) Register(ctx context.Context, email, password string) error {
	f.LastRegisterEmail = email
	return f.RegisterErr
}

func (f *fakeAPI) Login(ctx context.Context, email, password string) (string, error) {
	f.LastLoginEmail = email
	f.LastLoginPassword = password
	return f.LoginToken, f.LoginErr
}

func (f *fakeAPI) CurrentUser(ctx context.Context) (*models.User, error) {
	f.CurrentUserCalls++
	return f.User, f.CurrentUserErr
}

// fakeStore is an in-memory credential store.
type fakeStore struct {
	token    string
	tokenErr error
	saveErr  error
}

func (s *fakeStore) Token(ctx context.Context) (string, error) { return s.token, s.tokenErr }

func (s *fakeStore) Save(ctx context.Context, token string) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.token = token
	return nil
}

func (s *fakeStore) Discard(ctx context.Context) error {
	s.token = ""
	return nil
}

func newManager(apiClient *fakeAPI, store *fakeStore) *Manager {
	return NewManager(apiClient, store, logging.Nop())
}

func TestRestore_NoPersistedCredential(t *testing.T) {
	f := &fakeAPI{}
	m := newManager(f, &fakeStore{})

	m.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.CurrentUser())
	assert.Zero(t, f.CurrentUserCalls, "no verification without a credential")
}

func TestRestore_ValidCredential(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@b.com"}
	f := &fakeAPI{User: user}
	m := newManager(f, &fakeStore{token: "T"})

	m.Restore(context.Background())

	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, user, m.CurrentUser())
}

func TestRestore_RejectedCredentialIsDiscarded(t *testing.T) {
	f := &fakeAPI{CurrentUserErr: api.ErrAuthenticationRequired}
	store := &fakeStore{token: "stale"}
	m := newManager(f, store)

	m.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, store.token, "rejected credential must be removed")
}

func TestRestore_NetworkFailureAbsorbed(t *testing.T) {
	f := &fakeAPI{CurrentUserErr: &api.NetworkError{Err: errors.New("refused")}}
	store := &fakeStore{token: "T"}
	m := newManager(f, store)

	// must not panic or propagate anything
	m.Restore(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, store.token)
}

func TestLogin_PersistsThenVerifies(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@b.com"}
	f := &fakeAPI{User: user}
	store := &fakeStore{}
	m := newManager(f, store)

	require.NoError(t, m.Login(context.Background(), "T"))

	assert.Equal(t, "T", store.token)
	assert.Equal(t, StateAuthenticated, m.State())
	assert.Equal(t, "a@b.com", m.CurrentUser().Email)
}

func TestLogin_VerificationFailureRevertsAndPropagates(t *testing.T) {
	wantErr := &api.RemoteError{Status: 500, Message: "Failed to get user info"}
	f := &fakeAPI{CurrentUserErr: wantErr}
	store := &fakeStore{}
	m := newManager(f, store)

	err := m.Login(context.Background(), "T")
	require.ErrorAs(t, err, &wantErr)

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Empty(t, store.token)
	assert.Nil(t, m.CurrentUser())
}

func TestSignIn(t *testing.T) {
	t.Run("missing fields fail locally", func(t *testing.T) {
		f := &fakeAPI{}
		m := newManager(f, &fakeStore{})

		err := m.SignIn(context.Background(), "", "secret1")
		assert.True(t, api.IsValidation(err))
		assert.Empty(t, f.LastLoginEmail, "no network call expected")

		err = m.SignIn(context.Background(), "a@b.com", "")
		assert.True(t, api.IsValidation(err))
	})

	t.Run("successful sign in establishes session", func(t *testing.T) {
		user := &models.User{ID: "u1", Email: "a@b.com"}
		f := &fakeAPI{LoginToken: "T", User: user}
		store := &fakeStore{}
		m := newManager(f, store)

		require.NoError(t, m.SignIn(context.Background(), "a@b.com", "secret1"))

		assert.Equal(t, "a@b.com", f.LastLoginEmail)
		assert.Equal(t, "T", store.token)
		assert.Equal(t, StateAuthenticated, m.State())
	})

	t.Run("bad credentials propagate", func(t *testing.T) {
		f := &fakeAPI{LoginErr: &api.RemoteError{Status: 401, Message: "Invalid email or password"}}
		m := newManager(f, &fakeStore{})

		err := m.SignIn(context.Background(), "a@b.com", "wrong")
		var re *api.RemoteError
		require.ErrorAs(t, err, &re)
		assert.Equal(t, StateUnauthenticated, m.State())
	})
}

func TestSignUp(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		password string
		confirm  string
		wantMsg  string
	}{
		{name: "missing email", email: "", password: "secret1", confirm: "secret1", wantMsg: "Please fill in all fields"},
		{name: "mismatched confirmation", email: "a@b.com", password: "secret1", confirm: "secret2", wantMsg: "Passwords do not match"},
		{name: "short password", email: "a@b.com", password: "abc", confirm: "abc", wantMsg: "Password must be at least 6 characters long"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &fakeAPI{}
			m := newManager(f, &fakeStore{})

			err := m.SignUp(context.Background(), tt.email, tt.password, tt.confirm)
			require.Error(t, err)
			assert.True(t, api.IsValidation(err))
			assert.Equal(t, tt.wantMsg, err.Error())
			assert.Empty(t, f.LastRegisterEmail, "no network call expected")
		})
	}

	t.Run("register then auto sign in", func(t *testing.T) {
		user := &models.User{ID: "u1", Email: "a@b.com"}
		f := &fakeAPI{LoginToken: "T", User: user}
		m := newManager(f, &fakeStore{})

		require.NoError(t, m.SignUp(context.Background(), "a@b.com", "secret1", "secret1"))

		assert.Equal(t, "a@b.com", f.LastRegisterEmail)
		assert.Equal(t, "a@b.com", f.LastLoginEmail)
		assert.Equal(t, StateAuthenticated, m.State())
	})

	t.Run("registration failure stops the flow", func(t *testing.T) {
		f := &fakeAPI{RegisterErr: &api.RemoteError{Status: 400, Message: "Email already registered"}}
		m := newManager(f, &fakeStore{})

		err := m.SignUp(context.Background(), "a@b.com", "secret1", "secret1")
		require.Error(t, err)
		assert.Empty(t, f.LastLoginEmail, "must not attempt sign in")
	})
}

func TestLogout(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@b.com"}
	f := &fakeAPI{User: user}
	store := &fakeStore{token: "T"}
	m := newManager(f, store)
	m.Restore(context.Background())
	require.True(t, m.IsAuthenticated())

	m.Logout(context.Background())

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.CurrentUser())
	assert.Empty(t, store.token)
}

func TestInvalidate(t *testing.T) {
	user := &models.User{ID: "u1", Email: "a@b.com"}
	f := &fakeAPI{User: user}
	m := newManager(f, &fakeStore{token: "T"})
	m.Restore(context.Background())
	require.True(t, m.IsAuthenticated())

	m.Invalidate()

	assert.Equal(t, StateUnauthenticated, m.State())
	assert.Nil(t, m.CurrentUser())
}
