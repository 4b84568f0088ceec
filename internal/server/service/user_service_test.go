package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holocron/internal/server/repository/sqlite"
)

func userSvc(t *testing.T) UserService {
	t.Helper()
	db, err := sqlite.Open(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	repo := sqlite.NewUserRepository(db)
	require.NoError(t, repo.Init(context.Background()))
	return NewUserService(repo)
}

func TestUserService_RegisterAndAuthenticate(t *testing.T) {
	ctx := context.Background()
	svc := userSvc(t)

	user, err := svc.Register(ctx, "Rey@Resistance.example", "bb8sekret")
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "rey@resistance.example", user.Email, "email is normalized")
	assert.Empty(t, user.PasswordHash, "hash never leaves the service")

	authed, err := svc.Authenticate(ctx, "rey@resistance.example", "bb8sekret")
	require.NoError(t, err)
	assert.Equal(t, user.ID, authed.ID)
}

func TestUserService_Register_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc := userSvc(t)

	_, err := svc.Register(ctx, "solo@falcon.example", "kessel12")
	require.NoError(t, err)

	_, err = svc.Register(ctx, "solo@falcon.example", "other999")
	require.ErrorIs(t, err, ErrEmailTaken)
	assert.Equal(t, "Email already registered", err.Error())
}

func TestUserService_Authenticate_BadInputs(t *testing.T) {
	ctx := context.Background()
	svc := userSvc(t)

	_, err := svc.Register(ctx, "luke@jedi.example", "rightpass")
	require.NoError(t, err)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "luke@jedi.example", "wrongpass"},
		{"unknown email", "vader@empire.example", "rightpass"},
		{"empty email", "", "rightpass"},
		{"empty password", "luke@jedi.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Authenticate(ctx, tt.email, tt.password)
			require.ErrorIs(t, err, ErrInvalidCredentials)
			assert.Equal(t, "Invalid email or password", err.Error())
		})
	}
}
