package sqlite

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"holocron/internal/server/domain"
)

func TestUserRepository_CreateAndGet(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))

	user := &domain.User{ID: "u1", Email: "obiwan@jedi.example", PasswordHash: "hash"}
	require.NoError(t, repo.Create(ctx, user))
	assert.False(t, user.CreatedAt.IsZero())

	byEmail, err := repo.GetByEmail(ctx, "obiwan@jedi.example")
	require.NoError(t, err)
	assert.Equal(t, "u1", byEmail.ID)

	byID, err := repo.GetByID(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, "obiwan@jedi.example", byID.Email)
}

func TestUserRepository_Create_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))

	require.NoError(t, repo.Create(ctx, &domain.User{ID: "u1", Email: "dup@x.com", PasswordHash: "h"}))

	err := repo.Create(ctx, &domain.User{ID: "u2", Email: "dup@x.com", PasswordHash: "h"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestUserRepository_GetByEmail_NotFound(t *testing.T) {
	ctx := context.Background()
	db := openTestDB(t)
	repo := NewUserRepository(db)
	require.NoError(t, repo.Init(ctx))

	_, err := repo.GetByEmail(ctx, "missing@x.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
