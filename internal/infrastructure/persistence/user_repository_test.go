package persistence

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/shopbooks/backend/internal/domain/identity"
	"github.com/shopbooks/backend/internal/domain/shared"
	"github.com/shopbooks/backend/internal/infrastructure/persistence/models"
)

func setupUserTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(&models.UserModel{})
	require.NoError(t, err)

	return db
}

func TestGormUserRepository_SaveAndFind(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	t.Run("saves new user and finds by ID", func(t *testing.T) {
		user, err := identity.NewUser("bookkeeper", "s3cret-password")
		require.NoError(t, err)

		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, "bookkeeper", found.Name)
		assert.Equal(t, user.PasswordHash, found.PasswordHash)
	})

	t.Run("finds by name case-insensitively", func(t *testing.T) {
		found, err := repo.FindByName(ctx, "BookKeeper")
		require.NoError(t, err)
		assert.Equal(t, "bookkeeper", found.Name)
	})

	t.Run("returns ErrNotFound for unknown user", func(t *testing.T) {
		_, err := repo.FindByID(ctx, uuid.New())
		assert.ErrorIs(t, err, shared.ErrNotFound)

		_, err = repo.FindByName(ctx, "ghost")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("updates existing user", func(t *testing.T) {
		user, err := repo.FindByName(ctx, "bookkeeper")
		require.NoError(t, err)

		now := time.Now().UTC().Truncate(time.Second)
		user.LastLoginAt = &now
		require.NoError(t, repo.Save(ctx, user))

		found, err := repo.FindByID(ctx, user.ID)
		require.NoError(t, err)
		require.NotNil(t, found.LastLoginAt)
		assert.True(t, found.LastLoginAt.Equal(now))
	})
}

func TestGormUserRepository_ExistsByName(t *testing.T) {
	db := setupUserTestDB(t)
	repo := NewGormUserRepository(db)
	ctx := context.Background()

	user, err := identity.NewUser("admin", "s3cret-password")
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, user))

	exists, err := repo.ExistsByName(ctx, "Admin")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.ExistsByName(ctx, "nobody")
	require.NoError(t, err)
	assert.False(t, exists)
}
