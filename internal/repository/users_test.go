package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/require"

	"github.com/tundex/billtracker/internal/entity"
	"github.com/tundex/billtracker/internal/repository"
)

func TestRepository_UpsertUser(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	u := repository.SeedUser(t, db)

	got, err := repo.User(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, u.Email, got.Email)
	require.True(t, got.Active)

	// Second upsert with the same id updates in place.
	u.FirstName = "Renamed"
	u.Role = entity.RoleStaff

	err = repo.UpsertUser(context.Background(), u, time.Now())
	require.NoError(t, err)

	got, err = repo.User(context.Background(), u.ID)
	require.NoError(t, err)
	require.Equal(t, "Renamed", got.FirstName)
	require.Equal(t, entity.RoleStaff, got.Role)
}

func TestRepository_DeactivateUser(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	u := repository.SeedUser(t, db)

	err := repo.DeactivateUser(context.Background(), u.ID, time.Now())
	require.NoError(t, err)

	got, err := repo.User(context.Background(), u.ID)
	require.NoError(t, err)
	require.False(t, got.Active)

	err = repo.DeactivateUser(context.Background(), uuid.Must(uuid.NewV4()), time.Now())
	require.ErrorIs(t, err, entity.ErrNotFound)
}

func TestRepository_User_Missing(t *testing.T) {
	t.Parallel()

	db := repository.SetupTestDatabase(t)
	repo := repository.New(db)

	_, err := repo.User(context.Background(), uuid.Must(uuid.NewV4()))
	require.ErrorIs(t, err, entity.ErrUserNotFound)
}
