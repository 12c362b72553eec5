package repository

import (
	"context"
	"testing"

	"github.com/stpnv0/SlotBooker/internal/domain"
	"github.com/stpnv0/SlotBooker/internal/kvstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_AddUnique_RejectsTakenEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	u, err := repo.AddUnique(ctx, domain.UserInput{FirstName: "Sara", Email: "sara@example.com", PasswordHash: "h"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleCustomer, u.Role)

	_, err = repo.AddUnique(ctx, domain.UserInput{FirstName: "Other", Email: "SARA@example.com"})
	assert.ErrorIs(t, err, domain.ErrEmailTaken)

	// plain Add does not check
	_, err = repo.Add(ctx, domain.UserInput{FirstName: "Dup", Email: "sara@example.com"})
	assert.NoError(t, err)
}

func TestUserRepo_FindByEmail(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	_, err := repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	created, err := repo.Add(ctx, domain.UserInput{Email: "admin@booking.com", Role: domain.RoleAdmin})
	require.NoError(t, err)

	found, err := repo.FindByEmail(ctx, "Admin@Booking.com")
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	assert.Equal(t, domain.RoleAdmin, found.Role)
}

func TestUserRepo_UpdateAndRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewUserRepo(kvstore.NewMemory(), fixedClock(testNow), newTestLogger(t))

	u, err := repo.Add(ctx, domain.UserInput{Email: "a@example.com"})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, u.ID, func(usr *domain.User) { usr.FirstName = "Ahmed" })
	require.NoError(t, err)
	assert.Equal(t, "Ahmed", updated.FirstName)
	assert.NotNil(t, updated.UpdatedAt)

	require.NoError(t, repo.Remove(ctx, u.ID))
	_, err = repo.GetByID(ctx, u.ID)
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = repo.Update(ctx, u.ID, func(*domain.User) {})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestSessionRepo_Lifecycle(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewSessionRepo(store, newTestLogger(t))

	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	require.NoError(t, repo.Set(ctx, domain.SessionUser{ID: 7, Email: "a@example.com", Role: domain.RoleAdmin}))

	u, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(7), u.ID)

	raw, err := store.Get(ctx, KeyCurrentUser)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "password")

	require.NoError(t, repo.Clear(ctx))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}

func TestSessionRepo_NullAndGarbage(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemory()
	repo := NewSessionRepo(store, newTestLogger(t))

	require.NoError(t, store.Set(ctx, KeyCurrentUser, []byte("null")))
	_, err := repo.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)

	require.NoError(t, store.Set(ctx, KeyCurrentUser, []byte("{{")))
	_, err = repo.Get(ctx)
	assert.ErrorIs(t, err, domain.ErrNoSession)
}
