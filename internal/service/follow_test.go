package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cookbookd/backend/internal/service"
	"github.com/cookbookd/backend/internal/testhelpers"
)

func TestFollowGraph(t *testing.T) {
	db := testhelpers.SetupTestDB(t)
	svc := service.NewFollowService(db)
	ctx := context.Background()

	alice := testhelpers.CreateTestUser(t, db, "alice", "alice@example.com", "password123")
	bob := testhelpers.CreateTestUser(t, db, "bob", "bob@example.com", "password123")
	carol := testhelpers.CreateTestUser(t, db, "carol", "carol@example.com", "password123")

	require.NoError(t, svc.Follow(ctx, alice.ID, bob.ID))
	require.NoError(t, svc.Follow(ctx, carol.ID, bob.ID))
	require.NoError(t, svc.Follow(ctx, alice.ID, carol.ID))

	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, alice.ID), service.ErrSelfFollow)
	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, bob.ID), service.ErrAlreadyFollowed)
	assert.ErrorIs(t, svc.Follow(ctx, alice.ID, 9999), service.ErrUserNotFound)

	followers, err := svc.Followers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 2)

	following, err := svc.Following(ctx, alice.ID)
	require.NoError(t, err)
	require.Len(t, following, 2)

	require.NoError(t, svc.Unfollow(ctx, alice.ID, bob.ID))
	assert.ErrorIs(t, svc.Unfollow(ctx, alice.ID, bob.ID), service.ErrFollowNotFound)

	followers, err = svc.Followers(ctx, bob.ID)
	require.NoError(t, err)
	require.Len(t, followers, 1)
	assert.Equal(t, carol.ID, followers[0].ID)
}
