package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
)

func TestFollowSymmetry(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	require.NoError(t, env.users.Follow(ctx, alice, bob))

	require.True(t, containsID(env.user(t, alice).Following, bob))
	require.True(t, containsID(env.user(t, bob).Followers, alice))

	require.NoError(t, env.users.Unfollow(ctx, alice, bob))

	require.False(t, containsID(env.user(t, alice).Following, bob))
	require.False(t, containsID(env.user(t, bob).Followers, alice))
}

func TestFollowSelf(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "Alice", "alice")

	err := env.users.Follow(context.Background(), alice, alice)
	require.ErrorIs(t, err, ErrSelfFollow)
}

func TestFollowTwice(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	require.NoError(t, env.users.Follow(ctx, alice, bob))

	err := env.users.Follow(ctx, alice, bob)
	require.ErrorIs(t, err, ErrConflict)

	// The duplicate attempt must not have touched either side.
	require.Len(t, env.user(t, alice).Following, 1)
	require.Len(t, env.user(t, bob).Followers, 1)
}

func TestFollowMissingTarget(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "Alice", "alice")

	err := env.users.Follow(context.Background(), alice, primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollowNotFollowing(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	err := env.users.Unfollow(ctx, alice, bob)
	require.ErrorIs(t, err, ErrConflict)
}

func TestProfilePopulatesRelations(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	require.NoError(t, env.users.Follow(ctx, alice, bob))

	profile, err := env.users.Profile(ctx, bob)
	require.NoError(t, err)
	require.Len(t, profile.Followers, 1)
	require.Equal(t, "alice", profile.Followers[0].Username)
	require.Equal(t, "Alice", profile.Followers[0].Name)
	require.Empty(t, profile.Following)
}

func TestProfileMissingUser(t *testing.T) {
	env := newTestEnv()

	_, err := env.users.Profile(context.Background(), primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestEditProfilePartialUpdate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")

	err := env.users.EditProfile(ctx, alice, model.ProfileUpdate{Location: "Copenhagen"})
	require.NoError(t, err)

	user := env.user(t, alice)
	require.Equal(t, "Copenhagen", user.Location)
	require.Equal(t, "Alice", user.Name)

	// Empty fields are "not provided": nothing changes, nothing is cleared.
	require.NoError(t, env.users.EditProfile(ctx, alice, model.ProfileUpdate{}))
	user = env.user(t, alice)
	require.Equal(t, "Copenhagen", user.Location)
	require.Equal(t, "Alice", user.Name)
}
