package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestCreateTweet(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")

	tweet, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)
	require.Equal(t, alice, tweet.TweetedBy)
	require.Empty(t, tweet.Likes)
	require.Empty(t, tweet.RetweetBy)
	require.Empty(t, tweet.Replies)
}

func TestCreateTweetEmptyContent(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "Alice", "alice")

	_, err := env.tweets.Create(context.Background(), alice, "", "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestDeleteTweetOwnerOnly(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	tweet, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)

	err = env.tweets.Delete(ctx, bob, tweet.ID)
	require.ErrorIs(t, err, ErrForbidden)

	require.NoError(t, env.tweets.Delete(ctx, alice, tweet.ID))

	_, err = env.tweets.ByID(ctx, tweet.ID)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteMissingTweet(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "Alice", "alice")

	err := env.tweets.Delete(context.Background(), alice, primitive.NewObjectID())
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLikeUnlike(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	tweet, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)

	liked, err := env.tweets.Like(ctx, bob, tweet.ID)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 1)
	require.Equal(t, "bob", liked.Likes[0].Username)

	// Liking again is absorbed, not an error, and never duplicates.
	liked, err = env.tweets.Like(ctx, bob, tweet.ID)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 1)

	unliked, err := env.tweets.Unlike(ctx, bob, tweet.ID)
	require.NoError(t, err)
	require.Empty(t, unliked.Likes)
}

func TestRetweetOncePerUser(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	tweet, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)

	retweeted, err := env.tweets.Retweet(ctx, bob, tweet.ID)
	require.NoError(t, err)
	require.Equal(t, []primitive.ObjectID{bob}, retweeted.RetweetBy)

	_, err = env.tweets.Retweet(ctx, bob, tweet.ID)
	require.ErrorIs(t, err, ErrConflict)
	require.Equal(t, []primitive.ObjectID{bob}, env.tweet(t, tweet.ID).RetweetBy)
}

// Replies link parent to child: the reply is a fresh tweet and its id is
// appended to the parent's replies array.
func TestReplyAppendsToParent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	parent, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)

	reply, err := env.tweets.Reply(ctx, bob, parent.ID, "hi alice")
	require.NoError(t, err)
	require.Equal(t, bob, reply.TweetedBy)
	require.Empty(t, reply.Replies)

	require.Equal(t, []primitive.ObjectID{reply.ID}, env.tweet(t, parent.ID).Replies)

	detail, err := env.tweets.ByID(ctx, parent.ID)
	require.NoError(t, err)
	require.Len(t, detail.Replies, 1)
	require.Equal(t, "hi alice", detail.Replies[0].Content)
}

func TestReplyMissingParent(t *testing.T) {
	env := newTestEnv()
	alice := env.register(t, "Alice", "alice")

	_, err := env.tweets.Reply(context.Background(), alice, primitive.NewObjectID(), "hi")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestReplyEmptyContent(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")

	parent, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)

	_, err = env.tweets.Reply(ctx, alice, parent.ID, "")
	require.ErrorIs(t, err, ErrValidation)
}

func TestAllMostRecentFirst(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")

	first, err := env.tweets.Create(ctx, alice, "first", "")
	require.NoError(t, err)
	second, err := env.tweets.Create(ctx, alice, "second", "")
	require.NoError(t, err)

	all, err := env.tweets.All(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	require.Equal(t, second.ID, all[0].ID)
	require.Equal(t, first.ID, all[1].ID)
}

func TestByAuthorFiltersAndPopulates(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")
	bob := env.register(t, "Bob", "bob")

	_, err := env.tweets.Create(ctx, alice, "from alice", "")
	require.NoError(t, err)
	_, err = env.tweets.Create(ctx, bob, "from bob", "")
	require.NoError(t, err)

	tweets, err := env.tweets.ByAuthor(ctx, alice)
	require.NoError(t, err)
	require.Len(t, tweets, 1)
	require.Equal(t, "from alice", tweets[0].Content)
	require.Equal(t, "Alice", tweets[0].TweetedBy.Name)
}

// Deleting a tweet does not cascade: a parent that referenced it keeps the
// dangling id, and the populated view simply skips it.
func TestDeletedReplySkippedOnPopulate(t *testing.T) {
	env := newTestEnv()
	ctx := context.Background()
	alice := env.register(t, "Alice", "alice")

	parent, err := env.tweets.Create(ctx, alice, "hello world", "")
	require.NoError(t, err)
	reply, err := env.tweets.Reply(ctx, alice, parent.ID, "self reply")
	require.NoError(t, err)

	require.NoError(t, env.tweets.Delete(ctx, alice, reply.ID))

	require.Equal(t, []primitive.ObjectID{reply.ID}, env.tweet(t, parent.ID).Replies)

	detail, err := env.tweets.ByID(ctx, parent.ID)
	require.NoError(t, err)
	require.Empty(t, detail.Replies)
}
