package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
	"twitter-clone/repository"
)

type testEnv struct {
	auth   *AuthService
	users  *UserService
	tweets *TweetService

	userRepo  *repository.MemoryUserRepository
	tweetRepo *repository.MemoryTweetRepository
}

func newTestEnv() *testEnv {
	userRepo := repository.NewMemoryUserRepository()
	tweetRepo := repository.NewMemoryTweetRepository()
	return &testEnv{
		auth:      NewAuthService(userRepo, "test-secret"),
		users:     NewUserService(userRepo),
		tweets:    NewTweetService(tweetRepo, userRepo),
		userRepo:  userRepo,
		tweetRepo: tweetRepo,
	}
}

// register creates a user and returns its id.
func (e *testEnv) register(t *testing.T, name, username string) primitive.ObjectID {
	t.Helper()
	err := e.auth.Register(context.Background(), name, username+"@example.com", username, "hunter22")
	require.NoError(t, err)
	user, err := e.userRepo.FindByUsername(context.Background(), username)
	require.NoError(t, err)
	return user.ID
}

func (e *testEnv) user(t *testing.T, id primitive.ObjectID) *model.User {
	t.Helper()
	user, err := e.userRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return user
}

func (e *testEnv) tweet(t *testing.T, id primitive.ObjectID) *model.Tweet {
	t.Helper()
	tweet, err := e.tweetRepo.FindByID(context.Background(), id)
	require.NoError(t, err)
	return tweet
}
