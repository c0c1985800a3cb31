package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
)

// MemoryUserRepository is an in-memory UserRepository. It mirrors the
// semantics of the mongo implementation and backs the tests.
type MemoryUserRepository struct {
	mu    sync.Mutex
	users map[primitive.ObjectID]*model.User
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{users: map[primitive.ObjectID]*model.User{}}
}

func (r *MemoryUserRepository) Insert(ctx context.Context, user *model.User) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	user.CreatedAt = now
	user.UpdatedAt = now
	user.ID = primitive.NewObjectID()
	if user.Followers == nil {
		user.Followers = []primitive.ObjectID{}
	}
	if user.Following == nil {
		user.Following = []primitive.ObjectID{}
	}

	stored := *user
	r.users[user.ID] = &stored
	return user.ID, nil
}

func (r *MemoryUserRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyUser(user), nil
}

func (r *MemoryUserRepository) FindByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.Username == username })
}

func (r *MemoryUserRepository) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.findBy(func(u *model.User) bool { return u.Email == email })
}

func (r *MemoryUserRepository) findBy(match func(*model.User) bool) (*model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if match(user) {
			return copyUser(user), nil
		}
	}
	return nil, ErrNotFound
}

func (r *MemoryUserRepository) AddFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.Following = append(u.Following, targetID)
	})
}

func (r *MemoryUserRepository) RemoveFollowing(ctx context.Context, userID, targetID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.Following = removeID(u.Following, targetID)
	})
}

func (r *MemoryUserRepository) AddFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.Followers = append(u.Followers, followerID)
	})
}

func (r *MemoryUserRepository) RemoveFollower(ctx context.Context, userID, followerID primitive.ObjectID) error {
	return r.mutate(userID, func(u *model.User) {
		u.Followers = removeID(u.Followers, followerID)
	})
}

func (r *MemoryUserRepository) mutate(id primitive.ObjectID, apply func(*model.User)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[id]
	if !ok {
		return ErrNotFound
	}
	apply(user)
	user.UpdatedAt = time.Now().UTC()
	return nil
}

func (r *MemoryUserRepository) UpdateFields(ctx context.Context, id primitive.ObjectID, fields map[string]interface{}) error {
	return r.mutate(id, func(u *model.User) {
		for key, value := range fields {
			text, _ := value.(string)
			switch key {
			case "name":
				u.Name = text
			case "dateOfBirth":
				u.DateOfBirth = text
			case "location":
				u.Location = text
			}
		}
	})
}

func (r *MemoryUserRepository) FindSummaries(ctx context.Context, ids []primitive.ObjectID) ([]model.UserSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	summaries := []model.UserSummary{}
	for _, id := range ids {
		if user, ok := r.users[id]; ok {
			summaries = append(summaries, model.UserSummary{
				ID:             user.ID,
				Name:           user.Name,
				Username:       user.Username,
				ProfilePicture: user.ProfilePicture,
			})
		}
	}
	return summaries, nil
}

// MemoryTweetRepository is an in-memory TweetRepository.
type MemoryTweetRepository struct {
	mu     sync.Mutex
	tweets map[primitive.ObjectID]*model.Tweet
	seq    map[primitive.ObjectID]int
	next   int
}

func NewMemoryTweetRepository() *MemoryTweetRepository {
	return &MemoryTweetRepository{
		tweets: map[primitive.ObjectID]*model.Tweet{},
		seq:    map[primitive.ObjectID]int{},
	}
}

func (r *MemoryTweetRepository) Insert(ctx context.Context, tweet *model.Tweet) (primitive.ObjectID, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now().UTC()
	tweet.CreatedAt = now
	tweet.UpdatedAt = now
	tweet.ID = primitive.NewObjectID()
	if tweet.Likes == nil {
		tweet.Likes = []primitive.ObjectID{}
	}
	if tweet.RetweetBy == nil {
		tweet.RetweetBy = []primitive.ObjectID{}
	}
	if tweet.Replies == nil {
		tweet.Replies = []primitive.ObjectID{}
	}

	stored := *tweet
	r.tweets[tweet.ID] = &stored
	r.next++
	r.seq[tweet.ID] = r.next
	return tweet.ID, nil
}

func (r *MemoryTweetRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*model.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweet, ok := r.tweets[id]
	if !ok {
		return nil, ErrNotFound
	}
	return copyTweet(tweet), nil
}

func (r *MemoryTweetRepository) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]model.Tweet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweets := []model.Tweet{}
	for _, id := range ids {
		if tweet, ok := r.tweets[id]; ok {
			tweets = append(tweets, *copyTweet(tweet))
		}
	}
	return tweets, nil
}

func (r *MemoryTweetRepository) FindAll(ctx context.Context) ([]model.Tweet, error) {
	return r.findSorted(func(*model.Tweet) bool { return true }), nil
}

func (r *MemoryTweetRepository) FindByAuthor(ctx context.Context, author primitive.ObjectID) ([]model.Tweet, error) {
	return r.findSorted(func(t *model.Tweet) bool { return t.TweetedBy == author }), nil
}

// findSorted returns matches most recent first, insertion order breaking
// timestamp ties.
func (r *MemoryTweetRepository) findSorted(match func(*model.Tweet) bool) []model.Tweet {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweets := []model.Tweet{}
	for _, tweet := range r.tweets {
		if match(tweet) {
			tweets = append(tweets, *copyTweet(tweet))
		}
	}
	sort.SliceStable(tweets, func(i, j int) bool {
		if tweets[i].CreatedAt.Equal(tweets[j].CreatedAt) {
			return r.seq[tweets[i].ID] > r.seq[tweets[j].ID]
		}
		return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
	})
	return tweets
}

func (r *MemoryTweetRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.tweets[id]; !ok {
		return ErrNotFound
	}
	delete(r.tweets, id)
	delete(r.seq, id)
	return nil
}

func (r *MemoryTweetRepository) AddLike(ctx context.Context, tweetID, userID primitive.ObjectID) error {
	return r.mutate(tweetID, func(t *model.Tweet) {
		if !containsID(t.Likes, userID) {
			t.Likes = append(t.Likes, userID)
		}
	})
}

func (r *MemoryTweetRepository) RemoveLike(ctx context.Context, tweetID, userID primitive.ObjectID) error {
	return r.mutate(tweetID, func(t *model.Tweet) {
		t.Likes = removeID(t.Likes, userID)
	})
}

func (r *MemoryTweetRepository) AddRetweet(ctx context.Context, tweetID, userID primitive.ObjectID) error {
	return r.mutate(tweetID, func(t *model.Tweet) {
		if !containsID(t.RetweetBy, userID) {
			t.RetweetBy = append(t.RetweetBy, userID)
		}
	})
}

func (r *MemoryTweetRepository) AddReply(ctx context.Context, parentID, replyID primitive.ObjectID) error {
	return r.mutate(parentID, func(t *model.Tweet) {
		t.Replies = append(t.Replies, replyID)
	})
}

func (r *MemoryTweetRepository) mutate(id primitive.ObjectID, apply func(*model.Tweet)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	tweet, ok := r.tweets[id]
	if !ok {
		return ErrNotFound
	}
	apply(tweet)
	tweet.UpdatedAt = time.Now().UTC()
	return nil
}

func copyUser(user *model.User) *model.User {
	clone := *user
	clone.Followers = append([]primitive.ObjectID{}, user.Followers...)
	clone.Following = append([]primitive.ObjectID{}, user.Following...)
	return &clone
}

func copyTweet(tweet *model.Tweet) *model.Tweet {
	clone := *tweet
	clone.Likes = append([]primitive.ObjectID{}, tweet.Likes...)
	clone.RetweetBy = append([]primitive.ObjectID{}, tweet.RetweetBy...)
	clone.Replies = append([]primitive.ObjectID{}, tweet.Replies...)
	return &clone
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}

func removeID(ids []primitive.ObjectID, id primitive.ObjectID) []primitive.ObjectID {
	kept := ids[:0]
	for _, candidate := range ids {
		if candidate != id {
			kept = append(kept, candidate)
		}
	}
	return kept
}
