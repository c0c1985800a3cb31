package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
	"twitter-clone/repository"
)

// TweetService creates, reads and deletes tweets and maintains their
// engagement relations. Read paths resolve stored ids to embedded records
// in an explicit populate step.
type TweetService struct {
	tweets repository.TweetRepository
	users  repository.UserRepository
}

func NewTweetService(tweets repository.TweetRepository, users repository.UserRepository) *TweetService {
	return &TweetService{tweets: tweets, users: users}
}

// Create posts a new tweet for the author. Image is an optional path
// previously returned by the upload endpoint.
func (s *TweetService) Create(ctx context.Context, author primitive.ObjectID, content, image string) (*model.Tweet, error) {
	if content == "" {
		return nil, fail(ErrValidation, "please provide content for the tweet")
	}

	tweet := &model.Tweet{
		Content:   content,
		TweetedBy: author,
		Image:     image,
	}
	if _, err := s.tweets.Insert(ctx, tweet); err != nil {
		return nil, err
	}
	return tweet, nil
}

// Delete removes a tweet. Only its author may delete it. Replies that
// reference the deleted tweet are left dangling.
func (s *TweetService) Delete(ctx context.Context, actor, tweetID primitive.ObjectID) error {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(ErrNotFound, "tweet not found")
		}
		return err
	}

	if tweet.TweetedBy != actor {
		return fail(ErrForbidden, "you are not authorized to delete this tweet")
	}
	return s.tweets.Delete(ctx, tweetID)
}

// Like records the actor in the tweet's likes. Liking an already-liked
// tweet is a no-op, not an error. Returns the updated, populated tweet.
func (s *TweetService) Like(ctx context.Context, actor, tweetID primitive.ObjectID) (*model.TweetDetail, error) {
	if err := s.tweets.AddLike(ctx, tweetID, actor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrNotFound, "tweet not found")
		}
		return nil, err
	}
	return s.ByID(ctx, tweetID)
}

// Unlike removes every occurrence of the actor from the tweet's likes.
func (s *TweetService) Unlike(ctx context.Context, actor, tweetID primitive.ObjectID) (*model.TweetDetail, error) {
	if err := s.tweets.RemoveLike(ctx, tweetID, actor); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrNotFound, "tweet not found")
		}
		return nil, err
	}
	return s.ByID(ctx, tweetID)
}

// Retweet records the actor in the tweet's retweetBy, at most once.
func (s *TweetService) Retweet(ctx context.Context, actor, tweetID primitive.ObjectID) (*model.Tweet, error) {
	tweet, err := s.tweets.FindByID(ctx, tweetID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrNotFound, "tweet not found")
		}
		return nil, err
	}

	if containsID(tweet.RetweetBy, actor) {
		return nil, fail(ErrConflict, "you have already retweeted this tweet")
	}

	if err := s.tweets.AddRetweet(ctx, tweetID, actor); err != nil {
		return nil, err
	}
	return s.tweets.FindByID(ctx, tweetID)
}

// Reply posts a new tweet by the actor and links it from the parent: the
// reply's id is appended to the parent's replies.
func (s *TweetService) Reply(ctx context.Context, actor, parentID primitive.ObjectID, content string) (*model.Tweet, error) {
	if content == "" {
		return nil, fail(ErrValidation, "please provide content for the reply")
	}

	if _, err := s.tweets.FindByID(ctx, parentID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrNotFound, "tweet not found")
		}
		return nil, err
	}

	reply := &model.Tweet{
		Content:   content,
		TweetedBy: actor,
	}
	if _, err := s.tweets.Insert(ctx, reply); err != nil {
		return nil, err
	}
	if err := s.tweets.AddReply(ctx, parentID, reply.ID); err != nil {
		return nil, err
	}
	return reply, nil
}

// All returns every tweet, most recent first, fully populated.
func (s *TweetService) All(ctx context.Context) ([]model.TweetDetail, error) {
	tweets, err := s.tweets.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, tweets)
}

// ByID returns a single tweet, fully populated.
func (s *TweetService) ByID(ctx context.Context, id primitive.ObjectID) (*model.TweetDetail, error) {
	tweet, err := s.tweets.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrNotFound, "tweet not found")
		}
		return nil, err
	}

	details, err := s.populate(ctx, []model.Tweet{*tweet})
	if err != nil {
		return nil, err
	}
	return &details[0], nil
}

// ByAuthor returns the author's tweets, most recent first, fully populated.
func (s *TweetService) ByAuthor(ctx context.Context, author primitive.ObjectID) ([]model.TweetDetail, error) {
	tweets, err := s.tweets.FindByAuthor(ctx, author)
	if err != nil {
		return nil, err
	}
	return s.populate(ctx, tweets)
}

// populate resolves stored ids to embedded records: tweetedBy, likes and
// retweetBy become user summaries, replies become full tweets. Users and
// reply tweets are each fetched in one batched lookup.
func (s *TweetService) populate(ctx context.Context, tweets []model.Tweet) ([]model.TweetDetail, error) {
	userIDs := []primitive.ObjectID{}
	replyIDs := []primitive.ObjectID{}
	seenUsers := map[primitive.ObjectID]bool{}
	seenReplies := map[primitive.ObjectID]bool{}

	collectUser := func(id primitive.ObjectID) {
		if !seenUsers[id] {
			seenUsers[id] = true
			userIDs = append(userIDs, id)
		}
	}
	for _, tweet := range tweets {
		collectUser(tweet.TweetedBy)
		for _, id := range tweet.Likes {
			collectUser(id)
		}
		for _, id := range tweet.RetweetBy {
			collectUser(id)
		}
		for _, id := range tweet.Replies {
			if !seenReplies[id] {
				seenReplies[id] = true
				replyIDs = append(replyIDs, id)
			}
		}
	}

	summaries, err := s.users.FindSummaries(ctx, userIDs)
	if err != nil {
		return nil, err
	}
	userByID := map[primitive.ObjectID]model.UserSummary{}
	for _, summary := range summaries {
		userByID[summary.ID] = summary
	}

	replies, err := s.tweets.FindByIDs(ctx, replyIDs)
	if err != nil {
		return nil, err
	}
	replyByID := map[primitive.ObjectID]model.Tweet{}
	for _, reply := range replies {
		replyByID[reply.ID] = reply
	}

	details := []model.TweetDetail{}
	for _, tweet := range tweets {
		detail := model.TweetDetail{
			ID:        tweet.ID,
			Content:   tweet.Content,
			TweetedBy: userByID[tweet.TweetedBy],
			Likes:     []model.UserSummary{},
			RetweetBy: []model.UserSummary{},
			Replies:   []model.Tweet{},
			Image:     tweet.Image,
			CreatedAt: tweet.CreatedAt,
		}
		for _, id := range tweet.Likes {
			if summary, ok := userByID[id]; ok {
				detail.Likes = append(detail.Likes, summary)
			}
		}
		for _, id := range tweet.RetweetBy {
			if summary, ok := userByID[id]; ok {
				detail.RetweetBy = append(detail.RetweetBy, summary)
			}
		}
		// Dangling reply ids (deleted tweets) are skipped.
		for _, id := range tweet.Replies {
			if reply, ok := replyByID[id]; ok {
				detail.Replies = append(detail.Replies, reply)
			}
		}
		details = append(details, detail)
	}
	return details, nil
}
