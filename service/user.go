package service

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"twitter-clone/model"
	"twitter-clone/repository"
)

// UserService maintains the follow graph and the user profile. Every
// follow mutation keeps the symmetry invariant: B in A.following exactly
// when A in B.followers.
type UserService struct {
	users repository.UserRepository
}

func NewUserService(users repository.UserRepository) *UserService {
	return &UserService{users: users}
}

// Follow adds the actor->target edge. The two sides of the edge are two
// separate writes; a crash between them leaves an asymmetric edge.
func (s *UserService) Follow(ctx context.Context, actorID, targetID primitive.ObjectID) error {
	if actorID == targetID {
		return ErrSelfFollow
	}

	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(ErrNotFound, "user to follow not found")
		}
		return err
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if containsID(actor.Following, targetID) {
		return fail(ErrConflict, "you are already following this user")
	}

	if err := s.users.AddFollowing(ctx, actorID, targetID); err != nil {
		return err
	}
	return s.users.AddFollower(ctx, targetID, actorID)
}

// Unfollow removes the actor->target edge, again as two separate writes.
func (s *UserService) Unfollow(ctx context.Context, actorID, targetID primitive.ObjectID) error {
	if _, err := s.users.FindByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(ErrNotFound, "user to unfollow not found")
		}
		return err
	}

	actor, err := s.users.FindByID(ctx, actorID)
	if err != nil {
		return err
	}
	if !containsID(actor.Following, targetID) {
		return fail(ErrConflict, "you are not following this user")
	}

	if err := s.users.RemoveFollowing(ctx, actorID, targetID); err != nil {
		return err
	}
	return s.users.RemoveFollower(ctx, targetID, actorID)
}

// Profile returns the user with followers and following resolved to
// summary records. The password is never included.
func (s *UserService) Profile(ctx context.Context, id primitive.ObjectID) (*model.UserProfile, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fail(ErrNotFound, "user not found")
		}
		return nil, err
	}

	followers, err := s.users.FindSummaries(ctx, user.Followers)
	if err != nil {
		return nil, err
	}
	following, err := s.users.FindSummaries(ctx, user.Following)
	if err != nil {
		return nil, err
	}

	return &model.UserProfile{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		Username:       user.Username,
		ProfilePicture: user.ProfilePicture,
		Location:       user.Location,
		DateOfBirth:    user.DateOfBirth,
		Followers:      followers,
		Following:      following,
		CreatedAt:      user.CreatedAt,
	}, nil
}

// EditProfile applies a partial update. Empty fields mean "not provided"
// and are skipped, so a field cannot be cleared to empty.
func (s *UserService) EditProfile(ctx context.Context, id primitive.ObjectID, update model.ProfileUpdate) error {
	if _, err := s.users.FindByID(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(ErrNotFound, "user not found")
		}
		return err
	}

	fields := map[string]interface{}{}
	if update.Name != "" {
		fields["name"] = update.Name
	}
	if update.DateOfBirth != "" {
		fields["dateOfBirth"] = update.DateOfBirth
	}
	if update.Location != "" {
		fields["location"] = update.Location
	}
	if len(fields) == 0 {
		return nil
	}
	return s.users.UpdateFields(ctx, id, fields)
}

func containsID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, candidate := range ids {
		if candidate == id {
			return true
		}
	}
	return false
}
