package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"twitter-clone/model"
	"twitter-clone/repository"
)

// AuthService validates credentials and issues and verifies session tokens.
type AuthService struct {
	users  repository.UserRepository
	secret []byte
}

func NewAuthService(users repository.UserRepository, secret string) *AuthService {
	return &AuthService{users: users, secret: []byte(secret)}
}

// Register creates a new user with a bcrypt-hashed password. The email and
// username uniqueness checks are two independent lookups; a concurrent
// registration racing between them can slip through.
func (s *AuthService) Register(ctx context.Context, name, email, username, password string) error {
	if name == "" || email == "" || username == "" || password == "" {
		return fail(ErrValidation, "one or more mandatory fields are empty")
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return fail(ErrConflict, "user with this email already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	if _, err := s.users.FindByUsername(ctx, username); err == nil {
		return fail(ErrConflict, "user with this username already exists")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user := &model.User{
		Name:           name,
		Email:          email,
		Username:       username,
		Password:       string(hash),
		ProfilePicture: model.DefaultProfilePicture,
	}
	_, err = s.users.Insert(ctx, user)
	return err
}

// Login checks the credentials and issues a signed token bound to the user
// id. An unknown username and a wrong password produce the same generic
// error so a caller cannot tell which check failed.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, *model.User, error) {
	if username == "" || password == "" {
		return "", nil, fail(ErrValidation, "one or more mandatory fields are empty")
	}

	user, err := s.users.FindByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return "", nil, ErrAuth
	}
	if err != nil {
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return "", nil, ErrAuth
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"_id": user.ID.Hex(),
	})
	tokenString, err := token.SignedString(s.secret)
	if err != nil {
		return "", nil, err
	}

	return tokenString, user, nil
}

// Authenticate verifies a session token and resolves the acting user.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*model.User, error) {
	if tokenString == "" {
		return nil, fail(ErrAuth, "you must be logged in")
	}

	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, fail(ErrAuth, "invalid or malformed token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, fail(ErrAuth, "invalid or malformed token")
	}
	hex, ok := claims["_id"].(string)
	if !ok {
		return nil, fail(ErrAuth, "invalid or malformed token")
	}
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return nil, fail(ErrAuth, "invalid or malformed token")
	}

	user, err := s.users.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, fail(ErrAuth, "invalid or malformed token")
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}
