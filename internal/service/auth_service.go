package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"inmobiliaria/internal/auth"
	"inmobiliaria/internal/cache"
	apperrors "inmobiliaria/internal/errors"
	"inmobiliaria/internal/model"
	"inmobiliaria/internal/repository"
)

// identityCacheTTL bounds staleness of the per-request identity lookup.
// Users are never updated or deleted, so a cached record cannot drift.
const identityCacheTTL = 5 * time.Minute

// AuthService handles login and identity resolution.
type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (string, error)
	// CurrentUser resolves a verified token subject to a stored user.
	CurrentUser(ctx context.Context, email string) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
	tokens   *auth.TokenService
	cache    *cache.Client
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository, tokens *auth.TokenService, cache *cache.Client) AuthService {
	return &authService{userRepo: userRepo, tokens: tokens, cache: cache}
}

func identityCacheKey(email string) string {
	return "usuario:email:" + email
}

// Login authenticates a user and issues an access token with the service
// default TTL. Unknown email and wrong password fail identically.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.Email, 0)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// CurrentUser looks up the subject's user record, read-through cached.
// The cached copy carries no password hash and is only used as identity.
func (s *authService) CurrentUser(ctx context.Context, email string) (*model.User, error) {
	if data, _ := s.cache.Get(ctx, identityCacheKey(email)); data != nil {
		var cached model.User
		if err := json.Unmarshal(data, &cached); err == nil {
			return &cached, nil
		}
	}

	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.ErrUnauthorized
	}

	if payload, err := json.Marshal(user); err == nil {
		_ = s.cache.Set(ctx, identityCacheKey(email), payload, identityCacheTTL)
	}
	return user, nil
}
