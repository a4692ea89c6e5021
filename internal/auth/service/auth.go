// Package service resolves bearer tokens into user identities. Every
// basket and reservation endpoint runs through ResolveIdentity before
// touching user data.
package service

import (
	"context"
	"errors"
	autherrors "skyfare/internal/auth/errors"
	"skyfare/internal/auth/repository"
	"skyfare/pkg/config"
	apperrors "skyfare/pkg/errors"
	"strings"
	"time"
)

type AuthService interface {
	// ResolveIdentity maps an Authorization header value to a user ID.
	// Missing, unknown, and expired tokens all resolve to Unauthorized.
	ResolveIdentity(ctx context.Context, authorization string) (string, error)
}

type authService struct {
	tokens repository.TokenRepository
	cfg    *config.Config
	now    func() time.Time
}

func NewAuthService(tokens repository.TokenRepository, cfg *config.Config) AuthService {
	return &authService{
		tokens: tokens,
		cfg:    cfg,
		now:    time.Now,
	}
}

func (s *authService) ResolveIdentity(ctx context.Context, authorization string) (string, error) {
	token := strings.TrimSpace(strings.TrimPrefix(authorization, "Bearer "))
	if token == "" {
		return "", apperrors.Unauthorized("Missing authorization token")
	}

	loginToken, err := s.tokens.FindByToken(ctx, token)
	if err != nil {
		if errors.Is(err, autherrors.ErrTokenNotFound) {
			return "", apperrors.Unauthorized("Invalid authorization token")
		}
		return "", apperrors.Internal("Failed to resolve identity", err)
	}

	if loginToken.Expired(s.now()) {
		return "", apperrors.Unauthorized("Authorization token expired")
	}

	return loginToken.UserID, nil
}
