package services

import (
	"chatroom/auth"
	"chatroom/domain"
	"chatroom/errors"
	"chatroom/repositories"
	stderrors "errors"
	"fmt"
	"log/slog"
)

// IAuthService is the identity authority: it issues tokens and resolves their roles.
type IAuthService interface {
	Authenticate(username, password string) (string, error)
	Authorize(token string) (domain.Authorization, error)
	SeedUsers(seeds []domain.UserSeed) error
}

type AuthService struct {
	userRepository repositories.IUserRepository
	tokens         *auth.TokenManager
	log            *slog.Logger
}

func NewAuthService(repo repositories.IUserRepository, tokens *auth.TokenManager, log *slog.Logger) IAuthService {
	return &AuthService{userRepository: repo, tokens: tokens, log: log}
}

// Authenticate answers the same error for an unknown user and a wrong password.
func (s *AuthService) Authenticate(username, password string) (string, error) {
	if err := auth.ValidateCredentials(auth.Credentials{Username: username, Password: password}); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrInvalidCredentials, err)
	}

	user, err := s.userRepository.GetUser(username)
	if err != nil {
		s.log.Debug("Authentication failed", "username", username, "error", err)
		return "", errors.ErrInvalidCredentials
	}

	match, err := auth.ComparePassword(password, user.PasswordHash)
	if err != nil || !match {
		s.log.Debug("Authentication failed", "username", username)
		return "", errors.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.Username)
	if err != nil {
		return "", err
	}
	s.log.Info("User authenticated", "subject", user.Username, "id", user.ID)
	return token, nil
}

// Authorize reads the roles from the store, so a role change applies to live tokens.
func (s *AuthService) Authorize(token string) (domain.Authorization, error) {
	claims, err := s.tokens.Validate(token)
	if err != nil {
		return domain.Authorization{}, err
	}

	user, err := s.userRepository.GetUser(claims.Subject)
	if stderrors.Is(err, errors.ErrUserNotFound) {
		return domain.Authorization{}, fmt.Errorf("%w: unknown subject", errors.ErrInvalidToken)
	}
	if err != nil {
		return domain.Authorization{}, err
	}
	return domain.Authorization{Subject: user.Username, Roles: user.Roles}, nil
}

// SeedUsers creates the accounts that do not exist yet.
func (s *AuthService) SeedUsers(seeds []domain.UserSeed) error {
	for _, seed := range seeds {
		hashedPassword, err := auth.HashPassword(seed.Password)
		if err != nil {
			return fmt.Errorf("hashing failed: %w", err)
		}
		id, err := s.userRepository.CreateUser(seed.Username, hashedPassword, seed.Roles)
		if stderrors.Is(err, errors.ErrUserAlreadyExists) {
			s.log.Debug("User already seeded", "username", seed.Username)
			continue
		}
		if err != nil {
			return fmt.Errorf("seeding %s: %w", seed.Username, err)
		}
		s.log.Info("User seeded", "id", id, "username", seed.Username, "roles", seed.Roles)
	}
	return nil
}
