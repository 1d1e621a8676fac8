package auth

import (
	"log/slog"
	"strconv"

	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (*LoginResponse, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	GetUser(userID int64) (*User, error)
}

// RepositoryAPI reads credential and identity rows for authentication.
type RepositoryAPI interface {
	GetCredentialsByEmail(email string) (*userDatamodel.User, error)
	GetByID(userID int64) (*userDatamodel.User, error)
}

type Service struct {
	repo   RepositoryAPI
	tokens TokenGenerator
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, tokens TokenGenerator, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		tokens: tokens,
		logger: logger,
	}
}

// Authenticate verifies credentials and issues a token pair. Lookup
// failures and bad passwords are indistinguishable to the caller.
func (s *Service) Authenticate(dto LoginDTO) (*LoginResponse, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	record, err := s.repo.GetCredentialsByEmail(dto.Email)
	if err != nil {
		s.logger.Warn("login failed: unknown email", "email", dto.Email)
		return nil, ErrInvalidCredentials
	}

	if err := VerifyPassword(record.PasswordHash, dto.Password); err != nil {
		s.logger.Warn("login failed: password mismatch", "user_id", record.ID)
		return nil, ErrInvalidCredentials
	}

	user := &User{ID: record.ID, Email: record.Email, Role: record.Role}

	tokens, err := s.issueTokens(user)
	if err != nil {
		s.logger.Error("failed to issue tokens", "error", err, "user_id", user.ID)
		return nil, err
	}

	s.logger.Info("user authenticated", "user_id", user.ID)
	return &LoginResponse{User: user, Tokens: tokens}, nil
}

// RefreshTokens exchanges a valid refresh token for a fresh pair. The
// user row is re-read so a role change takes effect on rotation.
func (s *Service) RefreshTokens(refreshToken string) (AuthTokens, error) {
	claims, err := s.tokens.ValidateRefreshToken(refreshToken)
	if err != nil {
		return AuthTokens{}, err
	}

	userID, err := strconv.ParseInt(claims.UserID, 10, 64)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}

	user, err := s.GetUser(userID)
	if err != nil {
		return AuthTokens{}, ErrInvalidToken
	}

	return s.issueTokens(user)
}

func (s *Service) ValidateAccessToken(tokenString string) (*Claims, error) {
	return s.tokens.ValidateAccessToken(tokenString)
}

// GetUser loads the identity referenced by token claims.
func (s *Service) GetUser(userID int64) (*User, error) {
	record, err := s.repo.GetByID(userID)
	if err != nil {
		return nil, err
	}
	return &User{ID: record.ID, Email: record.Email, Role: record.Role}, nil
}

func (s *Service) issueTokens(user *User) (AuthTokens, error) {
	accessToken, err := s.tokens.GenerateAccessToken(user)
	if err != nil {
		return AuthTokens{}, err
	}

	refreshToken, err := s.tokens.GenerateRefreshToken(user)
	if err != nil {
		return AuthTokens{}, err
	}

	return AuthTokens{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}
