package user

import (
	"log/slog"
	"time"

	"github.com/frahmantamala/budget-tracker/internal/auth"
	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
)

// Repository defines the data access methods for user records
type Repository interface {
	Create(user *userDatamodel.User) error
	GetByID(id int64) (*userDatamodel.User, error)
	GetByEmail(email string) (*userDatamodel.User, error)
	GetAll() ([]*userDatamodel.User, error)
}

type Service struct {
	repo       Repository
	bcryptCost int
	logger     *slog.Logger
}

func NewService(repo Repository, bcryptCost int, logger *slog.Logger) *Service {
	return &Service{
		repo:       repo,
		bcryptCost: bcryptCost,
		logger:     logger,
	}
}

// Register creates a new account with the client role. Emails are
// normalized to lower case before the uniqueness check.
func (s *Service) Register(dto RegisterDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		s.logger.Error("registration validation failed", "error", err)
		return nil, err
	}

	existing, err := s.repo.GetByEmail(dto.Email)
	if err == nil && existing != nil {
		s.logger.Warn("registration rejected: email taken", "email", dto.Email)
		return nil, ErrEmailTaken
	}

	hash, err := auth.HashPassword(dto.Password, s.bcryptCost)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	record := &userDatamodel.User{
		FirstName:    dto.FirstName,
		LastName:     dto.LastName,
		Email:        dto.Email,
		PasswordHash: hash,
		Role:         userDatamodel.RoleClient,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	if err := s.repo.Create(record); err != nil {
		// a concurrent registration can slip past the pre-check and
		// trip the unique index instead
		if again, lookupErr := s.repo.GetByEmail(dto.Email); lookupErr == nil && again != nil {
			return nil, ErrEmailTaken
		}
		s.logger.Error("failed to create user", "error", err)
		return nil, err
	}

	s.logger.Info("user registered", "user_id", record.ID)
	return FromDataModel(record), nil
}

// GetByID loads a single profile.
func (s *Service) GetByID(userID int64) (*User, error) {
	record, err := s.repo.GetByID(userID)
	if err != nil {
		s.logger.Error("failed to get user", "error", err, "user_id", userID)
		return nil, ErrUserNotFound
	}
	return FromDataModel(record), nil
}

// ListUsers returns every account. Admin only; the route enforces it.
func (s *Service) ListUsers() ([]*User, error) {
	records, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}
	return FromDataModelSlice(records), nil
}
