package category

import (
	"log/slog"
	"time"

	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
)

type RepositoryAPI interface {
	GetAllForUser(userID int64) ([]*categoryDatamodel.SpendingCategory, error)
	GetByName(userID int64, name string) (*categoryDatamodel.SpendingCategory, error)
	Create(category *categoryDatamodel.SpendingCategory) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// ListCategories returns the user's categories ordered by name ascending.
func (s *Service) ListCategories(userID int64) ([]*Category, error) {
	dataCategories, err := s.repo.GetAllForUser(userID)
	if err != nil {
		s.logger.Error("failed to get categories from repository", "error", err, "user_id", userID)
		return nil, err
	}

	return FromDataModelSlice(dataCategories), nil
}

// AddCategory inserts a category for the user. Adding a name that already
// exists is a no-op: the existing category is returned with created=false,
// and no error is surfaced.
func (s *Service) AddCategory(userID int64, name string) (*Category, bool, error) {
	existing, err := s.repo.GetByName(userID, name)
	if err != nil {
		s.logger.Error("failed to look up category", "error", err, "user_id", userID, "name", name)
		return nil, false, err
	}
	if existing != nil {
		s.logger.Info("category already exists", "user_id", userID, "name", name)
		return FromDataModel(existing), false, nil
	}

	dataCategory := &categoryDatamodel.SpendingCategory{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
	if err := s.repo.Create(dataCategory); err != nil {
		// a concurrent insert can still trip the unique index; re-read and
		// report it as the idempotent already-exists case
		if existing, lookupErr := s.repo.GetByName(userID, name); lookupErr == nil && existing != nil {
			return FromDataModel(existing), false, nil
		}
		s.logger.Error("failed to create category", "error", err, "user_id", userID, "name", name)
		return nil, false, err
	}

	s.logger.Info("category created", "category_id", dataCategory.ID, "user_id", userID, "name", name)
	return FromDataModel(dataCategory), true, nil
}
