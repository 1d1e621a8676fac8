package category

import (
	"time"

	categoryDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/category"
)

// Category is a named spending bucket owned by one user. Categories are
// append-only reference data: they are created on demand when a user types
// a new name while adding a budget or expense, and never updated or removed.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func NewCategory(userID int64, name string) *Category {
	return &Category{
		UserID:    userID,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

func ToDataModel(c *Category) *categoryDatamodel.SpendingCategory {
	return &categoryDatamodel.SpendingCategory{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func FromDataModel(c *categoryDatamodel.SpendingCategory) *Category {
	return &Category{
		ID:        c.ID,
		UserID:    c.UserID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}

func FromDataModelSlice(categories []*categoryDatamodel.SpendingCategory) []*Category {
	result := make([]*Category, len(categories))
	for i, c := range categories {
		result[i] = FromDataModel(c)
	}
	return result
}
