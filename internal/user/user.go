package user

import (
	"time"

	errors "github.com/frahmantamala/budget-tracker/internal"
	userDatamodel "github.com/frahmantamala/budget-tracker/internal/core/datamodel/user"
)

// User is the profile shape returned by the API. The password hash
// never leaves the datamodel layer.
type User struct {
	ID        int64     `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

func FromDataModel(dm *userDatamodel.User) *User {
	return &User{
		ID:        dm.ID,
		FirstName: dm.FirstName,
		LastName:  dm.LastName,
		Email:     dm.Email,
		Role:      dm.Role,
		CreatedAt: dm.CreatedAt,
	}
}

func FromDataModelSlice(dms []*userDatamodel.User) []*User {
	users := make([]*User, 0, len(dms))
	for _, dm := range dms {
		users = append(users, FromDataModel(dm))
	}
	return users
}

var (
	ErrUserNotFound = errors.NewNotFoundError("User not found", errors.ErrCodeUserNotFound)
	ErrEmailTaken   = errors.NewConflictError("Email is already registered", errors.ErrCodeEmailTaken)
)
