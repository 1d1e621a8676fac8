package category

import "time"

// SpendingCategory is the persistence model for per-user categories.
// The (user_id, name) pair is unique; duplicate inserts are treated as
// an "already exists" signal by the service layer, never an error.
type SpendingCategory struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    int64     `gorm:"column:user_id;uniqueIndex:idx_user_category;not null"`
	Name      string    `gorm:"column:name;uniqueIndex:idx_user_category;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

func (SpendingCategory) TableName() string {
	return "categories"
}
