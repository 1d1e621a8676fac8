package category

import "errors"

type CreateCategoryDTO struct {
	Name string `json:"name"`
}

func (dto CreateCategoryDTO) Validate() error {
	if dto.Name == "" {
		return errors.New("category name is required")
	}
	if len(dto.Name) > 100 {
		return errors.New("category name must be less than 100 characters")
	}
	return nil
}

type CategoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	CreatedAt string `json:"created_at"`
}

type CategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
}

type CreateCategoryResponse struct {
	Category *CategoryResponse `json:"category,omitempty"`
	Message  string            `json:"message"`
}
