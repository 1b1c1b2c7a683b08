package domain

import (
	"strings"
	"time"
)

// DefaultCategoryColor is applied when a create request omits the color.
const DefaultCategoryColor = "bg-gradient-to-br from-gray-500 to-gray-600"

// Category is a user-owned label attached to cards for organization.
// Category names are unique per owner.
type Category struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"-"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"-"`
}

// NewCategory creates a Category owned by the given user. The name is
// trimmed and must be non-empty; an omitted color falls back to the default.
func NewCategory(userID int64, name, color string) (*Category, error) {
	if color == "" {
		color = DefaultCategoryColor
	}

	cat := &Category{
		UserID:    userID,
		Name:      strings.TrimSpace(name),
		Color:     color,
		CreatedAt: time.Now().UTC(),
	}

	if err := cat.Validate(); err != nil {
		return nil, err
	}

	return cat, nil
}

// Validate checks if the Category has valid data.
func (c *Category) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrEmptyCategoryName
	}
	return nil
}

// DefaultCategories are seeded for every newly registered user.
func DefaultCategories(userID int64) []*Category {
	fixtures := []struct {
		name  string
		color string
	}{
		{"Животные", "bg-gradient-to-br from-purple-500 to-purple-600"},
		{"Еда", "bg-gradient-to-br from-pink-500 to-pink-600"},
		{"Путешествия", "bg-gradient-to-br from-orange-500 to-orange-600"},
		{"Работа", "bg-gradient-to-br from-blue-500 to-blue-600"},
	}

	categories := make([]*Category, 0, len(fixtures))
	for _, f := range fixtures {
		categories = append(categories, &Category{
			UserID:    userID,
			Name:      f.name,
			Color:     f.color,
			CreatedAt: time.Now().UTC(),
		})
	}
	return categories
}
