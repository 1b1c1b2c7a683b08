package domain

import (
	"strings"
	"time"
)

// DefaultGroupColor is applied when a group create or update request
// omits the color.
const DefaultGroupColor = "#3b82f6"

// Group is a named, shared bundle of cards usable by any user,
// independent of category.
type Group struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Color       string    `json:"color"`
	CreatedAt   time.Time `json:"createdAt"`
}

// GroupSummary is a group joined with its card count for listings.
type GroupSummary struct {
	Group
	CardCount int64 `json:"cardCount"`
}

// NewGroup creates a Group with the given attributes. The name is trimmed
// and must be non-empty; an omitted color falls back to the default.
func NewGroup(name, description, color string) (*Group, error) {
	if color == "" {
		color = DefaultGroupColor
	}

	group := &Group{
		Name:        strings.TrimSpace(name),
		Description: description,
		Color:       color,
		CreatedAt:   time.Now().UTC(),
	}

	if err := group.Validate(); err != nil {
		return nil, err
	}

	return group, nil
}

// Validate checks if the Group has valid data.
func (g *Group) Validate() error {
	if strings.TrimSpace(g.Name) == "" {
		return ErrEmptyGroupName
	}
	return nil
}
