package api

// Common request/response structures.
//
// What the original wire contract multiplexed through payload-shape
// sniffing is expressed here as one explicitly tagged request type per
// sub-operation, preserving the same fields and defaults.

// AuthRequest defines the payload for register and login.
type AuthRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse defines the successful response for authentication
// endpoints. Token is empty when the server issues no session tokens.
type AuthResponse struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
	Token    string `json:"token,omitempty"`
}

// CreateCategoryRequest defines the payload for category creation.
type CreateCategoryRequest struct {
	Name  string `json:"name"  validate:"required"`
	Color string `json:"color"`
}

// CreateCardRequest defines the payload for card creation.
type CreateCardRequest struct {
	Russian        string `json:"russian"  validate:"required"`
	English        string `json:"english"  validate:"required"`
	RussianExample string `json:"russianExample"`
	EnglishExample string `json:"englishExample"`
	CategoryID     *int64 `json:"categoryId"`
}

// UpdateCardRequest defines the payload for card content updates.
// It carries the same fields as creation; both word fields are required.
type UpdateCardRequest struct {
	Russian        string `json:"russian"  validate:"required"`
	English        string `json:"english"  validate:"required"`
	RussianExample string `json:"russianExample"`
	EnglishExample string `json:"englishExample"`
	CategoryID     *int64 `json:"categoryId"`
}

// UpdateProgressRequest defines the payload for marking a card learned
// or unlearned.
type UpdateProgressRequest struct {
	Learned *bool `json:"learned" validate:"required"`
}

// CreateGroupRequest defines the payload for group creation.
type CreateGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// UpdateGroupRequest defines the payload for group updates.
type UpdateGroupRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

// AddCardsToGroupRequest defines the payload for attaching cards to a
// group.
type AddCardsToGroupRequest struct {
	CardIDs []int64 `json:"cardIds" validate:"required,min=1"`
}

// TranslateRequest defines the payload for the translation endpoint.
type TranslateRequest struct {
	Russian string `json:"russian" validate:"required"`
}

// SuccessResponse is the body for mutations that return no entity.
type SuccessResponse struct {
	Success bool `json:"success"`
}
