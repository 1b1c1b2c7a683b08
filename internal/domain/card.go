package domain

import (
	"strings"
	"time"
)

// Card is a shared vocabulary flashcard. Cards are global: they belong to
// no user and attach to learners only through their progress rows.
type Card struct {
	ID             int64     `json:"id"`
	CategoryID     *int64    `json:"categoryId"`
	Russian        string    `json:"russian"`
	English        string    `json:"english"`
	RussianExample string    `json:"russianExample"`
	EnglishExample string    `json:"englishExample"`
	CreatedAt      time.Time `json:"-"`
}

// NewCard creates a Card with the given content. Both word fields are
// required; example sentences and the category are optional.
func NewCard(russian, english, russianExample, englishExample string, categoryID *int64) (*Card, error) {
	card := &Card{
		CategoryID:     categoryID,
		Russian:        strings.TrimSpace(russian),
		English:        strings.TrimSpace(english),
		RussianExample: russianExample,
		EnglishExample: englishExample,
		CreatedAt:      time.Now().UTC(),
	}

	if err := card.Validate(); err != nil {
		return nil, err
	}

	return card, nil
}

// Validate checks if the Card has valid data.
func (c *Card) Validate() error {
	if c.Russian == "" || c.English == "" {
		return ErrEmptyCardContent
	}
	return nil
}

// CardWithProgress is a card joined with the calling user's learned flag
// and the card's category metadata. Category fields are nil for cards
// without a category.
type CardWithProgress struct {
	ID             int64   `json:"id"`
	Russian        string  `json:"russian"`
	RussianExample string  `json:"russianExample"`
	English        string  `json:"english"`
	EnglishExample string  `json:"englishExample"`
	Learned        bool    `json:"learned"`
	CategoryID     *int64  `json:"categoryId"`
	CategoryName   *string `json:"categoryName"`
	CategoryColor  *string `json:"categoryColor"`
}

// Progress records whether a user has marked a card as learned.
// At most one row exists per (user, card) pair.
type Progress struct {
	UserID    int64
	CardID    int64
	IsLearned bool
	UpdatedAt time.Time
}
