package domain

import (
	"math"
	"time"
)

// AccountSummary is the admin-facing view of a learner: the account plus
// aggregate progress over the shared card library.
type AccountSummary struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	CreatedAt    time.Time `json:"createdAt"`
	CardsLearned int64     `json:"cardsLearned"`
	TotalCards   int64     `json:"totalCards"`
	Progress     float64   `json:"progress"`
}

// ProgressPercent computes learned/total as a percentage rounded to one
// decimal place. A zero total counts as one so the division is defined.
func ProgressPercent(learned, total int64) float64 {
	if total < 1 {
		total = 1
	}
	return math.Round(float64(learned)/float64(total)*1000) / 10
}
