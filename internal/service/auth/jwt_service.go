package auth

import "context"

// TokenService defines operations for issuing and validating session
// tokens. Tokens carry the user's identity and admin claim so a verified
// Bearer token can stand in for the legacy identity headers.
type TokenService interface {
	// GenerateToken creates a signed token for the given identity.
	GenerateToken(ctx context.Context, userID int64, isAdmin bool) (string, error)

	// ValidateToken validates the provided token string and extracts the
	// claims. Returns ErrExpiredToken or ErrInvalidToken on failure.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the identity carried by a session token.
type Claims struct {
	UserID  int64 `json:"uid"`
	IsAdmin bool  `json:"adm"`
}
