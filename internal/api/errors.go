package api

import (
	"errors"
	"net/http"

	"github.com/slovocards/slovocards-api/internal/domain"
	"github.com/slovocards/slovocards-api/internal/service/auth"
	"github.com/slovocards/slovocards-api/internal/store"
	"github.com/slovocards/slovocards-api/internal/translation"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status
// codes based on the error type. This prevents leaking internal error
// types to clients.
func MapErrorToStatusCode(err error) int {
	switch {
	// Authentication errors
	case errors.Is(err, auth.ErrInvalidCredentials),
		errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken):
		return http.StatusUnauthorized

	// Not found errors
	case store.IsNotFoundError(err):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrUsernameExists):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrValidation),
		errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrEmptyPassword),
		errors.Is(err, domain.ErrEmptyCategoryName),
		errors.Is(err, domain.ErrEmptyGroupName),
		errors.Is(err, domain.ErrEmptyCardContent),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, translation.ErrEmptyWord),
		// The category duplicate reports 400, not 409: the deployed
		// clients match on that status.
		errors.Is(err, store.ErrCategoryExists):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		return "Invalid credentials"

	case errors.Is(err, store.ErrUsernameExists):
		return "Username already exists"

	case errors.Is(err, store.ErrCategoryExists):
		return "Category already exists"

	case errors.Is(err, store.ErrUserNotFound):
		return "User not found"

	case errors.Is(err, store.ErrCardNotFound):
		return "Card not found"

	case errors.Is(err, store.ErrGroupNotFound):
		return "Group not found"

	case errors.Is(err, domain.ErrEmptyUsername),
		errors.Is(err, domain.ErrEmptyPassword):
		return "Username and password required"

	case errors.Is(err, domain.ErrEmptyCategoryName):
		return "Category name required"

	case errors.Is(err, domain.ErrEmptyGroupName):
		return "Group name required"

	case errors.Is(err, domain.ErrEmptyCardContent):
		return "Russian and english words required"

	case errors.Is(err, translation.ErrEmptyWord):
		return "Russian word required"

	default:
		return "An unexpected error occurred"
	}
}
