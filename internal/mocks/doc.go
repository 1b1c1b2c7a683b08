// Package mocks provides centralized mock implementations for testing.
//
// Each mock exposes function fields for per-test behavior plus simple
// map-backed defaults, so test files can share one implementation
// instead of redefining inline stubs.
//
//	store := mocks.NewMockUserStore()
//	store.GetByUsernameFn = func(ctx context.Context, username string) (*domain.User, error) {
//		return nil, store.ErrUserNotFound
//	}
package mocks
