package domain

import "errors"

var (
	ErrTenantNotFound = errors.New("tenant not found")
	ErrForbidden      = errors.New("access forbidden")

	// ErrStoreUnavailable marks failures of the relational store. No
	// authorization decision can be made without it.
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrCacheUnavailable marks cache failures. Callers fall back to the store.
	ErrCacheUnavailable = errors.New("cache unavailable")

	ErrValidationFailed = errors.New("validation failed")
)
