package storage

import "errors"

// Common client storage errors
var (
	// ErrPageStateNotFound indicates that nothing is stored for the page
	ErrPageStateNotFound = errors.New("page state not found")

	// ErrTokenNotFound indicates that no bearer token is stored
	ErrTokenNotFound = errors.New("token not found")

	// ErrStorageClosed indicates that storage is closed
	ErrStorageClosed = errors.New("storage is closed")
)
