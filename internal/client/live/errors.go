package live

import "errors"

var (
	// ErrNotLoaded indicates that no page has been loaded yet
	ErrNotLoaded = errors.New("page not loaded")

	// ErrOffline indicates that the client has no connection to run
	ErrOffline = errors.New("client is offline")

	// ErrPageStatus indicates a non-200 response when fetching the page
	ErrPageStatus = errors.New("unexpected page status")
)
