package engine

import "context"

// Fetcher defines the transport operations the engine needs against the device
type Fetcher interface {
	// Fetch performs a single GET against the device and returns the raw body
	Fetch(ctx context.Context, path string) ([]byte, error)
	// FetchPrimed visits primePath first, then fetches path in the same session
	FetchPrimed(ctx context.Context, primePath string, path string) ([]byte, error)

	IsInterfaceNil() bool
}
