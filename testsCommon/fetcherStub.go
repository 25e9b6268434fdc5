package testsCommon

import "context"

// FetcherStub -
type FetcherStub struct {
	FetchHandler       func(ctx context.Context, path string) ([]byte, error)
	FetchPrimedHandler func(ctx context.Context, primePath string, path string) ([]byte, error)
}

// Fetch -
func (stub *FetcherStub) Fetch(ctx context.Context, path string) ([]byte, error) {
	if stub.FetchHandler != nil {
		return stub.FetchHandler(ctx, path)
	}

	return nil, nil
}

// FetchPrimed -
func (stub *FetcherStub) FetchPrimed(ctx context.Context, primePath string, path string) ([]byte, error) {
	if stub.FetchPrimedHandler != nil {
		return stub.FetchPrimedHandler(ctx, primePath, path)
	}

	return stub.Fetch(ctx, path)
}

// IsInterfaceNil -
func (stub *FetcherStub) IsInterfaceNil() bool {
	return stub == nil
}
