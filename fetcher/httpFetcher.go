package fetcher

import (
	"context"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("fetcher")

type httpFetcher struct {
	baseURL string
	client  *http.Client
}

// NewHTTPFetcher creates a fetcher bound to a single device host. The client
// carries a cookie jar so that consecutive requests inside one poll cycle
// share whatever session state the firmware sets on the first page visit.
func NewHTTPFetcher(host string, timeout time.Duration) (*httpFetcher, error) {
	if host == "" {
		return nil, errEmptyHost
	}
	if timeout <= 0 {
		return nil, errInvalidTimeout
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}

	return &httpFetcher{
		baseURL: "http://" + host,
		client: &http.Client{
			Timeout: timeout,
			Jar:     jar,
		},
	}, nil
}

// Fetch performs a single GET against the device and returns the raw body.
// There is no retry here: retry policy belongs to the caller.
func (f *httpFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.baseURL+path, nil)
	if err != nil {
		return nil, err
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, errStatusNotOK(resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}

// FetchPrimed visits primePath before fetching path. Some firmware revisions
// populate the data endpoints only after the main status page was hit in the
// same session, so the two requests must stay strictly ordered. A failed
// priming request is logged and the data fetch is still attempted.
func (f *httpFetcher) FetchPrimed(ctx context.Context, primePath string, path string) ([]byte, error) {
	if primePath != "" {
		_, err := f.Fetch(ctx, primePath)
		if err != nil {
			log.Debug("priming request failed, attempting data endpoint anyway",
				"path", primePath, "error", err)
		}
	}

	return f.Fetch(ctx, path)
}

// IsInterfaceNil returns true if the value under the interface is nil
func (f *httpFetcher) IsInterfaceNil() bool {
	return f == nil
}
