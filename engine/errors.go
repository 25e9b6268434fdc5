package engine

import "errors"

var (
	errNilFetcher     = errors.New("nil fetcher")
	errEmptyTable     = errors.New("empty endpoint table")
	errInvalidTimeout = errors.New("request timeout must be positive")
)
