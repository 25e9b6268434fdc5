package config

import "errors"

var (
	errEmptyHost             = errors.New("empty device host")
	errInvalidPollInterval   = errors.New("poll interval must be a positive number of seconds")
	errInvalidRequestTimeout = errors.New("request timeout must be a positive number of seconds")
	errInvalidEndpoint       = errors.New("endpoint needs both a name and a path")
	errDuplicatedEndpoint    = errors.New("duplicated endpoint name")
	errUnknownShape          = errors.New("unknown payload shape")
	errUnknownMetricField    = errors.New("unknown metric field")
)
