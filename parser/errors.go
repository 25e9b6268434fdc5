package parser

import (
	"errors"
	"fmt"
)

var (
	errUnknownShape = errors.New("no parser registered for payload shape")
	errInvalidJSON  = errors.New("response body is not valid JSON")
	errNotAnObject  = errors.New("expected a JSON object")
	errNotAnArray   = errors.New("expected a JSON array")
)

type errTruncatedArray int

func (e errTruncatedArray) Error() string {
	return fmt.Sprintf("network status array too short: %d elements", int(e))
}
