package fetcher

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
)

var (
	errEmptyHost      = errors.New("empty device host")
	errInvalidTimeout = errors.New("request timeout must be positive")
)

type errStatusNotOK int

func (e errStatusNotOK) Error() string {
	return "non-2xx HTTP status code: " + http.StatusText(int(e))
}

// ClassifyError maps a transport failure onto the per-endpoint outcome
// taxonomy. None of these failures are fatal for the cycle; they are
// recorded and the cycle moves on.
func ClassifyError(err error) common.OutcomeKind {
	if err == nil {
		return common.OutcomeSuccess
	}

	var statusErr errStatusNotOK
	if errors.As(err, &statusErr) {
		return common.OutcomeHTTPError
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return common.OutcomeTimeout
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return common.OutcomeTimeout
	}

	return common.OutcomeNetworkError
}
