package factory

import (
	"context"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
)

// Engine defines the monitor's polling operations
type Engine interface {
	Poll(ctx context.Context) common.PollResult
	VerifyConnection(ctx context.Context) error
	IsInterfaceNil() bool
}

// Server defines the API server operations
type Server interface {
	Start()
	Address() string
	Close() error
}
