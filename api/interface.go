package api

import "github.com/iulianpascalau/arris-modem-monitoring/common"

// ResultProvider exposes the latest completed poll result
type ResultProvider interface {
	// LatestResult returns the most recent poll result and whether one exists yet
	LatestResult() (common.PollResult, bool)

	IsInterfaceNil() bool
}
