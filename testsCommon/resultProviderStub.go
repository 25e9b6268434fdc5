package testsCommon

import "github.com/iulianpascalau/arris-modem-monitoring/common"

// ResultProviderStub -
type ResultProviderStub struct {
	LatestResultHandler func() (common.PollResult, bool)
}

// LatestResult -
func (stub *ResultProviderStub) LatestResult() (common.PollResult, bool) {
	if stub.LatestResultHandler != nil {
		return stub.LatestResultHandler()
	}

	return common.PollResult{}, false
}

// IsInterfaceNil -
func (stub *ResultProviderStub) IsInterfaceNil() bool {
	return stub == nil
}
