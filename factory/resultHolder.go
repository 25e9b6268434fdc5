package factory

import (
	"sync"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
)

// resultHolder keeps the most recent poll result for the API to serve. The
// result itself is immutable; only the reference is swapped under the lock.
type resultHolder struct {
	mut    sync.RWMutex
	result common.PollResult
	isSet  bool
}

func (holder *resultHolder) store(result common.PollResult) {
	holder.mut.Lock()
	holder.result = result
	holder.isSet = true
	holder.mut.Unlock()
}

// LatestResult returns the most recent poll result and whether one exists yet
func (holder *resultHolder) LatestResult() (common.PollResult, bool) {
	holder.mut.RLock()
	defer holder.mut.RUnlock()

	return holder.result, holder.isSet
}

// IsInterfaceNil returns true if the value under the interface is nil
func (holder *resultHolder) IsInterfaceNil() bool {
	return holder == nil
}
