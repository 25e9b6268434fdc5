package aggregator

import (
	"sort"
	"strconv"
	"time"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/iulianpascalau/arris-modem-monitoring/normalizer"
)

// derivedSource is the provenance tag on fields computed from other fields
// rather than supplied directly by an endpoint
const derivedSource = "derived"

// Attempt pairs an endpoint descriptor with what its poll attempt yielded.
// Exactly one of Raw and Err is meaningful.
type Attempt struct {
	Descriptor common.EndpointDescriptor
	Raw        common.RawFieldMap
	Err        error
}

// Aggregate folds the per-endpoint raw maps into one snapshot. Attempts must
// be given in descending priority order: the first endpoint to supply a
// field wins and later endpoints never overwrite it, so a lower-fidelity
// source can not clobber a higher-fidelity one. Fields untouched by every
// endpoint are simply absent.
func Aggregate(attempts []Attempt) metrics.Snapshot {
	snapshot := metrics.Snapshot{
		Timestamp: time.Now().UTC(),
		Fields:    make(map[string]metrics.FieldValue),
	}

	for _, attempt := range attempts {
		if attempt.Err != nil {
			continue
		}
		for fieldKey, rawValue := range attempt.Raw {
			if _, taken := snapshot.Fields[fieldKey]; taken {
				continue
			}

			value := normalizer.Normalize(fieldKey, rawValue)
			value.Source = attempt.Descriptor.Name
			snapshot.Fields[fieldKey] = value
		}
	}

	deriveChannelTotals(&snapshot)

	return snapshot
}

// UnreachableFields returns the metric keys missing from the snapshot because
// every endpoint claiming them failed - as opposed to keys that are absent
// simply because nothing in the endpoint table supplies them.
func UnreachableFields(attempts []Attempt, snapshot metrics.Snapshot) []string {
	claimedByFailed := make(map[string]struct{})
	for _, attempt := range attempts {
		if attempt.Err == nil {
			continue
		}
		for _, fieldKey := range attempt.Descriptor.Fields {
			claimedByFailed[fieldKey] = struct{}{}
		}
	}

	keys := make([]string, 0, len(claimedByFailed))
	for fieldKey := range claimedByFailed {
		if _, populated := snapshot.Fields[fieldKey]; populated {
			continue
		}
		keys = append(keys, fieldKey)
	}
	sort.Strings(keys)

	return keys
}

// Totals are always the cross-version sums of the merged per-version counts.
// They are only derived when both parts came through, so a half-failed poll
// never reports a misleading total.
func deriveChannelTotals(snapshot *metrics.Snapshot) {
	deriveTotal(snapshot, metrics.KeyTotalDownstreamChannels, metrics.KeyDocsis30Downstream, metrics.KeyDocsis31Downstream)
	deriveTotal(snapshot, metrics.KeyTotalUpstreamChannels, metrics.KeyDocsis30Upstream, metrics.KeyDocsis31Upstream)
}

func deriveTotal(snapshot *metrics.Snapshot, totalKey string, part30Key string, part31Key string) {
	if _, taken := snapshot.Fields[totalKey]; taken {
		return
	}

	part30, ok30 := countValue(snapshot, part30Key)
	part31, ok31 := countValue(snapshot, part31Key)
	if !ok30 || !ok31 {
		return
	}

	field, _ := metrics.Lookup(totalKey)
	snapshot.Fields[totalKey] = metrics.FieldValue{
		Value:    strconv.FormatInt(part30+part31, 10),
		Kind:     field.Kind,
		Category: field.Category,
		Source:   derivedSource,
	}
}

func countValue(snapshot *metrics.Snapshot, key string) (int64, bool) {
	fieldValue, found := snapshot.Fields[key]
	if !found || fieldValue.Unavailable {
		return 0, false
	}

	value, err := strconv.ParseInt(fieldValue.Value, 10, 64)
	if err != nil {
		return 0, false
	}

	return value, true
}
