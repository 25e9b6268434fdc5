package metrics

import "time"

// FieldValue is one normalized metric reading together with its provenance.
// Unavailable marks a value that was supplied by an endpoint but rejected
// during normalization (e.g. garbage in a numeric field); it is distinct from
// the field being absent from the snapshot altogether.
type FieldValue struct {
	Value       string   `json:"value"`
	Kind        Kind     `json:"kind"`
	Category    Category `json:"category"`
	Source      string   `json:"source"`
	Unavailable bool     `json:"unavailable,omitempty"`
}

// Snapshot is one complete set of normalized readings produced by a single
// poll cycle. A key is present only if some endpoint actually supplied data
// for it. Snapshots are created by the aggregator and never mutated after
// being returned.
type Snapshot struct {
	Timestamp time.Time             `json:"timestamp"`
	Fields    map[string]FieldValue `json:"fields"`
}
