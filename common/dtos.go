package common

import (
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
)

// RawFieldMap holds the raw values extracted from a single endpoint payload,
// keyed by metric field key. It lives only for the duration of one attempt.
type RawFieldMap map[string]string

// PayloadShape tags the expected format of an endpoint response
type PayloadShape string

const (
	// ShapeHTMLStatus is the plain HTML status page with its small status table
	ShapeHTMLStatus PayloadShape = "html-status"
	// ShapeJSONObject is a JSON object with device-specific key names
	ShapeJSONObject PayloadShape = "json-object"
	// ShapeJSONArray is the positional JSON array some firmware revisions return
	ShapeJSONArray PayloadShape = "json-array"
)

// EndpointDescriptor describes one candidate source of metric data. The
// position inside the endpoint table is the priority: earlier entries are
// attempted first and win merge conflicts. Descriptors are immutable after
// startup.
type EndpointDescriptor struct {
	Name      string
	Path      string
	Shape     PayloadShape
	PrimePath string   // visited first in the same session when not empty
	Fields    []string // metric keys this endpoint can supply
}

// OutcomeKind classifies how a single endpoint attempt ended
type OutcomeKind string

const (
	OutcomeSuccess      OutcomeKind = "success"
	OutcomeEmpty        OutcomeKind = "empty"
	OutcomeParseError   OutcomeKind = "parse-error"
	OutcomeNetworkError OutcomeKind = "network-error"
	OutcomeTimeout      OutcomeKind = "timeout"
	OutcomeHTTPError    OutcomeKind = "http-error"
)

// EndpointOutcome records the result of one endpoint attempt inside a cycle
type EndpointOutcome struct {
	Endpoint string      `json:"endpoint"`
	Kind     OutcomeKind `json:"kind"`
	Message  string      `json:"message,omitempty"`
}

// Health is the overall verdict of one poll cycle
type Health string

const (
	// HealthHealthy means every attempted endpoint returned usable data
	HealthHealthy Health = "healthy"
	// HealthDegraded means at least one field was populated but one or more
	// endpoints failed or came back empty
	HealthDegraded Health = "degraded"
	// HealthUnavailable means zero fields were populated
	HealthUnavailable Health = "unavailable"
)

// PollResult wraps a snapshot with the per-endpoint outcomes of the cycle.
// UnreachableFields lists the metric keys missing from the snapshot because
// every endpoint claiming them failed, as opposed to keys no configured
// endpoint supplies at all.
type PollResult struct {
	Snapshot          metrics.Snapshot  `json:"snapshot"`
	Health            Health            `json:"health"`
	Outcomes          []EndpointOutcome `json:"outcomes"`
	UnreachableFields []string          `json:"unreachableFields,omitempty"`
}
