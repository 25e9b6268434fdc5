package engine

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/iulianpascalau/arris-modem-monitoring/aggregator"
	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/fetcher"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/iulianpascalau/arris-modem-monitoring/parser"
	"github.com/multiversx/mx-chain-core-go/core/check"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("engine")

const statusPagePath = "/"

// monitorEngine drives one full poll cycle against the modem: every endpoint
// of the strategy table is attempted in priority order and the results are
// folded into a single snapshot with a health verdict.
type monitorEngine struct {
	fetcher        Fetcher
	endpoints      []common.EndpointDescriptor
	requestTimeout time.Duration
}

// NewMonitorEngine creates a new engine instance. The endpoint table is
// validated up front so a bad shape tag fails at startup, not mid-poll.
func NewMonitorEngine(deviceFetcher Fetcher, endpoints []common.EndpointDescriptor, requestTimeout time.Duration) (*monitorEngine, error) {
	if check.IfNil(deviceFetcher) {
		return nil, errNilFetcher
	}
	if len(endpoints) == 0 {
		return nil, errEmptyTable
	}
	if requestTimeout <= 0 {
		return nil, errInvalidTimeout
	}
	for _, endpoint := range endpoints {
		_, err := parser.ForShape(endpoint.Shape)
		if err != nil {
			return nil, fmt.Errorf("endpoint '%s': %w", endpoint.Name, err)
		}
	}

	return &monitorEngine{
		fetcher:        deviceFetcher,
		endpoints:      endpoints,
		requestTimeout: requestTimeout,
	}, nil
}

// Poll runs one full cycle. Endpoints are attempted strictly sequentially:
// some firmware requires the request ordering, and concurrent requests have
// been observed to wedge these resource-constrained devices. No endpoint
// failure aborts the cycle and no error escapes; the caller reads the health
// verdict instead. Cancelling ctx makes the remaining attempts fail fast, so
// a hung device never stalls the caller past its own deadline.
func (e *monitorEngine) Poll(ctx context.Context) common.PollResult {
	attempts := make([]aggregator.Attempt, 0, len(e.endpoints))
	outcomes := make([]common.EndpointOutcome, 0, len(e.endpoints))

	for _, endpoint := range e.endpoints {
		attempt, outcome := e.attemptEndpoint(ctx, endpoint)
		attempts = append(attempts, attempt)
		outcomes = append(outcomes, outcome)
	}

	snapshot := aggregator.Aggregate(attempts)
	result := common.PollResult{
		Snapshot:          snapshot,
		Health:            healthVerdict(snapshot, outcomes),
		Outcomes:          outcomes,
		UnreachableFields: aggregator.UnreachableFields(attempts, snapshot),
	}

	log.Debug("poll cycle done",
		"health", result.Health,
		"fields", len(snapshot.Fields),
		"unreachable", len(result.UnreachableFields))

	return result
}

func (e *monitorEngine) attemptEndpoint(ctx context.Context, endpoint common.EndpointDescriptor) (aggregator.Attempt, common.EndpointOutcome) {
	attempt := aggregator.Attempt{Descriptor: endpoint}
	outcome := common.EndpointOutcome{Endpoint: endpoint.Name}

	requestCtx, cancel := context.WithTimeout(ctx, e.requestTimeout)
	defer cancel()

	body, err := e.fetcher.FetchPrimed(requestCtx, endpoint.PrimePath, endpoint.Path)
	if err != nil {
		log.Debug("endpoint fetch failed", "endpoint", endpoint.Name, "error", err)
		attempt.Err = err
		outcome.Kind = fetcher.ClassifyError(err)
		outcome.Message = err.Error()
		return attempt, outcome
	}

	shapeParser, _ := parser.ForShape(endpoint.Shape)
	raw, err := shapeParser.Parse(body)
	if err != nil {
		log.Debug("endpoint payload failed to parse", "endpoint", endpoint.Name, "error", err)
		attempt.Err = err
		outcome.Kind = common.OutcomeParseError
		outcome.Message = err.Error()
		return attempt, outcome
	}

	attempt.Raw = raw
	outcome.Kind = common.OutcomeSuccess
	if len(raw) == 0 {
		outcome.Kind = common.OutcomeEmpty
	}

	return attempt, outcome
}

// VerifyConnection fetches the status page once and checks the response looks
// like a cable modem diagnostic page. A content mismatch is only logged:
// ISP-branded firmware varies too much to make this a hard failure.
func (e *monitorEngine) VerifyConnection(ctx context.Context) error {
	requestCtx, cancel := context.WithTimeout(ctx, e.requestTimeout)
	defer cancel()

	body, err := e.fetcher.Fetch(requestCtx, statusPagePath)
	if err != nil {
		return err
	}

	page := strings.ToLower(string(body))
	if !strings.Contains(page, "cable modem") && !strings.Contains(page, "docsis") {
		log.Warn("status page does not contain the expected cable modem content")
	}

	return nil
}

func healthVerdict(snapshot metrics.Snapshot, outcomes []common.EndpointOutcome) common.Health {
	if len(snapshot.Fields) == 0 {
		return common.HealthUnavailable
	}
	for _, outcome := range outcomes {
		if outcome.Kind != common.OutcomeSuccess {
			return common.HealthDegraded
		}
	}

	return common.HealthHealthy
}

// IsInterfaceNil returns true if the value under the interface is nil
func (e *monitorEngine) IsInterfaceNil() bool {
	return e == nil
}
