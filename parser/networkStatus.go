package parser

import (
	"strings"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/tidwall/gjson"
)

// The firmware returns the network status data as a positional array of at
// least 30 elements. The index layout below matches the device UI's own
// javascript; anything outside the mapped indexes is ignored.
const minNetworkStatusElements = 30

type indexMapping struct {
	index int
	key   string
}

var networkStatusIndexes = []indexMapping{
	{index: 2, key: metrics.KeyPrimaryDownstreamChannel},
	{index: 4, key: metrics.KeyISPProvider},
	{index: 5, key: metrics.KeyNetworkAccess},
	{index: 6, key: metrics.KeyMaxCPEs},
	{index: 7, key: metrics.KeyBaselinePrivacy},
	{index: 8, key: metrics.KeyDocsisVersion},
	{index: 8, key: metrics.KeyDocsisMode},
	{index: 9, key: metrics.KeyConfigFile},
	{index: 10, key: metrics.KeyPrimaryDownstreamSFID},
	{index: 11, key: metrics.KeyPrimaryDownstreamMaxTrafficRate},
	{index: 12, key: metrics.KeyPrimaryDownstreamMaxTrafficBurst},
	{index: 13, key: metrics.KeyPrimaryDownstreamMinTrafficRate},
	{index: 14, key: metrics.KeyPrimaryUpstreamSFID},
	{index: 15, key: metrics.KeyPrimaryUpstreamMaxTrafficRate},
	{index: 16, key: metrics.KeyPrimaryUpstreamMaxTrafficBurst},
	{index: 17, key: metrics.KeyPrimaryUpstreamMinTrafficRate},
	{index: 18, key: metrics.KeyPrimaryUpstreamMaxConcatenatedBurst},
	{index: 19, key: metrics.KeyPrimaryUpstreamSchedulingType},
	{index: 25, key: metrics.KeyDocsis30Upstream},
	{index: 26, key: metrics.KeyDocsis30Downstream},
	{index: 27, key: metrics.KeyDocsis31Downstream},
	{index: 28, key: metrics.KeyDocsis31Upstream},
}

type networkStatusParser struct{}

// Parse extracts the configuration, service flow and channel count values
// from the positional network status array. A null or empty element leaves
// its field absent; a body that is not an array of the expected minimum size
// is a parse error.
func (p *networkStatusParser) Parse(body []byte) (common.RawFieldMap, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, errNotAnArray
	}

	elements := root.Array()
	if len(elements) < minNetworkStatusElements {
		return nil, errTruncatedArray(len(elements))
	}

	raw := make(common.RawFieldMap)
	for _, mapping := range networkStatusIndexes {
		element := elements[mapping.index]
		if element.Type == gjson.Null {
			continue
		}

		value := strings.TrimSpace(element.String())
		if value == "" {
			continue
		}
		raw[mapping.key] = value
	}

	return raw, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *networkStatusParser) IsInterfaceNil() bool {
	return p == nil
}
