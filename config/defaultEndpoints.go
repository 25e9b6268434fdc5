package config

import (
	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
)

const (
	statusPagePath    = "/"
	networkStatusPath = "/php/ajaxGet_device_networkstatus_data.php"
	troubleshootPath  = "/php/connection_troubleshoot_data.php"
)

// DefaultEndpoints returns the built-in endpoint strategy table, richest
// source first. The network status endpoint on several firmware revisions
// only returns a fully populated array after the main status page has been
// visited in the same session, hence its PrimePath.
func DefaultEndpoints() []common.EndpointDescriptor {
	return []common.EndpointDescriptor{
		{
			Name:      "network-status",
			Path:      networkStatusPath,
			Shape:     common.ShapeJSONArray,
			PrimePath: statusPagePath,
			Fields: []string{
				metrics.KeyPrimaryDownstreamChannel,
				metrics.KeyISPProvider,
				metrics.KeyNetworkAccess,
				metrics.KeyMaxCPEs,
				metrics.KeyBaselinePrivacy,
				metrics.KeyDocsisVersion,
				metrics.KeyDocsisMode,
				metrics.KeyConfigFile,
				metrics.KeyPrimaryDownstreamSFID,
				metrics.KeyPrimaryDownstreamMaxTrafficRate,
				metrics.KeyPrimaryDownstreamMaxTrafficBurst,
				metrics.KeyPrimaryDownstreamMinTrafficRate,
				metrics.KeyPrimaryUpstreamSFID,
				metrics.KeyPrimaryUpstreamMaxTrafficRate,
				metrics.KeyPrimaryUpstreamMaxTrafficBurst,
				metrics.KeyPrimaryUpstreamMinTrafficRate,
				metrics.KeyPrimaryUpstreamMaxConcatenatedBurst,
				metrics.KeyPrimaryUpstreamSchedulingType,
				metrics.KeyDocsis30Downstream,
				metrics.KeyDocsis30Upstream,
				metrics.KeyDocsis31Downstream,
				metrics.KeyDocsis31Upstream,
				metrics.KeyTotalDownstreamChannels,
				metrics.KeyTotalUpstreamChannels,
			},
		},
		{
			Name:  "troubleshoot",
			Path:  troubleshootPath,
			Shape: common.ShapeJSONObject,
			Fields: []string{
				metrics.KeyCableModemStatus,
				metrics.KeyCableModemRegistration,
				metrics.KeyWANIPProvisionMode,
				metrics.KeyFailSafeMode,
				metrics.KeyNoRFDetected,
			},
		},
		{
			Name:  "status-page",
			Path:  statusPagePath,
			Shape: common.ShapeHTMLStatus,
			Fields: []string{
				metrics.KeyCableModemStatus,
				metrics.KeyPrimaryDownstreamChannel,
				metrics.KeyDocsis30Downstream,
				metrics.KeyDocsis30Upstream,
				metrics.KeyDocsis31Downstream,
				metrics.KeyDocsis31Upstream,
				metrics.KeyTotalDownstreamChannels,
				metrics.KeyTotalUpstreamChannels,
			},
		},
	}
}
