package metrics

// Category groups metric fields by what they describe on the device
type Category string

const (
	// CategoryStatus covers the live operational state of the modem
	CategoryStatus Category = "status"
	// CategoryConfiguration covers values loaded from the provisioning config
	CategoryConfiguration Category = "configuration"
	// CategoryServiceFlow covers the DOCSIS QoS parameter sets
	CategoryServiceFlow Category = "service-flow"
	// CategoryDiagnostic covers derived counters used for troubleshooting
	CategoryDiagnostic Category = "diagnostic"
)

// Kind describes how a field's raw value is coerced and displayed
type Kind string

const (
	// KindEnum is a categorical label (possibly mapped from a numeric code)
	KindEnum Kind = "enum"
	// KindInteger is a plain non-negative integer
	KindInteger Kind = "integer"
	// KindRate is a numeric rate or burst size, unit-tagged by the device
	KindRate Kind = "rate"
	// KindBoolean is a boolean-like value rendered as a per-field label pair
	KindBoolean Kind = "boolean"
)

// Stable metric keys, shared between the parsers, the aggregator and the API
const (
	KeyCableModemStatus                    = "cable_modem_status"
	KeyPrimaryDownstreamChannel            = "primary_downstream_channel"
	KeyDocsisVersion                       = "docsis_version"
	KeyCableModemRegistration              = "cable_modem_registration"
	KeyWANIPProvisionMode                  = "wan_ip_provision_mode"
	KeyFailSafeMode                        = "fail_safe_mode"
	KeyNoRFDetected                        = "no_rf_detected"
	KeyDocsis30Downstream                  = "docsis_3_0_downstream"
	KeyDocsis30Upstream                    = "docsis_3_0_upstream"
	KeyDocsis31Downstream                  = "docsis_3_1_downstream"
	KeyDocsis31Upstream                    = "docsis_3_1_upstream"
	KeyTotalDownstreamChannels             = "total_downstream_channels"
	KeyTotalUpstreamChannels               = "total_upstream_channels"
	KeyISPProvider                         = "isp_provider"
	KeyNetworkAccess                       = "network_access"
	KeyMaxCPEs                             = "max_cpes"
	KeyBaselinePrivacy                     = "baseline_privacy"
	KeyDocsisMode                          = "docsis_mode"
	KeyConfigFile                          = "config_file"
	KeyPrimaryDownstreamSFID               = "primary_downstream_sfid"
	KeyPrimaryDownstreamMaxTrafficRate     = "primary_downstream_max_traffic_rate"
	KeyPrimaryDownstreamMaxTrafficBurst    = "primary_downstream_max_traffic_burst"
	KeyPrimaryDownstreamMinTrafficRate     = "primary_downstream_min_traffic_rate"
	KeyPrimaryUpstreamSFID                 = "primary_upstream_sfid"
	KeyPrimaryUpstreamMaxTrafficRate       = "primary_upstream_max_traffic_rate"
	KeyPrimaryUpstreamMaxTrafficBurst      = "primary_upstream_max_traffic_burst"
	KeyPrimaryUpstreamMinTrafficRate       = "primary_upstream_min_traffic_rate"
	KeyPrimaryUpstreamMaxConcatenatedBurst = "primary_upstream_max_concatenated_burst"
	KeyPrimaryUpstreamSchedulingType       = "primary_upstream_scheduling_type"
)

// Field identifies one observable value exposed by the modem
type Field struct {
	Key      string
	Category Category
	Kind     Kind
}

var registry = []Field{
	{Key: KeyCableModemStatus, Category: CategoryStatus, Kind: KindEnum},
	{Key: KeyPrimaryDownstreamChannel, Category: CategoryStatus, Kind: KindEnum},
	{Key: KeyDocsisVersion, Category: CategoryConfiguration, Kind: KindEnum},
	{Key: KeyCableModemRegistration, Category: CategoryStatus, Kind: KindEnum},
	{Key: KeyWANIPProvisionMode, Category: CategoryConfiguration, Kind: KindEnum},
	{Key: KeyFailSafeMode, Category: CategoryStatus, Kind: KindBoolean},
	{Key: KeyNoRFDetected, Category: CategoryStatus, Kind: KindBoolean},
	{Key: KeyDocsis30Downstream, Category: CategoryDiagnostic, Kind: KindInteger},
	{Key: KeyDocsis30Upstream, Category: CategoryDiagnostic, Kind: KindInteger},
	{Key: KeyDocsis31Downstream, Category: CategoryDiagnostic, Kind: KindInteger},
	{Key: KeyDocsis31Upstream, Category: CategoryDiagnostic, Kind: KindInteger},
	{Key: KeyTotalDownstreamChannels, Category: CategoryDiagnostic, Kind: KindInteger},
	{Key: KeyTotalUpstreamChannels, Category: CategoryDiagnostic, Kind: KindInteger},
	{Key: KeyISPProvider, Category: CategoryConfiguration, Kind: KindEnum},
	{Key: KeyNetworkAccess, Category: CategoryStatus, Kind: KindBoolean},
	{Key: KeyMaxCPEs, Category: CategoryConfiguration, Kind: KindInteger},
	{Key: KeyBaselinePrivacy, Category: CategoryConfiguration, Kind: KindBoolean},
	{Key: KeyDocsisMode, Category: CategoryConfiguration, Kind: KindEnum},
	{Key: KeyConfigFile, Category: CategoryConfiguration, Kind: KindEnum},
	{Key: KeyPrimaryDownstreamSFID, Category: CategoryServiceFlow, Kind: KindInteger},
	{Key: KeyPrimaryDownstreamMaxTrafficRate, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryDownstreamMaxTrafficBurst, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryDownstreamMinTrafficRate, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryUpstreamSFID, Category: CategoryServiceFlow, Kind: KindInteger},
	{Key: KeyPrimaryUpstreamMaxTrafficRate, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryUpstreamMaxTrafficBurst, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryUpstreamMinTrafficRate, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryUpstreamMaxConcatenatedBurst, Category: CategoryServiceFlow, Kind: KindRate},
	{Key: KeyPrimaryUpstreamSchedulingType, Category: CategoryServiceFlow, Kind: KindEnum},
}

var registryByKey = buildIndex()

func buildIndex() map[string]Field {
	byKey := make(map[string]Field, len(registry))
	for _, field := range registry {
		byKey[field.Key] = field
	}
	return byKey
}

// Registry returns the full metric field catalogue in display order
func Registry() []Field {
	fields := make([]Field, len(registry))
	copy(fields, registry)
	return fields
}

// Lookup returns the field descriptor for the given metric key
func Lookup(key string) (Field, bool) {
	field, found := registryByKey[key]
	return field, found
}
