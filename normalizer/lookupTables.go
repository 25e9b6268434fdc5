package normalizer

import (
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
)

// Customer ids observed across ISP-branded firmware builds. The same brand
// can appear under several ids, one per provisioning profile.
var ispProviders = map[int64]string{
	6:   "Virgin Media (VTR)",
	8:   "Virgin Media",
	20:  "Ziggo",
	41:  "Virgin Media Ireland",
	44:  "Telekom Austria",
	50:  "Yallo",
	51:  "Sunrise",
	118: "Virgin Media",
}

// DOCSIS registration state codes as reported by the troubleshoot endpoint
var registrationStates = map[int64]string{
	0: "Unregistered",
	1: "Other",
	2: "Registered",
	3: "Not Registered",
	4: "Registration Complete",
	5: "Access Denied",
	6: "Operational",
}

var wanProvisionModes = map[int64]string{
	0: "DHCP",
	1: "Static",
	2: "PPPoE",
}

// booleanLabels maps boolean-kind fields onto their canonical label pair,
// truthy label first
var booleanLabels = map[string][2]string{
	metrics.KeyFailSafeMode:    {"Active", "Inactive"},
	metrics.KeyNoRFDetected:    {"Yes", "No"},
	metrics.KeyBaselinePrivacy: {"Enabled", "Disabled"},
	metrics.KeyNetworkAccess:   {"Allowed", "Denied"},
}
