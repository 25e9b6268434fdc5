package parser

import (
	"strings"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/tidwall/gjson"
)

// Key names as the firmware emits them on the connection troubleshoot endpoint
var troubleshootKeys = map[string]string{
	"js_cm_oper_value":    metrics.KeyCableModemStatus,
	"js_cm_reg_value":     metrics.KeyCableModemRegistration,
	"js_wan_ip_prov_mode": metrics.KeyWANIPProvisionMode,
	"js_fail_safe_mode":   metrics.KeyFailSafeMode,
	"js_NoRF_Detected":    metrics.KeyNoRFDetected,
}

type troubleshootParser struct{}

// Parse extracts the modem state flags from the troubleshoot JSON object.
// Unknown keys are ignored and missing keys leave the field absent.
func (p *troubleshootParser) Parse(body []byte) (common.RawFieldMap, error) {
	if !gjson.ValidBytes(body) {
		return nil, errInvalidJSON
	}

	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return nil, errNotAnObject
	}

	raw := make(common.RawFieldMap)
	for deviceKey, fieldKey := range troubleshootKeys {
		value := root.Get(deviceKey)
		if !value.Exists() || value.Type == gjson.Null {
			continue
		}

		trimmed := strings.TrimSpace(value.String())
		if trimmed == "" {
			continue
		}
		raw[fieldKey] = trimmed
	}

	return raw, nil
}

// IsInterfaceNil returns true if the value under the interface is nil
func (p *troubleshootParser) IsInterfaceNil() bool {
	return p == nil
}
