package normalizer

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	logger "github.com/multiversx/mx-chain-logger-go"
)

var log = logger.GetOrCreate("normalizer")

// The operational status code reported by the firmware counts the modem's
// boot stages; anything at or above this value means the modem is online.
const minOperationalCode = 3

// Normalize converts one raw endpoint value into its canonical form for the
// given metric field. It never fails: unmapped codes become deterministic
// "Unknown ..." labels carrying the original code, and numeric garbage
// becomes an explicit unavailable marker rather than a fabricated zero.
// Feeding an already-canonical value back in leaves it unchanged.
func Normalize(fieldKey string, rawValue string) metrics.FieldValue {
	raw := strings.TrimSpace(rawValue)

	field, known := metrics.Lookup(fieldKey)
	if !known {
		log.Debug("normalizing a field outside the registry", "key", fieldKey)
		return metrics.FieldValue{Value: raw, Kind: metrics.KindEnum}
	}

	out := metrics.FieldValue{
		Kind:     field.Kind,
		Category: field.Category,
	}

	switch fieldKey {
	case metrics.KeyCableModemStatus:
		out.Value = operationalStatus(raw)
	case metrics.KeyCableModemRegistration:
		out.Value = codeLabel(raw, registrationStates, "Registration")
	case metrics.KeyWANIPProvisionMode:
		out.Value = codeLabel(raw, wanProvisionModes, "Provision Mode")
	case metrics.KeyISPProvider:
		out.Value = ispProvider(raw)
	default:
		switch field.Kind {
		case metrics.KindBoolean:
			out.Value = booleanLabel(fieldKey, raw)
		case metrics.KindInteger, metrics.KindRate:
			canonical, ok := canonicalInteger(raw)
			if !ok {
				out.Unavailable = true
				return out
			}
			out.Value = canonical
		default:
			out.Value = raw
		}
	}

	return out
}

// operationalStatus folds the firmware's numeric boot stage into the two
// values the UI shows. Non-numeric input is taken as already canonical.
func operationalStatus(raw string) string {
	code, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}
	if code >= minOperationalCode {
		return "Online"
	}

	return "Offline"
}

func ispProvider(raw string) string {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}

	name, found := ispProviders[id]
	if !found {
		return fmt.Sprintf("Unknown ISP ID=%d", id)
	}

	return name
}

func codeLabel(raw string, table map[int64]string, category string) string {
	code, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return raw
	}

	label, found := table[code]
	if !found {
		return fmt.Sprintf("Unknown %s (ID: %d)", category, code)
	}

	return label
}

func booleanLabel(fieldKey string, raw string) string {
	labels, found := booleanLabels[fieldKey]
	if !found {
		labels = [2]string{"Yes", "No"}
	}

	switch strings.ToLower(raw) {
	case "1", "yes", "true", "enabled", "on", "active", "allowed":
		return labels[0]
	case "0", "no", "false", "disabled", "off", "inactive", "denied":
		return labels[1]
	}

	return raw
}

func canonicalInteger(raw string) (string, bool) {
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || value < 0 {
		return "", false
	}

	return strconv.FormatInt(value, 10), true
}
