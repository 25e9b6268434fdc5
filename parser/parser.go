package parser

import (
	"fmt"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
)

// Parser extracts a raw field map from one payload shape. Implementations
// must tolerate partial payloads: a missing field is simply absent from the
// returned map, only a payload that does not match the shape at all is an
// error.
type Parser interface {
	Parse(body []byte) (common.RawFieldMap, error)
	IsInterfaceNil() bool
}

// ForShape returns the parser handling the given payload shape
func ForShape(shape common.PayloadShape) (Parser, error) {
	switch shape {
	case common.ShapeHTMLStatus:
		return &statusPageParser{}, nil
	case common.ShapeJSONObject:
		return &troubleshootParser{}, nil
	case common.ShapeJSONArray:
		return &networkStatusParser{}, nil
	}

	return nil, fmt.Errorf("%w: '%s'", errUnknownShape, shape)
}
