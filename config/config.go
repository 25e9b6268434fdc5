package config

import (
	"fmt"
	"os"

	"github.com/iulianpascalau/arris-modem-monitoring/common"
	"github.com/iulianpascalau/arris-modem-monitoring/metrics"
	"github.com/pelletier/go-toml/v2"
)

// EndpointConfig overrides one entry of the built-in endpoint table. The
// order of the [[Endpoints]] entries in the file is the priority order.
type EndpointConfig struct {
	Name      string   `toml:"Name"`
	Path      string   `toml:"Path"`
	Shape     string   `toml:"Shape"`
	PrimePath string   `toml:"PrimePath"`
	Fields    []string `toml:"Fields"`
}

// Config maps to the config.toml file for the modem monitor
type Config struct {
	Host                    string           `toml:"Host"`
	PollIntervalInSeconds   uint32           `toml:"PollIntervalInSeconds"`
	RequestTimeoutInSeconds uint32           `toml:"RequestTimeoutInSeconds"`
	APIListenAddress        string           `toml:"APIListenAddress"`
	Endpoints               []EndpointConfig `toml:"Endpoints"`
}

// LoadConfig parses a TOML file into the Config struct
func LoadConfig(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file '%s': %w", filepath, err)
	}

	var cfg Config
	err = toml.Unmarshal(data, &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to decode config file: %w", err)
	}

	return &cfg, nil
}

// Validate checks the config before the first poll is attempted
func (cfg *Config) Validate() error {
	if cfg.Host == "" {
		return errEmptyHost
	}
	if cfg.PollIntervalInSeconds == 0 {
		return errInvalidPollInterval
	}
	if cfg.RequestTimeoutInSeconds == 0 {
		return errInvalidRequestTimeout
	}

	seenNames := make(map[string]struct{}, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		if endpoint.Name == "" || endpoint.Path == "" {
			return fmt.Errorf("%w: name '%s', path '%s'", errInvalidEndpoint, endpoint.Name, endpoint.Path)
		}
		if _, found := seenNames[endpoint.Name]; found {
			return fmt.Errorf("%w: '%s'", errDuplicatedEndpoint, endpoint.Name)
		}
		seenNames[endpoint.Name] = struct{}{}

		if !isKnownShape(endpoint.Shape) {
			return fmt.Errorf("%w: '%s' on endpoint '%s'", errUnknownShape, endpoint.Shape, endpoint.Name)
		}
		for _, fieldKey := range endpoint.Fields {
			if _, found := metrics.Lookup(fieldKey); !found {
				return fmt.Errorf("%w: '%s' on endpoint '%s'", errUnknownMetricField, fieldKey, endpoint.Name)
			}
		}
	}

	return nil
}

func isKnownShape(shape string) bool {
	switch common.PayloadShape(shape) {
	case common.ShapeHTMLStatus, common.ShapeJSONObject, common.ShapeJSONArray:
		return true
	}
	return false
}

// EndpointTable resolves the endpoint strategy table: the [[Endpoints]]
// entries when provided, the built-in defaults otherwise. Firmware revisions
// differ in which endpoints they support, so the table is data-driven rather
// than hard-coded.
func (cfg *Config) EndpointTable() []common.EndpointDescriptor {
	if len(cfg.Endpoints) == 0 {
		return DefaultEndpoints()
	}

	table := make([]common.EndpointDescriptor, 0, len(cfg.Endpoints))
	for _, endpoint := range cfg.Endpoints {
		table = append(table, common.EndpointDescriptor{
			Name:      endpoint.Name,
			Path:      endpoint.Path,
			Shape:     common.PayloadShape(endpoint.Shape),
			PrimePath: endpoint.PrimePath,
			Fields:    append([]string(nil), endpoint.Fields...),
		})
	}

	return table
}
