package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Variant describes one search backend: where queries go, how the request
// body names the query and under which key each response page lists items.
type Variant struct {
	Name          string   `mapstructure:"name" yaml:"name" json:"name"`
	Endpoint      string   `mapstructure:"endpoint" yaml:"endpoint" json:"endpoint"`
	QueryField    string   `mapstructure:"query_field" yaml:"query_field" json:"query_field"`
	ItemsKey      string   `mapstructure:"items_key" yaml:"items_key" json:"items_key"`
	ItemsRequired *bool    `mapstructure:"items_required" yaml:"items_required" json:"items_required,omitempty"`
	EchoResponse  *bool    `mapstructure:"echo_response" yaml:"echo_response" json:"echo_response,omitempty"`
	Timeout       Duration `mapstructure:"timeout" yaml:"timeout" json:"timeout,omitempty"`
}

func (v Variant) RequiresItems() bool { return v.ItemsRequired != nil && *v.ItemsRequired }

func (v Variant) EchoesResponse() bool { return v.EchoResponse != nil && *v.EchoResponse }

type Telemetry struct {
	ExporterEndpoint string `mapstructure:"exporter_endpoint" yaml:"exporter_endpoint" json:"exporter_endpoint,omitempty"`
	ServiceName      string `mapstructure:"service_name" yaml:"service_name" json:"service_name,omitempty"`
}

type Config struct {
	DefaultVariant string    `mapstructure:"default_variant" yaml:"default_variant" json:"default_variant,omitempty"`
	Variants       []Variant `mapstructure:"variants" yaml:"variants" json:"variants,omitempty"`
	Telemetry      Telemetry `mapstructure:"telemetry" yaml:"telemetry" json:"telemetry"`
}

// Variant returns the variant called name, or the default one when name is empty.
func (c Config) Variant(name string) (Variant, error) {
	if name == "" {
		name = c.DefaultVariant
	}
	if name == "" && len(c.Variants) > 0 {
		return c.Variants[0], nil
	}
	for _, v := range c.Variants {
		if v.Name == name {
			return v, nil
		}
	}
	return Variant{}, fmt.Errorf("unknown variant: %s", name)
}

// Duration accepts either a Go duration string ("5s") or an integer number of seconds.
type Duration time.Duration

func (d Duration) Std() time.Duration { return time.Duration(d) }

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("invalid duration node kind: %d", value.Kind)
	}
	if value.Value == "" {
		*d = 0
		return nil
	}
	var secs int64
	if err := value.Decode(&secs); err == nil {
		*d = Duration(time.Duration(secs) * time.Second)
		return nil
	}
	parsed, err := time.ParseDuration(value.Value)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", value.Value, err)
	}
	*d = Duration(parsed)
	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", time.Duration(d).String())), nil
}
