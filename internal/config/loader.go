package config

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

var current Config

func Get() Config { return current }

// LoadDefaultsAndFiles parses the embedded defaults and overlays every YAML
// file on top of them in lexical order. Variants with the same name are
// merged field by field; new variants are appended.
func LoadDefaultsAndFiles(defaultsYAML []byte, files []string) (Config, error) {
	var base Config
	if len(defaultsYAML) > 0 {
		if err := yaml.Unmarshal(defaultsYAML, &base); err != nil {
			return Config{}, fmt.Errorf("defaults: %w", err)
		}
		if err := checkVariantDuplicates(base, "defaults"); err != nil {
			return Config{}, err
		}
	}
	merged := base
	for _, f := range sortedYAML(files) {
		b, err := os.ReadFile(f)
		if err != nil {
			return Config{}, err
		}
		var part Config
		if err := yaml.Unmarshal(b, &part); err != nil {
			return Config{}, fmt.Errorf("%s: %w", f, err)
		}
		if err := checkVariantDuplicates(part, f); err != nil {
			return Config{}, err
		}
		merged = mergeConfig(merged, part)
	}
	if err := ValidateNoDuplicates(merged); err != nil {
		return Config{}, err
	}
	if err := ValidateDefaultVariant(merged); err != nil {
		return Config{}, err
	}
	current = merged
	return merged, nil
}

func ValidateNoDuplicates(cfg Config) error {
	s := map[string]struct{}{}
	for _, v := range cfg.Variants {
		if _, ok := s[v.Name]; ok {
			return fmt.Errorf("duplicate variant name: %s", v.Name)
		}
		s[v.Name] = struct{}{}
	}
	return nil
}

func ValidateDefaultVariant(cfg Config) error {
	if cfg.DefaultVariant == "" {
		return nil
	}
	for _, v := range cfg.Variants {
		if v.Name == cfg.DefaultVariant {
			return nil
		}
	}
	return fmt.Errorf("default_variant %q does not name a configured variant", cfg.DefaultVariant)
}

func sortedYAML(files []string) []string {
	out := make([]string, 0, len(files))
	for _, f := range files {
		lf := strings.ToLower(f)
		if strings.HasSuffix(lf, ".yaml") || strings.HasSuffix(lf, ".yml") {
			out = append(out, f)
		}
	}
	sort.Strings(out)
	return out
}

func mergeConfig(base, overlay Config) Config {
	out := base
	if overlay.DefaultVariant != "" {
		out.DefaultVariant = overlay.DefaultVariant
	}
	out.Telemetry = mergeTelemetry(base.Telemetry, overlay.Telemetry)

	variants := make([]Variant, 0, len(base.Variants)+len(overlay.Variants))
	variants = append(variants, base.Variants...)
	idx := map[string]int{}
	for i, v := range variants {
		idx[v.Name] = i
	}
	for _, v := range overlay.Variants {
		if i, ok := idx[v.Name]; ok {
			variants[i] = mergeVariant(variants[i], v)
			continue
		}
		idx[v.Name] = len(variants)
		variants = append(variants, v)
	}
	out.Variants = variants
	return out
}

func mergeVariant(a, b Variant) Variant {
	out := a
	if b.Endpoint != "" {
		out.Endpoint = b.Endpoint
	}
	if b.QueryField != "" {
		out.QueryField = b.QueryField
	}
	if b.ItemsKey != "" {
		out.ItemsKey = b.ItemsKey
	}
	if b.ItemsRequired != nil {
		out.ItemsRequired = b.ItemsRequired
	}
	if b.EchoResponse != nil {
		out.EchoResponse = b.EchoResponse
	}
	if b.Timeout != 0 {
		out.Timeout = b.Timeout
	}
	return out
}

func mergeTelemetry(a, b Telemetry) Telemetry {
	out := a
	if b.ExporterEndpoint != "" {
		out.ExporterEndpoint = b.ExporterEndpoint
	}
	if b.ServiceName != "" {
		out.ServiceName = b.ServiceName
	}
	return out
}

func checkVariantDuplicates(part Config, file string) error {
	local := map[string]struct{}{}
	for _, v := range part.Variants {
		if _, ok := local[v.Name]; ok {
			return fmt.Errorf("duplicate variant '%s' found in %s", v.Name, file)
		}
		local[v.Name] = struct{}{}
	}
	return nil
}
