package config

import (
	"fmt"
	"os"
	"strings"

	"shipping-tools/internal/domain"
	"shipping-tools/internal/services"

	"gopkg.in/yaml.v3"
)

// Rules groups the static tables used by lookups, the export filter and
// order resolution.
type Rules struct {
	Lookup domain.LookupRules   `yaml:"lookup"`
	Filter domain.FilterRules   `yaml:"filter"`
	Orders services.OrderLayout `yaml:"orders"`
}

func DefaultRules() Rules {
	return Rules{
		Lookup: services.DefaultLookupRules(),
		Filter: services.DefaultFilterRules(),
		Orders: services.DefaultOrderLayout(),
	}
}

// LoadRules overlays the YAML file at path on the default tables. Keys
// missing from the file keep their defaults; province aliases are merged.
// An empty path returns the defaults.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()
	if strings.TrimSpace(path) == "" {
		return rules, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("load rules: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("load rules: parse %s: %w", path, err)
	}

	// Aliases and the capital name are compared in normalized form.
	aliases := make(map[string]string, len(rules.Lookup.ProvinceAliases))
	for k, v := range rules.Lookup.ProvinceAliases {
		aliases[services.NormalizeText(k)] = services.NormalizeText(v)
	}
	rules.Lookup.ProvinceAliases = aliases
	rules.Lookup.CapitalName = services.NormalizeText(rules.Lookup.CapitalName)

	return rules, nil
}
