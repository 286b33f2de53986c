// Package config loads and validates the tool configuration.
package config

import (
	_ "embed"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shlint/shlint/core/rules"
	"github.com/shlint/shlint/core/scanner"
	"sigs.k8s.io/yaml"
)

//go:embed default/shlint.yaml
var defaultConfigData []byte

// ConfigurationName is the file the configuration is read from.
const ConfigurationName = "shlint.yaml"

type Configuration struct {
	// Format selects the renderer: "text" or "json".
	Format string `json:"format" validate:"oneof=text json"`
	// Color controls colorized text output: "always", "auto" or "never".
	Color string `json:"color" validate:"oneof=always auto never"`
	// Jobs is the number of files scanned concurrently.
	Jobs int `json:"jobs" validate:"gte=1,lte=64"`

	// DisabledRules lists rule ids excluded from scans.
	DisabledRules []string `json:"disabled_rules" validate:"unique"`
	// SeverityOverrides remaps a rule id to "warning" or "error".
	SeverityOverrides map[string]string `json:"severity_overrides" validate:"dive,oneof=warning error"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

// Rules resolves the configuration against the builtin catalog:
// disabled rules are dropped and severity overrides applied. Unknown
// rule ids are errors so typos don't silently disable nothing.
func (c *Configuration) Rules() ([]scanner.Rule, error) {
	disabled := make(map[string]bool, len(c.DisabledRules))
	for _, id := range c.DisabledRules {
		if _, ok := rules.AllRules[id]; !ok {
			return nil, fmt.Errorf("disabled_rules: unknown rule: %q", id)
		}
		disabled[id] = true
	}
	for id := range c.SeverityOverrides {
		if _, ok := rules.AllRules[id]; !ok {
			return nil, fmt.Errorf("severity_overrides: unknown rule: %q", id)
		}
	}

	var out []scanner.Rule
	for _, rule := range rules.Builtin() {
		if disabled[rule.ID] {
			continue
		}
		if text, ok := c.SeverityOverrides[rule.ID]; ok {
			severity, err := scanner.ParseSeverity(text)
			if err != nil {
				return nil, fmt.Errorf("severity_overrides[%s]: %v", rule.ID, err)
			}
			rule.Severity = severity
		}
		out = append(out, rule)
	}

	return out, nil
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the builtin configuration.
func Default() *Configuration {
	return defaultConfig()
}
