package main

import (
	"os"

	"github.com/juju/errors"
	"gopkg.in/yaml.v2"
)

// schemaConfig declares, without reflection, the shape of the dynamic
// map[string]any value a template is rendered against: which keys are
// plain string attributes, which are booleans gating an if block, and
// which are list-of-object keys driving a range block (recursively
// described the same way).
type schemaConfig struct {
	Attributes []string                `yaml:"attributes"`
	Bools      []string                `yaml:"bools"`
	Lists      map[string]schemaConfig `yaml:"lists"`
}

// config is the forma.yaml sidecar: where includes live, which extension
// include resolution falls back to, which builtin functions are enabled,
// and the schema of the JSON value piped in on stdin.
type config struct {
	IncludeDir       string       `yaml:"includeDir"`
	DefaultExtension string       `yaml:"defaultExtension"`
	Functions        []string     `yaml:"functions"`
	Schema           schemaConfig `yaml:"schema"`
}

func loadConfig(path string) (config, error) {
	var cfg config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Annotatef(err, "reading config %q", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Annotatef(err, "parsing config %q", path)
	}
	if cfg.DefaultExtension == "" {
		cfg.DefaultExtension = ".txt"
	}
	return cfg, nil
}
