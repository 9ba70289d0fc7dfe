// Package config loads and validates typetrial configuration files.
//
// Configuration is optional: every option is also settable
// programmatically on trial.Options. A file exists so repeated runs can
// pin trial count, tracing and seed without code changes.
package config

import (
	"bytes"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	schemafs "github.com/funvibe/typetrial/schema"
)

// Config represents the top-level trial configuration.
type Config struct {
	// TrialCount is the number of draws per trial. Zero keeps the engine
	// default of 100.
	TrialCount int `yaml:"trial_count,omitempty"`

	// VerboseTrace emits one diagnostic line per draw.
	VerboseTrace bool `yaml:"verbose_trace,omitempty"`

	// Seed fixes the generator seed for reproducible runs. Zero means a
	// fresh seed per stream.
	Seed int64 `yaml:"seed,omitempty"`

	// ResultsDB is an optional SQLite file path persisting trial
	// outcomes. Empty disables persistence.
	ResultsDB string `yaml:"results_db,omitempty"`
}

var (
	configSchema *jsonschema.Schema
	compileOnce  sync.Once
	compileErr   error
)

// compileSchema compiles the embedded schema once.
func compileSchema() error {
	compileOnce.Do(func() {
		data, err := schemafs.FS.ReadFile("config.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read config schema: %w", err)
			return
		}

		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("unmarshal config schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource("config.schema.json", doc); err != nil {
			compileErr = fmt.Errorf("add config schema resource: %w", err)
			return
		}

		configSchema, compileErr = compiler.Compile("config.schema.json")
		if compileErr != nil {
			compileErr = fmt.Errorf("compile config schema: %w", compileErr)
		}
	})
	return compileErr
}

// Parse decodes and schema-validates YAML configuration data.
func Parse(data []byte) (Config, error) {
	if err := compileSchema(); err != nil {
		return Config{}, err
	}

	var doc any
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return Config{}, fmt.Errorf("invalid YAML: %w", err)
	}
	if doc != nil {
		if err := configSchema.Validate(normalize(doc)); err != nil {
			return Config{}, fmt.Errorf("config validation failed: %w", err)
		}
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// Load reads and parses a configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// normalize rewrites yaml.v3 decoding artifacts into the shapes the
// JSON-schema validator expects (map[string]any keys, json-ish scalars).
func normalize(doc any) any {
	switch v := doc.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(v))
		for k, item := range v {
			out[fmt.Sprintf("%v", k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, item := range v {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case uint64:
		return float64(v)
	default:
		return v
	}
}
