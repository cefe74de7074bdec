// Package config loads wordgrid settings from YAML.
//
// A config file looks like:
//
//	dictionary: words.txt
//	database: wordgrid.db
//	optimizer:
//	  population: 100
//	  mutation: 5
//	  cull_threshold: -1
//	  cull_delay: 1000
//	  generations: 50
//	  rows: 5
//	  cols: 5
//	  alphabet: abcdefghijklmnopqrstuvwxyz
//	  seed: 0
//
// Missing fields keep their defaults. The merged result is checked against
// the CUE schema embedded in schema.cue.
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// Config holds every setting a wordgrid command may use.
type Config struct {
	Dictionary string    `yaml:"dictionary" json:"dictionary"`
	Database   string    `yaml:"database" json:"database"`
	Optimizer  Optimizer `yaml:"optimizer" json:"optimizer"`
}

// Optimizer holds the genetic search parameters.
type Optimizer struct {
	// Population is the number of boards per generation. Must be even.
	Population int `yaml:"population" json:"population"`

	// Mutation is the per-letter mutation probability in percent.
	Mutation int `yaml:"mutation" json:"mutation"`

	// CullThreshold excludes boards scoring below it from selection once
	// CullDelay generations have passed. -1 disables culling.
	CullThreshold int `yaml:"cull_threshold" json:"cull_threshold"`
	CullDelay     int `yaml:"cull_delay" json:"cull_delay"`

	Generations int    `yaml:"generations" json:"generations"`
	Rows        int    `yaml:"rows" json:"rows"`
	Cols        int    `yaml:"cols" json:"cols"`
	Alphabet    string `yaml:"alphabet" json:"alphabet"`

	// Seed fixes the random source; 0 means derive one from the clock.
	Seed int64 `yaml:"seed" json:"seed"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Dictionary: "words.txt",
		Database:   "wordgrid.db",
		Optimizer: Optimizer{
			Population:    100,
			Mutation:      5,
			CullThreshold: -1,
			CullDelay:     1000,
			Generations:   50,
			Rows:          5,
			Cols:          5,
			Alphabet:      "abcdefghijklmnopqrstuvwxyz",
		},
	}
}

// ValidationError reports a configuration that violates the schema.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid config: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("invalid config: %s", e.Message)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// Load reads and validates the config file at path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the config against the embedded CUE schema.
func (c *Config) Validate() error {
	ctx := cuecontext.New()
	schema := ctx.CompileString(schemaCUE, cue.Filename("schema.cue"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.Encode(c)
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	def := schema.LookupPath(cue.ParsePath("#Config"))
	if err := def.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return &ValidationError{Message: err.Error()}
	}

	// Parents are paired off, so the population must split evenly.
	if c.Optimizer.Population%2 != 0 {
		return &ValidationError{
			Field:   "optimizer.population",
			Message: fmt.Sprintf("must be even, got %d", c.Optimizer.Population),
		}
	}
	return nil
}

// Encode renders the config as YAML.
func (c *Config) Encode() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(c); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode config: %w", err)
	}
	return buf.Bytes(), nil
}
