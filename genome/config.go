package genome

import (
	"fmt"
	"math/rand"

	"gopkg.in/ini.v1"
)

// Config is the ambient, file-driven counterpart to building a
// MutationPolicy and Topology dimensions by hand. It mirrors the
// teacher's [NEAT]/[DefaultGenome] section-mapping idiom: one struct
// per INI section, loaded with ini.LoadSources and validated by hand
// afterward because section.MapTo alone does not reject out-of-range
// values.
type Config struct {
	Topology TopologyConfig
	Mutation MutationConfig
}

// TopologyConfig holds the fixed dimensions of a Topology.
type TopologyConfig struct {
	NumInputs  int `ini:"num_inputs"`
	NumOutputs int `ini:"num_outputs"`
}

// MutationConfig mirrors MutationPolicy's fields for INI loading.
type MutationConfig struct {
	SelfRate        int     `ini:"self_rate"`
	SplitConnection float32 `ini:"split_connection"`
	AddConnection   float32 `ini:"add_connection"`
	Remove          float32 `ini:"remove"`
	MutateWeight    float32 `ini:"mutate_weight"`
	MutateExponent  float32 `ini:"mutate_exponent"`
}

// LoadConfig reads an INI file with a [Topology] and a [Mutation]
// section into a Config, validating bounds the way the teacher's
// neat.LoadConfig validates GenomeConfig/ReproductionConfig.
func LoadConfig(filePath string) (*Config, error) {
	cfg, err := ini.LoadSources(ini.LoadOptions{
		IgnoreInlineComment:         true,
		UnescapeValueCommentSymbols: true,
	}, filePath)
	if err != nil {
		return nil, fmt.Errorf("genome: failed to load config file %q: %w", filePath, err)
	}

	config := &Config{}
	if err := cfg.Section("Topology").MapTo(&config.Topology); err != nil {
		return nil, fmt.Errorf("genome: failed to map [Topology] section: %w", err)
	}
	if err := cfg.Section("Mutation").MapTo(&config.Mutation); err != nil {
		return nil, fmt.Errorf("genome: failed to map [Mutation] section: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *Config) validate() error {
	if c.Topology.NumInputs <= 0 || c.Topology.NumOutputs <= 0 {
		return fmt.Errorf("genome: config error: num_inputs and num_outputs must be positive, got %d/%d",
			c.Topology.NumInputs, c.Topology.NumOutputs)
	}
	if c.Mutation.SelfRate < 0 || c.Mutation.SelfRate > 100 {
		return fmt.Errorf("genome: config error: self_rate must be in [0,100], got %d", c.Mutation.SelfRate)
	}
	for name, w := range map[string]float32{
		"split_connection": c.Mutation.SplitConnection,
		"add_connection":   c.Mutation.AddConnection,
		"remove":           c.Mutation.Remove,
		"mutate_weight":    c.Mutation.MutateWeight,
		"mutate_exponent":  c.Mutation.MutateExponent,
	} {
		if w < 0 {
			return fmt.Errorf("genome: config error: %s must be non-negative, got %v", name, w)
		}
	}
	return nil
}

// Policy builds a renormalized MutationPolicy from the loaded config.
func (c *Config) Policy() MutationPolicy {
	return NewMutationPolicy(
		uint8(c.Mutation.SelfRate),
		c.Mutation.SplitConnection,
		c.Mutation.AddConnection,
		c.Mutation.Remove,
		c.Mutation.MutateWeight,
		c.Mutation.MutateExponent,
	)
}

// NewTopology builds a (partially connected) Topology sized and
// policy-governed by the loaded config.
func (c *Config) NewTopology(rng *rand.Rand) (*Topology, error) {
	return New(c.Topology.NumInputs, c.Topology.NumOutputs, c.Policy(), rng)
}
