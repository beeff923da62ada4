package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultEpsilon        = 0.01
	DefaultTransitionLead = 0.5
	DefaultPatchPriority  = 1000
	DefaultFrameRate      = 30
	DefaultSampleRate     = 10.0
)

// Config carries the tool-wide tunables. Epsilon and the transition lead
// feed the keyframe editor, the patch priority floor feeds layer ingestion,
// and the rates drive the TUI and the trace sampler.
type Config struct {
	Epsilon        float64 `yaml:"epsilon"`
	TransitionLead float64 `yaml:"transition_lead"`
	PatchPriority  int     `yaml:"patch_priority"`
	FrameRate      int     `yaml:"frame_rate"`
	SampleRate     float64 `yaml:"sample_rate"`
}

func DefaultConfig() *Config {
	return &Config{
		Epsilon:        DefaultEpsilon,
		TransitionLead: DefaultTransitionLead,
		PatchPriority:  DefaultPatchPriority,
		FrameRate:      DefaultFrameRate,
		SampleRate:     DefaultSampleRate,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

func (c *Config) Validate() error {
	if c.Epsilon <= 0 {
		return fmt.Errorf("epsilon must be positive, got %f", c.Epsilon)
	}
	if c.TransitionLead <= 0 {
		return fmt.Errorf("transition_lead must be positive, got %f", c.TransitionLead)
	}
	if c.PatchPriority < 1 {
		return fmt.Errorf("patch_priority must be at least 1, got %d", c.PatchPriority)
	}
	if c.FrameRate < 1 {
		return fmt.Errorf("frame_rate must be at least 1, got %d", c.FrameRate)
	}
	if c.SampleRate <= 0 {
		return fmt.Errorf("sample_rate must be positive, got %f", c.SampleRate)
	}
	return nil
}
