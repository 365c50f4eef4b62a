// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package config

// ModelConfig describes one model checkpoint and the inference
// hyperparameters to run it with. Instances are immutable after
// construction.
type ModelConfig struct {
	// Name is the config name; informational only.
	Name string `json:"name"`

	// Base is the name of the base model this checkpoint derives from.
	Base string `json:"base"`

	// Path is the path to the model checkpoint, relative to the working
	// directory.
	Path string `json:"path"`

	// MotionModule is the path to the motion module checkpoint, relative to
	// the working directory.
	MotionModule string `json:"motion_module"`

	// Seed lists the seeds for the random number generators.
	Seed []int64 `json:"seed"`

	// Steps is the number of inference steps to run.
	Steps int `json:"steps"`

	// GuidanceScale is the CFG scale to use.
	GuidanceScale float64 `json:"guidance_scale"`

	// Prompt lists the prompts to use.
	Prompt []string `json:"prompt"`

	// NPrompt lists the anti-prompts to use.
	NPrompt []string `json:"n_prompt"`
}

// modelConfigDefaults returns a ModelConfig pre-seeded with the declared
// field defaults; merged values are decoded on top of it.
func modelConfigDefaults() *ModelConfig {
	return &ModelConfig{
		Seed:          []int64{},
		Steps:         25,
		GuidanceScale: 7.5,
		Prompt:        []string{},
		NPrompt:       []string{},
	}
}

// NewModelConfig constructs a validated ModelConfig from init arguments.
// The reserved init key "json_config_path" (string or list of strings) names
// the JSON file(s) to merge beneath the remaining init arguments; there is no
// default path for model configs.
func NewModelConfig(init map[string]any) (*ModelConfig, error) {
	values, err := resolve("ModelConfig", init, nil)
	if err != nil {
		return nil, err
	}

	if err := requireFields("ModelConfig", values, "name", "base", "path", "motion_module"); err != nil {
		return nil, err
	}

	cfg := modelConfigDefaults()
	if err := decode(values, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
