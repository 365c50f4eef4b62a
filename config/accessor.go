// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package config

// cacheCapacity bounds each per-type accessor cache.
const cacheCapacity = 2

var (
	modelCache     = newPathCache[*ModelConfig](cacheCapacity)
	inferenceCache = newPathCache[*InferenceConfig](cacheCapacity)
)

// ModelConfigFor returns the validated model config loaded from the JSON
// file at path. Repeated calls with an equal path return the identical
// cached object; a load or validation failure is never cached.
func ModelConfigFor(path string) (*ModelConfig, error) {
	if cfg, ok := modelCache.get(path); ok {
		return cfg, nil
	}

	cfg, err := NewModelConfig(map[string]any{"json_config_path": path})
	if err != nil {
		return nil, err
	}

	modelCache.put(path, cfg)
	return cfg, nil
}

// InferenceConfigFor returns the validated inference config loaded from the
// JSON file at path. An empty path resolves [DefaultInferencePath],
// re-evaluated per call. Caching behaves as in [ModelConfigFor].
func InferenceConfigFor(path string) (*InferenceConfig, error) {
	if path == "" {
		path = DefaultInferencePath()
	}

	if cfg, ok := inferenceCache.get(path); ok {
		return cfg, nil
	}

	cfg, err := NewInferenceConfig(map[string]any{"json_config_path": path})
	if err != nil {
		return nil, err
	}

	inferenceCache.put(path, cfg)
	return cfg, nil
}

// ResetCaches discards every cached config object. Collaborators that change
// the config directory mid-process call this to force a reload.
func ResetCaches() {
	modelCache.reset()
	inferenceCache.reset()
}
