// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/animakit/animaconf/settings"
)

// resolve runs the layered resolver for one config type: init arguments over
// JSON file(s). The json_config_path init argument configures the JSON source
// and never reaches the data fields; when absent, defaultPaths is used.
func resolve(class string, init map[string]any, defaultPaths []string) (map[string]any, error) {
	initSrc := settings.NewInitSource(init)

	paths := defaultPaths
	if v, ok := initSrc.Pop("json_config_path"); ok {
		p, err := settings.PathsFromValue(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", class, err)
		}
		paths = p
	}

	return settings.NewResolver(class, initSrc, settings.NewJSONSource(paths...)).Resolve()
}

// decode fills dst (pre-seeded with the config type's defaults) from the
// resolved mapping. Keys map to struct fields via their json tags; weak
// typing covers JSON's number representation (e.g. float64 into int fields).
func decode(values map[string]any, dst any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           dst,
		TagName:          "json",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("creating config decoder: %w", err)
	}
	if err := dec.Decode(values); err != nil {
		return fmt.Errorf("decoding config values: %w", err)
	}
	return nil
}

// requireFields checks that every required key is present in the resolved
// mapping and reports all missing ones at once. A key holding an explicit
// JSON null counts as missing: null never satisfies a required field.
func requireFields(class string, values map[string]any, required ...string) error {
	var missing []string
	for _, field := range required {
		if v, ok := values[field]; !ok || v == nil {
			missing = append(missing, field)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	sort.Strings(missing)
	return fmt.Errorf("%s: %w: %s", class, ErrMissingRequiredField, strings.Join(missing, ", "))
}
