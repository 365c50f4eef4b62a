// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package settings

import (
	"encoding/json"
	"fmt"
	"maps"
	"os"
	"strings"

	"golang.org/x/text/encoding/ianaindex"
)

// JSONSource loads configuration from an ordered list of JSON files. Later
// paths override earlier ones on top-level key collision. The source holds
// the path list; the text encoding comes from the [SourceContext].
type JSONSource struct {
	paths []string
}

// NewJSONSource creates a JSONSource for the given paths, in merge order.
// Zero paths is valid and loads an empty mapping.
func NewJSONSource(paths ...string) *JSONSource {
	return &JSONSource{paths: paths}
}

// Name implements [Source].
func (s *JSONSource) Name() string { return "json" }

// Paths returns the configured path list in merge order.
func (s *JSONSource) Paths() []string {
	out := make([]string, len(s.paths))
	copy(out, s.paths)
	return out
}

// String describes the source for diagnostics.
func (s *JSONSource) String() string {
	return fmt.Sprintf("JSONSource(paths=[%s])", strings.Join(s.paths, ", "))
}

// Load implements [Source]. Every path must exist and be a regular file; a
// failure at any position aborts the whole load rather than silently keeping
// the keys merged so far.
func (s *JSONSource) Load(sc SourceContext) (map[string]any, error) {
	merged := make(map[string]any)
	for i, path := range s.paths {
		info, err := os.Stat(path)
		if err != nil || !info.Mode().IsRegular() {
			return nil, fmt.Errorf("%s: config #%d at %s: %w", sc.Class, i+1, path, ErrConfigFileNotFound)
		}

		log.Debug().Str("class", sc.Class).Int("index", i+1).Str("path", path).
			Msg("loading json config")

		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("%s: reading config #%d at %s: %w", sc.Class, i+1, path, err)
		}
		text, err := decodeText(raw, sc.Encoding)
		if err != nil {
			return nil, fmt.Errorf("%s: decoding config #%d at %s: %w", sc.Class, i+1, path, err)
		}

		var doc map[string]any
		if err := json.Unmarshal(text, &doc); err != nil {
			return nil, fmt.Errorf("%s: parsing config #%d at %s: %w", sc.Class, i+1, path, err)
		}

		// shallow merge: later paths override earlier ones per top-level key
		maps.Copy(merged, doc)

		log.Debug().Str("class", sc.Class).Int("index", i+1).
			Interface("state", merged).Msg("json config state")
	}

	log.Debug().Str("class", sc.Class).Interface("config", merged).
		Msg("loaded json config")
	return merged, nil
}

// decodeText converts raw file content to UTF-8 according to the given IANA
// charset name. An empty name or any spelling of UTF-8 passes raw through.
func decodeText(raw []byte, encoding string) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case "", "utf-8", "utf8":
		return raw, nil
	}

	enc, err := ianaindex.IANA.Encoding(encoding)
	if err != nil || enc == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEncoding, encoding)
	}
	return enc.NewDecoder().Bytes(raw)
}

// PathsFromValue coerces a json_config_path init argument into a path list.
// Accepted shapes: nil (no paths), string, []string, and []any of strings.
func PathsFromValue(v any) ([]string, error) {
	switch val := v.(type) {
	case nil:
		return nil, nil
	case string:
		return []string{val}, nil
	case []string:
		return val, nil
	case []any:
		out := make([]string, 0, len(val))
		for _, item := range val {
			s, ok := item.(string)
			if !ok {
				return nil, fmt.Errorf("%w: list element %T", ErrInvalidConfigPath, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: %T", ErrInvalidConfigPath, v)
	}
}
