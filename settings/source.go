// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 The animaconf Authors

package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"strings"
)

// SourceContext carries per-resolution context handed to every source.
type SourceContext struct {
	// Class is the name of the settings class being resolved (e.g.
	// "ModelConfig"). Used in diagnostics and error messages.
	Class string

	// Encoding is the text encoding of file-based sources, as an IANA
	// charset name. Empty means UTF-8.
	Encoding string
}

// Source is a named strategy producing a partial field mapping for a config
// object. Sources are stateless with respect to resolution: Load may be
// called any number of times.
type Source interface {
	// Name identifies the source in diagnostics ("init", "env", ...).
	Name() string

	// Load returns the mapping of field names to raw values contributed by
	// this source. A source with nothing to contribute returns an empty map.
	Load(sc SourceContext) (map[string]any, error)
}

// InitSource wraps the direct initialization arguments supplied by the
// caller. It sits at the top of the default precedence chain.
type InitSource struct {
	args map[string]any
}

// NewInitSource copies args into a new InitSource. A nil map is allowed and
// behaves as empty.
func NewInitSource(args map[string]any) *InitSource {
	s := &InitSource{args: make(map[string]any, len(args))}
	maps.Copy(s.args, args)
	return s
}

// Name implements [Source].
func (s *InitSource) Name() string { return "init" }

// Load implements [Source]. The returned map is a copy; mutating it does not
// affect the source.
func (s *InitSource) Load(SourceContext) (map[string]any, error) {
	out := make(map[string]any, len(s.args))
	maps.Copy(out, s.args)
	return out, nil
}

// Pop removes key from the init arguments and returns its value. Used by the
// resolver composition to pull loader-directed arguments (such as
// json_config_path) out of the data fields before resolution.
func (s *InitSource) Pop(key string) (any, bool) {
	v, ok := s.args[key]
	if ok {
		delete(s.args, key)
	}
	return v, ok
}

// EnvSource reads configuration from environment variables. For each declared
// field name it consults <prefix><FIELD_NAME_UPPERCASED>; only variables that
// are actually set contribute a key, so an unset variable never shadows a
// lower-priority source while a set-but-empty one does.
type EnvSource struct {
	prefix string
	fields []string
}

// NewEnvSource creates an EnvSource for the given variable prefix (e.g.
// "ANIMACONF_MODEL_") and field names.
func NewEnvSource(prefix string, fields ...string) *EnvSource {
	return &EnvSource{prefix: prefix, fields: fields}
}

// Name implements [Source].
func (s *EnvSource) Name() string { return "env" }

// Load implements [Source]. All values are contributed as strings; type
// coercion happens when the merged mapping is decoded into the config struct.
func (s *EnvSource) Load(SourceContext) (map[string]any, error) {
	out := make(map[string]any)
	for _, field := range s.fields {
		if v, ok := os.LookupEnv(s.prefix + strings.ToUpper(field)); ok {
			out[field] = v
		}
	}
	return out, nil
}

// SecretsSource reads configuration from a secrets directory: every regular
// file in the directory contributes one field, named after the file, with the
// file's content (minus a single trailing newline) as a string value.
type SecretsSource struct {
	dir string
}

// NewSecretsSource creates a SecretsSource rooted at dir.
func NewSecretsSource(dir string) *SecretsSource {
	return &SecretsSource{dir: dir}
}

// Name implements [Source].
func (s *SecretsSource) Name() string { return "secrets" }

// Load implements [Source]. A missing secrets directory yields an empty
// mapping; an unreadable file inside an existing directory is an error.
func (s *SecretsSource) Load(sc SourceContext) (map[string]any, error) {
	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string]any{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: reading secrets dir %s: %w", sc.Class, s.dir, err)
	}

	out := make(map[string]any, len(entries))
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		raw, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("%s: reading secret %s: %w", sc.Class, entry.Name(), err)
		}
		out[entry.Name()] = strings.TrimSuffix(string(raw), "\n")
	}
	return out, nil
}
