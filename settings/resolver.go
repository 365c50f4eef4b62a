package settings

import (
	"fmt"

	"dario.cat/mergo"
)

// Resolver composes an explicit ordered list of sources for one settings
// class and merges their mappings. Order is highest priority first: a key
// contributed by an earlier source is never replaced by a later one.
type Resolver struct {
	class    string
	encoding string
	sources  []Source
}

// NewResolver creates a Resolver for the named settings class with the given
// sources, highest priority first.
func NewResolver(class string, sources ...Source) *Resolver {
	return &Resolver{class: class, sources: sources}
}

// WithEncoding sets the text encoding (IANA charset name) used by file-based
// sources. The default is UTF-8. Returns the receiver for chaining.
func (r *Resolver) WithEncoding(encoding string) *Resolver {
	r.encoding = encoding
	return r
}

// Resolve loads every source in priority order and deep-merges the partial
// mappings into one. Nested map values merge key-wise; scalar collisions keep
// the higher-priority value, by key presence: a key a source contributes wins
// over lower-priority sources even when its value is zero ("" or 0). Any
// source failure aborts the resolution.
func (r *Resolver) Resolve() (map[string]any, error) {
	sc := SourceContext{Class: r.class, Encoding: r.encoding}

	layers := make([]map[string]any, 0, len(r.sources))
	for _, src := range r.sources {
		layer, err := src.Load(sc)
		if err != nil {
			return nil, fmt.Errorf("resolving %s from %s source: %w", r.class, src.Name(), err)
		}
		layers = append(layers, layer)
	}

	// merge lowest priority first so each higher layer overwrites colliding
	// keys, including keys explicitly set to zero values
	merged := make(map[string]any)
	for i := len(layers) - 1; i >= 0; i-- {
		err := mergo.Merge(&merged, layers[i], mergo.WithOverride, mergo.WithOverwriteWithEmptyValue)
		if err != nil {
			return nil, fmt.Errorf("merging %s source into %s: %w", r.sources[i].Name(), r.class, err)
		}
	}

	log.Debug().Str("class", r.class).Interface("resolved", merged).
		Msg("resolved settings")
	return merged, nil
}
