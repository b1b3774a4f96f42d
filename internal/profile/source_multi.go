package profile

// Source is one backing store that may or may not know a given profile name.
type Source interface {
	// Get resolves a profile by name, failing with *NotFoundError when the
	// name is unknown to this source.
	Get(name string) (Profile, error)
}

// MultiSource composes sources in priority order, highest first. The first
// source that knows the name wins.
type MultiSource struct {
	sources []Source
}

// NewMultiSource builds a MultiSource over the given sources.
func NewMultiSource(sources ...Source) *MultiSource {
	return &MultiSource{sources: sources}
}

// Get returns the first successful resolution. When every source misses, the
// error carries the originally requested name.
func (m *MultiSource) Get(name string) (Profile, error) {
	for _, s := range m.sources {
		if p, err := s.Get(name); err == nil {
			return p, nil
		}
	}
	return nil, &NotFoundError{Name: name}
}
