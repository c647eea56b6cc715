package style

import (
	"fmt"
	"sort"

	"github.com/maruel/natural"
	"go.uber.org/zap"
)

// Manager is the central style registry. It owns every registered style
// for its lifetime; lookups return non-owning references that stay valid
// until the entry is removed or the registry cleared.
//
// The manager has no internal synchronization - concurrent mutation must
// be serialized by the caller.
type Manager struct {
	log *zap.Logger

	styles map[string]*Style
	loaded map[BuiltInCategory]bool
	sets   map[string]*StyleSet
}

// NewManager creates an empty style registry.
func NewManager(log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{
		log:    log.Named("styles"),
		styles: make(map[string]*Style),
		loaded: make(map[BuiltInCategory]bool),
		sets:   make(map[string]*StyleSet),
	}
}

func (m *Manager) create(name string, typ Type) (*Style, error) {
	if _, exists := m.styles[name]; exists {
		return nil, fmt.Errorf("create style %q: %w", name, ErrStyleExists)
	}
	s, err := New(name, typ)
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	m.styles[name] = s
	m.log.Debug("Created style", zap.String("name", name), zap.Stringer("type", typ))
	return s, nil
}

// CreateParagraphStyle creates and registers a PARAGRAPH style.
func (m *Manager) CreateParagraphStyle(name string) (*Style, error) {
	return m.create(name, TypeParagraph)
}

// CreateCharacterStyle creates and registers a CHARACTER style.
func (m *Manager) CreateCharacterStyle(name string) (*Style, error) {
	return m.create(name, TypeCharacter)
}

// CreateTableStyle creates and registers a TABLE style.
func (m *Manager) CreateTableStyle(name string) (*Style, error) {
	return m.create(name, TypeTable)
}

// CreateMixedStyle creates and registers a MIXED style, which may hold
// paragraph and character properties simultaneously.
func (m *Manager) CreateMixedStyle(name string) (*Style, error) {
	return m.create(name, TypeMixed)
}

// Register adopts an externally constructed style (e.g. one produced by
// the definition parser) into the registry.
func (m *Manager) Register(s *Style) error {
	if s == nil {
		return fmt.Errorf("register style: nil style: %w", ErrValidation)
	}
	if err := s.Validate(); err != nil {
		return fmt.Errorf("register style: %w", err)
	}
	if _, exists := m.styles[s.name]; exists {
		return fmt.Errorf("register style %q: %w", s.name, ErrStyleExists)
	}
	m.styles[s.name] = s
	m.log.Debug("Registered style", zap.String("name", s.name), zap.Stringer("type", s.typ))
	return nil
}

// Get returns the registered style by name.
func (m *Manager) Get(name string) (*Style, bool) {
	s, ok := m.styles[name]
	return s, ok
}

// Has reports whether a style with the given name is registered.
func (m *Manager) Has(name string) bool {
	_, ok := m.styles[name]
	return ok
}

// Remove deletes a style from the registry. Removal is rejected while
// another registered style references it as base.
func (m *Manager) Remove(name string) error {
	if _, ok := m.styles[name]; !ok {
		return fmt.Errorf("remove style %q: %w", name, ErrStyleNotFound)
	}
	for _, other := range m.styles {
		if other.base == name {
			return fmt.Errorf("remove style %q: style %q is based on it: %w", name, other.name, ErrDependencyMissing)
		}
	}
	delete(m.styles, name)
	m.log.Debug("Removed style", zap.String("name", name))
	return nil
}

// removeUnchecked drops a registry entry without dependency checks. Used
// to roll back partially constructed styles.
func (m *Manager) removeUnchecked(name string) {
	delete(m.styles, name)
}

// Count returns the number of registered styles.
func (m *Manager) Count() int { return len(m.styles) }

// Names returns all registered style names in natural order ("Heading 2"
// before "Heading 10").
func (m *Manager) Names() []string {
	names := make([]string, 0, len(m.styles))
	for name := range m.styles {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// Clear tears the registry down: all styles, style sets and the record of
// loaded built-in categories are dropped. References obtained earlier
// become invalid.
func (m *Manager) Clear() {
	m.styles = make(map[string]*Style)
	m.loaded = make(map[BuiltInCategory]bool)
	m.sets = make(map[string]*StyleSet)
	m.log.Debug("Registry cleared")
}
