package style

import "fmt"

// Inheritance resolution merges a style chain onto a caller-supplied
// starting bag. For style S with base B the result is
//
//	overlay(resolve(B, start), own(S))
//
// so the immediate style always has final say over all ancestors, while
// ancestors fill in fields the derived style leaves unset. An unknown
// style name returns the starting bag unchanged; a name revisited during
// the walk fails with ErrInheritanceCycle.

// ResolveParagraphProperties resolves the named style's paragraph
// properties over the starting bag.
func (m *Manager) ResolveParagraphProperties(name string, start ParagraphProperties) (ParagraphProperties, error) {
	return m.resolveParagraph(name, start, map[string]bool{})
}

func (m *Manager) resolveParagraph(name string, start ParagraphProperties, visited map[string]bool) (ParagraphProperties, error) {
	s, ok := m.styles[name]
	if !ok {
		return start.clone(), nil
	}
	if visited[name] {
		return start, fmt.Errorf("resolve paragraph properties of %q: %w", name, ErrInheritanceCycle)
	}
	visited[name] = true

	result := start.overlay(s.para)
	if s.base != "" {
		resolved, err := m.resolveParagraph(s.base, start, visited)
		if err != nil {
			return start, err
		}
		result = resolved.overlay(s.para)
	}
	return result, nil
}

// ResolveCharacterProperties resolves the named style's character
// properties over the starting bag.
func (m *Manager) ResolveCharacterProperties(name string, start CharacterProperties) (CharacterProperties, error) {
	return m.resolveCharacter(name, start, map[string]bool{})
}

func (m *Manager) resolveCharacter(name string, start CharacterProperties, visited map[string]bool) (CharacterProperties, error) {
	s, ok := m.styles[name]
	if !ok {
		return start.clone(), nil
	}
	if visited[name] {
		return start, fmt.Errorf("resolve character properties of %q: %w", name, ErrInheritanceCycle)
	}
	visited[name] = true

	result := start.overlay(s.char)
	if s.base != "" {
		resolved, err := m.resolveCharacter(s.base, start, visited)
		if err != nil {
			return start, err
		}
		result = resolved.overlay(s.char)
	}
	return result, nil
}

// ResolveTableProperties resolves the named style's table properties over
// the starting bag.
func (m *Manager) ResolveTableProperties(name string, start TableProperties) (TableProperties, error) {
	return m.resolveTable(name, start, map[string]bool{})
}

func (m *Manager) resolveTable(name string, start TableProperties, visited map[string]bool) (TableProperties, error) {
	s, ok := m.styles[name]
	if !ok {
		return start.clone(), nil
	}
	if visited[name] {
		return start, fmt.Errorf("resolve table properties of %q: %w", name, ErrInheritanceCycle)
	}
	visited[name] = true

	result := start.overlay(s.table)
	if s.base != "" {
		resolved, err := m.resolveTable(s.base, start, visited)
		if err != nil {
			return start, err
		}
		result = resolved.overlay(s.table)
	}
	return result, nil
}

// EffectiveParagraphProperties composes the element's direct formatting
// with the style chain named by its style reference.
func (m *Manager) EffectiveParagraphProperties(el ParagraphElement) (ParagraphProperties, error) {
	direct := m.ReadParagraphProperties(el)
	ref := el.StyleRef()
	if ref == "" {
		return direct, nil
	}
	return m.ResolveParagraphProperties(ref, direct)
}

// EffectiveCharacterProperties composes the element's direct formatting
// with the style chain named by its style reference.
func (m *Manager) EffectiveCharacterProperties(el RunElement) (CharacterProperties, error) {
	direct := m.ReadCharacterProperties(el)
	ref := el.StyleRef()
	if ref == "" {
		return direct, nil
	}
	return m.ResolveCharacterProperties(ref, direct)
}

// EffectiveTableProperties composes the element's direct formatting with
// the style chain named by its style reference.
func (m *Manager) EffectiveTableProperties(el TableElement) (TableProperties, error) {
	direct := m.ReadTableProperties(el)
	ref := el.StyleRef()
	if ref == "" {
		return direct, nil
	}
	return m.ResolveTableProperties(ref, direct)
}
