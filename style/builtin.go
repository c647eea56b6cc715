package style

import (
	"fmt"

	"go.uber.org/zap"
)

// BuiltInCategory selects a library of pre-defined styles.
type BuiltInCategory int

const (
	BuiltInHeadings BuiltInCategory = iota + 1
	BuiltInBody
	BuiltInTechnical
	BuiltInLists
	BuiltInTables
)

func (c BuiltInCategory) String() string {
	switch c {
	case BuiltInHeadings:
		return "headings"
	case BuiltInBody:
		return "body"
	case BuiltInTechnical:
		return "technical"
	case BuiltInLists:
		return "lists"
	case BuiltInTables:
		return "tables"
	default:
		return "unknown"
	}
}

// builtInLoadOrder is the fixed order used by LoadAllBuiltInStyles.
var builtInLoadOrder = []BuiltInCategory{
	BuiltInHeadings,
	BuiltInBody,
	BuiltInTechnical,
	BuiltInLists,
	BuiltInTables,
}

// Heading sizes go from 16pt down in 2pt steps.
const (
	headingLevels      = 6
	headingTopSize     = 16.0
	headingSizeStep    = 2.0
	headingSpaceBefore = 12.0
	headingSpaceAfter  = 6.0
)

// LoadBuiltInStyles populates the registry with the pre-defined styles of
// one category. Loading a category a second time is a no-op.
func (m *Manager) LoadBuiltInStyles(category BuiltInCategory) error {
	if m.loaded[category] {
		return nil
	}

	var err error
	switch category {
	case BuiltInHeadings:
		err = m.loadHeadingStyles()
	case BuiltInBody:
		err = m.loadBodyStyles()
	case BuiltInTechnical:
		err = m.loadTechnicalStyles()
	case BuiltInLists, BuiltInTables:
		// Reserved categories, nothing to load yet.
	default:
		return fmt.Errorf("unknown built-in category %d: %w", category, ErrValidation)
	}
	if err != nil {
		return fmt.Errorf("load built-in %s styles: %w", category, err)
	}

	m.loaded[category] = true
	m.log.Debug("Loaded built-in styles", zap.Stringer("category", category))
	return nil
}

// LoadAllBuiltInStyles loads every built-in category in a fixed order.
func (m *Manager) LoadAllBuiltInStyles() error {
	for _, category := range builtInLoadOrder {
		if err := m.LoadBuiltInStyles(category); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) loadHeadingStyles() error {
	for level := 1; level <= headingLevels; level++ {
		s, err := m.CreateMixedStyle(fmt.Sprintf("Heading %d", level))
		if err != nil {
			return err
		}
		s.builtIn = true
		size := headingTopSize - float64(level-1)*headingSizeStep
		if err := s.SetCharacterProperties(CharacterProperties{
			FontName: Ptr("Arial"),
			FontSize: Ptr(size),
			Format:   Ptr(FormatBold),
		}); err != nil {
			return err
		}
		if err := s.SetSpacing(headingSpaceBefore, headingSpaceAfter); err != nil {
			return err
		}
	}
	return nil
}

func (m *Manager) loadBodyStyles() error {
	s, err := m.CreateMixedStyle("Normal")
	if err != nil {
		return err
	}
	s.builtIn = true
	if err := s.SetFont("Calibri", 11); err != nil {
		return err
	}
	if err := s.SetSpacing(0, 6); err != nil {
		return err
	}
	return nil
}

func (m *Manager) loadTechnicalStyles() error {
	s, err := m.CreateCharacterStyle("Code")
	if err != nil {
		return err
	}
	s.builtIn = true
	if err := s.SetFont("Courier New", 10); err != nil {
		return err
	}
	if err := s.SetColor("404040"); err != nil {
		return err
	}
	return nil
}
