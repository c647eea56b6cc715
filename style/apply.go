package style

import (
	"fmt"

	"go.uber.org/zap"
)

// Property application: write every set field of a bag into an element.
// Unset fields leave the element untouched - nothing is ever cleared.

// ApplyParagraphProperties writes the set fields of props into el.
func (m *Manager) ApplyParagraphProperties(el ParagraphElement, props ParagraphProperties) {
	if props.Alignment != nil {
		el.SetAlignment(*props.Alignment)
	}
	if props.SpaceBefore != nil || props.SpaceAfter != nil {
		before, after, _ := el.Spacing()
		if props.SpaceBefore != nil {
			before = *props.SpaceBefore
		}
		if props.SpaceAfter != nil {
			after = *props.SpaceAfter
		}
		el.SetSpacing(before, after)
	}
	if props.LineSpacing != nil {
		el.SetLineSpacing(*props.LineSpacing)
	}
	if props.IndentLeft != nil || props.IndentRight != nil {
		left, right, _ := el.Indent()
		if props.IndentLeft != nil {
			left = *props.IndentLeft
		}
		if props.IndentRight != nil {
			right = *props.IndentRight
		}
		el.SetIndent(left, right)
	}
	if props.FirstLineIndent != nil {
		el.SetFirstLineIndent(*props.FirstLineIndent)
	}
	if props.ListType != nil {
		level := 0
		if props.ListLevel != nil {
			level = *props.ListLevel
		} else if _, cur, ok := el.ListStyle(); ok {
			level = cur
		}
		el.SetListStyle(*props.ListType, level)
	}
}

// ApplyCharacterProperties writes the set fields of props into el.
func (m *Manager) ApplyCharacterProperties(el RunElement, props CharacterProperties) {
	if props.FontName != nil {
		el.SetFontName(*props.FontName)
	}
	if props.FontSize != nil {
		el.SetFontSize(*props.FontSize)
	}
	if props.Color != nil {
		el.SetColor(*props.Color)
	}
	if props.Highlight != nil {
		el.SetHighlight(*props.Highlight)
	}
}

// ApplyTableProperties writes the set fields of props into el.
func (m *Manager) ApplyTableProperties(el TableElement, props TableProperties) {
	if props.Width != nil {
		el.SetWidth(*props.Width)
	}
	if props.Alignment != nil {
		el.SetAlignment(*props.Alignment)
	}
	if props.BorderStyle != nil {
		el.SetBorderStyle(*props.BorderStyle)
	}
	if props.BorderWidth != nil {
		el.SetBorderWidth(*props.BorderWidth)
	}
	if props.BorderColor != nil {
		el.SetBorderColor(*props.BorderColor)
	}
	if props.CellPadding != nil {
		el.SetCellMargins(*props.CellPadding)
	}
}

// ApplyParagraphStyle writes a style reference into el and applies the
// style's own paragraph properties. Fails without mutation when the style
// is unknown or cannot format paragraphs.
func (m *Manager) ApplyParagraphStyle(el ParagraphElement, name string) error {
	s, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("apply paragraph style %q: %w", name, ErrStyleNotFound)
	}
	if !s.typ.holdsParagraph() {
		return fmt.Errorf("apply paragraph style %q: type %s: %w", name, s.typ, ErrPropertyInvalid)
	}
	el.SetStyleRef(s.name)
	m.ApplyParagraphProperties(el, s.para)
	m.log.Debug("Applied paragraph style", zap.String("style", name))
	return nil
}

// ApplyCharacterStyle writes a style reference into el and applies the
// style's own character properties.
func (m *Manager) ApplyCharacterStyle(el RunElement, name string) error {
	s, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("apply character style %q: %w", name, ErrStyleNotFound)
	}
	if !s.typ.holdsCharacter() {
		return fmt.Errorf("apply character style %q: type %s: %w", name, s.typ, ErrPropertyInvalid)
	}
	el.SetStyleRef(s.name)
	m.ApplyCharacterProperties(el, s.char)
	m.log.Debug("Applied character style", zap.String("style", name))
	return nil
}

// ApplyTableStyle writes a style reference into el and applies the style's
// own table properties.
func (m *Manager) ApplyTableStyle(el TableElement, name string) error {
	s, ok := m.Get(name)
	if !ok {
		return fmt.Errorf("apply table style %q: %w", name, ErrStyleNotFound)
	}
	if !s.typ.holdsTable() {
		return fmt.Errorf("apply table style %q: type %s: %w", name, s.typ, ErrPropertyInvalid)
	}
	el.SetStyleRef(s.name)
	m.ApplyTableProperties(el, s.table)
	m.log.Debug("Applied table style", zap.String("style", name))
	return nil
}

// Property extraction: read an element's direct markup into a bag, with no
// inheritance involved.

// ReadParagraphProperties reads the direct paragraph formatting of el.
func (m *Manager) ReadParagraphProperties(el ParagraphElement) ParagraphProperties {
	var props ParagraphProperties
	if a, ok := el.Alignment(); ok {
		props.Alignment = &a
	}
	if before, after, ok := el.Spacing(); ok {
		props.SpaceBefore = &before
		props.SpaceAfter = &after
	}
	if ls, ok := el.LineSpacing(); ok {
		props.LineSpacing = &ls
	}
	if left, right, ok := el.Indent(); ok {
		props.IndentLeft = &left
		props.IndentRight = &right
	}
	if fl, ok := el.FirstLineIndent(); ok {
		props.FirstLineIndent = &fl
	}
	if lt, level, ok := el.ListStyle(); ok {
		props.ListType = &lt
		props.ListLevel = &level
	}
	return props
}

// ReadCharacterProperties reads the direct run formatting of el.
func (m *Manager) ReadCharacterProperties(el RunElement) CharacterProperties {
	var props CharacterProperties
	if f, ok := el.FontName(); ok {
		props.FontName = &f
	}
	if sz, ok := el.FontSize(); ok {
		props.FontSize = &sz
	}
	if c, ok := el.Color(); ok {
		props.Color = &c
	}
	if h, ok := el.Highlight(); ok {
		props.Highlight = &h
	}
	if f := el.Format(); f != 0 {
		props.Format = &f
	}
	return props
}

// ReadTableProperties reads the direct table formatting of el.
func (m *Manager) ReadTableProperties(el TableElement) TableProperties {
	var props TableProperties
	if w, ok := el.Width(); ok {
		props.Width = &w
	}
	if a, ok := el.Alignment(); ok {
		props.Alignment = &a
	}
	if bs, ok := el.BorderStyle(); ok {
		props.BorderStyle = &bs
	}
	if bw, ok := el.BorderWidth(); ok {
		props.BorderWidth = &bw
	}
	if bc, ok := el.BorderColor(); ok {
		props.BorderColor = &bc
	}
	if cm, ok := el.CellMargins(); ok {
		props.CellPadding = &cm
	}
	return props
}

// ExtractParagraphStyle creates and registers a new paragraph style
// populated from the element's current direct properties.
func (m *Manager) ExtractParagraphStyle(el ParagraphElement, newName string) (*Style, error) {
	s, err := m.CreateParagraphStyle(newName)
	if err != nil {
		return nil, fmt.Errorf("extract style: %w", err)
	}
	if err := s.SetParagraphProperties(m.ReadParagraphProperties(el)); err != nil {
		m.removeUnchecked(newName)
		return nil, fmt.Errorf("extract style %q: %w", newName, err)
	}
	return s, nil
}

// ExtractCharacterStyle creates and registers a new character style
// populated from the element's current direct properties.
func (m *Manager) ExtractCharacterStyle(el RunElement, newName string) (*Style, error) {
	s, err := m.CreateCharacterStyle(newName)
	if err != nil {
		return nil, fmt.Errorf("extract style: %w", err)
	}
	if err := s.SetCharacterProperties(m.ReadCharacterProperties(el)); err != nil {
		m.removeUnchecked(newName)
		return nil, fmt.Errorf("extract style %q: %w", newName, err)
	}
	return s, nil
}

// ExtractTableStyle creates and registers a new table style populated from
// the element's current direct properties.
func (m *Manager) ExtractTableStyle(el TableElement, newName string) (*Style, error) {
	s, err := m.CreateTableStyle(newName)
	if err != nil {
		return nil, fmt.Errorf("extract style: %w", err)
	}
	if err := s.SetTableProperties(m.ReadTableProperties(el)); err != nil {
		m.removeUnchecked(newName)
		return nil, fmt.Errorf("extract style %q: %w", newName, err)
	}
	return s, nil
}
