// Package style implements the style management and resolution subsystem
// of the document library: named formatting styles with optional-field
// property bags, a registry with built-in libraries and single-base
// inheritance, property application over document elements, style sets
// with cascading application, and stylesheet serialization.
package style

import (
	"fmt"
	"math"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"

	"docstyle/units"
)

// MaxNameLength bounds style and style-set names.
const MaxNameLength = 255

// Style is a single named style: a type tag, an optional base-style
// reference and up to three property bags. Styles registered with a
// Manager are owned by it; external code holds non-owning references.
type Style struct {
	name    string
	typ     Type
	builtIn bool
	base    string

	para  ParagraphProperties
	char  CharacterProperties
	table TableProperties
}

// New creates a style with the given name and type. The name is immutable
// after creation. Use Manager factory methods to create registered styles.
func New(name string, typ Type) (*Style, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	switch typ {
	case TypeParagraph, TypeCharacter, TypeTable, TypeNumbering, TypeMixed:
	default:
		return nil, fmt.Errorf("style %q: unknown type %d: %w", name, typ, ErrValidation)
	}
	return &Style{name: name, typ: typ}, nil
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("style name is empty: %w", ErrValidation)
	}
	if len(name) > MaxNameLength {
		return fmt.Errorf("style name %q exceeds %d characters: %w", name[:32]+"...", MaxNameLength, ErrValidation)
	}
	return nil
}

// Name returns the style name.
func (s *Style) Name() string { return s.name }

// Type returns the style type tag.
func (s *Style) Type() Type { return s.typ }

// BuiltIn reports whether the style was populated by a built-in library.
func (s *Style) BuiltIn() bool { return s.builtIn }

// BaseStyle returns the base style name, or empty when the style has none.
func (s *Style) BaseStyle() string { return s.base }

// ID returns the identifier used in serialized markup ("Heading 1" ->
// "heading-1").
func (s *Style) ID() string { return slug.Make(s.name) }

// ParagraphProperties returns a snapshot of the paragraph property bag.
func (s *Style) ParagraphProperties() ParagraphProperties { return s.para.clone() }

// CharacterProperties returns a snapshot of the character property bag.
func (s *Style) CharacterProperties() CharacterProperties { return s.char.clone() }

// TableProperties returns a snapshot of the table property bag.
func (s *Style) TableProperties() TableProperties { return s.table.clone() }

// SetBaseStyle sets the base-style reference. An empty name clears it.
// Setting a style as its own base fails with ErrInheritanceCycle.
func (s *Style) SetBaseStyle(name string) error {
	if name == s.name {
		return fmt.Errorf("style %q cannot inherit from itself: %w", s.name, ErrInheritanceCycle)
	}
	s.base = name
	return nil
}

// SetParagraphProperties replaces the paragraph property bag. Fails when
// the style type cannot hold paragraph properties or a value is out of
// range; on failure existing properties are left unmodified.
func (s *Style) SetParagraphProperties(p ParagraphProperties) error {
	if !p.Empty() && !s.typ.holdsParagraph() {
		return fmt.Errorf("style %q of type %s cannot hold paragraph properties: %w", s.name, s.typ, ErrPropertyInvalid)
	}
	if err := validateParagraph(p); err != nil {
		return fmt.Errorf("style %q: %w", s.name, err)
	}
	s.para = p.clone()
	return nil
}

// SetCharacterProperties replaces the character property bag. The color
// value is normalized to six uppercase hex digits.
func (s *Style) SetCharacterProperties(c CharacterProperties) error {
	if !c.Empty() && !s.typ.holdsCharacter() {
		return fmt.Errorf("style %q of type %s cannot hold character properties: %w", s.name, s.typ, ErrPropertyInvalid)
	}
	c = c.clone()
	if err := validateCharacter(&c); err != nil {
		return fmt.Errorf("style %q: %w", s.name, err)
	}
	s.char = c
	return nil
}

// SetTableProperties replaces the table property bag.
func (s *Style) SetTableProperties(t TableProperties) error {
	if !t.Empty() && !s.typ.holdsTable() {
		return fmt.Errorf("style %q of type %s cannot hold table properties: %w", s.name, s.typ, ErrPropertyInvalid)
	}
	t = t.clone()
	if err := validateTable(&t); err != nil {
		return fmt.Errorf("style %q: %w", s.name, err)
	}
	s.table = t
	return nil
}

// SetFont sets the character font name and size in one call.
func (s *Style) SetFont(name string, size float64) error {
	c := s.char.clone()
	c.FontName = &name
	c.FontSize = &size
	return s.SetCharacterProperties(c)
}

// SetColor sets the character font color. Accepts "#RRGGBB", "RRGGBB" in
// any case, or a named color; stores the normalized uppercase hex value.
func (s *Style) SetColor(color string) error {
	c := s.char.clone()
	c.Color = &color
	return s.SetCharacterProperties(c)
}

// SetAlignment sets the paragraph alignment.
func (s *Style) SetAlignment(a Alignment) error {
	p := s.para.clone()
	p.Alignment = &a
	return s.SetParagraphProperties(p)
}

// SetSpacing sets the paragraph space before and after, in points.
func (s *Style) SetSpacing(before, after float64) error {
	p := s.para.clone()
	p.SpaceBefore = &before
	p.SpaceAfter = &after
	return s.SetParagraphProperties(p)
}

// Validate re-checks the style name and all numeric ranges.
func (s *Style) Validate() error {
	if err := validateName(s.name); err != nil {
		return err
	}
	if err := validateParagraph(s.para); err != nil {
		return fmt.Errorf("style %q: %w", s.name, err)
	}
	c := s.char.clone()
	if err := validateCharacter(&c); err != nil {
		return fmt.Errorf("style %q: %w", s.name, err)
	}
	t := s.table.clone()
	if err := validateTable(&t); err != nil {
		return fmt.Errorf("style %q: %w", s.name, err)
	}
	return nil
}

func validateParagraph(p ParagraphProperties) error {
	if p.SpaceBefore != nil && *p.SpaceBefore < 0 {
		return fmt.Errorf("negative space before (%v): %w", *p.SpaceBefore, ErrValidation)
	}
	if p.SpaceAfter != nil && *p.SpaceAfter < 0 {
		return fmt.Errorf("negative space after (%v): %w", *p.SpaceAfter, ErrValidation)
	}
	if p.LineSpacing != nil && *p.LineSpacing <= 0 {
		return fmt.Errorf("line spacing must be positive (%v): %w", *p.LineSpacing, ErrValidation)
	}
	if p.ListLevel != nil && *p.ListLevel < 0 {
		return fmt.Errorf("negative list level (%d): %w", *p.ListLevel, ErrValidation)
	}
	return nil
}

// validateCharacter validates the bag and normalizes the color in place.
func validateCharacter(c *CharacterProperties) error {
	if c.FontSize != nil && (*c.FontSize <= 0 || *c.FontSize > 1000) {
		return fmt.Errorf("font size %v outside (0, 1000]: %w", *c.FontSize, ErrValidation)
	}
	if c.Color != nil {
		hex, err := units.ParseColor(*c.Color)
		if err != nil {
			return fmt.Errorf("invalid color format: %v: %w", err, ErrValidation)
		}
		c.Color = &hex
	}
	return nil
}

// validateTable validates the bag and normalizes the border color in place.
func validateTable(t *TableProperties) error {
	if t.BorderWidth != nil && *t.BorderWidth < 0 {
		return fmt.Errorf("negative border width (%v): %w", *t.BorderWidth, ErrValidation)
	}
	if t.CellPadding != nil && *t.CellPadding < 0 {
		return fmt.Errorf("negative cell padding (%v): %w", *t.CellPadding, ErrValidation)
	}
	if t.Width != nil && *t.Width < 0 {
		return fmt.Errorf("negative table width (%v): %w", *t.Width, ErrValidation)
	}
	if t.BorderColor != nil {
		hex, err := units.ParseColor(*t.BorderColor)
		if err != nil {
			return fmt.Errorf("invalid border color: %v: %w", err, ErrValidation)
		}
		t.BorderColor = &hex
	}
	if t.Alignment != nil {
		if _, ok := ParseAlignment(*t.Alignment); !ok {
			return fmt.Errorf("invalid table alignment %q: %w", *t.Alignment, ErrValidation)
		}
	}
	return nil
}

// Markup subunits: twentieths of a point for lengths, half-points for font
// sizes, 240ths for the line spacing multiplier.
func twips(pt float64) int       { return int(math.Round(pt * 20)) }
func halfPoints(pt float64) int  { return int(math.Round(pt * 2)) }
func lineUnits(mult float64) int { return int(math.Round(mult * 240)) }

// ToMarkup serializes the style into a single markup style block using the
// host format's native subunits.
func (s *Style) ToMarkup() *etree.Element {
	el := etree.NewElement("w:style")
	el.CreateAttr("w:type", s.typ.markupKind())
	el.CreateAttr("w:styleId", s.ID())
	if s.builtIn {
		el.CreateAttr("w:default", "0")
	}

	name := el.CreateElement("w:name")
	name.CreateAttr("w:val", s.name)

	if s.base != "" {
		basedOn := el.CreateElement("w:basedOn")
		basedOn.CreateAttr("w:val", slug.Make(s.base))
	}

	if s.typ.holdsParagraph() && !s.para.Empty() {
		s.paragraphMarkup(el.CreateElement("w:pPr"))
	}
	if s.typ.holdsCharacter() && !s.char.Empty() {
		s.characterMarkup(el.CreateElement("w:rPr"))
	}
	if s.typ.holdsTable() && !s.table.Empty() {
		s.tableMarkup(el.CreateElement("w:tblPr"))
	}
	return el
}

func (s *Style) paragraphMarkup(pPr *etree.Element) {
	p := s.para
	if p.Alignment != nil {
		jc := pPr.CreateElement("w:jc")
		jc.CreateAttr("w:val", p.Alignment.String())
	}
	if p.SpaceBefore != nil || p.SpaceAfter != nil || p.LineSpacing != nil {
		spacing := pPr.CreateElement("w:spacing")
		if p.SpaceBefore != nil {
			spacing.CreateAttr("w:before", fmt.Sprintf("%d", twips(*p.SpaceBefore)))
		}
		if p.SpaceAfter != nil {
			spacing.CreateAttr("w:after", fmt.Sprintf("%d", twips(*p.SpaceAfter)))
		}
		if p.LineSpacing != nil {
			spacing.CreateAttr("w:line", fmt.Sprintf("%d", lineUnits(*p.LineSpacing)))
			spacing.CreateAttr("w:lineRule", "auto")
		}
	}
	if p.IndentLeft != nil || p.IndentRight != nil || p.FirstLineIndent != nil {
		ind := pPr.CreateElement("w:ind")
		if p.IndentLeft != nil {
			ind.CreateAttr("w:left", fmt.Sprintf("%d", twips(*p.IndentLeft)))
		}
		if p.IndentRight != nil {
			ind.CreateAttr("w:right", fmt.Sprintf("%d", twips(*p.IndentRight)))
		}
		if p.FirstLineIndent != nil {
			ind.CreateAttr("w:firstLine", fmt.Sprintf("%d", twips(*p.FirstLineIndent)))
		}
	}
}

func (s *Style) characterMarkup(rPr *etree.Element) {
	c := s.char
	if c.FontName != nil {
		fonts := rPr.CreateElement("w:rFonts")
		fonts.CreateAttr("w:ascii", *c.FontName)
		fonts.CreateAttr("w:hAnsi", *c.FontName)
	}
	if c.Format != nil {
		if c.Format.Has(FormatBold) {
			rPr.CreateElement("w:b")
		}
		if c.Format.Has(FormatItalic) {
			rPr.CreateElement("w:i")
		}
		if c.Format.Has(FormatUnderline) {
			u := rPr.CreateElement("w:u")
			u.CreateAttr("w:val", "single")
		}
	}
	if c.FontSize != nil {
		sz := rPr.CreateElement("w:sz")
		sz.CreateAttr("w:val", fmt.Sprintf("%d", halfPoints(*c.FontSize)))
	}
	if c.Color != nil {
		color := rPr.CreateElement("w:color")
		color.CreateAttr("w:val", *c.Color)
	}
}

func (s *Style) tableMarkup(tblPr *etree.Element) {
	t := s.table
	if t.Width != nil {
		w := tblPr.CreateElement("w:tblW")
		w.CreateAttr("w:w", fmt.Sprintf("%d", twips(*t.Width)))
		w.CreateAttr("w:type", "dxa")
	}
	if t.Alignment != nil {
		jc := tblPr.CreateElement("w:jc")
		jc.CreateAttr("w:val", *t.Alignment)
	}
	if t.BorderStyle != nil || t.BorderWidth != nil || t.BorderColor != nil {
		borders := tblPr.CreateElement("w:tblBorders")
		for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right"} {
			b := borders.CreateElement(side)
			if t.BorderStyle != nil {
				b.CreateAttr("w:val", *t.BorderStyle)
			}
			if t.BorderWidth != nil {
				// Border widths use eighths of a point.
				b.CreateAttr("w:sz", fmt.Sprintf("%d", int(math.Round(*t.BorderWidth*8))))
			}
			if t.BorderColor != nil {
				b.CreateAttr("w:color", *t.BorderColor)
			}
		}
	}
	if t.CellPadding != nil {
		mar := tblPr.CreateElement("w:tblCellMar")
		for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right"} {
			m := mar.CreateElement(side)
			m.CreateAttr("w:w", fmt.Sprintf("%d", twips(*t.CellPadding)))
			m.CreateAttr("w:type", "dxa")
		}
	}
}
