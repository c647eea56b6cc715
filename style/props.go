package style

import "strings"

// Type classifies a style by the kind of content it formats.
type Type int

const (
	TypeParagraph Type = iota + 1
	TypeCharacter
	TypeTable
	TypeNumbering
	TypeMixed
)

// String returns the lower-case name of the style type.
func (t Type) String() string {
	switch t {
	case TypeParagraph:
		return "paragraph"
	case TypeCharacter:
		return "character"
	case TypeTable:
		return "table"
	case TypeNumbering:
		return "numbering"
	case TypeMixed:
		return "mixed"
	default:
		return "unknown"
	}
}

// ParseType parses a style type name (case-insensitive).
func ParseType(s string) (Type, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "paragraph":
		return TypeParagraph, true
	case "character":
		return TypeCharacter, true
	case "table":
		return TypeTable, true
	case "numbering":
		return TypeNumbering, true
	case "mixed":
		return TypeMixed, true
	default:
		return 0, false
	}
}

// markupKind returns the style kind used in serialized markup. MIXED
// styles serialize as "paragraph" since the host format has no mixed kind.
func (t Type) markupKind() string {
	switch t {
	case TypeCharacter:
		return "character"
	case TypeTable:
		return "table"
	case TypeNumbering:
		return "numbering"
	default:
		return "paragraph"
	}
}

// holdsParagraph reports whether a style of this type may carry paragraph
// properties.
func (t Type) holdsParagraph() bool { return t == TypeParagraph || t == TypeMixed }

// holdsCharacter reports whether a style of this type may carry character
// properties.
func (t Type) holdsCharacter() bool { return t == TypeCharacter || t == TypeMixed }

// holdsTable reports whether a style of this type may carry table
// properties.
func (t Type) holdsTable() bool { return t == TypeTable }

// Alignment is horizontal paragraph or table alignment.
type Alignment int

const (
	AlignLeft Alignment = iota + 1
	AlignCenter
	AlignRight
	AlignJustify
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	case AlignJustify:
		return "justify"
	default:
		return "unknown"
	}
}

// ParseAlignment parses an alignment name (case-insensitive). "both" is
// accepted as an alias for justify, matching common markup vocabularies.
func ParseAlignment(s string) (Alignment, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "start":
		return AlignLeft, true
	case "center":
		return AlignCenter, true
	case "right", "end":
		return AlignRight, true
	case "justify", "both":
		return AlignJustify, true
	default:
		return 0, false
	}
}

// Highlight is a run highlight color from the fixed highlight palette.
type Highlight int

const (
	HighlightNone Highlight = iota
	HighlightYellow
	HighlightGreen
	HighlightCyan
	HighlightMagenta
	HighlightBlue
	HighlightRed
	HighlightDarkGray
)

func (h Highlight) String() string {
	switch h {
	case HighlightNone:
		return "none"
	case HighlightYellow:
		return "yellow"
	case HighlightGreen:
		return "green"
	case HighlightCyan:
		return "cyan"
	case HighlightMagenta:
		return "magenta"
	case HighlightBlue:
		return "blue"
	case HighlightRed:
		return "red"
	case HighlightDarkGray:
		return "darkGray"
	default:
		return "none"
	}
}

// ParseHighlight parses a highlight color name (case-insensitive).
func ParseHighlight(s string) (Highlight, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none":
		return HighlightNone, true
	case "yellow":
		return HighlightYellow, true
	case "green":
		return HighlightGreen, true
	case "cyan":
		return HighlightCyan, true
	case "magenta":
		return HighlightMagenta, true
	case "blue":
		return HighlightBlue, true
	case "red":
		return HighlightRed, true
	case "darkgray", "darkgrey":
		return HighlightDarkGray, true
	default:
		return 0, false
	}
}

// ListType is the numbering kind of a list paragraph.
type ListType int

const (
	ListBullet ListType = iota + 1
	ListNumber
)

func (l ListType) String() string {
	switch l {
	case ListBullet:
		return "bullet"
	case ListNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Format is a bitmask of freely composable run formatting flags.
type Format uint16

const (
	FormatBold Format = 1 << iota
	FormatItalic
	FormatUnderline
	FormatStrikethrough
	FormatSmallCaps
	FormatShadow
	FormatSubscript
	FormatSuperscript
)

// Has reports whether all flags in mask are set.
func (f Format) Has(mask Format) bool { return f&mask == mask }

// Ptr returns a pointer to v. Property bag fields are pointers so that
// "unset" stays distinct from a zero value; this keeps building bags terse.
func Ptr[T any](v T) *T { return &v }

// ParagraphProperties is the optional-field bag of paragraph formatting.
// A nil field means the style does not specify that attribute.
type ParagraphProperties struct {
	Alignment       *Alignment
	SpaceBefore     *float64 // points
	SpaceAfter      *float64 // points
	LineSpacing     *float64 // multiplier
	IndentLeft      *float64 // points
	IndentRight     *float64 // points
	FirstLineIndent *float64 // points
	ListType        *ListType
	ListLevel       *int
}

// Empty reports whether no field is set.
func (p ParagraphProperties) Empty() bool {
	return p.Alignment == nil && p.SpaceBefore == nil && p.SpaceAfter == nil &&
		p.LineSpacing == nil && p.IndentLeft == nil && p.IndentRight == nil &&
		p.FirstLineIndent == nil && p.ListType == nil && p.ListLevel == nil
}

// clone returns a copy that shares no pointers with p.
func (p ParagraphProperties) clone() ParagraphProperties {
	return ParagraphProperties{
		Alignment:       clonePtr(p.Alignment),
		SpaceBefore:     clonePtr(p.SpaceBefore),
		SpaceAfter:      clonePtr(p.SpaceAfter),
		LineSpacing:     clonePtr(p.LineSpacing),
		IndentLeft:      clonePtr(p.IndentLeft),
		IndentRight:     clonePtr(p.IndentRight),
		FirstLineIndent: clonePtr(p.FirstLineIndent),
		ListType:        clonePtr(p.ListType),
		ListLevel:       clonePtr(p.ListLevel),
	}
}

// overlay returns base with every set field of over replacing the
// corresponding field. Unset fields of over leave base untouched.
func (p ParagraphProperties) overlay(over ParagraphProperties) ParagraphProperties {
	out := p.clone()
	if over.Alignment != nil {
		out.Alignment = clonePtr(over.Alignment)
	}
	if over.SpaceBefore != nil {
		out.SpaceBefore = clonePtr(over.SpaceBefore)
	}
	if over.SpaceAfter != nil {
		out.SpaceAfter = clonePtr(over.SpaceAfter)
	}
	if over.LineSpacing != nil {
		out.LineSpacing = clonePtr(over.LineSpacing)
	}
	if over.IndentLeft != nil {
		out.IndentLeft = clonePtr(over.IndentLeft)
	}
	if over.IndentRight != nil {
		out.IndentRight = clonePtr(over.IndentRight)
	}
	if over.FirstLineIndent != nil {
		out.FirstLineIndent = clonePtr(over.FirstLineIndent)
	}
	if over.ListType != nil {
		out.ListType = clonePtr(over.ListType)
	}
	if over.ListLevel != nil {
		out.ListLevel = clonePtr(over.ListLevel)
	}
	return out
}

// CharacterStyleProperties per run: all fields optional.
type CharacterProperties struct {
	FontName  *string
	FontSize  *float64 // points, valid range (0, 1000]
	Color     *string  // six hex digits, no leading marker
	Highlight *Highlight
	Format    *Format
}

// Empty reports whether no field is set.
func (c CharacterProperties) Empty() bool {
	return c.FontName == nil && c.FontSize == nil && c.Color == nil &&
		c.Highlight == nil && c.Format == nil
}

func (c CharacterProperties) clone() CharacterProperties {
	return CharacterProperties{
		FontName:  clonePtr(c.FontName),
		FontSize:  clonePtr(c.FontSize),
		Color:     clonePtr(c.Color),
		Highlight: clonePtr(c.Highlight),
		Format:    clonePtr(c.Format),
	}
}

func (c CharacterProperties) overlay(over CharacterProperties) CharacterProperties {
	out := c.clone()
	if over.FontName != nil {
		out.FontName = clonePtr(over.FontName)
	}
	if over.FontSize != nil {
		out.FontSize = clonePtr(over.FontSize)
	}
	if over.Color != nil {
		out.Color = clonePtr(over.Color)
	}
	if over.Highlight != nil {
		out.Highlight = clonePtr(over.Highlight)
	}
	if over.Format != nil {
		out.Format = clonePtr(over.Format)
	}
	return out
}

// TableProperties is the optional-field bag of table formatting.
type TableProperties struct {
	BorderStyle *string
	BorderWidth *float64 // points
	BorderColor *string  // six hex digits
	CellPadding *float64 // points, uniform for all sides
	Width       *float64 // points
	Alignment   *string  // alignment name
}

// Empty reports whether no field is set.
func (t TableProperties) Empty() bool {
	return t.BorderStyle == nil && t.BorderWidth == nil && t.BorderColor == nil &&
		t.CellPadding == nil && t.Width == nil && t.Alignment == nil
}

func (t TableProperties) clone() TableProperties {
	return TableProperties{
		BorderStyle: clonePtr(t.BorderStyle),
		BorderWidth: clonePtr(t.BorderWidth),
		BorderColor: clonePtr(t.BorderColor),
		CellPadding: clonePtr(t.CellPadding),
		Width:       clonePtr(t.Width),
		Alignment:   clonePtr(t.Alignment),
	}
}

func (t TableProperties) overlay(over TableProperties) TableProperties {
	out := t.clone()
	if over.BorderStyle != nil {
		out.BorderStyle = clonePtr(over.BorderStyle)
	}
	if over.BorderWidth != nil {
		out.BorderWidth = clonePtr(over.BorderWidth)
	}
	if over.BorderColor != nil {
		out.BorderColor = clonePtr(over.BorderColor)
	}
	if over.CellPadding != nil {
		out.CellPadding = clonePtr(over.CellPadding)
	}
	if over.Width != nil {
		out.Width = clonePtr(over.Width)
	}
	if over.Alignment != nil {
		out.Alignment = clonePtr(over.Alignment)
	}
	return out
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
