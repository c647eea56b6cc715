// Package styledef parses declarative style-definition documents into
// style.Style and style.StyleSet values. The document is a small XML
// dialect with a fixed namespace and version; literal lengths,
// percentages and colors are handled by the units package.
package styledef

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"docstyle/style"
	"docstyle/units"
)

// Schema constants the document root is validated against. Any mismatch
// is a parse error.
const (
	RootTag          = "StyleSheet"
	Namespace        = "urn:docstyle:stylesheet:1.0"
	SupportedVersion = "1.0"
)

// ErrParse - the definition document is malformed or violates the schema.
var ErrParse = errors.New("style definition parse error")

// Parser parses style-definition documents.
type Parser struct {
	log *zap.Logger
}

// NewParser creates a definition parser.
func NewParser(log *zap.Logger) *Parser {
	if log == nil {
		log = zap.NewNop()
	}
	return &Parser{log: log.Named("styledef")}
}

// LoadStylesFromFile parses all Style definitions from a file.
func (p *Parser) LoadStylesFromFile(path string) ([]*style.Style, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", path, err, ErrParse)
	}
	return p.stylesFromDocument(doc)
}

// LoadStylesFromString parses all Style definitions from in-memory text.
func (p *Parser) LoadStylesFromString(text string) ([]*style.Style, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("reading definition text: %v: %w", err, ErrParse)
	}
	return p.stylesFromDocument(doc)
}

// LoadStyleSetsFromFile parses all StyleSet definitions from a file.
func (p *Parser) LoadStyleSetsFromFile(path string) ([]style.StyleSet, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromFile(path); err != nil {
		return nil, fmt.Errorf("reading %s: %v: %w", path, err, ErrParse)
	}
	return p.styleSetsFromDocument(doc)
}

// LoadStyleSetsFromString parses all StyleSet definitions from in-memory
// text.
func (p *Parser) LoadStyleSetsFromString(text string) ([]style.StyleSet, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("reading definition text: %v: %w", err, ErrParse)
	}
	return p.styleSetsFromDocument(doc)
}

// validateRoot checks the root tag, namespace URI and schema version.
func validateRoot(doc *etree.Document) (*etree.Element, error) {
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("document has no root element: %w", ErrParse)
	}
	if root.Tag != RootTag {
		return nil, fmt.Errorf("unexpected root element %q (want %q): %w", root.Tag, RootTag, ErrParse)
	}
	if ns := root.SelectAttrValue("xmlns", ""); ns != Namespace {
		return nil, fmt.Errorf("bad namespace %q (want %q): %w", ns, Namespace, ErrParse)
	}
	if v := root.SelectAttrValue("version", ""); v != SupportedVersion {
		return nil, fmt.Errorf("unsupported version %q (want %q): %w", v, SupportedVersion, ErrParse)
	}
	return root, nil
}

func (p *Parser) stylesFromDocument(doc *etree.Document) ([]*style.Style, error) {
	root, err := validateRoot(doc)
	if err != nil {
		return nil, err
	}

	var styles []*style.Style
	for _, child := range root.ChildElements() {
		switch child.Tag {
		case "Style":
			s, err := p.parseStyle(child)
			if err != nil {
				return nil, err
			}
			styles = append(styles, s)
		case "StyleSet":
			// Handled by LoadStyleSets*.
		default:
			p.log.Warn("Unexpected element in StyleSheet, ignoring", zap.String("tag", child.Tag))
		}
	}
	p.log.Debug("Parsed style definitions", zap.Int("styles", len(styles)))
	return styles, nil
}

func (p *Parser) styleSetsFromDocument(doc *etree.Document) ([]style.StyleSet, error) {
	root, err := validateRoot(doc)
	if err != nil {
		return nil, err
	}

	var sets []style.StyleSet
	for _, child := range root.ChildElements() {
		if child.Tag != "StyleSet" {
			continue
		}
		set, err := p.parseStyleSet(child)
		if err != nil {
			return nil, err
		}
		sets = append(sets, set)
	}
	p.log.Debug("Parsed style set definitions", zap.Int("sets", len(sets)))
	return sets, nil
}

func (p *Parser) parseStyle(el *etree.Element) (*style.Style, error) {
	name := el.SelectAttrValue("name", "")
	if name == "" {
		return nil, fmt.Errorf("Style missing required name attribute: %w", ErrParse)
	}
	typeName := el.SelectAttrValue("type", "")
	if typeName == "" {
		return nil, fmt.Errorf("style %q: missing required type attribute: %w", name, ErrParse)
	}
	typ, ok := style.ParseType(typeName)
	if !ok {
		return nil, fmt.Errorf("style %q: unknown type %q: %w", name, typeName, ErrParse)
	}

	s, err := style.New(name, typ)
	if err != nil {
		return nil, fmt.Errorf("style %q: %v: %w", name, err, ErrParse)
	}
	if base := el.SelectAttrValue("base", ""); base != "" {
		if err := s.SetBaseStyle(base); err != nil {
			return nil, fmt.Errorf("style %q: %v: %w", name, err, ErrParse)
		}
	}

	for _, block := range el.ChildElements() {
		switch block.Tag {
		case "Paragraph":
			props, err := p.parseParagraphBlock(block)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", name, err)
			}
			if err := s.SetParagraphProperties(props); err != nil {
				return nil, fmt.Errorf("style %q: %v: %w", name, err, ErrParse)
			}
		case "Character":
			props, err := p.parseCharacterBlock(block)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", name, err)
			}
			if err := s.SetCharacterProperties(props); err != nil {
				return nil, fmt.Errorf("style %q: %v: %w", name, err, ErrParse)
			}
		case "Table":
			props, err := p.parseTableBlock(block)
			if err != nil {
				return nil, fmt.Errorf("style %q: %w", name, err)
			}
			if err := s.SetTableProperties(props); err != nil {
				return nil, fmt.Errorf("style %q: %v: %w", name, err, ErrParse)
			}
		default:
			p.log.Warn("Unexpected block in Style, ignoring", zap.String("style", name), zap.String("tag", block.Tag))
		}
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("style %q: %v: %w", name, err, ErrParse)
	}
	return s, nil
}

func (p *Parser) parseParagraphBlock(el *etree.Element) (style.ParagraphProperties, error) {
	var props style.ParagraphProperties
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Alignment":
			a, ok := style.ParseAlignment(child.Text())
			if !ok {
				return props, fmt.Errorf("invalid Alignment %q: %w", child.Text(), ErrParse)
			}
			props.Alignment = &a
		case "SpaceBefore":
			v, err := parseLength(child.Tag, child.Text())
			if err != nil {
				return props, err
			}
			props.SpaceBefore = &v
		case "SpaceAfter":
			v, err := parseLength(child.Tag, child.Text())
			if err != nil {
				return props, err
			}
			props.SpaceAfter = &v
		case "LineSpacing":
			v, err := parseLineSpacing(child.Text())
			if err != nil {
				return props, err
			}
			props.LineSpacing = &v
		case "Indentation":
			if err := parseIndentation(child, &props); err != nil {
				return props, err
			}
		case "List":
			if err := parseList(child, &props); err != nil {
				return props, err
			}
		default:
			p.log.Warn("Unexpected element in Paragraph block, ignoring", zap.String("tag", child.Tag))
		}
	}
	return props, nil
}

func (p *Parser) parseCharacterBlock(el *etree.Element) (style.CharacterProperties, error) {
	var props style.CharacterProperties
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Font":
			if name := child.SelectAttrValue("name", ""); name != "" {
				props.FontName = &name
			}
			if size := child.SelectAttrValue("size", ""); size != "" {
				v, err := parseLength("Font size", size)
				if err != nil {
					return props, err
				}
				props.FontSize = &v
			}
		case "Color":
			hex, err := units.ParseColor(child.Text())
			if err != nil {
				return props, fmt.Errorf("invalid Color %q: %v: %w", child.Text(), err, ErrParse)
			}
			props.Color = &hex
		case "Highlight":
			h, ok := style.ParseHighlight(child.Text())
			if !ok {
				return props, fmt.Errorf("invalid Highlight %q: %w", child.Text(), ErrParse)
			}
			props.Highlight = &h
		case "Format":
			format, err := parseFormat(child)
			if err != nil {
				return props, err
			}
			props.Format = &format
		default:
			p.log.Warn("Unexpected element in Character block, ignoring", zap.String("tag", child.Tag))
		}
	}
	return props, nil
}

func (p *Parser) parseTableBlock(el *etree.Element) (style.TableProperties, error) {
	var props style.TableProperties
	for _, child := range el.ChildElements() {
		switch child.Tag {
		case "Width":
			v, err := parseLength(child.Tag, child.Text())
			if err != nil {
				return props, err
			}
			props.Width = &v
		case "Alignment":
			a := strings.TrimSpace(child.Text())
			props.Alignment = &a
		case "Borders":
			if err := parseBorders(child, &props); err != nil {
				return props, err
			}
		case "CellPadding":
			v, err := parseLength(child.Tag, child.Text())
			if err != nil {
				return props, err
			}
			props.CellPadding = &v
		default:
			p.log.Warn("Unexpected element in Table block, ignoring", zap.String("tag", child.Tag))
		}
	}
	return props, nil
}

func (p *Parser) parseStyleSet(el *etree.Element) (style.StyleSet, error) {
	var set style.StyleSet
	set.Name = el.SelectAttrValue("name", "")
	if set.Name == "" {
		return set, fmt.Errorf("StyleSet missing required name attribute: %w", ErrParse)
	}
	set.Description = el.SelectAttrValue("description", "")

	for _, child := range el.SelectElements("Include") {
		name := strings.TrimSpace(child.Text())
		if name == "" {
			return set, fmt.Errorf("style set %q: empty Include entry: %w", set.Name, ErrParse)
		}
		set.Included = append(set.Included, name)
	}
	if len(set.Included) == 0 {
		return set, fmt.Errorf("style set %q: at least one Include is required: %w", set.Name, ErrParse)
	}
	return set, nil
}

func parseIndentation(el *etree.Element, props *style.ParagraphProperties) error {
	if left := el.SelectAttrValue("left", ""); left != "" {
		v, err := parseLength("Indentation left", left)
		if err != nil {
			return err
		}
		props.IndentLeft = &v
	}
	if right := el.SelectAttrValue("right", ""); right != "" {
		v, err := parseLength("Indentation right", right)
		if err != nil {
			return err
		}
		props.IndentRight = &v
	}
	if firstLine := el.SelectAttrValue("firstLine", ""); firstLine != "" {
		v, err := parseLength("Indentation firstLine", firstLine)
		if err != nil {
			return err
		}
		props.FirstLineIndent = &v
	}
	return nil
}

func parseList(el *etree.Element, props *style.ParagraphProperties) error {
	switch typ := strings.ToLower(el.SelectAttrValue("type", "")); typ {
	case "bullet":
		props.ListType = style.Ptr(style.ListBullet)
	case "number":
		props.ListType = style.Ptr(style.ListNumber)
	case "":
		return fmt.Errorf("List missing required type attribute: %w", ErrParse)
	default:
		return fmt.Errorf("invalid List type %q: %w", typ, ErrParse)
	}
	if level := el.SelectAttrValue("level", ""); level != "" {
		v, err := strconv.Atoi(level)
		if err != nil {
			return fmt.Errorf("invalid List level %q: %w", level, ErrParse)
		}
		props.ListLevel = &v
	}
	return nil
}

func parseBorders(el *etree.Element, props *style.TableProperties) error {
	if bs := el.SelectAttrValue("style", ""); bs != "" {
		props.BorderStyle = &bs
	}
	if bw := el.SelectAttrValue("width", ""); bw != "" {
		v, err := parseLength("Borders width", bw)
		if err != nil {
			return err
		}
		props.BorderWidth = &v
	}
	if bc := el.SelectAttrValue("color", ""); bc != "" {
		hex, err := units.ParseColor(bc)
		if err != nil {
			return fmt.Errorf("invalid Borders color %q: %v: %w", bc, err, ErrParse)
		}
		props.BorderColor = &hex
	}
	return nil
}

func parseFormat(el *etree.Element) (style.Format, error) {
	var format style.Format
	flags := []struct {
		attr string
		bit  style.Format
	}{
		{"bold", style.FormatBold},
		{"italic", style.FormatItalic},
		{"underline", style.FormatUnderline},
		{"strikethrough", style.FormatStrikethrough},
		{"smallCaps", style.FormatSmallCaps},
		{"shadow", style.FormatShadow},
		{"subscript", style.FormatSubscript},
		{"superscript", style.FormatSuperscript},
	}
	for _, f := range flags {
		val := el.SelectAttrValue(f.attr, "")
		if val == "" {
			continue
		}
		on, err := strconv.ParseBool(val)
		if err != nil {
			return 0, fmt.Errorf("invalid Format %s value %q: %w", f.attr, val, ErrParse)
		}
		if on {
			format |= f.bit
		}
	}
	return format, nil
}

// parseLength wraps units.ParseLength with the element context.
func parseLength(what, text string) (float64, error) {
	v, err := units.ParseLength(strings.TrimSpace(text))
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %v: %w", what, text, err, ErrParse)
	}
	return v, nil
}

// parseLineSpacing accepts either a bare multiplier ("1.5") or a
// percentage ("150%").
func parseLineSpacing(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if strings.HasSuffix(text, "%") {
		v, err := units.ParsePercentage(text)
		if err != nil {
			return 0, fmt.Errorf("invalid LineSpacing %q: %v: %w", text, err, ErrParse)
		}
		return v, nil
	}
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid LineSpacing %q: %w", text, ErrParse)
	}
	return v, nil
}
