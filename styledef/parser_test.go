package styledef

import (
	"errors"
	"fmt"
	"reflect"
	"testing"

	"docstyle/style"
)

func definition(body string) string {
	return fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<StyleSheet xmlns="urn:docstyle:stylesheet:1.0" version="1.0">
%s
</StyleSheet>`, body)
}

func TestParseStyle(t *testing.T) {
	text := definition(`
  <Style name="Fancy" type="mixed" base="Normal">
    <Paragraph>
      <Alignment>center</Alignment>
      <SpaceBefore>12pt</SpaceBefore>
      <SpaceAfter>16px</SpaceAfter>
      <LineSpacing>150%</LineSpacing>
      <Indentation left="36pt" firstLine="18pt"/>
    </Paragraph>
    <Character>
      <Font name="Arial" size="18pt"/>
      <Color>#000080</Color>
      <Format bold="true" underline="false"/>
    </Character>
  </Style>`)

	p := NewParser(nil)
	styles, err := p.LoadStylesFromString(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(styles) != 1 {
		t.Fatalf("expected 1 style, got %d", len(styles))
	}
	s := styles[0]
	if s.Name() != "Fancy" || s.Type() != style.TypeMixed || s.BaseStyle() != "Normal" {
		t.Fatalf("unexpected style %q/%s base %q", s.Name(), s.Type(), s.BaseStyle())
	}

	pp := s.ParagraphProperties()
	if pp.Alignment == nil || *pp.Alignment != style.AlignCenter {
		t.Fatalf("alignment %v", pp.Alignment)
	}
	if pp.SpaceBefore == nil || *pp.SpaceBefore != 12 {
		t.Fatalf("space before %v", pp.SpaceBefore)
	}
	// Pixels convert at 0.75pt per px.
	if pp.SpaceAfter == nil || *pp.SpaceAfter != 12 {
		t.Fatalf("space after %v", pp.SpaceAfter)
	}
	if pp.LineSpacing == nil || *pp.LineSpacing != 1.5 {
		t.Fatalf("line spacing %v", pp.LineSpacing)
	}
	if pp.IndentLeft == nil || *pp.IndentLeft != 36 {
		t.Fatalf("indent left %v", pp.IndentLeft)
	}
	if pp.FirstLineIndent == nil || *pp.FirstLineIndent != 18 {
		t.Fatalf("first line indent %v", pp.FirstLineIndent)
	}
	if pp.IndentRight != nil {
		t.Fatal("indent right must stay unset")
	}

	cp := s.CharacterProperties()
	if cp.FontName == nil || *cp.FontName != "Arial" {
		t.Fatalf("font %v", cp.FontName)
	}
	if cp.FontSize == nil || *cp.FontSize != 18 {
		t.Fatalf("size %v", cp.FontSize)
	}
	if cp.Color == nil || *cp.Color != "000080" {
		t.Fatalf("color %v", cp.Color)
	}
	if cp.Format == nil || !cp.Format.Has(style.FormatBold) {
		t.Fatal("bold must be set")
	}
	if cp.Format.Has(style.FormatUnderline) || cp.Format.Has(style.FormatItalic) {
		t.Fatal("underline and italic must be clear")
	}
}

func TestParseTableStyle(t *testing.T) {
	text := definition(`
  <Style name="Grid" type="table">
    <Table>
      <Width>400pt</Width>
      <Alignment>center</Alignment>
      <Borders style="single" width="0.5pt" color="#808080"/>
      <CellPadding>4pt</CellPadding>
    </Table>
  </Style>`)

	styles, err := NewParser(nil).LoadStylesFromString(text)
	if err != nil {
		t.Fatal(err)
	}
	tp := styles[0].TableProperties()
	if tp.Width == nil || *tp.Width != 400 {
		t.Fatalf("width %v", tp.Width)
	}
	if tp.Alignment == nil || *tp.Alignment != "center" {
		t.Fatalf("alignment %v", tp.Alignment)
	}
	if tp.BorderStyle == nil || *tp.BorderStyle != "single" {
		t.Fatalf("border style %v", tp.BorderStyle)
	}
	if tp.BorderWidth == nil || *tp.BorderWidth != 0.5 {
		t.Fatalf("border width %v", tp.BorderWidth)
	}
	if tp.BorderColor == nil || *tp.BorderColor != "808080" {
		t.Fatalf("border color %v", tp.BorderColor)
	}
	if tp.CellPadding == nil || *tp.CellPadding != 4 {
		t.Fatalf("cell padding %v", tp.CellPadding)
	}
}

func TestParseListParagraph(t *testing.T) {
	text := definition(`
  <Style name="Bullets" type="paragraph">
    <Paragraph>
      <List type="bullet" level="1"/>
    </Paragraph>
  </Style>`)

	styles, err := NewParser(nil).LoadStylesFromString(text)
	if err != nil {
		t.Fatal(err)
	}
	pp := styles[0].ParagraphProperties()
	if pp.ListType == nil || *pp.ListType != style.ListBullet {
		t.Fatalf("list type %v", pp.ListType)
	}
	if pp.ListLevel == nil || *pp.ListLevel != 1 {
		t.Fatalf("list level %v", pp.ListLevel)
	}
}

func TestParseStyleSet(t *testing.T) {
	text := definition(`
  <Style name="Body" type="paragraph"/>
  <StyleSet name="Report" description="report defaults">
    <Include>Body</Include>
    <Include>Heading 1</Include>
  </StyleSet>`)

	p := NewParser(nil)
	sets, err := p.LoadStyleSetsFromString(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(sets) != 1 {
		t.Fatalf("expected 1 set, got %d", len(sets))
	}
	set := sets[0]
	if set.Name != "Report" || set.Description != "report defaults" {
		t.Fatalf("unexpected set %+v", set)
	}
	if !reflect.DeepEqual(set.Included, []string{"Body", "Heading 1"}) {
		t.Fatalf("included %v", set.Included)
	}

	// The same document also yields the Style definitions.
	styles, err := p.LoadStylesFromString(text)
	if err != nil {
		t.Fatal(err)
	}
	if len(styles) != 1 || styles[0].Name() != "Body" {
		t.Fatalf("unexpected styles %v", styles)
	}
}

func TestParseRootValidation(t *testing.T) {
	cases := []struct {
		name, text string
	}{
		{"wrong root", `<Styles xmlns="urn:docstyle:stylesheet:1.0" version="1.0"/>`},
		{"bad namespace", `<StyleSheet xmlns="urn:other:1.0" version="1.0"/>`},
		{"missing namespace", `<StyleSheet version="1.0"/>`},
		{"bad version", `<StyleSheet xmlns="urn:docstyle:stylesheet:1.0" version="2.0"/>`},
		{"missing version", `<StyleSheet xmlns="urn:docstyle:stylesheet:1.0"/>`},
	}
	p := NewParser(nil)
	for _, c := range cases {
		if _, err := p.LoadStylesFromString(c.text); !errors.Is(err, ErrParse) {
			t.Fatalf("%s: expected ErrParse, got %v", c.name, err)
		}
	}
}

func TestParseStyleErrors(t *testing.T) {
	cases := []struct {
		name, body string
	}{
		{"missing name", `<Style type="paragraph"/>`},
		{"missing type", `<Style name="X"/>`},
		{"unknown type", `<Style name="X" type="banner"/>`},
		{"self base", `<Style name="X" type="paragraph" base="X"/>`},
		{"bad alignment", `<Style name="X" type="paragraph"><Paragraph><Alignment>sideways</Alignment></Paragraph></Style>`},
		{"bad length", `<Style name="X" type="paragraph"><Paragraph><SpaceBefore>fat</SpaceBefore></Paragraph></Style>`},
		{"bad color", `<Style name="X" type="character"><Character><Color>#12345</Color></Character></Style>`},
		{"bad format flag", `<Style name="X" type="character"><Character><Format bold="sometimes"/></Character></Style>`},
		{"bag on wrong type", `<Style name="X" type="character"><Paragraph><Alignment>center</Alignment></Paragraph></Style>`},
		{"list without type", `<Style name="X" type="paragraph"><Paragraph><List level="1"/></Paragraph></Style>`},
	}
	p := NewParser(nil)
	for _, c := range cases {
		if _, err := p.LoadStylesFromString(definition(c.body)); !errors.Is(err, ErrParse) {
			t.Fatalf("%s: expected ErrParse, got %v", c.name, err)
		}
	}
}

func TestParseStyleSetErrors(t *testing.T) {
	cases := []struct {
		name, body string
	}{
		{"missing name", `<StyleSet><Include>Body</Include></StyleSet>`},
		{"no includes", `<StyleSet name="Empty"/>`},
		{"empty include", `<StyleSet name="X"><Include>  </Include></StyleSet>`},
	}
	p := NewParser(nil)
	for _, c := range cases {
		if _, err := p.LoadStyleSetsFromString(definition(c.body)); !errors.Is(err, ErrParse) {
			t.Fatalf("%s: expected ErrParse, got %v", c.name, err)
		}
	}
}
