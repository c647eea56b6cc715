package style

import (
	"errors"
	"testing"
)

func TestResolveParagraphChain(t *testing.T) {
	m := NewManager(nil)

	b, err := m.CreateParagraphStyle("Base")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetParagraphProperties(ParagraphProperties{
		SpaceBefore: Ptr(10.0),
		LineSpacing: Ptr(1.5),
	}); err != nil {
		t.Fatal(err)
	}

	d, err := m.CreateParagraphStyle("Derived")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetParagraphProperties(ParagraphProperties{
		SpaceBefore: Ptr(20.0),
		Alignment:   Ptr(AlignCenter),
	}); err != nil {
		t.Fatal(err)
	}
	if err := d.SetBaseStyle("Base"); err != nil {
		t.Fatal(err)
	}

	got, err := m.ResolveParagraphProperties("Derived", ParagraphProperties{})
	if err != nil {
		t.Fatal(err)
	}
	// The derived style wins over its base.
	if got.SpaceBefore == nil || *got.SpaceBefore != 20 {
		t.Fatalf("space before %v, want 20", got.SpaceBefore)
	}
	if got.Alignment == nil || *got.Alignment != AlignCenter {
		t.Fatalf("alignment %v, want center", got.Alignment)
	}
	// The base fills in what the derived style leaves unset.
	if got.LineSpacing == nil || *got.LineSpacing != 1.5 {
		t.Fatalf("line spacing %v, want 1.5 from base", got.LineSpacing)
	}
}

func TestResolveStartingBag(t *testing.T) {
	m := NewManager(nil)
	s, err := m.CreateParagraphStyle("Quote")
	if err != nil {
		t.Fatal(err)
	}
	if err := s.SetAlignment(AlignRight); err != nil {
		t.Fatal(err)
	}

	start := ParagraphProperties{
		Alignment:   Ptr(AlignLeft),
		SpaceBefore: Ptr(3.0),
	}
	got, err := m.ResolveParagraphProperties("Quote", start)
	if err != nil {
		t.Fatal(err)
	}
	if got.Alignment == nil || *got.Alignment != AlignRight {
		t.Fatalf("style must override the starting bag, alignment %v", got.Alignment)
	}
	if got.SpaceBefore == nil || *got.SpaceBefore != 3 {
		t.Fatalf("unset style fields must keep starting values, space before %v", got.SpaceBefore)
	}
	// The starting bag itself stays untouched.
	if *start.Alignment != AlignLeft {
		t.Fatal("resolution mutated the starting bag")
	}
}

func TestResolveUnknownStyle(t *testing.T) {
	m := NewManager(nil)
	start := ParagraphProperties{SpaceBefore: Ptr(4.0)}
	got, err := m.ResolveParagraphProperties("Ghost", start)
	if err != nil {
		t.Fatal(err)
	}
	if got.SpaceBefore == nil || *got.SpaceBefore != 4 {
		t.Fatalf("unknown style must return the starting bag, got %+v", got)
	}
	*got.SpaceBefore = 99
	if *start.SpaceBefore != 4 {
		t.Fatal("returned bag must not alias the starting bag")
	}
}

func TestResolveCycleDetection(t *testing.T) {
	m := NewManager(nil)
	a, err := m.CreateParagraphStyle("A")
	if err != nil {
		t.Fatal(err)
	}
	b, err := m.CreateParagraphStyle("B")
	if err != nil {
		t.Fatal(err)
	}
	c, err := m.CreateParagraphStyle("C")
	if err != nil {
		t.Fatal(err)
	}
	// A -> B -> C -> A
	if err := a.SetBaseStyle("B"); err != nil {
		t.Fatal(err)
	}
	if err := b.SetBaseStyle("C"); err != nil {
		t.Fatal(err)
	}
	if err := c.SetBaseStyle("A"); err != nil {
		t.Fatal(err)
	}

	if _, err := m.ResolveParagraphProperties("A", ParagraphProperties{}); !errors.Is(err, ErrInheritanceCycle) {
		t.Fatalf("expected ErrInheritanceCycle, got %v", err)
	}
	if _, err := m.ResolveCharacterProperties("B", CharacterProperties{}); !errors.Is(err, ErrInheritanceCycle) {
		t.Fatalf("expected ErrInheritanceCycle, got %v", err)
	}
}

func TestResolveCharacterChain(t *testing.T) {
	m := NewManager(nil)
	b, err := m.CreateCharacterStyle("BaseChar")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetFont("Georgia", 12); err != nil {
		t.Fatal(err)
	}
	d, err := m.CreateCharacterStyle("Strong")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetCharacterProperties(CharacterProperties{Format: Ptr(FormatBold)}); err != nil {
		t.Fatal(err)
	}
	if err := d.SetBaseStyle("BaseChar"); err != nil {
		t.Fatal(err)
	}

	got, err := m.ResolveCharacterProperties("Strong", CharacterProperties{})
	if err != nil {
		t.Fatal(err)
	}
	if got.FontName == nil || *got.FontName != "Georgia" {
		t.Fatalf("font %v, want Georgia from base", got.FontName)
	}
	if got.Format == nil || !got.Format.Has(FormatBold) {
		t.Fatal("bold from the derived style is missing")
	}
}

func TestResolveTableChain(t *testing.T) {
	m := NewManager(nil)
	b, err := m.CreateTableStyle("BaseTable")
	if err != nil {
		t.Fatal(err)
	}
	if err := b.SetTableProperties(TableProperties{BorderStyle: Ptr("single"), BorderWidth: Ptr(0.5)}); err != nil {
		t.Fatal(err)
	}
	d, err := m.CreateTableStyle("Fancy")
	if err != nil {
		t.Fatal(err)
	}
	if err := d.SetTableProperties(TableProperties{BorderWidth: Ptr(1.0)}); err != nil {
		t.Fatal(err)
	}
	if err := d.SetBaseStyle("BaseTable"); err != nil {
		t.Fatal(err)
	}

	got, err := m.ResolveTableProperties("Fancy", TableProperties{})
	if err != nil {
		t.Fatal(err)
	}
	if got.BorderStyle == nil || *got.BorderStyle != "single" {
		t.Fatalf("border style %v, want single from base", got.BorderStyle)
	}
	if got.BorderWidth == nil || *got.BorderWidth != 1.0 {
		t.Fatalf("border width %v, want 1 from derived", got.BorderWidth)
	}
}
