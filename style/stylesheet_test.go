package style

import (
	"testing"
)

func TestStylesheet(t *testing.T) {
	m := NewManager(nil)
	if err := m.LoadAllBuiltInStyles(); err != nil {
		t.Fatal(err)
	}

	doc := m.Stylesheet()
	root := doc.Root()
	if root == nil || root.Tag != "styles" {
		t.Fatalf("unexpected root %v", root)
	}
	if got := root.SelectAttrValue("xmlns:w", ""); got != markupNamespace {
		t.Fatalf("namespace %q", got)
	}

	children := root.ChildElements()
	if len(children) != 8 {
		t.Fatalf("expected 8 style blocks, got %d", len(children))
	}
	// Natural name order: Code before the headings, Normal last.
	first := children[0].SelectElement("w:name")
	if first == nil || first.SelectAttrValue("w:val", "") != "Code" {
		t.Fatalf("unexpected first style: %v", first)
	}
	last := children[len(children)-1].SelectElement("w:name")
	if last == nil || last.SelectAttrValue("w:val", "") != "Normal" {
		t.Fatalf("unexpected last style: %v", last)
	}
	for _, child := range children {
		if child.Tag != "style" {
			t.Fatalf("unexpected child element %q", child.Tag)
		}
		if child.SelectAttrValue("w:styleId", "") == "" {
			t.Fatal("style block without styleId")
		}
	}
}

func TestStylesheetEmpty(t *testing.T) {
	m := NewManager(nil)
	doc := m.Stylesheet()
	if root := doc.Root(); root == nil || len(root.ChildElements()) != 0 {
		t.Fatal("empty registry must serialize to an empty stylesheet")
	}
}
