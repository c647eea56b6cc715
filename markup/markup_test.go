package markup

import (
	"strings"
	"testing"

	"docstyle/style"
)

func TestParagraphAccessors(t *testing.T) {
	doc := NewDocument(nil)
	p := doc.AddParagraph()

	if _, ok := p.Alignment(); ok {
		t.Fatal("new paragraph must have no alignment")
	}
	p.SetAlignment(style.AlignCenter)
	if a, ok := p.Alignment(); !ok || a != style.AlignCenter {
		t.Fatalf("alignment %v/%v", a, ok)
	}

	if _, _, ok := p.Spacing(); ok {
		t.Fatal("new paragraph must have no spacing")
	}
	p.SetSpacing(12, 6)
	if before, after, ok := p.Spacing(); !ok || before != 12 || after != 6 {
		t.Fatalf("spacing %v/%v/%v", before, after, ok)
	}

	p.SetLineSpacing(1.5)
	if ls, ok := p.LineSpacing(); !ok || ls != 1.5 {
		t.Fatalf("line spacing %v/%v", ls, ok)
	}

	p.SetIndent(36, 18)
	if left, right, ok := p.Indent(); !ok || left != 36 || right != 18 {
		t.Fatalf("indent %v/%v/%v", left, right, ok)
	}

	p.SetFirstLineIndent(18)
	if fl, ok := p.FirstLineIndent(); !ok || fl != 18 {
		t.Fatalf("first line indent %v/%v", fl, ok)
	}

	if _, _, ok := p.ListStyle(); ok {
		t.Fatal("new paragraph must have no list style")
	}
	p.SetListStyle(style.ListNumber, 2)
	if lt, level, ok := p.ListStyle(); !ok || lt != style.ListNumber || level != 2 {
		t.Fatalf("list style %v/%v/%v", lt, level, ok)
	}
}

func TestParagraphStyleRef(t *testing.T) {
	doc := NewDocument(nil)
	p := doc.AddParagraph()

	if ref := p.StyleRef(); ref != "" {
		t.Fatalf("unexpected ref %q", ref)
	}
	// Removing a ref from a paragraph without properties markup is a no-op.
	p.RemoveStyleRef()

	p.SetStyleRef("Heading 1")
	if ref := p.StyleRef(); ref != "Heading 1" {
		t.Fatalf("ref %q", ref)
	}
	p.SetStyleRef("Normal")
	if ref := p.StyleRef(); ref != "Normal" {
		t.Fatalf("ref after overwrite %q", ref)
	}
	p.RemoveStyleRef()
	if ref := p.StyleRef(); ref != "" {
		t.Fatalf("ref after removal %q", ref)
	}
}

func TestRunAccessors(t *testing.T) {
	doc := NewDocument(nil)
	r := doc.AddParagraph().AddRun("hello")

	if r.Text() != "hello" {
		t.Fatalf("text %q", r.Text())
	}
	r.SetText("world")
	if r.Text() != "world" {
		t.Fatalf("text %q", r.Text())
	}

	r.SetFontName("Courier New")
	if name, ok := r.FontName(); !ok || name != "Courier New" {
		t.Fatalf("font %q/%v", name, ok)
	}
	r.SetFontSize(10.5)
	if size, ok := r.FontSize(); !ok || size != 10.5 {
		t.Fatalf("size %v/%v", size, ok)
	}
	r.SetColor("404040")
	if c, ok := r.Color(); !ok || c != "404040" {
		t.Fatalf("color %q/%v", c, ok)
	}
	r.SetHighlight(style.HighlightYellow)
	if h, ok := r.Highlight(); !ok || h != style.HighlightYellow {
		t.Fatalf("highlight %v/%v", h, ok)
	}

	if f := r.Format(); f != 0 {
		t.Fatalf("unexpected format %v", f)
	}
	r.SetFormat(style.FormatBold | style.FormatUnderline | style.FormatSubscript)
	f := r.Format()
	if !f.Has(style.FormatBold) || !f.Has(style.FormatUnderline) || !f.Has(style.FormatSubscript) {
		t.Fatalf("format %v", f)
	}
	r.SetFormat(style.FormatItalic)
	f = r.Format()
	if !f.Has(style.FormatItalic) || f.Has(style.FormatBold) || f.Has(style.FormatSubscript) {
		t.Fatalf("format after rewrite %v", f)
	}
}

func TestTableAccessors(t *testing.T) {
	doc := NewDocument(nil)
	tbl := doc.AddTable(2, 3)

	rows := tbl.Rows()
	if len(rows) != 2 {
		t.Fatalf("rows %d", len(rows))
	}
	if cells := rows[0].Cells(); len(cells) != 3 {
		t.Fatalf("cells %d", len(cells))
	}

	tbl.SetWidth(400)
	if w, ok := tbl.Width(); !ok || w != 400 {
		t.Fatalf("width %v/%v", w, ok)
	}
	tbl.SetAlignment("center")
	if a, ok := tbl.Alignment(); !ok || a != "center" {
		t.Fatalf("alignment %q/%v", a, ok)
	}
	tbl.SetBorderStyle("single")
	tbl.SetBorderWidth(0.5)
	tbl.SetBorderColor("000000")
	if bs, ok := tbl.BorderStyle(); !ok || bs != "single" {
		t.Fatalf("border style %q/%v", bs, ok)
	}
	if bw, ok := tbl.BorderWidth(); !ok || bw != 0.5 {
		t.Fatalf("border width %v/%v", bw, ok)
	}
	if bc, ok := tbl.BorderColor(); !ok || bc != "000000" {
		t.Fatalf("border color %q/%v", bc, ok)
	}
	tbl.SetCellMargins(4)
	if cm, ok := tbl.CellMargins(); !ok || cm != 4 {
		t.Fatalf("cell margins %v/%v", cm, ok)
	}

	tbl.SetStyleRef("Grid")
	if ref := tbl.StyleRef(); ref != "Grid" {
		t.Fatalf("ref %q", ref)
	}
	tbl.RemoveStyleRef()
	if ref := tbl.StyleRef(); ref != "" {
		t.Fatalf("ref after removal %q", ref)
	}
}

func TestDocumentIteration(t *testing.T) {
	doc := NewDocument(nil)
	doc.AddParagraph().AddRun("one")
	tbl := doc.AddTable(1, 2)
	doc.AddParagraph().AddRun("two")

	// Body paragraphs plus one per table cell.
	if got := len(doc.Paragraphs()); got != 4 {
		t.Fatalf("paragraphs %d, want 4", got)
	}
	if got := len(doc.Runs()); got != 2 {
		t.Fatalf("runs %d, want 2", got)
	}
	if got := len(doc.Tables()); got != 1 {
		t.Fatalf("tables %d, want 1", got)
	}
	if got := len(doc.BodyParagraphs()); got != 2 {
		t.Fatalf("body paragraphs %d, want 2", got)
	}

	cell := tbl.Rows()[0].Cells()[0]
	cell.AddParagraph().AddRun("cell text")
	if got := len(doc.Paragraphs()); got != 5 {
		t.Fatalf("paragraphs after cell add %d, want 5", got)
	}
}

func TestLoad(t *testing.T) {
	doc := NewDocument(nil)
	p := doc.AddParagraph()
	p.AddRun("hello")
	p.SetStyleRef("Normal")
	text, err := doc.XML()
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Load(text, nil)
	if err != nil {
		t.Fatal(err)
	}
	paras := loaded.BodyParagraphs()
	if len(paras) != 1 {
		t.Fatalf("paragraphs %d", len(paras))
	}
	if paras[0].Text() != "hello" {
		t.Fatalf("text %q", paras[0].Text())
	}
	if ref := paras[0].StyleRef(); ref != "Normal" {
		t.Fatalf("ref %q", ref)
	}

	if _, err := Load("not xml", nil); err == nil {
		t.Fatal("expected error for malformed markup")
	}
	if _, err := Load("<other/>", nil); err == nil {
		t.Fatal("expected error for wrong root")
	}
	if _, err := Load(`<w:document xmlns:w="x"/>`, nil); err == nil {
		t.Fatal("expected error for missing body")
	}
}

func TestApplyStyleSetOverDocument(t *testing.T) {
	m := style.NewManager(nil)
	if err := m.LoadAllBuiltInStyles(); err != nil {
		t.Fatal(err)
	}
	grid, err := m.CreateTableStyle("Grid")
	if err != nil {
		t.Fatal(err)
	}
	if err := grid.SetTableProperties(style.TableProperties{
		BorderStyle: style.Ptr("single"),
		BorderWidth: style.Ptr(0.5),
	}); err != nil {
		t.Fatal(err)
	}
	if err := m.RegisterStyleSet(style.StyleSet{
		Name:     "Report",
		Included: []string{"Grid", "Normal", "Code"},
	}); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument(nil)
	heading := doc.AddParagraph()
	heading.AddRun("Title")
	heading.SetStyleRef("Heading 1")
	body := doc.AddParagraph()
	body.AddRun("Some text.")
	doc.AddTable(1, 1)

	if err := m.ApplyStyleSet("Report", doc); err != nil {
		t.Fatal(err)
	}

	if ref := heading.StyleRef(); ref != "Heading 1" {
		t.Fatalf("styled paragraph overwritten: %q", ref)
	}
	if ref := body.StyleRef(); ref != "Normal" {
		t.Fatalf("body paragraph ref %q, want Normal", ref)
	}
	// The Normal style properties landed on the paragraph markup.
	if before, after, ok := body.Spacing(); !ok || before != 0 || after != 6 {
		t.Fatalf("body spacing %v/%v/%v", before, after, ok)
	}
	tbl := doc.BodyTables()[0]
	if ref := tbl.StyleRef(); ref != "Grid" {
		t.Fatalf("table ref %q, want Grid", ref)
	}
	if bs, ok := tbl.BorderStyle(); !ok || bs != "single" {
		t.Fatalf("table border %q/%v", bs, ok)
	}

	run := body.Runs()[0]
	if ref := run.StyleRef(); ref != "Code" {
		t.Fatalf("run ref %q, want Code", ref)
	}
	if name, ok := run.FontName(); !ok || name != "Courier New" {
		t.Fatalf("run font %q/%v", name, ok)
	}

	text, err := doc.XML()
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"w:pStyle", "w:rStyle", "w:tblStyle", "Courier New"} {
		if !strings.Contains(text, want) {
			t.Fatalf("serialized markup missing %s:\n%s", want, text)
		}
	}
}

func TestEffectivePropertiesOverDocument(t *testing.T) {
	m := style.NewManager(nil)
	if err := m.LoadAllBuiltInStyles(); err != nil {
		t.Fatal(err)
	}

	doc := NewDocument(nil)
	p := doc.AddParagraph()
	p.SetStyleRef("Heading 2")

	run := p.AddRun("text")
	run.SetStyleRef("Code")
	run.SetFontSize(9)

	got, err := m.EffectiveCharacterProperties(run)
	if err != nil {
		t.Fatal(err)
	}
	if got.FontName == nil || *got.FontName != "Courier New" {
		t.Fatalf("font %v, want Courier New from style", got.FontName)
	}
	if got.Color == nil || *got.Color != "404040" {
		t.Fatalf("color %v", got.Color)
	}
}
