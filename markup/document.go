package markup

import (
	"fmt"

	"github.com/beevik/etree"
	"go.uber.org/zap"

	"docstyle/style"
)

const documentNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Document is a minimal document body: paragraphs and tables in flow
// order, with table cells contributing their own paragraphs. It
// implements style.Document.
type Document struct {
	doc  *etree.Document
	body *etree.Element
	log  *zap.Logger
}

// NewDocument creates an empty document.
func NewDocument(log *zap.Logger) *Document {
	if log == nil {
		log = zap.NewNop()
	}
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)
	root := doc.CreateElement("w:document")
	root.CreateAttr("xmlns:w", documentNamespace)
	body := root.CreateElement("w:body")
	return &Document{doc: doc, body: body, log: log.Named("markup")}
}

// Load parses existing document markup.
func Load(text string, log *zap.Logger) (*Document, error) {
	if log == nil {
		log = zap.NewNop()
	}
	doc := etree.NewDocument()
	if err := doc.ReadFromString(text); err != nil {
		return nil, fmt.Errorf("reading document markup: %w", err)
	}
	root := doc.Root()
	if root == nil || root.Tag != "document" {
		return nil, fmt.Errorf("document markup has no w:document root")
	}
	body := root.SelectElement("w:body")
	if body == nil {
		return nil, fmt.Errorf("document markup has no w:body")
	}
	return &Document{doc: doc, body: body, log: log.Named("markup")}, nil
}

// AddParagraph appends a paragraph to the document body.
func (d *Document) AddParagraph() *Paragraph {
	return newParagraph(d.body.CreateElement("w:p"))
}

// AddTable appends a table with the given dimensions, each cell holding
// one empty paragraph.
func (d *Document) AddTable(rows, cols int) *Table {
	t := newTable(d.body.CreateElement("w:tbl"))
	t.ensureProps()
	for range rows {
		t.AddRow(cols)
	}
	return t
}

// paragraphs returns the body paragraphs plus every table cell paragraph,
// in flow order.
func (d *Document) paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range d.body.ChildElements() {
		switch el.Tag {
		case "p":
			paras = append(paras, newParagraph(el))
		case "tbl":
			for _, row := range newTable(el).Rows() {
				for _, cell := range row.Cells() {
					paras = append(paras, cell.Paragraphs()...)
				}
			}
		}
	}
	return paras
}

// Paragraphs returns every paragraph in the document, including table
// cell paragraphs.
func (d *Document) Paragraphs() []style.ParagraphElement {
	paras := d.paragraphs()
	out := make([]style.ParagraphElement, len(paras))
	for i, p := range paras {
		out[i] = p
	}
	return out
}

// Runs returns every run in the document.
func (d *Document) Runs() []style.RunElement {
	var out []style.RunElement
	for _, p := range d.paragraphs() {
		for _, r := range p.Runs() {
			out = append(out, r)
		}
	}
	return out
}

// Tables returns every table in the document body.
func (d *Document) Tables() []style.TableElement {
	var out []style.TableElement
	for _, el := range d.body.SelectElements("w:tbl") {
		out = append(out, newTable(el))
	}
	return out
}

// BodyParagraphs returns the typed body paragraphs (excluding table
// content) for callers composing documents.
func (d *Document) BodyParagraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range d.body.SelectElements("w:p") {
		paras = append(paras, newParagraph(el))
	}
	return paras
}

// BodyTables returns the typed tables for callers composing documents.
func (d *Document) BodyTables() []*Table {
	var tables []*Table
	for _, el := range d.body.SelectElements("w:tbl") {
		tables = append(tables, newTable(el))
	}
	return tables
}

// XML serializes the document markup with indentation.
func (d *Document) XML() (string, error) {
	d.doc.Indent(2)
	return d.doc.WriteToString()
}
