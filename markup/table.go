package markup

import (
	"math"

	"github.com/beevik/etree"
)

// Table wraps a w:tbl element. Properties live in the w:tblPr child.
type Table struct {
	el *etree.Element
}

func newTable(el *etree.Element) *Table { return &Table{el: el} }

// Element exposes the underlying markup node.
func (t *Table) Element() *etree.Element { return t.el }

func (t *Table) props() *etree.Element       { return childElement(t.el, "w:tblPr") }
func (t *Table) ensureProps() *etree.Element { return ensureChild(t.el, "w:tblPr") }

// Row is a single w:tr.
type Row struct {
	el *etree.Element
}

// Cell is a single w:tc; its content is paragraphs.
type Cell struct {
	el *etree.Element
}

// AddRow appends a row with the given number of cells, each holding one
// empty paragraph.
func (t *Table) AddRow(cells int) *Row {
	tr := t.el.CreateElement("w:tr")
	row := &Row{el: tr}
	for range cells {
		tc := tr.CreateElement("w:tc")
		tc.CreateElement("w:p")
	}
	return row
}

// Rows returns the table rows in order.
func (t *Table) Rows() []*Row {
	var rows []*Row
	for _, el := range t.el.SelectElements("w:tr") {
		rows = append(rows, &Row{el: el})
	}
	return rows
}

// Cells returns the row cells in order.
func (r *Row) Cells() []*Cell {
	var cells []*Cell
	for _, el := range r.el.SelectElements("w:tc") {
		cells = append(cells, &Cell{el: el})
	}
	return cells
}

// Paragraphs returns the cell's paragraphs.
func (c *Cell) Paragraphs() []*Paragraph {
	var paras []*Paragraph
	for _, el := range c.el.SelectElements("w:p") {
		paras = append(paras, newParagraph(el))
	}
	return paras
}

// AddParagraph appends a paragraph to the cell.
func (c *Cell) AddParagraph() *Paragraph {
	return newParagraph(c.el.CreateElement("w:p"))
}

func (t *Table) Width() (float64, bool) {
	w, ok := attrInt(childElement(t.props(), "w:tblW"), "w:w")
	if !ok {
		return 0, false
	}
	return fromTwips(w), true
}

func (t *Table) SetWidth(pt float64) {
	w := ensureChild(t.ensureProps(), "w:tblW")
	setAttrInt(w, "w:w", toTwips(pt))
	w.CreateAttr("w:type", "dxa")
}

func (t *Table) Alignment() (string, bool) {
	jc := childElement(t.props(), "w:jc")
	if jc == nil {
		return "", false
	}
	val := jc.SelectAttrValue("w:val", "")
	return val, val != ""
}

func (t *Table) SetAlignment(name string) {
	ensureChild(t.ensureProps(), "w:jc").CreateAttr("w:val", name)
}

// Borders are uniform around the table; the top side is authoritative on
// read.
func (t *Table) borders() *etree.Element {
	return childElement(t.props(), "w:tblBorders")
}

func (t *Table) setBorderAttr(key, val string) {
	borders := ensureChild(t.ensureProps(), "w:tblBorders")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right"} {
		ensureChild(borders, side).CreateAttr(key, val)
	}
}

func (t *Table) BorderStyle() (string, bool) {
	top := childElement(t.borders(), "w:top")
	if top == nil {
		return "", false
	}
	val := top.SelectAttrValue("w:val", "")
	return val, val != ""
}

func (t *Table) SetBorderStyle(name string) {
	t.setBorderAttr("w:val", name)
}

func (t *Table) BorderWidth() (float64, bool) {
	// Border widths use eighths of a point.
	sz, ok := attrInt(childElement(t.borders(), "w:top"), "w:sz")
	if !ok {
		return 0, false
	}
	return float64(sz) / 8, true
}

func (t *Table) SetBorderWidth(pt float64) {
	eighths := int(math.Round(pt * 8))
	borders := ensureChild(t.ensureProps(), "w:tblBorders")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right"} {
		setAttrInt(ensureChild(borders, side), "w:sz", eighths)
	}
}

func (t *Table) BorderColor() (string, bool) {
	top := childElement(t.borders(), "w:top")
	if top == nil {
		return "", false
	}
	val := top.SelectAttrValue("w:color", "")
	return val, val != ""
}

func (t *Table) SetBorderColor(hex string) {
	t.setBorderAttr("w:color", hex)
}

func (t *Table) CellMargins() (float64, bool) {
	mar := childElement(t.props(), "w:tblCellMar")
	w, ok := attrInt(childElement(mar, "w:top"), "w:w")
	if !ok {
		return 0, false
	}
	return fromTwips(w), true
}

func (t *Table) SetCellMargins(pt float64) {
	mar := ensureChild(t.ensureProps(), "w:tblCellMar")
	for _, side := range []string{"w:top", "w:left", "w:bottom", "w:right"} {
		m := ensureChild(mar, side)
		setAttrInt(m, "w:w", toTwips(pt))
		m.CreateAttr("w:type", "dxa")
	}
}

// StyleRef returns the attached style reference name, or empty.
func (t *Table) StyleRef() string {
	tblStyle := childElement(t.props(), "w:tblStyle")
	if tblStyle == nil {
		return ""
	}
	return tblStyle.SelectAttrValue("w:val", "")
}

func (t *Table) SetStyleRef(name string) {
	ensureChild(t.ensureProps(), "w:tblStyle").CreateAttr("w:val", name)
}

func (t *Table) RemoveStyleRef() {
	removeChild(t.props(), "w:tblStyle")
}
