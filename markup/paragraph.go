package markup

import (
	"docstyle/style"

	"github.com/beevik/etree"
)

// Paragraph wraps a w:p element. Properties live in the w:pPr child,
// created on first write.
type Paragraph struct {
	el *etree.Element
}

// newParagraph wraps an existing w:p element.
func newParagraph(el *etree.Element) *Paragraph { return &Paragraph{el: el} }

// Element exposes the underlying markup node.
func (p *Paragraph) Element() *etree.Element { return p.el }

func (p *Paragraph) props() *etree.Element       { return childElement(p.el, "w:pPr") }
func (p *Paragraph) ensureProps() *etree.Element { return ensureChild(p.el, "w:pPr") }

// AddRun appends a run with the given text.
func (p *Paragraph) AddRun(text string) *Run {
	r := p.el.CreateElement("w:r")
	t := r.CreateElement("w:t")
	t.SetText(text)
	return newRun(r)
}

// Runs returns the paragraph's runs in document order.
func (p *Paragraph) Runs() []*Run {
	var runs []*Run
	for _, el := range p.el.SelectElements("w:r") {
		runs = append(runs, newRun(el))
	}
	return runs
}

// Text returns the concatenated text of all runs.
func (p *Paragraph) Text() string {
	var out string
	for _, r := range p.Runs() {
		out += r.Text()
	}
	return out
}

func (p *Paragraph) Alignment() (style.Alignment, bool) {
	jc := childElement(p.props(), "w:jc")
	if jc == nil {
		return 0, false
	}
	return style.ParseAlignment(jc.SelectAttrValue("w:val", ""))
}

func (p *Paragraph) SetAlignment(a style.Alignment) {
	jc := ensureChild(p.ensureProps(), "w:jc")
	jc.CreateAttr("w:val", a.String())
}

func (p *Paragraph) Spacing() (before, after float64, ok bool) {
	spacing := childElement(p.props(), "w:spacing")
	b, bok := attrInt(spacing, "w:before")
	a, aok := attrInt(spacing, "w:after")
	if !bok && !aok {
		return 0, 0, false
	}
	return fromTwips(b), fromTwips(a), true
}

func (p *Paragraph) SetSpacing(before, after float64) {
	spacing := ensureChild(p.ensureProps(), "w:spacing")
	setAttrInt(spacing, "w:before", toTwips(before))
	setAttrInt(spacing, "w:after", toTwips(after))
}

func (p *Paragraph) LineSpacing() (float64, bool) {
	spacing := childElement(p.props(), "w:spacing")
	line, ok := attrInt(spacing, "w:line")
	if !ok {
		return 0, false
	}
	return fromLineUnits(line), true
}

func (p *Paragraph) SetLineSpacing(mult float64) {
	spacing := ensureChild(p.ensureProps(), "w:spacing")
	setAttrInt(spacing, "w:line", toLineUnits(mult))
	spacing.CreateAttr("w:lineRule", "auto")
}

func (p *Paragraph) Indent() (left, right float64, ok bool) {
	ind := childElement(p.props(), "w:ind")
	l, lok := attrInt(ind, "w:left")
	r, rok := attrInt(ind, "w:right")
	if !lok && !rok {
		return 0, 0, false
	}
	return fromTwips(l), fromTwips(r), true
}

func (p *Paragraph) SetIndent(left, right float64) {
	ind := ensureChild(p.ensureProps(), "w:ind")
	setAttrInt(ind, "w:left", toTwips(left))
	setAttrInt(ind, "w:right", toTwips(right))
}

func (p *Paragraph) FirstLineIndent() (float64, bool) {
	ind := childElement(p.props(), "w:ind")
	fl, ok := attrInt(ind, "w:firstLine")
	if !ok {
		return 0, false
	}
	return fromTwips(fl), true
}

func (p *Paragraph) SetFirstLineIndent(v float64) {
	ind := ensureChild(p.ensureProps(), "w:ind")
	setAttrInt(ind, "w:firstLine", toTwips(v))
}

// List styles encode the kind in w:numId (1 bullet, 2 number) and the
// level in w:ilvl.
const (
	numIDBullet = 1
	numIDNumber = 2
)

func (p *Paragraph) ListStyle() (style.ListType, int, bool) {
	numPr := childElement(p.props(), "w:numPr")
	if numPr == nil {
		return 0, 0, false
	}
	numID, ok := attrInt(childElement(numPr, "w:numId"), "w:val")
	if !ok {
		return 0, 0, false
	}
	level, _ := attrInt(childElement(numPr, "w:ilvl"), "w:val")
	switch numID {
	case numIDBullet:
		return style.ListBullet, level, true
	case numIDNumber:
		return style.ListNumber, level, true
	default:
		return 0, 0, false
	}
}

func (p *Paragraph) SetListStyle(lt style.ListType, level int) {
	numPr := ensureChild(p.ensureProps(), "w:numPr")
	setAttrInt(ensureChild(numPr, "w:ilvl"), "w:val", level)
	numID := numIDBullet
	if lt == style.ListNumber {
		numID = numIDNumber
	}
	setAttrInt(ensureChild(numPr, "w:numId"), "w:val", numID)
}

// StyleRef returns the attached style reference name, or empty.
func (p *Paragraph) StyleRef() string {
	pStyle := childElement(p.props(), "w:pStyle")
	if pStyle == nil {
		return ""
	}
	return pStyle.SelectAttrValue("w:val", "")
}

func (p *Paragraph) SetStyleRef(name string) {
	pStyle := ensureChild(p.ensureProps(), "w:pStyle")
	pStyle.CreateAttr("w:val", name)
}

func (p *Paragraph) RemoveStyleRef() {
	removeChild(p.props(), "w:pStyle")
}
