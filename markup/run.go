package markup

import (
	"docstyle/style"

	"github.com/beevik/etree"
)

// Run wraps a w:r element. Properties live in the w:rPr child, created on
// first write.
type Run struct {
	el *etree.Element
}

func newRun(el *etree.Element) *Run { return &Run{el: el} }

// Element exposes the underlying markup node.
func (r *Run) Element() *etree.Element { return r.el }

func (r *Run) props() *etree.Element       { return childElement(r.el, "w:rPr") }
func (r *Run) ensureProps() *etree.Element { return ensureChild(r.el, "w:rPr") }

// Text returns the run text.
func (r *Run) Text() string {
	if t := childElement(r.el, "w:t"); t != nil {
		return t.Text()
	}
	return ""
}

// SetText replaces the run text.
func (r *Run) SetText(text string) {
	ensureChild(r.el, "w:t").SetText(text)
}

func (r *Run) FontName() (string, bool) {
	fonts := childElement(r.props(), "w:rFonts")
	if fonts == nil {
		return "", false
	}
	name := fonts.SelectAttrValue("w:ascii", "")
	return name, name != ""
}

func (r *Run) SetFontName(name string) {
	fonts := ensureChild(r.ensureProps(), "w:rFonts")
	fonts.CreateAttr("w:ascii", name)
	fonts.CreateAttr("w:hAnsi", name)
}

func (r *Run) FontSize() (float64, bool) {
	sz, ok := attrInt(childElement(r.props(), "w:sz"), "w:val")
	if !ok {
		return 0, false
	}
	return fromHalfPoints(sz), true
}

func (r *Run) SetFontSize(pt float64) {
	setAttrInt(ensureChild(r.ensureProps(), "w:sz"), "w:val", toHalfPoints(pt))
}

func (r *Run) Color() (string, bool) {
	color := childElement(r.props(), "w:color")
	if color == nil {
		return "", false
	}
	val := color.SelectAttrValue("w:val", "")
	return val, val != ""
}

func (r *Run) SetColor(hex string) {
	ensureChild(r.ensureProps(), "w:color").CreateAttr("w:val", hex)
}

func (r *Run) Highlight() (style.Highlight, bool) {
	hl := childElement(r.props(), "w:highlight")
	if hl == nil {
		return 0, false
	}
	return style.ParseHighlight(hl.SelectAttrValue("w:val", ""))
}

func (r *Run) SetHighlight(h style.Highlight) {
	ensureChild(r.ensureProps(), "w:highlight").CreateAttr("w:val", h.String())
}

// Format returns the run's direct formatting flags read from the
// properties markup.
func (r *Run) Format() style.Format {
	props := r.props()
	if props == nil {
		return 0
	}
	var f style.Format
	if childElement(props, "w:b") != nil {
		f |= style.FormatBold
	}
	if childElement(props, "w:i") != nil {
		f |= style.FormatItalic
	}
	if childElement(props, "w:u") != nil {
		f |= style.FormatUnderline
	}
	if childElement(props, "w:strike") != nil {
		f |= style.FormatStrikethrough
	}
	if childElement(props, "w:smallCaps") != nil {
		f |= style.FormatSmallCaps
	}
	if childElement(props, "w:shadow") != nil {
		f |= style.FormatShadow
	}
	if va := childElement(props, "w:vertAlign"); va != nil {
		switch va.SelectAttrValue("w:val", "") {
		case "subscript":
			f |= style.FormatSubscript
		case "superscript":
			f |= style.FormatSuperscript
		}
	}
	return f
}

// SetFormat rewrites the run's direct formatting flags. Not part of the
// style application surface - used when composing content.
func (r *Run) SetFormat(f style.Format) {
	props := r.ensureProps()
	set := func(tag string, on bool) {
		if on {
			ensureChild(props, tag)
		} else {
			removeChild(props, tag)
		}
	}
	set("w:b", f.Has(style.FormatBold))
	set("w:i", f.Has(style.FormatItalic))
	set("w:strike", f.Has(style.FormatStrikethrough))
	set("w:smallCaps", f.Has(style.FormatSmallCaps))
	set("w:shadow", f.Has(style.FormatShadow))
	if f.Has(style.FormatUnderline) {
		ensureChild(props, "w:u").CreateAttr("w:val", "single")
	} else {
		removeChild(props, "w:u")
	}
	switch {
	case f.Has(style.FormatSubscript):
		ensureChild(props, "w:vertAlign").CreateAttr("w:val", "subscript")
	case f.Has(style.FormatSuperscript):
		ensureChild(props, "w:vertAlign").CreateAttr("w:val", "superscript")
	default:
		removeChild(props, "w:vertAlign")
	}
}

// StyleRef returns the attached style reference name, or empty.
func (r *Run) StyleRef() string {
	rStyle := childElement(r.props(), "w:rStyle")
	if rStyle == nil {
		return ""
	}
	return rStyle.SelectAttrValue("w:val", "")
}

func (r *Run) SetStyleRef(name string) {
	ensureChild(r.ensureProps(), "w:rStyle").CreateAttr("w:val", name)
}

func (r *Run) RemoveStyleRef() {
	removeChild(r.props(), "w:rStyle")
}
