package style

import "github.com/beevik/etree"

// Namespace of serialized stylesheet markup.
const markupNamespace = "http://schemas.openxmlformats.org/wordprocessingml/2006/main"

// Stylesheet serializes every registered style into a persistable
// stylesheet document. Styles are emitted in natural name order so output
// is deterministic and "Heading 2" precedes "Heading 10".
func (m *Manager) Stylesheet() *etree.Document {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	root := doc.CreateElement("w:styles")
	root.CreateAttr("xmlns:w", markupNamespace)

	for _, name := range m.Names() {
		s := m.styles[name]
		root.AddChild(s.ToMarkup())
	}
	return doc
}
