package style

// Collaborator interfaces over the document element hierarchy. The element
// implementation lives outside this package (see the markup package); the
// manager only needs the get/set capability subset below. Getters report
// whether the attribute is present in the element's direct markup so that
// "unset" stays distinct from a zero value.

// ParagraphElement is the capability set of a paragraph-like element.
type ParagraphElement interface {
	Alignment() (Alignment, bool)
	SetAlignment(Alignment)
	Spacing() (before, after float64, ok bool)
	SetSpacing(before, after float64)
	LineSpacing() (float64, bool)
	SetLineSpacing(float64)
	Indent() (left, right float64, ok bool)
	SetIndent(left, right float64)
	FirstLineIndent() (float64, bool)
	SetFirstLineIndent(float64)
	ListStyle() (ListType, int, bool)
	SetListStyle(ListType, int)

	StyleRef() string
	SetStyleRef(string)
	RemoveStyleRef()
}

// RunElement is the capability set of a run-like element. The formatting
// bitmask is read-only: direct bold/italic/... flags are element content,
// not style-applied state.
type RunElement interface {
	FontName() (string, bool)
	SetFontName(string)
	FontSize() (float64, bool)
	SetFontSize(float64)
	Color() (string, bool)
	SetColor(string)
	Highlight() (Highlight, bool)
	SetHighlight(Highlight)
	Format() Format

	StyleRef() string
	SetStyleRef(string)
	RemoveStyleRef()
}

// TableElement is the capability set of a table-like element.
type TableElement interface {
	Width() (float64, bool)
	SetWidth(float64)
	Alignment() (string, bool)
	SetAlignment(string)
	BorderStyle() (string, bool)
	SetBorderStyle(string)
	BorderWidth() (float64, bool)
	SetBorderWidth(float64)
	BorderColor() (string, bool)
	SetBorderColor(string)
	CellMargins() (float64, bool)
	SetCellMargins(float64)

	StyleRef() string
	SetStyleRef(string)
	RemoveStyleRef()
}

// Document is the whole-document iteration capability used by style-set
// and mapping application. Paragraphs and runs inside tables are included
// in the respective iterations.
type Document interface {
	Paragraphs() []ParagraphElement
	Runs() []RunElement
	Tables() []TableElement
}
