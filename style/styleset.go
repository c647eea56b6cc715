package style

import (
	"fmt"
	"sort"
	"strings"

	"github.com/maruel/natural"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// StyleSet is a named, ordered collection of style names for bulk
// application over a whole document. Included names are references, not
// owned styles; a member removed from the registry after registration
// makes the set fail at application time.
type StyleSet struct {
	Name        string
	Description string
	Included    []string
}

// RegisterStyleSet validates and stores a style set. Every included name
// must already be registered.
func (m *Manager) RegisterStyleSet(set StyleSet) error {
	if err := validateName(set.Name); err != nil {
		return fmt.Errorf("register style set: %w", err)
	}
	if _, exists := m.sets[set.Name]; exists {
		return fmt.Errorf("register style set %q: %w", set.Name, ErrStyleExists)
	}
	if len(set.Included) == 0 {
		return fmt.Errorf("register style set %q: no included styles: %w", set.Name, ErrValidation)
	}
	for _, name := range set.Included {
		if !m.Has(name) {
			return fmt.Errorf("register style set %q: included style %q: %w", set.Name, name, ErrDependencyMissing)
		}
	}
	stored := StyleSet{
		Name:        set.Name,
		Description: set.Description,
		Included:    append([]string(nil), set.Included...),
	}
	m.sets[set.Name] = &stored
	m.log.Debug("Registered style set", zap.String("name", set.Name), zap.Int("styles", len(set.Included)))
	return nil
}

// StyleSet returns a copy of the registered style set by name.
func (m *Manager) StyleSet(name string) (StyleSet, bool) {
	set, ok := m.sets[name]
	if !ok {
		return StyleSet{}, false
	}
	return StyleSet{
		Name:        set.Name,
		Description: set.Description,
		Included:    append([]string(nil), set.Included...),
	}, true
}

// StyleSetNames returns all registered style set names in natural order.
func (m *Manager) StyleSetNames() []string {
	names := make([]string, 0, len(m.sets))
	for name := range m.sets {
		names = append(names, name)
	}
	sort.Sort(natural.StringSlice(names))
	return names
}

// ApplyStyleSet applies every style of the named set over the document in
// three phases: table styles go to every table unconditionally, paragraph
// styles only to paragraphs without a style reference, character styles
// only to runs without a style reference. Application is best-effort:
// per-element failures are collected and do not stop the pass, and
// already-styled elements are never rolled back.
func (m *Manager) ApplyStyleSet(name string, doc Document) error {
	set, ok := m.sets[name]
	if !ok {
		return fmt.Errorf("apply style set %q: %w", name, ErrStyleNotFound)
	}

	// Resolve every member up front: a style removed since registration
	// is an error before anything is touched.
	var tableStyles, paraStyles, charStyles []*Style
	for _, styleName := range set.Included {
		s, ok := m.Get(styleName)
		if !ok {
			return fmt.Errorf("apply style set %q: included style %q no longer registered: %w", name, styleName, ErrDependencyMissing)
		}
		switch {
		case s.typ.holdsTable():
			tableStyles = append(tableStyles, s)
		case s.typ.holdsParagraph():
			paraStyles = append(paraStyles, s)
		case s.typ.holdsCharacter():
			charStyles = append(charStyles, s)
		}
	}

	var errs error

	// Phase 1: table styles, most structural, applied unconditionally.
	for _, s := range tableStyles {
		for _, table := range doc.Tables() {
			if err := m.safeApplyTable(table, s.name); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	// Phase 2: paragraph styles, skipping already-styled paragraphs.
	for _, s := range paraStyles {
		for _, para := range doc.Paragraphs() {
			if para.StyleRef() != "" {
				continue
			}
			if err := m.safeApplyParagraph(para, s.name); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	// Phase 3: character styles, skipping already-styled runs.
	for _, s := range charStyles {
		for _, run := range doc.Runs() {
			if run.StyleRef() != "" {
				continue
			}
			if err := m.safeApplyRun(run, s.name); err != nil {
				errs = multierr.Append(errs, err)
			}
		}
	}

	if errs != nil {
		return fmt.Errorf("apply style set %q: %w", name, errs)
	}
	m.log.Debug("Applied style set", zap.String("name", name))
	return nil
}

// StyleMapping binds a content pattern to a style name for
// ApplyStyleMappings.
type StyleMapping struct {
	Pattern string
	Style   string
}

// ApplyStyleMappings applies styles to content matched by a fixed pattern
// vocabulary: "heading1"/"h1".."heading6"/"h6" (paragraphs carrying that
// heading style), "heading*"/"h*" (any heading level), "table"/"tables"
// (all tables), "normal"/"body" (paragraphs without a style reference),
// "code" (runs and paragraphs styled "Code"), or an exact current
// style-name match. Any unknown style name fails the whole call before
// content is touched; per-element failures are collected best-effort.
func (m *Manager) ApplyStyleMappings(doc Document, mappings []StyleMapping) error {
	for _, mp := range mappings {
		if !m.Has(mp.Style) {
			return fmt.Errorf("apply style mappings: style %q: %w", mp.Style, ErrStyleNotFound)
		}
	}

	var errs error
	for _, mp := range mappings {
		if err := m.applyMapping(doc, mp); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	if errs != nil {
		return fmt.Errorf("apply style mappings: %w", errs)
	}
	return nil
}

func (m *Manager) applyMapping(doc Document, mp StyleMapping) error {
	s, _ := m.Get(mp.Style)
	pattern := strings.ToLower(strings.TrimSpace(mp.Pattern))

	var errs error
	applyToParagraph := func(para ParagraphElement) {
		if !s.typ.holdsParagraph() {
			errs = multierr.Append(errs, fmt.Errorf("mapping %q: style %q cannot format paragraphs: %w", mp.Pattern, mp.Style, ErrPropertyInvalid))
			return
		}
		if err := m.safeApplyParagraph(para, s.name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	applyToRun := func(run RunElement) {
		if !s.typ.holdsCharacter() {
			errs = multierr.Append(errs, fmt.Errorf("mapping %q: style %q cannot format runs: %w", mp.Pattern, mp.Style, ErrPropertyInvalid))
			return
		}
		if err := m.safeApplyRun(run, s.name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	applyToTable := func(table TableElement) {
		if !s.typ.holdsTable() {
			errs = multierr.Append(errs, fmt.Errorf("mapping %q: style %q cannot format tables: %w", mp.Pattern, mp.Style, ErrPropertyInvalid))
			return
		}
		if err := m.safeApplyTable(table, s.name); err != nil {
			errs = multierr.Append(errs, err)
		}
	}

	switch {
	case pattern == "table" || pattern == "tables":
		for _, table := range doc.Tables() {
			applyToTable(table)
		}

	case pattern == "normal" || pattern == "body":
		for _, para := range doc.Paragraphs() {
			if para.StyleRef() == "" {
				applyToParagraph(para)
			}
		}

	case pattern == "code":
		for _, para := range doc.Paragraphs() {
			if strings.EqualFold(para.StyleRef(), "Code") {
				applyToParagraph(para)
			}
		}
		for _, run := range doc.Runs() {
			if strings.EqualFold(run.StyleRef(), "Code") {
				applyToRun(run)
			}
		}

	case pattern == "heading*" || pattern == "h*":
		for _, para := range doc.Paragraphs() {
			if headingLevel(para.StyleRef()) > 0 {
				applyToParagraph(para)
			}
		}

	case headingPattern(pattern) > 0:
		level := headingPattern(pattern)
		for _, para := range doc.Paragraphs() {
			if headingLevel(para.StyleRef()) == level {
				applyToParagraph(para)
			}
		}

	default:
		// Exact current-style-name match across all content kinds.
		for _, para := range doc.Paragraphs() {
			if strings.EqualFold(para.StyleRef(), mp.Pattern) {
				applyToParagraph(para)
			}
		}
		for _, run := range doc.Runs() {
			if strings.EqualFold(run.StyleRef(), mp.Pattern) {
				applyToRun(run)
			}
		}
		for _, table := range doc.Tables() {
			if strings.EqualFold(table.StyleRef(), mp.Pattern) {
				applyToTable(table)
			}
		}
	}
	return errs
}

// headingPattern maps "heading1".."heading6" and "h1".."h6" to the level,
// or 0 when the pattern is not a heading pattern.
func headingPattern(pattern string) int {
	var rest string
	switch {
	case strings.HasPrefix(pattern, "heading"):
		rest = pattern[len("heading"):]
	case strings.HasPrefix(pattern, "h"):
		rest = pattern[1:]
	default:
		return 0
	}
	if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
		return int(rest[0] - '0')
	}
	return 0
}

// headingLevel maps a current style reference like "Heading 3" to its
// level, or 0 when the reference is not a heading style.
func headingLevel(ref string) int {
	ref = strings.ToLower(strings.TrimSpace(ref))
	rest, ok := strings.CutPrefix(ref, "heading")
	if !ok {
		return 0
	}
	rest = strings.TrimSpace(rest)
	if len(rest) == 1 && rest[0] >= '1' && rest[0] <= '6' {
		return int(rest[0] - '0')
	}
	return 0
}

// The safeApply helpers convert any panic escaping from element accessors
// into an error result so a single broken element cannot abort a whole
// document pass.

func (m *Manager) safeApplyParagraph(el ParagraphElement, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("apply paragraph style %q: element panic: %v", name, r)
		}
	}()
	return m.ApplyParagraphStyle(el, name)
}

func (m *Manager) safeApplyRun(el RunElement, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("apply character style %q: element panic: %v", name, r)
		}
	}()
	return m.ApplyCharacterStyle(el, name)
}

func (m *Manager) safeApplyTable(el TableElement, name string) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("apply table style %q: element panic: %v", name, r)
		}
	}()
	return m.ApplyTableStyle(el, name)
}
