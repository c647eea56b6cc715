package style

import (
	"fmt"
	"strings"
)

// CompareStyles produces a human-readable report of the differences
// between two styles, covering type, alignment, spacing, font, size and
// color. Identical styles yield a single "no differences" line.
func CompareStyles(a, b *Style) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Comparing %q and %q:\n", a.name, b.name)

	var diffs int
	diff := func(field, av, bv string) {
		if av == bv {
			return
		}
		diffs++
		fmt.Fprintf(&sb, "  %s: %s vs %s\n", field, av, bv)
	}

	diff("type", a.typ.String(), b.typ.String())
	diff("alignment", formatOpt(a.para.Alignment), formatOpt(b.para.Alignment))
	diff("space before", formatOptFloat(a.para.SpaceBefore, "pt"), formatOptFloat(b.para.SpaceBefore, "pt"))
	diff("space after", formatOptFloat(a.para.SpaceAfter, "pt"), formatOptFloat(b.para.SpaceAfter, "pt"))
	diff("line spacing", formatOptFloat(a.para.LineSpacing, ""), formatOptFloat(b.para.LineSpacing, ""))
	diff("font", formatOptString(a.char.FontName), formatOptString(b.char.FontName))
	diff("size", formatOptFloat(a.char.FontSize, "pt"), formatOptFloat(b.char.FontSize, "pt"))
	diff("color", formatOptString(a.char.Color), formatOptString(b.char.Color))

	if diffs == 0 {
		sb.WriteString("  no differences\n")
	}
	return sb.String()
}

func formatOpt[T fmt.Stringer](p *T) string {
	if p == nil {
		return "unset"
	}
	return (*p).String()
}

func formatOptString(p *string) string {
	if p == nil {
		return "unset"
	}
	return *p
}

func formatOptFloat(p *float64, unit string) string {
	if p == nil {
		return "unset"
	}
	return fmt.Sprintf("%g%s", *p, unit)
}
