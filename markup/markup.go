// Package markup is an etree-backed implementation of the document
// element hierarchy consumed by the style package: paragraphs, runs and
// tables with typed get/set accessors over their properties markup.
// Values cross the markup boundary in the format's native subunits -
// twentieths of a point for lengths, half-points for font sizes, 240ths
// for the line-spacing multiplier.
package markup

import (
	"math"
	"strconv"

	"github.com/beevik/etree"
)

func toTwips(pt float64) int        { return int(math.Round(pt * 20)) }
func fromTwips(tw int) float64      { return float64(tw) / 20 }
func toHalfPoints(pt float64) int   { return int(math.Round(pt * 2)) }
func fromHalfPoints(hp int) float64 { return float64(hp) / 2 }
func toLineUnits(mult float64) int  { return int(math.Round(mult * 240)) }
func fromLineUnits(lu int) float64  { return float64(lu) / 240 }

// childElement returns the named child or nil.
func childElement(el *etree.Element, tag string) *etree.Element {
	if el == nil {
		return nil
	}
	return el.SelectElement(tag)
}

// ensureChild returns the named child, creating it first when absent.
func ensureChild(el *etree.Element, tag string) *etree.Element {
	if child := el.SelectElement(tag); child != nil {
		return child
	}
	return el.CreateElement(tag)
}

// removeChild drops the named child if present.
func removeChild(el *etree.Element, tag string) {
	if el == nil {
		return
	}
	if child := el.SelectElement(tag); child != nil {
		el.RemoveChild(child)
	}
}

// attrInt reads an integer attribute; ok is false when the attribute is
// absent or malformed.
func attrInt(el *etree.Element, key string) (int, bool) {
	if el == nil {
		return 0, false
	}
	val := el.SelectAttrValue(key, "")
	if val == "" {
		return 0, false
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, false
	}
	return n, true
}

func setAttrInt(el *etree.Element, key string, val int) {
	el.CreateAttr(key, strconv.Itoa(val))
}
