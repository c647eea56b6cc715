// Package units converts textual measurement literals - lengths,
// percentages and colors - into the normalized numeric values used by the
// style subsystem. Lengths normalize to points, percentages to decimal
// fractions, colors to six uppercase hex digits.
package units

import (
	"fmt"
	"strconv"
	"strings"
)

// Conversion factors to points for the supported length suffixes.
const (
	pxToPt = 0.75
	inToPt = 72.0
	cmToPt = 28.35
	mmToPt = 2.835
)

// namedColors maps the fixed color vocabulary to hex values.
var namedColors = map[string]string{
	"black":   "000000",
	"white":   "FFFFFF",
	"red":     "FF0000",
	"green":   "00FF00",
	"blue":    "0000FF",
	"yellow":  "FFFF00",
	"cyan":    "00FFFF",
	"magenta": "FF00FF",
}

// ParseLength parses a length literal like "12pt", "16px", "1in", "1cm",
// "2mm" or a bare number and returns the value in points. An unknown unit
// suffix or an unparsable numeric part is an error.
func ParseLength(text string) (float64, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, fmt.Errorf("empty length literal")
	}

	// Split the leading numeric run (sign, digits, decimal point) from the
	// trailing unit suffix.
	split := len(text)
	for i, r := range text {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' || r == '+' {
			continue
		}
		split = i
		break
	}

	num, suffix := text[:split], strings.TrimSpace(text[split:])
	value, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value %q in length %q", num, text)
	}

	switch strings.ToLower(suffix) {
	case "", "pt":
		return value, nil
	case "px":
		return value * pxToPt, nil
	case "in":
		return value * inToPt, nil
	case "cm":
		return value * cmToPt, nil
	case "mm":
		return value * mmToPt, nil
	default:
		return 0, fmt.Errorf("unsupported unit %q in length %q", suffix, text)
	}
}

// ParsePercentage parses a percentage literal like "100%" and returns the
// decimal fraction (1.0 for "100%").
func ParsePercentage(text string) (float64, error) {
	text = strings.TrimSpace(text)
	num, ok := strings.CutSuffix(text, "%")
	if !ok {
		return 0, fmt.Errorf("percentage %q missing %% suffix", text)
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid numeric value in percentage %q", text)
	}
	return value / 100, nil
}

// ParseColor parses a color literal - either a name from the fixed color
// table or a six-hex-digit value with an optional leading '#' - and returns
// the six-digit uppercase hex form.
func ParseColor(text string) (string, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return "", fmt.Errorf("empty color literal")
	}

	if hex, ok := namedColors[strings.ToLower(text)]; ok {
		return hex, nil
	}

	hex := strings.TrimPrefix(text, "#")
	if len(hex) != 6 {
		return "", fmt.Errorf("color %q is not a 6-digit hex value", text)
	}
	for _, r := range hex {
		if !isHexDigit(r) {
			return "", fmt.Errorf("color %q contains non-hex digit %q", text, r)
		}
	}
	return strings.ToUpper(hex), nil
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
