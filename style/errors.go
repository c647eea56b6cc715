package style

import "errors"

// Sentinel errors for the style subsystem. Fallible operations wrap these
// with operation context so callers can test the failure kind with
// errors.Is while still getting a readable message chain.
var (
	// ErrStyleNotFound - a lookup by name found no registered style.
	ErrStyleNotFound = errors.New("style not found")
	// ErrStyleExists - creation or registration under a name that is taken.
	ErrStyleExists = errors.New("style already exists")
	// ErrPropertyInvalid - a property bag is incompatible with the style
	// type, or a style of the wrong type was applied to an element.
	ErrPropertyInvalid = errors.New("style property invalid")
	// ErrInheritanceCycle - self-inheritance or a cycle through base styles.
	ErrInheritanceCycle = errors.New("style inheritance cycle")
	// ErrDependencyMissing - removal blocked by a dependent style, or a
	// reference to a style that is not registered.
	ErrDependencyMissing = errors.New("style dependency missing")
	// ErrValidation - a value failed validation (font size, color format,
	// alignment, spacing, table dimension).
	ErrValidation = errors.New("validation failed")
)
