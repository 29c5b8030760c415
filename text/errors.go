package text

import "errors"

// Sentinel errors for text package.
var (
	// ErrEmptyFontData is returned when font data is empty.
	ErrEmptyFontData = errors.New("text: empty font data")

	// ErrNoRegular is returned when a Family is built without a Regular source.
	ErrNoRegular = errors.New("text: family has no regular font")

	// ErrNoPrimary is returned when a FontSet has no primary family.
	ErrNoPrimary = errors.New("text: font set has no primary family")

	// ErrInvalidSize is returned for non-positive point sizes.
	ErrInvalidSize = errors.New("text: font size must be positive")

	// ErrShaping is returned by a Shaper that could not shape a run.
	ErrShaping = errors.New("text: shaping failed")
)
