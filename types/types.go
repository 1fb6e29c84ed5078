package types

import (
	"errors"
	"fmt"
	"strings"
)

var _ = fmt.Print

// Space is a public color space tag.
type Space int

// Color spaces.
const (
	UNKNOWN Space = iota
	RGB
	HSV
	HSL
	HWB
	LAB
	LCH
	OKLAB
	OKLCH
)

// Spaces lists every supported space in declaration order.
var Spaces = [...]Space{RGB, HSV, HSL, HWB, LAB, LCH, OKLAB, OKLCH}

var SpaceNames = map[string]Space{
	"rgb":   RGB,
	"hsv":   HSV,
	"hsl":   HSL,
	"hwb":   HWB,
	"lab":   LAB,
	"lch":   LCH,
	"oklab": OKLAB,
	"oklch": OKLCH,
}

var spaceNames = map[Space]string{
	RGB:   "rgb",
	HSV:   "hsv",
	HSL:   "hsl",
	HWB:   "hwb",
	LAB:   "lab",
	LCH:   "lch",
	OKLAB: "oklab",
	OKLCH: "oklch",
}

func (s Space) String() string {
	if n, ok := spaceNames[s]; ok {
		return n
	}
	return fmt.Sprintf("Space(%d)", int(s))
}

// IsValid reports whether s is one of the supported spaces.
func (s Space) IsValid() bool {
	return s >= RGB && s <= OKLCH
}

// HueIndex returns the index of the hue channel, or -1 for spaces without
// one. Note that HSV carries a hue too but is interpolated linearly.
func (s Space) HueIndex() int {
	switch s {
	case HSL, HWB:
		return 0
	case LCH, OKLCH:
		return 2
	}
	return -1
}

// IsPolar reports whether the space already stores a hue channel.
func (s Space) IsPolar() bool {
	switch s {
	case HSV, HSL, HWB, LCH, OKLCH:
		return true
	}
	return false
}

func (s Space) MarshalText() ([]byte, error) {
	if !s.IsValid() {
		return nil, &UnsupportedSpaceError{Space: s}
	}
	return []byte(s.String()), nil
}

func (s *Space) UnmarshalText(b []byte) (err error) {
	*s, err = ParseSpace(string(b))
	return
}

// ParseSpace looks up a space by its lower case name, ignoring surrounding
// whitespace and case.
func ParseSpace(name string) (Space, error) {
	if s, ok := SpaceNames[strings.ToLower(strings.TrimSpace(name))]; ok {
		return s, nil
	}
	return UNKNOWN, fmt.Errorf("%w: %q", ErrUnsupportedSpace, name)
}

var ErrUnsupportedSpace = errors.New("unsupported color space")
var ErrInvalidBufferLength = errors.New("color buffers must have exactly 3 components")

type UnsupportedSpaceError struct {
	Space Space
}

func (e *UnsupportedSpaceError) Error() string {
	return fmt.Sprintf("%s: %s", ErrUnsupportedSpace, e.Space)
}

func (e *UnsupportedSpaceError) Unwrap() error { return ErrUnsupportedSpace }

// CheckSpace returns an *UnsupportedSpaceError if s is not a supported space.
func CheckSpace(s Space) error {
	if s.IsValid() {
		return nil
	}
	return &UnsupportedSpaceError{Space: s}
}
