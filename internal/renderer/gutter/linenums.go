package gutter

import (
	"fmt"
	"strconv"
)

// LineNumberMode selects which number labels a row.
type LineNumberMode uint8

const (
	// LineNumberAbsolute labels rows 1, 2, 3, ...
	LineNumberAbsolute LineNumberMode = iota
	// LineNumberRelative labels rows by distance from the cursor row.
	LineNumberRelative
	// LineNumberHybrid is relative, except the cursor row shows its own number.
	LineNumberHybrid
)

var modeNames = [...]string{
	LineNumberAbsolute: "absolute",
	LineNumberRelative: "relative",
	LineNumberHybrid:   "hybrid",
}

// ParseLineNumberMode parses a mode name. The empty string is absolute.
func ParseLineNumberMode(s string) (LineNumberMode, error) {
	if s == "" {
		return LineNumberAbsolute, nil
	}
	for m, name := range modeNames {
		if name == s {
			return LineNumberMode(m), nil
		}
	}
	return LineNumberAbsolute, fmt.Errorf("unknown line number mode %q", s)
}

func (m LineNumberMode) String() string {
	if int(m) < len(modeNames) {
		return modeNames[m]
	}
	return modeNames[LineNumberAbsolute]
}

// Number returns the label value of the 0-based row when the cursor is on
// row current.
func (m LineNumberMode) Number(row, current int) int {
	dist := row - current
	if dist < 0 {
		dist = -dist
	}
	switch {
	case m == LineNumberRelative:
		return dist
	case m == LineNumberHybrid && dist != 0:
		return dist
	default:
		return row + 1
	}
}

// Label right-justifies n in exactly width columns. A number wider than
// width keeps its low-order digits.
func Label(n, width int) string {
	if width <= 0 {
		return ""
	}
	s := strconv.Itoa(n)
	if len(s) > width {
		return s[len(s)-width:]
	}
	return fmt.Sprintf("%*s", width, s)
}
