package rowstore

import "fmt"

// Point is a logical position in a Document.
// Row is a document index; Col is a byte offset in [0, row length].
// Col equal to the row length is the position past the last byte.
type Point struct {
	Row int
	Col int
}

// String returns a human-readable representation of the point.
func (p Point) String() string {
	return fmt.Sprintf("(%d:%d)", p.Row, p.Col)
}

// Compare orders points row-major.
// It returns -1 if p < other, 0 if p == other, 1 if p > other.
func (p Point) Compare(other Point) int {
	if p.Row < other.Row {
		return -1
	}
	if p.Row > other.Row {
		return 1
	}
	if p.Col < other.Col {
		return -1
	}
	if p.Col > other.Col {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Point) Before(other Point) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Point) After(other Point) bool {
	return p.Compare(other) > 0
}

// MinPoint returns the smaller of two points.
func MinPoint(a, b Point) Point {
	if a.Before(b) {
		return a
	}
	return b
}

// MaxPoint returns the larger of two points.
func MaxPoint(a, b Point) Point {
	if a.After(b) {
		return a
	}
	return b
}
