package rowstore

import "bytes"

// Search looks for needle starting one byte after from, scanning to the end
// of the document and then wrapping around from the first row.
// It returns the match position and true, or from and false.
func (d *Document) Search(from Point, needle []byte) (Point, bool) {
	if len(needle) == 0 {
		return from, false
	}
	from = d.Bound(from)

	start := from.Col + 1
	for i := from.Row; i < len(d.rows); i++ {
		text := d.rows[i].text
		off := 0
		if i == from.Row {
			off = start
		}
		if off > len(text) {
			continue
		}
		if j := bytes.Index(text[off:], needle); j >= 0 {
			return Point{Row: i, Col: off + j}, true
		}
	}

	for i := 0; i <= from.Row && i < len(d.rows); i++ {
		if j := bytes.Index(d.rows[i].text, needle); j >= 0 {
			return Point{Row: i, Col: j}, true
		}
	}
	return from, false
}
