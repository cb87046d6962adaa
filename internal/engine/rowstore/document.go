package rowstore

// Document is an ordered sequence of rows plus its file name and dirty flag.
// It always holds at least one row.
type Document struct {
	rows     []*Row
	dirty    bool
	filename string
}

// NewDocument creates a document with a single empty row.
func NewDocument(filename string) *Document {
	return &Document{
		rows:     []*Row{{}},
		filename: filename,
	}
}

// NewDocumentFromLines creates a clean document with one row per line.
// An empty line list yields a single empty row.
func NewDocumentFromLines(filename string, lines ...string) *Document {
	d := &Document{filename: filename}
	for _, line := range lines {
		d.rows = append(d.rows, NewRowFromBytes([]byte(line)))
	}
	if len(d.rows) == 0 {
		d.rows = []*Row{{}}
	}
	return d
}

// NumRows returns the number of rows. It is never less than one.
func (d *Document) NumRows() int {
	return len(d.rows)
}

// Row returns the row at index, or nil if index is out of range.
func (d *Document) Row(index int) *Row {
	if index < 0 || index >= len(d.rows) {
		return nil
	}
	return d.rows[index]
}

// RowLen returns the length of the row at index, or 0 if out of range.
func (d *Document) RowLen(index int) int {
	if r := d.Row(index); r != nil {
		return r.Len()
	}
	return 0
}

// Lines returns a copy of every row's content.
func (d *Document) Lines() []string {
	out := make([]string, len(d.rows))
	for i, r := range d.rows {
		out[i] = r.String()
	}
	return out
}

// Filename returns the associated file name.
func (d *Document) Filename() string {
	return d.filename
}

// SetFilename changes the associated file name.
func (d *Document) SetFilename(name string) {
	d.filename = name
}

// Dirty reports whether the document was mutated since it was loaded or saved.
func (d *Document) Dirty() bool {
	return d.dirty
}

// MarkClean clears the dirty flag.
func (d *Document) MarkClean() {
	d.dirty = false
}

// Bound clamps p into the document: the row into [0, NumRows()-1] and the
// column into [0, row length]. This is the bounded cursor used for display.
func (d *Document) Bound(p Point) Point {
	if p.Row < 0 {
		p.Row = 0
	}
	if p.Row >= len(d.rows) {
		p.Row = len(d.rows) - 1
	}
	if p.Col < 0 {
		p.Col = 0
	}
	if n := d.rows[p.Row].Len(); p.Col > n {
		p.Col = n
	}
	return p
}

// End returns the point past the last byte of the last row.
func (d *Document) End() Point {
	last := len(d.rows) - 1
	return Point{Row: last, Col: d.rows[last].Len()}
}

// InsertChar inserts ch into row at byte offset pos.
// It returns false with no mutation if row or pos is invalid.
func (d *Document) InsertChar(row, pos int, ch byte) bool {
	r := d.Row(row)
	if r == nil || !r.Insert(pos, ch) {
		return false
	}
	d.dirty = true
	return true
}

// DeleteChar removes the byte at offset pos in row.
// It returns false with no mutation if row or pos is invalid.
func (d *Document) DeleteChar(row, pos int) bool {
	r := d.Row(row)
	if r == nil || !r.Delete(pos) {
		return false
	}
	d.dirty = true
	return true
}

// NewRow inserts an empty row at index. An index at or past the end grows
// the document to index+1 rows, filling the gap with empty rows; an interior
// index shifts the following rows down by one.
func (d *Document) NewRow(index int) error {
	if index < 0 {
		return ErrRowOutOfRange
	}
	if index >= len(d.rows) {
		for len(d.rows) <= index {
			d.rows = append(d.rows, &Row{})
		}
	} else {
		d.rows = append(d.rows, nil)
		copy(d.rows[index+1:], d.rows[index:])
		d.rows[index] = &Row{}
	}
	d.dirty = true
	return nil
}

// DeleteRow removes the row at index, shifting later rows up by one.
// Deleting the only row empties it instead, so the document keeps one row.
func (d *Document) DeleteRow(index int) error {
	if index < 0 || index >= len(d.rows) {
		return ErrRowOutOfRange
	}
	if len(d.rows) == 1 {
		d.rows[0] = &Row{}
		d.dirty = true
		return nil
	}
	copy(d.rows[index:], d.rows[index+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty = true
	return nil
}

// SplitRow breaks the row at index at byte offset pos. Bytes [pos, len)
// move to a new row inserted right after index.
func (d *Document) SplitRow(index, pos int) error {
	r := d.Row(index)
	if r == nil {
		return ErrRowOutOfRange
	}
	if pos < 0 || pos > r.Len() {
		return ErrPosOutOfRange
	}
	if err := d.NewRow(index + 1); err != nil {
		return err
	}
	d.rows[index+1] = NewRowFromBytes(r.text[pos:])
	r.Truncate(pos)
	return nil
}

// DelCatRow appends the row at index to the previous row and removes it.
// Valid indexes are 1 through NumRows()-1.
func (d *Document) DelCatRow(index int) error {
	if index <= 0 || index >= len(d.rows) {
		return ErrRowOutOfRange
	}
	d.rows[index-1].Append(d.rows[index].text)
	// numrows-index-1 rows follow the removed one.
	copy(d.rows[index:], d.rows[index+1:])
	d.rows[len(d.rows)-1] = nil
	d.rows = d.rows[:len(d.rows)-1]
	d.dirty = true
	return nil
}
