package rowstore

// Row is one logical line of text without its terminator.
type Row struct {
	text []byte
}

// NewRowFromBytes creates a row holding a copy of b.
func NewRowFromBytes(b []byte) *Row {
	r := &Row{}
	if len(b) > 0 {
		r.text = append(make([]byte, 0, len(b)), b...)
	}
	return r
}

// Len returns the number of content bytes in the row.
func (r *Row) Len() int {
	return len(r.text)
}

// Bytes returns the row content.
// The slice aliases row storage and must not be modified by the caller.
func (r *Row) Bytes() []byte {
	return r.text
}

// String returns the row content as a string.
func (r *Row) String() string {
	return string(r.text)
}

// Insert stores ch at pos, shifting the bytes at and after pos right by one.
// It returns false without mutating the row if pos is outside [0, Len()].
func (r *Row) Insert(pos int, ch byte) bool {
	if pos < 0 || pos > len(r.text) {
		return false
	}
	r.text = append(r.text, 0)
	copy(r.text[pos+1:], r.text[pos:])
	r.text[pos] = ch
	return true
}

// Delete removes the byte at pos, shifting later bytes left by one.
// It returns false without mutating the row if pos is outside [0, Len()-1].
func (r *Row) Delete(pos int) bool {
	if pos < 0 || pos >= len(r.text) {
		return false
	}
	copy(r.text[pos:], r.text[pos+1:])
	r.text = r.text[:len(r.text)-1]
	return true
}

// Truncate shortens the row to its first n bytes.
func (r *Row) Truncate(n int) {
	if n < 0 {
		n = 0
	}
	if n < len(r.text) {
		r.text = r.text[:n]
	}
}

// Append adds b to the end of the row.
func (r *Row) Append(b []byte) {
	r.text = append(r.text, b...)
}

// Reset empties the row.
func (r *Row) Reset() {
	r.text = r.text[:0]
}
