package rowstore

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// Load reads newline-delimited text into a clean document.
// Terminators are stripped and a single trailing newline does not create an
// extra empty row. Empty input yields one empty row.
func Load(r io.Reader, filename string) (*Document, error) {
	d := &Document{filename: filename}

	br := bufio.NewReader(r)
	for {
		line, err := br.ReadBytes('\n')
		if len(line) > 0 {
			d.rows = append(d.rows, NewRowFromBytes(bytes.TrimSuffix(line, []byte{'\n'})))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", filename, err)
		}
	}

	if len(d.rows) == 0 {
		d.rows = []*Row{{}}
	}
	return d, nil
}

// LoadFile loads the file at path. A missing file yields an empty document
// bound to path so that a later save creates it.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return NewDocument(path), nil
		}
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f, path)
}

// WriteTo writes every row followed by a newline.
func (d *Document) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, r := range d.rows {
		m, err := bw.Write(r.text)
		n += int64(m)
		if err != nil {
			return n, err
		}
		if err := bw.WriteByte('\n'); err != nil {
			return n, err
		}
		n++
	}
	return n, bw.Flush()
}

// Save writes the document to its file name. See SaveFile.
func (d *Document) Save() error {
	if d.filename == "" {
		return ErrNoFilename
	}
	return d.SaveFile(d.filename)
}

// SaveFile overwrites path with the document content and clears the dirty
// flag. The content goes to a temporary file in the target directory that
// is renamed over path, so a failure leaves the previous file untouched.
func (d *Document) SaveFile(path string) error {
	perm := fs.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}

	var ok bool
	defer func() {
		if !ok {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err := d.WriteTo(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", tmp.Name(), err)
	}
	if err := os.Chmod(tmp.Name(), perm); err != nil {
		return fmt.Errorf("chmod %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("renaming into %s: %w", path, err)
	}
	ok = true

	d.dirty = false
	return nil
}
