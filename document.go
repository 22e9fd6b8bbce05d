package vix

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// maxRowBytes caps how much of the first line is loaded. Content beyond the
// cap, and any lines after the first, are silently discarded. This is a
// stated boundary of the viewer, not a bug to fix here.
const maxRowBytes = 4096

// Row is one line of document text. Rows are immutable after load.
type Row struct {
	bytes []byte
}

// Len returns the row length in bytes.
func (r Row) Len() int {
	return len(r.bytes)
}

// Bytes returns the row content. The returned slice must not be modified.
func (r Row) Bytes() []byte {
	return r.bytes
}

// Document is an ordered sequence of rows, populated once at load time and
// read-only thereafter.
type Document struct {
	rows []Row
}

// NumRows returns the number of rows in the document.
func (d *Document) NumRows() int {
	if d == nil {
		return 0
	}
	return len(d.rows)
}

// Row returns the row at index i.
func (d *Document) Row(i int) Row {
	return d.rows[i]
}

// LoadFirstLine opens the file at path and reads its first line, up to
// maxRowBytes, into a single-row document. The line delimiter is excluded.
// Returns ErrOpenFailed if the file cannot be opened and ErrEmptyDocument
// if no content is available before the delimiter or end-of-file.
func LoadFirstLine(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOpenFailed, err)
	}
	defer f.Close()

	br := bufio.NewReaderSize(f, maxRowBytes)
	line, err := br.ReadBytes('\n')
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("%w: %v", ErrEmptyDocument, err)
	}

	line = bytes.TrimSuffix(line, []byte("\n"))
	line = bytes.TrimSuffix(line, []byte("\r"))
	if len(line) > maxRowBytes {
		line = line[:maxRowBytes]
	}
	if len(line) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyDocument, path)
	}

	row := Row{bytes: make([]byte, len(line))}
	copy(row.bytes, line)

	return &Document{rows: []Row{row}}, nil
}
