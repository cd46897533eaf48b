// Package backup keeps an append-only CSV copy of every business the
// scanner discovers.
package backup

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/octobees/lead-finder/internal/entity"
)

// Header is the first row of every backup file.
var Header = []string{"Name", "Address", "Phone", "Website", "Has Website", "Place ID"}

// FormatError reports a backup file that does not follow the expected layout.
type FormatError struct {
	Line   int
	Reason string
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("backup line %d: %s", e.Line, e.Reason)
	}
	return "backup: " + e.Reason
}

// Writer appends business rows to a CSV file. It is safe for concurrent use.
type Writer struct {
	mu   sync.Mutex
	path string
}

// NewWriter returns a Writer for path. The file is created on first append.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// Path returns the backing file path.
func (w *Writer) Path() string {
	return w.path
}

// Append writes one row for b, writing the header first when the file is new.
func (w *Writer) Append(b entity.Business) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	f, err := os.OpenFile(w.path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open backup: %w", err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return fmt.Errorf("stat backup: %w", err)
	}

	cw := csv.NewWriter(f)
	if info.Size() == 0 {
		if err := cw.Write(Header); err != nil {
			return fmt.Errorf("write backup header: %w", err)
		}
	}
	if err := cw.Write(row(b)); err != nil {
		return fmt.Errorf("write backup row: %w", err)
	}
	cw.Flush()
	return cw.Error()
}

func row(b entity.Business) []string {
	hasWebsite := "No"
	if b.HasWebsite {
		hasWebsite = "Yes"
	}
	return []string{b.Name, b.Address, b.Phone, b.Website, hasWebsite, b.PlaceID}
}

// ReadAll parses a backup file back into businesses. The Has Website column is
// recomputed from Website so the invariant holds for hand-edited files.
func ReadAll(r io.Reader) ([]entity.Business, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)
	cr.TrimLeadingSpace = true

	head, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, &FormatError{Reason: "file is empty"}
	}
	if err != nil {
		return nil, fmt.Errorf("read backup header: %w", err)
	}
	for i, col := range Header {
		if !strings.EqualFold(strings.TrimSpace(strings.TrimPrefix(head[i], "\ufeff")), col) {
			return nil, &FormatError{Line: 1, Reason: fmt.Sprintf("unexpected column %q, want %q", head[i], col)}
		}
	}

	var out []entity.Business
	line := 1
	for {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		line++
		if err != nil {
			return nil, fmt.Errorf("read backup: %w", err)
		}
		placeID := strings.TrimSpace(rec[5])
		if placeID == "" {
			return nil, &FormatError{Line: line, Reason: "missing place id"}
		}
		b := entity.NewBusiness(placeID, rec[0], rec[1], rec[2], strings.TrimSpace(rec[3]), entity.Origin{})
		out = append(out, b)
	}
	return out, nil
}
