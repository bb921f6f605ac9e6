package catalog

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/renameio/v2"
)

// Header is the first line of every catalog.
const Header = "id,ra,dec"

// rowFormat renders "0000042,    14.215421,    41.269167". The id is
// zero-padded to 7 digits.
const rowFormat = "%07d, %12.6f, %12.6f\n"

// WriteCSV writes the header and one row per record. It returns the number
// of records written, or 0 with an error wrapping ErrIO.
func WriteCSV(w io.Writer, records []StarRecord) (int, error) {
	bw := bufio.NewWriter(w)

	if _, err := fmt.Fprintln(bw, Header); err != nil {
		return 0, fmt.Errorf("%w: write header: %v", ErrIO, err)
	}
	for _, r := range records {
		if _, err := fmt.Fprintf(bw, rowFormat, r.ID, r.RA, r.Dec); err != nil {
			return 0, fmt.Errorf("%w: write record %d: %v", ErrIO, r.ID, err)
		}
	}
	if err := bw.Flush(); err != nil {
		return 0, fmt.Errorf("%w: flush: %v", ErrIO, err)
	}
	return len(records), nil
}

// WriteFile writes the catalog to path, replacing any existing file.
// The catalog is staged in a temporary file beside path, synced and renamed
// into place, so path is either the old file or the complete new one.
// A replaced file keeps its permissions; a new one is created 0644 (less umask).
func WriteFile(path string, records []StarRecord) (int, error) {
	pf, err := renameio.NewPendingFile(path,
		renameio.WithTempDir(filepath.Dir(path)),
		renameio.WithPermissions(0o644),
		renameio.WithExistingPermissions())
	if err != nil {
		return 0, fmt.Errorf("%w: create %s: %v", ErrIO, path, err)
	}
	defer pf.Cleanup() // no-op once replaced

	n, err := WriteCSV(pf, records)
	if err != nil {
		return 0, fmt.Errorf("write %s: %w", path, err)
	}
	if err := pf.CloseAtomicallyReplace(); err != nil {
		return 0, fmt.Errorf("%w: replace %s: %v", ErrIO, path, err)
	}
	return n, nil
}

// WriteSummary writes a short text report of a run.
func WriteSummary(w io.Writer, r *Result, dest string) {
	fmt.Fprintf(w, "Catalog @ %s\n", r.Center.Label())
	fmt.Fprintln(w, strings.Repeat("─", 48))

	fmt.Fprintf(w, "%-12s %s\n", "Center", r.Center)
	fmt.Fprintf(w, "%-12s %d\n", "Sampled", r.Sampled)
	if r.Clipped {
		fmt.Fprintf(w, "%-12s %s, r=%g°\n", "Clip", r.Clip.Mode, r.Clip.EffectiveRadius())
	} else {
		fmt.Fprintf(w, "%-12s off\n", "Clip")
	}
	fmt.Fprintf(w, "%-12s %d\n", "Retained", r.Retained())

	if b := r.Bounds(); !b.Empty() {
		fmt.Fprintf(w, "%-12s %.6f .. %.6f\n", "RA range", b.MinRA, b.MaxRA)
		fmt.Fprintf(w, "%-12s %.6f .. %.6f\n", "Dec range", b.MinDec, b.MaxDec)
	}
	if dest != "" {
		fmt.Fprintf(w, "%-12s %s\n", "Output", dest)
	}
}
