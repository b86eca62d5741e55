package ttf

import (
	"errors"
	"fmt"
)

// ErrMalformedFont is returned if the SFNT header or the table directory of a font
// cannot be read, or if a table contradicts a basic structural requirement
// (e.g., unitsPerEm of zero).
var ErrMalformedFont = errors.New("malformed font")

// ErrOutOfRange is returned by the byte-reading primitives if a read would exceed
// the underlying buffer.
var ErrOutOfRange = errors.New("read out of range")

// MissingTableError signals that a table required to derive font metrics is not
// present in the font's table directory.
type MissingTableError struct {
	Tag Tag
}

func (e *MissingTableError) Error() string {
	return fmt.Sprintf("missing required table '%s'", e.Tag)
}

// TruncatedTableError signals that decoding a table would read past the end of the
// table's data. Offset is the absolute byte position within the font.
type TruncatedTableError struct {
	Tag    Tag
	Offset int
}

func (e *TruncatedTableError) Error() string {
	return fmt.Sprintf("table '%s' truncated at offset %d", e.Tag, e.Offset)
}

// UnsupportedCmapFormatError reports a cmap sub-table in a format we do not decode.
// It is informational only: the sub-table keeps its raw bytes.
type UnsupportedCmapFormatError struct {
	Format uint16
}

func (e *UnsupportedCmapFormatError) Error() string {
	return fmt.Sprintf("unsupported cmap sub-table format %d", e.Format)
}

// errFontFormat produces errors for structural problems of a font, wrapping
// ErrMalformedFont.
func errFontFormat(message string) error {
	return fmt.Errorf("%w: %s", ErrMalformedFont, message)
}

// --- Warnings --------------------------------------------------------------

// FontWarning represents a non-critical issue encountered during font parsing,
// usually an optional table which could not be decoded.
// Warnings indicate potential problems but do not prevent font usage.
type FontWarning struct {
	Table  Tag    // The table where the warning occurred
	Issue  string // Human-readable description of the warning
	Offset uint32 // Byte offset in the font file where the warning occurred (0 if unknown)
	Err    error  // underlying error, if any
}

// String returns a human-readable representation of the warning.
func (w FontWarning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("[WARNING] %s at offset %d: %s", w.Table, w.Offset, w.Issue)
	}
	return fmt.Sprintf("[WARNING] %s: %s", w.Table, w.Issue)
}

// errorCollector accumulates warnings during font parsing.
type errorCollector struct {
	warnings []FontWarning
}

// addWarning records a parsing warning and traces it.
func (ec *errorCollector) addWarning(table Tag, issue string, offset uint32, err error) {
	w := FontWarning{
		Table:  table,
		Issue:  issue,
		Offset: offset,
		Err:    err,
	}
	tracer().Infof("%s", w.String())
	ec.warnings = append(ec.warnings, w)
}

// degrade records the failure of an optional table as a warning.
func (ec *errorCollector) degrade(table Tag, err error) {
	var offset uint32
	var trunc *TruncatedTableError
	if errors.As(err, &trunc) {
		offset = uint32(trunc.Offset)
	}
	ec.addWarning(table, fmt.Sprintf("table skipped: %v", err), offset, err)
}
