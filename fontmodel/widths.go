package fontmodel

import (
	"fmt"

	"github.com/npillmayer/sfntmetrics/ttf"
)

// PDFWidths returns the /Widths array of a PDF simple font for the character codes
// first…last (inclusive). Codes are interpreted as Unicode code points and mapped
// to glyphs through the font's cmap. Codes without a glyph get MissingWidth.
func PDFWidths(m *Model, f *ttf.Font, first, last rune) ([]int, error) {
	if m == nil || f == nil {
		return nil, ErrIncompleteFont
	}
	if first < 0 || last < first || last > 0xffff {
		return nil, fmt.Errorf("invalid character code range %d…%d", first, last)
	}
	if f.CMap == nil {
		tracer().Infof("font has no usable cmap, /Widths will contain missing width only")
	}
	widths := make([]int, 0, last-first+1)
	for c := first; c <= last; c++ {
		gid := f.GlyphIndex(c)
		if gid == 0 {
			widths = append(widths, m.MissingWidth)
			continue
		}
		widths = append(widths, m.Width(gid))
	}
	return widths, nil
}
