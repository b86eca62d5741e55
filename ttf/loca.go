package ttf

import "fmt"

// --- Loca table ------------------------------------------------------------

// LocaTable stores the offsets to the locations of the glyphs in the font,
// relative to the beginning of the glyph data table.
// By definition, index zero points to the “missing character”, which is the character
// that appears if a character is not found in the font. The missing character is
// commonly represented by a blank box or a space.
//
// Offsets has maxp.NumberOfGlyphs+1 entries: the outline of glyph i occupies
// [Offsets[i], Offsets[i+1]) within table 'glyf'.
type LocaTable struct {
	Offsets []uint32
}

// Extent returns the range of glyph gid within table 'glyf'.
func (t *LocaTable) Extent(gid GlyphIndex) (start, end uint32) {
	if t == nil || int(gid)+1 >= len(t.Offsets) {
		return 0, 0
	}
	return t.Offsets[gid], t.Offsets[gid+1]
}

// Dependencies (taken from Apple Developer page about TrueType):
// The size of entries in the 'loca' table must be appropriate for the value of the
// indexToLocFormat field of the 'head' table. The number of entries must be the same
// as the numGlyphs field of the 'maxp' table.
// The 'loca' table is most intimately dependent upon the contents of the 'glyf' table
// and vice versa.
func parseLoca(buf []byte, e DirectoryEntry, head *HeadTable, maxp *MaxPTable) (*LocaTable, error) {
	r := newTableReader(buf, e)
	n := int(maxp.NumberOfGlyphs) + 1
	t := &LocaTable{Offsets: make([]uint32, n)}
	switch head.IndexToLocFormat {
	case 0: // short offsets are stored divided by 2
		for i := range t.Offsets {
			off, err := r.u16()
			if err != nil {
				return nil, err
			}
			t.Offsets[i] = uint32(off) * 2
		}
	case 1:
		for i := range t.Offsets {
			off, err := r.u32()
			if err != nil {
				return nil, err
			}
			t.Offsets[i] = off
		}
	default:
		return nil, errFontFormat(fmt.Sprintf("invalid head.indexToLocFormat %d (must be 0 or 1)",
			head.IndexToLocFormat))
	}
	for i := 1; i < n; i++ {
		if t.Offsets[i] < t.Offsets[i-1] {
			return nil, errFontFormat(fmt.Sprintf("loca offset of glyph %d decreases (%d < %d)",
				i, t.Offsets[i], t.Offsets[i-1]))
		}
	}
	tracer().Debugf("loca: %d offsets, format %d", n, head.IndexToLocFormat)
	return t, nil
}
