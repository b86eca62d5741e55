package ttf

// --- MaxP table ------------------------------------------------------------

// MaxPTable establishes the memory requirements for this font.
// The 'maxp' table contains a count for the number of glyphs in the font.
// Whenever this value changes, other tables which depend on it should also be updated.
//
// Fonts with CFF data use version 0.5 of this table, specifying only the numGlyphs
// field; we do not read any of the other fields of version 1.0.
type MaxPTable struct {
	NumberOfGlyphs uint16
}

func parseMaxP(buf []byte, e DirectoryEntry) (*MaxPTable, error) {
	r := newTableReader(buf, e)
	r.skip(4) // version
	n, err := r.u16()
	if err != nil {
		return nil, err
	}
	tracer().Debugf("maxp: font has %d glyphs", n)
	return &MaxPTable{NumberOfGlyphs: n}, nil
}
