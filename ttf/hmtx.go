package ttf

// --- HMtx table ------------------------------------------------------------

// HMtxTable contains the advance widths of all glyphs in the font, normalized
// to EM space 1000 and indexed by glyph ID.
//
// Table 'hmtx' contains NumberOfHMetrics long records (advance width and left side
// bearing), where NumberOfHMetrics is taken from the 'hhea' table. In a monospaced
// font, only one entry is required but that entry may not be omitted. Glyphs beyond
// the long records are assumed to have the same advance width as that found in the
// last long record.
type HMtxTable struct {
	GlyphWidths  []int // length is maxp.NumberOfGlyphs
	MissingWidth int   // width of glyph 0 ('.notdef')
}

// Width returns the normalized advance width of glyph gid, or MissingWidth if
// gid is out of range.
func (t *HMtxTable) Width(gid GlyphIndex) int {
	if t == nil {
		return 0
	}
	if int(gid) < len(t.GlyphWidths) {
		return t.GlyphWidths[gid]
	}
	return t.MissingWidth
}

const hmtxRecordSize = 4

func parseHMtx(buf []byte, e DirectoryEntry, head *HeadTable, hhea *HHeaTable,
	maxp *MaxPTable, ec *errorCollector) (*HMtxTable, error) {
	//
	r := newTableReader(buf, e)
	numGlyphs := int(maxp.NumberOfGlyphs)
	widths := make([]int, 0, max(numGlyphs, int(hhea.NumberOfHMetrics)))
	for i := 0; i < int(hhea.NumberOfHMetrics); i++ {
		r.seek(i * hmtxRecordSize)
		aw, err := r.s16() // left side bearing is not interpreted
		if err != nil {
			return nil, err
		}
		widths = append(widths, int(aw))
	}
	if len(widths) == 0 && numGlyphs > 0 {
		ec.addWarning(e.Tag, "no horizontal metrics; all glyphs get width 0", e.Offset, nil)
		widths = append(widths, 0)
	}
	if len(widths) > numGlyphs {
		ec.addWarning(e.Tag, "more h-metrics than glyphs; surplus metrics dropped", e.Offset, nil)
		widths = widths[:numGlyphs]
	}
	for len(widths) < numGlyphs { // monospaced tail
		widths = append(widths, widths[len(widths)-1])
	}
	upem := int(head.UnitsPerEm)
	for i, w := range widths {
		widths[i] = scaleWidth(w, upem)
	}
	t := &HMtxTable{GlyphWidths: widths}
	if len(widths) > 0 {
		t.MissingWidth = widths[0]
	}
	tracer().Debugf("hmtx: %d widths, missing width = %d", len(widths), t.MissingWidth)
	return t, nil
}
