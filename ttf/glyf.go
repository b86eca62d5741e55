package ttf

// --- Glyf table ------------------------------------------------------------

// GlyfTable holds the glyph headers of all glyphs in the font, indexed by glyph ID.
// Outlines are not decoded.
type GlyfTable struct {
	Glyphs []Glyph
}

// Glyph is the header information of a single glyph description.
// Coordinates are normalized to EM space 1000.
//
// For simple glyphs, the contour end points and the instructions are available as
// well, together with the first outline flag. Point coordinates are not decoded.
// Composite glyphs are recognized, but their components are not resolved.
type Glyph struct {
	NumberOfContours int16 // ≤ 0 for composite glyphs
	XMin, YMin       int
	XMax, YMax       int
	Width            int // XMin + XMax
	EndPtsOfContours []uint16
	Instructions     []byte // view into font data
	FirstFlag        byte
}

// IsComposite is true for glyphs built from other glyphs. This includes glyphs
// without any outline.
func (g Glyph) IsComposite() bool {
	return g.NumberOfContours <= 0
}

// Glyph returns the header of glyph gid.
func (t *GlyfTable) Glyph(gid GlyphIndex) (Glyph, bool) {
	if t == nil || int(gid) >= len(t.Glyphs) {
		return Glyph{}, false
	}
	return t.Glyphs[gid], true
}

// Widths returns the glyph widths derived from glyph bounding boxes.
func (t *GlyfTable) Widths() []int {
	if t == nil {
		return nil
	}
	w := make([]int, len(t.Glyphs))
	for i, g := range t.Glyphs {
		w[i] = g.Width
	}
	return w
}

// parseGlyf decodes the glyph headers for every glyph listed in table 'loca'.
// The last loca entry marks the end of the last glyph and is not a glyph itself.
func parseGlyf(buf []byte, e DirectoryEntry, head *HeadTable, loca *LocaTable) (*GlyfTable, error) {
	r := newTableReader(buf, e)
	n := len(loca.Offsets) - 1
	t := &GlyfTable{Glyphs: make([]Glyph, n)}
	upem := int(head.UnitsPerEm)
	for i := 0; i < n; i++ {
		start, end := loca.Offsets[i], loca.Offsets[i+1]
		if uint64(end) > uint64(e.Length) {
			return nil, r.truncated(int(end))
		}
		if start == end { // glyph without outline, e.g. 'space'
			continue
		}
		r.seek(int(start))
		g, err := parseGlyphHeader(r, upem)
		if err != nil {
			return nil, err
		}
		t.Glyphs[i] = g
	}
	tracer().Debugf("glyf: decoded %d glyph headers", n)
	return t, nil
}

func parseGlyphHeader(r *tableReader, upem int) (Glyph, error) {
	g := Glyph{}
	var err error
	if g.NumberOfContours, err = r.s16(); err != nil {
		return g, err
	}
	bbox, err := r.u16s(4)
	if err != nil {
		return g, err
	}
	s := ShiftAllToSigned(bbox)
	g.XMin = ToEmSpace(int(s[0]), upem)
	g.YMin = ToEmSpace(int(s[1]), upem)
	g.XMax = ToEmSpace(int(s[2]), upem)
	g.YMax = ToEmSpace(int(s[3]), upem)
	g.Width = g.XMin + g.XMax
	if g.IsComposite() {
		return g, nil
	}
	if g.EndPtsOfContours, err = r.u16s(int(g.NumberOfContours)); err != nil {
		return g, err
	}
	instrLen, err := r.u16()
	if err != nil {
		return g, err
	}
	if g.Instructions, err = r.bytes(int(instrLen)); err != nil {
		return g, err
	}
	if g.FirstFlag, err = r.u8(); err != nil {
		return g, err
	}
	return g, nil
}
