package ttf

// --- Post table ------------------------------------------------------------

// PostTable contains information needed to use a TrueType font on a PostScript
// printer. We are only interested in the slant and the pitch of the font.
type PostTable struct {
	ItalicAngle  float64 // counter-clockwise degrees from the vertical
	IsFixedPitch bool
}

// Table 'post' starts with
//
//	 0  Version16Dot16  version
//	 4  Fixed           italicAngle
//	 8  FWORD           underlinePosition
//	10  FWORD           underlineThickness
//	12  uint32          isFixedPitch (0 if proportionally spaced)
const postFixedPitchOffset = 12

func parsePost(buf []byte, e DirectoryEntry) (*PostTable, error) {
	r := newTableReader(buf, e)
	r.skip(4) // version
	angle, err := r.fixed()
	if err != nil {
		return nil, err
	}
	r.seek(postFixedPitchOffset)
	fixed, err := r.u32()
	if err != nil {
		return nil, err
	}
	t := &PostTable{
		ItalicAngle:  angle,
		IsFixedPitch: fixed != 0,
	}
	tracer().Debugf("post: italic angle = %.2f, fixed pitch = %v", t.ItalicAngle, t.IsFixedPitch)
	return t, nil
}
