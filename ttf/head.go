package ttf

// --- Head table ------------------------------------------------------------

// HeadTable gives global information about the font.
// The bounding box is normalized to EM space 1000.
type HeadTable struct {
	Version            float64 // Fixed 16.16
	FontRevision       float64 // Fixed 16.16, set by font manufacturer
	CheckSumAdjustment uint32
	MagicNumber        uint32 // 0x5F0F3CF5
	Flags              uint16 // see https://docs.microsoft.com/en-us/typography/opentype/spec/head
	UnitsPerEm         uint16 // values 16 … 16384 are valid
	XMin, YMin         int    // bounding box of all glyphs, lower left
	XMax, YMax         int    // bounding box of all glyphs, upper right
	IndexToLocFormat   int16  // 0 for short offsets, 1 for long
}

// Table 'head' layout, as far as we interpret it:
//
//	 0  Fixed   version
//	 4  Fixed   fontRevision
//	 8  uint32  checkSumAdjustment
//	12  uint32  magicNumber
//	16  uint16  flags
//	18  uint16  unitsPerEm
//	20  (created, modified: not interpreted)
//	36  int16   xMin, yMin, xMax, yMax
//	44  (macStyle, lowestRecPPEM, fontDirectionHint: not interpreted)
//	50  int16   indexToLocFormat
const (
	headBBoxOffset      = 36
	headLocFormatOffset = 50
)

func parseHead(buf []byte, e DirectoryEntry) (*HeadTable, error) {
	r := newTableReader(buf, e)
	t := &HeadTable{}
	var err error
	if t.Version, err = r.fixed(); err != nil {
		return nil, err
	}
	if t.FontRevision, err = r.fixed(); err != nil {
		return nil, err
	}
	if t.CheckSumAdjustment, err = r.u32(); err != nil {
		return nil, err
	}
	if t.MagicNumber, err = r.u32(); err != nil {
		return nil, err
	}
	if t.Flags, err = r.u16(); err != nil {
		return nil, err
	}
	if t.UnitsPerEm, err = r.u16(); err != nil {
		return nil, err
	}
	if t.UnitsPerEm == 0 {
		return nil, errFontFormat("head.unitsPerEm is 0")
	}
	r.seek(headBBoxOffset)
	bbox, err := r.u16s(4)
	if err != nil {
		return nil, err
	}
	upem := int(t.UnitsPerEm)
	s := ShiftAllToSigned(bbox)
	t.XMin = ToEmSpace(int(s[0]), upem)
	t.YMin = ToEmSpace(int(s[1]), upem)
	t.XMax = ToEmSpace(int(s[2]), upem)
	t.YMax = ToEmSpace(int(s[3]), upem)
	r.seek(headLocFormatOffset)
	if t.IndexToLocFormat, err = r.s16(); err != nil {
		return nil, err
	}
	tracer().Debugf("head: unitsPerEm = %d, bbox = [%d %d %d %d], loca format %d",
		t.UnitsPerEm, t.XMin, t.YMin, t.XMax, t.YMax, t.IndexToLocFormat)
	return t, nil
}
