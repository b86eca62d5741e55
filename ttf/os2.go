package ttf

// --- OS/2 table ------------------------------------------------------------

// OS2Table holds the classification data of table 'OS/2' which is needed for
// deriving PDF font descriptor flags.
type OS2Table struct {
	FsType        uint16
	Embeddable    bool
	FamilyClass   int8 // high byte of sFamilyClass
	IsSerif       bool
	IsScript      bool
	IsSymbolic    bool
	IsNonSymbolic bool
	UnicodeRange  [4]uint32
	CapHeight     int  // normalized; only valid if HasCapHeight
	HasCapHeight  bool // sCapHeight exists from table version 2 on
}

const (
	os2FsTypeOffset       = 8
	os2FamilyClassOffset  = 30
	os2UnicodeRangeOffset = 42
	os2CapHeightOffset    = 88
	os2CapHeightMinVers   = 2

	fsTypeRestricted   = 0x0002 // restricted license embedding
	fsTypeBitmapOnly   = 0x0200 // bitmap embedding only
	familyClassSans    = 8
	familyClassScript  = 10
	familyClassSymbols = 12
)

// basicLatinOnly is the unicode range set of a font covering Basic Latin only.
var basicLatinOnly = [4]uint32{1, 0, 0, 0}

func parseOS2(buf []byte, e DirectoryEntry, head *HeadTable) (*OS2Table, error) {
	r := newTableReader(buf, e)
	t := &OS2Table{}
	version, err := r.u16()
	if err != nil {
		return nil, err
	}
	r.seek(os2FsTypeOffset)
	if t.FsType, err = r.u16(); err != nil {
		return nil, err
	}
	t.Embeddable = t.FsType != fsTypeRestricted && t.FsType&fsTypeBitmapOnly == 0
	r.seek(os2FamilyClassOffset)
	fc, err := r.s16()
	if err != nil {
		return nil, err
	}
	t.FamilyClass = int8(fc >> 8)
	switch t.FamilyClass {
	case 1, 2, 3, 4, 5, 7:
		t.IsSerif = true
	case familyClassSans:
		t.IsSerif = false
	case familyClassScript:
		t.IsScript = true
	}
	t.IsSymbolic = t.FamilyClass == familyClassSymbols
	t.IsNonSymbolic = !t.IsSymbolic
	r.seek(os2UnicodeRangeOffset)
	for i := range t.UnicodeRange {
		if t.UnicodeRange[i], err = r.u32(); err != nil {
			return nil, err
		}
	}
	if t.UnicodeRange == basicLatinOnly {
		t.IsSymbolic, t.IsNonSymbolic = false, true
	}
	if version >= os2CapHeightMinVers && int(e.Length) >= os2CapHeightOffset+2 {
		r.seek(os2CapHeightOffset)
		ch, err := r.s16()
		if err != nil {
			return nil, err
		}
		t.CapHeight = ToEmSpace(int(ch), int(head.UnitsPerEm))
		t.HasCapHeight = true
	}
	tracer().Debugf("OS/2: version %d, fsType 0x%04x, family class %d", version, t.FsType, t.FamilyClass)
	return t, nil
}
