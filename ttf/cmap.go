package ttf

import "fmt"

// --- CMap table ------------------------------------------------------------

// CMapTable represents table 'cmap', which maps character codes to glyph indices.
// Every sub-table is kept with its raw bytes; sub-tables in one of the formats
// 0, 4 or 6 are decoded into a GlyphMapper.
type CMapTable struct {
	Version   uint16
	Subtables []CMapSubtable
	preferred int // index of the sub-table used by Lookup, -1 if none
}

// CMapSubtable is an encoding record of table 'cmap' together with the sub-table
// it links to.
type CMapSubtable struct {
	PlatformID uint16
	EncodingID uint16
	Offset     uint32 // relative to the start of table 'cmap'
	Format     uint16
	Length     uint32
	Language   uint32
	Data       []byte      // sub-table bytes following the sub-table header
	Parsed     GlyphMapper // nil for unsupported formats
}

// GlyphMapper is implemented by decoded cmap sub-tables. Lookup returns false
// for a character code the sub-table does not cover or maps to glyph 0.
type GlyphMapper interface {
	Lookup(r rune) (GlyphIndex, bool)
}

// EncodingName returns a label for the platform/encoding combination of a
// sub-table. It is informational only.
func (st CMapSubtable) EncodingName() string {
	switch {
	case st.PlatformID == 0 && st.EncodingID == 0:
		return "Unicode 2.0"
	case st.PlatformID == 0 && st.EncodingID == 3:
		return "Unicode"
	case st.PlatformID == 3 && st.EncodingID == 1:
		return "Microsoft Unicode"
	case st.PlatformID == 1 && st.EncodingID == 0:
		return "Mac Roman"
	}
	return "Unknown"
}

// Lookup maps a character to a glyph index, using the preferred sub-table of the
// font. Sub-tables are preferred in the order
//
//	(3,1) Windows Unicode BMP
//	(0,3) Unicode BMP
//	(0,*) any other Unicode encoding
//	(3,0) Windows Symbol
//	(1,0) Mac Roman
//
// considering only sub-tables we are able to decode.
func (t *CMapTable) Lookup(r rune) (GlyphIndex, bool) {
	st := t.Preferred()
	if st == nil {
		return 0, false
	}
	return st.Parsed.Lookup(r)
}

// Preferred returns the sub-table Lookup uses, or nil.
func (t *CMapTable) Preferred() *CMapSubtable {
	if t == nil || t.preferred < 0 {
		return nil
	}
	return &t.Subtables[t.preferred]
}

// encodingRank returns the preference rank of a platform/encoding pair, where
// lower is better and 0 means "do not use".
func encodingRank(pid, eid uint16) int {
	switch {
	case pid == 3 && eid == 1:
		return 1
	case pid == 0 && eid == 3:
		return 2
	case pid == 0:
		return 3
	case pid == 3 && eid == 0:
		return 4
	case pid == 1 && eid == 0:
		return 5
	}
	return 0
}

const (
	cmapHeaderSize = 4
	cmapRecordSize = 8
)

// parseCMap decodes the cmap header and all encoding records. An unreadable header
// or encoding record fails the table; problems with single sub-tables are
// recorded as warnings and leave the sub-table undecoded.
func parseCMap(buf []byte, e DirectoryEntry, ec *errorCollector) (*CMapTable, error) {
	r := newTableReader(buf, e)
	hdr, err := r.u16s(2)
	if err != nil {
		return nil, err
	}
	t := &CMapTable{Version: hdr[0], preferred: -1}
	n := int(hdr[1])
	tracer().Debugf("cmap: %d sub-tables", n)
	t.Subtables = make([]CMapSubtable, 0, n)
	bestRank := 0
	for i := 0; i < n; i++ {
		r.seek(cmapHeaderSize + i*cmapRecordSize)
		ids, err := r.u16s(2)
		if err != nil {
			return nil, err
		}
		st := CMapSubtable{PlatformID: ids[0], EncodingID: ids[1]}
		if st.Offset, err = r.u32(); err != nil {
			return nil, err
		}
		if err := parseCMapSubtable(r, &st); err != nil {
			ec.addWarning(e.Tag, fmt.Sprintf("sub-table %d (platform=%d, encoding=%d): %v",
				i, st.PlatformID, st.EncodingID, err), e.Offset+st.Offset, err)
		}
		if st.Parsed != nil {
			rank := encodingRank(st.PlatformID, st.EncodingID)
			if rank > 0 && (bestRank == 0 || rank < bestRank) {
				bestRank, t.preferred = rank, len(t.Subtables)
			}
		}
		t.Subtables = append(t.Subtables, st)
	}
	return t, nil
}

// parseCMapSubtable reads the header and data of a sub-table and dispatches on
// its format. Formats 8 and above carry 32-bit length fields.
func parseCMapSubtable(r *tableReader, st *CMapSubtable) error {
	r.seek(int(st.Offset))
	var err error
	if st.Format, err = r.u16(); err != nil {
		return err
	}
	headerSize := 6
	switch {
	case st.Format < 8:
		h, err := r.u16s(2)
		if err != nil {
			return err
		}
		st.Length, st.Language = uint32(h[0]), uint32(h[1])
	case st.Format == 14:
		if st.Length, err = r.u32(); err != nil {
			return err
		}
	default:
		r.skip(2) // reserved
		if st.Length, err = r.u32(); err != nil {
			return err
		}
		if st.Language, err = r.u32(); err != nil {
			return err
		}
		headerSize = 12
	}
	if int(st.Length) < headerSize {
		return errFontFormat(fmt.Sprintf("cmap sub-table length %d", st.Length))
	}
	data, err := r.bytes(int(st.Length) - headerSize)
	if err != nil {
		return err
	}
	st.Data = data
	switch st.Format {
	case 0:
		st.Parsed, err = parseByteEncoding(data)
	case 4:
		st.Parsed, err = parseSegmentToDelta(data)
	case 6:
		st.Parsed, err = parseTrimmedTable(data)
	default:
		return &UnsupportedCmapFormatError{Format: st.Format}
	}
	if err != nil {
		st.Parsed = nil
		return err
	}
	tracer().Debugf("cmap: decoded format %d sub-table for %s", st.Format, st.EncodingName())
	return nil
}
