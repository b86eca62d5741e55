package ttf

import "fmt"

// Decoders for cmap sub-table formats. Input to each decoder is the sub-table's
// data following the format/length/language header.

// ByteEncodingTable is a cmap sub-table in format 0, mapping single-byte
// character codes to glyph indices.
type ByteEncodingTable struct {
	GlyphIDArray [256]uint8
}

func parseByteEncoding(data binarySegm) (*ByteEncodingTable, error) {
	if len(data) < 256 {
		return nil, errFontFormat("cmap format 0 glyph array too short")
	}
	t := &ByteEncodingTable{}
	copy(t.GlyphIDArray[:], data)
	return t, nil
}

// Lookup is part of interface GlyphMapper.
func (t *ByteEncodingTable) Lookup(r rune) (GlyphIndex, bool) {
	if r < 0 || r > 255 {
		return 0, false
	}
	g := GlyphIndex(t.GlyphIDArray[r])
	return g, g != 0
}

// SegmentToDeltaTable is a cmap sub-table in format 4 ("segment mapping to delta
// values"), the standard mapping for the Unicode BMP.
type SegmentToDeltaTable struct {
	SegCountX2    uint16
	SearchRange   uint16
	EntrySelector uint16
	RangeShift    uint16
	EndCode       []uint16
	StartCode     []uint16
	IDDelta       []int16
	IDRangeOffset []uint16
	GlyphIDArray  []uint16
}

func parseSegmentToDelta(data binarySegm) (*SegmentToDeltaTable, error) {
	t := &SegmentToDeltaTable{}
	segx2, err := data.u16(0)
	if err != nil {
		return nil, err
	}
	if segx2%2 != 0 {
		return nil, errFontFormat(fmt.Sprintf("cmap format 4 segCountX2 %d is odd", segx2))
	}
	t.SegCountX2 = segx2
	t.SearchRange, _ = data.u16(2)
	t.EntrySelector, _ = data.u16(4)
	t.RangeShift, _ = data.u16(6)
	n := int(segx2 / 2)
	arrays := 8 + 4*int(segx2) + 2 // 4 arrays of segCount entries + reservedPad
	if len(data) < arrays {
		return nil, errFontFormat("cmap format 4 segment arrays exceed sub-table")
	}
	words := func(at, count int) []uint16 {
		ws := make([]uint16, count)
		for i := range ws {
			ws[i] = u16(data[at+2*i:])
		}
		return ws
	}
	off := 8
	t.EndCode = words(off, n)
	off += int(segx2) + 2 // skip reservedPad
	t.StartCode = words(off, n)
	off += int(segx2)
	t.IDDelta = ShiftAllToSigned(words(off, n))
	off += int(segx2)
	t.IDRangeOffset = words(off, n)
	off += int(segx2)
	t.GlyphIDArray = words(off, (len(data)-off)/2)
	return t, nil
}

// Lookup is part of interface GlyphMapper.
//
// If idRangeOffset of the segment containing r is zero, the glyph index is
// r + idDelta (modulo 65536). Otherwise idRangeOffset is a byte offset from the
// idRangeOffset entry itself into glyphIdArray; non-zero glyph indices found
// there are adjusted by idDelta as well.
func (t *SegmentToDeltaTable) Lookup(r rune) (GlyphIndex, bool) {
	if r < 0 || r > 0xffff {
		return 0, false
	}
	c := uint16(r)
	n := len(t.EndCode)
	for i := 0; i < n; i++ { // segments are sorted by end code
		if c > t.EndCode[i] {
			continue
		}
		if c < t.StartCode[i] {
			return 0, false
		}
		if t.IDRangeOffset[i] == 0 {
			g := GlyphIndex(uint16(t.IDDelta[i]) + c)
			return g, g != 0
		}
		index := int(t.IDRangeOffset[i]/2) + int(c-t.StartCode[i]) - (n - i)
		if index < 0 || index >= len(t.GlyphIDArray) {
			return 0, false
		}
		g := t.GlyphIDArray[index]
		if g == 0 {
			return 0, false
		}
		return GlyphIndex(g + uint16(t.IDDelta[i])), true
	}
	return 0, false
}

// TrimmedTable is a cmap sub-table in format 6, mapping a dense range of character
// codes to glyph indices.
type TrimmedTable struct {
	FirstCode    uint16
	GlyphIDArray []uint16
}

func parseTrimmedTable(data binarySegm) (*TrimmedTable, error) {
	first, err := data.u16(0)
	if err != nil {
		return nil, err
	}
	count, err := data.u16(2)
	if err != nil {
		return nil, err
	}
	t := &TrimmedTable{FirstCode: first, GlyphIDArray: make([]uint16, count)}
	for i := range t.GlyphIDArray {
		if t.GlyphIDArray[i], err = data.u16(4 + 2*i); err != nil {
			return nil, errFontFormat("cmap format 6 glyph array exceeds sub-table")
		}
	}
	return t, nil
}

// Lookup is part of interface GlyphMapper.
func (t *TrimmedTable) Lookup(r rune) (GlyphIndex, bool) {
	if r < rune(t.FirstCode) || r-rune(t.FirstCode) >= rune(len(t.GlyphIDArray)) {
		return 0, false
	}
	g := GlyphIndex(t.GlyphIDArray[r-rune(t.FirstCode)])
	return g, g != 0
}
