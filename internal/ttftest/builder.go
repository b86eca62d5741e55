// Package ttftest assembles synthetic TrueType fonts for tests.
//
// Tables are built from the values a test is interested in, everything else is
// zero. Fonts are not valid in every respect (e.g., checksums are not computed),
// but valid enough for decoding the tables needed for font metrics.
package ttftest

import (
	"encoding/binary"
	"sort"
	"unicode/utf16"
)

var be = binary.BigEndian

// FontBuilder collects tables and assembles them into an SFNT binary.
type FontBuilder struct {
	tables map[string][]byte
}

// NewFontBuilder creates a builder without any tables.
func NewFontBuilder() *FontBuilder {
	return &FontBuilder{tables: make(map[string][]byte)}
}

// Add adds or replaces a table.
func (fb *FontBuilder) Add(tag string, data []byte) *FontBuilder {
	fb.tables[tag] = data
	return fb
}

func (fb *FontBuilder) Drop(tag string) *FontBuilder {
	delete(fb.tables, tag)
	return fb
}

// Build writes the SFNT header, the table directory (sorted by tag) and the
// tables, each starting on a 4-byte boundary.
func (fb *FontBuilder) Build() []byte {
	tags := make([]string, 0, len(fb.tables))
	for tag := range fb.tables {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	n := len(tags)
	b := make([]byte, 0, 1024)
	b = be.AppendUint32(b, 0x00010000)
	b = be.AppendUint16(b, uint16(n))
	b = be.AppendUint16(b, 0) // searchRange etc. are not interpreted
	b = be.AppendUint16(b, 0)
	b = be.AppendUint16(b, 0)
	offset := uint32(12 + 16*n)
	for _, tag := range tags {
		data := fb.tables[tag]
		b = append(b, []byte(tag)...)
		b = be.AppendUint32(b, 0) // checksum
		b = be.AppendUint32(b, offset)
		b = be.AppendUint32(b, uint32(len(data)))
		offset += uint32(pad4(len(data)))
	}
	for _, tag := range tags {
		data := fb.tables[tag]
		b = append(b, data...)
		b = append(b, make([]byte, pad4(len(data))-len(data))...)
	}
	return b
}

func pad4(n int) int {
	return (n + 3) &^ 3
}

// --- Table constructors ----------------------------------------------------

func HeadTable(upem uint16, bbox [4]int16, locFormat int16) []byte {
	b := make([]byte, 54)
	be.PutUint32(b[0:], 0x00010000)  // version
	be.PutUint32(b[4:], 0x00018000)  // fontRevision 1.5
	be.PutUint32(b[12:], 0x5F0F3CF5) // magic number
	be.PutUint16(b[16:], 0x000B)     // flags
	be.PutUint16(b[18:], upem)
	for i, v := range bbox {
		be.PutUint16(b[36+2*i:], uint16(v))
	}
	be.PutUint16(b[50:], uint16(locFormat))
	return b
}

func HHeaTable(ascent, descent int16, numberOfHMetrics uint16) []byte {
	b := make([]byte, 36)
	be.PutUint32(b[0:], 0x00010000)
	be.PutUint16(b[4:], uint16(ascent))
	be.PutUint16(b[6:], uint16(descent))
	be.PutUint16(b[34:], numberOfHMetrics)
	return b
}

func MaxPTable(numGlyphs uint16) []byte {
	b := make([]byte, 6)
	be.PutUint32(b[0:], 0x00005000) // version 0.5
	be.PutUint16(b[4:], numGlyphs)
	return b
}

func HMtxTable(advances ...uint16) []byte {
	b := make([]byte, 0, 4*len(advances))
	for _, aw := range advances {
		b = be.AppendUint16(b, aw)
		b = be.AppendUint16(b, 0) // lsb
	}
	return b
}

func PostTable(italicAngle int32, fixedPitch uint32) []byte {
	b := make([]byte, 32)
	be.PutUint32(b[0:], 0x00030000)
	be.PutUint32(b[4:], uint32(italicAngle))
	be.PutUint32(b[12:], fixedPitch)
	return b
}

// OS2Table creates a version 2 OS/2 table, which includes sCapHeight.
func OS2Table(fsType uint16, familyClass int16, ranges [4]uint32, capHeight int16) []byte {
	b := make([]byte, 96)
	be.PutUint16(b[0:], 2)
	be.PutUint16(b[8:], fsType)
	be.PutUint16(b[30:], uint16(familyClass))
	for i, r := range ranges {
		be.PutUint32(b[42+4*i:], r)
	}
	be.PutUint16(b[88:], uint16(capHeight))
	return b
}

type NameRecord struct {
	Platform uint16
	ID       uint16
	Text     string
}

func NameTable(records ...NameRecord) []byte {
	var storage []byte
	b := be.AppendUint16(nil, 0)
	b = be.AppendUint16(b, uint16(len(records)))
	b = be.AppendUint16(b, uint16(6+12*len(records)))
	for _, rec := range records {
		var s []byte
		encoding := uint16(0)
		if rec.Platform == 1 {
			s = []byte(rec.Text)
		} else {
			encoding = 1
			for _, u := range utf16.Encode([]rune(rec.Text)) {
				s = be.AppendUint16(s, u)
			}
		}
		b = be.AppendUint16(b, rec.Platform)
		b = be.AppendUint16(b, encoding)
		b = be.AppendUint16(b, 0) // language
		b = be.AppendUint16(b, rec.ID)
		b = be.AppendUint16(b, uint16(len(s)))
		b = be.AppendUint16(b, uint16(len(storage)))
		storage = append(storage, s...)
	}
	return append(b, storage...)
}

// SimpleGlyph creates a glyph description with one contour of one point.
func SimpleGlyph(xMin, yMin, xMax, yMax int16) []byte {
	b := be.AppendUint16(nil, 1) // numberOfContours
	for _, v := range []int16{xMin, yMin, xMax, yMax} {
		b = be.AppendUint16(b, uint16(v))
	}
	b = be.AppendUint16(b, 0)       // endPtsOfContours[0]
	b = be.AppendUint16(b, 2)       // instructionLength
	b = append(b, 0xb0, 0x01)       // PUSHB[000] 1
	b = append(b, 0x01, 0, 0, 0, 0) // flags: on curve; x, y
	return b
}

// CompositeGlyph creates a glyph header flagged as composite, without components.
func CompositeGlyph(xMin, yMin, xMax, yMax int16) []byte {
	b := be.AppendUint16(nil, 0xffff) // numberOfContours = -1
	for _, v := range []int16{xMin, yMin, xMax, yMax} {
		b = be.AppendUint16(b, uint16(v))
	}
	return b
}

// LocaGlyf lays out glyph descriptions and returns tables loca and glyf.
// A nil glyph has no outline.
func LocaGlyf(format int16, glyphs ...[]byte) (loca, glyf []byte) {
	offsets := []uint32{0}
	for _, g := range glyphs {
		glyf = append(glyf, g...)
		if len(glyf)%2 != 0 {
			glyf = append(glyf, 0)
		}
		offsets = append(offsets, uint32(len(glyf)))
	}
	for _, off := range offsets {
		if format == 0 {
			loca = be.AppendUint16(loca, uint16(off/2))
		} else {
			loca = be.AppendUint32(loca, off)
		}
	}
	return
}

// CMapSubtable is an encoding record together with a complete sub-table.
type CMapSubtable struct {
	Platform, Encoding uint16
	Data               []byte
}

func CMapTable(subtables ...CMapSubtable) []byte {
	b := be.AppendUint16(nil, 0)
	b = be.AppendUint16(b, uint16(len(subtables)))
	offset := 4 + 8*len(subtables)
	var data []byte
	for _, st := range subtables {
		b = be.AppendUint16(b, st.Platform)
		b = be.AppendUint16(b, st.Encoding)
		b = be.AppendUint32(b, uint32(offset+len(data)))
		data = append(data, st.Data...)
	}
	return append(b, data...)
}

func CMapFormat0(glyphs map[byte]uint8) []byte {
	b := be.AppendUint16(nil, 0)
	b = be.AppendUint16(b, 262)
	b = be.AppendUint16(b, 0)
	arr := make([]byte, 256)
	for c, g := range glyphs {
		arr[c] = g
	}
	return append(b, arr...)
}

func CMapFormat6(firstCode uint16, glyphs ...uint16) []byte {
	b := be.AppendUint16(nil, 6)
	b = be.AppendUint16(b, uint16(10+2*len(glyphs)))
	b = be.AppendUint16(b, 0)
	b = be.AppendUint16(b, firstCode)
	b = be.AppendUint16(b, uint16(len(glyphs)))
	for _, g := range glyphs {
		b = be.AppendUint16(b, g)
	}
	return b
}

// Segment4 is a segment of a format 4 sub-table. If glyphs is non-nil, the segment
// uses idRangeOffset to index into glyphIdArray, otherwise it maps by delta.
type Segment4 struct {
	Start, End uint16
	Delta      int16
	Glyphs     []uint16
}

// CMapFormat4 creates a format 4 sub-table. The closing 0xFFFF segment is appended
// automatically.
func CMapFormat4(segments ...Segment4) []byte {
	segments = append(segments, Segment4{Start: 0xffff, End: 0xffff, Delta: 1})
	n := len(segments)
	var ends, starts, deltas, rangeOffsets, glyphIDs []byte
	glyphCount := 0
	for i, s := range segments {
		ends = be.AppendUint16(ends, s.End)
		starts = be.AppendUint16(starts, s.Start)
		deltas = be.AppendUint16(deltas, uint16(s.Delta))
		if s.Glyphs == nil {
			rangeOffsets = be.AppendUint16(rangeOffsets, 0)
			continue
		}
		// distance in bytes from this idRangeOffset entry to its first glyph ID
		ro := 2*(n-i) + 2*glyphCount
		rangeOffsets = be.AppendUint16(rangeOffsets, uint16(ro))
		for _, g := range s.Glyphs {
			glyphIDs = be.AppendUint16(glyphIDs, g)
		}
		glyphCount += len(s.Glyphs)
	}
	length := 16 + 8*n + 2*glyphCount
	b := be.AppendUint16(nil, 4)
	b = be.AppendUint16(b, uint16(length))
	b = be.AppendUint16(b, 0) // language
	b = be.AppendUint16(b, uint16(2*n))
	b = be.AppendUint16(b, 0) // searchRange, entrySelector, rangeShift
	b = be.AppendUint16(b, 0)
	b = be.AppendUint16(b, 0)
	b = append(b, ends...)
	b = be.AppendUint16(b, 0) // reservedPad
	b = append(b, starts...)
	b = append(b, deltas...)
	b = append(b, rangeOffsets...)
	return append(b, glyphIDs...)
}

// --- Complete fonts --------------------------------------------------------

// MonospaceFont is a minimal font: unitsPerEm 2048, 5 glyphs sharing a single
// horizontal metric.
func MonospaceFont() *FontBuilder {
	loca, glyf := LocaGlyf(0,
		SimpleGlyph(0, 0, 1024, 1400),
		nil,
		SimpleGlyph(100, -400, 900, 1500),
		CompositeGlyph(0, 0, 1000, 1000),
		SimpleGlyph(50, 0, 950, 1400),
	)
	return NewFontBuilder().
		Add("head", HeadTable(2048, [4]int16{0, -500, 1500, 2000}, 0)).
		Add("hhea", HHeaTable(1600, -400, 1)).
		Add("maxp", MaxPTable(5)).
		Add("hmtx", HMtxTable(1024)).
		Add("loca", loca).
		Add("glyf", glyf)
}

// FullFont is a font with 1000 units per em, carrying all optional tables.
func FullFont() *FontBuilder {
	loca, glyf := LocaGlyf(1,
		SimpleGlyph(50, 0, 450, 700),
		SimpleGlyph(20, -10, 580, 710),
		SimpleGlyph(30, 0, 520, 690),
		nil,
	)
	return NewFontBuilder().
		Add("head", HeadTable(1000, [4]int16{-50, -250, 1100, 950}, 1)).
		Add("hhea", HHeaTable(900, -220, 4)).
		Add("maxp", MaxPTable(4)).
		Add("hmtx", HMtxTable(500, 600, 550, 250)).
		Add("loca", loca).
		Add("glyf", glyf).
		Add("post", PostTable(-12<<16, 0)).
		Add("OS/2", OS2Table(0, 1<<8|2, [4]uint32{1, 0, 0, 0}, 680)).
		Add("name", NameTable(
			NameRecord{Platform: 3, ID: 1, Text: "Testfont"},
			NameRecord{Platform: 3, ID: 2, Text: "Bold Italic"},
			NameRecord{Platform: 3, ID: 4, Text: "Testfont Bold Italic"},
			NameRecord{Platform: 1, ID: 6, Text: "Testfont-BoldItalic"},
			NameRecord{Platform: 3, ID: 15, Text: "reserved"},
		)).
		Add("cmap", CMapTable(
			CMapSubtable{Platform: 1, Encoding: 0, Data: CMapFormat0(map[byte]uint8{'A': 1, 'B': 2})},
			CMapSubtable{Platform: 3, Encoding: 1, Data: CMapFormat4(
				Segment4{Start: 'A', End: 'B', Delta: 1 - 'A'},
				Segment4{Start: 'a', End: 'c', Glyphs: []uint16{2, 0, 1}},
			)},
		))
}
