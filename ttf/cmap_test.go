package ttf

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sfntmetrics/internal/ttftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCMapPreferredSubtable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	f, err := Parse(ttftest.FullFont().Build())
	require.NoError(t, err)
	cmap := f.CMap
	require.Len(t, cmap.Subtables, 2)
	assert.Equal(t, "Mac Roman", cmap.Subtables[0].EncodingName())
	assert.Equal(t, "Microsoft Unicode", cmap.Subtables[1].EncodingName())
	pref := cmap.Preferred()
	require.NotNil(t, pref)
	assert.Equal(t, uint16(3), pref.PlatformID)
	assert.Equal(t, uint16(4), pref.Format)
	cases := []struct {
		r   rune
		gid GlyphIndex
		ok  bool
	}{
		{'A', 1, true},
		{'B', 2, true},
		{'C', 0, false},
		{'a', 2, true},
		{'b', 0, false}, // maps to glyph 0 in glyphIdArray
		{'c', 1, true},
		{'@', 0, false},
		{0x10000, 0, false},
	}
	for _, c := range cases {
		gid, ok := cmap.Lookup(c.r)
		assert.Equal(t, c.ok, ok, "lookup of %q", c.r)
		assert.Equal(t, c.gid, gid, "glyph for %q", c.r)
	}
	assert.Equal(t, GlyphIndex(1), f.GlyphIndex('c'))
}

func TestCMapFormat0(t *testing.T) {
	st, err := parseByteEncoding(binarySegm(ttftest.CMapFormat0(map[byte]uint8{'x': 7}))[6:])
	require.NoError(t, err)
	gid, ok := st.Lookup('x')
	assert.True(t, ok)
	assert.Equal(t, GlyphIndex(7), gid)
	_, ok = st.Lookup('y')
	assert.False(t, ok)
	_, ok = st.Lookup(256)
	assert.False(t, ok)
	_, err = parseByteEncoding(make(binarySegm, 100))
	assert.True(t, errors.Is(err, ErrMalformedFont))
}

func TestCMapFormat6(t *testing.T) {
	st, err := parseTrimmedTable(binarySegm(ttftest.CMapFormat6(0x20, 3, 4, 5))[6:])
	require.NoError(t, err)
	assert.Equal(t, uint16(0x20), st.FirstCode)
	for r, want := range map[rune]GlyphIndex{0x20: 3, 0x21: 4, 0x22: 5} {
		gid, ok := st.Lookup(r)
		assert.True(t, ok)
		assert.Equal(t, want, gid)
	}
	for _, r := range []rune{0x1f, 0x23, -1} {
		_, ok := st.Lookup(r)
		assert.False(t, ok, "rune %x should not be mapped", r)
	}
	_, err = parseTrimmedTable(binarySegm(ttftest.CMapFormat6(0x20, 3, 4, 5))[6:10])
	assert.True(t, errors.Is(err, ErrMalformedFont))
}

func TestCMapFormat4(t *testing.T) {
	data := ttftest.CMapFormat4(
		ttftest.Segment4{Start: 0x20, End: 0x7e, Delta: -29},
		ttftest.Segment4{Start: 0x391, End: 0x393, Glyphs: []uint16{200, 201, 202}},
		ttftest.Segment4{Start: 0x3b1, End: 0x3b2, Delta: 10, Glyphs: []uint16{100, 0}},
		ttftest.Segment4{Start: 0xfff0, End: 0xfff0, Delta: 0x20},
	)
	st, err := parseSegmentToDelta(binarySegm(data)[6:])
	require.NoError(t, err)
	assert.Equal(t, uint16(10), st.SegCountX2)
	assert.Len(t, st.EndCode, 5)
	cases := map[rune]GlyphIndex{
		0x20:   3,
		'A':    36,
		0x7e:   97,
		0x391:  200,
		0x393:  202,
		0x3b1:  110,  // glyphIdArray value + idDelta
		0xfff0: 0x10, // modulo 65536
	}
	for r, want := range cases {
		gid, ok := st.Lookup(r)
		assert.True(t, ok, "rune %x should be mapped", r)
		assert.Equal(t, want, gid, "glyph for rune %x", r)
	}
	for _, r := range []rune{0x1f, 0x7f, 0x394, 0x3b2, 0xffff, -5} {
		_, ok := st.Lookup(r)
		assert.False(t, ok, "rune %x should not be mapped", r)
	}
	// odd segCountX2
	bad := append([]byte{}, data...)
	be.PutUint16(bad[6:], 9)
	_, err = parseSegmentToDelta(binarySegm(bad)[6:])
	assert.True(t, errors.Is(err, ErrMalformedFont))
}

func TestCMapUnsupportedFormat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	format12 := be.AppendUint16(nil, 12)
	format12 = be.AppendUint16(format12, 0)
	format12 = be.AppendUint32(format12, 28)
	format12 = be.AppendUint32(format12, 0)
	format12 = be.AppendUint32(format12, 1) // one group
	format12 = be.AppendUint32(format12, 0x1f600)
	format12 = be.AppendUint32(format12, 0x1f600)
	format12 = be.AppendUint32(format12, 3)
	fb := ttftest.FullFont().Add("cmap", ttftest.CMapTable(
		ttftest.CMapSubtable{Platform: 3, Encoding: 10, Data: format12},
		ttftest.CMapSubtable{Platform: 0, Encoding: 3, Data: ttftest.CMapFormat6('A', 1, 2)},
	))
	f, err := Parse(fb.Build())
	require.NoError(t, err)
	require.NotNil(t, f.CMap)
	st := f.CMap.Subtables[0]
	assert.Equal(t, uint16(12), st.Format)
	assert.Equal(t, uint32(28), st.Length)
	assert.Len(t, st.Data, 16, "raw data should be retained")
	assert.Nil(t, st.Parsed)
	require.Len(t, f.Warnings(), 1)
	var unsupported *UnsupportedCmapFormatError
	require.True(t, errors.As(f.Warnings()[0].Err, &unsupported))
	assert.Equal(t, uint16(12), unsupported.Format)
	// lookups fall back to the Unicode sub-table
	assert.Equal(t, GlyphIndex(2), f.GlyphIndex('B'))
	assert.Equal(t, "Unicode", f.CMap.Preferred().EncodingName())
}

func TestCMapBrokenHeader(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	cmap := ttftest.CMapTable(ttftest.CMapSubtable{Platform: 3, Encoding: 1, Data: ttftest.CMapFormat6('A', 1)})
	f, err := Parse(ttftest.FullFont().Add("cmap", cmap[:8]).Build())
	require.NoError(t, err)
	assert.Nil(t, f.CMap)
	require.Len(t, f.Warnings(), 1)
	assert.Equal(t, T("cmap"), f.Warnings()[0].Table)
}
