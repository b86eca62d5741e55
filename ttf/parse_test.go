package ttf

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sfntmetrics/internal/ttftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMinimalMonospaceFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	f, err := Parse(ttftest.MonospaceFont().Build())
	require.NoError(t, err)
	assert.Equal(t, uint16(2048), f.Head.UnitsPerEm)
	assert.Equal(t, 1.5, f.Head.FontRevision)
	bbox := [4]int{f.Head.XMin, f.Head.YMin, f.Head.XMax, f.Head.YMax}
	assert.Equal(t, [4]int{0, -244, 733, 977}, bbox)
	assert.Equal(t, 782, f.HHea.Ascent)
	assert.Equal(t, -195, f.HHea.Descent)
	assert.Equal(t, 5, f.NumGlyphs())
	assert.Equal(t, []int{500, 500, 500, 500, 500}, f.HMtx.GlyphWidths)
	assert.Equal(t, 500, f.HMtx.MissingWidth)
	assert.Nil(t, f.Post)
	assert.Nil(t, f.OS2)
	assert.Nil(t, f.Name)
	assert.Nil(t, f.CMap)
	assert.Empty(t, f.Warnings())
	assert.Equal(t, GlyphIndex(0), f.GlyphIndex('A'))
}

func TestGlyphHeaders(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	f, err := Parse(ttftest.MonospaceFont().Build())
	require.NoError(t, err)
	require.Len(t, f.Glyf.Glyphs, 5)
	g, ok := f.Glyf.Glyph(2)
	require.True(t, ok)
	want := Glyph{
		NumberOfContours: 1,
		XMin:             49,
		YMin:             -195,
		XMax:             440,
		YMax:             733,
		Width:            489,
		EndPtsOfContours: []uint16{0},
		Instructions:     []byte{0xb0, 0x01},
		FirstFlag:        0x01,
	}
	if diff := cmp.Diff(want, g); diff != "" {
		t.Errorf("glyph 2 mismatch (-want +got):\n%s", diff)
	}
	empty, _ := f.Glyf.Glyph(1)
	assert.True(t, cmp.Equal(Glyph{}, empty), "glyph without outline should be zero")
	composite, _ := f.Glyf.Glyph(3)
	assert.True(t, composite.IsComposite())
	assert.Equal(t, 489, composite.XMax)
	assert.Nil(t, composite.EndPtsOfContours)
	_, ok = f.Glyf.Glyph(5)
	assert.False(t, ok)
	assert.Equal(t, []int{500, 0, 489, 489, 489}, f.Glyf.Widths()[:5])
}

func TestLocaOffsetIntegrity(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	for _, fb := range []*ttftest.FontBuilder{ttftest.MonospaceFont(), ttftest.FullFont()} {
		f, err := Parse(fb.Build())
		require.NoError(t, err)
		offsets := f.Loca.Offsets
		require.Len(t, offsets, f.NumGlyphs()+1)
		for i := 1; i < len(offsets); i++ {
			assert.LessOrEqual(t, offsets[i-1], offsets[i], "loca offsets must not decrease")
		}
		glyf, _ := f.Directory.Entry(T("glyf"))
		assert.LessOrEqual(t, offsets[f.NumGlyphs()], glyf.Length)
		start, end := f.Loca.Extent(1)
		assert.Equal(t, offsets[1], start)
		assert.Equal(t, offsets[2], end)
	}
}

func TestHMtxPadding(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	fb := ttftest.FullFont().
		Add("hhea", ttftest.HHeaTable(900, -220, 2)).
		Add("hmtx", ttftest.HMtxTable(500, 600))
	f, err := Parse(fb.Build())
	require.NoError(t, err)
	assert.Equal(t, []int{500, 600, 600, 600}, f.HMtx.GlyphWidths)
	assert.Equal(t, 600, f.HMtx.Width(3))
	assert.Equal(t, 500, f.HMtx.Width(99), "glyphs outside the font should get the missing width")
	//
	fb = ttftest.FullFont().
		Add("hhea", ttftest.HHeaTable(900, -220, 6)).
		Add("hmtx", ttftest.HMtxTable(500, 600, 550, 250, 10, 20))
	f, err = Parse(fb.Build())
	require.NoError(t, err)
	assert.Len(t, f.HMtx.GlyphWidths, 4)
	assert.Len(t, f.Warnings(), 1)
}

func TestMissingRequiredTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	for _, tag := range []string{"head", "hhea", "maxp", "hmtx", "loca", "glyf"} {
		_, err := Parse(ttftest.MonospaceFont().Drop(tag).Build())
		var missing *MissingTableError
		require.True(t, errors.As(err, &missing), "expected MissingTableError for %s, got %v", tag, err)
		assert.Equal(t, T(tag), missing.Tag)
	}
	// loca is detected before any glyph data is looked at, even if glyf is broken as well
	fb := ttftest.MonospaceFont().Drop("loca").Add("glyf", []byte{0xff})
	_, err := Parse(fb.Build())
	assert.EqualError(t, err, "missing required table 'loca'")
}

func TestTruncatedRequiredTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	fb := ttftest.MonospaceFont().Add("hhea", ttftest.HHeaTable(1600, -400, 1)[:20])
	f, err := Parse(fb.Build())
	assert.Nil(t, f, "no partial font may be returned")
	var trunc *TruncatedTableError
	require.True(t, errors.As(err, &trunc), "expected TruncatedTableError, got %v", err)
	assert.Equal(t, T("hhea"), trunc.Tag)
	dir, err := ParseDirectory(fb.Build())
	require.NoError(t, err)
	hhea, _ := dir.Entry(T("hhea"))
	assert.Equal(t, int(hhea.Offset)+34, trunc.Offset, "numberOfHMetrics lies beyond the table")
	//
	fb = ttftest.MonospaceFont()
	loca, _ := ttftest.LocaGlyf(0, ttftest.SimpleGlyph(0, 0, 10, 10), nil, nil, nil, ttftest.SimpleGlyph(0, 0, 10, 10))
	fb.Add("loca", loca).Add("glyf", make([]byte, 10))
	_, err = Parse(fb.Build())
	require.True(t, errors.As(err, &trunc), "expected TruncatedTableError for glyf, got %v", err)
	assert.Equal(t, T("glyf"), trunc.Tag)
}

func TestDecreasingLocaOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	var loca []byte
	for _, off := range []uint32{44, 0, 44} {
		loca = be.AppendUint32(loca, off)
	}
	fb := ttftest.MonospaceFont().
		Add("head", ttftest.HeadTable(2048, [4]int16{}, 1)).
		Add("maxp", ttftest.MaxPTable(2)).
		Add("loca", loca).
		Add("glyf", make([]byte, 44))
	f, err := Parse(fb.Build())
	assert.Nil(t, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedFont), "decreasing loca offsets must be rejected, got %v", err)
	assert.Contains(t, err.Error(), "loca")
	//
	// an empty glyph beyond the end of glyf is rejected as well
	loca = nil
	for _, off := range []uint32{0, 0, 60} {
		loca = be.AppendUint32(loca, off)
	}
	fb.Add("loca", loca)
	_, err = Parse(fb.Build())
	var trunc *TruncatedTableError
	require.True(t, errors.As(err, &trunc), "expected TruncatedTableError, got %v", err)
	assert.Equal(t, T("glyf"), trunc.Tag)
}

func TestMalformedRequiredTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	fb := ttftest.MonospaceFont().Add("head", ttftest.HeadTable(0, [4]int16{}, 0))
	_, err := Parse(fb.Build())
	assert.True(t, errors.Is(err, ErrMalformedFont), "unitsPerEm of 0 must be rejected")
	//
	fb = ttftest.MonospaceFont().Add("head", ttftest.HeadTable(2048, [4]int16{}, 2))
	_, err = Parse(fb.Build())
	assert.True(t, errors.Is(err, ErrMalformedFont), "indexToLocFormat 2 must be rejected")
}

func TestOptionalTables(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	f, err := Parse(ttftest.FullFont().Build())
	require.NoError(t, err)
	require.NotNil(t, f.Post)
	assert.Equal(t, -12.0, f.Post.ItalicAngle)
	assert.False(t, f.Post.IsFixedPitch)
	require.NotNil(t, f.OS2)
	require.NotNil(t, f.Name)
	require.NotNil(t, f.CMap)
	assert.Empty(t, f.Warnings())
	//
	fb := ttftest.FullFont().Add("OS/2", ttftest.OS2Table(0, 0, [4]uint32{}, 0)[:40])
	f, err = Parse(fb.Build())
	require.NoError(t, err, "a broken OS/2 table must not fail the font")
	assert.Nil(t, f.OS2)
	require.Len(t, f.Warnings(), 1)
	w := f.Warnings()[0]
	assert.Equal(t, T("OS/2"), w.Table)
	assert.NotZero(t, w.Offset)
	var trunc *TruncatedTableError
	assert.True(t, errors.As(w.Err, &trunc))
	t.Logf("warning: %s", w)
}

func TestParseOptions(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	f, err := Parse(ttftest.FullFont().Build(), IgnoreNames, IgnoreCMap)
	require.NoError(t, err)
	assert.Nil(t, f.Name)
	assert.Nil(t, f.CMap)
	assert.NotNil(t, f.OS2)
	//
	_, err = Parse(ttftest.FullFont().Drop("hmtx").Build())
	assert.Error(t, err)
	f, err = Parse(ttftest.FullFont().Drop("hmtx").Build(), RelaxHMtx)
	require.NoError(t, err)
	assert.Nil(t, f.HMtx)
	assert.Len(t, f.Warnings(), 1)
	assert.NotEmpty(t, f.Binary())
}
