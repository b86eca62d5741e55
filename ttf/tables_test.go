package ttf

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/sfntmetrics/internal/ttftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/sfnt"
)

func TestNameTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	f, err := Parse(ttftest.FullFont().Build())
	require.NoError(t, err)
	names := f.Name
	assert.Equal(t, "Testfont", names.Get(sfnt.NameIDFamily))
	assert.Equal(t, "Testfont Bold Italic", names.Get(sfnt.NameIDFull))
	assert.Equal(t, "Testfont-BoldItalic", names.Get(sfnt.NameIDPostScript), "Mac strings are taken as-is")
	assert.Len(t, names.Names, 4, "name ID 15 should be dropped")
	assert.Equal(t, "", names.Get(sfnt.NameIDVersion))
	var none *NameTable
	assert.Equal(t, "", none.Get(sfnt.NameIDFamily))
}

func TestNameTableOverwriteAndInvalid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	tbl := ttftest.NameTable(
		ttftest.NameRecord{Platform: 1, ID: 1, Text: "Mac Family"},
		ttftest.NameRecord{Platform: 3, ID: 1, Text: "Win Family"},
		ttftest.NameRecord{Platform: 3, ID: 5, Text: ""},
		ttftest.NameRecord{Platform: 0, ID: 19, Text: "Σ ✓"},
	)
	e := DirectoryEntry{Tag: T("name"), Offset: 0, Length: uint32(len(tbl))}
	names, err := parseName(tbl, e)
	require.NoError(t, err)
	assert.Equal(t, "Win Family", names.Get(sfnt.NameIDFamily), "later records overwrite earlier ones")
	assert.Equal(t, "Σ ✓", names.Get(sfnt.NameIDSampleText))
	_, ok := names.Names[sfnt.NameIDVersion]
	assert.False(t, ok, "empty strings should be dropped")
	//
	lone := ttftest.NameTable(ttftest.NameRecord{Platform: 3, ID: 1, Text: "X"})
	be.PutUint16(lone[len(lone)-2:], 0xd800) // unpaired surrogate
	names, err = parseName(lone, DirectoryEntry{Tag: T("name"), Length: uint32(len(lone))})
	require.NoError(t, err)
	assert.Equal(t, "�", names.Get(sfnt.NameIDFamily))
	//
	_, err = parseName(tbl[:30], DirectoryEntry{Tag: T("name"), Length: 30})
	assert.Error(t, err)
}

func TestOS2Classification(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "sfnt.metrics")
	defer teardown()
	//
	head := &HeadTable{UnitsPerEm: 2048}
	parse := func(tbl []byte) *OS2Table {
		os2, err := parseOS2(tbl, DirectoryEntry{Tag: T("OS/2"), Length: uint32(len(tbl))}, head)
		require.NoError(t, err)
		return os2
	}
	os2 := parse(ttftest.OS2Table(0, 3<<8|1, [4]uint32{3, 0, 0, 0}, 1400))
	assert.True(t, os2.Embeddable)
	assert.Equal(t, int8(3), os2.FamilyClass)
	assert.True(t, os2.IsSerif)
	assert.False(t, os2.IsScript)
	assert.True(t, os2.IsNonSymbolic)
	assert.True(t, os2.HasCapHeight)
	assert.Equal(t, 684, os2.CapHeight)
	//
	os2 = parse(ttftest.OS2Table(0x0002, 8<<8, [4]uint32{}, 0))
	assert.False(t, os2.Embeddable, "restricted license")
	assert.False(t, os2.IsSerif)
	os2 = parse(ttftest.OS2Table(0x0208, 10<<8, [4]uint32{}, 0))
	assert.False(t, os2.Embeddable, "bitmap embedding only")
	assert.True(t, os2.IsScript)
	os2 = parse(ttftest.OS2Table(0x0008, 12<<8, [4]uint32{2, 0, 0, 0}, 0))
	assert.True(t, os2.Embeddable, "editable embedding")
	assert.True(t, os2.IsSymbolic)
	assert.False(t, os2.IsNonSymbolic)
	os2 = parse(ttftest.OS2Table(0, 12<<8, [4]uint32{1, 0, 0, 0}, 0))
	assert.False(t, os2.IsSymbolic, "Basic Latin only forces non-symbolic")
	assert.True(t, os2.IsNonSymbolic)
	//
	v1 := ttftest.OS2Table(0, 0, [4]uint32{}, 0)[:86]
	be.PutUint16(v1, 1)
	os2 = parse(v1)
	assert.False(t, os2.HasCapHeight, "OS/2 version 1 has no sCapHeight")
}

func TestPostTable(t *testing.T) {
	tbl := ttftest.PostTable(-0x000c8000, 1) // -12.5
	post, err := parsePost(tbl, DirectoryEntry{Tag: T("post"), Length: uint32(len(tbl))})
	require.NoError(t, err)
	assert.Equal(t, -12.5, post.ItalicAngle)
	assert.True(t, post.IsFixedPitch)
	_, err = parsePost(tbl[:10], DirectoryEntry{Tag: T("post"), Length: 10})
	assert.Error(t, err)
}
