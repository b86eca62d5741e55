package fontmodel

import (
	"errors"
	"slices"
	"strings"

	"github.com/npillmayer/sfntmetrics/ttf"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/cases"
)

// ErrIncompleteFont is returned by Build for a font lacking one of the tables
// every metric depends on.
var ErrIncompleteFont = errors.New("font lacks tables required for metrics")

// Stem width heuristic values.
const (
	StemVRegular = 70
	StemVBold    = 120
)

// BBox is a bounding box in EM space 1000.
type BBox struct {
	XMin, YMin, XMax, YMax int
}

// Model is the aggregate of a font's global metrics. It is created once per font
// and never mutated afterwards. Every length is expressed in EM space 1000.
type Model struct {
	FontName       string // PostScript name, or full name as a fallback
	FamilyName     string
	UnitsPerEm     int // native units of the font, informational
	BBox           BBox
	Ascent         int
	Descent        int
	CapHeight      int
	NumberOfGlyphs int
	GlyphWidths    []int // indexed by glyph ID
	MissingWidth   int
	ItalicAngle    float64
	IsItalic       bool
	IsFixedPitch   bool
	StemV          int
	Embeddable     bool
	IsSerif        bool
	IsScript       bool
	IsSymbolic     bool
	Flags          Flags
}

// Build aggregates the decoded tables of f into a Model. It performs no I/O and
// no further decoding.
//
// Optional tables contribute their values if present, otherwise documented
// defaults are used: without OS/2, CapHeight is Ascent+Descent and the font is
// considered embeddable; without post, the font is neither italic nor fixed-pitch;
// without name, StemV is StemVRegular.
func Build(f *ttf.Font) (*Model, error) {
	if f == nil || f.Head == nil || f.HHea == nil || f.MaxP == nil {
		return nil, ErrIncompleteFont
	}
	m := &Model{
		UnitsPerEm: int(f.Head.UnitsPerEm),
		BBox: BBox{
			XMin: f.Head.XMin,
			YMin: f.Head.YMin,
			XMax: f.Head.XMax,
			YMax: f.Head.YMax,
		},
		Ascent:         f.HHea.Ascent,
		Descent:        f.HHea.Descent,
		NumberOfGlyphs: int(f.MaxP.NumberOfGlyphs),
		StemV:          StemVRegular,
		Embeddable:     true,
	}
	switch {
	case f.HMtx != nil:
		m.GlyphWidths = slices.Clone(f.HMtx.GlyphWidths)
		m.MissingWidth = f.HMtx.MissingWidth
	case f.Glyf != nil:
		tracer().Infof("no hmtx table, taking glyph widths from glyf")
		m.GlyphWidths = f.Glyf.Widths()
		if len(m.GlyphWidths) > 0 {
			m.MissingWidth = m.GlyphWidths[0]
		}
	default:
		return nil, ErrIncompleteFont
	}
	m.CapHeight = m.Ascent + m.Descent
	if os2 := f.OS2; os2 != nil {
		if os2.HasCapHeight {
			m.CapHeight = os2.CapHeight
		}
		m.Embeddable = os2.Embeddable
		m.IsSerif = os2.IsSerif
		m.IsScript = os2.IsScript
		m.IsSymbolic = os2.IsSymbolic
	}
	if post := f.Post; post != nil {
		m.ItalicAngle = post.ItalicAngle
		m.IsItalic = post.ItalicAngle != 0
		m.IsFixedPitch = post.IsFixedPitch
	}
	if names := f.Name; names != nil {
		m.FamilyName = names.Get(sfnt.NameIDFamily)
		m.FontName = names.Get(sfnt.NameIDPostScript)
		if m.FontName == "" {
			m.FontName = names.Get(sfnt.NameIDFull)
		}
		if looksBold(names.Get(sfnt.NameIDFamily), names.Get(sfnt.NameIDFull),
			names.Get(sfnt.NameIDPostScript)) {
			m.StemV = StemVBold
		}
	}
	m.Flags = makeFlags(m.IsFixedPitch, m.IsItalic)
	tracer().Debugf("font model for '%s': flags = %s, stemV = %d", m.FontName, m.Flags, m.StemV)
	return m, nil
}

// looksBold is true if any of the names mentions "bold", disregarding case.
func looksBold(names ...string) bool {
	fold := cases.Fold()
	for _, name := range names {
		if strings.Contains(fold.String(name), "bold") {
			return true
		}
	}
	return false
}

// Width returns the width of glyph gid, or MissingWidth for glyph IDs
// outside the font.
func (m *Model) Width(gid ttf.GlyphIndex) int {
	if int(gid) >= len(m.GlyphWidths) {
		return m.MissingWidth
	}
	return m.GlyphWidths[gid]
}

// Descriptor is the field set of a PDF FontDescriptor dictionary, as far as it
// can be derived from the font's tables. It is plain data for a PDF writer.
type Descriptor struct {
	FontName     string
	Flags        Flags
	FontBBox     BBox
	ItalicAngle  float64
	Ascent       int
	Descent      int
	CapHeight    int
	StemV        int
	MissingWidth int
}

// Descriptor returns the PDF font descriptor fields of the model.
func (m *Model) Descriptor() Descriptor {
	return Descriptor{
		FontName:     m.FontName,
		Flags:        m.Flags,
		FontBBox:     m.BBox,
		ItalicAngle:  m.ItalicAngle,
		Ascent:       m.Ascent,
		Descent:      m.Descent,
		CapHeight:    m.CapHeight,
		StemV:        m.StemV,
		MissingWidth: m.MissingWidth,
	}
}
