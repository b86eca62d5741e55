package ttf

// Font is a decoded TrueType font. It holds the table directory and typed access
// to every table needed to describe the font's global metrics.
//
// Required tables are always non-nil (with the exception of HMtx, see RelaxHMtx).
// Optional tables are nil if they are absent from the font, if they could not be
// decoded, or if a ParseOption told Parse to skip them.
type Font struct {
	Directory *Directory
	Head      *HeadTable
	HHea      *HHeaTable
	MaxP      *MaxPTable
	HMtx      *HMtxTable
	Loca      *LocaTable
	Glyf      *GlyfTable
	Post      *PostTable // optional
	OS2       *OS2Table  // optional
	Name      *NameTable // optional
	CMap      *CMapTable // optional

	binary   []byte
	warnings []FontWarning
	options  []ParseOption
}

// ParseOption guides and influences the parsing of the font.
type ParseOption int

const (
	IgnoreNames ParseOption = iota // do not decode table 'name'
	IgnoreCMap                     // do not decode table 'cmap'
	RelaxHMtx                      // accept fonts without table 'hmtx'; widths are taken from 'glyf'
)

// hasOption is true if the font has been parsed with option opt.
func (f *Font) hasOption(opt ParseOption) bool {
	for _, o := range f.options {
		if o == opt {
			return true
		}
	}
	return false
}

// Binary returns the font's data. Clients must not alter it.
func (f *Font) Binary() []byte {
	if f == nil {
		return nil
	}
	return f.binary
}

// Warnings returns all warnings encountered during font parsing.
// Warnings indicate optional tables which have been left out, or inconsistencies
// which have been fixed on the fly.
func (f *Font) Warnings() []FontWarning {
	if f == nil || f.warnings == nil {
		return []FontWarning{}
	}
	return f.warnings
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	if f == nil || f.MaxP == nil {
		return 0
	}
	return int(f.MaxP.NumberOfGlyphs)
}

// GlyphIndex maps a character to a glyph, using table 'cmap'. It returns 0 if the
// character is not mapped or if the font has no usable cmap.
func (f *Font) GlyphIndex(r rune) GlyphIndex {
	if f == nil || f.CMap == nil {
		return 0
	}
	gid, _ := f.CMap.Lookup(r)
	return gid
}
