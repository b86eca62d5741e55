/*
Package sfntmetrics derives the global metrics of TrueType fonts, as needed for
embedding a font into PDF documents.

The work is split among the following packages:

▪︎ Package `ttf` reads the table directory of a font and decodes the tables
head, hhea, maxp, hmtx, loca, glyf, post, OS/2, name and cmap. Values in font
units are normalized to a 1000-unit EM space during decoding.

▪︎ Package `fontmodel` aggregates the decoded tables into a read-only Model
(bounding box, ascent, descent, cap height, glyph widths, stem width, PDF
descriptor flags, …).

Package sfntmetrics itself offers a convenience API on top of both. It does not
write PDF; a PDF writer consumes `fontmodel.Descriptor` and /Widths arrays as
plain data.

# Links

TrueType reference manual:
https://developer.apple.com/fonts/TrueType-Reference-Manual/

OpenType explained:
https://docs.microsoft.com/en-us/typography/opentype/

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package sfntmetrics

import (
	"github.com/npillmayer/sfntmetrics/fontmodel"
	"github.com/npillmayer/sfntmetrics/internal/fontload"
	"github.com/npillmayer/sfntmetrics/ttf"
	"golang.org/x/image/font/sfnt"
)

// FromBinary parses raw TrueType bytes and derives the font's metrics.
//
// The input is expected to contain a complete single-font SFNT stream.
// It must not change after parsing for the font to be usable.
func FromBinary(data []byte, opts ...ttf.ParseOption) (*Font, error) {
	return fromFontFile(fontload.FromBytes(data), opts)
}

// LoadFontFile reads a TrueType font file into memory and derives the font's
// metrics.
func LoadFontFile(path string, opts ...ttf.ParseOption) (*Font, error) {
	ff, err := fontload.LoadFontFile(path)
	if err != nil {
		return nil, err
	}
	return fromFontFile(ff, opts)
}

func fromFontFile(ff *fontload.FontFile, opts []ttf.ParseOption) (*Font, error) {
	otf, err := ttf.Parse(ff.Binary, opts...)
	if err != nil {
		return nil, err
	}
	m, err := fontmodel.Build(otf)
	if err != nil {
		return nil, err
	}
	f := &Font{
		Fontname: m.FontName,
		Filepath: ff.Filepath,
		TTF:      otf,
		Model:    m,
	}
	if f.Fontname == "" {
		f.Fontname = ff.Fontname
	}
	tracer().Debugf("loaded font '%s' with %d glyphs", f.Fontname, m.NumberOfGlyphs)
	return f, nil
}

// FamilyName extracts family and subfamily names from a font's `name` table.
//
// Returned values are empty if no matching records exist, or if the font has been
// parsed without its name table.
func FamilyName(f *Font) (family, subfamily string) {
	if f == nil || f.TTF == nil {
		return
	}
	family = f.TTF.Name.Get(sfnt.NameIDFamily)
	subfamily = f.TTF.Name.Get(sfnt.NameIDSubfamily)
	return
}
