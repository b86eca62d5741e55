/*
Package ttf decodes the tables of TrueType fonts (SFNT container) which are needed
to describe a font to a PDF consumer.

Intended audience for this package are producers of PDF font descriptors and
anybody else who needs the global metrics of a TrueType font without rasterizing
it. Package `ttf` reads a font from a byte slice, decodes the table directory and
then decodes the tables

▪︎ head, hhea, maxp, hmtx, loca, glyf (required),

▪︎ post, OS/2, name, cmap (optional).

Values measured in font units are normalized to a 1000-unit EM space at decode
time, which is the coordinate system of PDF glyph space. Clients therefore never
have to look at `unitsPerEm` themselves, and must not normalize a second time.

Package `ttf` will not interpret glyph outlines beyond their bounding boxes, will
not execute hinting instructions, and will not resolve composite glyphs. Derived
metrics (flags, stem widths, …) are computed in package `fontmodel`.

# Errors

A font missing a required table, or with a required table which cannot be read
completely, is rejected. Problems with optional tables are recorded as warnings
(see `Font.Warnings`) and the table is left out.

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package ttf

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sfnt.metrics'
func tracer() tracing.Trace {
	return tracing.Select("sfnt.metrics")
}
