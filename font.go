package sfntmetrics

import (
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/sfntmetrics/fontmodel"
	"github.com/npillmayer/sfntmetrics/ttf"
)

// tracer writes to trace with key 'sfnt.metrics'
func tracer() tracing.Trace {
	return tracing.Select("sfnt.metrics")
}

// Font is a decoded TrueType font together with its derived metrics.
// Fonts are read-only after loading and may be shared between goroutines.
type Font struct {
	Fontname string
	Filepath string // empty for fonts loaded from memory
	TTF      *ttf.Font
	Model    *fontmodel.Model
}

// Descriptor returns the fields of a PDF FontDescriptor for f.
func (f *Font) Descriptor() fontmodel.Descriptor {
	return f.Model.Descriptor()
}

// Widths returns the /Widths array of a PDF simple font for character codes
// first…last.
func (f *Font) Widths(first, last rune) ([]int, error) {
	return fontmodel.PDFWidths(f.Model, f.TTF, first, last)
}

// Warnings returns the warnings collected while decoding the font.
func (f *Font) Warnings() []ttf.FontWarning {
	return f.TTF.Warnings()
}
