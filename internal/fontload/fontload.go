package fontload

import (
	"os"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/image/font/sfnt"
)

// tracer writes to trace with key 'sfnt.metrics'
func tracer() tracing.Trace {
	return tracing.Select("sfnt.metrics")
}

// FontFile is the binary content of a font file, read once into memory.
type FontFile struct {
	Fontname string // full name as found by x/image/font/sfnt; may be empty
	Filepath string
	Binary   []byte
}

// LoadFontFile reads a font file (TTF) completely into memory.
// Decoding happens later, from the in-memory copy.
func LoadFontFile(fontfile string) (*FontFile, error) {
	bytez, err := os.ReadFile(fontfile)
	if err != nil {
		return nil, err
	}
	f := FromBytes(bytez)
	f.Filepath = fontfile
	return f, nil
}

// FromBytes wraps font data. As a cross-check, the data is handed to
// x/image/font/sfnt to retrieve the font's full name. A font sfnt cannot read is
// not necessarily broken for our purposes, therefore this is not an error.
func FromBytes(fbytes []byte) *FontFile {
	f := &FontFile{Binary: fbytes}
	sf, err := sfnt.Parse(fbytes)
	if err != nil {
		tracer().Infof("x/image/sfnt cannot parse font: %v", err)
		return f
	}
	if f.Fontname, err = sf.Name(nil, sfnt.NameIDFull); err != nil {
		tracer().Debugf("font has no full name: %v", err)
	}
	return f
}
