/*
Package fontmodel aggregates the decoded tables of a TrueType font into the set of
global metrics a PDF font descriptor is made of.

A Model is built once from a ttf.Font and is read-only thereafter. All lengths are
expressed in a 1000-unit EM space, i.e. in PDF glyph space units. Normalization
has already happened when the tables were decoded; package fontmodel never scales
a value itself.

	otf, err := ttf.Parse(data)
	...
	m, err := fontmodel.Build(otf)
	fd := m.Descriptor()

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © Norbert Pillmayer <norbert@pillmayer.com>
*/
package fontmodel

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'sfnt.metrics'
func tracer() tracing.Trace {
	return tracing.Select("sfnt.metrics")
}
