package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func helpOp(intp *Intp, op *Op) (error, bool) {
	help(op.arg)
	return nil, false
}

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "widths", "width":
		pterm.Info.Println("widths[:first[:last]]")
		pterm.Println(`
	Prints the /Widths array of a PDF simple font for character codes first…last.
	Codes may be given as a character ('A'), as a decimal number (65) or as U+0041.
	Character codes are mapped to glyphs with the font's cmap; codes without a glyph
	receive the font's missing width. Default range is 32…126.
	`)
	case "cmap":
		pterm.Info.Println("cmap[:char]")
		pterm.Println(`
	Without argument, lists the encoding records of table cmap:
	+-------------+-------------+--------+--------------------+
	| Platform ID | Encoding ID | Format | decoded yes/no     |
	+-------------+-------------+--------+--------------------+
	Formats 0, 4 and 6 are decoded. Lookups prefer sub-tables
	(3,1), (0,3), (0,*), (3,0), (1,0), in this order.
	With an argument, looks up the glyph for a character.
	`)
	case "descriptor", "flags":
		pterm.Info.Println("descriptor")
		pterm.Println(`
	Prints the PDF FontDescriptor derived from the font. All lengths are in glyph
	space (1000 units per EM). Flags set are FixedPitch (bit 1), Nonsymbolic (bit 6,
	always) and Italic (bit 7), counting bits from 1 as PDF does.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	tables                 list the table directory
	head                   print table head
	hhea                   print table hhea
	metrics                print the derived font metrics
	widths[:first[:last]]  print a /Widths array (help:widths)
	glyph:<gid>            print the header of a glyph
	names                  print the strings of table name
	cmap[:char]            list cmap sub-tables or look up a character (help:cmap)
	descriptor             print the PDF font descriptor (help:descriptor)
	warnings               list warnings from decoding the font
	quit                   leave
	Commands may be chained, separated by blanks.
	`)
	}
}
