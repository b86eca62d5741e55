package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/npillmayer/sfntmetrics"
	"github.com/npillmayer/sfntmetrics/ttf"
	"github.com/pterm/pterm"
	"golang.org/x/image/font/sfnt"
)

func tablesOp(intp *Intp, op *Op) (error, bool) {
	dir := intp.font.TTF.Directory
	data := [][]string{{"Tag", "Offset", "Length", "Checksum"}}
	for _, tag := range dir.Tags() {
		e, _ := dir.Entry(tag)
		data = append(data, []string{
			tag.String(),
			strconv.Itoa(int(e.Offset)),
			strconv.Itoa(int(e.Length)),
			fmt.Sprintf("0x%08x", e.Checksum),
		})
	}
	pterm.Printf("font has %d tables\n", dir.Len())
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func headOp(intp *Intp, op *Op) (error, bool) {
	h := intp.font.TTF.Head
	data := [][]string{
		{"Field", "Value"},
		{"version", fmt.Sprintf("%.4f", h.Version)},
		{"fontRevision", fmt.Sprintf("%.4f", h.FontRevision)},
		{"magicNumber", fmt.Sprintf("0x%08x", h.MagicNumber)},
		{"flags", fmt.Sprintf("0x%04x", h.Flags)},
		{"unitsPerEm", strconv.Itoa(int(h.UnitsPerEm))},
		{"bbox", fmt.Sprintf("%d %d %d %d", h.XMin, h.YMin, h.XMax, h.YMax)},
		{"indexToLocFormat", strconv.Itoa(int(h.IndexToLocFormat))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func hheaOp(intp *Intp, op *Op) (error, bool) {
	h := intp.font.TTF.HHea
	data := [][]string{
		{"Field", "Value"},
		{"ascent", strconv.Itoa(h.Ascent)},
		{"descent", strconv.Itoa(h.Descent)},
		{"numberOfHMetrics", strconv.Itoa(int(h.NumberOfHMetrics))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func metricsOp(intp *Intp, op *Op) (error, bool) {
	m := intp.font.Model
	family, subfamily := sfntmetrics.FamilyName(intp.font)
	data := [][]string{
		{"Metric", "Value"},
		{"family", strings.TrimSpace(family + " " + subfamily)},
		{"unitsPerEm", strconv.Itoa(m.UnitsPerEm)},
		{"numberOfGlyphs", strconv.Itoa(m.NumberOfGlyphs)},
		{"ascent", strconv.Itoa(m.Ascent)},
		{"descent", strconv.Itoa(m.Descent)},
		{"capHeight", strconv.Itoa(m.CapHeight)},
		{"missingWidth", strconv.Itoa(m.MissingWidth)},
		{"italicAngle", fmt.Sprintf("%.2f", m.ItalicAngle)},
		{"fixedPitch", strconv.FormatBool(m.IsFixedPitch)},
		{"stemV", strconv.Itoa(m.StemV)},
		{"embeddable", strconv.FormatBool(m.Embeddable)},
		{"serif", strconv.FormatBool(m.IsSerif)},
		{"script", strconv.FormatBool(m.IsScript)},
		{"symbolic", strconv.FormatBool(m.IsSymbolic)},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// widthsOp prints the /Widths array for a range of character codes,
// default 32…126.
func widthsOp(intp *Intp, op *Op) (error, bool) {
	first, last := rune(32), rune(126)
	var err error
	if op.arg != "" {
		if first, err = parseCharCode(op.arg); err != nil {
			return err, false
		}
		last = first
	}
	if op.arg2 != "" {
		if last, err = parseCharCode(op.arg2); err != nil {
			return err, false
		}
	}
	widths, err := intp.font.Widths(first, last)
	if err != nil {
		return err, false
	}
	pterm.Printf("/FirstChar %d /LastChar %d\n/Widths %v\n", first, last, widths)
	return nil, false
}

func glyphOp(intp *Intp, op *Op) (error, bool) {
	gid, err := strconv.Atoi(op.arg)
	if err != nil || gid < 0 || gid > 0xffff {
		return fmt.Errorf("glyph index not valid: %q", op.arg), false
	}
	g, ok := intp.font.TTF.Glyf.Glyph(ttf.GlyphIndex(gid))
	if !ok {
		return fmt.Errorf("font has no glyph %d", gid), false
	}
	start, end := intp.font.TTF.Loca.Extent(ttf.GlyphIndex(gid))
	data := [][]string{
		{"Field", "Value"},
		{"loca extent", fmt.Sprintf("%d…%d", start, end)},
		{"contours", strconv.Itoa(int(g.NumberOfContours))},
		{"composite", strconv.FormatBool(g.IsComposite())},
		{"bbox", fmt.Sprintf("%d %d %d %d", g.XMin, g.YMin, g.XMax, g.YMax)},
		{"bbox width", strconv.Itoa(g.Width)},
		{"advance", strconv.Itoa(intp.font.Model.Width(ttf.GlyphIndex(gid)))},
		{"instructions", fmt.Sprintf("%d bytes", len(g.Instructions))},
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func namesOp(intp *Intp, op *Op) (error, bool) {
	names := intp.font.TTF.Name
	if names == nil {
		return errors.New("font has no name table"), false
	}
	data := [][]string{{"ID", "Name"}}
	for id := sfnt.NameID(0); id < 20; id++ {
		if s := names.Get(id); s != "" {
			data = append(data, []string{strconv.Itoa(int(id)), s})
		}
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

// cmapOp lists the sub-tables of the cmap, or looks up a single character.
func cmapOp(intp *Intp, op *Op) (error, bool) {
	cmap := intp.font.TTF.CMap
	if cmap == nil {
		return errors.New("font has no usable cmap table"), false
	}
	if op.arg != "" {
		r, err := parseCharCode(op.arg)
		if err != nil {
			return err, false
		}
		gid, ok := cmap.Lookup(r)
		if !ok {
			pterm.Printf("character %U is not mapped\n", r)
			return nil, false
		}
		pterm.Printf("character %U maps to glyph %d\n", r, gid)
		return nil, false
	}
	data := [][]string{{"Platform", "Encoding", "Format", "Length", "Name", "Decoded"}}
	for _, st := range cmap.Subtables {
		data = append(data, []string{
			strconv.Itoa(int(st.PlatformID)),
			strconv.Itoa(int(st.EncodingID)),
			strconv.Itoa(int(st.Format)),
			strconv.Itoa(int(st.Length)),
			st.EncodingName(),
			strconv.FormatBool(st.Parsed != nil),
		})
	}
	if pref := cmap.Preferred(); pref != nil {
		pterm.Printf("lookups use sub-table (%d,%d)\n", pref.PlatformID, pref.EncodingID)
	}
	pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	return nil, false
}

func descriptorOp(intp *Intp, op *Op) (error, bool) {
	fd := intp.font.Descriptor()
	pterm.Printf(`<< /Type /FontDescriptor
   /FontName /%s
   /Flags %d %% %s
   /FontBBox [%d %d %d %d]
   /ItalicAngle %g
   /Ascent %d
   /Descent %d
   /CapHeight %d
   /StemV %d
   /MissingWidth %d
>>
`, fd.FontName, uint32(fd.Flags), fd.Flags, fd.FontBBox.XMin, fd.FontBBox.YMin,
		fd.FontBBox.XMax, fd.FontBBox.YMax, fd.ItalicAngle, fd.Ascent, fd.Descent,
		fd.CapHeight, fd.StemV, fd.MissingWidth)
	return nil, false
}

func warningsOp(intp *Intp, op *Op) (error, bool) {
	warnings := intp.font.Warnings()
	if len(warnings) == 0 {
		pterm.Println("no warnings")
	}
	for _, w := range warnings {
		pterm.Println(w.String())
	}
	return nil, false
}

// parseCharCode accepts a single character, a decimal code or a code in
// notation "U+0041".
func parseCharCode(s string) (rune, error) {
	if strings.HasPrefix(strings.ToUpper(s), "U+") {
		n, err := strconv.ParseUint(s[2:], 16, 32)
		return rune(n), err
	}
	if utf8.RuneCountInString(s) == 1 && (s[0] < '0' || s[0] > '9') {
		r, _ := utf8.DecodeRuneInString(s)
		return r, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("not a character code: %q", s)
	}
	return rune(n), nil
}
