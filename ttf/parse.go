package ttf

import "fmt"

var (
	tagHead = T("head")
	tagHHea = T("hhea")
	tagMaxP = T("maxp")
	tagHMtx = T("hmtx")
	tagLoca = T("loca")
	tagGlyf = T("glyf")
	tagPost = T("post")
	tagOS2  = T("OS/2")
	tagName = T("name")
	tagCMap = T("cmap")
)

// requiredTables lists the tables without which no metrics can be derived, in the
// order they are checked.
var requiredTables = []Tag{tagHead, tagHHea, tagMaxP, tagHMtx, tagLoca, tagGlyf}

// Parse decodes a TrueType font from its binary representation.
//
// Parse either returns a completely decoded font or an error; it never returns a
// partially decoded font. Errors are one of
//
//   - ErrMalformedFont (possibly wrapped) for an unreadable header or directory, or
//     for inconsistent values in a required table
//   - *MissingTableError if a required table is absent
//   - *TruncatedTableError if a required table is shorter than its contents demand
//
// Failures in optional tables are reported through Font.Warnings.
// buf is retained by the font and must not be altered by the caller afterwards.
func Parse(buf []byte, opts ...ParseOption) (*Font, error) {
	dir, err := ParseDirectory(buf)
	if err != nil {
		return nil, err
	}
	f := &Font{Directory: dir, binary: buf, options: opts}
	for _, tag := range requiredTables {
		if tag == tagHMtx && f.hasOption(RelaxHMtx) {
			continue
		}
		if !dir.Has(tag) {
			tracer().Errorf("font is missing required table '%s'", tag)
			return nil, &MissingTableError{Tag: tag}
		}
	}
	ec := &errorCollector{}
	if err := f.decodeRequired(buf, ec); err != nil {
		tracer().Errorf("cannot decode font: %v", err)
		return nil, err
	}
	f.decodeOptional(buf, ec)
	f.warnings = ec.warnings
	tracer().Infof("decoded font with %d tables and %d glyphs, %d warning(s)",
		dir.Len(), f.NumGlyphs(), len(f.warnings))
	return f, nil
}

// decodeRequired decodes head, maxp, hhea, hmtx, loca and glyf, in this order.
// Every decoder may depend on the results of the previous ones.
func (f *Font) decodeRequired(buf []byte, ec *errorCollector) (err error) {
	entry := func(tag Tag) DirectoryEntry {
		e, _ := f.Directory.Entry(tag)
		return e
	}
	if f.Head, err = parseHead(buf, entry(tagHead)); err != nil {
		return wrapTableError(tagHead, err)
	}
	if f.MaxP, err = parseMaxP(buf, entry(tagMaxP)); err != nil {
		return wrapTableError(tagMaxP, err)
	}
	if f.HHea, err = parseHHea(buf, entry(tagHHea), f.Head); err != nil {
		return wrapTableError(tagHHea, err)
	}
	if e, ok := f.Directory.Entry(tagHMtx); ok {
		if f.HMtx, err = parseHMtx(buf, e, f.Head, f.HHea, f.MaxP, ec); err != nil {
			return wrapTableError(tagHMtx, err)
		}
	} else {
		ec.addWarning(tagHMtx, "table missing, widths derived from glyph bounding boxes", 0, nil)
	}
	if f.Loca, err = parseLoca(buf, entry(tagLoca), f.Head, f.MaxP); err != nil {
		return wrapTableError(tagLoca, err)
	}
	if f.Glyf, err = parseGlyf(buf, entry(tagGlyf), f.Head, f.Loca); err != nil {
		return wrapTableError(tagGlyf, err)
	}
	return nil
}

// decodeOptional decodes post, OS/2, name and cmap. A table which fails to decode
// is left nil and a warning is recorded.
func (f *Font) decodeOptional(buf []byte, ec *errorCollector) {
	var err error
	if e, ok := f.Directory.Entry(tagPost); ok {
		if f.Post, err = parsePost(buf, e); err != nil {
			f.Post = nil
			ec.degrade(tagPost, err)
		}
	}
	if e, ok := f.Directory.Entry(tagOS2); ok {
		if f.OS2, err = parseOS2(buf, e, f.Head); err != nil {
			f.OS2 = nil
			ec.degrade(tagOS2, err)
		}
	}
	if e, ok := f.Directory.Entry(tagName); ok && !f.hasOption(IgnoreNames) {
		if f.Name, err = parseName(buf, e); err != nil {
			f.Name = nil
			ec.degrade(tagName, err)
		}
	}
	if e, ok := f.Directory.Entry(tagCMap); ok && !f.hasOption(IgnoreCMap) {
		if f.CMap, err = parseCMap(buf, e, ec); err != nil {
			f.CMap = nil
			ec.degrade(tagCMap, err)
		}
	}
}

// wrapTableError adds the table tag to errors which do not carry it already.
// Typed errors are passed through unchanged, so clients may use errors.As on them.
func wrapTableError(tag Tag, err error) error {
	switch err.(type) {
	case *TruncatedTableError, *MissingTableError:
		return err
	}
	return fmt.Errorf("table '%s': %w", tag, err)
}
