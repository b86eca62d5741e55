package ttf

import (
	"fmt"
	"sort"
)

// SFNTHeader is the offset table at the start of a font file.
// OpenType fonts that contain TrueType outlines use a value of 0x00010000 for the
// version (major 1, minor 0), CFF-based fonts use 'OTTO'. We do not check the version,
// as tables are located by the directory alone.
type SFNTHeader struct {
	MajorVersion   uint16
	MinorVersion   uint16
	NumberOfTables uint16
	SearchRange    uint16
	EntrySelector  uint16
	RangeShift     uint16
}

// DirectoryEntry is a table record of the table directory.
// Offset is absolute from the start of the font data.
type DirectoryEntry struct {
	Tag      Tag
	Checksum uint32
	Offset   uint32
	Length   uint32
}

// Slice returns the bytes of the table within font data buf.
// Entries of a Directory are guaranteed to lie within the font's data.
func (e DirectoryEntry) Slice(buf []byte) []byte {
	return buf[e.Offset : e.Offset+e.Length]
}

// Directory maps table tags to their directory entries. It is built once when
// a font is loaded and is read-only thereafter.
type Directory struct {
	Header  SFNTHeader
	entries map[Tag]DirectoryEntry
}

const (
	sfntHeaderSize  = 12
	tableRecordSize = 16
)

// ParseDirectory reads the SFNT header and the table directory of a font.
//
// Table records follow immediately after the 12-byte header, 16 bytes each.
// If a tag occurs more than once, the last record wins. Checksums are not
// validated.
func ParseDirectory(buf []byte) (*Directory, error) {
	b := binarySegm(buf)
	h, err := b.view(0, sfntHeaderSize)
	if err != nil {
		return nil, errFontFormat("SFNT header unreadable")
	}
	dir := &Directory{
		Header: SFNTHeader{
			MajorVersion:   u16(h[0:]),
			MinorVersion:   u16(h[2:]),
			NumberOfTables: u16(h[4:]),
			SearchRange:    u16(h[6:]),
			EntrySelector:  u16(h[8:]),
			RangeShift:     u16(h[10:]),
		},
		entries: make(map[Tag]DirectoryEntry),
	}
	tracer().Debugf("SFNT header = %v", dir.Header)
	n := int(dir.Header.NumberOfTables)
	recs, err := b.view(sfntHeaderSize, n*tableRecordSize)
	if err != nil {
		return nil, errFontFormat(fmt.Sprintf("table directory with %d records exceeds font size %d",
			n, len(buf)))
	}
	for ; len(recs) > 0; recs = recs[tableRecordSize:] {
		e := DirectoryEntry{
			Tag:      MakeTag(recs[0:4]),
			Checksum: u32(recs[4:]),
			Offset:   u32(recs[8:]),
			Length:   u32(recs[12:]),
		}
		if uint64(e.Offset)+uint64(e.Length) > uint64(len(buf)) {
			return nil, errFontFormat(fmt.Sprintf("table %s: bounds [%d:%d] exceed font size %d",
				e.Tag, e.Offset, uint64(e.Offset)+uint64(e.Length), len(buf)))
		}
		if _, dup := dir.entries[e.Tag]; dup {
			tracer().Infof("table %s occurs more than once in directory", e.Tag)
		}
		dir.entries[e.Tag] = e
	}
	return dir, nil
}

// Entry returns the directory entry for a table tag.
func (dir *Directory) Entry(tag Tag) (DirectoryEntry, bool) {
	if dir == nil {
		return DirectoryEntry{}, false
	}
	e, ok := dir.entries[tag]
	return e, ok
}

// Has is true if the font contains a table for tag.
func (dir *Directory) Has(tag Tag) bool {
	_, ok := dir.Entry(tag)
	return ok
}

// Len returns the number of distinct tables.
func (dir *Directory) Len() int {
	if dir == nil {
		return 0
	}
	return len(dir.entries)
}

// Tags returns the tags of all tables in the directory, sorted.
func (dir *Directory) Tags() []Tag {
	if dir == nil {
		return nil
	}
	tags := make([]Tag, 0, len(dir.entries))
	for tag := range dir.entries {
		tags = append(tags, tag)
	}
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
	return tags
}
