package ttf

import (
	"golang.org/x/image/font/sfnt"
	"golang.org/x/text/encoding/unicode"
)

// --- Name table ------------------------------------------------------------

// NameTable holds the decoded strings of table 'name', keyed by name ID.
type NameTable struct {
	Names map[sfnt.NameID]string
}

// Get returns the string for a name ID, or "" if the font does not define it.
func (t *NameTable) Get(id sfnt.NameID) string {
	if t == nil {
		return ""
	}
	return t.Names[id]
}

const (
	nameHeaderSize = 6
	nameRecordSize = 12
	platformMac    = 1
)

// recognizedNameID reports whether we keep strings with this ID. Name ID 15 is reserved.
func recognizedNameID(id uint16) bool {
	return id <= 14 || (id >= 16 && id <= 19)
}

var utf16be = unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)

// parseName decodes all name records with a recognized ID. Macintosh strings are
// taken as-is, every other platform stores UTF-16BE. Records appearing later in
// the table replace earlier ones with the same name ID.
func parseName(buf []byte, e DirectoryEntry) (*NameTable, error) {
	r := newTableReader(buf, e)
	hdr, err := r.u16s(3) // format, count, stringOffset
	if err != nil {
		return nil, err
	}
	count, storage := int(hdr[1]), int(hdr[2])
	t := &NameTable{Names: make(map[sfnt.NameID]string)}
	for i := 0; i < count; i++ {
		r.seek(nameHeaderSize + i*nameRecordSize)
		rec, err := r.u16s(6) // platform, encoding, language, nameID, length, offset
		if err != nil {
			return nil, err
		}
		platform, nameID, length, offset := rec[0], rec[3], int(rec[4]), int(rec[5])
		if !recognizedNameID(nameID) || length == 0 {
			continue
		}
		r.seek(storage + offset)
		raw, err := r.bytes(length)
		if err != nil {
			return nil, err
		}
		s := string(raw)
		if platform != platformMac {
			u, err := utf16be.NewDecoder().Bytes(raw)
			if err != nil {
				tracer().Debugf("name: cannot decode record %d: %v", i, err)
				continue
			}
			s = string(u)
		}
		if s == "" {
			continue
		}
		t.Names[sfnt.NameID(nameID)] = s
	}
	tracer().Debugf("name: %d strings", len(t.Names))
	return t, nil
}
