package fontmodel

import "strings"

// Flags represents PDF font descriptor flags.
// See section 9.8.2 of PDF 32000-1:2008.
type Flags uint32

// Possible values for PDF font descriptor flags. Build sets FlagFixedPitch,
// FlagNonsymbolic and FlagItalic only.
const (
	FlagFixedPitch  Flags = 1 << 0  // all glyphs have the same width
	FlagSerif       Flags = 1 << 1  // glyphs have serifs
	FlagSymbolic    Flags = 1 << 2  // glyphs outside the Adobe standard Latin character set
	FlagScript      Flags = 1 << 3  // glyphs resemble cursive handwriting
	FlagNonsymbolic Flags = 1 << 5  // font uses the Adobe standard Latin character set
	FlagItalic      Flags = 1 << 6  // dominant vertical strokes are slanted
	FlagAllCap      Flags = 1 << 16 // no lowercase letters
	FlagSmallCap    Flags = 1 << 17 // lowercase letters are small capitals
	FlagForceBold   Flags = 1 << 18 // embolden at small text sizes
)

var flagNames = []struct {
	flag Flags
	name string
}{
	{FlagFixedPitch, "FixedPitch"},
	{FlagSerif, "Serif"},
	{FlagSymbolic, "Symbolic"},
	{FlagScript, "Script"},
	{FlagNonsymbolic, "Nonsymbolic"},
	{FlagItalic, "Italic"},
	{FlagAllCap, "AllCap"},
	{FlagSmallCap, "SmallCap"},
	{FlagForceBold, "ForceBold"},
}

// makeFlags computes the flags bitmask. Nonsymbolic is set unconditionally.
func makeFlags(fixedPitch, italic bool) Flags {
	flags := FlagNonsymbolic
	if fixedPitch {
		flags |= FlagFixedPitch
	}
	if italic {
		flags |= FlagItalic
	}
	return flags
}

// IsSet is true if all bits of flag are set in f.
func (f Flags) IsSet(flag Flags) bool {
	return f&flag == flag
}

func (f Flags) String() string {
	var names []string
	for _, fn := range flagNames {
		if f.IsSet(fn.flag) {
			names = append(names, fn.name)
		}
	}
	if len(names) == 0 {
		return "0"
	}
	return strings.Join(names, "|")
}
