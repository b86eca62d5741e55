package fontmodel

import "testing"

func TestFlagsBitLayout(t *testing.T) {
	if f := makeFlags(true, false); f != 0b100001 {
		t.Errorf("fixed pitch, upright: expected flags 0b100001, got %b", f)
	}
	if f := makeFlags(false, true); f != 0b1100000 {
		t.Errorf("proportional, italic: expected flags 0b1100000, got %b", f)
	}
	if f := makeFlags(false, false); f != FlagNonsymbolic {
		t.Errorf("expected Nonsymbolic to be set always, got %b", f)
	}
	if f := makeFlags(true, true); f.IsSet(FlagSymbolic) || !f.IsSet(FlagFixedPitch|FlagItalic) {
		t.Errorf("unexpected flags %s", f)
	}
}

func TestFlagsString(t *testing.T) {
	if s := makeFlags(true, true).String(); s != "FixedPitch|Nonsymbolic|Italic" {
		t.Errorf("unexpected flags string %q", s)
	}
	if s := Flags(0).String(); s != "0" {
		t.Errorf("unexpected string for empty flags: %q", s)
	}
}
