package ttf

import (
	"math"
)

// Reading bytes from a font's binary representation.
//
// TrueType stores every number big-endian. A lot of fields are signed by semantics,
// but we read them as unsigned quantities first and re-interpret them afterwards
// (see ShiftToSigned). For values ≥ 2^15 this two-step conversion is what tells a
// descender of -1 apart from an advance width of 65535.

func u16(b []byte) uint16 {
	_ = b[1] // Bounds check hint to compiler
	return uint16(b[0])<<8 | uint16(b[1])<<0
}

func u32(b []byte) uint32 {
	_ = b[3] // Bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])<<0
}

// binarySegm is a segment of byte data, usually a view into a font's buffer.
type binarySegm []byte

// view returns n bytes at the given offset.
// The byte segment returned is a sub-slice of b.
func (b binarySegm) view(offset, n int) (binarySegm, error) {
	if offset < 0 || n < 0 || offset+n > len(b) {
		return nil, ErrOutOfRange
	}
	return b[offset : offset+n], nil
}

// u16 returns the uint16 in b at the relative offset i.
func (b binarySegm) u16(i int) (uint16, error) {
	buf, err := b.view(i, 2)
	if err != nil {
		return 0, err
	}
	return u16(buf), nil
}

// u32 returns the uint32 in b at the relative offset i.
func (b binarySegm) u32(i int) (uint32, error) {
	buf, err := b.view(i, 4)
	if err != nil {
		return 0, err
	}
	return u32(buf), nil
}

// --- Exported primitives ---------------------------------------------------

// ReadBytes returns length bytes of buf, starting at offset. The result is a
// sub-slice of buf, not a copy; clients must treat it as read-only.
// If the range exceeds buf, ErrOutOfRange is returned.
func ReadBytes(buf []byte, offset, length int) ([]byte, error) {
	return binarySegm(buf).view(offset, length)
}

// ReadSignedInt decodes 1 to 4 big-endian bytes as a two's complement integer.
//
// For negative numbers (high bit of the first byte set) every byte is complemented
// and accumulated; the result then is -(accumulated)-1. This is equivalent to sign
// extension of the input.
func ReadSignedInt(b []byte) (int, error) {
	if len(b) == 0 || len(b) > 4 {
		return 0, ErrOutOfRange
	}
	v := 0
	if b[0]&0x80 == 0 {
		for _, c := range b {
			v = v<<8 | int(c)
		}
		return v, nil
	}
	for _, c := range b {
		v = v<<8 | int(^c)
	}
	return -v - 1, nil
}

// ReadFixed interprets b as a signed fixed-point number with the given number
// of integer (mantissa) and fraction bits. The sum of both has to match the bit
// size of b. The OpenType type `Fixed` is ReadFixed(16, 16, b) for 4 bytes b.
func ReadFixed(mantissaBits, fractionBits int, b []byte) (float64, error) {
	if mantissaBits < 0 || fractionBits < 0 || mantissaBits+fractionBits != len(b)*8 {
		return 0, ErrOutOfRange
	}
	n, err := ReadSignedInt(b)
	if err != nil {
		return 0, err
	}
	return float64(n) / float64(uint32(1)<<fractionBits), nil
}

// ShiftToSigned re-interprets an unsigned 16-bit quantity as a signed one:
// values ≥ 2^15 are mapped to value - 2^16.
func ShiftToSigned(u uint16) int16 {
	if u < 1<<15 {
		return int16(u)
	}
	return int16(int32(u) - 1<<16)
}

// ShiftAllToSigned applies ShiftToSigned to every entry of us.
func ShiftAllToSigned(us []uint16) []int16 {
	s := make([]int16, len(us))
	for i, u := range us {
		s[i] = ShiftToSigned(u)
	}
	return s
}

// ToEmSpace normalizes a value in font units to an EM space of 1000 units.
// It is the identity for unitsPerEm = 1000, otherwise
//
//	⌈value · 1000 / unitsPerEm⌉
func ToEmSpace(value, unitsPerEm int) int {
	if unitsPerEm == 1000 || unitsPerEm <= 0 {
		return value
	}
	n := value * 1000
	q := n / unitsPerEm // truncates towards zero, i.e. rounds up for n < 0
	if n%unitsPerEm != 0 && n > 0 {
		q++
	}
	return q
}

// scaleWidth normalizes an advance width to EM space 1000, rounding to the
// nearest integer.
func scaleWidth(w, unitsPerEm int) int {
	if unitsPerEm == 1000 || unitsPerEm <= 0 {
		return w
	}
	return int(math.Round(1000 / float64(unitsPerEm) * float64(w)))
}

// --- Table reader ----------------------------------------------------------

// tableReader is a cursor over the bytes of a single table. It is created by a
// table decoder and lives only as long as the decoding of that table, thus no
// read position is ever shared between decoders.
//
// Reads beyond the end of the table fail with a *TruncatedTableError, which reports
// the absolute position within the font.
type tableReader struct {
	tag  Tag
	data binarySegm
	base uint32 // absolute offset of the table within the font
	pos  int
}

func newTableReader(buf []byte, e DirectoryEntry) *tableReader {
	return &tableReader{
		tag:  e.Tag,
		data: e.Slice(buf),
		base: e.Offset,
	}
}

func (r *tableReader) truncated(at int) error {
	return &TruncatedTableError{Tag: r.tag, Offset: int(r.base) + at}
}

// seek positions the cursor at a table-relative offset.
func (r *tableReader) seek(pos int) {
	r.pos = pos
}

func (r *tableReader) skip(n int) {
	r.pos += n
}

// bytes returns the next n bytes as a view into the font data.
func (r *tableReader) bytes(n int) (binarySegm, error) {
	b, err := r.data.view(r.pos, n)
	if err != nil {
		return nil, r.truncated(r.pos)
	}
	r.pos += n
	return b, nil
}

func (r *tableReader) u8() (uint8, error) {
	b, err := r.bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *tableReader) u16() (uint16, error) {
	b, err := r.bytes(2)
	if err != nil {
		return 0, err
	}
	return u16(b), nil
}

func (r *tableReader) u32() (uint32, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return u32(b), nil
}

// s16 reads an unsigned 16-bit value and shifts it to signed.
func (r *tableReader) s16() (int16, error) {
	u, err := r.u16()
	if err != nil {
		return 0, err
	}
	return ShiftToSigned(u), nil
}

// fixed reads a 16.16 fixed-point number.
func (r *tableReader) fixed() (float64, error) {
	b, err := r.bytes(4)
	if err != nil {
		return 0, err
	}
	return ReadFixed(16, 16, b)
}

// u16s reads n consecutive unsigned 16-bit values.
func (r *tableReader) u16s(n int) ([]uint16, error) {
	b, err := r.bytes(2 * n)
	if err != nil {
		return nil, err
	}
	us := make([]uint16, n)
	for i := range us {
		us[i] = u16(b[2*i:])
	}
	return us, nil
}
