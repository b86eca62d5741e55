package ttf

// --- HHea table ------------------------------------------------------------

// HHeaTable contains information for horizontal layout.
// Ascent and Descent are normalized to EM space 1000; Descent usually is negative.
type HHeaTable struct {
	Ascent           int
	Descent          int
	NumberOfHMetrics uint16 // number of long metrics in table 'hmtx'
}

const hheaNumberOfHMetricsOffset = 34

func parseHHea(buf []byte, e DirectoryEntry, head *HeadTable) (*HHeaTable, error) {
	r := newTableReader(buf, e)
	r.skip(4) // version
	asc, err := r.s16()
	if err != nil {
		return nil, err
	}
	desc, err := r.s16()
	if err != nil {
		return nil, err
	}
	t := &HHeaTable{
		Ascent:  ToEmSpace(int(asc), int(head.UnitsPerEm)),
		Descent: ToEmSpace(int(desc), int(head.UnitsPerEm)),
	}
	r.seek(hheaNumberOfHMetricsOffset)
	if t.NumberOfHMetrics, err = r.u16(); err != nil {
		return nil, err
	}
	tracer().Debugf("hhea: ascent = %d, descent = %d, %d h-metrics",
		t.Ascent, t.Descent, t.NumberOfHMetrics)
	return t, nil
}
