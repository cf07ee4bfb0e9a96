package stats

import "strconv"

// Maybe is a float64 that may be undefined (NA). The zero value is NA.
type Maybe struct {
	Value   float64
	Defined bool
}

// NA is the undefined value.
var NA = Maybe{}

// Some wraps a defined value.
func Some(v float64) Maybe { return Maybe{Value: v, Defined: true} }

// Get returns the value and whether it is defined.
func (m Maybe) Get() (float64, bool) { return m.Value, m.Defined }

// Or returns the value, or def when NA.
func (m Maybe) Or(def float64) float64 {
	if !m.Defined {
		return def
	}
	return m.Value
}

// Ptr returns nil for NA, else a pointer to a copy of the value.
func (m Maybe) Ptr() *float64 {
	if !m.Defined {
		return nil
	}
	v := m.Value
	return &v
}

// Format renders the value with prec decimals, or "NA".
func (m Maybe) Format(prec int) string {
	if !m.Defined {
		return "NA"
	}
	return strconv.FormatFloat(m.Value, 'f', prec, 64)
}

// String renders the shortest exact representation, or "NA".
func (m Maybe) String() string { return m.Format(-1) }
