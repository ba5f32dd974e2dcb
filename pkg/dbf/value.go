package dbf

// Value is a typed cell value. The closed set of implementations below
// replaces implicit coercion: every encoder accepts only the kinds
// that make sense for its field type and rejects the rest.
type Value interface {
	value()
}

// String is a text value. For date fields it may carry a preformatted
// YYYYMMDD string, for logical fields a literal "T"/"F"/" ".
type String string

// Int is an integer value for numeric fields.
type Int int64

// Float is a floating point value for numeric fields.
type Float float64

// Bool is a logical value.
type Bool bool

// Epoch is a point in time as seconds since the Unix epoch.
// Calendar components are derived from it in UTC.
type Epoch int64

// Calendar is a broken down date and time. Month and Day are 1-based,
// Year is the full year with no offset.
type Calendar struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Julian is a pre-computed timestamp pair: days since the julian epoch
// and milliseconds since the previous midnight. Used verbatim by
// timestamp fields, bypassing any calendar derivation.
type Julian struct {
	Day    uint32
	Millis uint32
}

func (String) value()   {}
func (Int) value()      {}
func (Float) value()    {}
func (Bool) value()     {}
func (Epoch) value()    {}
func (Calendar) value() {}
func (Julian) value()   {}
