package dbf

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
)

// encodeField encodes a single value into the exact on-disk width of
// its field. The returned slice is never shorter or longer than the
// field's declared width.
func encodeField(f Field, v Value) ([]byte, error) {
	switch f.Type {
	case TypeCharacter:
		return encodeCharacter(f, v)
	case TypeNumeric:
		return encodeNumeric(f, v)
	case TypeDate:
		s, err := ToDate(v)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case TypeLogical:
		return []byte{ToLogical(v)}, nil
	case TypeTimestamp:
		return ToTimestamp(v)
	}
	return nil, fmt.Errorf("type %q: %w", string(rune(f.Type)), ErrUnsupportedType)
}

// encodeCharacter right pads the text with spaces to the field size,
// truncating when it is longer.
func encodeCharacter(f Field, v Value) ([]byte, error) {
	s, ok := v.(String)
	if !ok {
		return nil, fmt.Errorf("character value %T: %w", v, ErrInvalidInput)
	}

	buf := bytes.Repeat([]byte{space}, int(f.Size))
	copy(buf, s)
	return buf, nil
}

// encodeNumeric formats the number and left pads it with spaces to the
// field size. With a non zero decimal count the value is rendered as a
// fixed point decimal with exactly that many fractional digits,
// otherwise it is truncated to an integer. A rendering wider than the
// field is cut down to the field size.
func encodeNumeric(f Field, v Value) ([]byte, error) {
	var s string
	switch n := v.(type) {
	case Int:
		if f.Decimals > 0 {
			s = strconv.FormatFloat(float64(n), 'f', int(f.Decimals), 64)
		} else {
			s = strconv.FormatInt(int64(n), 10)
		}
	case Float:
		if f.Decimals > 0 {
			s = strconv.FormatFloat(float64(n), 'f', int(f.Decimals), 64)
		} else {
			s = strconv.FormatInt(int64(float64(n)), 10)
		}
	default:
		return nil, fmt.Errorf("numeric value %T: %w", v, ErrInvalidInput)
	}

	size := int(f.Size)
	if len(s) >= size {
		return []byte(s[:size]), nil
	}
	return append(bytes.Repeat([]byte{space}, size-len(s)), s...), nil
}

// ToLogical maps a value onto the single logical byte. The checks run
// in a fixed order: false before the blank check, the blank check
// before true. Anything unrecognized encodes as the uninitialized ' '.
func ToLogical(v Value) byte {
	switch l := v.(type) {
	case Bool:
		if bool(l) {
			return 'T'
		}
		return 'F'
	case String:
		s := string(l)
		switch {
		case s == "F":
			return 'F'
		case s != "" && strings.TrimSpace(s) == "":
			return ' '
		case s == "T":
			return 'T'
		}
	}
	return ' '
}
