package dbf

import "fmt"

/*
A DBF file is laid out as a fixed 32 byte header, one 32 byte descriptor
per field, a one byte descriptor terminator, a 263 byte reserved block
and then the fixed width records.

Every record starts with a one byte deletion marker followed by the
encoded fields in schema order. The file ends with a single 0x1A byte.

------------------------------------------------------------------
| header(32) | descriptors(32*F) | 0x0D | reserved(263) | records |
------------------------------------------------------------------
*/

// FieldType is the single character type code of a column.
type FieldType byte

const (
	// TypeCharacter is a space padded text field.
	TypeCharacter FieldType = 'C'
	// TypeNumeric is a left space padded decimal field.
	TypeNumeric FieldType = 'N'
	// TypeDate is an 8 byte YYYYMMDD field.
	TypeDate FieldType = 'D'
	// TypeLogical is a 1 byte T/F/' ' field.
	TypeLogical FieldType = 'L'
	// TypeTimestamp is an 8 byte julian day + millisecond pair.
	TypeTimestamp FieldType = 'T'
)

// Field describes a single column of the table.
type Field struct {
	Name     string    // Column name. Stored in an 11 byte slot, so at most 10 bytes survive.
	Type     FieldType // One of C, N, D, L, T.
	Size     byte      // Encoded width for C and N. Ignored for D, L, T which have fixed widths.
	Decimals byte      // Digits reserved for the fractional part. Only meaningful for N.

	// NoCPTrans marks the field as exempt from code page translation
	// by readers. Stored as a flag byte, never interpreted here.
	NoCPTrans bool
}

// width returns the number of bytes the field occupies inside a record.
func (f Field) width() int {
	switch f.Type {
	case TypeDate, TypeTimestamp:
		return 8
	case TypeLogical:
		return 1
	default:
		return int(f.Size)
	}
}

// Schema is the ordered list of fields. The order fixes both the
// descriptor table order and the byte order inside every record.
type Schema []Field

// RecordSize returns the width of a single encoded record in bytes,
// including the leading deletion marker byte.
func (s Schema) RecordSize() int {
	size := 1
	for _, f := range s {
		size += f.width()
	}
	return size
}

// HeaderSize returns the byte count of everything before the first
// record: file header, descriptor table, terminator and reserved block.
func (s Schema) HeaderSize() int {
	return fileHeaderSize + descriptorSize*len(s) + 1 + reservedBlockSize
}

// validate checks the field size bounds of the schema.
func (s Schema) validate() error {
	for _, f := range s {
		switch f.Type {
		case TypeCharacter, TypeNumeric:
			if f.Size == 0 {
				return fmt.Errorf("field %q: %w", f.Name, ErrInvalidFieldSize)
			}
		case TypeDate, TypeLogical, TypeTimestamp:
		default:
			return fmt.Errorf("field %q: type %q: %w", f.Name, string(rune(f.Type)), ErrUnsupportedType)
		}
	}
	return nil
}

// Record holds the values of one row keyed by field name.
// Records are read once during encoding and never mutated.
type Record map[string]Value
