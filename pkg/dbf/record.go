package dbf

import (
	"bytes"
	"fmt"
)

const (
	// space doubles as the field padding byte and the "not deleted"
	// record marker. Deleted records would carry '*' instead, but this
	// encoder never emits one.
	space = 0x20
	// eof terminates the records section.
	eof = 0x1A
)

// encodeRecord appends one fixed width record block to the buffer: the
// marker byte followed by every field encoded in schema order.
func encodeRecord(buf *bytes.Buffer, schema Schema, rec Record) error {
	buf.WriteByte(space)
	for _, f := range schema {
		v, ok := rec[f.Name]
		if !ok {
			return fmt.Errorf("field %q: %w", f.Name, ErrMissingField)
		}
		b, err := encodeField(f, v)
		if err != nil {
			return fmt.Errorf("field %q: %w", f.Name, err)
		}
		buf.Write(b)
	}
	return nil
}

// encodeRecords appends all record blocks and the trailing eof sentinel.
func encodeRecords(buf *bytes.Buffer, schema Schema, records []Record) error {
	for i, rec := range records {
		if err := encodeRecord(buf, schema, rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	buf.WriteByte(eof)
	return nil
}
