package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	fileHeaderSize    = 32
	descriptorSize    = 32
	reservedBlockSize = 263

	// descTerminator closes the descriptor table.
	descTerminator = 0x0D

	// VersionDBase5 is the default version byte, marking a dBASE
	// level 5 table.
	VersionDBase5 = 0x05
	// LangDriverANSI is the default language driver byte.
	LangDriverANSI = 0x03

	nameSlotLen = 11
	// noCPTransFlag marks a field exempt from code page translation.
	noCPTransFlag = 0x04
)

// fileHeader is the packed 32 byte structure at the start of the file.
// Year holds the update year as an offset from 1900.
type fileHeader struct {
	Version        byte
	Year           byte
	Month          byte
	Day            byte
	NumRecords     uint32
	HeaderSize     uint16
	RecordSize     uint16
	Reserved       [17]byte
	LanguageDriver byte
	Reserved2      [2]byte
}

// fieldDescriptor is the packed 32 byte structure describing one
// column. Offset is the field's byte position inside a record,
// starting at 1 because byte 0 is the deletion marker.
type fieldDescriptor struct {
	Name     [nameSlotLen]byte
	Type     byte
	Offset   uint32
	Size     byte
	Decimals byte
	Flag     byte
	Reserved [13]byte
}

// encodeHeader writes the file header, the descriptor table, the
// terminator byte and the reserved block. updateDate must already be
// in YYYYMMDD form.
func encodeHeader(buf *bytes.Buffer, schema Schema, numRecords int, updateDate string, version, langDriver byte) error {
	year, month, day, ok := parseDateString(updateDate)
	if !ok {
		return fmt.Errorf("update date %q: %w", updateDate, ErrInvalidInput)
	}

	hdr := fileHeader{
		Version:        version,
		Year:           byte(year - 1900),
		Month:          byte(month),
		Day:            byte(day),
		NumRecords:     uint32(numRecords),
		HeaderSize:     uint16(schema.HeaderSize()),
		RecordSize:     uint16(schema.RecordSize()),
		LanguageDriver: langDriver,
	}
	if err := binary.Write(buf, binary.LittleEndian, &hdr); err != nil {
		return err
	}

	// Running byte offset of each field inside a record.
	offset := 1
	for _, f := range schema {
		desc := fieldDescriptor{
			Type:     byte(f.Type),
			Offset:   uint32(offset),
			Size:     byte(f.width()),
			Decimals: f.Decimals,
		}
		copy(desc.Name[:], truncateName(f.Name))
		if f.NoCPTrans {
			desc.Flag = noCPTransFlag
		}
		if err := binary.Write(buf, binary.LittleEndian, &desc); err != nil {
			return err
		}
		offset += f.width()
	}

	buf.WriteByte(descTerminator)
	buf.Write(make([]byte, reservedBlockSize))
	return nil
}

// truncateName cuts a field name down so it always fits the 11 byte
// descriptor slot with at least one trailing nul. Readers scan the
// slot for the nul terminator.
func truncateName(name string) string {
	if len(name) >= nameSlotLen {
		return name[:nameSlotLen-1]
	}
	return name
}
