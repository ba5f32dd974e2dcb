package dbf

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToDate(t *testing.T) {
	assert := assert.New(t)

	t.Run("Epoch", func(t *testing.T) {
		// 2011-10-24 00:00:00 UTC.
		s, err := ToDate(Epoch(1319414400))
		assert.NoError(err)
		assert.Equal("20111024", s)
	})

	t.Run("Epoch_MidDay", func(t *testing.T) {
		// 2011-09-27 18:54:00 UTC.
		s, err := ToDate(Epoch(1317149640))
		assert.NoError(err)
		assert.Equal("20110927", s)
	})

	t.Run("Calendar", func(t *testing.T) {
		s, err := ToDate(Calendar{Year: 2011, Month: 10, Day: 24})
		assert.NoError(err)
		assert.Equal("20111024", s)
	})

	t.Run("String_Passthrough", func(t *testing.T) {
		s, err := ToDate(String("20111024"))
		assert.NoError(err)
		assert.Equal("20111024", s)
	})

	t.Run("Nil_Is_Epoch_Zero", func(t *testing.T) {
		s, err := ToDate(nil)
		assert.NoError(err)
		assert.Equal("19700101", s)
	})

	t.Run("Empty_String_Is_Epoch_Zero", func(t *testing.T) {
		s, err := ToDate(String(""))
		assert.NoError(err)
		assert.Equal("19700101", s)
	})

	t.Run("Component_Padding", func(t *testing.T) {
		s, err := ToDate(Calendar{Year: 801, Month: 3, Day: 7})
		assert.NoError(err)
		assert.Equal("08010307", s)
	})

	t.Run("Wide_Year_Truncated", func(t *testing.T) {
		s, err := ToDate(Calendar{Year: 123456, Month: 1, Day: 1})
		assert.NoError(err)
		assert.Equal("12340101", s)
	})

	t.Run("Invalid_String", func(t *testing.T) {
		for _, in := range []string{"2011102", "201110245", "2011abcd", "20111345", "20110230"} {
			_, err := ToDate(String(in))
			assert.Error(err, "input %q", in)
			assert.ErrorIs(err, ErrInvalidInput)
		}
	})

	t.Run("Invalid_Calendar", func(t *testing.T) {
		_, err := ToDate(Calendar{Year: 2011})
		assert.ErrorIs(err, ErrInvalidInput)
	})

	t.Run("Invalid_Kind", func(t *testing.T) {
		_, err := ToDate(Int(42))
		assert.ErrorIs(err, ErrInvalidInput)
	})
}

func TestToTimestamp(t *testing.T) {
	assert := assert.New(t)

	t.Run("Epoch", func(t *testing.T) {
		// 2011-09-27 18:54:00 UTC.
		b, err := ToTimestamp(Epoch(1317149640))
		assert.NoError(err)
		assert.Len(b, 8)
		assert.Equal(uint32(2455832), binary.LittleEndian.Uint32(b[0:4]), "julian day for 2011-09-27")
		assert.Equal(uint32(18*3_600_000+54*60_000), binary.LittleEndian.Uint32(b[4:8]), "millis since midnight")
	})

	t.Run("Calendar", func(t *testing.T) {
		b, err := ToTimestamp(Calendar{Year: 2011, Month: 9, Day: 27, Hour: 18, Minute: 54})
		assert.NoError(err)
		assert.Equal(uint32(2455832), binary.LittleEndian.Uint32(b[0:4]))
		assert.Equal(uint32(68040000), binary.LittleEndian.Uint32(b[4:8]))
	})

	t.Run("Julian_Verbatim", func(t *testing.T) {
		b, err := ToTimestamp(Julian{Day: 123, Millis: 456})
		assert.NoError(err)
		assert.Equal(uint32(123), binary.LittleEndian.Uint32(b[0:4]))
		assert.Equal(uint32(456), binary.LittleEndian.Uint32(b[4:8]))
	})

	t.Run("Millis_Override", func(t *testing.T) {
		b, err := ToTimestamp(Calendar{Year: 2011, Month: 9, Day: 27, Hour: 18, Minute: 54}, 1234)
		assert.NoError(err)
		assert.Equal(uint32(1234), binary.LittleEndian.Uint32(b[4:8]))
	})

	t.Run("String_Date", func(t *testing.T) {
		b, err := ToTimestamp(String("20110927"))
		assert.NoError(err)
		assert.Equal(uint32(2455832), binary.LittleEndian.Uint32(b[0:4]))
		assert.Equal(uint32(0), binary.LittleEndian.Uint32(b[4:8]))
	})

	t.Run("Invalid_Kind", func(t *testing.T) {
		_, err := ToTimestamp(Bool(true))
		assert.ErrorIs(err, ErrInvalidInput)
	})
}

func TestJulianDayNumber(t *testing.T) {
	assert := assert.New(t)

	cases := map[uint32]Calendar{
		2455832: {Year: 2011, Month: 9, Day: 27},
		2455859: {Year: 2011, Month: 10, Day: 24},
		2440588: {Year: 1970, Month: 1, Day: 1},
		2451545: {Year: 2000, Month: 1, Day: 1},
	}
	for want, c := range cases {
		assert.Equal(want, julianDayNumber(c.Year, c.Month, c.Day), "date %+v", c)
	}
}
