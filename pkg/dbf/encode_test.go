package dbf

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEncodeCharacter(t *testing.T) {
	assert := assert.New(t)

	field := Field{Name: "note", Type: TypeCharacter, Size: 5}

	t.Run("Padded", func(t *testing.T) {
		b, err := encodeField(field, String("hi"))
		assert.NoError(err)
		assert.Equal([]byte("hi   "), b)
	})

	t.Run("Truncated", func(t *testing.T) {
		b, err := encodeField(field, String("hello world"))
		assert.NoError(err)
		assert.Equal([]byte("hello"), b)
	})

	t.Run("Exact", func(t *testing.T) {
		b, err := encodeField(field, String("abcde"))
		assert.NoError(err)
		assert.Equal([]byte("abcde"), b)
	})

	t.Run("Rejects_NonText", func(t *testing.T) {
		_, err := encodeField(field, Int(7))
		assert.ErrorIs(err, ErrInvalidInput)
	})
}

func TestEncodeNumeric(t *testing.T) {
	assert := assert.New(t)

	t.Run("Fixed_Point", func(t *testing.T) {
		b, err := encodeField(Field{Type: TypeNumeric, Size: 6, Decimals: 2}, Float(3.14159))
		assert.NoError(err)
		assert.Equal([]byte("  3.14"), b)
	})

	t.Run("Integer", func(t *testing.T) {
		b, err := encodeField(Field{Type: TypeNumeric, Size: 4}, Int(42))
		assert.NoError(err)
		assert.Equal([]byte("  42"), b)
	})

	t.Run("Float_Truncated_To_Integer", func(t *testing.T) {
		b, err := encodeField(Field{Type: TypeNumeric, Size: 4}, Float(2.9))
		assert.NoError(err)
		assert.Equal([]byte("   2"), b)
	})

	t.Run("Int_With_Decimals", func(t *testing.T) {
		b, err := encodeField(Field{Type: TypeNumeric, Size: 7, Decimals: 2}, Int(42))
		assert.NoError(err)
		assert.Equal([]byte("  42.00"), b)
	})

	t.Run("Too_Wide_Cut_To_Size", func(t *testing.T) {
		b, err := encodeField(Field{Type: TypeNumeric, Size: 4}, Int(123456))
		assert.NoError(err)
		assert.Equal([]byte("1234"), b)
	})

	t.Run("Rejects_Text", func(t *testing.T) {
		_, err := encodeField(Field{Type: TypeNumeric, Size: 4}, String("42"))
		assert.ErrorIs(err, ErrInvalidInput)
	})
}

func TestToLogical(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		in   Value
		want byte
	}{
		{String("T"), 'T'},
		{Bool(true), 'T'},
		{String("F"), 'F'},
		{Bool(false), 'F'},
		{String(" "), ' '},
		{String("   "), ' '},
		{Int(0), ' '},
		{Int(1), ' '},
		{String("t"), ' '},
		{String("f"), ' '},
		{String("true"), ' '},
		{String("false"), ' '},
		{String("TT"), ' '},
		{String("FF"), ' '},
		{String(""), ' '},
		{Calendar{}, ' '},
		{Julian{}, ' '},
		{nil, ' '},
	}
	for _, c := range cases {
		assert.Equal(c.want, ToLogical(c.in), "input %#v", c.in)
	}
}

func TestEncodeField_Widths(t *testing.T) {
	assert := assert.New(t)

	cases := []struct {
		field  Field
		inputs []Value
	}{
		{Field{Type: TypeCharacter, Size: 12}, []Value{String(""), String("short"), String("way longer than twelve")}},
		{Field{Type: TypeNumeric, Size: 9, Decimals: 3}, []Value{Int(0), Int(-12345678), Float(3.14159), Float(-99999999.9)}},
		{Field{Type: TypeDate, Size: 99}, []Value{Epoch(0), Calendar{Year: 2011, Month: 10, Day: 24}, String("20111024")}},
		{Field{Type: TypeLogical, Size: 99}, []Value{Bool(true), String("F"), Int(0)}},
		{Field{Type: TypeTimestamp, Size: 99}, []Value{Epoch(1317149640), Julian{Day: 1, Millis: 2}, Calendar{Year: 2011, Month: 9, Day: 27}}},
	}
	for _, c := range cases {
		for _, in := range c.inputs {
			b, err := encodeField(c.field, in)
			assert.NoError(err)
			assert.Len(b, c.field.width(), "type %q input %#v", string(rune(c.field.Type)), in)
		}
	}
}

func TestEncodeField_UnsupportedType(t *testing.T) {
	assert := assert.New(t)

	_, err := encodeField(Field{Name: "x", Type: 'X', Size: 4}, String("a"))
	assert.ErrorIs(err, ErrUnsupportedType)
}
