package dbf

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	dateStringLen = 8

	millisPerHour   = 3_600_000
	millisPerMinute = 60_000
	millisPerSecond = 1_000
)

// ToDate normalizes a date value into the 8 digit YYYYMMDD form used
// by date fields and the header update date. A nil or empty string
// value is treated as the Unix epoch. A String value must already be a
// valid YYYYMMDD date and is passed through unchanged.
func ToDate(v Value) (string, error) {
	c, err := calendarOf(v)
	if err != nil {
		return "", err
	}
	return padComponent(c.Year, 4) + padComponent(c.Month, 2) + padComponent(c.Day, 2), nil
}

// ToTimestamp encodes a timestamp value into its 8 byte binary form:
// a little endian julian day number followed by little endian
// milliseconds since the previous midnight. A Julian value is packed
// verbatim. For every other accepted kind the milliseconds are derived
// from the UTC time of day, unless millisOverride is supplied.
func ToTimestamp(v Value, millisOverride ...uint32) ([]byte, error) {
	var day, millis uint32

	if j, ok := v.(Julian); ok {
		day, millis = j.Day, j.Millis
	} else {
		c, err := calendarOf(v)
		if err != nil {
			return nil, err
		}
		day = julianDayNumber(c.Year, c.Month, c.Day)
		millis = uint32(c.Hour*millisPerHour + c.Minute*millisPerMinute + c.Second*millisPerSecond)
		if len(millisOverride) > 0 {
			millis = millisOverride[0]
		}
	}

	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], day)
	binary.LittleEndian.PutUint32(buf[4:8], millis)
	return buf, nil
}

// calendarOf resolves the accepted date kinds into a single broken
// down form. Epoch values are broken down in UTC.
func calendarOf(v Value) (Calendar, error) {
	switch d := v.(type) {
	case nil:
		return utcCalendar(0), nil
	case Epoch:
		return utcCalendar(int64(d)), nil
	case Calendar:
		if !validDate(d.Year, d.Month, d.Day) {
			return Calendar{}, fmt.Errorf("calendar %04d-%02d-%02d: %w", d.Year, d.Month, d.Day, ErrInvalidInput)
		}
		return d, nil
	case String:
		if d == "" {
			return utcCalendar(0), nil
		}
		year, month, day, ok := parseDateString(string(d))
		if !ok {
			return Calendar{}, fmt.Errorf("date string %q: %w", string(d), ErrInvalidInput)
		}
		return Calendar{Year: year, Month: month, Day: day}, nil
	}
	return Calendar{}, fmt.Errorf("date input %T: %w", v, ErrInvalidInput)
}

func utcCalendar(sec int64) Calendar {
	t := time.Unix(sec, 0).UTC()
	return Calendar{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}
}

// parseDateString accepts exactly 8 digits forming a real calendar date.
func parseDateString(s string) (year, month, day int, ok bool) {
	if len(s) != dateStringLen {
		return 0, 0, 0, false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, 0, 0, false
		}
	}
	year, _ = strconv.Atoi(s[0:4])
	month, _ = strconv.Atoi(s[4:6])
	day, _ = strconv.Atoi(s[6:8])
	if !validDate(year, month, day) {
		return 0, 0, 0, false
	}
	return year, month, day, true
}

func validDate(year, month, day int) bool {
	if month < 1 || month > 12 || day < 1 {
		return false
	}
	return day <= daysInMonth(year, month)
}

func daysInMonth(year, month int) int {
	switch month {
	case 4, 6, 9, 11:
		return 30
	case 2:
		if year%4 == 0 && (year%100 != 0 || year%400 == 0) {
			return 29
		}
		return 28
	default:
		return 31
	}
}

// padComponent zero pads a date component to the given width. A
// component whose decimal form is wider than its slot is truncated.
func padComponent(n, width int) string {
	s := strconv.Itoa(n)
	if len(s) >= width {
		return s[:width]
	}
	return strings.Repeat("0", width-len(s)) + s
}

// julianDayNumber converts a proleptic Gregorian calendar date to its
// julian day number.
func julianDayNumber(year, month, day int) uint32 {
	a := (14 - month) / 12
	y := year + 4800 - a
	m := month + 12*a - 3
	jdn := day + (153*m+2)/5 + 365*y + y/4 - y/100 + y/400 - 32045
	return uint32(jdn)
}
