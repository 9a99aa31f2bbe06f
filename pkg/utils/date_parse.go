package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"gopkg.in/guregu/null.v4"

	"github.com/osumi/utils/pkg/logger"
)

var (
	ErrInvalidDate = errors.New("invalid date")
	ErrDateString  = errors.New("cannot parse date string")
	ErrTimestamp   = errors.New("cannot parse timestamp")
)

// GetStringFromDate returns date as "YYYY-MM-DD", followed by " HH:MM:SS" if
// withHours is set. A null date yields null.
//
//	GetStringFromDate(null.TimeFrom(time.Date(2024, 9, 24, 10, 42, 0, 0, time.Local)), true)
//	// "2024-09-24 10:42:00"
func GetStringFromDate(date null.Time, withHours bool) null.String {
	if !date.Valid {
		return null.String{}
	}

	t := date.Time
	ret := fmt.Sprintf("%d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
	if withHours {
		ret += fmt.Sprintf(" %02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
	}

	return null.StringFrom(ret)
}

// GetDateFromString parses "DD/MM/YYYY" or "DD/MM/YYYY HH:MM:SS" into a local
// time. Null input yields a null time and no error.
//
// The numbers are not range checked: out of range values roll over into the
// next unit, as time.Date does. Years 0 to 99 are read as 1900 to 1999. If a
// component is missing or not a number the result is null and the error
// wraps ErrInvalidDate.
func GetDateFromString(str null.String) (null.Time, error) {
	if !str.Valid {
		return null.Time{}, nil
	}

	datePart := str.String
	var timePart *string
	if strings.Contains(str.String, " ") {
		parts := strings.Split(str.String, " ")
		datePart = parts[0]
		timePart = &parts[1]
	}

	dateFields := strings.Split(datePart, "/")
	day, dok := fieldAt(dateFields, 0)
	month, mok := fieldAt(dateFields, 1)
	year, yok := fieldAt(dateFields, 2)
	valid := dok && mok && yok

	var hour, minute, second int
	if timePart != nil {
		timeFields := strings.Split(*timePart, ":")
		var hok, iok, sok bool
		hour, hok = fieldAt(timeFields, 0)
		minute, iok = fieldAt(timeFields, 1)
		second, sok = fieldAt(timeFields, 2)
		valid = valid && hok && iok && sok
	}

	if !valid {
		logger.Tracef("GetDateFromString: invalid date %q", str.String)
		return null.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, str.String)
	}

	if year >= 0 && year <= 99 {
		year += 1900
	}

	return null.TimeFrom(time.Date(year, time.Month(month), day, hour, minute, second, 0, time.Local)), nil
}

func fieldAt(fields []string, i int) (int, bool) {
	if i >= len(fields) {
		return 0, false
	}
	return parseInt(fields[i])
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006-01",
	"2006",
}

// ParseDateStringAsTime tries to parse a date string into a time.Time type accepting different formats
func ParseDateStringAsTime(dateString string) (time.Time, error) {
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, dateString, time.Local)
		if err == nil {
			return t, nil
		}
	}

	if strings.Contains(dateString, "/") {
		t, err := GetDateFromString(null.StringFrom(dateString))
		if err == nil {
			return t.Time, nil
		}
	}

	return time.Time{}, fmt.Errorf("%w: <%s>", ErrDateString, dateString)
}

// ParseTimestamp parses either a date string accepted by
// ParseDateStringAsTime or a duration relative to now: "<2h" is two hours
// ago and ">30m" is thirty minutes from now.
func ParseTimestamp(s string) (time.Time, error) {
	if len(s) == 0 {
		return time.Time{}, fmt.Errorf("%w: empty string", ErrTimestamp)
	}

	switch s[0] {
	case '>', '<':
		d, err := time.ParseDuration(s[1:])
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: cannot parse %c-duration: %v", ErrTimestamp, s[0], err)
		}
		if s[0] == '<' {
			d = -d
		}
		return Now().Add(d), nil
	}

	t, err := ParseDateStringAsTime(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrTimestamp, err)
	}
	return t, nil
}
