package utils

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/cast"
	"gopkg.in/guregu/null.v4"

	"github.com/osumi/utils/pkg/logger"
)

const (
	DefaultDateSeparator = "/"
	DefaultDatePattern   = "dmyhis"
)

var (
	ErrInvalidPattern        = errors.New("invalid date pattern")
	ErrPatternMissingDate    = fmt.Errorf(`%w: pattern must contain at least "d", "m" and "y"`, ErrInvalidPattern)
	ErrPatternMissingTime    = fmt.Errorf(`%w: pattern must contain "h" and "i" to return the time`, ErrInvalidPattern)
	ErrPatternMissingSeconds = fmt.Errorf(`%w: pattern must contain "s" to return seconds`, ErrInvalidPattern)
	ErrUnrecognizedPattern   = fmt.Errorf("%w: unrecognized pattern character", ErrInvalidPattern)

	ErrMissingDate = errors.New("date config has no date")
)

// DateInput is accepted by GetDate. It is either a bare date, built with
// DateOf, or a DateConfig.
type DateInput interface {
	dateConfig() DateConfig
}

type bareDate time.Time

// DateOf wraps a date so it is formatted with the default DateConfig.
func DateOf(t time.Time) DateInput {
	return bareDate(t)
}

func (d bareDate) dateConfig() DateConfig {
	return DateConfig{Date: time.Time(d)}
}

// DateConfig controls how GetDate formats a date. Unset nullable fields take
// their default:
//
//	Separator    "/"
//	LeadingZeros true
//	Pattern      "dmyhis"
//
// Pattern selects which date components are printed and in which order. Only
// "d", "m" and "y" affect the output order; "h", "i" and "s" must be present
// when the time is requested but the time is always printed as hh:mm[:ss].
type DateConfig struct {
	Date         time.Time   `json:"date"`
	Separator    null.String `json:"separator"`
	WithHours    bool        `json:"withHours"`
	WithSeconds  bool        `json:"withSeconds"`
	LeadingZeros null.Bool   `json:"leadingZeros"`
	AMPM         bool        `json:"ampm"`
	Pattern      null.String `json:"pattern"`
}

func (c DateConfig) dateConfig() DateConfig {
	return c
}

func (c DateConfig) withDefaults() DateConfig {
	if !c.Separator.Valid {
		c.Separator = null.StringFrom(DefaultDateSeparator)
	}
	if !c.LeadingZeros.Valid {
		c.LeadingZeros = null.BoolFrom(true)
	}
	if !c.Pattern.Valid {
		c.Pattern = null.StringFrom(DefaultDatePattern)
	}
	if c.WithSeconds {
		c.WithHours = true
	}
	return c
}

func (c DateConfig) validate() error {
	p := c.Pattern.String
	if !strings.Contains(p, "d") || !strings.Contains(p, "m") || !strings.Contains(p, "y") {
		return ErrPatternMissingDate
	}
	if c.WithHours && (!strings.Contains(p, "h") || !strings.Contains(p, "i")) {
		return ErrPatternMissingTime
	}
	if c.WithSeconds && !strings.Contains(p, "s") {
		return ErrPatternMissingSeconds
	}
	for _, ch := range p {
		if !strings.ContainsRune("dmyhis", ch) {
			return fmt.Errorf("%w: %q", ErrUnrecognizedPattern, ch)
		}
	}
	return nil
}

// GetDate formats a date following its DateConfig, or the default config for
// a bare date.
//
//	GetDate(DateOf(time.Date(2023, 1, 1, 0, 0, 0, 0, time.Local)))
//	// "01/01/2023"
//
//	GetDate(DateConfig{Date: d, WithSeconds: true, AMPM: true})
//	// "01/01/2023 00:00:00am"
//
// The am/pm marker only tells whether the hour is before noon: the hour itself
// is still printed on a 24 hour clock, so 15:30 becomes "15:30pm".
func GetDate(in DateInput) (string, error) {
	c := in.dateConfig().withDefaults()
	if err := c.validate(); err != nil {
		logger.Debugf("GetDate: %v (pattern %q)", err, c.Pattern.String)
		return "", err
	}

	pad := func(n int) string {
		if c.LeadingZeros.Bool && n < 10 {
			return "0" + strconv.Itoa(n)
		}
		return strconv.Itoa(n)
	}

	d := c.Date
	var tokens []string
	for _, ch := range c.Pattern.String {
		switch ch {
		case 'd':
			tokens = append(tokens, pad(d.Day()))
		case 'm':
			tokens = append(tokens, pad(int(d.Month())))
		case 'y':
			tokens = append(tokens, pad(d.Year()))
		}
	}

	ret := strings.Join(tokens, c.Separator.String)
	if !c.WithHours {
		return ret, nil
	}

	ret += " " + pad(d.Hour()) + ":" + pad(d.Minute())
	if c.WithSeconds {
		ret += ":" + pad(d.Second())
	}
	if c.AMPM {
		if d.Hour() >= 12 {
			ret += "pm"
		} else {
			ret += "am"
		}
	}

	return ret, nil
}

// dateConfigFields mirrors the optional DateConfig keys of a loosely typed map.
type dateConfigFields struct {
	Separator    *string `json:"separator"`
	WithHours    bool    `json:"withHours"`
	WithSeconds  bool    `json:"withSeconds"`
	LeadingZeros *bool   `json:"leadingZeros"`
	AMPM         bool    `json:"ampm"`
	Pattern      *string `json:"pattern"`
}

// DateConfigFromMap builds a DateConfig from a map such as decoded JSON or
// plugin arguments. Keys use the json names of DateConfig. Values are weakly
// typed, so "true" and 1 are accepted for booleans. The "date" value may be a
// time.Time, a date string or a unix timestamp, and is read in local time.
func DateConfigFromMap(m map[string]interface{}) (DateConfig, error) {
	raw, ok := m["date"]
	if !ok || raw == nil {
		return DateConfig{}, ErrMissingDate
	}

	date, err := cast.ToTimeInDefaultLocationE(raw, time.Local)
	if err != nil {
		return DateConfig{}, fmt.Errorf("%w: %v", ErrMissingDate, err)
	}

	var fields dateConfigFields
	d, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		Result:           &fields,
	})
	if err != nil {
		return DateConfig{}, err
	}

	if err := d.Decode(m); err != nil {
		return DateConfig{}, fmt.Errorf("decoding date config: %w", err)
	}

	return DateConfig{
		Date:         date,
		Separator:    null.StringFromPtr(fields.Separator),
		WithHours:    fields.WithHours,
		WithSeconds:  fields.WithSeconds,
		LeadingZeros: null.BoolFromPtr(fields.LeadingZeros),
		AMPM:         fields.AMPM,
		Pattern:      null.StringFromPtr(fields.Pattern),
	}, nil
}
