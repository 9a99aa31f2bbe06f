package models

import (
	"encoding/json"
	"time"

	"github.com/osumi/utils/pkg/utils"
)

const dateFormat = "2006-01-02"

// Date wraps a time.Time with a format of "YYYY-MM-DD"
type Date struct {
	time.Time
}

func (d Date) String() string {
	return d.Format(dateFormat)
}

// MarshalJSON outputs the date as a simple "YYYY-MM-DD" string.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses any string accepted by utils.ParseDateStringAsTime
// ("YYYY-MM-DD", RFC3339, "YYYY-MM", "YYYY" or "DD/MM/YYYY") into a Date
// at the start of that day. An empty string leaves the Date unchanged.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	if s == "" {
		return nil
	}
	parsed, err := utils.ParseDateStringAsTime(s)
	if err != nil {
		return err
	}
	d.Time = utils.StartOfDay(parsed)
	return nil
}

func (d Date) After(o Date) bool {
	return d.Time.After(o.Time)
}

// ParseDate uses utils.ParseDateStringAsTime to parse a string into a date.
func ParseDate(s string) (Date, error) {
	ret, err := utils.ParseDateStringAsTime(s)
	if err != nil {
		return Date{}, err
	}
	return Date{Time: ret}, nil
}
