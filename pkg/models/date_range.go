package models

import (
	"time"

	"github.com/osumi/utils/pkg/utils"
)

// DateRange is a closed interval of time.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// NewDayRange returns the range covering the whole days from start to end.
func NewDayRange(start, end time.Time) DateRange {
	return DateRange{
		Start: utils.StartOfDay(start),
		End:   utils.EndOfDay(end),
	}
}

// Overlaps reports whether r and o share at least one instant.
func (r DateRange) Overlaps(o DateRange) bool {
	return utils.RangesOverlap([2]time.Time{r.Start, r.End}, [2]time.Time{o.Start, o.End})
}

// Contains reports whether t falls within r.
func (r DateRange) Contains(t time.Time) bool {
	return r.Overlaps(DateRange{Start: t, End: t})
}

// Days returns the number of calendar days r touches. An inverted range
// touches none.
func (r DateRange) Days() int {
	n := 0
	for d := utils.StartOfDay(r.Start); !d.After(r.End); d = utils.AddDays(d, 1) {
		n++
	}
	return n
}
