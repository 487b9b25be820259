package archive

import (
	"fmt"
	"strings"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	cancelledSuffix = " CANCELLED"
)

// Dates is the interpreted form of Event.Dates.
type Dates struct {
	Begin     time.Time
	End       time.Time
	Cancelled bool
}

// ParseDates interprets "YYYY-MM-DD" or "YYYY-MM-DD,YYYY-MM-DD", optionally
// suffixed with " CANCELLED". Serialization never calls it: legacy archives
// hold other spellings and must still round-trip.
func ParseDates(value string) (Dates, error) {
	var d Dates
	raw := value
	if strings.HasSuffix(raw, cancelledSuffix) {
		d.Cancelled = true
		raw = strings.TrimSuffix(raw, cancelledSuffix)
	}
	begin, end, isRange := strings.Cut(raw, ",")
	var err error
	d.Begin, err = time.Parse(dateLayout, begin)
	if err != nil {
		return Dates{}, invalid("event", "dates", fmt.Sprintf("%q: bad begin date", value))
	}
	d.End = d.Begin
	if isRange {
		d.End, err = time.Parse(dateLayout, end)
		if err != nil {
			return Dates{}, invalid("event", "dates", fmt.Sprintf("%q: bad end date", value))
		}
		if d.End.Before(d.Begin) {
			return Dates{}, invalid("event", "dates", fmt.Sprintf("%q: ends before it begins", value))
		}
	}
	return d, nil
}

// Days returns the inclusive number of days covered.
func (d Dates) Days() int {
	return int(d.End.Sub(d.Begin).Hours()/24) + 1
}

// String formats d in the canonical Event.Dates spelling.
func (d Dates) String() string {
	out := d.Begin.Format(dateLayout)
	if !d.End.Equal(d.Begin) {
		out += "," + d.End.Format(dateLayout)
	}
	if d.Cancelled {
		out += cancelledSuffix
	}
	return out
}
