package durations

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Unit is a unit of time. Larger values are coarser units.
type Unit int

const (
	Nanoseconds Unit = iota
	Microseconds
	Milliseconds
	Seconds
	Minutes
	Hours
	Days
)

var ErrUnknownUnit = errors.New("unknown time unit")

var unitLengths = [...]time.Duration{
	Nanoseconds:  time.Nanosecond,
	Microseconds: time.Microsecond,
	Milliseconds: time.Millisecond,
	Seconds:      time.Second,
	Minutes:      time.Minute,
	Hours:        time.Hour,
	Days:         24 * time.Hour,
}

var unitNames = [...]string{
	Nanoseconds:  "nanoseconds",
	Microseconds: "microseconds",
	Milliseconds: "milliseconds",
	Seconds:      "seconds",
	Minutes:      "minutes",
	Hours:        "hours",
	Days:         "days",
}

var unitAliases = map[string]Unit{
	"ns":          Nanoseconds,
	"nanosecond":  Nanoseconds,
	"nanoseconds": Nanoseconds,

	"us":           Microseconds,
	"µs":           Microseconds,
	"microsecond":  Microseconds,
	"microseconds": Microseconds,

	"ms":           Milliseconds,
	"milli":        Milliseconds,
	"millis":       Milliseconds,
	"millisecond":  Milliseconds,
	"milliseconds": Milliseconds,

	"s":       Seconds,
	"sec":     Seconds,
	"secs":    Seconds,
	"second":  Seconds,
	"seconds": Seconds,

	"m":       Minutes,
	"min":     Minutes,
	"mins":    Minutes,
	"minute":  Minutes,
	"minutes": Minutes,

	"h":     Hours,
	"hr":    Hours,
	"hrs":   Hours,
	"hour":  Hours,
	"hours": Hours,

	"d":    Days,
	"day":  Days,
	"days": Days,
}

var normalizer = transform.Chain(norm.NFC, cases.Lower(language.Und))

// ParseUnit looks up a unit by name or abbreviation, ignoring case.
func ParseUnit(s string) (Unit, error) {
	normalized, _, err := transform.String(normalizer, strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("durations: ParseUnit: could not normalize %q: %w", s, err)
	}

	u, ok := unitAliases[normalized]
	if !ok {
		return 0, fmt.Errorf("durations: ParseUnit: %w: %q", ErrUnknownUnit, s)
	}
	return u, nil
}

func (u Unit) Valid() bool {
	return u >= Nanoseconds && u <= Days
}

func (u Unit) String() string {
	if !u.Valid() {
		return fmt.Sprintf("Unit(%d)", int(u))
	}
	return unitNames[u]
}

// Duration returns the length of one u.
func (u Unit) Duration() time.Duration {
	return unitLengths[u]
}

// Convert converts amount, expressed in from, into u. Conversions to a coarser
// unit truncate toward zero, conversions to a finer unit saturate at the int64
// limits instead of overflowing.
func (u Unit) Convert(amount int64, from Unit) int64 {
	switch {
	case u == from:
		return amount
	case u < from:
		ratio := int64(from.Duration() / u.Duration())
		if amount > math.MaxInt64/ratio {
			return math.MaxInt64
		}
		if amount < math.MinInt64/ratio {
			return math.MinInt64
		}
		return amount * ratio
	default:
		return amount / int64(u.Duration()/from.Duration())
	}
}
