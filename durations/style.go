package durations

import (
	"errors"
	"fmt"
	"strings"
)

type Style int

const (
	StyleLong Style = iota
	StyleShort
)

var ErrUnknownStyle = errors.New("unknown style")

func ParseStyle(s string) (Style, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "long", "longhand":
		return StyleLong, nil
	case "short", "shorthand":
		return StyleShort, nil
	default:
		return 0, fmt.Errorf("durations: ParseStyle: %w: %q", ErrUnknownStyle, s)
	}
}

func (s Style) String() string {
	switch s {
	case StyleLong:
		return "long"
	case StyleShort:
		return "short"
	default:
		return fmt.Sprintf("Style(%d)", int(s))
	}
}

// Table returns the preset table for s. Unknown styles fall back to LongTable.
func (s Style) Table() Table {
	if s == StyleShort {
		return ShortTable
	}
	return LongTable
}

func (s Style) Delimiter() string {
	if s == StyleShort {
		return ""
	}
	return " "
}

// FormatStyle formats amount with the preset table and delimiter of style.
func FormatStyle(style Style, unit Unit, amount int64) string {
	return Format(unit, amount, style.Table(), style.Delimiter())
}
