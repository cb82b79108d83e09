package durations

import (
	"strconv"
	"strings"
	"time"
)

// Component is one non-zero piece of a decomposed duration, e.g. the "3" in "3 Days".
type Component struct {
	Unit  Unit
	Count int64
	Word  Word
}

func (c Component) String() string {
	return strconv.FormatInt(c.Count, 10) + c.Word.For(c.Count)
}

// Decompose splits amount (expressed in unit) into counts of the table's units,
// largest first. Units with a zero count are left out. Anything finer than the
// table's smallest unit is dropped, as are negative amounts.
func Decompose(unit Unit, amount int64, table Table) []Component {
	if table.Len() == 0 || !unit.Valid() {
		return nil
	}

	base := table.base()
	remaining := base.Convert(amount, unit)

	var parts []Component
	for _, curr := range table.entries {
		if remaining <= 0 {
			break
		}

		total := curr.Unit.Convert(remaining, base)
		if total == 0 {
			continue
		}

		parts = append(parts, Component{Unit: curr.Unit, Count: total, Word: curr.Word})
		remaining -= base.Convert(total, curr.Unit)
	}

	return parts
}

// Format renders amount (expressed in unit) using the words in table. delimiter
// goes between components; an empty delimiter joins them directly.
func Format(unit Unit, amount int64, table Table, delimiter string) string {
	var sb strings.Builder
	for _, curr := range Decompose(unit, amount, table) {
		if sb.Len() > 0 && delimiter != "" {
			sb.WriteString(delimiter)
		}
		sb.WriteString(curr.String())
	}
	return sb.String()
}

// Long formats in the longhand style, e.g. "1 Hour 30 Minutes".
func Long(unit Unit, amount int64) string {
	return Format(unit, amount, LongTable, " ")
}

// Short formats in the shorthand style, e.g. "1h30m".
func Short(unit Unit, amount int64) string {
	return Format(unit, amount, ShortTable, "")
}

func LongDuration(d time.Duration) string {
	return Long(Nanoseconds, int64(d))
}

func ShortDuration(d time.Duration) string {
	return Short(Nanoseconds, int64(d))
}
