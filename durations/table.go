package durations

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrEmptyTable    = errors.New("table has no units")
	ErrDuplicateUnit = errors.New("unit appears more than once")
)

// Word is the singular and plural text printed after a count of some unit.
type Word struct {
	Singular string
	Plural   string
}

// For picks the form of w matching count.
func (w Word) For(count int64) string {
	if count == 1 {
		return w.Singular
	}
	return w.Plural
}

type Entry struct {
	Unit Unit
	Word Word
}

// Table maps units to their words, ordered from the largest unit to the
// smallest. A Table is immutable once built and safe for concurrent use.
type Table struct {
	entries []Entry
}

var (
	LongTable = MustTable(
		Entry{Days, Word{" Day", " Days"}},
		Entry{Hours, Word{" Hour", " Hours"}},
		Entry{Minutes, Word{" Minute", " Minutes"}},
		Entry{Seconds, Word{" Second", " Seconds"}},
	)

	ShortTable = MustTable(
		Entry{Days, Word{"d", "d"}},
		Entry{Hours, Word{"h", "h"}},
		Entry{Minutes, Word{"m", "m"}},
		Entry{Seconds, Word{"s", "s"}},
	)
)

// NewTable builds a Table from entries given in any order.
func NewTable(entries ...Entry) (Table, error) {
	if len(entries) == 0 {
		return Table{}, fmt.Errorf("durations: NewTable: %w", ErrEmptyTable)
	}

	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Unit > sorted[j].Unit
	})

	for i, curr := range sorted {
		if !curr.Unit.Valid() {
			return Table{}, fmt.Errorf("durations: NewTable: %w: %s", ErrUnknownUnit, curr.Unit)
		}
		if i > 0 && sorted[i-1].Unit == curr.Unit {
			return Table{}, fmt.Errorf("durations: NewTable: %w: %s", ErrDuplicateUnit, curr.Unit)
		}
	}

	return Table{entries: sorted}, nil
}

func MustTable(entries ...Entry) Table {
	t, err := NewTable(entries...)
	if err != nil {
		panic(err)
	}
	return t
}

func (t Table) Len() int {
	return len(t.entries)
}

// Entries returns a copy of the table's entries, largest unit first.
func (t Table) Entries() []Entry {
	out := make([]Entry, len(t.entries))
	copy(out, t.entries)
	return out
}

// Units lists the table's units, largest first.
func (t Table) Units() []Unit {
	out := make([]Unit, len(t.entries))
	for i, curr := range t.entries {
		out[i] = curr.Unit
	}
	return out
}

// Word returns the word registered for u.
func (t Table) Word(u Unit) (Word, bool) {
	for _, curr := range t.entries {
		if curr.Unit == u {
			return curr.Word, true
		}
	}
	return Word{}, false
}

// base is the finest unit in the table; all arithmetic in Format happens in it.
func (t Table) base() Unit {
	return t.entries[len(t.entries)-1].Unit
}
