package model

import (
	"sort"
	"time"
)

// GameDate is an ISO 8601 calendar day ("YYYY-MM-DD"). Storing the string form
// keeps it byte-identical with the persisted tables, and lexicographic order
// matches chronological order.
type GameDate string

// ParseGameDate validates s as a YYYY-MM-DD calendar day
func ParseGameDate(s string) (GameDate, error) {
	if _, err := time.Parse("2006-01-02", s); err != nil {
		return "", ErrInvalidDate
	}
	return GameDate(s), nil
}

// GameDateOf formats t as a GameDate
func GameDateOf(t time.Time) GameDate {
	return GameDate(t.Format("2006-01-02"))
}

// StatEntry is one row of the stat ledger: one game's numbers for one player.
// Entries are never mutated in place; a correction is a delete plus a re-add.
type StatEntry struct {
	PlayerName string
	Date       GameDate
	Goals      int
	Rebounds   int
	Steals     int
	Blocks     int
}

// StatTotals is the element-wise sum of a player's entries
type StatTotals struct {
	PlayerName string
	Goals      int
	Rebounds   int
	Steals     int
	Blocks     int
}

// Add accumulates e into t
func (t *StatTotals) Add(e *StatEntry) {
	t.Goals += e.Goals
	t.Rebounds += e.Rebounds
	t.Steals += e.Steals
	t.Blocks += e.Blocks
}

// SortOrder selects a history ordering. The dashboard trend chart wants
// ascending dates, the results table wants descending.
type SortOrder int

const (
	SortAscending SortOrder = iota
	SortDescending
)

// SortEntriesByDate orders entries chronologically in the given direction.
// The sort is stable so same-day entries keep their ledger order.
func SortEntriesByDate(entries []*StatEntry, order SortOrder) {
	sort.SliceStable(entries, func(i, j int) bool {
		if order == SortDescending {
			return entries[i].Date > entries[j].Date
		}
		return entries[i].Date < entries[j].Date
	})
}
