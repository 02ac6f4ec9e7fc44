// Package report renders launcher profile listings for the terminal and for
// scripts.
package report

import (
	"time"

	"github.com/dustin/go-humanize"
)

// Status summarizes whether a profile's directories were found.
type Status int

const (
	// StatusUnchecked means the directories were not resolved.
	StatusUnchecked Status = iota

	// StatusOK means both directories resolved to valid locations.
	StatusOK

	// StatusMissing means at least one directory could not be found.
	StatusMissing
)

// String returns the plain-output name of the status.
func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusMissing:
		return "missing"
	default:
		return "-"
	}
}

// Cell is one location column of a Row.
type Cell struct {
	Text    string
	Missing bool
}

// Row is one launcher profile in a listing.
type Row struct {
	ID       string
	Name     string
	Selected bool
	LastUsed time.Time
	GameDir  Cell
	Version  Cell
	Checked  bool
}

// Status returns the row's status.
func (r Row) Status() Status {
	switch {
	case !r.Checked:
		return StatusUnchecked
	case r.GameDir.Missing || r.Version.Missing:
		return StatusMissing
	default:
		return StatusOK
	}
}

// DisplayName returns the name, falling back to the id for unnamed profiles.
func (r Row) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}

	return r.ID
}

// LastUsedString renders LastUsed relative to now.
func LastUsedString(t, now time.Time) string {
	if t.IsZero() {
		return "never"
	}

	return humanize.RelTime(t, now, "ago", "from now")
}

// Summary counts rows by status.
type Summary struct {
	OK        int
	Missing   int
	Unchecked int
}

// Summarize counts rows by status.
func Summarize(rows []Row) Summary {
	var s Summary

	for _, r := range rows {
		switch r.Status() {
		case StatusOK:
			s.OK++
		case StatusMissing:
			s.Missing++
		default:
			s.Unchecked++
		}
	}

	return s
}
