package models

import "time"

// DateKey is the day-granularity key format used by per-day report documents.
const DateKey = "2006-01-02"

// LoggedInUser tracks one identity's session activity so far today.
type LoggedInUser struct {
	Identity      string        `json:"identity"`
	FirstHit      time.Time     `json:"firstHit"`
	LastHit       time.Time     `json:"lastHit"`
	TotalHits     int64         `json:"totalHits"`
	AveragePerHit time.Duration `json:"averagePerHit"`
}

// LoggedInSegment is one reconciled snapshot of the logged-in users for a
// host. Each generation run appends a new segment rather than mutating prior
// ones.
type LoggedInSegment struct {
	Generated time.Time      `json:"generated"`
	Total     int            `json:"total"`
	Users     []LoggedInUser `json:"users"`
}

// LoggedInReport is the append-only log of reconciled snapshots for one
// (date, host) pair. Segments are ordered by Generated; the last segment is
// the authoritative current state for that host and day.
type LoggedInReport struct {
	Date     string            `json:"date"`
	Host     string            `json:"host"`
	Segments []LoggedInSegment `json:"segments"`
}

// LastSegment returns the most recently generated segment, or nil when the
// report has none.
func (r *LoggedInReport) LastSegment() *LoggedInSegment {
	if r == nil || len(r.Segments) == 0 {
		return nil
	}
	last := &r.Segments[0]
	for i := range r.Segments {
		if r.Segments[i].Generated.After(last.Generated) {
			last = &r.Segments[i]
		}
	}
	return last
}
