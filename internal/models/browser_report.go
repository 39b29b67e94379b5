package models

import "time"

// BrowserReport is the cumulative per-day rollup of hits by user-agent family
// for one host. Counts accumulate across generation runs within the day.
type BrowserReport struct {
	Date      string           `json:"date"`
	Host      string           `json:"host"`
	Generated time.Time        `json:"generated"`
	Counts    map[string]int64 `json:"counts"`
}

func NewEmptyBrowserReport(date, host string) *BrowserReport {
	return &BrowserReport{
		Date:   date,
		Host:   host,
		Counts: make(map[string]int64),
	}
}
