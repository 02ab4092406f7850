package domain

import "time"

// Job is an opening posted by a company.
type Job struct {
	ID        int64
	Title     string
	Salary    int
	Equity    float64
	Company   string
	CreatedAt time.Time
}

// JobPatch carries the fields of a partial job update.
type JobPatch struct {
	Title  *string
	Salary *int
	Equity *float64
}

// Empty reports whether the patch changes nothing.
func (p JobPatch) Empty() bool {
	return p.Title == nil && p.Salary == nil && p.Equity == nil
}

// JobFilter narrows job listings.
type JobFilter struct {
	Search    string
	MinSalary *int
	MinEquity *float64
	Company   *string
	Limit     int
	Offset    int
}
