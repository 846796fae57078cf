package model

import "time"

// DefaultLimit is the number of entries shown in each top-N section.
const DefaultLimit = 5

// TypeCount is the number of weapons sharing one Type value.
type TypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// CategoryDistribution summarizes the Type column.
//
// Counts holds every distinct type, ordered by count descending. Types with
// equal counts keep the order in which they were first seen, so the sum of
// all counts equals Total.
type CategoryDistribution struct {
	Total  int         `json:"total"`
	Unique int         `json:"unique"`
	Counts []TypeCount `json:"counts"`
}

// MostCommon returns at most n entries from the head of Counts.
func (d CategoryDistribution) MostCommon(n int) []TypeCount {
	if n < 0 || n >= len(d.Counts) {
		return d.Counts
	}
	return d.Counts[:n]
}

// RankedWeapon is one row of a top-N ranking.
type RankedWeapon struct {
	Rank  int     `json:"rank"`
	Seq   int     `json:"seq"`
	Name  string  `json:"name"`
	Type  string  `json:"type"`
	Value float64 `json:"value"`
}

// Ranking is an ordered top-N list over one numeric column.
type Ranking struct {
	// Metric is the column the ranking is ordered by (e.g. "Phy_Attack").
	Metric string `json:"metric"`

	// Entries are sorted by Value descending, ties by file order.
	Entries []RankedWeapon `json:"entries"`
}

// Report is the result of an analysis run.
type Report struct {
	// Source is the path of the analyzed file.
	Source string `json:"source"`

	// GeneratedAt is when the analysis finished.
	GeneratedAt time.Time `json:"generated_at"`

	// Limit is the N used for every top-N section.
	Limit int `json:"limit"`

	// Distribution is the category distribution of the Type column.
	Distribution CategoryDistribution `json:"distribution"`

	// TopPhysical ranks weapons by physical attack.
	TopPhysical Ranking `json:"top_physical"`

	// Heaviest ranks weapons by weight.
	Heaviest Ranking `json:"heaviest"`
}

// NewReport creates an empty report for the given source file.
func NewReport(source string, limit int) *Report {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Report{
		Source:      source,
		GeneratedAt: time.Now(),
		Limit:       limit,
	}
}
