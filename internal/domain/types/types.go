// Package types contains common types used across the application
package types

import "github.com/okian/dnindex/internal/domain/model"

// RankedEntry is a CompanyIndexResult with its 1-based position in the ranking.
type RankedEntry struct {
	Rank int `json:"rank"`
	model.CompanyIndexResult
}

// Rank numbers already sorted results from 1.
func Rank(results []model.CompanyIndexResult) []RankedEntry {
	out := make([]RankedEntry, len(results))
	for i, r := range results {
		out[i] = RankedEntry{Rank: i + 1, CompanyIndexResult: r}
	}
	return out
}
