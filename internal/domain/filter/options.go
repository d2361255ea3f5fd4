package filter

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/okian/dnindex/internal/domain/model"
)

// Table names a source table.
type Table string

// Column names a filterable column.
type Column string

const (
	TableInitiatives Table = "initiatives"
	TableComposition Table = "composition"

	ColumnCompany      Column = "company"
	ColumnYear         Column = "year"
	ColumnPracticeArea Column = "practice_area"
	ColumnCategory     Column = "category"
	ColumnRole         Column = "role"
)

// AllLabel is the label of the leading "no filter" option.
const AllLabel = "All"

// Option is one entry of a selection control.
type Option struct {
	Label string `json:"label"`
	Value string `json:"value,omitempty"`
	All   bool   `json:"all,omitempty"`
}

// Options lists the distinct values of column in table, sorted, preceded by
// the "all" entry. Years sort numerically, everything else lexically.
func Options(table Table, column Column, inits []model.InitiativeRecord, comps []model.CompositionRecord) ([]Option, error) {
	if table != TableInitiatives && table != TableComposition {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, table)
	}
	if !validColumn(table, column) {
		return nil, fmt.Errorf("%w: %s.%s", ErrUnknownColumn, table, column)
	}

	var (
		values []string
		years  []int
	)
	if table == TableInitiatives {
		for _, r := range inits {
			switch column {
			case ColumnCompany:
				values = append(values, r.Company)
			case ColumnYear:
				years = append(years, r.Year)
			case ColumnPracticeArea:
				values = append(values, r.PracticeArea)
			case ColumnCategory:
				values = append(values, r.Category)
			}
		}
	} else {
		for _, r := range comps {
			switch column {
			case ColumnCompany:
				values = append(values, r.Company)
			case ColumnYear:
				years = append(years, r.Year)
			case ColumnRole:
				values = append(values, r.Role)
			}
		}
	}

	out := []Option{{Label: AllLabel, All: true}}
	if column == ColumnYear {
		slices.Sort(years)
		for _, y := range slices.Compact(years) {
			s := strconv.Itoa(y)
			out = append(out, Option{Label: s, Value: s})
		}
		return out, nil
	}
	slices.Sort(values)
	for _, v := range slices.Compact(values) {
		if v == "" {
			continue
		}
		out = append(out, Option{Label: v, Value: v})
	}
	return out, nil
}

func validColumn(table Table, column Column) bool {
	switch column {
	case ColumnCompany, ColumnYear:
		return true
	case ColumnPracticeArea, ColumnCategory:
		return table == TableInitiatives
	case ColumnRole:
		return table == TableComposition
	}
	return false
}
