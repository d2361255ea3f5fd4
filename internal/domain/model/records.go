// Package model contains domain models passed between layers.
package model

import (
	"strconv"
	"strings"
)

// InitiativeRecord is one diversity-related activity run by a company.
type InitiativeRecord struct {
	Company      string // trimmed by the loader
	Year         int
	Title        string
	PracticeArea string
	Category     string // diversity category, open vocabulary
}

// CompositionRecord is one gender-composition measurement for a role.
type CompositionRecord struct {
	Company           string
	Year              int
	Role              string // "Board" scopes the parity index
	PercentWomen      Cell
	PercentMen        Cell
	Women             int
	Men               int
	InclusiveLanguage YesNo
}

// Cell holds a spreadsheet value that is either numeric or free text.
type Cell struct {
	Text    string
	Value   float64
	Numeric bool
}

// NumberCell wraps a numeric value.
func NumberCell(v float64) Cell { return Cell{Value: v, Numeric: true} }

// TextCell wraps a textual value such as "42%".
func TextCell(s string) Cell { return Cell{Text: s} }

// String renders the cell the way it was read.
func (c Cell) String() string {
	if c.Numeric {
		return strconv.FormatFloat(c.Value, 'f', -1, 64)
	}
	return c.Text
}

// YesNo is a boolean-like flag restricted to a yes/no domain.
type YesNo int

const (
	Unknown YesNo = iota
	Yes
	No
)

// ParseYesNo maps the spellings found in source sheets to a YesNo.
func ParseYesNo(s string) YesNo {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "sì", "si", "yes", "y", "true", "1":
		return Yes
	case "no", "n", "false", "0":
		return No
	default:
		return Unknown
	}
}

func (y YesNo) String() string {
	switch y {
	case Yes:
		return "yes"
	case No:
		return "no"
	default:
		return "unknown"
	}
}

// CompanyIndexResult is one row of the ranked index table.
type CompanyIndexResult struct {
	Company           string  `json:"company"`
	InitiativeIndex   float64 `json:"initiative_index"`
	CategoryIndex     float64 `json:"category_index"`
	GenderParityIndex float64 `json:"gender_parity_index"`
	CompositeIndex    float64 `json:"composite_index"`
	// Raw is the pre-normalization score when the strategy has one.
	Raw      float64 `json:"raw,omitempty"`
	Strategy string  `json:"strategy"`
}
