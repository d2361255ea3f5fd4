package loader

import "strings"

// Canonical column names.
const (
	colCompany           = "company"
	colYear              = "year"
	colTitle             = "title"
	colPracticeArea      = "practice_area"
	colCategory          = "category"
	colRole              = "role"
	colPctWomen          = "pct_women"
	colPctMen            = "pct_men"
	colWomen             = "women"
	colMen               = "men"
	colInclusiveLanguage = "inclusive_language"
)

// aliases maps lowercased header spellings to canonical names.
var aliases = map[string]string{ //nolint:gochecknoglobals // static lookup table
	"nome azienda":           colCompany,
	"azienda":                colCompany,
	"anno":                   colYear,
	"titolo dell'attività":   colTitle,
	"titolo dell’attività":   colTitle,
	"titolo":                 colTitle,
	"area prassi":            colPracticeArea,
	"categoria di diversità": colCategory,
	"categoria":              colCategory,
	"posizione":              colRole,
	"percentuale donne":      colPctWomen,
	"percentuale uomini":     colPctMen,
	"numero donne":           colWomen,
	"numero uomini":          colMen,
	"linguaggio inclusivo":   colInclusiveLanguage,
	"practice area":          colPracticeArea,
	"diversity category":     colCategory,
	"percent women":          colPctWomen,
	"percent men":            colPctMen,
	"inclusive language":     colInclusiveLanguage,
}

// normalizeColumnName converts a header cell to its canonical name.
func normalizeColumnName(column string) string {
	c := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(column, "\ufeff")))
	if canonical, ok := aliases[c]; ok {
		return canonical
	}
	return c
}

// mapColumns creates a mapping from canonical column names to indices.
// The first occurrence of a column wins.
func mapColumns(header []string) map[string]int {
	columnMap := make(map[string]int, len(header))
	for i, column := range header {
		name := normalizeColumnName(column)
		if _, seen := columnMap[name]; !seen {
			columnMap[name] = i
		}
	}
	return columnMap
}

// row reads cells by canonical column name.
type row struct {
	cols   map[string]int
	record []string
}

func (r row) get(name string) string {
	i, ok := r.cols[name]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}
