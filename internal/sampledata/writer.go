package sampledata

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/okian/dnindex/internal/domain/model"
)

// Output file names written by WriteDir.
const (
	InitiativesFile = "initiatives.csv"
	CompositionFile = "composition.csv"
	filePermission  = 0o644
	dirPermission   = 0o755
)

// Headers use the spellings of the original survey sheets so the files
// exercise the loader's alias mapping.
var ( //nolint:gochecknoglobals // static headers
	initiativeHeader = []string{
		"Nome azienda", "Anno", "Titolo dell'attività", "Area Prassi", "Categoria di diversità",
	}
	compositionHeader = []string{
		"Nome azienda", "Anno", "Posizione", "Percentuale donne", "Percentuale uomini",
		"Numero donne", "Numero uomini", "Linguaggio inclusivo",
	}
)

// WriteInitiatives writes the initiative table as CSV.
func WriteInitiatives(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(initiativeHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range ds.Initiatives {
		if err := cw.Write([]string{r.Company, strconv.Itoa(r.Year), r.Title, r.PracticeArea, r.Category}); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComposition writes the composition table as CSV.
func WriteComposition(w io.Writer, ds Dataset) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(compositionHeader); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, r := range ds.Composition {
		row := []string{
			r.Company,
			strconv.Itoa(r.Year),
			r.Role,
			r.PercentWomen.String(),
			r.PercentMen.String(),
			strconv.Itoa(r.Women),
			strconv.Itoa(r.Men),
			yesNoLabel(r.InclusiveLanguage),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteDir writes both tables into dir, creating it when needed, and
// returns the two file paths.
func WriteDir(dir string, ds Dataset) (initiativesPath, compositionPath string, err error) {
	if err := os.MkdirAll(dir, dirPermission); err != nil {
		return "", "", fmt.Errorf("create %s: %w", dir, err)
	}
	initiativesPath = filepath.Join(dir, InitiativesFile)
	compositionPath = filepath.Join(dir, CompositionFile)

	if err := writeFile(initiativesPath, func(w io.Writer) error { return WriteInitiatives(w, ds) }); err != nil {
		return "", "", err
	}
	if err := writeFile(compositionPath, func(w io.Writer) error { return WriteComposition(w, ds) }); err != nil {
		return "", "", err
	}
	return initiativesPath, compositionPath, nil
}

func yesNoLabel(y model.YesNo) string {
	switch y {
	case model.Yes:
		return "Sì"
	case model.No:
		return "No"
	default:
		return ""
	}
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, filePermission)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		_ = f.Close()
		return fmt.Errorf("%s: %w", path, err)
	}
	return f.Close()
}
