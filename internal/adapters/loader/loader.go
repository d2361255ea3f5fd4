// Package loader reads the initiative and composition tables from CSV.
package loader

import (
	"bufio"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/okian/dnindex/internal/domain/dataset"
	"github.com/okian/dnindex/internal/domain/model"
	"github.com/okian/dnindex/pkg/logger"
	"github.com/okian/dnindex/pkg/metrics"
)

// Table names used in reports and metrics.
const (
	TableInitiatives = "initiatives"
	TableComposition = "composition"
)

// sniffBytes bounds how much of the header is inspected for the delimiter.
const sniffBytes = 4096

// Report summarizes one table load.
type Report struct {
	Table   string
	Source  string
	Rows    int // data rows read, header excluded
	Loaded  int
	Skipped int // rows without a company
	BadYear int // rows kept with year 0
}

// Loader reads CSV tables.
type Loader struct {
	logger logger.Logger
}

// Option applies a configuration option to the Loader.
type Option func(*Loader)

// WithLogger sets the logger used for load summaries.
func WithLogger(l logger.Logger) Option {
	return func(ld *Loader) {
		if l != nil {
			ld.logger = l
		}
	}
}

// New creates a Loader.
func New(opts ...Option) *Loader {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// LoadFiles reads both tables from disk and returns them as a Snapshot.
func (l *Loader) LoadFiles(ctx context.Context, initiativesPath, compositionPath string) (*dataset.Snapshot, error) {
	f, err := os.Open(initiativesPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	inits, _, err := l.ReadInitiatives(ctx, f, initiativesPath)
	_ = f.Close()
	if err != nil {
		return nil, err
	}

	f, err = os.Open(compositionPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadDataset, err)
	}
	comps, _, err := l.ReadComposition(ctx, f, compositionPath)
	_ = f.Close()
	if err != nil {
		return nil, err
	}

	return dataset.New(inits, comps, dataset.WithSource(initiativesPath+","+compositionPath)), nil
}

// ReadInitiatives parses an initiative table. Source labels errors and logs.
func (l *Loader) ReadInitiatives(ctx context.Context, r io.Reader, source string) ([]model.InitiativeRecord, Report, error) {
	rep := Report{Table: TableInitiatives, Source: source}
	var out []model.InitiativeRecord

	err := l.scan(r, &rep, func(rw row) {
		year, ok := parseYear(rw.get(colYear))
		if !ok {
			rep.BadYear++
		}
		out = append(out, model.InitiativeRecord{
			Company:      rw.get(colCompany),
			Year:         year,
			Title:        rw.get(colTitle),
			PracticeArea: rw.get(colPracticeArea),
			Category:     rw.get(colCategory),
		})
	})
	if err != nil {
		return nil, rep, err
	}

	rep.Loaded = len(out)
	l.report(ctx, rep)
	return out, rep, nil
}

// ReadComposition parses a composition table.
func (l *Loader) ReadComposition(ctx context.Context, r io.Reader, source string) ([]model.CompositionRecord, Report, error) {
	rep := Report{Table: TableComposition, Source: source}
	var out []model.CompositionRecord

	err := l.scan(r, &rep, func(rw row) {
		year, ok := parseYear(rw.get(colYear))
		if !ok {
			rep.BadYear++
		}
		out = append(out, model.CompositionRecord{
			Company:           rw.get(colCompany),
			Year:              year,
			Role:              rw.get(colRole),
			PercentWomen:      parseCell(rw.get(colPctWomen)),
			PercentMen:        parseCell(rw.get(colPctMen)),
			Women:             parseCount(rw.get(colWomen)),
			Men:               parseCount(rw.get(colMen)),
			InclusiveLanguage: model.ParseYesNo(rw.get(colInclusiveLanguage)),
		})
	})
	if err != nil {
		return nil, rep, err
	}

	rep.Loaded = len(out)
	l.report(ctx, rep)
	return out, rep, nil
}

// scan reads the header, then hands every row with a company to fn.
func (l *Loader) scan(r io.Reader, rep *Report, fn func(row)) error {
	br := bufio.NewReader(r)
	csvReader := csv.NewReader(br)
	csvReader.Comma = sniffDelimiter(br)
	csvReader.FieldsPerRecord = -1
	csvReader.LazyQuotes = true

	header, err := csvReader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("%w: %s: empty file", ErrLoadDataset, rep.Source)
		}
		return fmt.Errorf("%w: %s: header: %w", ErrLoadDataset, rep.Source, err)
	}

	cols := mapColumns(header)
	if _, ok := cols[colCompany]; !ok {
		return fmt.Errorf("%w: %s: %w %q", ErrLoadDataset, rep.Source, ErrMissingColumn, colCompany)
	}

	for {
		record, err := csvReader.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrLoadDataset, rep.Source, err)
		}

		rep.Rows++
		rw := row{cols: cols, record: record}
		if rw.get(colCompany) == "" {
			rep.Skipped++
			continue
		}
		fn(rw)
	}
}

func (l *Loader) report(ctx context.Context, rep Report) {
	metrics.UpdateRecordsLoaded(rep.Table, rep.Loaded)
	metrics.RecordRowsSkipped(rep.Table, rep.Skipped)

	if l.logger == nil {
		return
	}
	l.logger.Info(ctx, "table loaded",
		logger.String("table", rep.Table),
		logger.String("source", rep.Source),
		logger.Int("rows", rep.Rows),
		logger.Int("loaded", rep.Loaded),
		logger.Int("skipped", rep.Skipped),
		logger.Int("badYear", rep.BadYear),
	)
}

// sniffDelimiter picks ';' when the header line uses it and has no commas.
func sniffDelimiter(br *bufio.Reader) rune {
	peek, _ := br.Peek(sniffBytes)
	line := string(peek)
	if i := strings.IndexByte(line, '\n'); i >= 0 {
		line = line[:i]
	}
	if strings.Contains(line, ";") && !strings.Contains(line, ",") {
		return ';'
	}
	return ','
}

// parseYear accepts "2023" and spreadsheet floats like "2023.0".
func parseYear(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	if y, err := strconv.Atoi(s); err == nil {
		return y, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int(f), true
}

// parseCell keeps plain numbers numeric and everything else as text.
func parseCell(s string) model.Cell {
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) {
		return model.NumberCell(f)
	}
	return model.TextCell(s)
}

// maxHeadcount caps absurd headcounts so the float to int conversion stays defined.
const maxHeadcount = math.MaxInt32

// parseCount reads a headcount; blanks, garbage and negatives become 0.
func parseCount(s string) int {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f < 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	if f >= maxHeadcount {
		return maxHeadcount
	}
	return int(math.Round(f))
}
