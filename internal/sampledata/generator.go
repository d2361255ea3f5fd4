package sampledata

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"github.com/google/uuid"

	"github.com/okian/dnindex/internal/domain/model"
	"github.com/okian/dnindex/pkg/logger"
)

// Vocabulary drawn from when generating rows. Wellbeing is deliberately
// outside the default relevant category set.
var ( //nolint:gochecknoglobals // static vocabulary
	categories    = []string{"Gender", "Age", "Disability", "Culture", "LGBTQI+", "Wellbeing"}
	practiceAreas = []string{"HR", "Recruiting", "Training", "Communication", "Welfare"}
	roles         = []string{"Board", "Management", "Staff"}
	titles        = []string{"Mentoring", "Workshop", "Awareness campaign", "Policy review", "Partnership"}
)

// Percentage generation ranges.
const (
	minPercentWomen   = 10
	percentWomenRange = 60
	minHeadcount      = 5
	headcountRange    = 60
)

// unparseableEvery controls how often a percentage cell is garbage.
const unparseableEvery = 20

// Dataset is one generated pair of tables.
type Dataset struct {
	Companies   []string
	Initiatives []model.InitiativeRecord
	Composition []model.CompositionRecord
}

// Generate builds a dataset from cfg. The output depends only on cfg.
func Generate(ctx context.Context, cfg Config) (Dataset, error) {
	if cfg.Companies <= 0 || cfg.Years <= 0 || cfg.Initiatives < 0 {
		return Dataset{}, fmt.Errorf("%w: companies=%d years=%d initiatives=%d",
			ErrInvalidConfig, cfg.Companies, cfg.Years, cfg.Initiatives)
	}

	rng := rand.New(rand.NewSource(cfg.Seed)) //nolint:gosec // reproducible synthetic data

	ds := Dataset{
		Companies:   make([]string, cfg.Companies),
		Initiatives: make([]model.InitiativeRecord, 0, cfg.Initiatives),
	}
	for i := range ds.Companies {
		id, err := uuid.NewRandomFromReader(rng)
		if err != nil {
			return Dataset{}, fmt.Errorf("company id: %w", err)
		}
		ds.Companies[i] = "Company " + id.String()[:8]
	}

	for i := 0; i < cfg.Initiatives; i++ {
		if err := ctx.Err(); err != nil {
			return Dataset{}, fmt.Errorf("generation cancelled: %w", err)
		}
		ds.Initiatives = append(ds.Initiatives, model.InitiativeRecord{
			Company:      pick(rng, ds.Companies),
			Year:         cfg.StartYear + rng.Intn(cfg.Years),
			Title:        pick(rng, titles) + " " + strconv.Itoa(i+1),
			PracticeArea: pick(rng, practiceAreas),
			Category:     pick(rng, categories),
		})
	}

	for _, company := range ds.Companies {
		for y := 0; y < cfg.Years; y++ {
			for _, role := range roles {
				ds.Composition = append(ds.Composition, compositionRow(rng, company, cfg.StartYear+y, role))
			}
		}
	}

	logger.Get().Debug(ctx, "sample dataset generated",
		logger.Int("companies", len(ds.Companies)),
		logger.Int("initiatives", len(ds.Initiatives)),
		logger.Int("composition", len(ds.Composition)),
		logger.Any("seed", cfg.Seed),
	)
	return ds, nil
}

func compositionRow(rng *rand.Rand, company string, year int, role string) model.CompositionRecord {
	total := minHeadcount + rng.Intn(headcountRange)
	pctWomen := minPercentWomen + rng.Intn(percentWomenRange)
	women := total * pctWomen / 100
	men := total - women

	yn := model.No
	if rng.Intn(2) == 0 {
		yn = model.Yes
	}

	return model.CompositionRecord{
		Company:           company,
		Year:              year,
		Role:              role,
		PercentWomen:      percentCell(rng, pctWomen),
		PercentMen:        percentCell(rng, 100-pctWomen),
		Women:             women,
		Men:               men,
		InclusiveLanguage: yn,
	}
}

// percentCell renders p the way source sheets do: as a number, as "p%",
// or occasionally as an unparseable placeholder.
func percentCell(rng *rand.Rand, p int) model.Cell {
	if rng.Intn(unparseableEvery) == 0 {
		return model.TextCell("n/d")
	}
	if rng.Intn(2) == 0 {
		return model.TextCell(strconv.Itoa(p) + "%")
	}
	return model.NumberCell(float64(p))
}

func pick(rng *rand.Rand, from []string) string {
	return from[rng.Intn(len(from))]
}
