package sampledata_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/okian/dnindex/internal/adapters/loader"
	"github.com/okian/dnindex/internal/domain/model"
	"github.com/okian/dnindex/internal/domain/scoring"
	"github.com/okian/dnindex/internal/sampledata"
	"github.com/okian/dnindex/pkg/logger"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	if err := logger.Init(); err != nil {
		panic(err)
	}
}

func TestGenerate(t *testing.T) {
	Convey("Given a sample config", t, func() {
		ctx := context.Background()
		cfg := sampledata.NewConfig(
			sampledata.WithCompanies(5),
			sampledata.WithInitiatives(40),
			sampledata.WithYears(2022, 2),
			sampledata.WithSeed(42),
		)

		Convey("When generating twice with the same seed", func() {
			a, errA := sampledata.Generate(ctx, cfg)
			b, errB := sampledata.Generate(ctx, cfg)

			Convey("Then both datasets should be identical", func() {
				So(errA, ShouldBeNil)
				So(errB, ShouldBeNil)
				So(a, ShouldResemble, b)
			})

			Convey("And the sizes should follow the config", func() {
				So(a.Companies, ShouldHaveLength, 5)
				So(a.Initiatives, ShouldHaveLength, 40)
				So(a.Composition, ShouldHaveLength, 5*2*3)
				for _, r := range a.Initiatives {
					So(r.Year, ShouldBeBetweenOrEqual, 2022, 2023)
				}
			})
		})

		Convey("When generating with another seed", func() {
			a, _ := sampledata.Generate(ctx, cfg)
			b, _ := sampledata.Generate(ctx, sampledata.NewConfig(sampledata.WithCompanies(5), sampledata.WithSeed(7)))

			Convey("Then company names should differ", func() {
				So(a.Companies, ShouldNotResemble, b.Companies)
			})
		})

		Convey("When the context is cancelled", func() {
			cctx, cancel := context.WithCancel(ctx)
			cancel()
			_, err := sampledata.Generate(cctx, cfg)

			Convey("Then generation should stop with the context error", func() {
				So(errors.Is(err, context.Canceled), ShouldBeTrue)
			})
		})

		Convey("When the config is invalid", func() {
			_, err := sampledata.Generate(ctx, sampledata.Config{})

			Convey("Then ErrInvalidConfig should be returned", func() {
				So(errors.Is(err, sampledata.ErrInvalidConfig), ShouldBeTrue)
			})
		})
	})
}

func TestWriteAndLoad(t *testing.T) {
	Convey("Given a generated dataset written as CSV", t, func() {
		ctx := context.Background()
		ds, err := sampledata.Generate(ctx, sampledata.NewConfig(sampledata.WithSeed(3)))
		So(err, ShouldBeNil)

		var inits, comps bytes.Buffer
		So(sampledata.WriteInitiatives(&inits, ds), ShouldBeNil)
		So(sampledata.WriteComposition(&comps, ds), ShouldBeNil)

		Convey("When loading it back", func() {
			l := loader.New()
			gotInits, _, errI := l.ReadInitiatives(ctx, &inits, "initiatives")
			gotComps, _, errC := l.ReadComposition(ctx, &comps, "composition")

			Convey("Then the tables should survive the round trip", func() {
				So(errI, ShouldBeNil)
				So(errC, ShouldBeNil)
				So(gotInits, ShouldResemble, ds.Initiatives)
				So(gotComps, ShouldResemble, ds.Composition)
			})
		})
	})

	Convey("Given a target directory", t, func() {
		dir := t.TempDir()
		ds, _ := sampledata.Generate(context.Background(), sampledata.NewConfig())

		Convey("When writing both files", func() {
			ip, cp, err := sampledata.WriteDir(dir, ds)

			Convey("Then the loader should read them into a snapshot", func() {
				So(err, ShouldBeNil)
				snap, err := loader.New().LoadFiles(context.Background(), ip, cp)
				So(err, ShouldBeNil)
				n, m := snap.Counts()
				So(n, ShouldEqual, len(ds.Initiatives))
				So(m, ShouldEqual, len(ds.Composition))
			})
		})
	})
}

func TestVerify(t *testing.T) {
	Convey("Given rankings produced by every strategy over generated data", t, func() {
		ds, err := sampledata.Generate(context.Background(), sampledata.NewConfig(sampledata.WithSeed(11)))
		So(err, ShouldBeNil)
		engine := scoring.NewEngine()

		for _, name := range scoring.Strategies() {
			strategy, err := engine.Strategy(name)
			So(err, ShouldBeNil)
			results := strategy.Score(scoring.Input{Initiatives: ds.Initiatives, Composition: ds.Composition})

			Convey("Then "+name+" should satisfy the ranking invariants", func() {
				So(results, ShouldNotBeEmpty)
				So(sampledata.Verify(results), ShouldBeNil)
			})
		}
	})

	Convey("Given broken rankings", t, func() {
		cases := []struct {
			name string
			rows []model.CompanyIndexResult
		}{
			{"duplicate company", []model.CompanyIndexResult{{Company: "A"}, {Company: "A"}}},
			{"out of range", []model.CompanyIndexResult{{Company: "A", CompositeIndex: 120}}},
			{"unsorted", []model.CompanyIndexResult{{Company: "A", CompositeIndex: 10}, {Company: "B", CompositeIndex: 20}}},
			{"unordered tie", []model.CompanyIndexResult{{Company: "B", CompositeIndex: 10}, {Company: "A", CompositeIndex: 10}}},
		}

		for _, tc := range cases {
			Convey("Then "+tc.name+" should be rejected", func() {
				So(errors.Is(sampledata.Verify(tc.rows), sampledata.ErrVerification), ShouldBeTrue)
			})
		}
	})
}
