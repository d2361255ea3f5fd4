package dataset_test

import (
	"testing"
	"time"

	"github.com/okian/dnindex/internal/domain/dataset"
	"github.com/okian/dnindex/internal/domain/model"
	. "github.com/smartystreets/goconvey/convey"
)

func TestSnapshot(t *testing.T) {
	Convey("Given source tables", t, func() {
		inits := []model.InitiativeRecord{{Company: "Acme", Year: 2023, Category: "Gender"}}
		comps := []model.CompositionRecord{{Company: "Acme", Year: 2023, Role: "Board"}}
		at := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)

		snap := dataset.New(inits, comps, dataset.WithSource("test"), dataset.WithLoadedAt(at))

		Convey("Then the metadata should be recorded", func() {
			ni, nc := snap.Counts()
			So(ni, ShouldEqual, 1)
			So(nc, ShouldEqual, 1)
			So(snap.Source(), ShouldEqual, "test")
			So(snap.LoadedAt(), ShouldEqual, at)
		})

		Convey("When the caller mutates its original slices", func() {
			inits[0].Company = "Changed"
			comps[0].Role = "Staff"

			Convey("Then the snapshot should be unaffected", func() {
				So(snap.Initiatives()[0].Company, ShouldEqual, "Acme")
				So(snap.Composition()[0].Role, ShouldEqual, "Board")
			})
		})

		Convey("When a reader mutates a returned table", func() {
			got := snap.Initiatives()
			got[0].Company = "Changed"

			Convey("Then the snapshot should be unaffected", func() {
				So(snap.Initiatives()[0].Company, ShouldEqual, "Acme")
			})
		})
	})
}
