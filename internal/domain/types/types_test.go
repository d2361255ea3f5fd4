package types_test

import (
	"encoding/json"
	"testing"

	"github.com/okian/dnindex/internal/domain/model"
	types "github.com/okian/dnindex/internal/domain/types"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRank(t *testing.T) {
	Convey("Given sorted index results", t, func() {
		results := []model.CompanyIndexResult{
			{Company: "A", CompositeIndex: 80},
			{Company: "B", CompositeIndex: 40},
		}

		Convey("When ranking them", func() {
			entries := types.Rank(results)

			Convey("Then positions should start at 1 and follow input order", func() {
				So(entries[0].Rank, ShouldEqual, 1)
				So(entries[0].Company, ShouldEqual, "A")
				So(entries[1].Rank, ShouldEqual, 2)
				So(entries[1].CompositeIndex, ShouldEqual, 40.0)
			})

			Convey("And the JSON shape should be flat", func() {
				b, err := json.Marshal(entries[0])
				So(err, ShouldBeNil)
				So(string(b), ShouldContainSubstring, `"rank":1`)
				So(string(b), ShouldContainSubstring, `"company":"A"`)
				So(string(b), ShouldContainSubstring, `"composite_index":80`)
			})
		})

		Convey("When ranking nothing", func() {
			entries := types.Rank(nil)

			Convey("Then the result should be empty, not nil", func() {
				So(entries, ShouldNotBeNil)
				So(len(entries), ShouldEqual, 0)
			})
		})
	})
}
