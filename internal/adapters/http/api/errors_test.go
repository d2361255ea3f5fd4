package api_test

import (
	"errors"
	"testing"

	"github.com/okian/dnindex/internal/adapters/http/api"
	"github.com/smartystreets/goconvey/convey"
)

func TestErrorKinds(t *testing.T) {
	convey.Convey("Given an error tagged with an operation and kind", t, func() {
		cause := errors.New("invalid year")
		err := api.WrapKind("api.get_indices", api.ErrBadRequest, cause)

		convey.Convey("Then both the kind and the cause should be reachable", func() {
			convey.So(errors.Is(err, api.ErrBadRequest), convey.ShouldBeTrue)
			convey.So(errors.Is(err, cause), convey.ShouldBeTrue)
			convey.So(err.Error(), convey.ShouldEqual, "api.get_indices: bad request: invalid year")
		})

		convey.Convey("Then Wrap should mark the error as internal", func() {
			wrapped := api.Wrap("api.get_stats", cause)
			convey.So(errors.Is(wrapped, api.ErrInternal), convey.ShouldBeTrue)
		})

		convey.Convey("Then NewKind should carry no cause", func() {
			k := api.NewKind("api.get_options", api.ErrBadRequest)
			convey.So(k.Error(), convey.ShouldEqual, "api.get_options: bad request")

			var apiErr *api.Error
			convey.So(errors.As(k, &apiErr), convey.ShouldBeTrue)
			convey.So(apiErr.Op, convey.ShouldEqual, "api.get_options")
		})
	})
}
