package border

import (
	"errors"
	"testing"

	"github.com/darcula-go/darcula/value"
	. "github.com/smartystreets/goconvey/convey"
)

func TestRegistry(t *testing.T) {
	Convey("Given the builtin registry", t, func() {
		r := Builtin()

		Convey("Known types are instantiated fresh each time", func() {
			a, err := r.Instantiate(ScrollPaneName)
			So(err, ShouldBeNil)
			b, err := r.Instantiate(ScrollPaneName)
			So(err, ShouldBeNil)

			So(a.Name(), ShouldEqual, ScrollPaneName)
			So(a.Insets(), ShouldResemble, value.Insets{Top: 2, Left: 2, Bottom: 2, Right: 2})
			So(a == b, ShouldBeFalse)
		})

		Convey("Unknown types fail with ErrTypeUnavailable", func() {
			_, err := r.Instantiate("border.Nope")
			So(errors.Is(err, value.ErrTypeUnavailable), ShouldBeTrue)
		})

		Convey("Names are sorted", func() {
			names := r.Names()
			So(len(names), ShouldBeGreaterThan, 10)
			So(names[0], ShouldEqual, ButtonName)
		})

		Convey("Registering a duplicate panics", func() {
			So(func() { r.Register(LineName, Uniform(LineName, 1)) }, ShouldPanic)
		})
	})

	Convey("Line and empty borders report their insets", t, func() {
		So(NewLine(value.RGB(1, 2, 3), 2).Insets(), ShouldResemble, value.Insets{Top: 2, Left: 2, Bottom: 2, Right: 2})
		So(NewEmpty(1, 2, 3, 4).Insets(), ShouldResemble, value.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4})
		So(NewEmpty(1, 1, 1, 1).Name(), ShouldEqual, EmptyName)
	})
}
