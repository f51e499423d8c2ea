package version

import (
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestCompare(t *testing.T) {
	Convey("Compare", t, func() {
		Convey("Orders by major, minor and patch", func() {
			So(must(Compare("1.2.3", "1.2.3")), ShouldEqual, 0)
			So(must(Compare("1.3.0", "1.2.9")), ShouldEqual, 1)
			So(must(Compare("v0.9.0", "1.0.0")), ShouldEqual, -1)
		})

		Convey("Treats missing components as zero", func() {
			So(must(Compare("6.0", "6.0.0")), ShouldEqual, 0)
			So(must(Compare("10", "6.1")), ShouldEqual, 1)
			So(must(Compare("10.0.19045.1234", "10.0.19045")), ShouldEqual, 0)
		})

		Convey("Rejects non-numeric components", func() {
			_, err := Compare("six", "6.0")
			So(err, ShouldNotBeNil)
		})
	})

	Convey("AtLeast", t, func() {
		So(AtLeast("10.0", "6.0"), ShouldBeTrue)
		So(AtLeast("5.1.2600", "6.0"), ShouldBeFalse)
		So(AtLeast("", "6.0"), ShouldBeFalse)
	})
}

func must(n int, err error) int {
	So(err, ShouldBeNil)
	return n
}
