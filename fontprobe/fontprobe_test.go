package fontprobe

import (
	"errors"
	"testing"

	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/value"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

type countingProber struct {
	Static
	calls int
	err   error
}

func (c *countingProber) InstalledFamilies() ([]string, error) {
	c.calls++
	if c.err != nil {
		return nil, c.err
	}
	return c.Static.InstalledFamilies()
}

func TestFirstInstalled(t *testing.T) {
	Convey("Given a prober with a few families", t, func() {
		p := Static{Families: []string{"Arial", "Tahoma", "Dialog"}}

		Convey("The first installed candidate wins", func() {
			got, err := FirstInstalled(p, "Segoe UI", "Tahoma", "Dialog")
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Tahoma"))
		})

		Convey("No installed candidate yields none", func() {
			got, err := FirstInstalled(p, "Segoe UI", "Calibri")
			So(err, ShouldBeNil)
			So(got.IsAbsent(), ShouldBeTrue)
		})

		Convey("Probe errors are returned", func() {
			failing := &countingProber{err: errors.New("boom")}
			_, err := FirstInstalled(failing, "Tahoma")
			So(err, ShouldNotBeNil)
		})
	})
}

func TestDialogFamily(t *testing.T) {
	Convey("Given probed dialog fonts", t, func() {
		Convey("A real family is reported", func() {
			p := Static{Dialog: mo.Some(value.Font{Family: "Segoe UI", Size: 12})}
			So(DialogFamily(p), ShouldResemble, mo.Some("Segoe UI"))
		})

		Convey("The generic fallback is discarded", func() {
			p := Static{Dialog: mo.Some(value.Font{Family: GenericFamily, Size: 12})}
			So(DialogFamily(p).IsAbsent(), ShouldBeTrue)
		})

		Convey("Only an exact match is discarded", func() {
			p := Static{Dialog: mo.Some(value.Font{Family: "DialogInput", Size: 12})}
			So(DialogFamily(p), ShouldResemble, mo.Some("DialogInput"))
		})

		Convey("A missing probe yields none", func() {
			So(DialogFamily(Static{}).IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestCached(t *testing.T) {
	Convey("Given a cached prober on an in-memory filesystem", t, func() {
		filesystem.SetMemMapFs()
		inner := &countingProber{Static: Static{Families: []string{"Segoe UI", "Tahoma"}}}
		cached := NewCached(inner, "/cache/fonts.json")

		Convey("The second lookup is served from the cache", func() {
			first, err := cached.InstalledFamilies()
			So(err, ShouldBeNil)
			So(first, ShouldResemble, []string{"Segoe UI", "Tahoma"})

			second, err := cached.InstalledFamilies()
			So(err, ShouldBeNil)
			So(second, ShouldResemble, first)
			So(inner.calls, ShouldEqual, 1)
		})

		Convey("The cache survives a new instance", func() {
			_, err := cached.InstalledFamilies()
			So(err, ShouldBeNil)

			again := NewCached(inner, "/cache/fonts.json")
			_, err = again.InstalledFamilies()
			So(err, ShouldBeNil)
			So(inner.calls, ShouldEqual, 1)
		})

		Convey("Refresh always probes", func() {
			_, _ = cached.InstalledFamilies()
			inner.Families = []string{"Calibri"}

			families, err := cached.Refresh()
			So(err, ShouldBeNil)
			So(families, ShouldResemble, []string{"Calibri"})
			So(inner.calls, ShouldEqual, 2)
		})

		Convey("Probe failures are not cached", func() {
			inner.err = errors.New("no fonts")
			_, err := cached.InstalledFamilies()
			So(err, ShouldNotBeNil)

			inner.err = nil
			families, err := cached.InstalledFamilies()
			So(err, ShouldBeNil)
			So(families, ShouldHaveLength, 2)
		})

		Convey("The dialog font is passed through", func() {
			inner.Dialog = mo.Some(value.Font{Family: "Tahoma"})
			So(DialogFamily(cached), ShouldResemble, mo.Some("Tahoma"))
		})
	})
}
