package platform

import (
	"runtime"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func TestPlatform(t *testing.T) {
	Convey("Parse accepts suffixes and GOOS names", t, func() {
		for in, want := range map[string]OS{
			"mac":     Mac,
			"darwin":  Mac,
			"Windows": Windows,
			" linux ": Linux,
		} {
			got, err := Parse(in)
			So(err, ShouldBeNil)
			So(got, ShouldEqual, want)
		}

		_, err := Parse("plan9")
		So(err, ShouldNotBeNil)
	})

	Convey("Suffixes name the overlay sources", t, func() {
		So(Mac.Suffix(), ShouldEqual, "mac")
		So(Windows.Suffix(), ShouldEqual, "windows")
		So(Linux.String(), ShouldEqual, "linux")
	})

	Convey("FromGOOS folds unknown systems into linux", t, func() {
		So(FromGOOS("freebsd"), ShouldEqual, Linux)
		So(FromGOOS("darwin"), ShouldEqual, Mac)
		So(FromGOOS("windows"), ShouldEqual, Windows)
	})

	Convey("Info.AtLeast compares the OS version", t, func() {
		So(Info{OS: Windows, Version: "10.0.19045"}.AtLeast("6.0"), ShouldBeTrue)
		So(Info{OS: Windows, Version: "5.1"}.AtLeast("6.0"), ShouldBeFalse)
		So(Info{OS: Windows}.AtLeast("6.0"), ShouldBeFalse)
	})

	Convey("Static and Host probers", t, func() {
		info := Info{OS: Windows, Version: "10.0"}
		So(Static(info).Probe(), ShouldResemble, info)
		So(Host{}.Probe().OS, ShouldEqual, FromGOOS(runtime.GOOS))
	})
}
