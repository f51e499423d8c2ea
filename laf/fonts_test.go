package laf

import (
	"testing"

	"github.com/darcula-go/darcula/fontprobe"
	"github.com/darcula-go/darcula/platform"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
	"github.com/samber/mo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestCandidate(t *testing.T) {
	windows := platform.Info{OS: platform.Windows, Version: "10.0.19045"}

	Convey("Given installed font families", t, func() {
		fonts := fontprobe.Static{Families: []string{"Arial", "Segoe UI", "Tahoma"}}

		Convey("Windows picks the first installed candidate", func() {
			got, err := Candidate(windows, fonts)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Segoe UI"))
		})

		Convey("Later candidates are used when earlier ones are missing", func() {
			got, err := Candidate(windows, fontprobe.Static{Families: []string{"Dialog"}})
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Dialog"))
		})

		Convey("Other platforms have no candidate", func() {
			for _, p := range []platform.OS{platform.Mac, platform.Linux} {
				got, err := Candidate(platform.Info{OS: p}, fonts)
				So(err, ShouldBeNil)
				So(got.IsAbsent(), ShouldBeTrue)
			}
		})

		Convey("The ordered list beats the probed dialog font", func() {
			stock := fontprobe.Static{
				Families: []string{"Segoe UI", "Tahoma"},
				Dialog:   mo.Some(value.Font{Family: "Tahoma", Size: 12}),
			}
			got, err := Candidate(windows, stock)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Segoe UI"))
		})

		Convey("The dialog font is used when no list entry is installed", func() {
			fonts := fontprobe.Static{
				Families: []string{"Arial", "Microsoft Sans Serif"},
				Dialog:   mo.Some(value.Font{Family: "Microsoft Sans Serif", Size: 12}),
			}
			got, err := Candidate(windows, fonts)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Microsoft Sans Serif"))
		})

		Convey("A dialog font that is not installed is ignored", func() {
			fonts := fontprobe.Static{
				Families: []string{"Arial"},
				Dialog:   mo.Some(value.Font{Family: "NotInstalled Sans", Size: 12}),
			}
			got, err := Candidate(windows, fonts)
			So(err, ShouldBeNil)
			So(got.IsAbsent(), ShouldBeTrue)

			fonts.Families = []string{"Segoe UI"}
			got, err = Candidate(windows, fonts)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Segoe UI"))
		})

		Convey("A dialog font reporting the generic family is discarded", func() {
			fonts := fontprobe.Static{
				Families: []string{"Arial", "Dialog"},
				Dialog:   mo.Some(value.Font{Family: "Dialog", Size: 12}),
			}
			got, err := Candidate(windows, fonts)
			So(err, ShouldBeNil)
			So(got, ShouldResemble, mo.Some("Dialog"))

			fonts.Families = []string{"Arial"}
			got, err = Candidate(windows, fonts)
			So(err, ShouldBeNil)
			So(got.IsAbsent(), ShouldBeTrue)
		})
	})
}

func TestSubstituteFonts(t *testing.T) {
	Convey("Given a table with fonts", t, func() {
		tbl := BasicDefaults{OS: platform.Windows}.BaseTable()
		before := tbl.Clone()

		Convey("No candidate leaves the table unchanged", func() {
			SubstituteFonts(tbl, mo.None[string](), 12, "Consolas")
			So(tbl.Equal(before), ShouldBeTrue)
		})

		Convey("A candidate rewrites the bulk keys plain and the title bold", func() {
			SubstituteFonts(tbl, mo.Some("Segoe UI"), 13, "")

			for _, k := range FontKeys {
				f, err := tbl.Font(k)
				So(err, ShouldBeNil)
				So(f, ShouldResemble, value.Font{Family: "Segoe UI", Style: value.Plain, Size: 13})
			}

			f, err := tbl.Font(TitleFontKey)
			So(err, ShouldBeNil)
			So(f, ShouldResemble, value.Font{Family: "Segoe UI", Style: value.Bold, Size: 13})
		})

		Convey("Fonts outside the fixed set are untouched", func() {
			SubstituteFonts(tbl, mo.Some("Segoe UI"), 12, "")

			f, err := tbl.Font("ProgressBar.font")
			So(err, ShouldBeNil)
			So(f.Family, ShouldEqual, "Tahoma")
		})

		Convey("A monospace family overrides the text components", func() {
			SubstituteFonts(tbl, mo.Some("Segoe UI"), 12, "Consolas")

			for _, k := range MonospaceKeys {
				f, err := tbl.Font(k)
				So(err, ShouldBeNil)
				So(f.Family, ShouldEqual, "Consolas")
			}

			f, _ := tbl.Font("TextField.font")
			So(f.Family, ShouldEqual, "Segoe UI")
		})

		Convey("Window decoration icons are synthesized at 16px", func() {
			SubstituteFonts(tbl, mo.Some("Segoe UI"), 12, "")

			for _, d := range decorationIcons {
				icon, err := tbl.Icon(d.key)
				So(err, ShouldBeNil)
				So(icon.Width(), ShouldEqual, 16)
				So(icon.Height(), ShouldEqual, 16)
			}
		})
	})
}

func TestRemapLegacyFonts(t *testing.T) {
	Convey("Given fonts of legacy families", t, func() {
		tbl := table.New()
		tbl.Put("Slider.font", value.OfFont(value.Font{Family: "Tahoma", Style: value.Bold, Size: 11}))
		tbl.Put("ToolTip.font", value.OfFont(value.Font{Family: "MS Sans Serif", Size: 10}))
		tbl.Put("Menu.acceleratorFont", value.OfFont(value.Font{Family: "Tahoma", Size: 10}))
		tbl.Put("PopupMenu.font", value.OfFont(value.Font{Family: "MS Sans Serif", Size: 12}))
		tbl.Put("Label.font", value.OfFont(value.Font{Family: "Arial", Size: 12}))
		tbl.Put("Label.foreground", color(0, 0, 0))

		n := RemapLegacyFonts(tbl, "Segoe UI")

		Convey("Legacy families are replaced keeping style and size", func() {
			So(n, ShouldEqual, 2)

			f, _ := tbl.Font("Slider.font")
			So(f, ShouldResemble, value.Font{Family: "Segoe UI", Style: value.Bold, Size: 11})

			f, _ = tbl.Font("ToolTip.font")
			So(f, ShouldResemble, value.Font{Family: "Segoe UI", Style: value.Plain, Size: 10})
		})

		Convey("Keys containing Menu are skipped", func() {
			f, _ := tbl.Font("Menu.acceleratorFont")
			So(f.Family, ShouldEqual, "Tahoma")

			f, _ = tbl.Font("PopupMenu.font")
			So(f.Family, ShouldEqual, "MS Sans Serif")
		})

		Convey("Other families and kinds are untouched", func() {
			f, _ := tbl.Font("Label.font")
			So(f.Family, ShouldEqual, "Arial")
			So(tbl.Len(), ShouldEqual, 6)
		})
	})
}
