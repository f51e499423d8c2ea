package inline

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
	. "github.com/smartystreets/goconvey/convey"
)

func sample() *table.Table {
	t := table.New()
	t.Put("Panel.background", value.OfColor(value.RGB(0x3c, 0x3f, 0x41)))
	t.Put("Button.margin", value.OfInsets(value.Insets{Top: 2, Left: 14, Bottom: 2, Right: 14}))
	t.Put("Tree.selectionBorderColor", value.Null())
	return t
}

func TestRun(t *testing.T) {
	Convey("Given a resolved table", t, func() {
		var buf bytes.Buffer

		Convey("JSON output lists every entry in order", func() {
			err := Run(sample(), &Options{Out: &buf, Json: true, Theme: "darcula", Platform: "linux"})
			So(err, ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Theme, ShouldEqual, "darcula")
			So(output.Entries, ShouldHaveLength, 3)
			So(*output.Entries[0], ShouldResemble, Entry{Key: "Panel.background", Kind: "color", Value: "3c3f41"})
			So(*output.Entries[1], ShouldResemble, Entry{Key: "Button.margin", Kind: "insets", Value: "2,14,2,14"})
			So(output.Entries[2].Kind, ShouldEqual, "null")
		})

		Convey("An empty table still produces valid JSON", func() {
			So(Run(table.New(), &Options{Out: &buf, Json: true}), ShouldBeNil)

			var output Output
			So(json.Unmarshal(buf.Bytes(), &output), ShouldBeNil)
			So(output.Entries, ShouldHaveLength, 0)
		})

		Convey("Filters select keys", func() {
			err := Run(sample(), &Options{Out: &buf, Filter: ParseKeyFilter("@margin@")})
			So(err, ShouldBeNil)

			lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
			So(lines, ShouldHaveLength, 1)
			So(lines[0], ShouldStartWith, "Button.margin")
			So(lines[0], ShouldEndWith, "2,14,2,14")
		})
	})
}

func TestParseKeyFilter(t *testing.T) {
	Convey("Key filters", t, func() {
		Convey("An empty query selects everything", func() {
			So(ParseKeyFilter("").IsAbsent(), ShouldBeTrue)
		})

		Convey("Plain queries match fuzzily", func() {
			f := ParseKeyFilter("pnlbg").MustGet()
			So(f("Panel.background"), ShouldBeTrue)
			So(f("Button.margin"), ShouldBeFalse)
		})

		Convey("Queries wrapped in @ match substrings", func() {
			f := ParseKeyFilter("@Border@").MustGet()
			So(f("Tree.selectionBorderColor"), ShouldBeTrue)
			So(f("Panel.background"), ShouldBeFalse)
		})
	})
}
