package cmd

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/darcula-go/darcula/config"
	"github.com/darcula-go/darcula/filesystem"
	"github.com/darcula-go/darcula/inline"
	"github.com/darcula-go/darcula/where"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func init() {
	filesystem.SetMemMapFs()
	lo.Must0(config.Setup())
}

func TestRootCommand(t *testing.T) {
	Convey("Given the command tree", t, func() {
		var buf bytes.Buffer

		Convey("where --themes prints the themes directory", func() {
			whereCmd.SetOut(&buf)
			rootCmd.SetArgs([]string{"where", "--themes"})

			So(rootCmd.Execute(), ShouldBeNil)
			So(buf.String(), ShouldEqual, where.Themes()+"\n")
		})

		Convey("resolve --json prints the resolved table", func() {
			resolveCmd.SetOut(&buf)
			rootCmd.SetArgs([]string{"resolve", "--json", "--platform", "linux"})

			So(rootCmd.Execute(), ShouldBeNil)

			var out inline.Output
			So(json.Unmarshal(buf.Bytes(), &out), ShouldBeNil)
			So(out.Theme, ShouldEqual, "darcula")
			So(out.Platform, ShouldEqual, "linux")

			entry, ok := lo.Find(out.Entries, func(e *inline.Entry) bool {
				return e.Key == "Panel.background"
			})
			So(ok, ShouldBeTrue)
			So(entry.Value, ShouldEqual, "3c3f41")
		})
	})
}
