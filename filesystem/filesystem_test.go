package filesystem

import (
	"testing"
	"testing/fstest"

	"github.com/spf13/afero"
	. "github.com/smartystreets/goconvey/convey"
)

func TestApi(t *testing.T) {
	Convey("Filesystem API", t, func() {
		Convey("Should default to OsFs", func() {
			SetOsFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "OsFs")
		})

		Convey("Should switch to MemMapFs", func() {
			SetMemMapFs()
			fs := API()
			So(fs, ShouldNotBeNil)
			So(fs.Name(), ShouldEqual, "MemMapFS")
		})
	})
}

func TestLayered(t *testing.T) {
	Convey("Given a builtin tree and a user directory", t, func() {
		SetMemMapFs()
		builtin := fstest.MapFS{
			"a.properties": {Data: []byte("A.x=builtin\n")},
			"b.properties": {Data: []byte("B.x=builtin\n")},
		}
		So(API().MkdirAll("/user/themes", 0o755), ShouldBeNil)
		So(API().WriteFile("/user/themes/a.properties", []byte("A.x=user\n"), 0o644), ShouldBeNil)

		layered := afero.Afero{Fs: Layered(builtin, "/user/themes")}

		Convey("A user file shadows the builtin one", func() {
			data, err := layered.ReadFile("a.properties")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "A.x=user\n")
		})

		Convey("Builtin files fall through", func() {
			data, err := layered.ReadFile("b.properties")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "B.x=builtin\n")
		})

		Convey("Missing files are reported as missing", func() {
			exists, err := layered.Exists("c.properties")
			So(err, ShouldBeNil)
			So(exists, ShouldBeFalse)
		})

		Convey("An empty directory yields the builtin tree only", func() {
			data, err := afero.ReadFile(Layered(builtin, ""), "a.properties")
			So(err, ShouldBeNil)
			So(string(data), ShouldEqual, "A.x=builtin\n")
		})
	})
}
