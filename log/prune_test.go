package log

import (
	"testing"
	"time"

	"github.com/darcula-go/darcula/filesystem"
	"github.com/samber/lo"
	. "github.com/smartystreets/goconvey/convey"
)

func TestPrune(t *testing.T) {
	Convey("Given a log directory with daily files", t, func() {
		filesystem.SetMemMapFs()
		fs := filesystem.API()
		now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.Local)

		write := func(name string) string {
			path := "/logs/" + name
			So(fs.WriteFile(path, []byte("x"), 0o644), ShouldBeNil)
			return path
		}

		today := write(fileName(now))
		recent := write(fileName(now.AddDate(0, 0, -3)))
		old := write(fileName(now.AddDate(0, 0, -30)))
		other := write("notes.txt")
		So(fs.MkdirAll("/logs/archive", 0o755), ShouldBeNil)
		nested := "/logs/archive/" + fileName(now.AddDate(-1, 0, 0))
		So(fs.WriteFile(nested, []byte("x"), 0o644), ShouldBeNil)

		n, err := Prune("/logs", now)
		So(err, ShouldBeNil)

		Convey("Only expired daily logs are removed", func() {
			So(n, ShouldEqual, 1)
			So(lo.Must(fs.Exists(old)), ShouldBeFalse)
			So(lo.Must(fs.Exists(today)), ShouldBeTrue)
			So(lo.Must(fs.Exists(recent)), ShouldBeTrue)
		})

		Convey("Unrelated files and subdirectories are kept", func() {
			So(lo.Must(fs.Exists(other)), ShouldBeTrue)
			So(lo.Must(fs.Exists(nested)), ShouldBeTrue)
		})
	})
}

func TestLogDate(t *testing.T) {
	Convey("Daily log names carry their date", t, func() {
		day, ok := logDate("/logs/darcula-2026-01-02.log")
		So(ok, ShouldBeTrue)
		So(day.Format(dateLayout), ShouldEqual, "2026-01-02")

		_, ok = logDate("/logs/darcula-latest.log")
		So(ok, ShouldBeFalse)

		_, ok = logDate("/logs/other-2026-01-02.log")
		So(ok, ShouldBeFalse)
	})
}
