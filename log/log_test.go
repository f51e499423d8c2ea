package log

import (
	"bytes"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
	logrus "github.com/sirupsen/logrus"
)

func TestEnable(t *testing.T) {
	Convey("Given an in-memory sink", t, func() {
		var buf bytes.Buffer

		Convey("Messages are dropped while disabled", func() {
			Enable(nil, logrus.DebugLevel)
			Warnf("key %s skipped", "Button.margin")
			So(Enabled(), ShouldBeFalse)
			So(buf.Len(), ShouldEqual, 0)
		})

		Convey("Messages are written once enabled", func() {
			Enable(&buf, logrus.WarnLevel)
			Warnf("key %s skipped", "Button.margin")
			Debugf("not at this level")
			So(buf.String(), ShouldContainSubstring, "key Button.margin skipped")
			So(buf.String(), ShouldNotContainSubstring, "not at this level")
			Enable(nil, logrus.InfoLevel)
		})
	})
}
