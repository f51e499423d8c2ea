package table

import (
	"errors"
	"testing"

	"github.com/darcula-go/darcula/value"
	. "github.com/smartystreets/goconvey/convey"
)

func TestTable(t *testing.T) {
	Convey("Given a table with a few entries", t, func() {
		tbl := New()
		tbl.Put("Panel.background", value.OfColor(value.RGB(0x3c, 0x3f, 0x41)))
		tbl.Put("Button.margin", value.OfInsets(value.Insets{Top: 2, Left: 14, Bottom: 2, Right: 14}))
		tbl.Put("Button.font", value.OfFont(value.Font{Family: "Dialog", Size: 12}))
		tbl.Put("ScrollBar.width", value.OfInt(12))
		tbl.Put("Tree.selectionBorderColor", value.Null())

		Convey("Keys keep insertion order, overwrites keep position", func() {
			tbl.Put("Panel.background", value.OfColor(value.RGB(0, 0, 0)))
			So(tbl.Keys(), ShouldResemble, []string{
				"Panel.background", "Button.margin", "Button.font", "ScrollBar.width", "Tree.selectionBorderColor",
			})
		})

		Convey("Typed accessors return the stored payload", func() {
			c, err := tbl.Color("Panel.background")
			So(err, ShouldBeNil)
			So(c.Hex(), ShouldEqual, "#3c3f41")

			i, err := tbl.Insets("Button.margin")
			So(err, ShouldBeNil)
			So(i.Left, ShouldEqual, 14)

			f, err := tbl.Font("Button.font")
			So(err, ShouldBeNil)
			So(f.Family, ShouldEqual, "Dialog")

			n, err := tbl.Int("ScrollBar.width")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 12)
		})

		Convey("Accessors reject other kinds with ErrTypeMismatch", func() {
			_, err := tbl.Font("Panel.background")
			So(errors.Is(err, ErrTypeMismatch), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "holds color")

			_, err = tbl.Color("Tree.selectionBorderColor")
			So(errors.Is(err, ErrTypeMismatch), ShouldBeTrue)
		})

		Convey("Missing keys fail with ErrKeyNotFound and a hint", func() {
			_, err := tbl.Color("Panel.backgrund")
			So(errors.Is(err, ErrKeyNotFound), ShouldBeTrue)
			So(err.Error(), ShouldContainSubstring, "did you mean Panel.background")

			_, err = New().Bool("x")
			So(errors.Is(err, ErrKeyNotFound), ShouldBeTrue)
		})

		Convey("IsNull distinguishes null from absent", func() {
			null, err := tbl.IsNull("Tree.selectionBorderColor")
			So(err, ShouldBeNil)
			So(null, ShouldBeTrue)

			_, err = tbl.IsNull("Tree.nothing")
			So(errors.Is(err, ErrKeyNotFound), ShouldBeTrue)
		})

		Convey("Clone is independent and Equal ignores order", func() {
			c := tbl.Clone()
			So(c.Equal(tbl), ShouldBeTrue)

			c.Put("Extra.key", value.OfBool(true))
			So(tbl.Has("Extra.key"), ShouldBeFalse)
			So(c.Equal(tbl), ShouldBeFalse)

			reordered := FromMap(
				[]string{"Tree.selectionBorderColor", "ScrollBar.width", "Button.font", "Button.margin", "Panel.background"},
				map[string]value.Value{
					"Panel.background":          value.OfColor(value.RGB(0x3c, 0x3f, 0x41)),
					"Button.margin":             value.OfInsets(value.Insets{Top: 2, Left: 14, Bottom: 2, Right: 14}),
					"Button.font":               value.OfFont(value.Font{Family: "Dialog", Size: 12}),
					"ScrollBar.width":           value.OfInt(12),
					"Tree.selectionBorderColor": value.Null(),
				},
			)
			So(reordered.Equal(tbl), ShouldBeTrue)
		})

		Convey("Delete removes entries", func() {
			So(tbl.Delete("ScrollBar.width"), ShouldBeTrue)
			So(tbl.Delete("ScrollBar.width"), ShouldBeFalse)
			So(tbl.Len(), ShouldEqual, 4)
		})
	})
}
