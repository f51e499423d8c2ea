package laf

import (
	"strings"
	"testing"

	"github.com/darcula-go/darcula/border"
	"github.com/darcula-go/darcula/property"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
	. "github.com/smartystreets/goconvey/convey"
)

func sourceMap(text string) *property.SourceMap {
	pairs, err := property.Parse(strings.NewReader(text), "test.properties")
	if err != nil {
		panic(err)
	}

	m := property.NewSourceMap()
	for _, p := range pairs {
		m.Set("test.properties", p.Key, p.Value)
	}
	return m
}

func color(r, g, b uint8) value.Value {
	return value.OfColor(value.RGB(r, g, b))
}

func TestExpand(t *testing.T) {
	Convey("Given sources with shorthand keys", t, func() {
		c := value.NewCoercer(border.Builtin())
		merged := sourceMap(`
theme.color=ff0000
theme.margin=1,2,3,4
theme.opaque=false
theme.broken.margin=1,2
Panel.background=222222
`)

		sh := Expand(merged, "theme.", c)

		Convey("Prefixed keys are keyed by their suffix", func() {
			So(sh, ShouldHaveLength, 3)
			So(sh["color"].Equal(color(0xff, 0, 0)), ShouldBeTrue)
			So(sh["opaque"].Equal(value.OfBool(false)), ShouldBeTrue)
		})

		Convey("The suffix selects the coercion rule", func() {
			insets, ok := sh["margin"].Insets()
			So(ok, ShouldBeTrue)
			So(insets, ShouldResemble, value.Insets{Top: 1, Left: 2, Bottom: 3, Right: 4})
		})

		Convey("Entries that fail to coerce are skipped", func() {
			_, ok := sh["broken.margin"]
			So(ok, ShouldBeFalse)
		})

		Convey("Non-prefixed keys are not shorthands", func() {
			_, ok := sh["Panel.background"]
			So(ok, ShouldBeFalse)
		})
	})
}

func TestMerge(t *testing.T) {
	Convey("Given a base table", t, func() {
		c := value.NewCoercer(border.Builtin())
		base := table.New()
		base.Put("Widget1.color", color(0, 0, 0))
		base.Put("Widget2.color", color(0, 0, 0))
		base.Put("Widget3.colorOther", color(0, 0, 0))
		base.Put("X.foo", color(0xaa, 0xaa, 0xaa))
		base.Put("color", color(0, 0, 0))
		base.Put("Button.margin", value.OfInsets(value.Insets{Top: 5, Left: 5, Bottom: 5, Right: 5}))

		merge := func(text string) {
			merged := sourceMap(text)
			Merge(base, Expand(merged, "theme.", c), merged, "theme.", c)
		}

		Convey("Shorthands apply to every key with a matching local part", func() {
			merge("theme.color=red\n")

			red := color(0xff, 0, 0)
			w1, _ := base.Get("Widget1.color")
			w2, _ := base.Get("Widget2.color")
			So(w1.Equal(red), ShouldBeTrue)
			So(w2.Equal(red), ShouldBeTrue)

			Convey("A longer local part does not match", func() {
				w3, _ := base.Get("Widget3.colorOther")
				So(w3.Equal(color(0, 0, 0)), ShouldBeTrue)
			})

			Convey("Keys without a dot are skipped", func() {
				plain, _ := base.Get("color")
				So(plain.Equal(color(0, 0, 0)), ShouldBeTrue)
			})
		})

		Convey("Direct keys beat shorthand", func() {
			merge("X.foo=bbbbbb\ntheme.foo=cccccc\n")

			got, _ := base.Get("X.foo")
			So(got.Equal(color(0xbb, 0xbb, 0xbb)), ShouldBeTrue)
		})

		Convey("Direct keys beat shorthand in either source order", func() {
			merge("theme.foo=cccccc\nX.foo=bbbbbb\n")

			got, _ := base.Get("X.foo")
			So(got.Equal(color(0xbb, 0xbb, 0xbb)), ShouldBeTrue)
		})

		Convey("Direct keys are added when absent from base", func() {
			merge("Tree.rowHeight=20\n")

			n, err := base.Int("Tree.rowHeight")
			So(err, ShouldBeNil)
			So(n, ShouldEqual, 20)
		})

		Convey("Shorthand keys are never written as direct keys", func() {
			merge("theme.color=red\n")
			So(base.Has("theme.color"), ShouldBeFalse)
		})

		Convey("Malformed insets leave the key unchanged and the pass continues", func() {
			merge("Button.margin=1,2,3\nTree.rowHeight=20\n")

			insets, err := base.Insets("Button.margin")
			So(err, ShouldBeNil)
			So(insets, ShouldResemble, value.Insets{Top: 5, Left: 5, Bottom: 5, Right: 5})
			So(base.Has("Tree.rowHeight"), ShouldBeTrue)
		})

		Convey("Unknown border types leave the key unchanged", func() {
			base.Put("Panel.border", value.OfBorder(border.NewEmpty(0, 0, 0, 0)))
			merge("Panel.border=border.Missing\n")

			b, err := base.Border("Panel.border")
			So(err, ShouldBeNil)
			So(b.Name(), ShouldEqual, border.EmptyName)
		})

		Convey("Null is stored, not deleted", func() {
			merge("X.foo=null\n")

			null, err := base.IsNull("X.foo")
			So(err, ShouldBeNil)
			So(null, ShouldBeTrue)
		})
	})
}

func TestInsetsRoundTrip(t *testing.T) {
	Convey("Coercing then formatting insets keeps the four integers", t, func() {
		c := value.NewCoercer(nil)
		for raw, want := range map[string]string{
			"0,0,0,0":          "0,0,0,0",
			"2,14,2,14":        "2,14,2,14",
			" 1 , 2 , 3 , 4 ":  "1,2,3,4",
			"-1,0,10,100":      "-1,0,10,100",
			"2147483647,0,0,1": "2147483647,0,0,1",
		} {
			v, err := c.Coerce("Button.margin", raw)
			So(err, ShouldBeNil)
			So(value.Format(v), ShouldEqual, want)
		}
	})
}
