package laf

import (
	"github.com/darcula-go/darcula/border"
	"github.com/darcula-go/darcula/log"
	"github.com/darcula-go/darcula/table"
	"github.com/darcula-go/darcula/value"
)

// Patch is one unconditional edit applied after the sources are merged.
type Patch struct {
	Key string

	// Remove deletes Key instead of writing it.
	Remove bool

	// Make builds the value written to Key.
	Make func(icons IconLoader) (value.Value, error)
}

func remove(k string) Patch {
	return Patch{Key: k, Remove: true}
}

func put(k string, build func() value.Value) Patch {
	return Patch{Key: k, Make: func(IconLoader) (value.Value, error) {
		return build(), nil
	}}
}

func icon(k, path string) Patch {
	return Patch{Key: k, Make: func(icons IconLoader) (value.Value, error) {
		handle, err := icons.Load(path)
		if err != nil {
			return value.Value{}, err
		}
		return value.OfIcon(handle), nil
	}}
}

func emptyBorder() value.Value {
	return value.OfBorder(border.NewEmpty(1, 1, 1, 1))
}

// Patches is applied in order, though no two patches touch the same key.
var Patches = []Patch{
	remove("Spinner.arrowButtonBorder"),
	put("Spinner.arrowButtonSize", func() value.Value {
		return value.OfDimension(value.Dimension{Width: 16, Height: 5})
	}),
	icon("Tree.collapsedIcon", IconTreeCollapsed),
	icon("Tree.expandedIcon", IconTreeExpanded),
	icon("Tree.closedIcon", IconTreeClosed),
	icon("Tree.openIcon", IconTreeClosed),
	icon("Tree.leafIcon", IconTreeLeaf),
	icon("Menu.arrowIcon", IconMenuArrow),
	put("CheckBoxMenuItem.checkIcon", func() value.Value {
		return value.OfIcon(Synthesized(GlyphEmpty, 16))
	}),
	put("RadioButtonMenuItem.checkIcon", func() value.Value {
		return value.OfIcon(Synthesized(GlyphEmpty, 16))
	}),
	icon("InternalFrame.icon", IconInternalFrame),
	icon("OptionPane.informationIcon", IconOptionInfo),
	icon("OptionPane.questionIcon", IconOptionQuestion),
	icon("OptionPane.warningIcon", IconOptionWarning),
	icon("OptionPane.errorIcon", IconOptionError),
	put("TitledBorder.border", func() value.Value {
		return value.OfBorder(border.NewLine(value.RGB(0x6b, 0x6b, 0x6b), 1))
	}),
	put("Table.focusCellHighlightBorder", emptyBorder),
	put("Table.cellNoFocusBorder", emptyBorder),
	put("List.focusCellHighlightBorder", emptyBorder),
	put("List.cellNoFocusBorder", emptyBorder),
	put("Tree.selectionBorderColor", value.Null),
}

// ApplyPatches applies every patch to t. An icon that cannot be loaded
// leaves its key unchanged.
func ApplyPatches(t *table.Table, icons IconLoader) {
	for _, p := range Patches {
		if p.Remove {
			t.Delete(p.Key)
			continue
		}

		v, err := p.Make(icons)
		if err != nil {
			log.Warnf("patch %s skipped: %s", p.Key, err)
			continue
		}

		t.Put(p.Key, v)
	}
}
