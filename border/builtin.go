package border

import "github.com/darcula-go/darcula/value"

// Type names accepted in property sources.
const (
	LineName            = "border.Line"
	EmptyName           = "border.Empty"
	ScrollPaneName      = "border.ScrollPane"
	RootPaneName        = "border.RootPane"
	ToolTipName         = "border.ToolTip"
	ToolBarRolloverName = "border.ToolBarRollover"
	ButtonName          = "border.Button"
	TextFieldName       = "border.TextField"
	ComboBoxName        = "border.ComboBox"
	SpinnerName         = "border.Spinner"
	MenuItemName        = "border.MenuItem"
	PopupMenuName       = "border.PopupMenu"
	TableHeaderName     = "border.TableHeader"
)

// Builtin returns a registry holding every border type shipped with the themes.
func Builtin() *Registry {
	r := NewRegistry()
	r.Register(LineName, func() value.BorderHandle { return NewLine(value.RGB(0x77, 0x77, 0x77), 1) })
	r.Register(EmptyName, func() value.BorderHandle { return NewEmpty(0, 0, 0, 0) })
	r.Register(ScrollPaneName, Uniform(ScrollPaneName, 2))
	r.Register(RootPaneName, Uniform(RootPaneName, 2))
	r.Register(ToolTipName, func() value.BorderHandle { return NewLine(value.RGB(0x77, 0x77, 0x77), 1) })
	r.Register(ToolBarRolloverName, Uniform(ToolBarRolloverName, 3))
	r.Register(ButtonName, Fixed(ButtonName, value.Insets{Top: 8, Left: 16, Bottom: 8, Right: 14}))
	r.Register(TextFieldName, Fixed(TextFieldName, value.Insets{Top: 4, Left: 7, Bottom: 4, Right: 7}))
	r.Register(ComboBoxName, Uniform(ComboBoxName, 3))
	r.Register(SpinnerName, Fixed(SpinnerName, value.Insets{Top: 5, Left: 7, Bottom: 5, Right: 7}))
	r.Register(MenuItemName, Uniform(MenuItemName, 2))
	r.Register(PopupMenuName, Uniform(PopupMenuName, 1))
	r.Register(TableHeaderName, Fixed(TableHeaderName, value.Insets{Top: 0, Left: 4, Bottom: 1, Right: 4}))
	return r
}
