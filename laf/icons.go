package laf

import (
	"errors"
	"fmt"
	"strings"

	"github.com/darcula-go/darcula/value"
)

// ErrIconNotFound is returned by an IconLoader for an unknown resource.
var ErrIconNotFound = errors.New("icon not found")

// IconLoader resolves icon resources by path.
type IconLoader interface {
	Load(path string) (value.IconHandle, error)
}

// Icon is an icon resource known by path and size only. Decoding pixels is
// left to the renderer.
type Icon struct {
	path          string
	width, height int
}

func NewIcon(path string, width, height int) *Icon {
	return &Icon{path: path, width: width, height: height}
}

func (i *Icon) Path() string { return i.path }
func (i *Icon) Width() int   { return i.width }
func (i *Icon) Height() int  { return i.height }

// Glyph names of synthesized icons.
const (
	GlyphEmpty    = "empty"
	GlyphClose    = "close"
	GlyphMinimize = "minimize"
	GlyphRestore  = "restore"
	GlyphMaximize = "maximize"
)

// Synthesized returns a square icon drawn by the renderer rather than
// loaded from a resource.
func Synthesized(glyph string, size int) *Icon {
	return NewIcon(fmt.Sprintf("glyph:%s/%d", glyph, size), size, size)
}

// Icon resources shipped with the theme.
const (
	IconTreeCollapsed  = "icons/treeNodeCollapsed.png"
	IconTreeExpanded   = "icons/treeNodeExpanded.png"
	IconTreeClosed     = "icons/treeNodeClosed.png"
	IconTreeLeaf       = "icons/treeNodeLeaf.png"
	IconMenuArrow      = "icons/menuItemArrowIcon.png"
	IconInternalFrame  = "icons/internalFrame.png"
	IconOptionInfo     = "icons/option_pane_info.png"
	IconOptionQuestion = "icons/option_pane_question.png"
	IconOptionWarning  = "icons/option_pane_warning.png"
	IconOptionError    = "icons/option_pane_error.png"
)

// Catalog is an IconLoader over a fixed set of resources and their sizes.
type Catalog map[string]value.Dimension

// DefaultCatalog lists every icon resource the patches refer to.
func DefaultCatalog() Catalog {
	return Catalog{
		IconTreeCollapsed:  {Width: 9, Height: 9},
		IconTreeExpanded:   {Width: 9, Height: 9},
		IconTreeClosed:     {Width: 16, Height: 16},
		IconTreeLeaf:       {Width: 16, Height: 16},
		IconMenuArrow:      {Width: 4, Height: 7},
		IconInternalFrame:  {Width: 16, Height: 16},
		IconOptionInfo:     {Width: 32, Height: 32},
		IconOptionQuestion: {Width: 32, Height: 32},
		IconOptionWarning:  {Width: 32, Height: 32},
		IconOptionError:    {Width: 32, Height: 32},
	}
}

func (c Catalog) Load(path string) (value.IconHandle, error) {
	size, ok := c[strings.TrimPrefix(path, "/")]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrIconNotFound, path)
	}

	return NewIcon(path, size.Width, size.Height), nil
}
