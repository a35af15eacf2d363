package nodeeditor

import "github.com/lucasb-eyer/go-colorful"

// Editor palette.
var (
	colorGrid          = colorful.Color{R: 0.32, G: 0.32, B: 0.34}
	colorNode          = colorful.Color{R: 0.30, G: 0.30, B: 0.35}
	colorDragBar       = colorful.Color{R: 0.40, G: 0.40, B: 0.40}
	colorDragBarLower  = colorful.Color{R: 0.37, G: 0.37, B: 0.37}
	colorOutlineActive = colorful.Color{R: 0.40, G: 0.20, B: 1.00}
	colorOutlineHover  = colorful.Color{R: 0.40, G: 0.10, B: 0.60}
	colorOutlineIdle   = colorful.Color{R: 0.40, G: 0.40, B: 0.40}
	colorResize        = colorful.Color{R: 0.50, G: 0.50, B: 0.50}
	colorResizeHover   = colorful.Color{R: 0.70, G: 0.70, B: 0.70}
	colorText          = colorful.Color{R: 1, G: 1, B: 1}
	colorCollapseIcon  = colorful.Color{R: 0.65, G: 0.65, B: 0.68}
	colorSelectFill    = colorful.Color{R: 0.10, G: 0.55, B: 0.55}
	colorSelectOutline = colorful.Color{R: 0.10, G: 1.00, B: 1.00}
	colorWarning       = colorful.Color{R: 0.90, G: 0.25, B: 0.20}
)

// portOutline darkens a value type colour for the port ring.
func portOutline(c colorful.Color) colorful.Color {
	return c.BlendRgb(colorful.Color{}, 0.5)
}
