package layout

import "github.com/netsketch/netsketch/pkg/network"

// vec is a 2D unit vector used to express axis orientation.
type vec struct{ x, y float64 }

// basis maps abstract (main, cross) coordinates onto concrete (x, y) ones.
// Geometry code works purely in main/cross terms so the direction setting
// stays out of the positioning math.
type basis struct{ main, cross vec }

var bases = map[network.Direction]basis{
	network.DirectionHorizontal: {main: vec{1, 0}, cross: vec{0, 1}},
	network.DirectionVertical:   {main: vec{0, 1}, cross: vec{1, 0}},
}

// basisFor returns the basis for a direction, falling back to horizontal
// for unknown values so Build stays total.
func basisFor(d network.Direction) basis {
	if b, ok := bases[d]; ok {
		return b
	}
	return bases[network.DirectionHorizontal]
}

// point converts abstract coordinates to concrete ones.
func (b basis) point(main, cross float64) (x, y float64) {
	return main*b.main.x + cross*b.cross.x, main*b.main.y + cross*b.cross.y
}

// centers projects the viewport midpoint onto the main and cross axes.
func (b basis) centers(vp Viewport) (main, cross float64) {
	cx, cy := vp.Center()
	return cx*b.main.x + cy*b.main.y, cx*b.cross.x + cy*b.cross.y
}
