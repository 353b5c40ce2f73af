package network

// Direction selects the main axis along which layers are spread.
type Direction string

// Supported layout directions.
const (
	DirectionHorizontal Direction = "horizontal"
	DirectionVertical   Direction = "vertical"
)

// Arrowhead selects the link terminator glyph.
type Arrowhead string

// Supported arrowhead styles.
const (
	ArrowheadNone  Arrowhead = "none"
	ArrowheadEmpty Arrowhead = "empty"
	ArrowheadSolid Arrowhead = "solid"
)

// ValidDirections is the set of accepted direction values.
var ValidDirections = map[Direction]bool{
	DirectionHorizontal: true,
	DirectionVertical:   true,
}

// ValidArrowheads is the set of accepted arrowhead values.
var ValidArrowheads = map[Arrowhead]bool{
	ArrowheadNone:  true,
	ArrowheadEmpty: true,
	ArrowheadSolid: true,
}

// Style bounds enforced by Normalize.
const (
	MinNodeSize = 5.0
	MaxNodeSize = 50.0

	MinLayerGap = 50.0
	MaxLayerGap = 400.0

	// DefaultSeed is the initial weight seed. Reroll replaces it with a
	// fresh value; any two distinct seeds produce distinct opacity sets
	// with overwhelming probability. Zero is a valid seed, so Normalize
	// leaves the field alone.
	DefaultSeed = int64(42)
)

// Style is the flat record of rendering and layout options for a diagram.
// Like Network, it is replaced wholesale on every edit.
type Style struct {
	EdgeColor       string    `json:"edge_color"`        // link stroke color
	Bezier          bool      `json:"bezier"`            // curved vs straight links
	NodeSize        float64   `json:"node_size"`         // node diameter, also derives in-layer spacing
	NodeColor       string    `json:"node_color"`        // node fill
	NodeBorderColor string    `json:"node_border_color"` // node stroke
	LayerGap        float64   `json:"layer_gap"`         // distance between layer centers on the main axis
	Direction       Direction `json:"direction"`         // main-axis orientation
	ShowBias        bool      `json:"show_bias"`         // append a bias unit to all but the last layer
	ShowLabels      bool      `json:"show_labels"`       // render per-layer text labels
	Arrowheads      Arrowhead `json:"arrowheads"`        // link terminator style
	Seed            int64     `json:"seed"`              // seed for deterministic link opacity
}

// DefaultStyle returns the style applied before any editing.
func DefaultStyle() Style {
	return Style{
		EdgeColor:       "#999999",
		Bezier:          true,
		NodeSize:        20,
		NodeColor:       "#ffffff",
		NodeBorderColor: "#333333",
		LayerGap:        160,
		Direction:       DirectionHorizontal,
		ShowBias:        false,
		ShowLabels:      true,
		Arrowheads:      ArrowheadNone,
		Seed:            DefaultSeed,
	}
}

// Normalize clamps numeric ranges and falls back to defaults for empty or
// unknown enum and color values. The layout engine is total over the
// normalized domain, so hosts normalize before handing a style down.
func (s Style) Normalize() Style {
	def := DefaultStyle()

	s.NodeSize = clampFloat(s.NodeSize, MinNodeSize, MaxNodeSize)
	s.LayerGap = clampFloat(s.LayerGap, MinLayerGap, MaxLayerGap)

	if !ValidDirections[s.Direction] {
		s.Direction = def.Direction
	}
	if !ValidArrowheads[s.Arrowheads] {
		s.Arrowheads = def.Arrowheads
	}
	if s.EdgeColor == "" {
		s.EdgeColor = def.EdgeColor
	}
	if s.NodeColor == "" {
		s.NodeColor = def.NodeColor
	}
	if s.NodeBorderColor == "" {
		s.NodeBorderColor = def.NodeBorderColor
	}
	return s
}

func clampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
