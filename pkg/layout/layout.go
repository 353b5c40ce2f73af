// Package layout computes concrete geometry for a layered network diagram.
//
// Build is a pure function from (network, style, viewport) to a Scene of
// positioned nodes and links. It has no error conditions: hosts normalize
// the style first, and degenerate inputs (empty network, zero viewport)
// produce degenerate but valid scenes. Every call regenerates the scene
// from scratch; nodes and links carry deterministic IDs so renderers can
// key on them across recomputations.
package layout

import (
	"strconv"

	"github.com/netsketch/netsketch/pkg/network"
)

// Viewport carries the drawable dimensions the scene is centered on.
type Viewport struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Center returns the viewport midpoint.
func (v Viewport) Center() (x, y float64) {
	return v.Width / 2, v.Height / 2
}

// Node is one positioned circle in the scene. ID is "<layer>-<index>",
// stable for a given (network, style) pair.
type Node struct {
	ID    string  `json:"id"`
	Layer int     `json:"layer"`
	Index int     `json:"index"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Bias  bool    `json:"bias,omitempty"`
}

// Link connects a node to a non-bias node of the following layer.
// Weight is a display-only pseudo-random scalar in [0, 1) that drives
// stroke opacity; it is not a learned value.
type Link struct {
	ID     string  `json:"id"`
	From   Node    `json:"from"`
	To     Node    `json:"to"`
	Weight float64 `json:"weight"`
}

// Scene is the layout result: a fresh node and link set per Build call.
type Scene struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// LayerNodes returns the scene's nodes grouped by layer, in order.
func (s Scene) LayerNodes() [][]Node {
	var layers [][]Node
	for _, n := range s.Nodes {
		for n.Layer >= len(layers) {
			layers = append(layers, nil)
		}
		layers[n.Layer] = append(layers[n.Layer], n)
	}
	return layers
}

// crossSpacingFactor derives in-layer node spacing from the node diameter.
const crossSpacingFactor = 2.5

// Build computes the scene for a network under a style, centered on the
// viewport.
//
// Per layer, the effective node count is Neurons plus one bias unit when
// ShowBias is set and the layer is not the last; the bias node is always
// last in its layer. Layers advance by LayerGap along the main axis and
// the whole extent is centered on the viewport's main-axis midpoint.
// Within a layer, nodes advance by NodeSize*2.5 along the cross axis,
// centered the same way, so a single-node layer sits exactly at the cross
// center.
//
// Links pair every node of a layer (bias included) with every non-bias
// node of the next layer. Weights come from a running counter seeded with
// style.Seed: each emitted link consumes frac(sin(counter)*10000) and
// advances the counter by one, in ascending (layer, index, target index)
// order. The sequence is bit-for-bit reproducible for a given seed and
// topology.
func Build(net network.Network, style network.Style, vp Viewport) Scene {
	if len(net) == 0 {
		return Scene{}
	}

	b := basisFor(style.Direction)
	mainCenter, crossCenter := b.centers(vp)

	spacing := style.NodeSize * crossSpacingFactor
	extent := float64(len(net)-1) * style.LayerGap
	firstMain := mainCenter - extent/2

	layers := make([][]Node, len(net))
	total := 0
	for i, layer := range net {
		hasBias := style.ShowBias && i < len(net)-1
		count := layer.Neurons
		if hasBias {
			count++
		}

		crossExtent := float64(count-1) * spacing
		firstCross := crossCenter - crossExtent/2
		main := firstMain + float64(i)*style.LayerGap

		layers[i] = make([]Node, count)
		for j := 0; j < count; j++ {
			x, y := b.point(main, firstCross+float64(j)*spacing)
			layers[i][j] = Node{
				ID:    nodeID(i, j),
				Layer: i,
				Index: j,
				X:     x,
				Y:     y,
				Bias:  hasBias && j == layer.Neurons,
			}
		}
		total += count
	}

	scene := Scene{Nodes: make([]Node, 0, total)}
	for _, ns := range layers {
		scene.Nodes = append(scene.Nodes, ns...)
	}
	scene.Links = buildLinks(layers, style.Seed)
	return scene
}

// buildLinks emits one link per (source, non-bias target) pair of adjacent
// layers, consuming the weight stream in iteration order.
func buildLinks(layers [][]Node, seed int64) []Link {
	w := newWeightStream(seed)

	var links []Link
	for i := 0; i+1 < len(layers); i++ {
		for _, src := range layers[i] {
			for _, dst := range layers[i+1] {
				if dst.Bias {
					// Bias units never receive incoming links.
					continue
				}
				links = append(links, Link{
					ID:     src.ID + "->" + dst.ID,
					From:   src,
					To:     dst,
					Weight: w.next(),
				})
			}
		}
	}
	return links
}

// nodeID builds the rendering key format "<layerIndex>-<indexInLayer>".
func nodeID(layer, index int) string {
	return strconv.Itoa(layer) + "-" + strconv.Itoa(index)
}
