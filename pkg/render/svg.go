// Package render turns a computed scene into output artifacts.
//
// The native renderer emits SVG directly: circles for nodes, straight or
// bezier paths for links, optional arrowhead markers and per-layer labels.
// A second path emits Graphviz DOT with pinned positions and rasterizes it
// via go-graphviz, for hosts that want PNG output.
//
// Rendering is pure string emission over an already-positioned scene; all
// geometry lives in pkg/layout.
package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/netsketch/netsketch/pkg/layout"
	"github.com/netsketch/netsketch/pkg/network"
)

// Opacity of a link is opacityBase + weight*opacityScale, keeping even
// zero-weight links faintly visible.
const (
	opacityBase  = 0.3
	opacityScale = 0.7
)

// biasFill is the muted fill that distinguishes bias units.
const biasFill = "#e6e6e6"

// transitionCSS eases fill, stroke and opacity changes between renders.
// Positions are replaced outright on recompute and get no easing.
const transitionCSS = `
    .node, .link { transition: fill 0.3s ease, stroke 0.3s ease, opacity 0.3s ease; }`

// SVGOption configures the SVG renderer.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	transitions bool
}

// WithoutTransitions disables the CSS transition block, producing fully
// static markup. Useful for golden-file comparisons and rasterization.
func WithoutTransitions() SVGOption {
	return func(r *svgRenderer) { r.transitions = false }
}

// RenderSVG renders a scene to a standalone SVG document.
// The scene is assumed to come from layout.Build with the same style and
// viewport; an empty scene yields a valid empty document.
func RenderSVG(scene layout.Scene, style network.Style, vp layout.Viewport, opts ...SVGOption) []byte {
	r := svgRenderer{transitions: true}
	for _, opt := range opts {
		opt(&r)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		vp.Width, vp.Height, vp.Width, vp.Height)

	renderDefs(&buf, style)
	if r.transitions {
		fmt.Fprintf(&buf, "  <style>%s\n  </style>\n", transitionCSS)
	}

	renderLinks(&buf, scene, style)
	renderNodes(&buf, scene, style)
	if style.ShowLabels {
		renderLabels(&buf, scene, style)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

// renderDefs writes arrowhead marker definitions when terminators are on.
func renderDefs(buf *bytes.Buffer, style network.Style) {
	if style.Arrowheads == network.ArrowheadNone {
		return
	}
	buf.WriteString("  <defs>\n")
	switch style.Arrowheads {
	case network.ArrowheadSolid:
		fmt.Fprintf(buf, `    <marker id="arrow" viewBox="0 0 10 10" refX="10" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M 0 0 L 10 5 L 0 10 z" fill="%s"/></marker>`+"\n",
			style.EdgeColor)
	case network.ArrowheadEmpty:
		fmt.Fprintf(buf, `    <marker id="arrow" viewBox="0 0 10 10" refX="9" refY="5" markerWidth="7" markerHeight="7" orient="auto-start-reverse"><path d="M 1 1 L 9 5 L 1 9 z" fill="none" stroke="%s"/></marker>`+"\n",
			style.EdgeColor)
	}
	buf.WriteString("  </defs>\n")
}

func renderLinks(buf *bytes.Buffer, scene layout.Scene, style network.Style) {
	if len(scene.Links) == 0 {
		return
	}
	marker := ""
	if style.Arrowheads != network.ArrowheadNone {
		marker = ` marker-end="url(#arrow)"`
	}

	buf.WriteString("  <g>\n")
	for _, l := range scene.Links {
		opacity := opacityBase + l.Weight*opacityScale
		fmt.Fprintf(buf, `    <path id="link-%s" class="link" d="%s" fill="none" stroke="%s" stroke-opacity="%.3f"%s/>`+"\n",
			l.ID, linkPath(l, style), style.EdgeColor, opacity, marker)
	}
	buf.WriteString("  </g>\n")
}

// linkPath builds the path data for one link: a straight segment, or a
// cubic bezier with both control points at the main-axis midpoint so the
// curve leaves and enters along the main axis.
func linkPath(l layout.Link, style network.Style) string {
	if !style.Bezier {
		return fmt.Sprintf("M %.2f %.2f L %.2f %.2f", l.From.X, l.From.Y, l.To.X, l.To.Y)
	}
	if style.Direction == network.DirectionVertical {
		my := (l.From.Y + l.To.Y) / 2
		return fmt.Sprintf("M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f",
			l.From.X, l.From.Y, l.From.X, my, l.To.X, my, l.To.X, l.To.Y)
	}
	mx := (l.From.X + l.To.X) / 2
	return fmt.Sprintf("M %.2f %.2f C %.2f %.2f, %.2f %.2f, %.2f %.2f",
		l.From.X, l.From.Y, mx, l.From.Y, mx, l.To.Y, l.To.X, l.To.Y)
}

func renderNodes(buf *bytes.Buffer, scene layout.Scene, style network.Style) {
	if len(scene.Nodes) == 0 {
		return
	}
	radius := style.NodeSize / 2

	buf.WriteString("  <g>\n")
	for _, n := range scene.Nodes {
		fill := style.NodeColor
		if n.Bias {
			fill = biasFill
		}
		fmt.Fprintf(buf, `    <circle id="node-%s" class="node" cx="%.2f" cy="%.2f" r="%.2f" fill="%s" stroke="%s"/>`+"\n",
			n.ID, n.X, n.Y, radius, fill, style.NodeBorderColor)
		if n.Bias {
			fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" dominant-baseline="central" font-size="%.1f" fill="%s">1</text>`+"\n",
				n.X, n.Y, style.NodeSize*0.6, style.NodeBorderColor)
		}
	}
	buf.WriteString("  </g>\n")
}

// renderLabels writes one label per layer just beyond the layer's extent
// on the cross axis.
func renderLabels(buf *bytes.Buffer, scene layout.Scene, style network.Style) {
	layers := scene.LayerNodes()
	if len(layers) == 0 {
		return
	}
	offset := style.NodeSize + 24

	buf.WriteString("  <g>\n")
	for i, ns := range layers {
		if len(ns) == 0 {
			continue
		}
		neurons := 0
		maxCross := 0.0
		for j, n := range ns {
			if !n.Bias {
				neurons++
			}
			cross := n.Y
			if style.Direction == network.DirectionVertical {
				cross = n.X
			}
			if j == 0 || cross > maxCross {
				maxCross = cross
			}
		}

		label := layerLabel(i, len(layers), neurons)
		if style.Direction == network.DirectionVertical {
			fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="start" dominant-baseline="central" font-size="14">%s</text>`+"\n",
				maxCross+offset, ns[0].Y, label)
		} else {
			fmt.Fprintf(buf, `    <text x="%.2f" y="%.2f" text-anchor="middle" font-size="14">%s</text>`+"\n",
				ns[0].X, maxCross+offset, label)
		}
	}
	buf.WriteString("  </g>\n")
}

// layerLabel names a layer by position and annotates its vector space with
// the raw neuron count in superscript digits, e.g. "Hidden Layer ℝ⁶".
func layerLabel(index, total, neurons int) string {
	name := "Hidden Layer"
	switch {
	case index == 0:
		name = "Input Layer"
	case index == total-1:
		name = "Output Layer"
	}
	return name + " ℝ" + superscript(neurons)
}

var superscripts = [10]rune{'⁰', '¹', '²', '³', '⁴', '⁵', '⁶', '⁷', '⁸', '⁹'}

// superscript renders a non-negative integer with superscript digit glyphs.
func superscript(n int) string {
	s := fmt.Sprintf("%d", n)
	var b strings.Builder
	for _, d := range s {
		b.WriteRune(superscripts[d-'0'])
	}
	return b.String()
}
