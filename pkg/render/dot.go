package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/netsketch/netsketch/pkg/layout"
	"github.com/netsketch/netsketch/pkg/network"
)

// ToDOT converts a scene to Graphviz DOT with pinned node positions.
// The layout engine stays authoritative: positions are emitted as neato
// pin attributes, so Graphviz only draws, it does not re-lay-out. The
// resulting string renders with [RenderDOTSVG] or [RenderPNG].
func ToDOT(scene layout.Scene, style network.Style, vp layout.Viewport) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	fmt.Fprintf(&buf, "  node [shape=circle, fixedsize=true, width=%.3f, style=filled, fillcolor=%q, color=%q, label=\"\"];\n",
		style.NodeSize/72, style.NodeColor, style.NodeBorderColor)
	fmt.Fprintf(&buf, "  edge [color=%q];\n", style.EdgeColor)
	buf.WriteString("\n")

	for _, n := range scene.Nodes {
		// Graphviz points run y-up; flip against the viewport height.
		attrs := fmt.Sprintf("pos=\"%.2f,%.2f!\"", n.X, vp.Height-n.Y)
		if n.Bias {
			attrs += fmt.Sprintf(", fillcolor=%q, label=\"1\"", biasFill)
		}
		fmt.Fprintf(&buf, "  %q [%s];\n", n.ID, attrs)
	}

	buf.WriteString("\n")
	for _, l := range scene.Links {
		fmt.Fprintf(&buf, "  %q -- %q;\n", l.From.ID, l.To.ID)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders a DOT string to SVG using Graphviz.
func RenderDOTSVG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.SVG)
}

// RenderPNG renders a DOT string to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return renderDOT(dot, graphviz.PNG)
}

func renderDOT(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
