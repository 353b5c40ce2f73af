package pipeline

import (
	"fmt"

	"github.com/netsketch/netsketch/pkg/layout"
	"github.com/netsketch/netsketch/pkg/render"
)

// RenderScene renders a scene in a single format.
// Options must have been validated first.
func RenderScene(scene layout.Scene, opts Options, format string) ([]byte, error) {
	vp := opts.Viewport()

	switch format {
	case FormatSVG:
		var svgOpts []render.SVGOption
		if opts.NoTransitions {
			svgOpts = append(svgOpts, render.WithoutTransitions())
		}
		return render.RenderSVG(scene, opts.Style, vp, svgOpts...), nil

	case FormatDOT:
		return []byte(render.ToDOT(scene, opts.Style, vp)), nil

	case FormatPNG:
		dot := render.ToDOT(scene, opts.Style, vp)
		data, err := render.RenderPNG(dot)
		if err != nil {
			return nil, fmt.Errorf("render png: %w", err)
		}
		return data, nil

	default:
		return nil, ValidateFormat(format)
	}
}

// RenderAll renders a scene in every requested format.
func RenderAll(scene layout.Scene, opts Options) (map[string][]byte, error) {
	artifacts := make(map[string][]byte, len(opts.Formats))
	for _, format := range opts.Formats {
		data, err := RenderScene(scene, opts, format)
		if err != nil {
			return nil, err
		}
		artifacts[format] = data
	}
	return artifacts, nil
}
