package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/netsketch/netsketch/pkg/config"
	"github.com/netsketch/netsketch/pkg/errors"
	"github.com/netsketch/netsketch/pkg/network"
	"github.com/netsketch/netsketch/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output     string  // output file path (or base path for multiple formats)
	layers     string  // comma-separated neuron counts, e.g. "4,6,6,2"
	width      float64 // viewport width in pixels
	height     float64 // viewport height in pixels
	direction  string  // layout direction: "horizontal" or "vertical"
	arrowheads string  // link terminators: "none", "empty", or "solid"
	edgeColor  string  // link stroke color
	nodeColor  string  // node fill color
	nodeBorder string  // node stroke color
	nodeSize   float64 // node diameter
	layerGap   float64 // distance between layer centers
	seed       int64   // weight seed for link opacity
	bias       bool    // show bias units
	noLabels   bool    // hide layer labels
	straight   bool    // straight links instead of bezier curves
	noCache    bool    // disable the artifact cache
	configPath string  // config file override
}

// newRenderCmd creates the render command for one-shot diagram generation.
//
// Default settings come from the built-in style, overlaid with the config
// file and then with any explicitly set flags.
func newRenderCmd() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		layers: network.Default().String(),
		width:  pipeline.DefaultWidth,
		height: pipeline.DefaultHeight,
	}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a diagram to SVG, DOT, or PNG",
		Example: `  netsketch render --layers 4,6,6,2 -o diagram.svg
  netsketch render --layers 3,8,8,1 --bias --direction vertical -f svg,png`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			formats := parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(formats); err != nil {
				return err
			}
			return runRender(cmd.Context(), cmd, &opts, formats)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.layers, "layers", "l", opts.layers, "comma-separated neuron counts per layer")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), dot, png (comma-separated)")
	cmd.Flags().Float64Var(&opts.width, "width", opts.width, "viewport width")
	cmd.Flags().Float64Var(&opts.height, "height", opts.height, "viewport height")
	cmd.Flags().StringVar(&opts.direction, "direction", "", "layout direction: horizontal (default), vertical")
	cmd.Flags().StringVar(&opts.arrowheads, "arrowheads", "", "link terminators: none (default), empty, solid")
	cmd.Flags().StringVar(&opts.edgeColor, "edge-color", "", "link stroke color (hex)")
	cmd.Flags().StringVar(&opts.nodeColor, "node-color", "", "node fill color (hex)")
	cmd.Flags().StringVar(&opts.nodeBorder, "node-border-color", "", "node stroke color (hex)")
	cmd.Flags().Float64Var(&opts.nodeSize, "node-size", 0, "node diameter (5-50)")
	cmd.Flags().Float64Var(&opts.layerGap, "layer-gap", 0, "distance between layer centers (50-400)")
	cmd.Flags().Int64Var(&opts.seed, "seed", 0, "weight seed for link opacity (0 is a valid seed)")
	cmd.Flags().BoolVar(&opts.bias, "bias", false, "show bias units")
	cmd.Flags().BoolVar(&opts.noLabels, "no-labels", false, "hide layer labels")
	cmd.Flags().BoolVar(&opts.straight, "straight", false, "straight links instead of curves")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "config file path")

	return cmd
}

// parseFormats parses a comma-separated format string into a slice.
// If empty, defaults to ["svg"].
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.FormatSVG}
	}
	return strings.Split(s, ",")
}

// buildStyle composes the final style: built-in defaults, config overlay,
// then explicitly set flags.
func buildStyle(cmd *cobra.Command, cfg config.Config, opts *renderOpts) (network.Style, error) {
	style := cfg.ApplyStyle(network.DefaultStyle())

	for _, color := range []string{opts.edgeColor, opts.nodeColor, opts.nodeBorder} {
		if color != "" {
			if err := errors.ValidateHexColor(color); err != nil {
				return style, err
			}
		}
	}

	if opts.direction != "" {
		style.Direction = network.Direction(opts.direction)
		if !network.ValidDirections[style.Direction] {
			return style, errors.New(errors.ErrCodeInvalidDirection,
				"invalid direction: %q (must be 'horizontal' or 'vertical')", opts.direction)
		}
	}
	if opts.arrowheads != "" {
		style.Arrowheads = network.Arrowhead(opts.arrowheads)
		if !network.ValidArrowheads[style.Arrowheads] {
			return style, errors.New(errors.ErrCodeInvalidArrowheads,
				"invalid arrowheads: %q (must be 'none', 'empty', or 'solid')", opts.arrowheads)
		}
	}
	if opts.edgeColor != "" {
		style.EdgeColor = opts.edgeColor
	}
	if opts.nodeColor != "" {
		style.NodeColor = opts.nodeColor
	}
	if opts.nodeBorder != "" {
		style.NodeBorderColor = opts.nodeBorder
	}
	if opts.nodeSize != 0 {
		style.NodeSize = opts.nodeSize
	}
	if opts.layerGap != 0 {
		style.LayerGap = opts.layerGap
	}
	if cmd.Flags().Changed("seed") {
		style.Seed = opts.seed
	}
	if cmd.Flags().Changed("bias") {
		style.ShowBias = opts.bias
	}
	if opts.noLabels {
		style.ShowLabels = false
	}
	if opts.straight {
		style.Bezier = false
	}

	return style.Normalize(), nil
}

// runRender builds the network and style from flags, runs the pipeline,
// and writes each artifact to disk.
func runRender(ctx context.Context, cmd *cobra.Command, opts *renderOpts, formats []string) error {
	logger := loggerFromContext(ctx)

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}

	counts, err := errors.ParseLayerCounts(opts.layers)
	if err != nil {
		return err
	}
	net := network.FromCounts(counts)

	style, err := buildStyle(cmd, cfg, opts)
	if err != nil {
		return err
	}

	runner := newRunner(ctx, cfg, opts.noCache)
	defer runner.Close()

	prog := newProgress(logger)
	result, err := runner.Execute(ctx, pipeline.Options{
		Network: net,
		Style:   style,
		Width:   opts.width,
		Height:  opts.height,
		Formats: formats,
		Logger:  logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))

	printStats(result.Stats.NodeCount, result.Stats.LinkCount, result.CacheInfo.RenderHit)

	base := basePath(opts.output)
	for _, format := range formats {
		path := base + "." + format
		if opts.output != "" && len(formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}
	printSuccess("Done")
	return nil
}

// basePath derives the base output path for multi-format output.
// If output is empty, "network" is used. A known format extension on the
// output path is stripped so "diagram.svg" becomes "diagram".
func basePath(output string) string {
	if output == "" {
		return "network"
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
