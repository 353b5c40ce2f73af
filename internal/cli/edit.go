package cli

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/netsketch/netsketch/pkg/config"
	"github.com/netsketch/netsketch/pkg/errors"
	"github.com/netsketch/netsketch/pkg/network"
	"github.com/netsketch/netsketch/pkg/pipeline"
)

// newEditCmd creates the edit command: an interactive terminal editor that
// writes the diagram on save.
func newEditCmd() *cobra.Command {
	var (
		output     string
		layers     string
		noCache    bool
		configPath string
	)

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit a diagram interactively in the terminal",
		Long: `Edit opens a terminal editor for the layer structure and style of a
diagram. Saving renders the diagram to the output file; quitting without
saving discards everything.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			logger := loggerFromContext(ctx)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			net := network.Default()
			if layers != "" {
				counts, err := errors.ParseLayerCounts(layers)
				if err != nil {
					return err
				}
				net = network.FromCounts(counts)
			}
			style := cfg.ApplyStyle(network.DefaultStyle())

			model := NewEditorModel(net, style, output)
			final, err := tea.NewProgram(model, tea.WithContext(ctx)).Run()
			if err != nil {
				return fmt.Errorf("run editor: %w", err)
			}

			m, ok := final.(EditorModel)
			if !ok || !m.Saved {
				printInfo("Discarded")
				return nil
			}

			runner := newRunner(ctx, cfg, noCache)
			defer runner.Close()

			result, err := runner.Execute(ctx, pipeline.Options{
				Network: m.Net,
				Style:   m.Style.Normalize(),
				Formats: []string{pipeline.FormatSVG},
				Logger:  logger,
			})
			if err != nil {
				printError("Render failed: %s", errors.UserMessage(err))
				return err
			}

			if err := os.WriteFile(output, result.Artifacts[pipeline.FormatSVG], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			printSuccess("Saved %s", m.Net.String())
			printFile(output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "network.svg", "output file for the saved diagram")
	cmd.Flags().StringVarP(&layers, "layers", "l", "", "starting neuron counts (default 4,6,6,2)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().StringVar(&configPath, "config", "", "config file path")

	return cmd
}
