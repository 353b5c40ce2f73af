package cli

import (
	"context"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/netsketch/netsketch/pkg/buildinfo"
	"github.com/netsketch/netsketch/pkg/cache"
	"github.com/netsketch/netsketch/pkg/config"
	"github.com/netsketch/netsketch/pkg/pipeline"
)

// appName is the application name used for directories and display.
const appName = "netsketch"

// Execute runs the netsketch CLI and returns an error if any command fails.
// This is the main entry point for the CLI application.
//
// Logging:
//   - Default: info level (logs to stderr)
//   - With --verbose (-v): debug level
//
// The logger is attached to the context and accessible to all commands via
// loggerFromContext.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "netsketch",
		Short:        "netsketch draws layered network diagrams",
		Long:         `netsketch is a tool for sketching layered neural-network style diagrams: edit layers and styling interactively or render straight from the command line.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newServeCmd())
	root.AddCommand(newEditCmd())
	root.AddCommand(newCacheCmd())
	root.AddCommand(newCompletionCmd())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	return root.ExecuteContext(ctx)
}

// =============================================================================
// Cache Factory
// =============================================================================

// newCacheBackend builds the artifact cache selected by the config, unless
// noCache forces it off. A backend that fails to initialize degrades to the
// null cache rather than failing the command.
func newCacheBackend(ctx context.Context, cfg config.Config, noCache bool) cache.Cache {
	if noCache {
		return cache.NewNullCache()
	}

	switch cfg.Cache.Backend {
	case "none":
		return cache.NewNullCache()
	case "redis":
		c, err := cache.NewRedisCache(ctx, cfg.Cache.RedisAddr)
		if err != nil {
			return cache.NewNullCache()
		}
		return c
	default:
		dir := cfg.Cache.Dir
		if dir == "" {
			d, err := cacheDir()
			if err != nil {
				return cache.NewNullCache()
			}
			dir = d
		}
		c, err := cache.NewFileCache(dir)
		if err != nil {
			return cache.NewNullCache()
		}
		return c
	}
}

// newRunner creates a pipeline runner wired to the configured cache.
func newRunner(ctx context.Context, cfg config.Config, noCache bool) *pipeline.Runner {
	return pipeline.NewRunner(newCacheBackend(ctx, cfg, noCache), nil, loggerFromContext(ctx))
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the cache directory using XDG standard (~/.cache/netsketch/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}
