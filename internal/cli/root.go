// Package cli wires the munsell-mcp command line: the MCP server as the
// root command plus one-shot convert and pick commands.
package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ironsheep/munsell-mcp/internal/config"
	"github.com/ironsheep/munsell-mcp/internal/server"
)

// BuildInfo is set by ldflags in main.
type BuildInfo struct {
	Version   string
	BuildTime string
	GitCommit string
}

// Execute runs the root command and exits with status 1 on error.
func Execute(info BuildInfo) {
	cmd := newRootCmd(info)
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(info BuildInfo) *cobra.Command {
	var logLevel string

	cmd := &cobra.Command{
		Use:   "munsell-mcp",
		Short: "MCP server that names colors in approximate Munsell notation",
		Long: `munsell-mcp turns sRGB colors into an approximate Munsell notation
("5YR 5.3/19") and a plain-English name ("Vivid Medium Yellow-Red").

Without a subcommand it serves the MCP protocol on stdin/stdout; configure
it in your MCP client. Logs go to stderr.

Environment variables:
  MUNSELL_MCP_LOG_LEVEL          debug, info, warn or error (default info)
  MUNSELL_MCP_MAX_REQUEST_BYTES  longest accepted request line
  MUNSELL_MCP_BATCH_WORKERS      workers for munsell_convert_batch
  MUNSELL_MCP_BATCH_LIMIT        most colors per batch call
  MUNSELL_MCP_DOMINANT_COUNT     default palette size
  MUNSELL_MCP_SAMPLE_RADIUS      default pick averaging radius`,
		Version:      info.Version,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(logLevel)
			if err != nil {
				return err
			}
			logger, err := newLogger(cmd.ErrOrStderr(), cfg.LogLevel)
			if err != nil {
				return err
			}

			logger.Debug("starting", "version", info.Version, "built", info.BuildTime, "commit", info.GitCommit)

			srv := server.New(*cfg, logger, server.Info{Name: "munsell-mcp", Version: info.Version})
			if err := srv.Run(cmd.Context()); err != nil {
				logger.Error("server stopped", "error", err)
				return err
			}
			return nil
		},
	}

	cmd.SetVersionTemplate(versionText(info))
	cmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override MUNSELL_MCP_LOG_LEVEL")

	cmd.AddCommand(convertCmd(), pickCmd(&logLevel), versionCmd(info))
	return cmd
}

// loadConfig reads the environment and applies the --log-level override.
func loadConfig(logLevel string) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// newLogger builds the text logger used by every command. stdout belongs
// to the MCP protocol, so callers pass stderr.
func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func versionText(info BuildInfo) string {
	return fmt.Sprintf("munsell-mcp %s\n  Build time: %s\n  Git commit: %s\n", info.Version, info.BuildTime, info.GitCommit)
}

func versionCmd(info BuildInfo) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprint(cmd.OutOrStdout(), versionText(info))
		},
	}
}
