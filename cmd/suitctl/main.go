package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JonMunkholm/suitctl/internal/catalog"
	"github.com/JonMunkholm/suitctl/internal/config"
	"github.com/JonMunkholm/suitctl/internal/core"
	"github.com/JonMunkholm/suitctl/internal/logging"
	"github.com/JonMunkholm/suitctl/internal/session"
)

func main() {
	cmd := newRootCmd()
	if err := cmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), errorLine(err))
		os.Exit(1)
	}
}

// errorLine renders a fatal error for the terminal. Known failures use their
// support code; anything else (bad configuration, for one) is shown as-is.
func errorLine(err error) string {
	ue := core.MapError(err)
	if ue.Code == core.CodeUnexpected {
		return "Error: " + err.Error()
	}
	return "Error: " + ue.String() + "\n  " + ue.Action + "\n  " + err.Error()
}

func newRootCmd() *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:   "suitctl",
		Short: "Inspect and repair suits in the catalog",
		Long: `suitctl looks up suits by their 6 digit code, checks them against the
durability rule for their type and offers a repair when they fail.

Repairs are written back to the catalog file immediately. When the file does
not exist a sample catalog of 50 suits is generated first.

Configuration is read from the environment (and a .env file, if present):
  CATALOG_PATH         catalog file (default suits.csv)
  REPAIR_INCREMENT     durability added per repair (default 25)
  SAMPLE_SIZE          suits generated for a new catalog (default 50)
  SAMPLE_PER_CATEGORY  suits generated per type (default 10)
  LOG_LEVEL            debug | info | warn | error (default warn)
  LOG_FORMAT           text | json (default text)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), file, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "catalog file (overrides CATALOG_PATH)")
	return cmd
}

// run wires configuration, logging, the catalog store and the session.
// Logs go to stderr; stdout carries only the session transcript.
func run(ctx context.Context, file string, stdin io.Reader, stdout, stderr io.Writer) error {
	// Load .env file if it exists; real environment variables take precedence
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if file != "" {
		cfg.Catalog.Path = file
	}

	logger := logging.WithSession(
		logging.Setup(cfg.Logging.Level, cfg.Logging.Format, stderr),
		logging.NewSessionID(),
	)
	if envErr != nil {
		logger.Debug("no .env file found, using environment variables")
	}
	logger.Debug("configuration loaded", "config", cfg.String())

	store, err := catalog.Open(cfg.Catalog.Path,
		catalog.WithLogger(logger),
		catalog.WithSampleSize(cfg.Catalog.SampleSize, cfg.Catalog.SamplePerCategory),
	)
	if err != nil {
		logger.Error("failed to load catalog", "path", cfg.Catalog.Path, "error", err)
		return err
	}
	logger.Info("catalog ready", "path", store.Path(), "suits", store.Len())

	ctx = logging.ContextWithLogger(ctx, logger)
	sess := session.New(store, stdin, stdout, session.WithIncrement(cfg.Repair.Increment))
	if err := sess.Run(ctx); err != nil {
		logger.Error("session aborted", "error", err)
		return err
	}

	logger.Debug("exiting", "path", store.Path(), "suits", store.Len())
	return nil
}
