package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-uibuilder/internal/config"
	"github.com/goliatone/go-uibuilder/pkg/logging"
	"github.com/goliatone/go-uibuilder/pkg/scaffold"
)

// App carries what the subcommands share once the root command has loaded
// configuration.
type App struct {
	Config *config.Config
	Log    logging.Logger

	zap     *zap.Logger
	prompts scaffold.PromptDriver
	loggerF func(logging.Config) (logging.Logger, *zap.Logger, error)
}

// Option customises the App before commands run.
type Option func(*App)

// WithPromptDriver replaces the terminal prompts used by scaffold.
func WithPromptDriver(driver scaffold.PromptDriver) Option {
	return func(a *App) {
		a.prompts = driver
	}
}

// WithLogger bypasses logger construction from configuration.
func WithLogger(lggr *zap.Logger) Option {
	return func(a *App) {
		a.loggerF = func(logging.Config) (logging.Logger, *zap.Logger, error) {
			return logging.NewZap(lggr), lggr, nil
		}
	}
}

// NewRootCmd assembles the uibuilder command tree.
func NewRootCmd(opts ...Option) *cobra.Command {
	app := &App{loggerF: logging.New}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}

	var (
		configPath string
		logLevel   string
	)
	root := &cobra.Command{
		Use:           "uibuilder",
		Short:         "Build host forms from declarative documents",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if logLevel != "" {
				cfg.Log.Level = logLevel
			}
			lggr, zl, err := app.loggerF(cfg.Logging())
			if err != nil {
				return err
			}
			app.Config, app.Log, app.zap = cfg, lggr, zl
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if app.zap != nil {
				_ = app.zap.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (YAML, JSON or TOML)")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level override (debug, info, warn, error)")

	root.AddCommand(
		newBuildCmd(app),
		newImportCmd(app),
		newScaffoldCmd(app),
	)
	return root
}

// Execute runs the CLI against the process arguments.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "uibuilder:", err)
		return 1
	}
	return 0
}

// writeOutput writes to path, or to w when path is empty.
func writeOutput(w io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := w.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
