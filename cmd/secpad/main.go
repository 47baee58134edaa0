package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"runtime/debug"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/secpad/internal/adapters/fs"
	"github.com/bft-labs/secpad/internal/app"
	"github.com/bft-labs/secpad/internal/cliconfig"
	"github.com/bft-labs/secpad/internal/ports"
	"github.com/bft-labs/secpad/pkg/log"
	"github.com/bft-labs/secpad/pkg/report"
)

const helpDescription = `
Zero-pad the section number of Sec<n>[_<m>].js files in a directory.

  Sec3.js    -> Sec03.js
  Sec3_1.js  -> Sec03_1.js
  Sec10.js      unchanged

Only the primary number is padded, to at least two digits. Other files are
left alone. Existing files are never overwritten.

Configure via flags, SECPAD_* environment variables, or $HOME/.secpad/config.toml.
`

var exampleUsage = strings.TrimSpace(`
  secpad ./sections
  secpad --dir ./sections --dry-run
  secpad --dir ./sections --on-error continue --report ./last-run.json
  secpad --dir ./sections --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	root := &cobra.Command{
		Use:           "secpad [dir]",
		Short:         "Zero-pad section numbers in Sec<n>.js file names",
		Long:          strings.TrimSpace(helpDescription),
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 1 {
				err := fmt.Errorf("accepts at most one directory, received %d", len(args))
				logError(stderr, err)
				return err
			}

			// Build set of changed flags; a positional dir counts as --dir.
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })
			if len(args) == 1 {
				if changed["dir"] && args[0] != cfg.Dir {
					err := fmt.Errorf("directory given twice: %q and --dir %q", args[0], cfg.Dir)
					logError(stderr, err)
					return err
				}
				cfg.Dir = args[0]
				changed["dir"] = true
			}

			if err := loadConfig(&cfg, cfgPath, changed); err != nil {
				logError(stderr, err)
				return err
			}

			level, _ := log.ParseLevel(cfg.LogLevel)
			logger := log.NewZerologAdapterWithWriter(stderr, level)
			logger.Debug("configuration", log.Any("config", cfg))

			err := run(cmd.Context(), cfg, logger, stdout)
			if err != nil {
				logger.Error("secpad", log.Err(err))
			}
			return err
		},
	}

	root.SetOut(stdout)
	root.SetErr(stderr)

	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.secpad/config.toml)")
	root.Flags().StringVar(&cfg.Dir, "dir", cfg.Dir, "directory holding the section files")
	root.Flags().BoolVar(&cfg.DryRun, "dry-run", cfg.DryRun, "print planned renames without performing them")
	root.Flags().StringVar(&cfg.OnError, "on-error", cfg.OnError, "what to do when a rename fails: abort or continue")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "keep running and normalize new section files as they appear")
	root.Flags().DurationVar(&cfg.Debounce, "debounce", cfg.Debounce, "quiet period after a change before a watch pass runs")
	root.Flags().StringVar(&cfg.Report, "report", cfg.Report, "write a JSON summary of each pass to this file")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn or error")

	return root
}

// loadConfig applies file and environment configuration below the flags the
// user set, then validates the result.
func loadConfig(cfg *cliconfig.Config, cfgPath string, changed map[string]bool) error {
	cfgFile := cfgPath
	if cfgFile == "" {
		cfgFile = cliconfig.DefaultConfigPath()
	}
	if cfgPath != "" && !cliconfig.FileExists(cfgPath) {
		return fmt.Errorf("config file %s not found", cfgPath)
	}

	if cfgFile != "" && cliconfig.FileExists(cfgFile) {
		fc, err := cliconfig.LoadFileConfig(cfgFile)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(cfg, fc, changed); err != nil {
			return err
		}
	}

	// SECPAD_* override file config but not flags.
	if err := cliconfig.ApplyEnvConfig(cfg, changed); err != nil {
		return err
	}

	return cfg.Validate()
}

func run(ctx context.Context, cfg cliconfig.Config, logger log.Logger, stdout io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var store ports.ReportStore
	if cfg.Report != "" {
		store = report.NewFileStore(cfg.Report)
	}

	runner := app.NewRunner(cfg.RunnerConfig(), fs.NewOS(), store, logger, stdout)

	if cfg.Watch {
		if err := app.NewWatcher(runner, logger, cfg.Debounce).Run(ctx); err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		logger.Info("received signal, stopping")
		return nil
	}

	_, err := runner.Run(ctx)
	return err
}

// logError reports errors that happen before the configured logger exists.
func logError(w io.Writer, err error) {
	log.NewZerologAdapterWithWriter(w, log.DefaultLevel).Error("secpad", log.Err(err))
}
