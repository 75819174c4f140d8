package main

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"runtime/debug"
	"strings"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/perfmark/procstart/internal/cliconfig"
	"github.com/perfmark/procstart/pkg/log"
	"github.com/perfmark/procstart/pkg/procstart"
)

const helpDescription = `
Print the wall-clock time that passed between OS process creation and the
measurement, covering loader activity, dynamic library loading, and static
initialization that ran before main().

Highlights:
  - One OS query pair per measurement; no daemon, no network, nothing written.
  - Prints 0.0 when the platform query fails (use --strict to exit non-zero
    instead).
  - Configure via file ($HOME/.procstart/config.toml), PROCSTART_* env vars,
    or flags; flags win over env, env wins over file.

To calibrate on a new platform, add a known sleep to a package-level
initializer of this binary and compare against a baseline run: the printed
value should grow by about the sleep duration.
`

var longHelp = strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  procstart
  procstart --format json
  procstart --repeat 3 --quiet
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

// measurement is the JSON output shape for a single measurement.
type measurement struct {
	StartupSeconds float64 `json:"startup_seconds"`
	Error          string  `json:"error,omitempty"`
}

func main() {
	cfg := cliconfig.DefaultConfig()
	var cfgPath string

	logger := cliconfig.Logger()

	root := &cobra.Command{
		Use:     "procstart",
		Short:   "Measure the time your process spent before reaching main()",
		Long:    longHelp,
		Example: exampleUsage,
		Version: fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Load config file first (default $HOME/.procstart/config.toml),
			// then env vars, then flag overrides.
			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			// Build set of changed flags
			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if cfgFile != "" && cliconfig.FileExists(cfgFile) {
				fc, err := cliconfig.LoadFileConfig(cfgFile)
				if err != nil {
					return fmt.Errorf("load config: %w", err)
				}
				if err := cliconfig.ApplyFileConfig(&cfg, fc, changed); err != nil {
					return err
				}
			}

			if err := cliconfig.ApplyEnvConfig(&cfg, changed); err != nil {
				return err
			}

			if err := cfg.Validate(); err != nil {
				return err
			}

			opts := []procstart.Option{
				procstart.WithLogger(log.NewZerologAdapterWithLogger(logger)),
			}
			if cfg.Quiet {
				opts = append(opts, procstart.WithSilent())
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			for i := 0; i < cfg.Repeat; i++ {
				secs, err := procstart.Measure(opts...)
				if err != nil && cfg.Strict {
					return fmt.Errorf("measure startup time: %w", err)
				}

				switch cfg.Format {
				case cliconfig.FormatJSON:
					m := measurement{StartupSeconds: secs}
					if err != nil {
						m.Error = err.Error()
					}
					if encErr := enc.Encode(m); encErr != nil {
						return encErr
					}
				default:
					fmt.Fprintf(cmd.OutOrStdout(), "startup time: %.6fs\n", secs)
				}
			}
			return nil
		},
	}

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.procstart/config.toml)")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	root.Flags().IntVar(&cfg.Repeat, "repeat", cfg.Repeat, "number of consecutive measurements to print")
	root.Flags().BoolVar(&cfg.Quiet, "quiet", cfg.Quiet, "suppress failure diagnostics")
	root.Flags().BoolVar(&cfg.Strict, "strict", cfg.Strict, "exit non-zero when the measurement fails")

	if err := root.Execute(); err != nil {
		logger.Error().Err(err).Msg("procstart")
		os.Exit(1)
	}
}
