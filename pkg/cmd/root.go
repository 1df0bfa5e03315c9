package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/siyuan-infoblox/ts-imports-group/pkg/config"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/errors"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/formatter"
	"github.com/siyuan-infoblox/ts-imports-group/pkg/version"
)

const (
	UseDescription   = "tig [flags] PATH..."
	ShortDescription = "TypeScript imports grouper - A tool to check and fix the grouping of JS/TS imports"
	LongDescription  = `tig is a command-line tool that checks that the imports at the top of
JavaScript and TypeScript files are grouped and sorted.

Imports are organized into blank-line separated groups, in this order:
1. Packages from node_modules
2. Aliased modules (configurable prefixes, e.g. "@/")
3. Parent directory modules ("../")
4. Current directory modules ("./")

Imports within a group are sorted alphabetically.

PATH can be a single file or a directory. Directories are processed
recursively, skipping node_modules, build output and hidden directories.

Settings are read from tig.yaml (searched upward from PATH), TIG_* environment
variables and flags, in increasing order of precedence.`
)

var (
	cfgFile     string
	showVersion bool
)

var rootCmd = &cobra.Command{
	Use:          UseDescription,
	Short:        ShortDescription,
	Long:         LongDescription,
	Args:         validateArgs,
	RunE:         run,
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringSlice(config.KeyAliases, []string{}, "Comma-separated list of alias prefixes (e.g., @/,~/)")
	flags.String(config.KeyAliasPrefix, "", "Single alias prefix, added to --aliases")
	flags.Bool(config.KeySortByFullPath, false, "Sort imports by their full module path instead of package and member name")
	flags.Bool(config.KeyInPlace, false, "Rewrite the imports of the files in place (alias: --fix)")
	flags.Bool(config.KeyJSON, false, "Output diagnostics in JSON format")
	flags.Bool(config.KeyVerbose, false, "Enable debug logging")
	flags.StringVar(&cfgFile, "config", "", "Config file (default: tig.yaml searched upward from PATH)")
	flags.BoolVarP(&showVersion, "version", "v", false, "Show version information")

	rootCmd.SetGlobalNormalizationFunc(normalizeFlag)
}

// normalizeFlag maps flag aliases to their config key
func normalizeFlag(_ *pflag.FlagSet, name string) pflag.NormalizedName {
	if name == "fix" {
		name = config.KeyInPlace
	}
	return pflag.NormalizedName(name)
}

func validateArgs(cmd *cobra.Command, args []string) error {
	// If version flag is set, we don't need file arguments
	if showVersion {
		return nil
	}
	return cobra.MinimumNArgs(1)(cmd, args)
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	cfg.Encoding = "console"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	return cfg.Build()
}

func run(cmd *cobra.Command, args []string) error {
	// Handle version flag
	if showVersion {
		fmt.Fprintln(cmd.OutOrStdout(), version.Get().String())
		return nil
	}

	cfg, err := config.Load(cfgFile, args[0], cmd.Flags())
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToLoadConfig, err)
	}

	logger, err := newLogger(cfg.Verbose)
	if err != nil {
		return fmt.Errorf("%s: %w", errors.ErrMsgFailedToCreateLogger, err)
	}
	defer func() { _ = logger.Sync() }()
	if cfg.File != "" {
		logger.Debug(errors.InfoMsgUsingConfigFile, zap.String("file", cfg.File))
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	g := formatter.New(formatter.FormatterConfig{
		Rule:    cfg.Rule(),
		InPlace: cfg.InPlace,
	}, logger)
	diags, processErr := g.ProcessPaths(ctx, args)

	if err := formatter.PrintDiagnostics(cmd.OutOrStdout(), diags, cfg.JSON); err != nil {
		return err
	}
	if processErr != nil {
		return processErr
	}
	if remaining := countUnfixed(diags); remaining > 0 {
		return fmt.Errorf(errors.ErrMsgViolationsFound, remaining)
	}
	return nil
}

func countUnfixed(diags []formatter.Diagnostic) int {
	n := 0
	for _, d := range diags {
		if !d.Fixed {
			n++
		}
	}
	return n
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}
