package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/raphi011/pj/internal/config"
	"github.com/raphi011/pj/internal/emit"
	"github.com/raphi011/pj/internal/log"
	"github.com/raphi011/pj/internal/project"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	configFlag string

	// Shared state injected into commands
	cfg     *config.Config
	current *config.Project
)

// rootCmd represents the base command when called without any subcommands.
// Unknown names fall through to the custom-command dispatcher, so
// `pj build` resolves against the configured commands.
var rootCmd = &cobra.Command{
	Use:   "pj [command]",
	Short: "Jump between projects, load environments, run project commands",
	Long: `pj is a project jumper. It prints shell statements (cd, export, echo
and configured commands) on stdout for the calling shell to evaluate:

  pj() { eval "$(command pj "$@")"; }

A child process cannot change its parent's working directory or
environment, so pj never executes anything itself - the wrapper does.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	Args:              cobra.ArbitraryArgs,
	PersistentPreRunE: setupInvocation,
}

// setupInvocation parses shared state after flag parsing: logger, emitter,
// loaded config and the cwd-derived current project.
func setupInvocation(cmd *cobra.Command, args []string) error {
	// Completion and help never need a config
	if cmd.Name() == "completion" || cmd.Name() == "__complete" || cmd.Name() == "help" {
		return nil
	}

	ctx := cmd.Context()
	logger := log.New(os.Stderr, verbose, quiet)
	ctx = log.WithLogger(ctx, logger)
	ctx = emit.WithEmitter(ctx, emit.New(os.Stdout, verbose))
	cmd.SetContext(ctx)

	loaded, err := config.Load(configFlag)
	if err != nil {
		return err
	}
	cfg = loaded
	logger.Debug("loaded config", "path", cfg.Path)

	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	current = project.Current(cfg, wd)
	if current != nil {
		logger.Debug("current project", "name", current.Name)
	}

	return nil
}

// Execute runs the root command and exits with 0 on success, 1 on any
// failure and 130 on interruption.
func Execute() {
	os.Exit(run())
}

func run() (code int) {
	// Nothing unexpected may escape the process boundary
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "pj: unexpected error: %v\n", r)
			code = 1
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	rootCmd.SetContext(ctx)
	err := rootCmd.Execute()

	if ctx.Err() != nil {
		fmt.Fprintln(os.Stderr, "pj: interrupted")
		return 130
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func init() {
	// Assigned here rather than in the literal: the dispatcher reaches
	// runCompletion, which references rootCmd, and a RunE in the var
	// initializer would close that into an initialization cycle.
	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return cmd.Help()
		}
		inv := newInvocation(cmd.Context())
		return inv.dispatch(args[0], args[1:])
	}

	// Help and usage must never land on stdout, where they would be
	// evaluated by the shell wrapper
	rootCmd.SetOut(os.Stderr)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Echo commands with their environment before running them")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress diagnostic output")
	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Path to configuration file")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.Version = versionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(newToCmd())
	rootCmd.AddCommand(newEnvCmd())
	rootCmd.AddCommand(newListCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCompletionCmd())
}
