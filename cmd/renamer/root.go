package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/backmassage/renamer/internal/config"
	"github.com/backmassage/renamer/internal/display"
	"github.com/backmassage/renamer/internal/logging"
	"github.com/backmassage/renamer/internal/pipeline"
)

// run executes the CLI and returns the process exit code. Usage errors and
// bootstrap failures exit 1; otherwise the pipeline result decides.
func run(args []string, stdout, stderr io.Writer) int {
	code := pipeline.ExitOK
	cmd := newRootCommand(stdout, stderr, &code)
	cmd.SetArgs(args)
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "renamer: %v\n", err)
		return pipeline.ExitInvalid
	}
	return code
}

func newRootCommand(stdout, stderr io.Writer, code *int) *cobra.Command {
	cfg := config.DefaultConfig()

	rootCmd := &cobra.Command{
		Use:           "renamer [flags] [path...]",
		Short:         "Batch file renamer",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	flags := config.BindFlags(rootCmd.Flags(), &cfg)
	rootCmd.SetUsageFunc(func(c *cobra.Command) error {
		config.PrintUsage(c.ErrOrStderr(), version)
		return nil
	})
	rootCmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		config.PrintUsage(c.OutOrStdout(), version)
	})

	rootCmd.RunE = func(cmd *cobra.Command, args []string) error {
		if flags.ShowVersion() {
			fmt.Fprintf(cmd.OutOrStdout(), "renamer %s (%s)\n", version, commit)
			return nil
		}
		flags.Finalize(args)
		if err := cfg.Validate(); err != nil {
			return err
		}
		if _, err := cfg.Rule(); err != nil {
			return err
		}
		*code = execute(&cfg, stdout, stderr)
		return nil
	}
	return rootCmd
}

// execute runs the pipeline against the OS filesystem.
func execute(cfg *config.Config, stdout, stderr io.Writer) int {
	// Keep stdout a clean JSON document.
	logOut := stdout
	if cfg.Output == config.OutputJSON {
		logOut = stderr
	}
	log, err := logging.NewLogger(cfg, logOut, stderr)
	if err != nil {
		fmt.Fprintf(stderr, "renamer: %v\n", err)
		return pipeline.ExitInvalid
	}
	defer log.Close()

	log.Debug("renamer %s (%s)", version, commit)
	if !cfg.Mutates() {
		log.Debug("Dry run: no files will be renamed (use --apply)")
	}

	// Cancel on SIGINT/SIGTERM; the executor stops between renames.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Received interrupt, finishing current rename…")
			cancel()
		case <-ctx.Done():
		}
	}()

	fsys := afero.NewOsFs()
	res := pipeline.Run(ctx, cfg, fsys, log, display.New(cfg.Output, stdout, fsys))
	return res.ExitCode()
}
