// Package cmd provides the command-line interface for virtmem.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/tebeka/atexit"
)

// NewRootCommand creates the virtmem command. Flags that are not given on
// the command line take their defaults from the environment, after the env
// file has been loaded.
func NewRootCommand() *cobra.Command {
	var cfg Config

	rootCmd := &cobra.Command{
		Use:   "virtmem <npages> <nframes> <fifo|rand|custom> <sort|scan|focus>",
		Short: "Run a workload on simulated demand-paged virtual memory.",
		Long: `virtmem maps npages virtual pages onto nframes physical ` +
			`frames backed by a disk store, runs a workload on the virtual ` +
			`memory and reports the number of page faults.`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return applyEnv(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			err := cfg.parseArgs(args)
			if err != nil {
				return err
			}

			return run(cfg, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	bindFlags(rootCmd, &cfg)

	return rootCmd
}

// Execute runs the virtmem command and exits with a non-zero status if it
// fails.
func Execute() {
	rootCmd := NewRootCommand()

	err := rootCmd.Execute()
	if err != nil {
		rootCmd.PrintErrln("Error:", err)
		atexit.Exit(1)
	}
}
