package main

import (
	"errors"
	"fmt"
	"io"
	"log"

	"github.com/spf13/cobra"

	"volumetrico/internal/config"
)

// errInvalidReports signals that at least one report had validation errors.
var errInvalidReports = errors.New("one or more reports are invalid")

type rootOptions struct {
	verbose bool
	envFile string
	cfg     *config.Config
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "cvcheck",
		Short:         "Validate monthly volumetric control reports",
		Long:          `cvcheck checks hydrocarbon volumetric JSON reports against the regulator's rules and lists every defect found.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(io.Discard)
			if opts.verbose {
				log.SetOutput(cmd.ErrOrStderr())
			}
			if err := config.LoadDotEnv(opts.envFile); err != nil {
				return err
			}
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			opts.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log progress to stderr")
	cmd.PersistentFlags().StringVar(&opts.envFile, "env-file", ".env", "dotenv file to load before reading configuration")

	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newWatchCmd(opts))
	cmd.AddCommand(newVersionCmd())
	return cmd
}
