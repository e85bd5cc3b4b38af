// Package cmd implements the carebridge command line interface.
package cmd

import (
	"io"
	"os"

	"github.com/carebridge/backend/internal/config"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "carebridge",
	Short: "Budget ledger backend for NDIS care providers",
	Long: `Carebridge deducts shift costs from client NDIS budgets and keeps an
append-only transaction ledger. The serve command runs the REST API,
the backfill command replays missed deductions.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgFile)
		if err != nil {
			return err
		}

		// gin uses debug as the default mode, we use release for
		// security reasons
		gin.SetMode(cfg.Server.Mode)

		// Log format can be explicitly set.
		// If it is not set, it defaults to human readable for development
		// and JSON for release
		output := io.Writer(os.Stdout)
		if (cfg.Log.Format == "" && gin.IsDebugging()) || cfg.Log.Format == "human" {
			output = zerolog.ConsoleWriter{Out: os.Stdout}
		}

		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if gin.IsDebugging() {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
		}
		log.Logger = log.Output(output).With().Timestamp().Logger()

		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to the config file (default \"config.yaml\")")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
