package cmd

import (
	"net/url"
	"os"
	"path/filepath"

	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/router"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the REST API",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Create the data directory
		err := os.MkdirAll(filepath.Dir(cfg.Database.Path), os.ModePerm)
		if err != nil {
			return err
		}

		err = models.Connect(cfg.Database.Path)
		if err != nil {
			return err
		}

		apiURL, err := url.Parse(cfg.API.URL)
		if err != nil {
			return err
		}

		r, err := router.Config(apiURL)
		if err != nil {
			return err
		}
		router.AttachRoutes(r.Group("/"))

		log.Info().Str("address", cfg.Server.Address).Msg("starting server")
		return r.Run(cfg.Server.Address)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
