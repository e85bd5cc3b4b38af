package cmd

import (
	"encoding/json"
	"os"

	"github.com/carebridge/backend/internal/httputil"
	"github.com/carebridge/backend/internal/ledger"
	"github.com/carebridge/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var backfillTenant string

var backfillCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Replay deductions for completed shifts that have none",
	Long: `Backfill walks all completed shifts without a ledger transaction and
books the missed deductions. The run is idempotent: shifts that already
have a transaction are untouched, failing shifts are skipped and picked
up again on the next run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		err := models.Connect(cfg.Database.Path)
		if err != nil {
			return err
		}

		tenantID, err := httputil.UUIDFromString(backfillTenant)
		if err != nil {
			return err
		}

		var results []ledger.BackfillResult
		if tenantID != uuid.Nil {
			result, err := ledger.BackfillTenant(models.DB, tenantID)
			if err != nil {
				return err
			}
			results = []ledger.BackfillResult{result}
		} else {
			results, err = ledger.Backfill(models.DB)
			if err != nil {
				return err
			}
		}

		for _, result := range results {
			log.Info().
				Str("tenant", result.TenantID.String()).
				Int("processed", result.Processed).
				Int("deducted", result.Deducted).
				Int("skipped", result.Skipped).
				Msg("backfill")
		}

		return json.NewEncoder(os.Stdout).Encode(results)
	},
}

func init() {
	backfillCmd.Flags().StringVar(&backfillTenant, "tenant", "", "limit the run to this tenant ID")
	rootCmd.AddCommand(backfillCmd)
}
