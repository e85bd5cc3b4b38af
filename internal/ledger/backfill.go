package ledger

import (
	"github.com/carebridge/backend/internal/models"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// BackfillResult summarizes one reconciliation run for a tenant.
type BackfillResult struct {
	TenantID  uuid.UUID `json:"tenantId" example:"65392deb-5e92-4268-b114-297faad6cdce"` // The tenant that was reconciled
	Processed int       `json:"processed" example:"17"`                                  // Completed shifts without a ledger transaction
	Deducted  int       `json:"deducted" example:"15"`                                   // Shifts for which a deduction was replayed
	Skipped   int       `json:"skipped" example:"2"`                                     // Shifts that failed and were left for the next run
}

// Backfill reconciles all tenants sequentially.
func Backfill(db *gorm.DB) ([]BackfillResult, error) {
	var tenants []models.Tenant
	err := db.Order("created_at ASC").Find(&tenants).Error
	if err != nil {
		return nil, err
	}

	results := make([]BackfillResult, 0, len(tenants))
	for _, tenant := range tenants {
		result, err := BackfillTenant(db, tenant.ID)
		if err != nil {
			return results, err
		}

		results = append(results, result)
	}

	return results, nil
}

// BackfillTenant replays the deduction for every completed shift of the
// tenant that has no ledger transaction yet.
//
// Shifts that already have a transaction are excluded by the query, which
// makes the reconciler idempotent. Per-shift failures are logged with the
// shift id and skipped; they are retried on the next run once the
// underlying issue is fixed, the backfill itself never retries.
func BackfillTenant(db *gorm.DB, tenantID uuid.UUID) (BackfillResult, error) {
	result := BackfillResult{TenantID: tenantID}

	var shifts []models.Shift
	err := db.
		Where("tenant_id = ?", tenantID).
		Where("active = ?", false).
		Where("end_time IS NOT NULL").
		Where("NOT EXISTS (SELECT 1 FROM ledger_transactions WHERE ledger_transactions.shift_id = shifts.id AND ledger_transactions.deleted_at IS NULL)").
		Order("start_time ASC").
		Find(&shifts).Error
	if err != nil {
		return result, err
	}

	for _, shift := range shifts {
		result.Processed++

		transaction, _, err := DeductShift(db, shift)
		if err != nil {
			result.Skipped++
			backfillShiftsTotal.WithLabelValues("skipped").Inc()
			log.Warn().
				Str("shift", shift.ID.String()).
				Str("client", shift.ClientID.String()).
				Err(err).
				Msg("backfill: shift skipped")
			continue
		}

		result.Deducted++
		backfillShiftsTotal.WithLabelValues("deducted").Inc()
		log.Info().
			Str("shift", shift.ID.String()).
			Str("transaction", transaction.ID.String()).
			Str("amount", transaction.Amount.String()).
			Msg("backfill: deduction replayed")
	}

	return result, nil
}
