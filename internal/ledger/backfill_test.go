package ledger_test

import (
	"time"

	"github.com/carebridge/backend/internal/ledger"
	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestBackfillTenant() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430200001"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("50.00"),
		Active:     true,
	})

	// The remaining balance already reflects the deduction of the
	// ledgered shift below
	budget := suite.createTestBudget(models.Budget{
		TenantID:                 tenant.ID,
		ClientID:                 client.ID,
		CommunityAccessTotal:     decimal.RequireFromString("1000"),
		CommunityAccessRemaining: decimal.RequireFromString("900"),
		Active:                   true,
	})

	// Completed without a deduction, has a rate
	suite.createTestShift(completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour))

	// Completed without a deduction, no PM pricing configured yet
	pm := completedShift(tenant, client, types.ShiftTypePM, types.RatioOneToOne, 2*time.Hour)
	suite.createTestShift(pm)

	// Still active, must not be billed
	active := completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour)
	active.Active = true
	suite.createTestShift(active)

	// Completed, but already has a ledger transaction
	ledgered := suite.createTestShift(completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour))
	suite.createTestTransaction(models.LedgerTransaction{
		BudgetID: budget.ID,
		ShiftID:  &ledgered.ID,
		Category: types.CategoryCommunityAccess,
		Amount:   decimal.RequireFromString("100.00"),
	})

	result, err := ledger.BackfillTenant(models.DB, tenant.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(2, result.Processed)
	suite.Assert().Equal(1, result.Deducted)
	suite.Assert().Equal(1, result.Skipped)

	suite.assertReconciled(budget.ID, types.CategoryCommunityAccess)
}

// TestBackfillIdempotent verifies that a second run does not create any
// new transactions: ledgered shifts are excluded by the query, failing
// shifts fail the same way again.
func (suite *TestSuiteStandard) TestBackfillIdempotent() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430200002"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("50.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{
		TenantID:                 tenant.ID,
		ClientID:                 client.ID,
		CommunityAccessTotal:     decimal.RequireFromString("1000"),
		CommunityAccessRemaining: decimal.RequireFromString("1000"),
		Active:                   true,
	})

	suite.createTestShift(completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour))
	suite.createTestShift(completedShift(tenant, client, types.ShiftTypePM, types.RatioOneToOne, 2*time.Hour))

	first, err := ledger.BackfillTenant(models.DB, tenant.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, first.Deducted)
	suite.Assert().Equal(1, first.Skipped)

	second, err := ledger.BackfillTenant(models.DB, tenant.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, second.Processed, "only the failing shift is revisited")
	suite.Assert().Equal(0, second.Deducted)
	suite.Assert().Equal(1, second.Skipped)

	var count int64
	suite.Require().Nil(models.DB.Model(&models.LedgerTransaction{}).Where("budget_id = ?", budget.ID).Count(&count).Error)
	suite.Assert().Equal(int64(1), count, "the second run must not create transactions")

	var updated models.Budget
	suite.Require().Nil(models.DB.First(&updated, "id = ?", budget.ID).Error)
	suite.Assert().True(updated.CommunityAccessRemaining.Equal(decimal.RequireFromString("900.00")), "remaining is %s, should be 900.00", updated.CommunityAccessRemaining)
}

// TestBackfillRetriesAfterFix verifies that a skipped shift is picked up
// once the underlying issue is fixed externally.
func (suite *TestSuiteStandard) TestBackfillRetriesAfterFix() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430200003"})

	budget := suite.createTestBudget(models.Budget{
		TenantID:                 tenant.ID,
		ClientID:                 client.ID,
		CommunityAccessTotal:     decimal.RequireFromString("1000"),
		CommunityAccessRemaining: decimal.RequireFromString("1000"),
		Active:                   true,
	})

	suite.createTestShift(completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour))

	result, err := ledger.BackfillTenant(models.DB, tenant.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, result.Skipped, "the shift has no rate and is skipped")

	// Configure the missing rate, the next run replays the deduction
	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("50.00"),
		Active:     true,
	})

	result, err = ledger.BackfillTenant(models.DB, tenant.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, result.Deducted)

	suite.assertReconciled(budget.ID, types.CategoryCommunityAccess)
}

func (suite *TestSuiteStandard) TestBackfillInsufficientFundsSkips() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430200004"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("50.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{
		TenantID:                 tenant.ID,
		ClientID:                 client.ID,
		CommunityAccessTotal:     decimal.RequireFromString("60"),
		CommunityAccessRemaining: decimal.RequireFromString("60"),
		Active:                   true,
	})

	suite.createTestShift(completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour))

	result, err := ledger.BackfillTenant(models.DB, tenant.ID)
	suite.Require().Nil(err)
	suite.Assert().Equal(1, result.Skipped)

	var updated models.Budget
	suite.Require().Nil(models.DB.First(&updated, "id = ?", budget.ID).Error)
	suite.Assert().True(updated.CommunityAccessRemaining.Equal(decimal.RequireFromString("60")), "remaining is %s, should be 60", updated.CommunityAccessRemaining)
}

func (suite *TestSuiteStandard) TestBackfillAllTenants() {
	for _, ndis := range []string{"430200005", "430200006"} {
		tenant := suite.createTestTenant(models.Tenant{})
		client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: ndis})

		suite.createTestPricingEntry(models.PricingEntry{
			TenantID:   tenant.ID,
			ShiftType:  types.ShiftTypeAM,
			StaffRatio: types.RatioOneToOne,
			Rate:       decimal.RequireFromString("50.00"),
			Active:     true,
		})

		suite.createTestBudget(models.Budget{
			TenantID:                 tenant.ID,
			ClientID:                 client.ID,
			CommunityAccessTotal:     decimal.RequireFromString("1000"),
			CommunityAccessRemaining: decimal.RequireFromString("1000"),
			Active:                   true,
		})

		suite.createTestShift(completedShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 2*time.Hour))
	}

	results, err := ledger.Backfill(models.DB)
	suite.Require().Nil(err)
	suite.Require().Len(results, 2)

	for _, result := range results {
		suite.Assert().Equal(1, result.Deducted)
		suite.Assert().Equal(0, result.Skipped)
	}
}
