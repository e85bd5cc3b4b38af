package ledger_test

import (
	"github.com/carebridge/backend/internal/ledger"
	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestResolveRateOverridePrecedence() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000001"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("40.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{
		TenantID: tenant.ID,
		ClientID: client.ID,
		Active:   true,
		PriceOverrides: models.PriceOverrides{
			types.ShiftTypeAM: decimal.RequireFromString("50.00"),
		},
	})

	rate, source, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypeAM, types.RatioOneToOne)
	suite.Assert().Nil(err)
	suite.Assert().Equal(ledger.RateSourceOverride, source)
	suite.Assert().True(rate.Equal(decimal.RequireFromString("50.00")), "rate is %s, should be 50.00", rate)
}

// TestResolveRateOverrideForOtherShiftType verifies that an override only
// wins for a matching shift type key: an "AM" override must not apply when
// the shift resolves as "PM".
func (suite *TestSuiteStandard) TestResolveRateOverrideForOtherShiftType() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000002"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypePM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("42.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{
		TenantID: tenant.ID,
		ClientID: client.ID,
		Active:   true,
		PriceOverrides: models.PriceOverrides{
			types.ShiftTypeAM: decimal.RequireFromString("50.00"),
		},
	})

	rate, source, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypePM, types.RatioOneToOne)
	suite.Assert().Nil(err)
	suite.Assert().Equal(ledger.RateSourcePricing, source)
	suite.Assert().True(rate.Equal(decimal.RequireFromString("42.00")), "rate is %s, should be 42.00", rate)
}

func (suite *TestSuiteStandard) TestResolveRateNonPositiveOverrideIgnored() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000003"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("40.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{
		TenantID: tenant.ID,
		ClientID: client.ID,
		Active:   true,
		PriceOverrides: models.PriceOverrides{
			types.ShiftTypeAM: decimal.Zero,
		},
	})

	rate, source, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypeAM, types.RatioOneToOne)
	suite.Assert().Nil(err)
	suite.Assert().Equal(ledger.RateSourcePricing, source)
	suite.Assert().True(rate.Equal(decimal.RequireFromString("40.00")), "rate is %s, should be 40.00", rate)
}

func (suite *TestSuiteStandard) TestResolveRateNoRateConfigured() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000004"})
	budget := suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: client.ID, Active: true})

	_, _, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypeAM, types.RatioOneToOne)
	suite.Assert().ErrorIs(err, ledger.ErrNoRateConfigured)
}

func (suite *TestSuiteStandard) TestResolveRateExactRatioRequired() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000005"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("40.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: client.ID, Active: true})

	// No fallback ratio substitution: AM at 1:2 does not use the 1:1 entry
	_, _, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypeAM, types.RatioOneToTwo)
	suite.Assert().ErrorIs(err, ledger.ErrNoRateConfigured)
}

func (suite *TestSuiteStandard) TestResolveRateIgnoresInactiveEntry() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000006"})

	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   tenant.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("40.00"),
		Active:     false,
	})

	budget := suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: client.ID, Active: true})

	_, _, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypeAM, types.RatioOneToOne)
	suite.Assert().ErrorIs(err, ledger.ErrNoRateConfigured)
}

func (suite *TestSuiteStandard) TestResolveRateScopedToTenant() {
	tenant := suite.createTestTenant(models.Tenant{})
	other := suite.createTestTenant(models.Tenant{Name: "Other Provider"})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430000007"})

	// The only pricing entry belongs to another tenant
	suite.createTestPricingEntry(models.PricingEntry{
		TenantID:   other.ID,
		ShiftType:  types.ShiftTypeAM,
		StaffRatio: types.RatioOneToOne,
		Rate:       decimal.RequireFromString("40.00"),
		Active:     true,
	})

	budget := suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: client.ID, Active: true})

	_, _, err := ledger.ResolveRate(models.DB, budget, types.ShiftTypeAM, types.RatioOneToOne)
	suite.Assert().ErrorIs(err, ledger.ErrNoRateConfigured)
}
