package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/carebridge/backend/internal/controllers/v1"
	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/internal/types"
	"github.com/carebridge/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBackfill() {
	tenant, client, budget := suite.billableSetup()

	// A shift that was completed without a deduction being booked
	shift := openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour)
	shift.Active = false
	shift = suite.createTestShift(shift)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/backfill", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BackfillResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 1) {
		suite.Assert().FailNow("Response length does not match!")
	}

	result := response.Data[0]
	suite.Assert().Equal(tenant.ID, result.TenantID)
	suite.Assert().Equal(1, result.Processed)
	suite.Assert().Equal(1, result.Deducted)
	suite.Assert().Equal(0, result.Skipped)

	// The deduction has been replayed against the budget
	var dbBudget models.Budget
	suite.Assert().Nil(models.DB.First(&dbBudget, budget.ID).Error)
	suite.Assert().True(dbBudget.CommunityAccessRemaining.Equal(decimal.RequireFromString("800")),
		"Remaining balance is %s, expected 800", dbBudget.CommunityAccessRemaining)

	// A second run has nothing left to do
	recorder = test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/backfill", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	response = v1.BackfillResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(0, response.Data[0].Processed)
}

func (suite *TestSuiteStandard) TestCreateBackfillTenant() {
	tenant, client, _ := suite.billableSetup()
	other := suite.createTestTenant(models.Tenant{Name: "Other Care Provider"})

	shift := openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour)
	shift.Active = false
	suite.createTestShift(shift)

	// A run for the other tenant must not touch the first tenant's shifts
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, fmt.Sprintf("http://example.com/v1/backfill?tenant=%s", other.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BackfillResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 1) {
		suite.Assert().FailNow("Response length does not match!")
	}
	suite.Assert().Equal(0, response.Data[0].Processed)

	recorder = test.Request(suite.T(), suite.router, http.MethodPost, fmt.Sprintf("http://example.com/v1/backfill?tenant=%s", tenant.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	response = v1.BackfillResponse{}
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(1, response.Data[0].Deducted)
}

func (suite *TestSuiteStandard) TestCreateBackfillSkipsFailingShifts() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430100003"})

	// No pricing entry and no budget exist, so the replay fails
	shift := openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour)
	shift.Active = false
	suite.createTestShift(shift)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/backfill", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BackfillResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	result := response.Data[0]
	suite.Assert().Equal(1, result.Processed)
	suite.Assert().Equal(0, result.Deducted)
	suite.Assert().Equal(1, result.Skipped)
}

func (suite *TestSuiteStandard) TestCreateBackfillTenantNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/backfill?tenant=65392deb-5e92-4268-b114-297faad6cdce", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestCreateBackfillInvalidTenant() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/backfill?tenant=not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BackfillResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the specified resource ID is not a valid UUID", *response.Error)
}
