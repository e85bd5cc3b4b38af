package v1_test

import (
	"fmt"
	"net/http"
	"time"

	v1 "github.com/carebridge/backend/internal/controllers/v1"
	"github.com/carebridge/backend/internal/types"
	"github.com/carebridge/backend/test"
)

// completeShift completes the shift via the API and fails the test when
// that does not work.
func (suite *TestSuiteStandard) completeShift(shiftID fmt.Stringer) v1.ShiftCompletion {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, fmt.Sprintf("http://example.com/v1/shifts/%s/complete", shiftID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ShiftCompleteResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	return *response.Data
}

func (suite *TestSuiteStandard) TestGetLedgerTransactions() {
	tenant, client, budget := suite.billableSetup()

	shift := suite.createTestShift(openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour))
	suite.completeShift(shift.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/transactions", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LedgerTransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 1) {
		suite.Assert().FailNow("Response length does not match!")
	}

	transaction := response.Data[0]
	suite.Assert().Equal(budget.ID, transaction.BudgetID)
	suite.Assert().Equal(&shift.ID, transaction.ShiftID)
}

func (suite *TestSuiteStandard) TestGetLedgerTransaction() {
	tenant, client, _ := suite.billableSetup()

	shift := suite.createTestShift(openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour))
	completion := suite.completeShift(shift.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions/%s", completion.Transaction.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.LedgerTransactionResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal(completion.Transaction.ID, response.Data.ID)
}

func (suite *TestSuiteStandard) TestGetLedgerTransactionsFilter() {
	tenant, client, budget := suite.billableSetup()

	shift := suite.createTestShift(openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour))
	suite.completeShift(shift.ID)

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("budget=%s", budget.ID), 1},
		{fmt.Sprintf("shift=%s", shift.ID), 1},
		{"category=CommunityAccess", 1},
		{"category=SIL", 0},
		{"description=*inferred*", 1},
		{"description=*explicit*", 0},
		{"budget=a6e63d3e-d847-4de1-ab4e-111c91c86b3e", 0},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/transactions?%s", tt.query), "")

		var response v1.LedgerTransactionListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Assert().Len(response.Data, tt.count, "Wrong number of transactions for query %q", tt.query)
	}
}

// Booked transactions are immutable, the API does not offer write verbs
// on them.
func (suite *TestSuiteStandard) TestLedgerTransactionsReadOnly() {
	tenant, client, _ := suite.billableSetup()

	shift := suite.createTestShift(openShift(tenant, client, types.ShiftTypeAM, types.RatioOneToOne, 4*time.Hour))
	completion := suite.completeShift(shift.ID)

	tests := []struct {
		method string
		path   string
	}{
		{http.MethodPost, fmt.Sprintf("http://example.com/v1/transactions/%s", completion.Transaction.ID)},
		{http.MethodPatch, fmt.Sprintf("http://example.com/v1/transactions/%s", completion.Transaction.ID)},
		{http.MethodDelete, fmt.Sprintf("http://example.com/v1/transactions/%s", completion.Transaction.ID)},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, tt.method, tt.path, "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusMethodNotAllowed)
	}
}
