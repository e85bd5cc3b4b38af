package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/carebridge/backend/internal/controllers/v1"
	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) TestCreateBudgets() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})

	body := fmt.Sprintf(`[{
		"tenantId": "%s",
		"clientId": "%s",
		"silTotal": "52000.00",
		"silRemaining": "52000.00",
		"priceOverrides": { "AM": "70.00" },
		"allowedRatios": { "SIL": ["1:1", "2:1"] },
		"active": true
	}]`, tenant.ID, client.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 1) {
		suite.Assert().FailNow("Response length does not match!")
	}

	budget := response.Data[0]
	suite.Assert().Nil(budget.Error)
	suite.Assert().True(budget.Data.SILTotal.Equal(decimal.RequireFromString("52000.00")))
	suite.Assert().Len(budget.Data.AllowedRatios["SIL"], 2)
	suite.Assert().Contains(budget.Data.Links.Transactions, fmt.Sprintf("budget=%s", budget.Data.ID))
}

func (suite *TestSuiteStandard) TestCreateBudgetsInvalidBalance() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})

	// The remaining balance may not exceed the total
	body := fmt.Sprintf(`[{
		"tenantId": "%s",
		"clientId": "%s",
		"silTotal": "1000.00",
		"silRemaining": "2000.00"
	}]`, tenant.ID, client.ID)

	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(*response.Data[0].Error, "the remaining balance must be between zero and the total")
}

func (suite *TestSuiteStandard) TestCreateBudgetsDuplicateClient() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})

	suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: client.ID, Active: true})

	body := fmt.Sprintf(`[{ "tenantId": "%s", "clientId": "%s" }]`, tenant.ID, client.ID)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/budgets", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.BudgetCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the client already has a budget", *response.Data[0].Error)
}

func (suite *TestSuiteStandard) TestGetBudgetsFilter() {
	tenant := suite.createTestTenant(models.Tenant{})

	clientOne := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})
	clientTwo := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430987654"})

	suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: clientOne.ID, Active: true})
	suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: clientTwo.ID})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("tenant=%s", tenant.ID), 2},
		{fmt.Sprintf("client=%s", clientOne.ID), 1},
		{"active=true", 1},
		{"active=false", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.BudgetListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Assert().Len(response.Data, tt.count, "Wrong number of budgets for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestUpdateBudget() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})
	budget := suite.createTestBudget(models.Budget{
		TenantID:     tenant.ID,
		ClientID:     client.ID,
		SILTotal:     decimal.RequireFromString("1000"),
		SILRemaining: decimal.RequireFromString("1000"),
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), `{ "active": true }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.BudgetResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().True(response.Data.Active)
	suite.Assert().True(response.Data.SILTotal.Equal(decimal.RequireFromString("1000")))
}

func (suite *TestSuiteStandard) TestDeleteBudget() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})
	budget := suite.createTestBudget(models.Budget{TenantID: tenant.ID, ClientID: client.ID})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/budgets/%s", budget.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
