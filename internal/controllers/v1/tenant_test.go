package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/carebridge/backend/internal/controllers/v1"
	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/test"
)

func (suite *TestSuiteStandard) TestCreateTenants() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/tenants", `[{ "name": "Sunrise Care Services", "note": "Provider for the northern region" }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.TenantCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 1) {
		suite.Assert().FailNow("Response length does not match!")
	}

	tenant := response.Data[0]
	suite.Assert().Nil(tenant.Error)
	suite.Assert().Equal("Sunrise Care Services", tenant.Data.Name)
	suite.Assert().Equal("AUD", tenant.Data.Currency, "Currency must default to AUD")
}

func (suite *TestSuiteStandard) TestCreateTenantsInvalidCurrency() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/tenants", `[{ "name": "Sunrise Care Services", "currency": "Seashells" }]`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TenantCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Contains(*response.Data[0].Error, "the currency must be a valid ISO 4217 code")
}

func (suite *TestSuiteStandard) TestCreateTenantsNoBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/tenants", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.TenantCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestGetTenants() {
	suite.createTestTenant(models.Tenant{Name: "Sunrise Care Services"})
	suite.createTestTenant(models.Tenant{Name: "Harbour Support"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/tenants", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TenantListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 2) {
		suite.Assert().FailNow("Response length does not match!")
	}

	// Tenants are sorted by name
	suite.Assert().Equal("Harbour Support", response.Data[0].Name)
	suite.Assert().Equal(int64(2), response.Pagination.Total)
}

func (suite *TestSuiteStandard) TestGetTenantsFilter() {
	suite.createTestTenant(models.Tenant{Name: "Sunrise Care Services", Note: "Northern region"})
	suite.createTestTenant(models.Tenant{Name: "Harbour Support"})

	tests := []struct {
		query string
		count int
	}{
		{"name=Sunrise Care Services", 1},
		{"name=Sunrise", 1},
		{"name=Lighthouse", 0},
		{"search=sunrise", 1},
		{"search=region", 1},
		{"note=", 1},
		{"limit=1", 2},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.TenantListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		if tt.query == "limit=1" {
			suite.Assert().Len(response.Data, 1)
			suite.Assert().Equal(int64(tt.count), response.Pagination.Total)
			continue
		}

		suite.Assert().Len(response.Data, tt.count, "Wrong number of tenants for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestGetTenant() {
	tenant := suite.createTestTenant(models.Tenant{Name: "Sunrise Care Services"})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants/%s", tenant.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TenantResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal(tenant.ID, response.Data.ID)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/tenants/%s", tenant.ID), response.Data.Links.Self)
	suite.Assert().Equal(fmt.Sprintf("http://example.com/v1/clients?tenant=%s", tenant.ID), response.Data.Links.Clients)
}

func (suite *TestSuiteStandard) TestGetTenantNotFound() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/tenants/d1898c72-9988-46d7-ab32-6b179601684a", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}

func (suite *TestSuiteStandard) TestGetTenantInvalidID() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "http://example.com/v1/tenants/not-a-uuid", "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)
}

func (suite *TestSuiteStandard) TestUpdateTenant() {
	tenant := suite.createTestTenant(models.Tenant{Name: "Sunrise Care Services", Note: "Northern region"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/tenants/%s", tenant.ID), `{ "name": "Sunset Care Services" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.TenantResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Assert().Equal("Sunset Care Services", response.Data.Name)
	suite.Assert().Equal("Northern region", response.Data.Note, "Fields not in the body must be untouched")
}

func (suite *TestSuiteStandard) TestDeleteTenant() {
	tenant := suite.createTestTenant(models.Tenant{Name: "Sunrise Care Services"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/tenants/%s", tenant.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/tenants/%s", tenant.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
