package v1_test

import (
	"fmt"
	"net/http"

	v1 "github.com/carebridge/backend/internal/controllers/v1"
	"github.com/carebridge/backend/internal/models"
	"github.com/carebridge/backend/test"
)

func (suite *TestSuiteStandard) TestCreateClients() {
	tenant := suite.createTestTenant(models.Tenant{})

	body := fmt.Sprintf(`[{ "tenantId": "%s", "name": "Riley Morgan", "ndisNumber": "430123456" }]`, tenant.ID)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/clients", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)

	var response v1.ClientCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	if !suite.Assert().Len(response.Data, 1) {
		suite.Assert().FailNow("Response length does not match!")
	}

	client := response.Data[0]
	suite.Assert().Nil(client.Error)
	suite.Assert().Equal("Riley Morgan", client.Data.Name)
	suite.Assert().Equal(tenant.ID, client.Data.TenantID)
}

func (suite *TestSuiteStandard) TestCreateClientsDuplicateNDISNumber() {
	tenant := suite.createTestTenant(models.Tenant{})
	suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})

	body := fmt.Sprintf(`[{ "tenantId": "%s", "name": "Riley Morgan", "ndisNumber": "430123456" }]`, tenant.ID)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/clients", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusBadRequest)

	var response v1.ClientCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("a client with this NDIS number already exists for this tenant", *response.Data[0].Error)
}

// The same NDIS number may exist for different tenants.
func (suite *TestSuiteStandard) TestCreateClientsNDISNumberPerTenant() {
	tenantOne := suite.createTestTenant(models.Tenant{Name: "Tenant One"})
	tenantTwo := suite.createTestTenant(models.Tenant{Name: "Tenant Two"})
	suite.createTestClient(models.Client{TenantID: tenantOne.ID, NDISNumber: "430123456"})

	body := fmt.Sprintf(`[{ "tenantId": "%s", "name": "Riley Morgan", "ndisNumber": "430123456" }]`, tenantTwo.ID)
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "http://example.com/v1/clients", body)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusCreated)
}

func (suite *TestSuiteStandard) TestGetClientsFilter() {
	tenant := suite.createTestTenant(models.Tenant{})
	other := suite.createTestTenant(models.Tenant{Name: "Other Care Provider"})

	suite.createTestClient(models.Client{TenantID: tenant.ID, Name: "Riley Morgan", NDISNumber: "430123456"})
	suite.createTestClient(models.Client{TenantID: tenant.ID, Name: "Alex Chen", NDISNumber: "430987654"})
	suite.createTestClient(models.Client{TenantID: other.ID, Name: "Jordan Lee", NDISNumber: "430123456"})

	tests := []struct {
		query string
		count int
	}{
		{fmt.Sprintf("tenant=%s", tenant.ID), 2},
		{fmt.Sprintf("tenant=%s", other.ID), 1},
		{"ndisNumber=430123456", 2},
		{"name=Riley", 1},
		{"search=chen", 1},
	}

	for _, tt := range tests {
		recorder := test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/clients?%s", tt.query), "")
		test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

		var response v1.ClientListResponse
		test.DecodeResponse(suite.T(), &recorder, &response)

		suite.Assert().Len(response.Data, tt.count, "Wrong number of clients for query %q", tt.query)
	}
}

func (suite *TestSuiteStandard) TestUpdateClient() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, Name: "Riley Morgan", NDISNumber: "430123456"})

	recorder := test.Request(suite.T(), suite.router, http.MethodPatch, fmt.Sprintf("http://example.com/v1/clients/%s", client.ID), `{ "note": "Prefers morning shifts" }`)
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusOK)

	var response v1.ClientResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Assert().Equal("Prefers morning shifts", response.Data.Note)
	suite.Assert().Equal("Riley Morgan", response.Data.Name)
}

func (suite *TestSuiteStandard) TestDeleteClient() {
	tenant := suite.createTestTenant(models.Tenant{})
	client := suite.createTestClient(models.Client{TenantID: tenant.ID, NDISNumber: "430123456"})

	recorder := test.Request(suite.T(), suite.router, http.MethodDelete, fmt.Sprintf("http://example.com/v1/clients/%s", client.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNoContent)

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, fmt.Sprintf("http://example.com/v1/clients/%s", client.ID), "")
	test.AssertHTTPStatus(suite.T(), &recorder, http.StatusNotFound)
}
