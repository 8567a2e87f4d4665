package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"assignment-engine/internal/api/handlers"
	"assignment-engine/internal/database/models"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/mocks"
	"assignment-engine/internal/service"
	"assignment-engine/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentRuleHandlerTestSuite defines the test suite for AssignmentRuleHandler
type AssignmentRuleHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssignmentRuleServiceInterface
	handler     *handlers.AssignmentRuleHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AssignmentRuleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssignmentRuleServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewAssignmentRuleHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	rules := v1.Group("/assignment-rules")
	{
		rules.POST("", suite.handler.CreateRule)
		rules.GET("/:id", suite.handler.GetRule)
		rules.PUT("/:id", suite.handler.UpdateRule)
		rules.DELETE("/:id", suite.handler.DeleteRule)
	}
	v1.GET("/tenants/:tenantId/assignment-rules", suite.handler.ListRules)
}

// TearDownTest cleans up after each test
func (suite *AssignmentRuleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// Helper method to make invalid JSON requests
func (suite *AssignmentRuleHandlerTestSuite) makeInvalidJSONRequest(method, url string) *httptest.ResponseRecorder {
	req, _ := http.NewRequest(method, url, bytes.NewBufferString("invalid json"))
	req.Header.Set("Content-Type", "application/json")

	recorder := httptest.NewRecorder()
	suite.httpSuite.Router.ServeHTTP(recorder, req)

	return recorder
}

func ruleResponse(tenantID uuid.UUID) *service.AssignmentRuleResponse {
	targetTeam := uuid.New()
	return &service.AssignmentRuleResponse{
		ID:       uuid.New(),
		TenantID: tenantID,
		Name:     "enterprise-leads",
		Priority: 1,
		Criteria: json.RawMessage(`{"all":[{"field":"lead_source","op":"eq","value":"webinar"},{"field":"company_size","op":"gte","value":500}]}`),
		Action: models.AssignmentAction{
			Type:   models.ActionAssignTeam,
			TeamID: &targetTeam,
		},
		Active:    true,
		CreatedAt: "2026-01-01T00:00:00Z",
		UpdatedAt: "2026-01-01T00:00:00Z",
	}
}

// TestCreateRule tests the CreateRule handler
func (suite *AssignmentRuleHandlerTestSuite) TestCreateRule() {
	suite.T().Run("Success", func(t *testing.T) {
		tenantID := uuid.New()
		expectedResponse := ruleResponse(tenantID)

		requestBody := map[string]interface{}{
			"tenant_id": tenantID.String(),
			"name":      "enterprise-leads",
			"priority":  1,
			"criteria":  json.RawMessage(`{"field":"lead_source","op":"eq","value":"webinar"}`),
			"action": map[string]interface{}{
				"type":    "team",
				"team_id": expectedResponse.Action.TeamID.String(),
			},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/assignment-rules", requestBody)

		assert.Equal(t, http.StatusCreated, recorder.Code)

		var response service.AssignmentRuleResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.Name, response.Name)
		assert.Equal(t, expectedResponse.Priority, response.Priority)
		assert.Equal(t, models.ActionAssignTeam, response.Action.Type)
	})

	suite.T().Run("Tenant Not Found", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"tenant_id": uuid.New().String(),
			"name":      "orphan-rule",
			"criteria":  json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
			"action":    map[string]interface{}{"type": "round_robin", "team_id": uuid.New().String()},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrTenantNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/assignment-rules", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "tenant not found")
	})

	suite.T().Run("Invalid Criteria", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"tenant_id": uuid.New().String(),
			"name":      "broken-rule",
			"criteria":  json.RawMessage(`"not an object"`),
			"action":    map[string]interface{}{"type": "user", "user_id": uuid.New().String()},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrInvalidCriteria).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/assignment-rules", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "criteria is not valid JSON")
	})

	suite.T().Run("Invalid Action", func(t *testing.T) {
		requestBody := map[string]interface{}{
			"tenant_id": uuid.New().String(),
			"name":      "no-target",
			"criteria":  json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
			"action":    map[string]interface{}{"type": "user"},
		}

		suite.mockService.EXPECT().
			Create(gomock.Any()).
			Return(nil, apperrors.ErrInvalidAssignmentAction).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/assignment-rules", requestBody)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid assignment action")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("POST", "/api/v1/assignment-rules")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestGetRule tests the GetRule handler
func (suite *AssignmentRuleHandlerTestSuite) TestGetRule() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := ruleResponse(uuid.New())

		suite.mockService.EXPECT().
			GetByID(expectedResponse.ID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/assignment-rules/"+expectedResponse.ID.String(), nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AssignmentRuleResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, expectedResponse.ID, response.ID)
		assert.JSONEq(t, string(expectedResponse.Criteria), string(response.Criteria))
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			GetByID(ruleID).
			Return(nil, apperrors.ErrAssignmentRuleNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/assignment-rules/"+ruleID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "assignment rule not found")
	})

	suite.T().Run("Invalid ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/assignment-rules/not-a-uuid", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid rule ID")
	})
}

// TestListRules tests the ListRules handler
func (suite *AssignmentRuleHandlerTestSuite) TestListRules() {
	suite.T().Run("Success", func(t *testing.T) {
		tenantID := uuid.New()
		first := ruleResponse(tenantID)
		second := ruleResponse(tenantID)
		second.Name = "inbound-rotation"
		second.Priority = 10

		expectedResponse := &service.AssignmentRuleListResponse{
			Rules:    []service.AssignmentRuleResponse{*first, *second},
			Total:    2,
			Page:     1,
			PageSize: 20,
		}

		suite.mockService.EXPECT().
			GetByTenant(tenantID, 1, 20).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+tenantID.String()+"/assignment-rules", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AssignmentRuleListResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Len(t, response.Rules, 2)
		assert.Equal(t, int64(2), response.Total)
	})

	suite.T().Run("Custom Pagination", func(t *testing.T) {
		tenantID := uuid.New()

		suite.mockService.EXPECT().
			GetByTenant(tenantID, 3, 5).
			Return(&service.AssignmentRuleListResponse{Rules: []service.AssignmentRuleResponse{}, Page: 3, PageSize: 5}, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+tenantID.String()+"/assignment-rules?page=3&page_size=5", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("Invalid Pagination", func(t *testing.T) {
		tenantID := uuid.New()

		suite.mockService.EXPECT().
			GetByTenant(tenantID, gomock.Any(), gomock.Any()).
			Return(nil, apperrors.ErrInvalidPaginationParams).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+tenantID.String()+"/assignment-rules?page=0", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid pagination parameters")
	})

	suite.T().Run("Invalid Tenant ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/nope/assignment-rules", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid tenant ID")
	})
}

// TestUpdateRule tests the UpdateRule handler
func (suite *AssignmentRuleHandlerTestSuite) TestUpdateRule() {
	suite.T().Run("Success", func(t *testing.T) {
		expectedResponse := ruleResponse(uuid.New())
		expectedResponse.Priority = 5

		requestBody := map[string]interface{}{
			"priority": 5,
		}

		suite.mockService.EXPECT().
			Update(expectedResponse.ID, gomock.Any()).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/assignment-rules/"+expectedResponse.ID.String(), requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AssignmentRuleResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, 5, response.Priority)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			Update(ruleID, gomock.Any()).
			Return(nil, apperrors.ErrAssignmentRuleNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/assignment-rules/"+ruleID.String(), map[string]interface{}{"priority": 2})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "assignment rule not found")
	})

	suite.T().Run("Invalid Criteria", func(t *testing.T) {
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			Update(ruleID, gomock.Any()).
			Return(nil, apperrors.ErrInvalidCriteria).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/assignment-rules/"+ruleID.String(), map[string]interface{}{
			"criteria": json.RawMessage(`42`),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "criteria is not valid JSON")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		recorder := suite.makeInvalidJSONRequest("PUT", "/api/v1/assignment-rules/"+uuid.New().String())

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestDeleteRule tests the DeleteRule handler
func (suite *AssignmentRuleHandlerTestSuite) TestDeleteRule() {
	suite.T().Run("Success", func(t *testing.T) {
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			Delete(ruleID).
			Return(nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/assignment-rules/"+ruleID.String(), nil)

		assert.Equal(t, http.StatusNoContent, recorder.Code)
		assert.Empty(t, recorder.Body.String())
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			Delete(ruleID).
			Return(apperrors.ErrAssignmentRuleNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/assignment-rules/"+ruleID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "assignment rule not found")
	})

	suite.T().Run("Service Error", func(t *testing.T) {
		ruleID := uuid.New()

		suite.mockService.EXPECT().
			Delete(ruleID).
			Return(fmt.Errorf("database connection lost")).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("DELETE", "/api/v1/assignment-rules/"+ruleID.String(), nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "database connection lost")
	})
}

// TestAssignmentRuleHandlerTestSuite runs the test suite
func TestAssignmentRuleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRuleHandlerTestSuite))
}
