package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"assignment-engine/internal/api/handlers"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/mocks"
	"assignment-engine/internal/service"
	"assignment-engine/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AssignmentDefaultHandlerTestSuite defines the test suite for AssignmentDefaultHandler
type AssignmentDefaultHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockAssignmentDefaultServiceInterface
	handler     *handlers.AssignmentDefaultHandler
	httpSuite   *testutils.HTTPTestSuite
}

// SetupTest sets up the test suite
func (suite *AssignmentDefaultHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockAssignmentDefaultServiceInterface(suite.ctrl)

	// Create handler with mock service
	suite.handler = handlers.NewAssignmentDefaultHandler(suite.mockService)

	// Setup HTTP test suite
	suite.httpSuite = testutils.SetupHTTPTest()

	// Register routes
	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.GET("/tenants/:tenantId/assignment-defaults", suite.handler.GetDefaults)
	v1.PUT("/tenants/:tenantId/assignment-defaults", suite.handler.UpdateDefaults)
}

// TearDownTest cleans up after each test
func (suite *AssignmentDefaultHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestGetDefaults tests the GetDefaults handler
func (suite *AssignmentDefaultHandlerTestSuite) TestGetDefaults() {
	suite.T().Run("Success", func(t *testing.T) {
		tenantID := uuid.New()
		teamID := uuid.New()

		expectedResponse := &service.AssignmentDefaultResponse{
			ID:                        uuid.New(),
			TenantID:                  tenantID,
			DefaultTeamID:             &teamID,
			RoundRobinEnabled:         true,
			EnableAutomaticAssignment: true,
		}

		suite.mockService.EXPECT().
			GetForTenant(tenantID).
			Return(expectedResponse, nil).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+tenantID.String()+"/assignment-defaults", nil)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AssignmentDefaultResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.Equal(t, tenantID, response.TenantID)
		assert.True(t, response.RoundRobinEnabled)
		assert.Equal(t, teamID, *response.DefaultTeamID)
	})

	suite.T().Run("Tenant Not Found", func(t *testing.T) {
		tenantID := uuid.New()

		suite.mockService.EXPECT().
			GetForTenant(tenantID).
			Return(nil, apperrors.ErrTenantNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/"+tenantID.String()+"/assignment-defaults", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "tenant not found")
	})

	suite.T().Run("Invalid Tenant ID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/tenants/bad-id/assignment-defaults", nil)

		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid tenant ID")
	})
}

// TestUpdateDefaults tests the UpdateDefaults handler
func (suite *AssignmentDefaultHandlerTestSuite) TestUpdateDefaults() {
	suite.T().Run("Success", func(t *testing.T) {
		tenantID := uuid.New()
		userID := uuid.New()

		requestBody := map[string]interface{}{
			"default_user_id":             userID.String(),
			"enable_automatic_assignment": false,
		}

		expectedResponse := &service.AssignmentDefaultResponse{
			ID:                        uuid.New(),
			TenantID:                  tenantID,
			DefaultUserID:             &userID,
			EnableAutomaticAssignment: false,
		}

		suite.mockService.EXPECT().
			Update(tenantID, gomock.Any()).
			DoAndReturn(func(id uuid.UUID, req *service.UpdateAssignmentDefaultRequest) (*service.AssignmentDefaultResponse, error) {
				assert.Equal(t, userID, *req.DefaultUserID)
				assert.False(t, *req.EnableAutomaticAssignment)
				return expectedResponse, nil
			}).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/tenants/"+tenantID.String()+"/assignment-defaults", requestBody)

		assert.Equal(t, http.StatusOK, recorder.Code)

		var response service.AssignmentDefaultResponse
		testutils.ParseJSONResponse(t, recorder, &response)
		assert.False(t, response.EnableAutomaticAssignment)
		assert.Equal(t, userID, *response.DefaultUserID)
	})

	suite.T().Run("Default User Not Found", func(t *testing.T) {
		tenantID := uuid.New()

		suite.mockService.EXPECT().
			Update(tenantID, gomock.Any()).
			Return(nil, apperrors.ErrMemberNotFound).
			Times(1)

		recorder := suite.httpSuite.MakeRequest("PUT", "/api/v1/tenants/"+tenantID.String()+"/assignment-defaults", map[string]interface{}{
			"default_user_id": uuid.New().String(),
		})

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "member not found")
	})

	suite.T().Run("Invalid JSON", func(t *testing.T) {
		req, _ := http.NewRequest("PUT", "/api/v1/tenants/"+uuid.New().String()+"/assignment-defaults", bytes.NewBufferString("invalid json"))
		req.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		suite.httpSuite.Router.ServeHTTP(recorder, req)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

// TestAssignmentDefaultHandlerTestSuite runs the test suite
func TestAssignmentDefaultHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentDefaultHandlerTestSuite))
}
