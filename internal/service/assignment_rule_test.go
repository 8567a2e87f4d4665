package service_test

import (
	"encoding/json"
	"testing"
	"time"

	"assignment-engine/internal/database/models"
	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/repository"
	"assignment-engine/internal/service"
	"assignment-engine/internal/testutils"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentRuleServiceTestSuite tests the assignment rule service against a
// real database
type AssignmentRuleServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	svc           *service.AssignmentRuleService
	tenantRepo    *repository.TenantRepository
	ruleRepo      *repository.AssignmentRuleRepository
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentRuleServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()

	db := suite.baseTestSuite.DB
	suite.tenantRepo = repository.NewTenantRepository(db)
	suite.ruleRepo = repository.NewAssignmentRuleRepository(db)
	suite.svc = service.NewAssignmentRuleService(suite.ruleRepo, suite.tenantRepo, validator.New())
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentRuleServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentRuleServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentRuleServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentRuleServiceTestSuite) seedTenant() *models.Tenant {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(suite.tenantRepo.Create(tenant))
	return tenant
}

func userAction() models.AssignmentAction {
	userID := uuid.New()
	return models.AssignmentAction{Type: models.ActionAssignUser, UserID: &userID}
}

// TestCreate tests rule creation and its validation paths
func (suite *AssignmentRuleServiceTestSuite) TestCreate() {
	tenant := suite.seedTenant()

	suite.T().Run("Success", func(t *testing.T) {
		resp, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
			TenantID: tenant.ID,
			Name:     "web-leads",
			Priority: 5,
			Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
			Action:   userAction(),
		})
		suite.NoError(err)
		suite.Equal("web-leads", resp.Name)
		suite.Equal(5, resp.Priority)
		suite.True(resp.Active)
		suite.Equal(models.ActionAssignUser, resp.Action.Type)
	})

	suite.T().Run("Inactive On Create", func(t *testing.T) {
		inactive := false
		resp, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
			TenantID: tenant.ID,
			Name:     "paused-rule",
			Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"email"}`),
			Action:   userAction(),
			Active:   &inactive,
		})
		suite.NoError(err)
		suite.False(resp.Active)
	})

	suite.T().Run("Invalid Criteria JSON", func(t *testing.T) {
		_, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
			TenantID: tenant.ID,
			Name:     "broken",
			Criteria: json.RawMessage(`{"field":`),
			Action:   userAction(),
		})
		suite.ErrorIs(err, apperrors.ErrInvalidCriteria)
	})

	suite.T().Run("Invalid Action", func(t *testing.T) {
		_, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
			TenantID: tenant.ID,
			Name:     "no-target",
			Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
			Action:   models.AssignmentAction{Type: models.ActionAssignUser},
		})
		suite.ErrorIs(err, apperrors.ErrInvalidAssignmentAction)
	})

	suite.T().Run("Round Robin Needs Team", func(t *testing.T) {
		_, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
			TenantID: tenant.ID,
			Name:     "rotation-without-team",
			Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
			Action:   models.AssignmentAction{Type: models.ActionRoundRobin},
		})
		suite.ErrorIs(err, apperrors.ErrInvalidAssignmentAction)
	})

	suite.T().Run("Tenant Not Found", func(t *testing.T) {
		_, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
			TenantID: uuid.New(),
			Name:     "orphan",
			Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
			Action:   userAction(),
		})
		suite.ErrorIs(err, apperrors.ErrTenantNotFound)
	})
}

// TestUpdate tests partial updates and their validation paths
func (suite *AssignmentRuleServiceTestSuite) TestUpdate() {
	tenant := suite.seedTenant()
	created, err := suite.svc.Create(&service.CreateAssignmentRuleRequest{
		TenantID: tenant.ID,
		Name:     "original",
		Priority: 10,
		Criteria: json.RawMessage(`{"field":"source","op":"eq","value":"web"}`),
		Action:   userAction(),
	})
	suite.NoError(err)

	suite.T().Run("Partial Update Keeps Other Fields", func(t *testing.T) {
		priority := 3
		resp, err := suite.svc.Update(created.ID, &service.UpdateAssignmentRuleRequest{Priority: &priority})
		suite.NoError(err)
		suite.Equal(3, resp.Priority)
		suite.Equal("original", resp.Name)
		suite.JSONEq(string(created.Criteria), string(resp.Criteria))
	})

	suite.T().Run("Invalid Criteria Rejected", func(t *testing.T) {
		_, err := suite.svc.Update(created.ID, &service.UpdateAssignmentRuleRequest{
			Criteria: json.RawMessage(`not json`),
		})
		suite.ErrorIs(err, apperrors.ErrInvalidCriteria)
	})

	suite.T().Run("Not Found", func(t *testing.T) {
		name := "ghost"
		_, err := suite.svc.Update(uuid.New(), &service.UpdateAssignmentRuleRequest{Name: &name})
		suite.ErrorIs(err, apperrors.ErrAssignmentRuleNotFound)
	})
}

// TestSelectRule tests first-match selection over the ordered rule list
func (suite *AssignmentRuleServiceTestSuite) TestSelectRule() {
	tenant := suite.seedTenant()

	high := suite.factories.AssignmentRule.Create(tenant.ID)
	high.Priority = 1
	high.Criteria = json.RawMessage(`{"all":[{"field":"source","op":"eq","value":"web"},{"field":"region","op":"eq","value":"emea"}]}`)
	suite.NoError(suite.ruleRepo.Create(high))

	low := suite.factories.AssignmentRule.Create(tenant.ID)
	low.Priority = 10
	low.Criteria = json.RawMessage(`{"field":"source","op":"eq","value":"web"}`)
	suite.NoError(suite.ruleRepo.Create(low))

	suite.T().Run("Higher Priority Wins", func(t *testing.T) {
		rule, err := suite.svc.SelectRule(tenant.ID, map[string]interface{}{
			"source": "web",
			"region": "emea",
		})
		suite.NoError(err)
		suite.Require().NotNil(rule)
		suite.Equal(high.ID, rule.ID)
	})

	suite.T().Run("Falls Through To Next Rule", func(t *testing.T) {
		rule, err := suite.svc.SelectRule(tenant.ID, map[string]interface{}{
			"source": "web",
			"region": "apac",
		})
		suite.NoError(err)
		suite.Require().NotNil(rule)
		suite.Equal(low.ID, rule.ID)
	})

	suite.T().Run("No Match Returns Nil", func(t *testing.T) {
		rule, err := suite.svc.SelectRule(tenant.ID, map[string]interface{}{
			"source": "referral",
		})
		suite.NoError(err)
		suite.Nil(rule)
	})

	suite.T().Run("Malformed Criteria Skipped", func(t *testing.T) {
		broken := suite.factories.AssignmentRule.Create(tenant.ID)
		broken.Priority = 0
		broken.Criteria = json.RawMessage(`{"op":"eq","value":"web"}`)
		suite.NoError(suite.ruleRepo.Create(broken))

		rule, err := suite.svc.SelectRule(tenant.ID, map[string]interface{}{
			"source": "web",
		})
		suite.NoError(err)
		suite.Require().NotNil(rule)
		suite.Equal(low.ID, rule.ID)
	})
}

// TestPriorityTieOrder tests that equal priorities resolve by creation time
func (suite *AssignmentRuleServiceTestSuite) TestPriorityTieOrder() {
	tenant := suite.seedTenant()

	older := suite.factories.AssignmentRule.Create(tenant.ID)
	older.Priority = 5
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.ruleRepo.Create(older))

	newer := suite.factories.AssignmentRule.Create(tenant.ID)
	newer.Priority = 5
	suite.NoError(suite.ruleRepo.Create(newer))

	rule, err := suite.svc.SelectRule(tenant.ID, map[string]interface{}{"source": "web"})
	suite.NoError(err)
	suite.Require().NotNil(rule)
	suite.Equal(older.ID, rule.ID)
}

// TestAssignmentRuleServiceTestSuite runs the test suite
func TestAssignmentRuleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentRuleServiceTestSuite))
}
