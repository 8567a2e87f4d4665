package repository

import (
	"encoding/json"
	"testing"
	"time"

	"assignment-engine/internal/database/models"
	"assignment-engine/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// AssignmentAuditRepositoryTestSuite tests the AssignmentAuditRepository
type AssignmentAuditRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentAuditRepository
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentAuditRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentAuditRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentAuditRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentAuditRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentAuditRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *AssignmentAuditRepositoryTestSuite) newAudit(tenantID uuid.UUID, recordID string) *models.AssignmentAudit {
	userID := uuid.New()
	ruleID := uuid.New()
	return &models.AssignmentAudit{
		TenantID:       tenantID,
		RecordType:     "lead",
		RecordID:       recordID,
		AssignedUserID: &userID,
		RuleID:         &ruleID,
		AssignmentType: models.AssignmentTypeRule,
		Details:        json.RawMessage(`{"rule_name":"enterprise-leads"}`),
	}
}

// TestCreate tests writing an audit row
func (suite *AssignmentAuditRepositoryTestSuite) TestCreate() {
	tenantID := uuid.New()
	audit := suite.newAudit(tenantID, "lead-001")

	suite.NoError(suite.repo.Create(audit))
	suite.NotEqual(uuid.Nil, audit.ID)

	found, err := suite.repo.GetByID(audit.ID)
	suite.NoError(err)
	suite.Equal(models.AssignmentTypeRule, found.AssignmentType)
	suite.Equal("lead-001", found.RecordID)
	suite.JSONEq(`{"rule_name":"enterprise-leads"}`, string(found.Details))
}

// TestGetByTenantID tests listing a tenant's audit trail newest first
func (suite *AssignmentAuditRepositoryTestSuite) TestGetByTenantID() {
	tenantID := uuid.New()

	older := suite.newAudit(tenantID, "lead-001")
	older.CreatedAt = time.Now().Add(-time.Hour)
	suite.NoError(suite.repo.Create(older))

	newer := suite.newAudit(tenantID, "lead-002")
	suite.NoError(suite.repo.Create(newer))

	// Another tenant's rows stay invisible
	suite.NoError(suite.repo.Create(suite.newAudit(uuid.New(), "lead-003")))

	audits, total, err := suite.repo.GetByTenantID(tenantID, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(audits, 2)
	suite.Equal(newer.ID, audits[0].ID)
	suite.Equal(older.ID, audits[1].ID)
}

// TestGetByRecord tests filtering the trail down to one record
func (suite *AssignmentAuditRepositoryTestSuite) TestGetByRecord() {
	tenantID := uuid.New()

	suite.NoError(suite.repo.Create(suite.newAudit(tenantID, "lead-001")))
	suite.NoError(suite.repo.Create(suite.newAudit(tenantID, "lead-001")))
	suite.NoError(suite.repo.Create(suite.newAudit(tenantID, "lead-002")))

	audits, total, err := suite.repo.GetByRecord(tenantID, "lead", "lead-001", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(audits, 2)
	for _, a := range audits {
		suite.Equal("lead-001", a.RecordID)
	}
}

// TestAssignmentAuditRepositoryTestSuite runs the test suite
func TestAssignmentAuditRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentAuditRepositoryTestSuite))
}
