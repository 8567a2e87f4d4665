package service_test

import (
	"testing"
	"time"

	"assignment-engine/internal/database/models"
	"assignment-engine/internal/repository"
	"assignment-engine/internal/service"
	"assignment-engine/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// RoundRobinServiceTestSuite tests rotation over a team roster
type RoundRobinServiceTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	factories     *testutils.FactorySet
	svc           *service.RoundRobinService
	memberRepo    *repository.MemberRepository
}

// SetupSuite runs before all tests in the suite
func (suite *RoundRobinServiceTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	counterRepo := repository.NewAssignmentCounterRepository(suite.baseTestSuite.DB)
	suite.memberRepo = repository.NewMemberRepository(suite.baseTestSuite.DB)
	suite.svc = service.NewRoundRobinService(counterRepo, suite.memberRepo)
}

// TearDownSuite runs after all tests in the suite
func (suite *RoundRobinServiceTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RoundRobinServiceTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RoundRobinServiceTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// seedRoster creates a tenant, a team, and n active members with staggered
// creation times so roster order is fixed. Returns the member IDs in roster order.
func (suite *RoundRobinServiceTestSuite) seedRoster(n int) (uuid.UUID, uuid.UUID, []uuid.UUID) {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(repository.NewTenantRepository(suite.baseTestSuite.DB).Create(tenant))

	team := suite.factories.Team.WithTenant(tenant.ID)
	suite.NoError(repository.NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	ids := make([]uuid.UUID, 0, n)
	base := time.Now().Add(-time.Duration(n) * time.Hour)
	for i := 0; i < n; i++ {
		member := suite.factories.Member.WithTeam(tenant.ID, team.ID)
		member.CreatedAt = base.Add(time.Duration(i) * time.Hour)
		suite.NoError(suite.memberRepo.Create(member))
		ids = append(ids, member.ID)
	}
	return tenant.ID, team.ID, ids
}

// TestRotationSequence tests that a fresh counter starts the rotation at the
// second roster slot and then wraps: B, C, A, B for roster [A, B, C]
func (suite *RoundRobinServiceTestSuite) TestRotationSequence() {
	tenantID, teamID, roster := suite.seedRoster(3)

	expected := []uuid.UUID{roster[1], roster[2], roster[0], roster[1]}
	for i, want := range expected {
		got, counter, err := suite.svc.NextUserForTeam(tenantID, teamID)
		suite.NoError(err)
		suite.NotNil(got)
		suite.Equal(want, *got, "pick %d", i)
		suite.Equal(int64(i+1), counter)
	}
}

// TestSingleMemberRoster tests that a one-member roster always picks that member
func (suite *RoundRobinServiceTestSuite) TestSingleMemberRoster() {
	tenantID, teamID, roster := suite.seedRoster(1)

	for i := 0; i < 3; i++ {
		got, _, err := suite.svc.NextUserForTeam(tenantID, teamID)
		suite.NoError(err)
		suite.Equal(roster[0], *got)
	}
}

// TestEmptyRoster tests that an empty roster yields no user and no error,
// and does not advance the counter
func (suite *RoundRobinServiceTestSuite) TestEmptyRoster() {
	tenant := suite.factories.Tenant.Create()
	suite.NoError(repository.NewTenantRepository(suite.baseTestSuite.DB).Create(tenant))
	team := suite.factories.Team.WithTenant(tenant.ID)
	suite.NoError(repository.NewTeamRepository(suite.baseTestSuite.DB).Create(team))

	got, counter, err := suite.svc.NextUserForTeam(tenant.ID, team.ID)
	suite.NoError(err)
	suite.Nil(got)
	suite.Equal(int64(0), counter)

	var count int64
	suite.NoError(suite.baseTestSuite.DB.Model(&models.AssignmentCounter{}).
		Where("tenant_id = ?", tenant.ID).Count(&count).Error)
	suite.Equal(int64(0), count)
}

// TestInactiveMembersSkipped tests that deactivated members drop out of the
// rotation entirely
func (suite *RoundRobinServiceTestSuite) TestInactiveMembersSkipped() {
	tenantID, teamID, roster := suite.seedRoster(3)

	// Deactivate the middle member; rotation over [A, C] picks C first
	member, err := suite.memberRepo.GetByID(roster[1])
	suite.NoError(err)
	member.IsActive = false
	suite.NoError(suite.memberRepo.Update(member))

	got, _, err := suite.svc.NextUserForTeam(tenantID, teamID)
	suite.NoError(err)
	suite.Equal(roster[2], *got)

	got, _, err = suite.svc.NextUserForTeam(tenantID, teamID)
	suite.NoError(err)
	suite.Equal(roster[0], *got)
}

// TestRoundRobinServiceTestSuite runs the test suite
func TestRoundRobinServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RoundRobinServiceTestSuite))
}
