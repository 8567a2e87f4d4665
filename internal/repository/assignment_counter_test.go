package repository

import (
	"sort"
	"sync"
	"testing"

	"assignment-engine/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// AssignmentCounterRepositoryTestSuite tests the AssignmentCounterRepository
type AssignmentCounterRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *AssignmentCounterRepository
}

// SetupSuite runs before all tests in the suite
func (suite *AssignmentCounterRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewAssignmentCounterRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *AssignmentCounterRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *AssignmentCounterRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *AssignmentCounterRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestIncrementAndGetFreshCounter tests that the first increment on a new
// scope creates the row and returns 1
func (suite *AssignmentCounterRepositoryTestSuite) TestIncrementAndGetFreshCounter() {
	tenantID := uuid.New()
	teamID := uuid.New()

	value, err := suite.repo.IncrementAndGet(tenantID, teamID, uuid.Nil)
	suite.NoError(err)
	suite.Equal(int64(1), value)

	counter, err := suite.repo.Get(tenantID, teamID, uuid.Nil)
	suite.NoError(err)
	suite.Equal(int64(1), counter.Counter)
}

// TestIncrementAndGetSequential tests that repeated increments return
// consecutive values
func (suite *AssignmentCounterRepositoryTestSuite) TestIncrementAndGetSequential() {
	tenantID := uuid.New()
	teamID := uuid.New()

	for i := int64(1); i <= 5; i++ {
		value, err := suite.repo.IncrementAndGet(tenantID, teamID, uuid.Nil)
		suite.NoError(err)
		suite.Equal(i, value)
	}
}

// TestIncrementAndGetScopeIsolation tests that counters for different scopes
// advance independently
func (suite *AssignmentCounterRepositoryTestSuite) TestIncrementAndGetScopeIsolation() {
	tenantID := uuid.New()
	teamA := uuid.New()
	teamB := uuid.New()

	v1, err := suite.repo.IncrementAndGet(tenantID, teamA, uuid.Nil)
	suite.NoError(err)
	v2, err := suite.repo.IncrementAndGet(tenantID, teamA, uuid.Nil)
	suite.NoError(err)
	v3, err := suite.repo.IncrementAndGet(tenantID, teamB, uuid.Nil)
	suite.NoError(err)

	suite.Equal(int64(1), v1)
	suite.Equal(int64(2), v2)
	suite.Equal(int64(1), v3)

	// Same team under another tenant is its own scope too
	otherTenant := uuid.New()
	v4, err := suite.repo.IncrementAndGet(otherTenant, teamA, uuid.Nil)
	suite.NoError(err)
	suite.Equal(int64(1), v4)
}

// TestIncrementAndGetConcurrent tests that concurrent increments never lose
// updates or hand out duplicate values
func (suite *AssignmentCounterRepositoryTestSuite) TestIncrementAndGetConcurrent() {
	tenantID := uuid.New()
	teamID := uuid.New()

	const workers = 20
	values := make([]int64, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			values[i], errs[i] = suite.repo.IncrementAndGet(tenantID, teamID, uuid.Nil)
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		suite.NoError(errs[i])
	}

	sort.Slice(values, func(i, j int) bool { return values[i] < values[j] })
	for i := 0; i < workers; i++ {
		suite.Equal(int64(i+1), values[i])
	}
}

// TestReset tests resetting an existing counter back to zero
func (suite *AssignmentCounterRepositoryTestSuite) TestReset() {
	tenantID := uuid.New()
	teamID := uuid.New()

	_, err := suite.repo.IncrementAndGet(tenantID, teamID, uuid.Nil)
	suite.NoError(err)
	_, err = suite.repo.IncrementAndGet(tenantID, teamID, uuid.Nil)
	suite.NoError(err)

	err = suite.repo.Reset(tenantID, teamID, uuid.Nil)
	suite.NoError(err)

	// Next increment starts the rotation over
	value, err := suite.repo.IncrementAndGet(tenantID, teamID, uuid.Nil)
	suite.NoError(err)
	suite.Equal(int64(1), value)
}

// TestResetMissingCounter tests that resetting an unknown scope reports not found
func (suite *AssignmentCounterRepositoryTestSuite) TestResetMissingCounter() {
	err := suite.repo.Reset(uuid.New(), uuid.New(), uuid.Nil)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByTenantID tests listing all counters for a tenant
func (suite *AssignmentCounterRepositoryTestSuite) TestGetByTenantID() {
	tenantID := uuid.New()

	_, err := suite.repo.IncrementAndGet(tenantID, uuid.New(), uuid.Nil)
	suite.NoError(err)
	_, err = suite.repo.IncrementAndGet(tenantID, uuid.Nil, uuid.New())
	suite.NoError(err)
	_, err = suite.repo.IncrementAndGet(uuid.New(), uuid.New(), uuid.Nil)
	suite.NoError(err)

	counters, err := suite.repo.GetByTenantID(tenantID)
	suite.NoError(err)
	suite.Len(counters, 2)
	for _, c := range counters {
		suite.Equal(tenantID, c.TenantID)
	}
}

// TestAssignmentCounterRepositoryTestSuite runs the test suite
func TestAssignmentCounterRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(AssignmentCounterRepositoryTestSuite))
}
