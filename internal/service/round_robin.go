package service

import (
	"fmt"

	"assignment-engine/internal/repository"

	"github.com/google/uuid"
)

// RoundRobinService rotates assignments through a team's active roster using
// the tenant-scoped monotonic counters.
type RoundRobinService struct {
	counterRepo *repository.AssignmentCounterRepository
	memberRepo  *repository.MemberRepository
}

// NewRoundRobinService creates a new round robin service
func NewRoundRobinService(counterRepo *repository.AssignmentCounterRepository, memberRepo *repository.MemberRepository) *RoundRobinService {
	return &RoundRobinService{
		counterRepo: counterRepo,
		memberRepo:  memberRepo,
	}
}

// NextUserForTeam returns the next member of the team's active roster and
// the counter value that selected it. An empty roster yields (nil, 0, nil):
// no assignment, not an error. A counter failure is returned as-is so the
// caller can abort its transaction.
//
// The index is counter mod roster length. A fresh counter returns 1 on its
// first increment, so the first pick from roster [A, B, C] is B, then C,
// then A. That skip of index 0 matches the long-standing rotation behavior
// tenants already rely on; do not "fix" it.
func (s *RoundRobinService) NextUserForTeam(tenantID, teamID uuid.UUID) (*uuid.UUID, int64, error) {
	roster, err := s.memberRepo.GetActiveTeamRoster(tenantID, teamID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to load team roster: %w", err)
	}
	if len(roster) == 0 {
		return nil, 0, nil
	}

	value, err := s.counterRepo.IncrementAndGet(tenantID, teamID, uuid.Nil)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to increment assignment counter: %w", err)
	}

	index := value % int64(len(roster))
	userID := roster[index]
	return &userID, value, nil
}
