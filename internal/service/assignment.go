package service

import (
	"encoding/json"
	"fmt"

	"assignment-engine/internal/criteria"
	"assignment-engine/internal/database/models"
	"assignment-engine/internal/logger"
	"assignment-engine/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssignmentService orchestrates one assignment decision per record event:
// defaults gate, ordered rule scan, round-robin or default fallback, then
// the record-assignment upsert and the audit append. Everything that
// mutates state runs inside a single database transaction, so a counter or
// audit failure rolls the whole decision back and the record stays
// unassigned.
type AssignmentService struct {
	db        *gorm.DB
	validator *validator.Validate
	log       *logger.Logger
}

// NewAssignmentService creates a new assignment service
func NewAssignmentService(db *gorm.DB, validator *validator.Validate) *AssignmentService {
	return &AssignmentService{
		db:        db,
		validator: validator,
		log:       logger.New(),
	}
}

// AssignRecordRequest is supplied by record lifecycle hooks: the tenant, a
// record reference, and the record's flattened field map.
type AssignRecordRequest struct {
	TenantID   uuid.UUID              `json:"tenant_id" validate:"required"`
	RecordType string                 `json:"record_type" validate:"required,min=1,max=100"`
	RecordID   string                 `json:"record_id" validate:"required,min=1,max=100"`
	Fields     map[string]interface{} `json:"fields"`
}

// AssignmentResult reports the terminal outcome of one decision
type AssignmentResult struct {
	Assigned       bool                  `json:"assigned"`
	AssignedUserID *uuid.UUID            `json:"assigned_user_id,omitempty"`
	AssignedTeamID *uuid.UUID            `json:"assigned_team_id,omitempty"`
	RuleID         *uuid.UUID            `json:"rule_id,omitempty"`
	AssignmentType models.AssignmentType `json:"assignment_type,omitempty"`
	AuditID        *uuid.UUID            `json:"audit_id,omitempty"`
}

// Assign runs one assignment decision for a record. The decision is
// single-step and terminal: the record ends up rule-assigned, round-robin
// assigned, default-assigned, or left unassigned. Criteria errors are
// treated as non-matches; counter and audit errors abort the transaction.
func (s *AssignmentService) Assign(req *AssignRecordRequest) (*AssignmentResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	result := &AssignmentResult{}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		defaultRepo := repository.NewAssignmentDefaultRepository(tx)
		ruleRepo := repository.NewAssignmentRuleRepository(tx)
		memberRepo := repository.NewMemberRepository(tx)
		counterRepo := repository.NewAssignmentCounterRepository(tx)
		roundRobin := NewRoundRobinService(counterRepo, memberRepo)

		defaults, err := defaultRepo.GetOrCreate(req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load assignment defaults: %w", err)
		}

		// Automatic assignment switched off: leave the record alone and
		// write nothing, not even an audit row.
		if !defaults.EnableAutomaticAssignment {
			return nil
		}

		rules, err := ruleRepo.GetActiveOrdered(req.TenantID)
		if err != nil {
			return fmt.Errorf("failed to load assignment rules: %w", err)
		}

		decision, err := s.decide(req, rules, defaults, roundRobin)
		if err != nil {
			return err
		}
		if decision == nil {
			// No rule matched and no usable fallback: terminal, unassigned.
			return nil
		}

		recordRepo := repository.NewRecordAssignmentRepository(tx)
		if err := recordRepo.Upsert(&models.RecordAssignment{
			TenantID:       req.TenantID,
			RecordType:     req.RecordType,
			RecordID:       req.RecordID,
			AssignedUserID: decision.userID,
			AssignedTeamID: decision.teamID,
		}); err != nil {
			return fmt.Errorf("failed to persist record assignment: %w", err)
		}

		audit := &models.AssignmentAudit{
			TenantID:       req.TenantID,
			RecordType:     req.RecordType,
			RecordID:       req.RecordID,
			AssignedUserID: decision.userID,
			AssignedTeamID: decision.teamID,
			RuleID:         decision.ruleID,
			AssignmentType: decision.assignmentType,
			Details:        decision.details,
		}
		auditRepo := repository.NewAssignmentAuditRepository(tx)
		if err := auditRepo.Create(audit); err != nil {
			return fmt.Errorf("failed to write assignment audit: %w", err)
		}

		result.Assigned = true
		result.AssignedUserID = decision.userID
		result.AssignedTeamID = decision.teamID
		result.RuleID = decision.ruleID
		result.AssignmentType = decision.assignmentType
		result.AuditID = &audit.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// decision is the resolved target before it is persisted
type decision struct {
	userID         *uuid.UUID
	teamID         *uuid.UUID
	ruleID         *uuid.UUID
	assignmentType models.AssignmentType
	details        json.RawMessage
}

func (s *AssignmentService) decide(req *AssignRecordRequest, rules []models.AssignmentRule, defaults *models.AssignmentDefault, roundRobin *RoundRobinService) (*decision, error) {
	// First matching rule wins. Rules whose stored action no longer decodes
	// are skipped the same way malformed criteria are: fail closed, keep
	// scanning.
	for i := range rules {
		rule := &rules[i]
		if !criteria.Matches(rule.Criteria, req.Fields) {
			continue
		}

		action, err := rule.DecodeAction()
		if err != nil || !action.IsValid() {
			s.log.WithField("rule_id", rule.ID).Warn("skipping rule with malformed action")
			continue
		}

		switch action.Type {
		case models.ActionAssignUser:
			return &decision{
				userID:         action.UserID,
				ruleID:         &rule.ID,
				assignmentType: models.AssignmentTypeRule,
				details:        detailsJSON(map[string]interface{}{"rule_name": rule.Name, "priority": rule.Priority}),
			}, nil
		case models.ActionAssignTeam:
			return &decision{
				teamID:         action.TeamID,
				ruleID:         &rule.ID,
				assignmentType: models.AssignmentTypeRule,
				details:        detailsJSON(map[string]interface{}{"rule_name": rule.Name, "priority": rule.Priority}),
			}, nil
		case models.ActionRoundRobin:
			userID, counter, err := roundRobin.NextUserForTeam(req.TenantID, *action.TeamID)
			if err != nil {
				return nil, err
			}
			if userID == nil {
				// Empty roster: terminal, no assignment, not an error.
				return nil, nil
			}
			return &decision{
				userID:         userID,
				teamID:         action.TeamID,
				ruleID:         &rule.ID,
				assignmentType: models.AssignmentTypeRoundRobin,
				details:        detailsJSON(map[string]interface{}{"rule_name": rule.Name, "priority": rule.Priority, "counter": counter}),
			}, nil
		}
	}

	// No rule matched: fall back to tenant defaults.
	if defaults.RoundRobinEnabled && defaults.DefaultTeamID != nil {
		userID, counter, err := roundRobin.NextUserForTeam(req.TenantID, *defaults.DefaultTeamID)
		if err != nil {
			return nil, err
		}
		if userID == nil {
			return nil, nil
		}
		return &decision{
			userID:         userID,
			teamID:         defaults.DefaultTeamID,
			assignmentType: models.AssignmentTypeRoundRobin,
			details:        detailsJSON(map[string]interface{}{"fallback": "default_team_round_robin", "counter": counter}),
		}, nil
	}

	if defaults.DefaultUserID != nil {
		return &decision{
			userID:         defaults.DefaultUserID,
			assignmentType: models.AssignmentTypeDefault,
			details:        detailsJSON(map[string]interface{}{"fallback": "default_user"}),
		}, nil
	}

	return nil, nil
}

func detailsJSON(details map[string]interface{}) json.RawMessage {
	raw, err := json.Marshal(details)
	if err != nil {
		return nil
	}
	return raw
}
