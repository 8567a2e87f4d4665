package main

import (
	"assignment-engine/internal/config"
	"assignment-engine/internal/database"
	"assignment-engine/internal/database/models"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TenantData struct {
	Name        string                 `yaml:"name"`
	DisplayName string                 `yaml:"display_name"`
	Domain      string                 `yaml:"domain"`
	Status      string                 `yaml:"status,omitempty"`
	Metadata    map[string]interface{} `yaml:"metadata,omitempty"`
}

type TeamData struct {
	Name        string `yaml:"name"`
	TenantName  string `yaml:"tenant_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	Status      string `yaml:"status,omitempty"`
}

type MemberData struct {
	TenantName string `yaml:"tenant_name"`
	TeamName   string `yaml:"team_name,omitempty"`
	FullName   string `yaml:"full_name"`
	Email      string `yaml:"email"`
	Role       string `yaml:"role,omitempty"`
	IsActive   *bool  `yaml:"is_active,omitempty"`
}

type RuleData struct {
	Name       string                 `yaml:"name"`
	TenantName string                 `yaml:"tenant_name"`
	Priority   int                    `yaml:"priority"`
	Criteria   map[string]interface{} `yaml:"criteria"`
	Action     RuleActionData         `yaml:"action"`
	Active     *bool                  `yaml:"active,omitempty"`
}

type RuleActionData struct {
	Type      string `yaml:"type"`
	UserEmail string `yaml:"user_email,omitempty"`
	TeamName  string `yaml:"team_name,omitempty"`
}

type DefaultData struct {
	TenantName                string `yaml:"tenant_name"`
	DefaultUserEmail          string `yaml:"default_user_email,omitempty"`
	DefaultTeamName           string `yaml:"default_team_name,omitempty"`
	RoundRobinEnabled         bool   `yaml:"round_robin_enabled"`
	EnableAutomaticAssignment *bool  `yaml:"enable_automatic_assignment,omitempty"`
}

// File structures
type TenantsFile struct {
	Tenants []TenantData `yaml:"tenants"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type RulesFile struct {
	AssignmentRules []RuleData `yaml:"assignment_rules"`
}

type DefaultsFile struct {
	AssignmentDefaults []DefaultData `yaml:"assignment_defaults"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	tenants, err := loadTenants(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load tenants: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	rules, err := loadRules(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load assignment rules: %w", err)
	}

	defaults, err := loadDefaults(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load assignment defaults: %w", err)
	}

	// Create tenants first
	tenantMap := make(map[string]*models.Tenant)
	tenantCreated := 0
	for _, tenantData := range tenants {
		tenant, created, err := createTenant(db, tenantData)
		if err != nil {
			return fmt.Errorf("failed to create tenant %s: %w", tenantData.Name, err)
		}
		tenantMap[tenantData.Name] = tenant
		if created {
			tenantCreated++
		}
	}
	log.Printf("📋 Tenants: %d created, %d total", tenantCreated, len(tenants))

	// Create teams
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData, tenantMap)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create members. Roster order follows file order because round-robin
	// rotation walks members by creation time.
	memberMap := make(map[string]*models.Member)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData, tenantMap, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
		}
		memberMap[memberData.Email] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(members))

	// Create assignment rules
	ruleCreated := 0
	for _, ruleData := range rules {
		_, created, err := createRule(db, ruleData, tenantMap, teamMap, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create rule %s: %v", ruleData.Name, err)
			continue // Continue with other rules
		}
		if created {
			ruleCreated++
		}
	}
	log.Printf("📋 Assignment rules: %d created, %d total", ruleCreated, len(rules))

	// Create assignment defaults
	defaultCreated := 0
	for _, defaultData := range defaults {
		created, err := createDefault(db, defaultData, tenantMap, teamMap, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create defaults for tenant %s: %v", defaultData.TenantName, err)
			continue
		}
		if created {
			defaultCreated++
		}
	}
	log.Printf("📋 Assignment defaults: %d created, %d total", defaultCreated, len(defaults))

	return nil
}

func loadTenants(dataDir string) ([]TenantData, error) {
	var all []TenantData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "tenants") {
			var file TenantsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Tenants...)
		}
		return nil
	})

	return all, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var all []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Teams...)
		}
		return nil
	})

	return all, err
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var all []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.Members...)
		}
		return nil
	})

	return all, err
}

func loadRules(dataDir string) ([]RuleData, error) {
	var all []RuleData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "rules") {
			var file RulesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.AssignmentRules...)
		}
		return nil
	})

	return all, err
}

func loadDefaults(dataDir string) ([]DefaultData, error) {
	var all []DefaultData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "defaults") {
			var file DefaultsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			all = append(all, file.AssignmentDefaults...)
		}
		return nil
	})

	return all, err
}

func createTenant(db *gorm.DB, tenantData TenantData) (*models.Tenant, bool, error) {
	var tenant models.Tenant
	if err := db.Where("name = ?", tenantData.Name).First(&tenant).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			metadataJSON, _ := json.Marshal(tenantData.Metadata)

			status := models.TenantStatusActive
			if tenantData.Status != "" {
				status = models.TenantStatus(tenantData.Status)
			}

			tenant = models.Tenant{
				Name:        tenantData.Name,
				DisplayName: tenantData.DisplayName,
				Domain:      tenantData.Domain,
				Status:      status,
				Metadata:    metadataJSON,
			}

			if err := db.Create(&tenant).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create tenant: %w", err)
			}
			return &tenant, true, nil
		}
		return nil, false, fmt.Errorf("failed to query tenant: %w", err)
	}

	return &tenant, false, nil
}

func createTeam(db *gorm.DB, teamData TeamData, tenantMap map[string]*models.Tenant) (*models.Team, bool, error) {
	tenant, ok := tenantMap[teamData.TenantName]
	if !ok {
		return nil, false, fmt.Errorf("unknown tenant %q", teamData.TenantName)
	}

	var team models.Team
	if err := db.Where("tenant_id = ? AND name = ?", tenant.ID, teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.TeamStatusActive
			if teamData.Status != "" {
				status = models.TeamStatus(teamData.Status)
			}

			team = models.Team{
				TenantID:    tenant.ID,
				Name:        teamData.Name,
				DisplayName: teamData.DisplayName,
				Description: teamData.Description,
				Status:      status,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil
		}
		return nil, false, fmt.Errorf("failed to query team: %w", err)
	}

	return &team, false, nil
}

func createMember(db *gorm.DB, memberData MemberData, tenantMap map[string]*models.Tenant, teamMap map[string]*models.Team) (*models.Member, bool, error) {
	tenant, ok := tenantMap[memberData.TenantName]
	if !ok {
		return nil, false, fmt.Errorf("unknown tenant %q", memberData.TenantName)
	}

	var teamID *uuid.UUID
	if memberData.TeamName != "" {
		team, ok := teamMap[memberData.TeamName]
		if !ok {
			return nil, false, fmt.Errorf("unknown team %q", memberData.TeamName)
		}
		teamID = &team.ID
	}

	var member models.Member
	if err := db.Where("tenant_id = ? AND email = ?", tenant.ID, memberData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			role := models.MemberRoleAgent
			if memberData.Role != "" {
				role = models.MemberRole(memberData.Role)
			}
			isActive := true
			if memberData.IsActive != nil {
				isActive = *memberData.IsActive
			}

			member = models.Member{
				TenantID: tenant.ID,
				TeamID:   teamID,
				FullName: memberData.FullName,
				Email:    memberData.Email,
				Role:     role,
				IsActive: isActive,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create member: %w", err)
			}
			return &member, true, nil
		}
		return nil, false, fmt.Errorf("failed to query member: %w", err)
	}

	return &member, false, nil
}

func createRule(db *gorm.DB, ruleData RuleData, tenantMap map[string]*models.Tenant, teamMap map[string]*models.Team, memberMap map[string]*models.Member) (*models.AssignmentRule, bool, error) {
	tenant, ok := tenantMap[ruleData.TenantName]
	if !ok {
		return nil, false, fmt.Errorf("unknown tenant %q", ruleData.TenantName)
	}

	var rule models.AssignmentRule
	if err := db.Where("tenant_id = ? AND name = ?", tenant.ID, ruleData.Name).First(&rule).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			criteriaJSON, err := json.Marshal(ruleData.Criteria)
			if err != nil {
				return nil, false, fmt.Errorf("failed to marshal criteria: %w", err)
			}

			action := models.AssignmentAction{
				Type: models.AssignmentActionType(ruleData.Action.Type),
			}
			if ruleData.Action.UserEmail != "" {
				member, ok := memberMap[ruleData.Action.UserEmail]
				if !ok {
					return nil, false, fmt.Errorf("unknown member %q", ruleData.Action.UserEmail)
				}
				action.UserID = &member.ID
			}
			if ruleData.Action.TeamName != "" {
				team, ok := teamMap[ruleData.Action.TeamName]
				if !ok {
					return nil, false, fmt.Errorf("unknown team %q", ruleData.Action.TeamName)
				}
				action.TeamID = &team.ID
			}
			if !action.IsValid() {
				return nil, false, fmt.Errorf("invalid action for rule %q", ruleData.Name)
			}

			actionJSON, err := json.Marshal(&action)
			if err != nil {
				return nil, false, fmt.Errorf("failed to marshal action: %w", err)
			}

			active := true
			if ruleData.Active != nil {
				active = *ruleData.Active
			}

			rule = models.AssignmentRule{
				TenantID: tenant.ID,
				Name:     ruleData.Name,
				Priority: ruleData.Priority,
				Criteria: criteriaJSON,
				Action:   actionJSON,
				Active:   active,
			}

			if err := db.Create(&rule).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create rule: %w", err)
			}
			return &rule, true, nil
		}
		return nil, false, fmt.Errorf("failed to query rule: %w", err)
	}

	return &rule, false, nil
}

func createDefault(db *gorm.DB, defaultData DefaultData, tenantMap map[string]*models.Tenant, teamMap map[string]*models.Team, memberMap map[string]*models.Member) (bool, error) {
	tenant, ok := tenantMap[defaultData.TenantName]
	if !ok {
		return false, fmt.Errorf("unknown tenant %q", defaultData.TenantName)
	}

	var existing models.AssignmentDefault
	err := db.Where("tenant_id = ?", tenant.ID).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, fmt.Errorf("failed to query defaults: %w", err)
	}

	def := models.AssignmentDefault{
		TenantID:                  tenant.ID,
		RoundRobinEnabled:         defaultData.RoundRobinEnabled,
		EnableAutomaticAssignment: true,
	}
	if defaultData.EnableAutomaticAssignment != nil {
		def.EnableAutomaticAssignment = *defaultData.EnableAutomaticAssignment
	}
	if defaultData.DefaultUserEmail != "" {
		member, ok := memberMap[defaultData.DefaultUserEmail]
		if !ok {
			return false, fmt.Errorf("unknown member %q", defaultData.DefaultUserEmail)
		}
		def.DefaultUserID = &member.ID
	}
	if defaultData.DefaultTeamName != "" {
		team, ok := teamMap[defaultData.DefaultTeamName]
		if !ok {
			return false, fmt.Errorf("unknown team %q", defaultData.DefaultTeamName)
		}
		def.DefaultTeamID = &team.ID
	}

	if err := db.Create(&def).Error; err != nil {
		return false, fmt.Errorf("failed to create defaults: %w", err)
	}
	return true, nil
}
