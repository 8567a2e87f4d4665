package routes

import (
	"assignment-engine/internal/api/handlers"
	"assignment-engine/internal/api/middleware"
	"assignment-engine/internal/config"
	"assignment-engine/internal/repository"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize repositories
	tenantRepo := repository.NewTenantRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	memberRepo := repository.NewMemberRepository(db)
	ruleRepo := repository.NewAssignmentRuleRepository(db)
	defaultRepo := repository.NewAssignmentDefaultRepository(db)
	counterRepo := repository.NewAssignmentCounterRepository(db)
	auditRepo := repository.NewAssignmentAuditRepository(db)

	// Initialize services
	tenantService := service.NewTenantService(tenantRepo, validator)
	teamService := service.NewTeamService(teamRepo, tenantRepo, validator)
	memberService := service.NewMemberService(memberRepo, tenantRepo, teamRepo, validator)
	ruleService := service.NewAssignmentRuleService(ruleRepo, tenantRepo, validator)
	defaultService := service.NewAssignmentDefaultService(defaultRepo, tenantRepo, teamRepo, memberRepo, validator)
	counterService := service.NewAssignmentCounterService(counterRepo)
	auditService := service.NewAssignmentAuditService(auditRepo)
	assignmentService := service.NewAssignmentService(db, validator)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	tenantHandler := handlers.NewTenantHandler(tenantService)
	teamHandler := handlers.NewTeamHandler(teamService)
	memberHandler := handlers.NewMemberHandler(memberService)
	ruleHandler := handlers.NewAssignmentRuleHandler(ruleService)
	defaultHandler := handlers.NewAssignmentDefaultHandler(defaultService)
	counterHandler := handlers.NewAssignmentCounterHandler(counterService)
	auditHandler := handlers.NewAssignmentAuditHandler(auditService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Tenant routes
		tenants := v1.Group("/tenants")
		{
			tenants.GET("", tenantHandler.ListTenants)
			tenants.POST("", tenantHandler.CreateTenant)
			tenants.GET("/:tenantId", tenantHandler.GetTenant)
			tenants.PUT("/:tenantId", tenantHandler.UpdateTenant)
			tenants.DELETE("/:tenantId", tenantHandler.DeleteTenant)
			tenants.GET("/:tenantId/teams", teamHandler.ListTeams)
			tenants.GET("/:tenantId/members", memberHandler.ListMembers)
			tenants.GET("/:tenantId/assignment-rules", ruleHandler.ListRules)
			tenants.GET("/:tenantId/assignment-defaults", defaultHandler.GetDefaults)
			tenants.PUT("/:tenantId/assignment-defaults", defaultHandler.UpdateDefaults)
			tenants.GET("/:tenantId/assignment-audits", auditHandler.ListAudits)
			tenants.GET("/:tenantId/assignment-counters", counterHandler.ListCounters)
			tenants.POST("/:tenantId/assignment-counters/reset", counterHandler.ResetCounter)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:teamId", teamHandler.GetTeam)
			teams.PUT("/:teamId", teamHandler.UpdateTeam)
			teams.DELETE("/:teamId", teamHandler.DeleteTeam)
		}

		// Member routes
		members := v1.Group("/members")
		{
			members.POST("", memberHandler.CreateMember)
			members.GET("/:memberId", memberHandler.GetMember)
			members.PUT("/:memberId", memberHandler.UpdateMember)
			members.DELETE("/:memberId", memberHandler.DeleteMember)
		}

		// Assignment rule routes
		rules := v1.Group("/assignment-rules")
		{
			rules.POST("", ruleHandler.CreateRule)
			rules.GET("/:id", ruleHandler.GetRule)
			rules.PUT("/:id", ruleHandler.UpdateRule)
			rules.DELETE("/:id", ruleHandler.DeleteRule)
		}

		// Assignment audit routes
		audits := v1.Group("/assignment-audits")
		{
			audits.GET("/:id", auditHandler.GetAudit)
		}

		// Assignment evaluation route
		assignments := v1.Group("/assignments")
		{
			assignments.POST("/evaluate", assignmentHandler.AssignRecord)
		}
	}

	return router
}
