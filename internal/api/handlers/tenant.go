package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TenantHandler handles HTTP requests for tenant operations
type TenantHandler struct {
	tenantService service.TenantServiceInterface
}

// NewTenantHandler creates a new tenant handler
func NewTenantHandler(tenantService service.TenantServiceInterface) *TenantHandler {
	return &TenantHandler{
		tenantService: tenantService,
	}
}

// CreateTenant handles POST /tenants
// @Summary Create a new tenant
// @Description Create a new tenant with the provided details
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenant body service.CreateTenantRequest true "Tenant data"
// @Success 201 {object} service.TenantResponse "Successfully created tenant"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 409 {object} ErrorResponse "Tenant already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants [post]
func (h *TenantHandler) CreateTenant(c *gin.Context) {
	var req service.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, tenant)
}

// GetTenant handles GET /tenants/:tenantId
// @Summary Get tenant by ID
// @Description Get a specific tenant by its UUID
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Success 200 {object} service.TenantResponse "Successfully retrieved tenant"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId} [get]
func (h *TenantHandler) GetTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	tenant, err := h.tenantService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// ListTenants handles GET /tenants
// @Summary List all tenants
// @Description Get all tenants with pagination
// @Tags tenants
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TenantListResponse "Successfully retrieved tenants"
// @Failure 400 {object} ErrorResponse "Invalid pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants [get]
func (h *TenantHandler) ListTenants(c *gin.Context) {
	page, pageSize := paginationParams(c)

	tenants, err := h.tenantService.GetAll(page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenants)
}

// UpdateTenant handles PUT /tenants/:tenantId
// @Summary Update a tenant
// @Description Update a tenant's display name, domain or status
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param tenant body service.UpdateTenantRequest true "Tenant data"
// @Success 200 {object} service.TenantResponse "Successfully updated tenant"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId} [put]
func (h *TenantHandler) UpdateTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	var req service.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	tenant, err := h.tenantService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, tenant)
}

// DeleteTenant handles DELETE /tenants/:tenantId
// @Summary Delete a tenant
// @Description Delete a tenant by its UUID
// @Tags tenants
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Success 204 "Successfully deleted tenant"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId} [delete]
func (h *TenantHandler) DeleteTenant(c *gin.Context) {
	id, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	if err := h.tenantService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
