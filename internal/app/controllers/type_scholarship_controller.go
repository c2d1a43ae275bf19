package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models"
	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/serializers"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// TypeScholarshipController handles scholarship category operations
type TypeScholarshipController struct {
	typeScholarshipService *services.TypeScholarshipService
}

// NewTypeScholarshipController creates a new TypeScholarshipController
func NewTypeScholarshipController(typeScholarshipService *services.TypeScholarshipService) *TypeScholarshipController {
	return &TypeScholarshipController{
		typeScholarshipService: typeScholarshipService,
	}
}

// Index lists every scholarship category
// @Summary List scholarship categories
// @Tags type_scholarships
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Scholarship categories"
// @Router /type_scholarships [get]
func (c *TypeScholarshipController) Index(ctx *gin.Context) {
	records, err := c.typeScholarshipService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]models.TypeScholarship, 0, len(records))
	for _, r := range records {
		out = append(out, *r)
	}

	ctx.JSON(http.StatusOK, gin.H{"type_scholarships": serializers.TypeScholarships(out)})
}

// Create creates a scholarship category
// @Summary Create a scholarship category
// @Tags type_scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateTypeScholarshipRequest true "Category attributes"
// @Success 201 {object} map[string]interface{} "Created category"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /type_scholarships [post]
func (c *TypeScholarshipController) Create(ctx *gin.Context) {
	var req dto.CreateTypeScholarshipRequest
	if !bindJSON(ctx, &req) {
		return
	}

	ts, err := c.typeScholarshipService.Create(ctx, req.TypeScholarship)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"type_scholarship": serializers.TypeScholarship(*ts)})
}

// Update updates a scholarship category
// @Summary Update a scholarship category
// @Tags type_scholarships
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Category ID"
// @Param request body dto.UpdateTypeScholarshipRequest true "Category attributes"
// @Success 200 {object} map[string]interface{} "Updated category"
// @Failure 404 {object} dto.ErrorResponse "Category not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /type_scholarships/{id} [patch]
func (c *TypeScholarshipController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "type_scholarship")
	if !ok {
		return
	}

	var req dto.UpdateTypeScholarshipRequest
	if !bindJSON(ctx, &req) {
		return
	}

	ts, err := c.typeScholarshipService.Update(ctx, id, req.TypeScholarship)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"type_scholarship": serializers.TypeScholarship(*ts)})
}
