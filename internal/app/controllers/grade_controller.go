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

// GradeController handles academic level operations
type GradeController struct {
	gradeService *services.GradeService
}

// NewGradeController creates a new GradeController
func NewGradeController(gradeService *services.GradeService) *GradeController {
	return &GradeController{
		gradeService: gradeService,
	}
}

// Index lists every grade
// @Summary List grades
// @Tags grades
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Grades"
// @Router /grades [get]
func (c *GradeController) Index(ctx *gin.Context) {
	grades, err := c.gradeService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]models.Grade, 0, len(grades))
	for _, g := range grades {
		out = append(out, *g)
	}

	ctx.JSON(http.StatusOK, gin.H{"grades": serializers.Grades(out)})
}

// Create creates a grade
// @Summary Create a grade
// @Tags grades
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGradeRequest true "Grade attributes"
// @Success 201 {object} map[string]interface{} "Created grade"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /grades [post]
func (c *GradeController) Create(ctx *gin.Context) {
	var req dto.CreateGradeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	grade, err := c.gradeService.Create(ctx, req.Grade)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"grade": serializers.Grade(*grade)})
}
