package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/serializers"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// EvaluationController handles student evaluation operations
type EvaluationController struct {
	evaluationService *services.EvaluationService
}

// NewEvaluationController creates a new EvaluationController
func NewEvaluationController(evaluationService *services.EvaluationService) *EvaluationController {
	return &EvaluationController{
		evaluationService: evaluationService,
	}
}

// CreateIntermediate records a mid-period evaluation for a student
// @Summary Create an intermediate evaluation
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.CreateIntermediateEvaluationRequest true "Evaluation attributes"
// @Success 201 {object} map[string]interface{} "Created evaluation"
// @Failure 404 {object} dto.ErrorResponse "Group or student not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /students/{id}/intermediate_evaluations [post]
func (c *EvaluationController) CreateIntermediate(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "id", "student")
	if !ok {
		return
	}

	var req dto.CreateIntermediateEvaluationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	eval, err := c.evaluationService.CreateIntermediate(ctx, studentID, req.IntermediateEvaluation)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"intermediate_evaluation": serializers.IntermediateEvaluation(*eval)})
}

// CreateFinal records the end-of-year status for a student
// @Summary Create a final evaluation
// @Tags evaluations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Student ID"
// @Param request body dto.CreateFinalEvaluationRequest true "Evaluation attributes"
// @Success 201 {object} map[string]interface{} "Created evaluation"
// @Failure 404 {object} dto.ErrorResponse "Group or student not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /students/{id}/final_evaluations [post]
func (c *EvaluationController) CreateFinal(ctx *gin.Context) {
	studentID, ok := pathID(ctx, "id", "student")
	if !ok {
		return
	}

	var req dto.CreateFinalEvaluationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	eval, err := c.evaluationService.CreateFinal(ctx, studentID, req.FinalEvaluation)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"final_evaluation": serializers.FinalEvaluation(*eval)})
}
