package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/serializers"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// StudentPaymentMethodController handles the student/payment-method/year links
type StudentPaymentMethodController struct {
	service *services.StudentPaymentMethodService
}

// NewStudentPaymentMethodController creates a new StudentPaymentMethodController
func NewStudentPaymentMethodController(service *services.StudentPaymentMethodService) *StudentPaymentMethodController {
	return &StudentPaymentMethodController{
		service: service,
	}
}

// Create links a student to a payment method for a year
// @Summary Create a student payment method
// @Tags student_payment_methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateStudentPaymentMethodRequest true "Link attributes"
// @Success 201 {object} map[string]interface{} "Created link"
// @Failure 404 {object} dto.ErrorResponse "Student or payment method not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /student_payment_methods [post]
func (c *StudentPaymentMethodController) Create(ctx *gin.Context) {
	var req dto.CreateStudentPaymentMethodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	link, err := c.service.Create(ctx, req.StudentPaymentMethod)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"student_payment_method": serializers.StudentPaymentMethod(*link)})
}

// Update updates an existing link
// @Summary Update a student payment method
// @Tags student_payment_methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Link ID"
// @Param request body dto.UpdateStudentPaymentMethodRequest true "Link attributes"
// @Success 200 {object} map[string]interface{} "Updated link"
// @Failure 404 {object} dto.ErrorResponse "Link, student or payment method not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /student_payment_methods/{id} [patch]
func (c *StudentPaymentMethodController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "student_payment_method")
	if !ok {
		return
	}

	var req dto.UpdateStudentPaymentMethodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	link, err := c.service.Update(ctx, id, req.StudentPaymentMethod)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"student_payment_method": serializers.StudentPaymentMethod(*link)})
}
