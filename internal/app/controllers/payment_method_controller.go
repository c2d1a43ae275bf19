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

// PaymentMethodController handles payment method operations
type PaymentMethodController struct {
	paymentMethodService *services.PaymentMethodService
}

// NewPaymentMethodController creates a new PaymentMethodController
func NewPaymentMethodController(paymentMethodService *services.PaymentMethodService) *PaymentMethodController {
	return &PaymentMethodController{
		paymentMethodService: paymentMethodService,
	}
}

// Index lists every payment method
// @Summary List payment methods
// @Tags payment_methods
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Payment methods"
// @Router /payment_methods [get]
func (c *PaymentMethodController) Index(ctx *gin.Context) {
	methods, err := c.paymentMethodService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	out := make([]models.PaymentMethod, 0, len(methods))
	for _, m := range methods {
		out = append(out, *m)
	}

	ctx.JSON(http.StatusOK, gin.H{"payment_methods": serializers.PaymentMethods(out)})
}

// Create creates a payment method
// @Summary Create a payment method
// @Tags payment_methods
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreatePaymentMethodRequest true "Payment method attributes"
// @Success 201 {object} map[string]interface{} "Created payment method"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /payment_methods [post]
func (c *PaymentMethodController) Create(ctx *gin.Context) {
	var req dto.CreatePaymentMethodRequest
	if !bindJSON(ctx, &req) {
		return
	}

	method, err := c.paymentMethodService.Create(ctx, req.PaymentMethod)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"payment_method": serializers.PaymentMethod(*method)})
}
