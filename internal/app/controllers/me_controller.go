package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/serializers"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// MeController handles the signed-in user's own resources
type MeController struct {
	meService *services.MeService
}

// NewMeController creates a new MeController
func NewMeController(meService *services.MeService) *MeController {
	return &MeController{
		meService: meService,
	}
}

// Show returns the signed-in user's profile with owned records
// @Summary Current user profile
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Profile with documents, notes and absences"
// @Router /me [get]
func (c *MeController) Show(ctx *gin.Context) {
	user, err := c.meService.Get(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"me": serializers.Me(*user)})
}

// Update applies profile attributes to the signed-in user
// @Summary Update current user
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdateMeRequest true "Profile attributes"
// @Success 200 {object} map[string]interface{} "Updated profile"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /me [patch]
func (c *MeController) Update(ctx *gin.Context) {
	var req dto.UpdateMeRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.meService.Update(ctx, middleware.UserID(ctx), req.User)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": serializers.User(*user)})
}

// UpdatePassword replaces the signed-in user's password
// @Summary Change password
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.UpdatePasswordRequest true "Password pair"
// @Success 200 {object} map[string]interface{} "Profile"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /me/password [patch]
func (c *MeController) UpdatePassword(ctx *gin.Context) {
	var req dto.UpdatePasswordRequest
	if !bindJSON(ctx, &req) {
		return
	}

	user, err := c.meService.UpdatePassword(ctx, middleware.UserID(ctx), req.User)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"user": serializers.User(*user)})
}

// CreateDocument attaches a document to the signed-in user
// @Summary Add a personal document
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateDocumentRequest true "Document attributes"
// @Success 201 {object} map[string]interface{} "Created document"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /me/documents [post]
func (c *MeController) CreateDocument(ctx *gin.Context) {
	var req dto.CreateDocumentRequest
	if !bindJSON(ctx, &req) {
		return
	}

	doc, err := c.meService.AddDocument(ctx, middleware.UserID(ctx), req.Document)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"document": serializers.Document(*doc)})
}

// CreateComplementaryInformation attaches a dated note to the signed-in user
// @Summary Add complementary information
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateComplementaryInformationRequest true "Note attributes"
// @Success 201 {object} map[string]interface{} "Created note"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /me/complementary_informations [post]
func (c *MeController) CreateComplementaryInformation(ctx *gin.Context) {
	var req dto.CreateComplementaryInformationRequest
	if !bindJSON(ctx, &req) {
		return
	}

	info, err := c.meService.AddComplementaryInformation(ctx, middleware.UserID(ctx), req.ComplementaryInformation)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"complementary_information": serializers.ComplementaryInformation(*info)})
}

// CreateAbsence attaches an absence to the signed-in user
// @Summary Add an absence
// @Tags me
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateAbsenceRequest true "Absence attributes"
// @Success 201 {object} map[string]interface{} "Created absence"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /me/absences [post]
func (c *MeController) CreateAbsence(ctx *gin.Context) {
	var req dto.CreateAbsenceRequest
	if !bindJSON(ctx, &req) {
		return
	}

	absence, err := c.meService.AddAbsence(ctx, middleware.UserID(ctx), req.Absence)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"absence": serializers.Absence(*absence)})
}

// Groups lists the signed-in user's groups
// @Summary Current user's groups
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Groups with staff per role"
// @Router /me/groups [get]
func (c *MeController) Groups(ctx *gin.Context) {
	details, err := c.meService.Groups(ctx, middleware.UserID(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"groups": serializeGroupDetails(details)})
}

// GroupStudents returns one of the user's groups with its students
// @Summary Students of one of the current user's groups
// @Tags me
// @Produce json
// @Security BearerAuth
// @Param group_id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Group with students"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /me/groups/{group_id}/students [get]
func (c *MeController) GroupStudents(ctx *gin.Context) {
	id, ok := pathID(ctx, "group_id", "group")
	if !ok {
		return
	}

	group, students, err := c.meService.GroupStudents(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"group": serializers.GroupStudents(*group, students)})
}

// Teachers lists every teacher with the groups each works in
// @Summary List teachers
// @Tags me
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Teachers with their groups"
// @Router /me/teachers [get]
func (c *MeController) Teachers(ctx *gin.Context) {
	teachers, err := c.meService.Teachers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"teachers": serializeTeacherDetails(teachers)})
}
