package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/app/serializers"
	"github.com/colegio-app/colegio-backend/internal/app/services"
	"github.com/colegio-app/colegio-backend/internal/middleware"
)

// GroupController handles group operations
type GroupController struct {
	groupService *services.GroupService
}

// NewGroupController creates a new GroupController
func NewGroupController(groupService *services.GroupService) *GroupController {
	return &GroupController{
		groupService: groupService,
	}
}

func serializeGroupDetails(details []services.GroupDetail) []serializers.GroupJSON {
	out := make([]serializers.GroupJSON, 0, len(details))
	for _, d := range details {
		out = append(out, serializers.Group(d.Group, d.Teachers, d.Principals, d.SupportTeachers))
	}
	return out
}

func serializeTeacherDetails(details []services.TeacherDetail) []serializers.TeacherJSON {
	out := make([]serializers.TeacherJSON, 0, len(details))
	for _, d := range details {
		out = append(out, serializers.Teacher(d.User, serializeGroupDetails(d.Groups)))
	}
	return out
}

// Index lists every group with its staff
// @Summary List groups
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{} "Groups with staff per role"
// @Router /groups [get]
func (c *GroupController) Index(ctx *gin.Context) {
	details, err := c.groupService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"groups": serializeGroupDetails(details)})
}

// Create creates a group under a grade
// @Summary Create a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateGroupRequest true "Grade id and group attributes"
// @Success 201 {object} map[string]interface{} "Created group under its grade"
// @Failure 404 {object} dto.ErrorResponse "Grade not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /groups [post]
func (c *GroupController) Create(ctx *gin.Context) {
	var req dto.CreateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := c.groupService.Create(ctx, req.GradeID, req.Group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{
		"grade": gin.H{"group": serializers.GroupRef(*group)},
	})
}

// Update updates a group's attributes
// @Summary Update a group
// @Tags groups
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Param request body dto.UpdateGroupRequest true "Grade id and group attributes"
// @Success 200 {object} map[string]interface{} "Updated group under its grade"
// @Failure 404 {object} dto.ErrorResponse "Group or grade not found"
// @Failure 422 {object} dto.ErrorResponse "Validation failures per field"
// @Router /groups/{id} [patch]
func (c *GroupController) Update(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "group")
	if !ok {
		return
	}

	var req dto.UpdateGroupRequest
	if !bindJSON(ctx, &req) {
		return
	}

	group, err := c.groupService.Update(ctx, id, req.GradeID, req.Group)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"grade": gin.H{"group": serializers.GroupRef(*group)},
	})
}

// Students lists the students of a group
// @Summary List a group's students
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Students with their group"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/students [get]
func (c *GroupController) Students(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "group")
	if !ok {
		return
	}

	_, students, err := c.groupService.Students(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"students": serializers.Students(students)})
}

// Teachers lists the teachers of a group with every group each teaches in
// @Summary List a group's teachers
// @Tags groups
// @Produce json
// @Security BearerAuth
// @Param id path int true "Group ID"
// @Success 200 {object} map[string]interface{} "Teachers with their groups"
// @Failure 404 {object} dto.ErrorResponse "Group not found"
// @Router /groups/{id}/teachers [get]
func (c *GroupController) Teachers(ctx *gin.Context) {
	id, ok := pathID(ctx, "id", "group")
	if !ok {
		return
	}

	teachers, err := c.groupService.Teachers(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"teachers": serializeTeacherDetails(teachers)})
}
