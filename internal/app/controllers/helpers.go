package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/colegio-app/colegio-backend/internal/app/models/dto"
	"github.com/colegio-app/colegio-backend/internal/pkg/apperrors"
)

// pathID parses a numeric path parameter. A malformed id reads like a
// missing row, so the caller's entity decides the not-found key.
func pathID(c *gin.Context, param, entity string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound,
			dto.NewErrorResponse(entity+".not_found", apperrors.NotFoundDescription(entity)))
		return 0, false
	}
	return id, true
}

// bindJSON decodes the request body into the typed allow-list. Unknown keys
// are dropped by construction; a body that is not JSON answers 400.
func bindJSON(c *gin.Context, out interface{}) bool {
	if err := c.ShouldBindJSON(out); err != nil {
		c.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("bad_request", "el cuerpo de la petición no es válido"))
		return false
	}
	return true
}
