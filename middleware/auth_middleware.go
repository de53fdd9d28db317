package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/response"
	"github.com/openhaul/loadboard/utils"
)

func AuthorizeAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !utils.IsAdmin(c) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "admin privileges required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AuthorizeRole lets the request through when the caller holds any of
// the given roles. Admins always pass.
func AuthorizeRole(roles ...models.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		if utils.IsAdmin(c) || utils.HasRole(c, roles...) {
			c.Next()
			return
		}
		c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
		c.Abort()
	}
}

// AuthorizeUserOrAdmin restricts :id routes to the user themselves or
// an admin.
func AuthorizeUserOrAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := utils.ParseIDParam(c, "id")
		if err != nil {
			c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: "invalid user id"})
			c.Abort()
			return
		}

		userID, err := utils.GetUserIDFromContext(c)
		if err != nil {
			c.JSON(http.StatusUnauthorized, response.ErrorResponse{Error: err.Error()})
			c.Abort()
			return
		}

		if userID != id && !utils.IsAdmin(c) {
			c.JSON(http.StatusForbidden, response.ErrorResponse{Error: "permission denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
