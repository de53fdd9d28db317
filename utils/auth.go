package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/openhaul/loadboard/models"
	"github.com/openhaul/loadboard/types"
)

var GetClaimsFromContext = func(c *gin.Context) (*types.Claims, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return nil, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return nil, errors.New("invalid user claims type")
	}

	return claims, nil
}

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return 0, err
	}
	return claims.UserID, nil
}

func IsAdmin(c *gin.Context) bool {
	claims, err := GetClaimsFromContext(c)
	return err == nil && claims.Role == string(models.UserRoleAdmin)
}

func HasRole(c *gin.Context, roles ...models.UserRole) bool {
	claims, err := GetClaimsFromContext(c)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if claims.Role == string(r) {
			return true
		}
	}
	return false
}
