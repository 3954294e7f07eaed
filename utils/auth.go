package utils

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/types"
)

var GetUserIDFromContext = func(c *gin.Context) (uint, error) {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return 0, errors.New("user claims not found in context")
	}

	claims, ok := claimsVal.(*types.Claims)
	if !ok {
		return 0, errors.New("invalid user claims type")
	}

	return claims.UserID, nil
}

func IsAdminFromContext(c *gin.Context) bool {
	claimsVal, exists := c.Get("claims")
	if !exists {
		return false
	}
	claims, ok := claimsVal.(*types.Claims)
	return ok && claims.IsAdmin
}
