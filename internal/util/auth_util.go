package util

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"blog-api/internal/domain"
	"blog-api/internal/response"
)

// Context keys set by the auth middleware
const (
	ContextUserID   = "user_id"
	ContextUserRole = "user_role"
	ContextTokenID  = "token_id"
	ContextTokenExp = "token_expires_at"
	ContextJWTToken = "jwtToken"
)

// AuthData holds the authenticated caller extracted from the Gin context.
type AuthData struct {
	UserID    uint
	Role      domain.Role
	TokenID   string
	ExpiresAt time.Time
}

// SetAuthData stores claims in the Gin context for downstream handlers
func SetAuthData(c *gin.Context, claims *Claims, token string) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextUserRole, claims.Role)
	c.Set(ContextTokenID, claims.ID)
	if claims.ExpiresAt != nil {
		c.Set(ContextTokenExp, claims.ExpiresAt.Time)
	}
	c.Set(ContextJWTToken, token)
}

// ExtractAuthData extracts the caller from the Gin context, writing a 401 when absent.
func ExtractAuthData(c *gin.Context) (AuthData, bool) {
	userID, ok := c.Get(ContextUserID)
	if !ok {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "User ID not found in context")
		return AuthData{}, false
	}
	id, ok := userID.(uint)
	if !ok || id == 0 {
		response.SendError(c, http.StatusUnauthorized, response.ErrCodeUnauthorized, "Invalid user ID format")
		return AuthData{}, false
	}

	data := AuthData{UserID: id, Role: domain.RoleUser}
	if role, ok := c.Get(ContextUserRole); ok {
		if r, ok := role.(domain.Role); ok {
			data.Role = r
		}
	}
	data.TokenID = c.GetString(ContextTokenID)
	data.ExpiresAt = c.GetTime(ContextTokenExp)
	return data, true
}

// OptionalUserID returns the caller's id when one is authenticated
func OptionalUserID(c *gin.Context) *uint {
	v, ok := c.Get(ContextUserID)
	if !ok {
		return nil
	}
	id, ok := v.(uint)
	if !ok || id == 0 {
		return nil
	}
	return &id
}
