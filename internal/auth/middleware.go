package auth

import (
	"context"
	"net/http"
	"strings"

	"fitdesk/internal/api"
	"fitdesk/internal/logger"

	"github.com/gin-gonic/gin"
)

const (
	LoginPath     = "/login"
	AdminPath     = "/admin"
	DashboardPath = "/dashboard"
)

var publicPaths = map[string]bool{
	LoginPath:          true,
	"/health":          true,
	"/metrics":         true,
	"/api/health":      true,
	"/api/auth/login":  true,
	"/api/auth/logout": true,
}

func isPublic(path string) bool {
	return publicPaths[path] || hasPrefix(path, "/swagger")
}

func isAPI(path string) bool {
	return strings.HasPrefix(path, "/api/")
}

func hasPrefix(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// Gate authenticates every request from the session cookie (or a Bearer
// header) and enforces the page-prefix role rules. Any token failure is
// handled the same way: the cookie is cleared, API paths get 401 and page
// paths are redirected to the login page.
func Gate(secret string, cookie Cookie) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if isPublic(path) {
			c.Next()
			return
		}

		claims, err := ValidateToken(tokenFromRequest(c, cookie.Name), secret)
		if err != nil {
			logger.Debug("session rejected", "path", path, "reason", err.Error())
			cookie.Clear(c)
			if isAPI(path) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
				return
			}
			redirect(c, LoginPath)
			return
		}

		switch {
		case path == "/":
			if claims.Role == RoleSuperAdmin {
				redirect(c, AdminPath)
			} else {
				redirect(c, DashboardPath)
			}
			return
		case hasPrefix(path, AdminPath):
			if claims.Role != RoleSuperAdmin {
				redirect(c, DashboardPath)
				return
			}
		case hasPrefix(path, DashboardPath):
			if claims.Role != RoleGymOwner || claims.GymID <= 0 {
				cookie.Clear(c)
				redirect(c, LoginPath)
				return
			}
		}

		c.Set("user_id", claims.UserID)
		c.Set("user_email", claims.Email)
		c.Set("user_role", claims.Role)
		c.Set("gym_id", claims.GymID)

		c.Next()
	}
}

func tokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	parts := strings.SplitN(c.GetHeader("Authorization"), " ", 2)
	if len(parts) == 2 && strings.TrimSpace(parts[0]) == "Bearer" {
		return strings.TrimSpace(parts[1])
	}
	return ""
}

func redirect(c *gin.Context, location string) {
	c.Redirect(http.StatusFound, location)
	c.Abort()
}

func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, api.ErrorResponse{Error: "Unauthorized"})
			return
		}

		if role != requiredRole {
			c.AbortWithStatusJSON(http.StatusForbidden, api.ErrorResponse{Error: "Insufficient permissions"})
			return
		}

		c.Next()
	}
}

var ErrNoTenant = api.NewForbiddenError("No gym associated with this account")

// RequireTenant rejects callers whose session is not bound to a gym.
func RequireTenant() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := GetGymID(c); !ok {
			api.RespondError(c, ErrNoTenant)
			return
		}
		c.Next()
	}
}

// GymChecker reports whether a gym exists and is switched on.
type GymChecker interface {
	IsActive(ctx context.Context, gymID int) (bool, error)
}

var ErrGymInactive = api.NewForbiddenError("Your gym account is deactivated. Contact support.")

// RequireActiveGym rejects tokens issued before the caller's gym was
// deactivated or deleted. It runs after RequireTenant.
func RequireActiveGym(gyms GymChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		gymID, err := TenantID(c)
		if err != nil {
			api.RespondError(c, err)
			return
		}

		active, err := gyms.IsActive(c.Request.Context(), gymID)
		if err != nil {
			api.RespondError(c, api.NewInternalError("Failed to check gym status", err))
			return
		}
		if !active {
			api.RespondError(c, ErrGymInactive)
			return
		}
		c.Next()
	}
}

// TenantID returns the caller's gym or ErrNoTenant.
func TenantID(c *gin.Context) (int, error) {
	id, ok := GetGymID(c)
	if !ok {
		return 0, ErrNoTenant
	}
	return id, nil
}

func GetUserID(c *gin.Context) (int, bool) {
	userID, exists := c.Get("user_id")
	if !exists {
		return 0, false
	}

	id, ok := userID.(int)
	if !ok {
		return 0, false
	}

	return id, true
}

func GetGymID(c *gin.Context) (int, bool) {
	v, exists := c.Get("gym_id")
	if !exists {
		return 0, false
	}

	id, ok := v.(int)
	if !ok || id <= 0 {
		return 0, false
	}

	return id, true
}

func GetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_role")
	if !exists {
		return "", false
	}

	role, ok := v.(string)
	return role, ok
}
