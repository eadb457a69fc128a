package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/boonewh/pathsix-crm/internal/domain"
)

const (
	// TenantIDHeader carries the tenant resolved by the auth proxy.
	TenantIDHeader = "X-Tenant-ID"
	// UserIDHeader carries the authenticated user ID.
	UserIDHeader = "X-User-ID"
	// UserRolesHeader carries a comma separated role list.
	UserRolesHeader = "X-User-Roles"
	// IdentityKey is the context key for the resolved identity.
	IdentityKey = "identity"
)

// Identity middleware resolves the caller from trusted proxy headers.
// The service sits behind an auth gateway that terminates sessions and
// forwards tenant and user IDs; requests without both are rejected.
func Identity() gin.HandlerFunc {
	return func(c *gin.Context) {
		tenantID := c.GetHeader(TenantIDHeader)
		userID := c.GetHeader(UserIDHeader)
		if tenantID == "" || userID == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}

		var roles []string
		for _, role := range strings.Split(c.GetHeader(UserRolesHeader), ",") {
			role = strings.TrimSpace(role)
			if role != "" {
				roles = append(roles, role)
			}
		}

		c.Set(IdentityKey, domain.Identity{
			TenantID: tenantID,
			UserID:   userID,
			Roles:    roles,
		})

		c.Next()
	}
}

// GetIdentity retrieves the caller identity from the gin context.
func GetIdentity(c *gin.Context) (domain.Identity, bool) {
	if value, exists := c.Get(IdentityKey); exists {
		if identity, ok := value.(domain.Identity); ok {
			return identity, true
		}
	}
	return domain.Identity{}, false
}
