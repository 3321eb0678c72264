package middleware

import (
	"net/http"
	"strings"

	"artgallery-app/internal/app/gate"
	"artgallery-app/internal/domain/authz"

	"github.com/gin-gonic/gin"
)

// Context keys set after an allowed decision.
const (
	IdentityKey = "identity"
	UserIDKey   = "user_id"
	RoleKey     = "role"
)

// RefFunc extracts the resource a route's decision is about.
type RefFunc func(c *gin.Context) *gate.ResourceRef

// ArtworkParam references the artwork named by a path parameter.
func ArtworkParam(name string) RefFunc {
	return func(c *gin.Context) *gate.ResourceRef {
		ref := gate.ArtworkRef(c.Param(name))
		return &ref
	}
}

// Authorize funnels the route through the gate. On Deny it writes the
// mapped status and aborts; on Allow it stores the resolved identity for
// the handler. Routes themselves never re-check roles or ownership.
func Authorize(g *gate.Gate, action authz.Action, ref RefFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		var r *gate.ResourceRef
		if ref != nil {
			r = ref(c)
		}

		identity, decision := g.Decide(c.Request.Context(), BearerToken(c), action, r)
		if !decision.Allowed {
			c.AbortWithStatusJSON(StatusFor(decision.Reason), gin.H{
				"error":  MessageFor(decision.Reason),
				"reason": string(decision.Reason),
			})
			return
		}

		c.Set(IdentityKey, identity)
		c.Set(UserIDKey, identity.ID)
		c.Set(RoleKey, string(identity.Role))
		c.Next()
	}
}

// BearerToken returns the Authorization bearer token, or "" when the
// request carries none. An absent token is an anonymous request, not an
// error; the gate decides whether anonymity is acceptable.
func BearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return ""
	}
	token := strings.TrimPrefix(authHeader, "Bearer ")
	if token == authHeader {
		return ""
	}
	return strings.TrimSpace(token)
}

// StatusFor maps denial reasons to their documented status codes.
func StatusFor(reason authz.Reason) int {
	switch reason {
	case authz.ReasonNotAuthenticated:
		return http.StatusUnauthorized
	case authz.ReasonWrongRole, authz.ReasonNotOwner:
		return http.StatusForbidden
	case authz.ReasonAlreadyExists:
		return http.StatusConflict
	case authz.ReasonNotFound:
		return http.StatusNotFound
	case authz.ReasonInfrastructure:
		return http.StatusServiceUnavailable
	default:
		return http.StatusForbidden
	}
}

// MessageFor keeps the response text generic so a denial never leaks more
// about a resource than the requester is entitled to know.
func MessageFor(reason authz.Reason) string {
	switch reason {
	case authz.ReasonNotAuthenticated:
		return "Unauthorized - Please login"
	case authz.ReasonWrongRole:
		return "Access denied"
	case authz.ReasonNotOwner:
		return "You can only manage your own content"
	case authz.ReasonAlreadyExists:
		return "Already liked"
	case authz.ReasonNotFound:
		return "Not found"
	case authz.ReasonInfrastructure:
		return "Service temporarily unavailable"
	default:
		return "Access denied"
	}
}

// Identity returns the identity stored by Authorize.
func Identity(c *gin.Context) (authz.Identity, bool) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return authz.Anonymous(), false
	}
	identity, ok := v.(authz.Identity)
	return identity, ok
}
