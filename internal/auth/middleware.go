package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Context keys for the request-scoped identity set by Middleware.Handler.
const (
	ContextKeyUserID   = "auth_user_id"
	ContextKeyUsername = "auth_username"
)

// Middleware resolves the session identity for each request and gates the
// authenticated-only routes.
type Middleware struct {
	service        *Service
	sessionManager *SessionManager
}

// NewMiddleware creates a new authentication middleware.
func NewMiddleware(service *Service, sessionManager *SessionManager) *Middleware {
	return &Middleware{
		service:        service,
		sessionManager: sessionManager,
	}
}

// Handler resolves the current user from the session, if any, and stores
// the identity in the Gin context for handlers and templates. It never
// rejects a request; gating is done per-route by RequireAuth.
func (m *Middleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := m.sessionManager.GetUserID(c.Request)
		if userID != 0 {
			if user, err := m.service.GetUserByID(userID); err == nil {
				c.Set(ContextKeyUserID, user.ID)
				c.Set(ContextKeyUsername, user.Username)
			}
		}
		c.Next()
	}
}

// RequireAuth redirects unauthenticated requests to the login page.
func (m *Middleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) == 0 {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RedirectIfAuthenticated sends already-logged-in users home. Used on
// /login and /register.
func (m *Middleware) RedirectIfAuthenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetUserID(c) != 0 {
			c.Redirect(http.StatusFound, "/")
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
// Returns 0 when no user is authenticated.
func GetUserID(c *gin.Context) uint {
	if id, exists := c.Get(ContextKeyUserID); exists {
		if userID, ok := id.(uint); ok {
			return userID
		}
	}
	return 0
}

// GetUsername retrieves the authenticated user's username from the context.
func GetUsername(c *gin.Context) string {
	if name, exists := c.Get(ContextKeyUsername); exists {
		if username, ok := name.(string); ok {
			return username
		}
	}
	return ""
}

// IsAuthenticated returns true if the request carries a session identity.
func IsAuthenticated(c *gin.Context) bool {
	return GetUserID(c) != 0
}
