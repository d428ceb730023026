package http

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emank/bookcatalog/internal/auth"
)

// Renderer renders HTML pages with the ambient page data every template
// expects: flash notice, CSRF field and the current session identity.
type Renderer struct {
	sessions *auth.SessionManager
}

// NewRenderer creates a renderer bound to the session manager.
func NewRenderer(sessions *auth.SessionManager) *Renderer {
	return &Renderer{sessions: sessions}
}

// HTML renders a template, merging the page data with flash, CSRF token
// and authentication state.
func (r *Renderer) HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["flash"]; !ok {
		data["flash"] = r.sessions.PopFlash(c.Request)
	}
	data["csrf_field"] = auth.CSRFTokenField(c)
	data["authenticated"] = auth.IsAuthenticated(c)
	data["username"] = auth.GetUsername(c)
	c.HTML(status, name, data)
}

// parseIDParam extracts an unsigned integer ID from URL parameters. A
// non-numeric ID behaves like a missing record: 404, not 400.
func parseIDParam(c *gin.Context, resource string) (uint, bool) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		respondNotFound(c, resource)
		return 0, false
	}
	return uint(id), true
}

// respondNotFound sends a plain 404 response.
func respondNotFound(c *gin.Context, resource string) {
	c.String(http.StatusNotFound, "%s not found", resource)
}

// respondInternalError logs the error and sends a 500 response. The actual
// error is logged but not exposed to the client.
func respondInternalError(c *gin.Context, err error, context string) {
	log.Printf("Internal error (%s): %v", context, err)
	c.String(http.StatusInternalServerError, "internal server error")
}
