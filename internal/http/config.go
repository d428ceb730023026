package http

import (
	"github.com/emank/bookcatalog/internal/auth"
	"github.com/emank/bookcatalog/internal/database/authors"
	"github.com/emank/bookcatalog/internal/database/books"
)

// RouterConfig contains all dependencies and configuration needed to
// create the HTTP router. Everything is constructed once at startup and
// handed in here; handlers never reach for globals.
type RouterConfig struct {
	// Storage
	Authors *authors.Repository
	Books   *books.Repository

	// Authentication
	AuthService    *auth.Service
	AuthMiddleware *auth.Middleware
	SessionManager *auth.SessionManager
	CSRFSecret     []byte
	SecureCookies  bool

	// UI paths
	TemplatesPath string
	StaticPath    string
}
