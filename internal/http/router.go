package http

import (
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emank/bookcatalog/internal/auth"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// Apply security headers to all responses
	router.Use(auth.SecurityHeadersMiddleware())

	// CSRF must run before session so that session context is preserved
	if len(cfg.CSRFSecret) > 0 {
		router.Use(auth.CSRFMiddleware(cfg.CSRFSecret, cfg.SecureCookies))
	}

	// Session runs after CSRF so session context isn't overwritten by
	// CSRF's request replacement
	router.Use(cfg.SessionManager.SessionLoadSave())

	// Resolve the session identity into the request context
	router.Use(cfg.AuthMiddleware.Handler())

	// Load HTML templates
	tmpl := template.Must(template.ParseGlob(cfg.TemplatesPath + "/*.html"))
	router.SetHTMLTemplate(tmpl)

	// Serve static files
	if cfg.StaticPath != "" {
		router.Static("/static", cfg.StaticPath)
	}

	render := NewRenderer(cfg.SessionManager)
	booksController := NewBooksController(cfg.Books, cfg.Authors, render)
	authorsController := NewAuthorsController(cfg.Authors, cfg.Books, render)

	// Auth routes: /register, /login, /logout
	authController := auth.NewController(cfg.AuthService, cfg.SessionManager)
	authController.RegisterRoutes(router, cfg.AuthMiddleware)

	// Landing page
	router.GET("/", func(c *gin.Context) {
		render.HTML(c, http.StatusOK, "home.html", nil)
	})

	// Public catalog routes
	router.GET("/book/", booksController.ListBooks)
	router.GET("/book/:id", booksController.BookDetails)
	router.GET("/author/:id", authorsController.AuthorDetails)

	router.GET("/add_book", booksController.AddBookPage)
	router.POST("/add_book", booksController.AddBook)
	router.GET("/add_author", authorsController.AddAuthorPage)
	router.POST("/add_author", authorsController.AddAuthor)
	router.GET("/edit_author/:id", authorsController.EditAuthorPage)
	router.POST("/edit_author/:id", authorsController.EditAuthor)
	router.GET("/edit_book/:id", booksController.EditBookPage)
	router.POST("/edit_book/:id", booksController.EditBook)

	// Deletes are POST only
	router.POST("/delete_author/:id", authorsController.DeleteAuthor)
	router.POST("/delete_book/:id", booksController.DeleteBook)

	// Authenticated book list
	router.GET("/books", cfg.AuthMiddleware.RequireAuth(), booksController.BooksPage)

	return router
}
