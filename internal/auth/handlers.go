package auth

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/emank/bookcatalog/internal/forms"
)

// Controller handles the registration, login and logout routes.
type Controller struct {
	service        *Service
	sessionManager *SessionManager
}

// NewController creates a new authentication controller.
func NewController(service *Service, sessionManager *SessionManager) *Controller {
	return &Controller{
		service:        service,
		sessionManager: sessionManager,
	}
}

// RegisterRoutes registers authentication routes on the router. Login and
// registration bounce already-authenticated users home; logout requires a
// session.
func (ac *Controller) RegisterRoutes(router *gin.Engine, m *Middleware) {
	guest := m.RedirectIfAuthenticated()
	router.GET("/register", guest, ac.RegisterPage)
	router.POST("/register", guest, ac.Register)
	router.GET("/login", guest, ac.LoginPage)
	router.POST("/login", guest, ac.Login)
	router.GET("/logout", m.RequireAuth(), ac.Logout)
}

// RegisterPage renders the registration form.
func (ac *Controller) RegisterPage(c *gin.Context) {
	ac.renderRegister(c, &forms.RegistrationForm{}, nil)
}

// Register handles the registration form submission. Field constraints
// re-render the form inline; duplicate username/email conflicts flash a
// notice and redirect back.
func (ac *Controller) Register(c *gin.Context) {
	var form forms.RegistrationForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); errs.Any() {
		ac.renderRegister(c, &form, errs)
		return
	}

	_, err := ac.service.Register(Registration{
		Username:  form.Username,
		FirstName: form.FirstName,
		LastName:  form.LastName,
		Email:     form.Email,
		Password:  form.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrUsernameTaken):
			ac.sessionManager.Flash(c.Request, "Username already exists.")
			c.Redirect(http.StatusFound, "/register")
		case errors.Is(err, ErrEmailTaken):
			ac.sessionManager.Flash(c.Request, "Email already exists.")
			c.Redirect(http.StatusFound, "/register")
		default:
			ac.renderRegister(c, &form, forms.Errors{"form": "Registration failed. Please try again."})
		}
		return
	}

	ac.sessionManager.Flash(c.Request, "Registration successful! Please log in.")
	c.Redirect(http.StatusFound, "/login")
}

// LoginPage renders the login form.
func (ac *Controller) LoginPage(c *gin.Context) {
	ac.renderLogin(c, &forms.LoginForm{}, nil)
}

// Login handles the login form submission. Failures show one generic
// message regardless of whether the username or the password was wrong.
func (ac *Controller) Login(c *gin.Context) {
	var form forms.LoginForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); errs.Any() {
		ac.renderLogin(c, &form, errs)
		return
	}

	user, err := ac.service.Authenticate(form.Username, form.Password)
	if err != nil {
		ac.sessionManager.Flash(c.Request, "Invalid username or password.")
		c.Redirect(http.StatusFound, "/login")
		return
	}

	if err := ac.sessionManager.CreateSession(c.Request, user); err != nil {
		ac.renderLogin(c, &form, forms.Errors{"form": "Failed to create session."})
		return
	}

	ac.sessionManager.Flash(c.Request, "Login successful!")
	c.Redirect(http.StatusFound, "/")
}

// Logout destroys the session and redirects home.
func (ac *Controller) Logout(c *gin.Context) {
	_ = ac.sessionManager.DestroySession(c.Request)
	ac.sessionManager.Flash(c.Request, "You have been logged out.")
	c.Redirect(http.StatusFound, "/")
}

func (ac *Controller) renderRegister(c *gin.Context, form *forms.RegistrationForm, errs forms.Errors) {
	c.HTML(http.StatusOK, "register.html", gin.H{
		"form":       form,
		"errors":     errs,
		"flash":      ac.sessionManager.PopFlash(c.Request),
		"csrf_field": CSRFTokenField(c),
	})
}

func (ac *Controller) renderLogin(c *gin.Context, form *forms.LoginForm, errs forms.Errors) {
	c.HTML(http.StatusOK, "login.html", gin.H{
		"form":       form,
		"errors":     errs,
		"flash":      ac.sessionManager.PopFlash(c.Request),
		"csrf_field": CSRFTokenField(c),
	})
}
