// Package forms holds the declarative input contracts for every mutating
// route. Each form is a struct with validate tags; Validate returns a
// field->message map the controllers feed straight back into templates.
package forms

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// dateLayout is the only accepted publish date format.
const dateLayout = "2006-01-02"

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report errors under the form field name, not the Go field name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Errors maps form field names to validation messages.
type Errors map[string]string

// Any reports whether validation produced at least one error.
func (e Errors) Any() bool { return len(e) > 0 }

// collect converts validator errors into per-field messages.
func collect(err error) Errors {
	errs := Errors{}
	if err == nil {
		return errs
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		errs["form"] = "Invalid input."
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required."
	case "datetime":
		return "Must be a date in YYYY-MM-DD format."
	case "min":
		return fmt.Sprintf("Must be at least %s characters long.", fe.Param())
	case "max":
		return fmt.Sprintf("Must be at most %s characters long.", fe.Param())
	case "email":
		return "Must be a valid email address."
	case "eqfield":
		return "Passwords must match."
	}
	return "Invalid value."
}

// BookForm backs both /add_book and /edit_book. Price and Appropriate are
// free text: an unparsable price is stored as null rather than rejected.
type BookForm struct {
	Name        string `form:"name" validate:"required"`
	PublishDate string `form:"publish_date" validate:"required,datetime=2006-01-02"`
	Price       string `form:"price"`
	Appropriate string `form:"appropriate"`
	Author      string `form:"author" validate:"required"`
}

// Validate checks field constraints and that the chosen author is one of
// the currently existing author IDs.
func (f *BookForm) Validate(authorChoices []uint) Errors {
	errs := collect(validate.Struct(f))
	if _, hasErr := errs["author"]; !hasErr {
		if !isChoice(f.Author, authorChoices) {
			errs["author"] = "Not a valid choice."
		}
	}
	return errs
}

// PublishDateValue parses the validated publish date.
func (f *BookForm) PublishDateValue() *time.Time {
	t, err := time.Parse(dateLayout, f.PublishDate)
	if err != nil {
		return nil
	}
	return &t
}

// PriceValue converts the free-text price to a float, or nil when empty
// or unparsable.
func (f *BookForm) PriceValue() *float64 {
	if f.Price == "" {
		return nil
	}
	p, err := strconv.ParseFloat(strings.TrimSpace(f.Price), 64)
	if err != nil {
		return nil
	}
	return &p
}

// AuthorID returns the selected author ID. Only meaningful after a
// successful Validate.
func (f *BookForm) AuthorID() uint {
	id, _ := strconv.ParseUint(f.Author, 10, 32)
	return uint(id)
}

// AuthorForm backs /add_author.
type AuthorForm struct {
	Name string `form:"name" validate:"required"`
}

func (f *AuthorForm) Validate() Errors {
	return collect(validate.Struct(f))
}

// EditAuthorForm backs /edit_author/{id}. The select picks an author from
// the dropdown, but the rename is always applied to the author named in
// the URL path; the selected value is validated and then ignored, matching
// the long-standing page behavior.
type EditAuthorForm struct {
	AuthorSelect string `form:"author_select" validate:"required"`
	NewName      string `form:"new_name" validate:"required"`
}

func (f *EditAuthorForm) Validate(authorChoices []uint) Errors {
	errs := collect(validate.Struct(f))
	if _, hasErr := errs["author_select"]; !hasErr {
		if !isChoice(f.AuthorSelect, authorChoices) {
			errs["author_select"] = "Not a valid choice."
		}
	}
	return errs
}

// RegistrationForm backs /register. Username and email uniqueness are
// business rules checked by the auth service, not here.
type RegistrationForm struct {
	Username        string `form:"username" validate:"required,min=4,max=80"`
	FirstName       string `form:"first_name" validate:"required,min=1,max=100"`
	LastName        string `form:"last_name" validate:"required,min=1,max=100"`
	Email           string `form:"email" validate:"required,email,max=100"`
	Password        string `form:"password" validate:"required,min=6"`
	ConfirmPassword string `form:"confirm_password" validate:"required,eqfield=Password"`
}

func (f *RegistrationForm) Validate() Errors {
	return collect(validate.Struct(f))
}

// LoginForm backs /login. Presence only; credential checks happen against
// the stored hash.
type LoginForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password" validate:"required"`
}

func (f *LoginForm) Validate() Errors {
	return collect(validate.Struct(f))
}

func isChoice(raw string, choices []uint) bool {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return false
	}
	for _, c := range choices {
		if uint(id) == c {
			return true
		}
	}
	return false
}
