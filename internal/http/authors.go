package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emank/bookcatalog/internal/database/authors"
	"github.com/emank/bookcatalog/internal/database/books"
	"github.com/emank/bookcatalog/internal/forms"
)

// AuthorsController handles the author browsing and mutation routes.
type AuthorsController struct {
	authors *authors.Repository
	books   *books.Repository
	render  *Renderer
}

// NewAuthorsController creates a new authors controller.
func NewAuthorsController(authorRepo *authors.Repository, bookRepo *books.Repository, render *Renderer) *AuthorsController {
	return &AuthorsController{
		authors: authorRepo,
		books:   bookRepo,
		render:  render,
	}
}

// AuthorDetails renders one author or 404s. The author's books are a
// filtered lookup by foreign key, not a stored back-reference.
func (ct *AuthorsController) AuthorDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "Author")
	if !ok {
		return
	}

	author, err := ct.authors.GetByID(id)
	if err != nil {
		if errors.Is(err, authors.ErrAuthorNotFound) {
			respondNotFound(c, "Author")
			return
		}
		respondInternalError(c, err, "load author")
		return
	}

	ownedBooks, err := ct.books.ListByAuthor(author.ID)
	if err != nil {
		respondInternalError(c, err, "list author books")
		return
	}

	ct.render.HTML(c, http.StatusOK, "author_details.html", gin.H{
		"author": author,
		"books":  ownedBooks,
	})
}

// AddAuthorPage renders the empty author form.
func (ct *AuthorsController) AddAuthorPage(c *gin.Context) {
	ct.render.HTML(c, http.StatusOK, "add_author.html", gin.H{
		"form":   &forms.AuthorForm{},
		"errors": forms.Errors{},
	})
}

// AddAuthor handles the author form submission and redirects to the book
// list on success.
func (ct *AuthorsController) AddAuthor(c *gin.Context) {
	var form forms.AuthorForm
	_ = c.ShouldBind(&form)

	if errs := form.Validate(); errs.Any() {
		ct.render.HTML(c, http.StatusOK, "add_author.html", gin.H{
			"form":   &form,
			"errors": errs,
		})
		return
	}

	if _, err := ct.authors.Create(form.Name); err != nil {
		respondInternalError(c, err, "create author")
		return
	}

	c.Redirect(http.StatusFound, "/book/")
}

// EditAuthorPage renders the rename form pre-filled with the author's
// current ID and name.
func (ct *AuthorsController) EditAuthorPage(c *gin.Context) {
	id, ok := parseIDParam(c, "Author")
	if !ok {
		return
	}

	author, err := ct.authors.GetByID(id)
	if err != nil {
		if errors.Is(err, authors.ErrAuthorNotFound) {
			respondNotFound(c, "Author")
			return
		}
		respondInternalError(c, err, "load author")
		return
	}

	authorList, err := ct.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	form := forms.EditAuthorForm{
		AuthorSelect: strconv.FormatUint(uint64(author.ID), 10),
		NewName:      author.Name,
	}

	ct.render.HTML(c, http.StatusOK, "edit_author.html", gin.H{
		"form":    &form,
		"errors":  forms.Errors{},
		"authors": authorList,
	})
}

// EditAuthor renames the author identified by the URL path. The dropdown
// selection is validated but never used for the rename; see the note on
// forms.EditAuthorForm.
func (ct *AuthorsController) EditAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "Author")
	if !ok {
		return
	}

	author, err := ct.authors.GetByID(id)
	if err != nil {
		if errors.Is(err, authors.ErrAuthorNotFound) {
			respondNotFound(c, "Author")
			return
		}
		respondInternalError(c, err, "load author")
		return
	}

	var form forms.EditAuthorForm
	_ = c.ShouldBind(&form)

	authorList, err := ct.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	if errs := form.Validate(authorIDs(authorList)); errs.Any() {
		ct.render.HTML(c, http.StatusOK, "edit_author.html", gin.H{
			"form":    &form,
			"errors":  errs,
			"authors": authorList,
		})
		return
	}

	if _, err := ct.authors.Rename(author.ID, form.NewName); err != nil {
		respondInternalError(c, err, "rename author")
		return
	}

	c.Redirect(http.StatusFound, "/author/"+strconv.FormatUint(uint64(author.ID), 10))
}

// DeleteAuthor removes an author together with its books and redirects to
// the book list. POST only.
func (ct *AuthorsController) DeleteAuthor(c *gin.Context) {
	id, ok := parseIDParam(c, "Author")
	if !ok {
		return
	}

	if err := ct.authors.Delete(id); err != nil {
		if errors.Is(err, authors.ErrAuthorNotFound) {
			respondNotFound(c, "Author")
			return
		}
		respondInternalError(c, err, "delete author")
		return
	}

	c.Redirect(http.StatusFound, "/book/")
}
