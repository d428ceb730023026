package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/emank/bookcatalog/internal/database/authors"
	"github.com/emank/bookcatalog/internal/database/books"
	"github.com/emank/bookcatalog/internal/entities"
	"github.com/emank/bookcatalog/internal/forms"
)

// BooksController handles the book browsing and mutation routes.
type BooksController struct {
	books   *books.Repository
	authors *authors.Repository
	render  *Renderer
}

// NewBooksController creates a new books controller.
func NewBooksController(bookRepo *books.Repository, authorRepo *authors.Repository, render *Renderer) *BooksController {
	return &BooksController{
		books:   bookRepo,
		authors: authorRepo,
		render:  render,
	}
}

// ListBooks renders the public book list.
func (ct *BooksController) ListBooks(c *gin.Context) {
	allBooks, err := ct.books.GetAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	ct.render.HTML(c, http.StatusOK, "all_books.html", gin.H{
		"books": allBooks,
	})
}

// BookDetails renders one book or 404s.
func (ct *BooksController) BookDetails(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	book, err := ct.books.GetByID(id)
	if err != nil {
		if errors.Is(err, books.ErrBookNotFound) {
			respondNotFound(c, "Book")
			return
		}
		respondInternalError(c, err, "load book")
		return
	}

	ct.render.HTML(c, http.StatusOK, "book_details.html", gin.H{
		"book": book,
	})
}

// AddBookPage renders the empty book form with the author dropdown
// populated from all current authors.
func (ct *BooksController) AddBookPage(c *gin.Context) {
	authorList, err := ct.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}
	ct.renderBookForm(c, "add_book.html", &forms.BookForm{}, nil, authorList)
}

// AddBook handles the book form submission.
func (ct *BooksController) AddBook(c *gin.Context) {
	var form forms.BookForm
	_ = c.ShouldBind(&form)

	authorList, err := ct.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	if errs := form.Validate(authorIDs(authorList)); errs.Any() {
		ct.renderBookForm(c, "add_book.html", &form, errs, authorList)
		return
	}

	book := &entities.Book{
		Name:        form.Name,
		PublishDate: form.PublishDateValue(),
		Price:       form.PriceValue(),
		Appropriate: form.Appropriate,
		AuthorID:    form.AuthorID(),
	}
	if err := ct.books.Create(book); err != nil {
		respondInternalError(c, err, "create book")
		return
	}

	c.Redirect(http.StatusFound, "/book/")
}

// EditBookPage renders the edit form pre-filled from the stored record.
func (ct *BooksController) EditBookPage(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	book, err := ct.books.GetByID(id)
	if err != nil {
		if errors.Is(err, books.ErrBookNotFound) {
			respondNotFound(c, "Book")
			return
		}
		respondInternalError(c, err, "load book")
		return
	}

	authorList, err := ct.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	form := forms.BookForm{
		Name:        book.Name,
		Appropriate: book.Appropriate,
		Author:      strconv.FormatUint(uint64(book.AuthorID), 10),
	}
	if book.PublishDate != nil {
		form.PublishDate = book.PublishDate.Format("2006-01-02")
	}
	if book.Price != nil {
		form.Price = strconv.FormatFloat(*book.Price, 'f', -1, 64)
	}

	ct.renderBookForm(c, "edit_book.html", &form, nil, authorList)
}

// EditBook updates all mutable fields of an existing book and redirects
// to its detail page.
func (ct *BooksController) EditBook(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	book, err := ct.books.GetByID(id)
	if err != nil {
		if errors.Is(err, books.ErrBookNotFound) {
			respondNotFound(c, "Book")
			return
		}
		respondInternalError(c, err, "load book")
		return
	}

	var form forms.BookForm
	_ = c.ShouldBind(&form)

	authorList, err := ct.authors.GetAll()
	if err != nil {
		respondInternalError(c, err, "load authors")
		return
	}

	if errs := form.Validate(authorIDs(authorList)); errs.Any() {
		ct.renderBookForm(c, "edit_book.html", &form, errs, authorList)
		return
	}

	book.Name = form.Name
	book.PublishDate = form.PublishDateValue()
	book.Price = form.PriceValue()
	book.Appropriate = form.Appropriate
	book.AuthorID = form.AuthorID()

	if err := ct.books.Update(book); err != nil {
		respondInternalError(c, err, "update book")
		return
	}

	c.Redirect(http.StatusFound, "/book/"+strconv.FormatUint(uint64(book.ID), 10))
}

// DeleteBook removes a book and redirects to the book list. POST only.
func (ct *BooksController) DeleteBook(c *gin.Context) {
	id, ok := parseIDParam(c, "Book")
	if !ok {
		return
	}

	if err := ct.books.Delete(id); err != nil {
		if errors.Is(err, books.ErrBookNotFound) {
			respondNotFound(c, "Book")
			return
		}
		respondInternalError(c, err, "delete book")
		return
	}

	c.Redirect(http.StatusFound, "/book/")
}

// BooksPage renders the authenticated book list at /books. Same data as
// the public list, different page.
func (ct *BooksController) BooksPage(c *gin.Context) {
	allBooks, err := ct.books.GetAll()
	if err != nil {
		respondInternalError(c, err, "list books")
		return
	}
	ct.render.HTML(c, http.StatusOK, "books.html", gin.H{
		"books": allBooks,
	})
}

func (ct *BooksController) renderBookForm(c *gin.Context, page string, form *forms.BookForm, errs forms.Errors, authorList []entities.Author) {
	ct.render.HTML(c, http.StatusOK, page, gin.H{
		"form":    form,
		"errors":  errs,
		"authors": authorList,
	})
}

func authorIDs(list []entities.Author) []uint {
	ids := make([]uint, 0, len(list))
	for _, a := range list {
		ids = append(ids, a.ID)
	}
	return ids
}
