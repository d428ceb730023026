// Package books provides database operations for catalog books.
package books

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emank/bookcatalog/internal/entities"
)

// ErrBookNotFound is returned when a book ID does not exist.
var ErrBookNotFound = errors.New("book not found")

// Repository handles all book database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new books repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new book.
func (r *Repository) Create(book *entities.Book) error {
	return r.db.Create(book).Error
}

// GetByID retrieves a book by ID with its author preloaded.
func (r *Repository) GetByID(id uint) (*entities.Book, error) {
	var book entities.Book
	err := r.db.Preload("Author").First(&book, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookNotFound
		}
		return nil, err
	}
	return &book, nil
}

// GetAll retrieves every book with authors preloaded, ordered by ID.
func (r *Repository) GetAll() ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Preload("Author").Order("id").Find(&books).Error
	return books, err
}

// ListByAuthor retrieves the books owned by one author. This is the
// computed back-reference for Author; the entity stores no book slice.
func (r *Repository) ListByAuthor(authorID uint) ([]entities.Book, error) {
	var books []entities.Book
	err := r.db.Where("author_id = ?", authorID).Order("id").Find(&books).Error
	return books, err
}

// Update persists all mutable fields of an existing book. Select lists the
// columns explicitly so nil PublishDate/Price clear the stored values.
func (r *Repository) Update(book *entities.Book) error {
	result := r.db.Model(&entities.Book{}).
		Where("id = ?", book.ID).
		Select("name", "publish_date", "price", "appropriate", "author_id").
		Updates(map[string]any{
			"name":         book.Name,
			"publish_date": book.PublishDate,
			"price":        book.Price,
			"appropriate":  book.Appropriate,
			"author_id":    book.AuthorID,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBookNotFound
	}
	return nil
}

// Delete removes a book.
func (r *Repository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	return r.db.Delete(&entities.Book{}, id).Error
}
