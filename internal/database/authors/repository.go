// Package authors provides database operations for catalog authors.
package authors

import (
	"errors"

	"gorm.io/gorm"

	"github.com/emank/bookcatalog/internal/entities"
)

// ErrAuthorNotFound is returned when an author ID does not exist.
var ErrAuthorNotFound = errors.New("author not found")

// Repository handles all author database operations.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a new authors repository.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a new author.
func (r *Repository) Create(name string) (*entities.Author, error) {
	author := &entities.Author{Name: name}
	if err := r.db.Create(author).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// GetByID retrieves an author by ID.
func (r *Repository) GetByID(id uint) (*entities.Author, error) {
	var author entities.Author
	err := r.db.First(&author, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAuthorNotFound
		}
		return nil, err
	}
	return &author, nil
}

// GetAll retrieves every author, ordered by ID.
func (r *Repository) GetAll() ([]entities.Author, error) {
	var authors []entities.Author
	err := r.db.Order("id").Find(&authors).Error
	return authors, err
}

// Rename updates an author's name.
func (r *Repository) Rename(id uint, name string) (*entities.Author, error) {
	author, err := r.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := r.db.Model(author).Update("name", name).Error; err != nil {
		return nil, err
	}
	return author, nil
}

// Delete removes an author and all books referencing it. The two deletes
// run in one transaction so a failure never leaves orphaned books behind;
// sqlite does not enforce the foreign key for us by default.
func (r *Repository) Delete(id uint) error {
	if _, err := r.GetByID(id); err != nil {
		return err
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("author_id = ?", id).Delete(&entities.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&entities.Author{}, id).Error
	})
}

// Exists reports whether an author with the given ID exists.
func (r *Repository) Exists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&entities.Author{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
