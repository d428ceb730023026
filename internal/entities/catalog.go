package entities

import "time"

// Author is a catalog author. Authors own zero or more books through
// Book.AuthorID; the reverse lookup is always a filtered query, Author
// deliberately carries no Books slice.
type Author struct {
	ID   uint   `gorm:"primaryKey" json:"id"`
	Name string `gorm:"size:100;not null" json:"name"`
}

// Book is a single catalog entry. PublishDate and Price are optional,
// Appropriate is stored exactly as submitted.
type Book struct {
	ID          uint       `gorm:"primaryKey" json:"id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	PublishDate *time.Time `json:"publish_date,omitempty"`
	Price       *float64   `json:"price,omitempty"`
	Appropriate string     `gorm:"size:100" json:"appropriate,omitempty"`
	AuthorID    uint       `gorm:"index;not null" json:"author_id"`
	Author      Author     `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE" json:"author,omitempty"`

	// AuthorData is a free-text field carried over from an earlier schema
	// revision. No route reads or writes it.
	AuthorData string `gorm:"size:200" json:"author_data,omitempty"`
}
