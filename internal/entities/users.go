package entities

import "time"

// User is a registered account. HashedPassword only ever holds a bcrypt
// hash; the auth package owns hashing and verification.
type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:80;not null" json:"username"`
	FirstName      string    `gorm:"size:100" json:"first_name"`
	LastName       string    `gorm:"size:100" json:"last_name"`
	Email          string    `gorm:"uniqueIndex;size:100;not null" json:"email"`
	HashedPassword string    `gorm:"size:100" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
