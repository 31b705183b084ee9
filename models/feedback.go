// feedback.go - Defines the Feedback model for the database

package models

type Feedback struct {
	ID       uint   `gorm:"primaryKey"`              // Surrogate key
	Title    string `gorm:"size:100;not null"`
	Content  string `gorm:"not null"`
	Username string `gorm:"size:20;not null;index"` // Foreign key to users table
}
