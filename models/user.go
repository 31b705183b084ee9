// user.go - Defines the User model for the database

package models // Declares the package name

type User struct { // User struct represents a user in the database
	Username  string `gorm:"primaryKey;size:20"` // Unique username (primary key)
	Password  string `gorm:"not null"`           // Hashed password (cannot be null)
	Email     string `gorm:"size:50;not null"`   // User's email
	FirstName string `gorm:"size:30;not null"`   // First name
	LastName  string `gorm:"size:30;not null"`   // Last name

	// Feedback entries owned by this user
	Feedback []Feedback `gorm:"foreignKey:Username;references:Username"`
}

// FullName is shown on the profile page.
func (u User) FullName() string {
	return u.FirstName + " " + u.LastName
}
