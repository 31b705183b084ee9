// database.go - Handles database connection and setup

package database // Declares the package name

import ( // Import required packages
	"go-feedback-app/models" // User and Feedback models

	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM
)

var DB *gorm.DB // Global variable to hold the database connection (pointer to gorm.DB)

// Connect opens the database and runs migrations.
// TranslateError makes unique-constraint violations surface as
// gorm.ErrDuplicatedKey instead of driver-specific errors, which is how
// duplicate usernames are detected at insert time.
func Connect(dbPath string) error {
	var err error
	DB, err = gorm.Open(sqlite.Open(dbPath), &gorm.Config{TranslateError: true}) // Open SQLite DB
	if err != nil {
		return err
	}

	// Auto-migrate the models (create tables if needed)
	return DB.AutoMigrate(&models.User{}, &models.Feedback{})
}
