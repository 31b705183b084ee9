// auth.go - Registration and credential verification

package auth // Declares the package name

import ( // Import required packages
	"errors" // For error wrapping checks

	"go-feedback-app/database" // Database connection
	"go-feedback-app/models"   // User model

	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM (for translated errors)
)

// ErrDuplicateUsername is returned by SaveUser when the username is taken.
// Uniqueness is only detected when the insert hits the database constraint,
// never pre-checked with a lookup.
var ErrDuplicateUsername = errors.New("username already taken")

// NewUser hashes the raw password and builds an unpersisted User.
func NewUser(username, rawPassword, email, firstName, lastName string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(rawPassword), bcrypt.DefaultCost) // Hash password
	if err != nil {
		return nil, err
	}
	return &models.User{
		Username:  username,
		Password:  string(hash),
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
	}, nil
}

// SaveUser inserts the user, translating a unique-constraint violation into
// ErrDuplicateUsername so callers can render it as a field error.
func SaveUser(user *models.User) error {
	if err := database.DB.Create(user).Error; err != nil { // Save user to DB
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateUsername
		}
		return err
	}
	return nil
}

// Authenticate looks up the user and verifies the password. It returns nil
// for an unknown username and for a wrong password alike, so callers cannot
// tell the two cases apart.
func Authenticate(username, rawPassword string) *models.User {
	var user models.User
	if err := database.DB.Where("username = ?", username).First(&user).Error; err != nil { // Find user by username
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(rawPassword)); err != nil { // Check password
		return nil
	}
	return &user
}
