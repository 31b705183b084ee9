// user.go - Handles registration, login, logout and user profiles

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For error wrapping checks
	"net/http" // HTTP status codes

	"go-feedback-app/auth"       // Registration and credential checks
	"go-feedback-app/database"   // Database connection
	"go-feedback-app/middleware" // Session guard and flash helpers
	"go-feedback-app/models"     // User and Feedback models

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM (for ErrRecordNotFound)
)

type RegisterForm struct { // Struct for registration form input
	Username  string `form:"username" binding:"required,max=20"`   // Username (required)
	Password  string `form:"password" binding:"required"`          // Password (required)
	Email     string `form:"email" binding:"required,email,max=50"` // Email (required, valid)
	FirstName string `form:"first_name" binding:"required,max=30"` // First name (required)
	LastName  string `form:"last_name" binding:"required,max=30"`  // Last name (required)
}

type LoginForm struct { // Struct for login form input
	Username string `form:"username" binding:"required,max=20"` // Username (required)
	Password string `form:"password" binding:"required"`        // Password (required)
}

// Home renders the landing page.
func Home(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Flashes": middleware.TakeFlashes(c),
	})
}

// ShowRegister renders the registration form.
func ShowRegister(c *gin.Context) {
	c.HTML(http.StatusOK, "user_create_form.html", gin.H{
		"Form":    RegisterForm{},
		"Flashes": middleware.TakeFlashes(c),
	})
}

// Register creates a new user and logs them in. Username uniqueness is only
// detected when the insert hits the database constraint; the duplicate case
// redisplays the form with a field error instead of failing the request.
func Register(c *gin.Context) {
	var form RegisterForm
	if err := c.ShouldBind(&form); err != nil { // Parse and validate form input
		c.HTML(http.StatusBadRequest, "user_create_form.html", gin.H{
			"Error":   "All fields are required and the email must be valid.",
			"Form":    form,
			"Flashes": middleware.TakeFlashes(c),
		})
		return
	}

	user, err := auth.NewUser(form.Username, form.Password, form.Email, form.FirstName, form.LastName)
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	if err := auth.SaveUser(user); err != nil {
		if errors.Is(err, auth.ErrDuplicateUsername) {
			c.HTML(http.StatusOK, "user_create_form.html", gin.H{
				"Error":   "Username taken. Please pick another",
				"Form":    form,
				"Flashes": middleware.TakeFlashes(c),
			})
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	middleware.SetSessionUser(c, user.Username)
	middleware.Flash(c, "info", user.Username+" added.")
	middleware.Redirect(c, "/users/"+user.Username)
}

// ShowLogin renders the login form.
func ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "user_login_form.html", gin.H{
		"Form":    LoginForm{},
		"Flashes": middleware.TakeFlashes(c),
	})
}

// Login authenticates the submitted credentials and establishes a session.
// Unknown username and wrong password produce the same error message.
func Login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil { // Parse and validate form input
		c.HTML(http.StatusBadRequest, "user_login_form.html", gin.H{
			"Error":   "Username and password are required.",
			"Form":    form,
			"Flashes": middleware.TakeFlashes(c),
		})
		return
	}

	user := auth.Authenticate(form.Username, form.Password)
	if user == nil {
		c.HTML(http.StatusUnauthorized, "user_login_form.html", gin.H{
			"Error":   "Invalid username/password.",
			"Form":    form,
			"Flashes": middleware.TakeFlashes(c),
		})
		return
	}

	middleware.SetSessionUser(c, user.Username)
	middleware.Flash(c, "primary", "Welcome back, "+user.Username+"!")
	middleware.Redirect(c, "/users/"+user.Username)
}

// Logout clears the session. Logging out while anonymous is a no-op.
func Logout(c *gin.Context) {
	middleware.ClearSessionUser(c)
	middleware.Flash(c, "info", "Goodbye!")
	middleware.Redirect(c, "/")
}

// UserDetail renders a user's profile with their feedback entries. Any
// logged-in user may view any profile.
func UserDetail(c *gin.Context) {
	var user models.User
	err := database.DB.Preload("Feedback").First(&user, "username = ?", c.Param("username")).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}
	c.HTML(http.StatusOK, "user_detail.html", gin.H{
		"User":        user,
		"CurrentUser": middleware.CurrentUser(c),
		"Flashes":     middleware.TakeFlashes(c),
	})
}

// DeleteUser removes the account and every feedback entry it owns. Only the
// account owner may delete it.
func DeleteUser(c *gin.Context) {
	// Check1 -- Does the user exist?
	var user models.User
	if err := database.DB.First(&user, "username = ?", c.Param("username")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	// Check2 -- Is the user deleting their own account?
	if !middleware.RequireOwner(c, user.Username, "You can not delete other users.", "/") {
		return
	}

	// The cascade is explicit: dependent feedback rows first, then the user
	// row, in one transaction.
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("username = ?", user.Username).Delete(&models.Feedback{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
	if err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	middleware.ClearSessionUser(c)
	middleware.Redirect(c, "/")
}

// NotFound renders the not-found page with a 404 status.
func NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, "not_found.html", gin.H{
		"Flashes": middleware.TakeFlashes(c),
	})
}
