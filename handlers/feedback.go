// feedback.go - Handles feedback creation, update and deletion

package handlers // Declares the package name

import ( // Import required packages
	"errors"   // For error wrapping checks
	"net/http" // HTTP status codes
	"strconv"  // For parsing the feedback id path parameter

	"go-feedback-app/database"   // Database connection
	"go-feedback-app/middleware" // Session guard and flash helpers
	"go-feedback-app/models"     // Feedback model

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM (for ErrRecordNotFound)
)

type FeedbackForm struct { // Struct for feedback form input
	Title   string `form:"title" binding:"required,max=100"` // Title (required)
	Content string `form:"content" binding:"required"`       // Content (required)
}

// loadFeedback fetches the feedback row named by the :id path parameter.
// On a bad or unknown id it renders the not-found page and reports false.
func loadFeedback(c *gin.Context) (*models.Feedback, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		NotFound(c)
		return nil, false
	}
	var feedback models.Feedback
	if err := database.DB.First(&feedback, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return nil, false
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return nil, false
	}
	return &feedback, true
}

// ShowAddFeedback renders the add-feedback form.
func ShowAddFeedback(c *gin.Context) {
	c.HTML(http.StatusOK, "add_feedback_form.html", gin.H{
		"Form":     FeedbackForm{},
		"Username": c.Param("username"),
		"Flashes":  middleware.TakeFlashes(c),
	})
}

// AddFeedback creates a feedback entry owned by the path username.
func AddFeedback(c *gin.Context) {
	username := c.Param("username")

	// The owning user must exist before a feedback row can reference it
	var owner models.User
	if err := database.DB.First(&owner, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			NotFound(c)
			return
		}
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	var form FeedbackForm
	if err := c.ShouldBind(&form); err != nil { // Parse and validate form input
		c.HTML(http.StatusBadRequest, "add_feedback_form.html", gin.H{
			"Error":    "Title and content are required.",
			"Form":     form,
			"Username": username,
			"Flashes":  middleware.TakeFlashes(c),
		})
		return
	}

	feedback := models.Feedback{Title: form.Title, Content: form.Content, Username: username}
	if err := database.DB.Create(&feedback).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	middleware.Flash(c, "info", "New feedback added.")
	middleware.Redirect(c, "/users/"+username)
}

// ShowUpdateFeedback renders the edit form for a feedback entry.
func ShowUpdateFeedback(c *gin.Context) {
	// Check1 -- Does the feedback exist?
	feedback, ok := loadFeedback(c)
	if !ok {
		return
	}

	// Check2 -- Is the user editing their own feedback?
	if !middleware.RequireOwner(c, feedback.Username, "You can not edit others feedback.", "/") {
		return
	}

	c.HTML(http.StatusOK, "update_feedback_form.html", gin.H{
		"Feedback": feedback,
		"Form":     FeedbackForm{Title: feedback.Title, Content: feedback.Content},
		"Flashes":  middleware.TakeFlashes(c),
	})
}

// UpdateFeedback mutates the title and content of a feedback entry. Both
// checks run before anything is written: login (middleware) and ownership.
func UpdateFeedback(c *gin.Context) {
	feedback, ok := loadFeedback(c)
	if !ok {
		return
	}
	if !middleware.RequireOwner(c, feedback.Username, "You can not edit others feedback.", "/") {
		return
	}

	var form FeedbackForm
	if err := c.ShouldBind(&form); err != nil { // Parse and validate form input
		c.HTML(http.StatusBadRequest, "update_feedback_form.html", gin.H{
			"Error":    "Title and content are required.",
			"Feedback": feedback,
			"Form":     form,
			"Flashes":  middleware.TakeFlashes(c),
		})
		return
	}

	feedback.Title = form.Title
	feedback.Content = form.Content
	if err := database.DB.Save(feedback).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	middleware.Flash(c, "info", "Feedback "+feedback.Title+" updated.")
	middleware.Redirect(c, "/users/"+feedback.Username)
}

// DeleteFeedback deletes a feedback entry. A non-owner gets a denial flash
// and the row is left untouched.
func DeleteFeedback(c *gin.Context) {
	feedback, ok := loadFeedback(c)
	if !ok {
		return
	}

	username := middleware.CurrentUser(c)
	if feedback.Username != username {
		middleware.Flash(c, "danger", "You can not delete others feedback.")
		middleware.Redirect(c, "/users/"+username)
		return
	}

	if err := database.DB.Delete(feedback).Error; err != nil {
		c.AbortWithStatus(http.StatusInternalServerError)
		return
	}

	middleware.Flash(c, "info", "Feedback "+feedback.Title+" deleted.")
	middleware.Redirect(c, "/users/"+username)
}
