// main.go - Entry point for the feedback web app

package main // Declares the package name

import ( // Import required packages
	"go-feedback-app/config"     // Project config management
	"go-feedback-app/database"   // Database connection and setup
	"go-feedback-app/handlers"   // HTTP handlers for the routes
	"go-feedback-app/middleware" // Session guard middleware
	"log"                        // Logging

	"github.com/gin-contrib/sessions"        // Cookie session management
	"github.com/gin-contrib/sessions/cookie" // Cookie-backed session store
	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/joho/godotenv"               // Optional .env loading
)

func main() { // Main function, program entry point
	// STEP 1: Load configuration and open the database
	_ = godotenv.Load() // .env is optional; deployments set the environment directly

	cfg := config.Load() // Load configuration (DB path, listen address, session secret)

	if err := database.Connect(cfg.DBPath); err != nil { // Connect to the database
		log.Fatal("DB connection error: ", err) // If error, log and exit
	}

	// STEP 2: Create Gin router, session store and templates
	r := gin.Default() // Create a new Gin router (web server)
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte(cfg.SessionSecret))))
	r.LoadHTMLGlob("templates/*.html")

	// Public routes (no session required)
	r.GET("/", handlers.Home)                // Landing page
	r.GET("/register", handlers.ShowRegister) // Registration form
	r.POST("/register", handlers.Register)    // Registration submission
	r.GET("/login", handlers.ShowLogin)       // Login form
	r.POST("/login", handlers.Login)          // Login submission
	r.GET("/logout", handlers.Logout)         // Clear session

	// Protected routes (require a logged-in session)
	authed := r.Group("/")               // Create a route group for protected endpoints
	authed.Use(middleware.RequireLogin()) // Apply session guard middleware
	{
		authed.GET("/users/:username", handlers.UserDetail)                  // Profile view
		authed.GET("/users/:username/delete", handlers.DeleteUser)           // Delete account (owner only)
		authed.GET("/users/:username/feedback/add", handlers.ShowAddFeedback) // Add-feedback form
		authed.POST("/users/:username/feedback/add", handlers.AddFeedback)   // Add-feedback submission
		authed.GET("/feedback/:id/update", handlers.ShowUpdateFeedback)      // Edit form (owner only)
		authed.POST("/feedback/:id/update", handlers.UpdateFeedback)         // Edit submission (owner only)
		authed.POST("/feedback/:id/delete", handlers.DeleteFeedback)         // Delete feedback (owner only)
	}

	// STEP 3: Start the web server
	r.Run(cfg.Addr) // Start the web server
}
