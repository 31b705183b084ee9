// user_test.go - Automated tests for registration, login and user handlers
// Run with: go test ./...

package handlers

import (
	"net/http"          // HTTP status codes
	"net/http/httptest" // HTTP test helpers
	"net/url"           // For building form bodies
	"os"                // For file operations
	"strings"           // For form body readers
	"testing"           // Go's testing package

	"go-feedback-app/database"   // Database connection
	"go-feedback-app/middleware" // Session guard middleware
	"go-feedback-app/models"     // User and Feedback models

	"github.com/gin-contrib/sessions"        // Cookie session management
	"github.com/gin-contrib/sessions/cookie" // Cookie-backed session store
	"github.com/gin-gonic/gin"               // Gin web framework
	"github.com/stretchr/testify/assert"     // For assertions
)

// setupTestDB removes any existing test DB and creates a new one for each test run
func setupTestDB(t *testing.T, path string) {
	_ = os.Remove(path)                             // Remove old test DB if exists
	assert.NoError(t, database.Connect(path))       // Connect and migrate
	t.Cleanup(func() { _ = os.Remove(path) })       // Remove test DB afterwards
}

// setupRouter returns a Gin engine with the full route table for testing
func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(sessions.Sessions("session", cookie.NewStore([]byte("testsecret"))))
	r.LoadHTMLGlob("../templates/*.html")

	r.GET("/", Home)
	r.GET("/register", ShowRegister)
	r.POST("/register", Register)
	r.GET("/login", ShowLogin)
	r.POST("/login", Login)
	r.GET("/logout", Logout)

	authed := r.Group("/")
	authed.Use(middleware.RequireLogin())
	{
		authed.GET("/users/:username", UserDetail)
		authed.GET("/users/:username/delete", DeleteUser)
		authed.GET("/users/:username/feedback/add", ShowAddFeedback)
		authed.POST("/users/:username/feedback/add", AddFeedback)
		authed.GET("/feedback/:id/update", ShowUpdateFeedback)
		authed.POST("/feedback/:id/update", UpdateFeedback)
		authed.POST("/feedback/:id/delete", DeleteFeedback)
	}

	return r
}

// doGet serves a GET request with the given session cookies
func doGet(router *gin.Engine, target string, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("GET", target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doPost serves a form POST with the given session cookies
func doPost(router *gin.Engine, target string, form url.Values, cookies []*http.Cookie) *httptest.ResponseRecorder {
	req, _ := http.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// registerForm builds a valid registration form for the given credentials
func registerForm(username, password string) url.Values {
	return url.Values{
		"username":   {username},
		"password":   {password},
		"email":      {username + "@example.com"},
		"first_name": {"Test"},
		"last_name":  {"User"},
	}
}

// registerUser registers a user and returns the session cookies
func registerUser(t *testing.T, router *gin.Engine, username, password string) []*http.Cookie {
	w := doPost(router, "/register", registerForm(username, password), nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/"+username, w.Header().Get("Location"))
	return w.Result().Cookies()
}

// TestRegisterAndLogin tests user registration and login
func TestRegisterAndLogin(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	// --- Test registration ---
	cookies := registerUser(t, router, "alice", "testpass")

	// Registration establishes a session
	w := doGet(router, "/users/alice", cookies)
	assert.Equal(t, http.StatusOK, w.Code)

	// --- Test login ---
	w = doPost(router, "/login", url.Values{"username": {"alice"}, "password": {"testpass"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/users/alice", w.Header().Get("Location"))

	// --- Test login with wrong password ---
	w = doPost(router, "/login", url.Values{"username": {"alice"}, "password": {"wrongpass"}}, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid username/password.")

	// A failed login must not establish a session
	w = doGet(router, "/users/alice", w.Result().Cookies())
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// TestDuplicateRegistration verifies that registering a taken username fails
// with a field error and persists no second row
func TestDuplicateRegistration(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	registerUser(t, router, "alice", "pw1")

	// Second registration with the same username redisplays the form
	w := doPost(router, "/register", registerForm("alice", "pw2"), nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Username taken. Please pick another")

	// No second row was persisted
	var count int64
	database.DB.Model(&models.User{}).Count(&count)
	assert.Equal(t, int64(1), count)

	// The failed attempt did not establish a session
	w = doGet(router, "/users/alice", w.Result().Cookies())
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// The original password still authenticates
	w = doPost(router, "/login", url.Values{"username": {"alice"}, "password": {"pw1"}}, nil)
	assert.Equal(t, http.StatusFound, w.Code)
}

// TestProfileRequiresLogin verifies anonymous requests are redirected to login
func TestProfileRequiresLogin(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	w := doGet(router, "/users/alice", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))
}

// TestProfileNotFound verifies unknown usernames render the 404 page
func TestProfileNotFound(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	cookies := registerUser(t, router, "alice", "testpass")

	w := doGet(router, "/users/ghost", cookies)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

// TestLogout verifies logout clears the session and is a no-op when anonymous
func TestLogout(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	cookies := registerUser(t, router, "alice", "testpass")

	// --- Test logout with a session ---
	w := doGet(router, "/logout", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	// The cleared session no longer grants access
	w = doGet(router, "/users/alice", w.Result().Cookies())
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/login", w.Header().Get("Location"))

	// --- Test logout without a session (defined no-op) ---
	w = doGet(router, "/logout", nil)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))
}

// TestDeleteUserCascades verifies deleting an account removes its feedback
func TestDeleteUserCascades(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	cookies := registerUser(t, router, "alice", "testpass")

	w := doPost(router, "/users/alice/feedback/add",
		url.Values{"title": {"t1"}, "content": {"c1"}}, cookies)
	assert.Equal(t, http.StatusFound, w.Code)

	w = doGet(router, "/users/alice/delete", cookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var users, feedback int64
	database.DB.Model(&models.User{}).Count(&users)
	database.DB.Model(&models.Feedback{}).Count(&feedback)
	assert.Equal(t, int64(0), users)
	assert.Equal(t, int64(0), feedback)
}

// TestDeleteOtherUserDenied verifies a user cannot delete another account
func TestDeleteOtherUserDenied(t *testing.T) {
	setupTestDB(t, "test_user.db")
	router := setupRouter()

	registerUser(t, router, "alice", "testpass")
	bobCookies := registerUser(t, router, "bob", "testpass")

	w := doGet(router, "/users/alice/delete", bobCookies)
	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/", w.Header().Get("Location"))

	var count int64
	database.DB.Model(&models.User{}).Where("username = ?", "alice").Count(&count)
	assert.Equal(t, int64(1), count)
}
