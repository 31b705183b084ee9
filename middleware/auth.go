// auth.go - Session-based authentication and ownership checks
// This file implements the guards that run before protected handlers
//
// Authentication Flow:
// 1. Read the username from the cookie session
// 2. If absent, flash a warning and redirect to the login page
// 3. If present, store the username in the gin context for handlers
//
// Ownership Flow:
// 1. Run after RequireLogin (handler already has the session username)
// 2. Compare the session username to the resource owner
// 3. On mismatch, flash a denial and redirect away

package middleware // Declares the package name

import ( // Import required packages
	"encoding/gob" // Session values are gob-encoded by the cookie store
	"net/http"     // HTTP status codes (302, etc.)

	"github.com/gin-contrib/sessions" // Cookie session management
	"github.com/gin-gonic/gin"        // Gin web framework
)

const sessionUserKey = "username" // Session key holding the authenticated username

// FlashMessage is a one-time notice shown on the next rendered page.
type FlashMessage struct {
	Category string // Bootstrap-style category: primary, info, danger
	Message  string
}

func init() {
	gob.Register(FlashMessage{}) // The cookie store serializes session values with gob
}

// RequireLogin - Returns a Gin middleware function guarding protected routes
//
// How it works:
// 1. Reads the username from the cookie session
// 2. Anonymous requests get a warning flash and a redirect to /login
// 3. Authenticated requests get the username stored in the gin context,
//    so handlers read identity from the request context and never touch
//    session state directly
func RequireLogin() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		username, ok := session.Get(sessionUserKey).(string)
		if !ok || username == "" {
			Flash(c, "danger", "Please login first")
			Redirect(c, "/login")
			c.Abort()
			return
		}
		c.Set(sessionUserKey, username) // Store username in Gin context
		c.Next()
	}
}

// CurrentUser returns the authenticated username stored by RequireLogin.
func CurrentUser(c *gin.Context) string {
	return c.GetString(sessionUserKey)
}

// RequireOwner permits the operation only when the authenticated user owns
// the resource. On mismatch it flashes a denial, redirects, and reports
// false; the caller must return without touching the resource.
func RequireOwner(c *gin.Context, owner, denial, location string) bool {
	if CurrentUser(c) != owner {
		Flash(c, "danger", denial)
		Redirect(c, location)
		return false
	}
	return true
}

// SetSessionUser marks the session as authenticated for the given username.
// The change is written out by the next Redirect or TakeFlashes call.
func SetSessionUser(c *gin.Context, username string) {
	sessions.Default(c).Set(sessionUserKey, username)
}

// ClearSessionUser removes the authenticated username from the session.
// Clearing an anonymous session is a defined no-op.
func ClearSessionUser(c *gin.Context) {
	sessions.Default(c).Delete(sessionUserKey)
}

// Flash queues a one-time notice for the next rendered page.
func Flash(c *gin.Context, category, message string) {
	sessions.Default(c).AddFlash(FlashMessage{Category: category, Message: message})
}

// Redirect saves pending session changes and then redirects. The order
// matters: the session cookie must be written before the redirect flushes
// the response headers.
func Redirect(c *gin.Context, location string) {
	_ = sessions.Default(c).Save()
	c.Redirect(http.StatusFound, location)
}

// TakeFlashes drains the queued notices for rendering. Reading flashes
// mutates the session, so it is saved here, before the response body is
// written.
func TakeFlashes(c *gin.Context) []FlashMessage {
	session := sessions.Default(c)
	raw := session.Flashes()
	_ = session.Save()
	flashes := make([]FlashMessage, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(FlashMessage); ok {
			flashes = append(flashes, msg)
		}
	}
	return flashes
}
