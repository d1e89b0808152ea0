package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Flash carries one-time messages across a redirect. Messages are stored in
// short-lived cookies and cleared as soon as they are read.
type Flash struct {
	Success string
	Error   string
}

const (
	successCookie = "flash_success"
	errorCookie   = "flash_error"

	// flashMaxAge bounds how long an unread flash survives.
	flashMaxAge = 60
)

// HTML renders the named template with the flash messages and the logged-in
// username merged into the template data.
func HTML(c *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	if _, ok := data["Flash"]; !ok {
		data["Flash"] = TakeFlash(c)
	}
	if _, ok := data["Username"]; !ok {
		data["Username"] = c.GetString("username")
	}
	c.HTML(status, name, data)
}

// RedirectWithSuccess sets a success flash and redirects to location.
func RedirectWithSuccess(c *gin.Context, location, message string) {
	setFlash(c, successCookie, message)
	c.Redirect(http.StatusFound, location)
}

// RedirectWithError sets an error flash and redirects to location.
func RedirectWithError(c *gin.Context, location, message string) {
	setFlash(c, errorCookie, message)
	c.Redirect(http.StatusFound, location)
}

// TakeFlash reads and clears any pending flash messages.
func TakeFlash(c *gin.Context) Flash {
	var flash Flash
	if v, err := c.Cookie(successCookie); err == nil && v != "" {
		flash.Success = v
		clearFlash(c, successCookie)
	}
	if v, err := c.Cookie(errorCookie); err == nil && v != "" {
		flash.Error = v
		clearFlash(c, errorCookie)
	}
	return flash
}

func setFlash(c *gin.Context, name, message string) {
	c.SetCookie(name, message, flashMaxAge, "/", "", false, true)
}

func clearFlash(c *gin.Context, name string) {
	c.SetCookie(name, "", -1, "/", "", false, true)
}
