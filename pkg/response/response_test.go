package response

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedirectWithSuccessSetsFlashCookie(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/bid/delete/1", nil)

	RedirectWithSuccess(c, "/bid/list", "Bid deleted successfully")

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/bid/list", rec.Header().Get("Location"))

	var found bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "flash_success" {
			found = true
			v, err := url.QueryUnescape(cookie.Value)
			require.NoError(t, err)
			assert.Equal(t, "Bid deleted successfully", v)
			assert.True(t, cookie.HttpOnly)
		}
	}
	assert.True(t, found)
}

func TestTakeFlashReadsAndClears(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/bid/list", nil)
	c.Request.AddCookie(&http.Cookie{Name: "flash_error", Value: url.QueryEscape("Bid 42 not found")})

	flash := TakeFlash(c)
	assert.Equal(t, "Bid 42 not found", flash.Error)
	assert.Empty(t, flash.Success)

	// The clearing cookie must expire the original.
	var cleared bool
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == "flash_error" && cookie.MaxAge < 0 {
			cleared = true
		}
	}
	assert.True(t, cleared)
}

func TestTakeFlashEmptyRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

	flash := TakeFlash(c)
	assert.Empty(t, flash.Success)
	assert.Empty(t, flash.Error)
}
