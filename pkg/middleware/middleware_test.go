package middleware

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/poseidontrading/poseidon/internal/auth"
	"github.com/poseidontrading/poseidon/internal/database"
	"github.com/poseidontrading/poseidon/internal/types"
)

func testAuthService(t *testing.T) *auth.Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	hash, err := bcrypt.GenerateFromPassword([]byte("s3cret"), bcrypt.MinCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&types.User{Username: "jdoe", Password: string(hash), Role: "USER"}).Error)

	return auth.NewService(db, "test-secret", 30*time.Minute)
}

func protectedRouter(svc *auth.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(SessionAuth(svc))
	r.GET("/bid/list", func(c *gin.Context) {
		c.String(http.StatusOK, "hello %s", c.GetString("username"))
	})
	return r
}

func TestSessionAuthRedirectsAnonymous(t *testing.T) {
	r := protectedRouter(testAuthService(t))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/bid/list", nil))

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionAuthRejectsGarbageCookie(t *testing.T) {
	r := protectedRouter(testAuthService(t))

	req := httptest.NewRequest(http.MethodGet, "/bid/list", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: "not-a-token"})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestSessionAuthPassesValidSession(t *testing.T) {
	svc := testAuthService(t)
	r := protectedRouter(svc)

	token, err := svc.Login("jdoe", "s3cret")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/bid/list", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookie, Value: token})
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "hello jdoe", rec.Body.String())
}

func TestRequestLoggerSetsRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(RequestLogger())
	r.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
