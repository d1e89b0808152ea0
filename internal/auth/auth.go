package auth

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/poseidontrading/poseidon/internal/types"
	"github.com/poseidontrading/poseidon/pkg/response"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrTokenGeneration    = errors.New("failed to generate session token")
)

// SessionCookie is the name of the cookie carrying the session token.
const SessionCookie = "poseidon_session"

// Claims represents the session token claims structure.
type Claims struct {
	jwt.RegisteredClaims
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Service handles authentication against the users table and issues signed
// session tokens.
type Service struct {
	db         *gorm.DB
	jwtSecret  []byte
	sessionTTL time.Duration
}

// NewService creates a new authentication service with the given session
// secret and session lifetime.
func NewService(db *gorm.DB, jwtSecret string, sessionTTL time.Duration) *Service {
	return &Service{
		db:         db,
		jwtSecret:  []byte(jwtSecret),
		sessionTTL: sessionTTL,
	}
}

// Login verifies the credentials against the users table and returns a signed
// session token on success.
func (s *Service) Login(username, password string) (string, error) {
	var user types.User
	if err := s.db.Where("username = ?", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
		Username: user.Username,
		Role:     user.Role,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", ErrTokenGeneration
	}
	return tokenString, nil
}

// ValidateToken validates a session token and returns the claims.
// Verifies token signature and expiration.
func (s *Service) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid session token")
}

// SessionTTL exposes the configured session lifetime, used to bound the
// session cookie's max age.
func (s *Service) SessionTTL() time.Duration {
	return s.sessionTTL
}

// GinHandlers contains HTTP handlers for the login and logout pages.
type GinHandlers struct {
	service *Service
}

// NewGinHandlers creates a new set of HTTP handlers for authentication endpoints.
func NewGinHandlers(service *Service) *GinHandlers {
	return &GinHandlers{
		service: service,
	}
}

// LoginPageHandler handles GET requests for the login form.
func (h *GinHandlers) LoginPageHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		response.HTML(c, http.StatusOK, "login", gin.H{})
	}
}

// LoginHandler handles POST requests from the login form. On success it sets
// the session cookie and redirects to the bid list; on failure it re-renders
// the form with an error.
func (h *GinHandlers) LoginHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		username := c.PostForm("username")
		password := c.PostForm("password")

		token, err := h.service.Login(username, password)
		if err != nil {
			if !errors.Is(err, ErrInvalidCredentials) {
				log.Error().Err(err).Str("username", username).Msg("login failed")
			}
			response.HTML(c, http.StatusUnauthorized, "login", gin.H{
				"Error":    "Invalid username or password",
				"Username": username,
			})
			return
		}

		maxAge := int(h.service.SessionTTL().Seconds())
		c.SetCookie(SessionCookie, token, maxAge, "/", "", false, true)
		c.Redirect(http.StatusFound, "/bid/list")
	}
}

// LogoutHandler handles POST requests to end the session. It clears the
// session cookie and redirects to the login page.
func (h *GinHandlers) LogoutHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
		response.RedirectWithSuccess(c, "/login", "You have been signed out")
	}
}
