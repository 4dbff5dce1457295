package auth

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aaravsharma17/cloudbin/internal/model"
	"github.com/aaravsharma17/cloudbin/internal/pkg/jwt"
	"github.com/aaravsharma17/cloudbin/internal/pkg/redis"
	"github.com/aaravsharma17/cloudbin/internal/service"
)

var (
	rateLimiter = service.NewRegistrationRateLimit(5*time.Minute, 10)
)

// Register handles account registration
func Register(c *gin.Context) {
	var req model.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	clientIP := c.ClientIP()
	if !rateLimiter.Check(clientIP) {
		c.JSON(http.StatusTooManyRequests, gin.H{"detail": "Too many registration requests. Maximum 10 requests per 5 minutes."})
		return
	}

	tokenResp, err := service.Register(req.Username, req.Email, req.Password)
	if err != nil {
		switch err {
		case service.ErrUsernameTaken:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Username already taken"})
		case service.ErrEmailTaken:
			c.JSON(http.StatusBadRequest, gin.H{"detail": "Email already registered"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tokenResp)
}

// Login handles account login
func Login(c *gin.Context) {
	var req model.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"detail": err.Error()})
		return
	}

	tokenResp, err := service.Login(req.Username, req.Password, req.Role)
	if err != nil {
		switch err {
		case service.ErrInvalidCredentials:
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid username or password"})
		case service.ErrRoleMismatch:
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid credentials for " + req.Role + " login"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
		}
		return
	}

	c.JSON(http.StatusOK, tokenResp)
}

// Logout revokes the current session token. Without Redis the server
// cannot track revocation and the client simply discards the token.
func Logout(c *gin.Context) {
	claims := currentClaims(c)
	if claims == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not logged in"})
		return
	}

	if redis.Available() && claims.ExpiresAt != nil {
		ttl := time.Until(claims.ExpiresAt.Time)
		if err := redis.RevokeSession(claims.ID, ttl); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// GetCurrentAccount returns the caller's account
func GetCurrentAccount(c *gin.Context) {
	account := CurrentAccount(c)
	if account == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"detail": "Not logged in"})
		return
	}

	c.JSON(http.StatusOK, account.Info())
}

// AuthMiddleware validates the bearer token and resolves the caller's
// account once per request. Handlers downstream read the account from
// the request context, never from anything ambient.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Authorization header missing"})
			c.Abort()
			return
		}

		token, err := jwt.ExtractTokenFromHeader(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid authorization header format"})
			c.Abort()
			return
		}

		claims, err := jwt.ValidateToken(token)
		if err != nil {
			if err == jwt.ErrExpiredToken {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Token has expired"})
			} else {
				c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			}
			c.Abort()
			return
		}

		revoked, err := redis.IsSessionRevoked(claims.ID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
			c.Abort()
			return
		}
		if revoked {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Session has been logged out"})
			c.Abort()
			return
		}

		account, err := service.GetAccountByID(claims.AccountID)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"detail": "Invalid token"})
			c.Abort()
			return
		}

		c.Set("account", account)
		c.Set("claims", claims)
		c.Next()
	}
}

// RequireRole checks the stored role of the resolved account. The role
// claim inside the token is never consulted here.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		account := CurrentAccount(c)
		if account == nil || account.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"detail": role + " access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentAccount returns the account resolved by AuthMiddleware
func CurrentAccount(c *gin.Context) *model.Account {
	if v, ok := c.Get("account"); ok {
		if account, ok := v.(*model.Account); ok {
			return account
		}
	}
	return nil
}

func currentClaims(c *gin.Context) *jwt.Claims {
	if v, ok := c.Get("claims"); ok {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}
