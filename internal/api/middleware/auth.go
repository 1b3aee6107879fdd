package middleware

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"

	apierrors "github.com/ufund-io/ufund-v2/internal/api/shared/errors"
	"github.com/ufund-io/ufund-v2/internal/domain"
	"github.com/ufund-io/ufund-v2/internal/logger"
)

const (
	// AUTH_USER_KEY is the gin context key holding the authenticated user name
	AUTH_USER_KEY = "auth_user"
	// AUTH_ROLE_KEY is the gin context key holding the authenticated role
	AUTH_ROLE_KEY = "auth_role"
	// JWT_CLAIMS_KEY is the gin context key holding the full claims
	JWT_CLAIMS_KEY = "jwt_claims"
)

// AuthConfig holds authentication configuration
type AuthConfig struct {
	// JWTSigningKey is the HMAC secret tokens are signed with
	JWTSigningKey string
}

// SessionClaims are the JWT claims carried by a helper session. Subject is
// the user name.
type SessionClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// AuthResult holds the result of authentication
type AuthResult struct {
	Success bool
	Claims  *SessionClaims
	Error   error
}

// Authenticate validates the Authorization header and returns the result
func Authenticate(authHeader string, cfg AuthConfig) AuthResult {
	result := AuthResult{Success: false}

	if authHeader == "" {
		result.Error = errors.New("missing Authorization header")
		return result
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		result.Error = errors.New("invalid Authorization header format")
		return result
	}

	claims, err := validateJWT(parts[1], cfg.JWTSigningKey)
	if err != nil {
		result.Error = err
		return result
	}

	result.Success = true
	result.Claims = claims
	return result
}

// Auth returns a gin middleware that requires a valid bearer token and
// stores the session identity in the request context
func Auth(cfg AuthConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		result := Authenticate(authHeader, cfg)

		if !result.Success {
			logger.Warn("Authentication failed",
				zap.Error(result.Error),
				zap.String("path", c.Request.URL.Path),
				zap.String("client_ip", c.ClientIP()),
			)
			apiErr := apierrors.NewUnauthorizedError("Authentication failed", result.Error.Error())
			c.AbortWithStatusJSON(http.StatusUnauthorized, apiErr)
			return
		}

		c.Set(AUTH_USER_KEY, result.Claims.Subject)
		c.Set(AUTH_ROLE_KEY, result.Claims.Role)
		c.Set(JWT_CLAIMS_KEY, result.Claims)

		c.Next()
	}
}

// RequireManager returns a gin middleware that rejects sessions without the
// manager role. Must run after Auth.
func RequireManager() gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := c.Get(AUTH_ROLE_KEY)
		if !ok || role.(domain.Role) != domain.RoleManager {
			apiErr := apierrors.NewForbiddenError("Manager role required")
			c.AbortWithStatusJSON(http.StatusForbidden, apiErr)
			return
		}
		c.Next()
	}
}

// AuthUser returns the authenticated user name from the gin context
func AuthUser(c *gin.Context) string {
	if user, ok := c.Get(AUTH_USER_KEY); ok {
		return user.(string)
	}
	return ""
}

// AuthRole returns the authenticated role from the gin context
func AuthRole(c *gin.Context) domain.Role {
	if role, ok := c.Get(AUTH_ROLE_KEY); ok {
		return role.(domain.Role)
	}
	return ""
}

// validateJWT validates an HMAC-signed JWT and returns its claims
func validateJWT(tokenString string, signingKey string) (*SessionClaims, error) {
	if signingKey == "" {
		return nil, errors.New("JWT signing key not configured")
	}

	claims := &SessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(signingKey), nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if claims.Subject == "" {
		return nil, errors.New("token is missing a subject")
	}
	if !domain.IsValidRole(claims.Role) {
		return nil, fmt.Errorf("invalid role: %s", claims.Role)
	}

	return claims, nil
}
