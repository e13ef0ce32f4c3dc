package middleware

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"foodinfo/internal/permissions"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware requires a valid bearer token and stores the caller's
// identity in the request context.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header is required",
				"error":   "Missing authorization token",
			})
			c.Abort()
			return
		}

		claims, err := parseToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		setActor(c, claims)
		c.Next()
	}
}

// OptionalAuthMiddleware resolves the caller when a token is present and
// lets anonymous requests through. A malformed token is still rejected.
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		claims, err := parseToken(authHeader)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
				"error":   err.Error(),
			})
			c.Abort()
			return
		}

		setActor(c, claims)
		c.Next()
	}
}

// CurrentActor reads the caller identity set by the auth middleware.
// Requests that carried no token yield an anonymous actor.
func CurrentActor(c *gin.Context) permissions.Actor {
	userID, ok := c.Get("user_id")
	if !ok {
		return permissions.Actor{Anonymous: true}
	}
	return permissions.Actor{
		ID:      userID.(uint),
		IsStaff: c.GetBool("is_staff"),
	}
}

func parseToken(authHeader string) (jwt.MapClaims, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return nil, fmt.Errorf("use format: Bearer {token}")
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET_KEY"))
	token, err := jwt.Parse(parts[1], func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("token validation failed")
	}
	return claims, nil
}

func setActor(c *gin.Context, claims jwt.MapClaims) {
	if id, ok := claims["user_id"].(float64); ok {
		c.Set("user_id", uint(id))
	}
	if username, ok := claims["username"].(string); ok {
		c.Set("username", username)
	}
	if isStaff, ok := claims["is_staff"].(bool); ok {
		c.Set("is_staff", isStaff)
	}
}
