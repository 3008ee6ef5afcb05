package middleware

import (
	"net/http"
	"strings"
	"time"

	"littlelemon-api/config"
	"littlelemon-api/models"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

type Claims struct {
	UserID   uint   `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a given user. Role membership is
// deliberately not a claim: it is mutable, so gates read it from the store.
func GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(24 * time.Hour)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(config.JWTSecret)
}

// AuthRequired validates the JWT and injects the caller identity into context.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return config.JWTSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set("userID", claims.UserID)
		c.Set("username", claims.Username)
		c.Next()
	}
}

// RoleRequired enforces that the caller currently holds the given role.
// Membership is checked against the store on every request so that grants
// and revocations apply to tokens issued earlier.
func RoleRequired(role models.RoleName) gin.HandlerFunc {
	return func(c *gin.Context) {
		ok, err := models.UserHasRole(config.DB, GetUserID(c), role)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check role membership"})
			c.Abort()
			return
		}
		if !ok {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Required role: " + string(role)})
			c.Abort()
			return
		}
		c.Next()
	}
}

// AdminRequired enforces that the caller is a staff admin.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		var user models.User
		if err := config.DB.First(&user, GetUserID(c)).Error; err != nil {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		if !user.IsAdmin {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied. Admin only"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// GetUserID extracts the caller user ID from context.
func GetUserID(c *gin.Context) uint {
	val, _ := c.Get("userID")
	return val.(uint)
}

// GetUsername extracts the caller username from context.
func GetUsername(c *gin.Context) string {
	val, _ := c.Get("username")
	return val.(string)
}
