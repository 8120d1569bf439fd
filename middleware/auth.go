package middleware

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"joigo-tour-backend/config"
	"joigo-tour-backend/model"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ContextUserID = "user_id"
	ContextRole   = "role"
)

type Claims struct {
	UserID string
	Role   string
	jwt.RegisteredClaims
}

func GenerateToken(userID, role string) (string, error) {
	expire := time.Duration(config.Cfg.JWT.ExpireHours) * time.Hour
	claims := Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expire)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	secretKey := []byte(config.Cfg.JWT.SecretKey)
	return token.SignedString(secretKey)
}

func parseToken(authHeader string) (*Claims, bool) {
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" {
		return nil, false
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(parts[1], claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(config.Cfg.JWT.SecretKey), nil
	})
	if err != nil || !token.Valid {
		return nil, false
	}

	return claims, true
}

// AuthMiddleware 缺失或非法的凭证一律 401
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			slog.Info("Authorization header required")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		claims, ok := parseToken(authHeader)
		if !ok {
			slog.Info("Invalid token")
			c.AbortWithStatus(http.StatusUnauthorized)
			return
		}

		c.Set(ContextUserID, claims.UserID)
		c.Set(ContextRole, claims.Role)
		c.Next()
	}
}

// OptionalAuthMiddleware 有合法凭证则解析身份，否则按匿名放行
func OptionalAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			if claims, ok := parseToken(authHeader); ok {
				c.Set(ContextUserID, claims.UserID)
				c.Set(ContextRole, claims.Role)
			}
		}
		c.Next()
	}
}

// AdminMiddleware 必须在 AuthMiddleware 之后使用
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(ContextRole) != model.RoleAdmin {
			c.AbortWithStatus(http.StatusForbidden)
			return
		}
		c.Next()
	}
}

// UserIDFrom 匿名请求返回 nil
func UserIDFrom(c *gin.Context) *string {
	userID := c.GetString(ContextUserID)
	if userID == "" {
		return nil
	}
	return &userID
}
