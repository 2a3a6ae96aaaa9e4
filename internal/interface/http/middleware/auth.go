package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kohyli/bookstore/internal/infrastructure/persistence/redis"
	apperrors "github.com/kohyli/bookstore/pkg/errors"
	"github.com/kohyli/bookstore/pkg/jwt"
	"github.com/kohyli/bookstore/pkg/response"
)

// AuthMiddleware JWT认证中间件
// 设计说明:
// 1. 从Header提取Token(Authorization: Bearer <token>)
// 2. 检查Token黑名单(已登出的Token拒绝)
// 3. 验证签名与过期,将claims注入Context
type AuthMiddleware struct {
	jwtManager *jwt.Manager
	blacklist  *redis.TokenBlacklist
}

// NewAuthMiddleware 创建认证中间件
func NewAuthMiddleware(jwtManager *jwt.Manager, blacklist *redis.TokenBlacklist) *AuthMiddleware {
	return &AuthMiddleware{
		jwtManager: jwtManager,
		blacklist:  blacklist,
	}
}

// RequireAuth 要求登录
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Error(c, apperrors.ErrUnauthorized)
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Error(c, apperrors.ErrInvalidToken)
			c.Abort()
			return
		}
		tokenString := parts[1]

		// 已登出的Token在过期前仍能通过签名校验,必须先查黑名单
		blacklisted, err := m.blacklist.Contains(c.Request.Context(), tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}
		if blacklisted {
			response.Error(c, apperrors.ErrTokenRevoked)
			c.Abort()
			return
		}

		// 区分过期与非法:都是401,业务码不同
		claims, err := m.jwtManager.ParseToken(tokenString)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("claims", claims)
		c.Set("token", tokenString)

		c.Next()
	}
}

// =========================================
// Context辅助函数(供Handler使用)
// =========================================

// GetUserID 从Context获取当前登录用户ID,未登录返回0
func GetUserID(c *gin.Context) uint {
	if userID, exists := c.Get("user_id"); exists {
		if uid, ok := userID.(uint); ok {
			return uid
		}
	}
	return 0
}

// GetClaims 从Context获取已验证的Token claims
func GetClaims(c *gin.Context) *jwt.Claims {
	if v, exists := c.Get("claims"); exists {
		if claims, ok := v.(*jwt.Claims); ok {
			return claims
		}
	}
	return nil
}

// GetToken 从Context获取原始Token串(登出时入黑名单用)
func GetToken(c *gin.Context) string {
	if v, exists := c.Get("token"); exists {
		if token, ok := v.(string); ok {
			return token
		}
	}
	return ""
}
