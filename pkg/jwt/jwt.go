package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/kohyli/bookstore/pkg/errors"
)

// Manager JWT管理器
// 设计说明：
// 1. 签发HS256访问Token，默认有效期60分钟（可配置）
// 2. Claims携带用户身份（user_id、email、姓名），避免每次请求查库
// 3. Token无法主动失效，配合Redis黑名单实现登出（见redis.TokenBlacklist）
type Manager struct {
	secret            string        // JWT签名密钥
	accessTokenExpire time.Duration // Access Token有效期
}

// NewManager 创建JWT管理器
func NewManager(secret string, accessTokenExpire time.Duration) *Manager {
	return &Manager{
		secret:            secret,
		accessTokenExpire: accessTokenExpire,
	}
}

// Claims 自定义JWT Claims
// 学习要点：
// 1. 嵌入jwt.RegisteredClaims获取标准字段（exp、iat、nbf等）
// 2. 自定义字段即"Token claims"：足以重建身份，但仍受签名与过期校验约束
type Claims struct {
	UserID    uint   `json:"user_id"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	jwt.RegisteredClaims
}

// GenerateToken 签发访问Token
func (m *Manager) GenerateToken(userID uint, email, firstName, lastName string) (string, error) {
	now := time.Now()

	claims := Claims{
		UserID:    userID,
		Email:     email,
		FirstName: firstName,
		LastName:  lastName,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTokenExpire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "kohyli-bookstore",
			Subject:   fmt.Sprintf("%d", userID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign access token")
	}

	return tokenString, nil
}

// ParseToken 解析并验证Token
// 错误契约：
// - 过期返回ErrTokenExpired（边界层可单独提示）
// - 签名/格式非法返回ErrInvalidToken
// 两者都是401，但业务码不同
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		// 验证签名算法，防止alg=none等降级攻击
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}

	return nil, apperrors.ErrInvalidToken
}

// RemainingLifetime 返回Token距过期的剩余时长
// 用途：登出时黑名单的TTL只需覆盖剩余有效期，过期后Redis自动清理
func (m *Manager) RemainingLifetime(claims *Claims) time.Duration {
	if claims.ExpiresAt == nil {
		return m.accessTokenExpire
	}
	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining < 0 {
		return 0
	}
	return remaining
}
