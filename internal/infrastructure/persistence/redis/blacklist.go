package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	apperrors "github.com/kohyli/bookstore/pkg/errors"
)

// TokenBlacklist JWT黑名单
// 设计说明:
// 1. JWT是无状态的,服务端无法主动让Token失效;
//    登出通过黑名单实现主动吊销
// 2. Key设计:blacklist:{token},TTL取Token的剩余有效期,
//    过期后自动清理,黑名单不会无限增长
type TokenBlacklist struct {
	client *redis.Client
}

// NewTokenBlacklist 创建黑名单存储
func NewTokenBlacklist(client *redis.Client) *TokenBlacklist {
	return &TokenBlacklist{client: client}
}

// Add 将Token加入黑名单
// ttl应取Token的剩余有效期;ttl<=0说明Token已过期,无需入黑名单
func (b *TokenBlacklist) Add(ctx context.Context, token string, ttl time.Duration) error {
	if ttl <= 0 {
		return nil
	}

	key := fmt.Sprintf("blacklist:%s", token)
	if err := b.client.Set(ctx, key, "revoked", ttl).Err(); err != nil {
		return apperrors.Wrap(err, "failed to blacklist token")
	}
	return nil
}

// Contains 检查Token是否在黑名单中
func (b *TokenBlacklist) Contains(ctx context.Context, token string) (bool, error) {
	key := fmt.Sprintf("blacklist:%s", token)

	exists, err := b.client.Exists(ctx, key).Result()
	if err != nil {
		return false, apperrors.Wrap(err, "failed to check token blacklist")
	}
	return exists > 0, nil
}
