package user

import (
	"context"

	"github.com/kohyli/bookstore/internal/infrastructure/persistence/redis"
	"github.com/kohyli/bookstore/pkg/jwt"
)

// LogoutUseCase 用户登出用例
// 设计说明:
// JWT无法主动失效,登出将当前Token加入Redis黑名单,
// TTL取Token剩余有效期,中间件对黑名单Token一律拒绝
type LogoutUseCase struct {
	jwtManager *jwt.Manager
	blacklist  *redis.TokenBlacklist
}

// NewLogoutUseCase 创建登出用例
func NewLogoutUseCase(jwtManager *jwt.Manager, blacklist *redis.TokenBlacklist) *LogoutUseCase {
	return &LogoutUseCase{jwtManager: jwtManager, blacklist: blacklist}
}

// Execute 执行登出
// claims由中间件解析后传入,token为原始Token串
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *jwt.Claims, token string) error {
	ttl := uc.jwtManager.RemainingLifetime(claims)
	return uc.blacklist.Add(ctx, token, ttl)
}
