package user

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/user"
)

// DeleteAccountUseCase 注销账户用例
// 说明:删除用户行;历史订单通过UserID引用保留(孤儿引用被容忍),
// 不做级联清理
type DeleteAccountUseCase struct {
	userRepo user.Repository
}

// NewDeleteAccountUseCase 创建注销账户用例
func NewDeleteAccountUseCase(userRepo user.Repository) *DeleteAccountUseCase {
	return &DeleteAccountUseCase{userRepo: userRepo}
}

// Execute 执行注销
// 用户已不存在时返回ErrUserNotFound(Token有效但账户已删除的场景)
func (uc *DeleteAccountUseCase) Execute(ctx context.Context, userID uint) error {
	return uc.userRepo.Delete(ctx, userID)
}
