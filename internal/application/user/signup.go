package user

import (
	"context"
	"time"

	"github.com/kohyli/bookstore/internal/domain/user"
	"github.com/kohyli/bookstore/pkg/metrics"
)

// SignupUseCase 用户注册用例
// 设计说明:
// 1. Application层负责用例编排,当前只调用一个领域服务
// 2. 邮箱冲突由领域服务经仓储上抛(UNIQUE索引,不预查)
type SignupUseCase struct {
	userService user.Service
}

// NewSignupUseCase 创建注册用例
func NewSignupUseCase(userService user.Service) *SignupUseCase {
	return &SignupUseCase{userService: userService}
}

// Execute 执行注册
func (uc *SignupUseCase) Execute(ctx context.Context, req SignupRequest) (*UserResponse, error) {
	u, err := uc.userService.Register(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.UsersSignedUpTotal)

	resp := toUserResponse(u)
	return &resp, nil
}

// =========================================
// 应用层DTO
// =========================================

// SignupRequest 注册请求
type SignupRequest struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// UserResponse 用户响应
// 说明:不返回密码字段(安全考虑)
type UserResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at"`
}

func toUserResponse(u *user.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt.Format(time.RFC3339),
	}
}
