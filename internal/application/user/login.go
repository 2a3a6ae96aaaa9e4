package user

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/user"
	"github.com/kohyli/bookstore/pkg/jwt"
)

// LoginUseCase 用户登录用例
// 设计说明:
// 1. 凭证验证交给领域服务(邮箱不存在与密码错误不可区分)
// 2. 验证通过后签发携带身份声明的访问令牌,
//    后续请求无需查库即可还原身份
type LoginUseCase struct {
	userService user.Service
	jwtManager  *jwt.Manager
}

// NewLoginUseCase 创建登录用例
func NewLoginUseCase(userService user.Service, jwtManager *jwt.Manager) *LoginUseCase {
	return &LoginUseCase{
		userService: userService,
		jwtManager:  jwtManager,
	}
}

// Execute 执行登录
func (uc *LoginUseCase) Execute(ctx context.Context, req LoginRequest) (*LoginResponse, error) {
	u, err := uc.userService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	token, err := uc.jwtManager.GenerateToken(u.ID, u.Email, u.FirstName, u.LastName)
	if err != nil {
		return nil, err
	}

	return &LoginResponse{
		AccessToken: token,
		Type:        "jwt",
	}, nil
}

// LoginRequest 登录请求
type LoginRequest struct {
	Email    string
	Password string
}

// LoginResponse 登录响应
type LoginResponse struct {
	AccessToken string `json:"access_token"`
	Type        string `json:"type"`
}
