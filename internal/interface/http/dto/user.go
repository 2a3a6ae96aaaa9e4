package dto

// SignupRequest HTTP层注册请求
// 说明:HTTP层的DTO,包含参数验证tag
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required,min=1,max=100"`
	LastName  string `json:"last_name" binding:"required,min=1,max=100"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8,max=72"`
}

// LoginRequest HTTP层登录请求
// 说明:表单提交,username字段承载邮箱(OAuth2密码模式的惯例)
type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}
