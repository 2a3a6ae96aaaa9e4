package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/kohyli/bookstore/internal/application/order"
	appuser "github.com/kohyli/bookstore/internal/application/user"
	"github.com/kohyli/bookstore/internal/interface/http/dto"
	"github.com/kohyli/bookstore/internal/interface/http/middleware"
	apperrors "github.com/kohyli/bookstore/pkg/errors"
	"github.com/kohyli/bookstore/pkg/response"
)

// UserHandler 用户HTTP处理器
type UserHandler struct {
	signupUseCase        *appuser.SignupUseCase
	loginUseCase         *appuser.LoginUseCase
	logoutUseCase        *appuser.LogoutUseCase
	deleteAccountUseCase *appuser.DeleteAccountUseCase
	listUserOrders       *apporder.ListUserOrdersUseCase
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	signupUseCase *appuser.SignupUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	deleteAccountUseCase *appuser.DeleteAccountUseCase,
	listUserOrders *apporder.ListUserOrdersUseCase,
) *UserHandler {
	return &UserHandler{
		signupUseCase:        signupUseCase,
		loginUseCase:         loginUseCase,
		logoutUseCase:        logoutUseCase,
		deleteAccountUseCase: deleteAccountUseCase,
		listUserOrders:       listUserOrders,
	}
}

// Signup 用户注册
// @Summary      用户注册
// @Description  注册新用户;密码bcrypt加密存储,响应不回显密码
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.SignupRequest true "注册信息"
// @Success      200 {object} response.Response{data=user.UserResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "邮箱已注册"
// @Router       /users/signup [post]
func (h *UserHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "invalid request: "+err.Error()))
		return
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), appuser.SignupRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Login 用户登录
// @Summary      用户登录
// @Description  表单提交(username承载邮箱);成功返回访问令牌
// @Tags         用户
// @Accept       x-www-form-urlencoded
// @Produce      json
// @Param        username formData string true "邮箱"
// @Param        password formData string true "密码"
// @Success      200 {object} response.Response{data=user.LoginResponse}
// @Failure      401 {object} response.Response "邮箱或密码错误"
// @Router       /users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "invalid request: "+err.Error()))
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		Email:    req.Username,
		Password: req.Password,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// Logout 用户登出
// @Summary      用户登出
// @Description  将当前Token加入黑名单,剩余有效期内拒绝复用
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=bool}
// @Failure      401 {object} response.Response "未登录"
// @Router       /users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	claims := middleware.GetClaims(c)
	token := middleware.GetToken(c)
	if claims == nil || token == "" {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.logoutUseCase.Execute(c.Request.Context(), claims, token); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, true)
}

// DeleteAccount 注销账户
// @Summary      注销账户
// @Description  删除当前登录用户;历史订单保留
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=bool}
// @Failure      401 {object} response.Response "未登录"
// @Failure      404 {object} response.Response "用户已不存在"
// @Router       /users/delete [delete]
func (h *UserHandler) DeleteAccount(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.deleteAccountUseCase.Execute(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, true)
}

// MyOrders 我的订单
// @Summary      我的订单
// @Description  查询当前登录用户的全部订单
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response{data=[]order.OrderResponse}
// @Failure      401 {object} response.Response "未登录"
// @Router       /users/orders [get]
func (h *UserHandler) MyOrders(c *gin.Context) {
	userID := middleware.GetUserID(c)
	if userID == 0 {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	result, err := h.listUserOrders.Execute(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
