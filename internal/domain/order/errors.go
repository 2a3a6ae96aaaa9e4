package order

import (
	apperrors "github.com/kohyli/bookstore/pkg/errors"
)

// 订单领域错误定义
var (
	// ErrOrderNotFound 订单不存在
	ErrOrderNotFound = apperrors.ErrOrderNotFound

	// ErrInvalidQuantity 购买数量不合法
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "quantity must be greater than 0")

	// ErrUnknownStatus 存储中出现无法识别的状态Token
	ErrUnknownStatus = apperrors.New(apperrors.ErrCodeInvalidStatus, "unknown order status")
)
