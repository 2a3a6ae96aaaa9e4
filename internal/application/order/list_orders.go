package order

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/order"
)

// ListOrdersUseCase 订单列表查询用例(全量)
type ListOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListOrdersUseCase 创建订单列表用例
func NewListOrdersUseCase(orderRepo order.Repository) *ListOrdersUseCase {
	return &ListOrdersUseCase{orderRepo: orderRepo}
}

// Execute 执行订单列表查询
func (uc *ListOrdersUseCase) Execute(ctx context.Context) ([]OrderResponse, error) {
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}

// ListUserOrdersUseCase 用户订单列表查询用例("我的订单")
type ListUserOrdersUseCase struct {
	orderRepo order.Repository
}

// NewListUserOrdersUseCase 创建用户订单列表用例
func NewListUserOrdersUseCase(orderRepo order.Repository) *ListUserOrdersUseCase {
	return &ListUserOrdersUseCase{orderRepo: orderRepo}
}

// Execute 执行用户订单列表查询
// 用户ID来自已验证的Token claims,不校验用户现存与否
func (uc *ListUserOrdersUseCase) Execute(ctx context.Context, userID uint) ([]OrderResponse, error) {
	orders, err := uc.orderRepo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toOrderResponses(orders), nil
}
