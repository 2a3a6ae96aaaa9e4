package order

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/order"
	"github.com/kohyli/bookstore/pkg/metrics"
)

// CancelOrderUseCase 取消订单用例
// 契约说明:
// 1. 取消不设状态防护:任何现存订单都可取消,重复取消幂等
// 2. 取消不回补库存(库存只在下单时扣减)
type CancelOrderUseCase struct {
	orderRepo order.Repository
	txManager order.TxManager
}

// NewCancelOrderUseCase 创建取消订单用例
func NewCancelOrderUseCase(orderRepo order.Repository, txManager order.TxManager) *CancelOrderUseCase {
	return &CancelOrderUseCase{orderRepo: orderRepo, txManager: txManager}
}

// Execute 执行取消
// 订单不存在返回ErrOrderNotFound;成功返回取消后的订单
func (uc *CancelOrderUseCase) Execute(ctx context.Context, orderID uint) (*OrderResponse, error) {
	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		o, err := uc.orderRepo.FindByID(txCtx, orderID)
		if err != nil {
			return err
		}

		o.Cancel()
		if err := uc.orderRepo.UpdateStatus(txCtx, o.ID, o.Status); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	metrics.IncCounter(metrics.OrdersCancelledTotal)

	resp := toOrderResponse(result)
	return &resp, nil
}
