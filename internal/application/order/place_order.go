package order

import (
	"context"
	"time"

	"github.com/kohyli/bookstore/internal/domain/book"
	"github.com/kohyli/bookstore/internal/domain/order"
	"github.com/kohyli/bookstore/internal/domain/user"
	"github.com/kohyli/bookstore/pkg/metrics"
)

// PlaceOrderUseCase 下单用例
// 这是整个项目最核心的用例:事务处理、并发控制、业务规则校验
type PlaceOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
	userRepo  user.Repository
	txManager order.TxManager
}

// NewPlaceOrderUseCase 创建下单用例
func NewPlaceOrderUseCase(
	orderRepo order.Repository,
	bookRepo book.Repository,
	userRepo user.Repository,
	txManager order.TxManager,
) *PlaceOrderUseCase {
	return &PlaceOrderUseCase{
		orderRepo: orderRepo,
		bookRepo:  bookRepo,
		userRepo:  userRepo,
		txManager: txManager,
	}
}

// PlaceOrderRequest 下单请求DTO
type PlaceOrderRequest struct {
	UserID uint             // 买家用户ID(路径参数)
	Items  []PlaceOrderItem // 订单明细
}

// PlaceOrderItem 下单明细项
type PlaceOrderItem struct {
	BookID   uint
	Quantity int
}

// Execute 执行下单
//
// 核心问题:库存超卖
// 场景:库存10本,100人同时下单
// 错误实现:先SELECT库存再判断再UPDATE,100个请求都能通过判断
// 正确实现:
//  1. SELECT FOR UPDATE锁定库存行
//  2. 在锁内校验库存
//  3. 条件UPDATE扣减(stock + delta >= 0兜底)
//  4. COMMIT释放锁
//
// 校验与落库分两个阶段:所有明细行先全部校验通过,
// 才开始任何写入;任何一行失败,整个事务回滚,零副作用
func (uc *PlaceOrderUseCase) Execute(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	start := time.Now()

	resp, err := uc.execute(ctx, req)
	metrics.ObserveHistogram(metrics.OrderPlacementDuration, time.Since(start).Seconds())
	if err != nil {
		metrics.IncCounter(metrics.OrdersFailedTotal)
		return nil, err
	}
	metrics.IncCounter(metrics.OrdersPlacedTotal)
	return resp, nil
}

func (uc *PlaceOrderUseCase) execute(ctx context.Context, req PlaceOrderRequest) (*OrderResponse, error) {
	// 1. 买家必须存在
	if _, err := uc.userRepo.FindByID(ctx, req.UserID); err != nil {
		return nil, err
	}

	// 2. 数量前置校验(不碰存储)
	for _, item := range req.Items {
		if item.Quantity <= 0 {
			return nil, order.ErrInvalidQuantity
		}
	}

	var result *order.Order
	err := uc.txManager.Transaction(ctx, func(txCtx context.Context) error {
		// ========================================
		// 阶段1:锁定并校验所有明细行
		// ========================================
		// SELECT FOR UPDATE对每本书加排他锁;其他事务必须等待
		// 当前事务COMMIT或ROLLBACK后才能访问同一行
		bookMap := make(map[uint]*book.Book, len(req.Items))
		for _, item := range req.Items {
			b, err := uc.bookRepo.LockByID(txCtx, item.BookID)
			if err != nil {
				return err
			}
			// 必须在锁内检查,否则并发扣减导致超卖
			if !b.HasStock(item.Quantity) {
				return book.ErrInsufficientStock
			}
			bookMap[item.BookID] = b
		}

		// ========================================
		// 阶段2:价格快照与总额计算
		// ========================================
		// 使用锁定时的数据库价格而非客户端传入值,防止改价攻击;
		// 快照冻结后图书改价不影响历史订单
		var total int64
		orderItems := make([]order.OrderItem, len(req.Items))
		for i, item := range req.Items {
			b := bookMap[item.BookID]
			orderItems[i] = order.OrderItem{
				BookID:          item.BookID,
				Quantity:        item.Quantity,
				PriceAtPurchase: b.Price,
			}
			total += b.Price * int64(item.Quantity)
		}

		// ========================================
		// 阶段3:落库订单(空明细允许,总额为0)
		// ========================================
		newOrder := order.NewOrder(req.UserID, orderItems, total)
		if err := uc.orderRepo.Create(txCtx, newOrder); err != nil {
			return err
		}

		// ========================================
		// 阶段4:扣减库存
		// ========================================
		// 条件UPDATE(stock + delta >= 0)是锁之外的第二道防线;
		// 同一本书在明细中重复出现时也由它兜底
		for _, item := range req.Items {
			if err := uc.bookRepo.UpdateStock(txCtx, item.BookID, -item.Quantity); err != nil {
				return err // 回滚:订单不会创建,库存不会减少
			}
		}

		result = newOrder
		return nil
	})
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(result)
	return &resp, nil
}
