package order

import (
	"context"

	appbook "github.com/kohyli/bookstore/internal/application/book"
	"github.com/kohyli/bookstore/internal/domain/book"
	"github.com/kohyli/bookstore/internal/domain/order"
)

// GetOrderUseCase 订单详情查询用例
// 明细行回表补全当前图书信息;图书已被删除时该行
// 以Title为null的占位形式返回,不报错
type GetOrderUseCase struct {
	orderRepo order.Repository
	bookRepo  book.Repository
}

// NewGetOrderUseCase 创建订单详情用例
func NewGetOrderUseCase(orderRepo order.Repository, bookRepo book.Repository) *GetOrderUseCase {
	return &GetOrderUseCase{orderRepo: orderRepo, bookRepo: bookRepo}
}

// Execute 执行订单详情查询
func (uc *GetOrderUseCase) Execute(ctx context.Context, orderID uint) (*OrderResponse, error) {
	o, err := uc.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	ids := make([]uint, len(o.Items))
	for i, item := range o.Items {
		ids[i] = item.BookID
	}
	books, err := uc.bookRepo.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	resp := toOrderResponse(o)
	for i, item := range o.Items {
		if b, ok := books[item.BookID]; ok {
			title := b.Title
			resp.Items[i].Book = &OrderItemBook{
				ID:         b.ID,
				Title:      &title,
				ISBN:       b.ISBN,
				PriceCents: b.Price,
				Price:      appbook.FormatPrice(b.Price),
			}
		} else {
			// 图书已删除:占位条目,Title为null
			resp.Items[i].Book = &OrderItemBook{ID: item.BookID, Title: nil}
		}
	}
	return &resp, nil
}
