package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohyli/bookstore/internal/domain/book"
	"github.com/kohyli/bookstore/internal/domain/order"
)

// TestGetOrder_Enriched 明细回表补全图书信息
func TestGetOrder_Enriched(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	bookRepo := &fakeBookRepo{books: map[uint]*book.Book{
		200: {ID: 200, Title: "Pride and Prejudice", ISBN: "978-0", Price: 1500, Stock: 97},
	}}
	o := &order.Order{
		UserID:    1,
		OrderDate: time.Now().UTC(),
		Total:     4500,
		Status:    order.StatusCreated,
		Items: []order.OrderItem{
			{BookID: 200, Quantity: 3, PriceAtPurchase: 1500},
			{BookID: 999, Quantity: 1, PriceAtPurchase: 0}, // 图书已删除
		},
	}
	require.NoError(t, orderRepo.Create(context.Background(), o))

	uc := NewGetOrderUseCase(orderRepo, bookRepo)
	resp, err := uc.Execute(context.Background(), o.ID)
	require.NoError(t, err)
	require.Len(t, resp.Items, 2)

	// 现存图书:完整信息
	require.NotNil(t, resp.Items[0].Book)
	require.NotNil(t, resp.Items[0].Book.Title)
	assert.Equal(t, "Pride and Prejudice", *resp.Items[0].Book.Title)
	assert.Equal(t, "15.00", resp.Items[0].Book.Price)

	// 已删除图书:占位条目,Title为null,不报错
	require.NotNil(t, resp.Items[1].Book)
	assert.Nil(t, resp.Items[1].Book.Title)
	assert.Equal(t, uint(999), resp.Items[1].Book.ID)
}

// TestGetOrder_NotFound 订单不存在返回404错误
func TestGetOrder_NotFound(t *testing.T) {
	uc := NewGetOrderUseCase(newFakeOrderRepo(), &fakeBookRepo{books: map[uint]*book.Book{}})

	_, err := uc.Execute(context.Background(), 7)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
