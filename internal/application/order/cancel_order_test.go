package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohyli/bookstore/internal/domain/order"
)

func seedCancellable(repo *fakeOrderRepo, status order.OrderStatus) *order.Order {
	o := &order.Order{
		UserID:    1,
		OrderDate: time.Now().UTC(),
		Total:     3000,
		Status:    status,
		Items:     []order.OrderItem{{BookID: 200, Quantity: 2, PriceAtPurchase: 1500}},
	}
	_ = repo.Create(context.Background(), o)
	return o
}

// TestCancelOrder 取消现存订单
func TestCancelOrder(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	o := seedCancellable(orderRepo, order.StatusCreated)
	uc := NewCancelOrderUseCase(orderRepo, fakeTxManager{})

	resp, err := uc.Execute(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
	assert.Equal(t, order.StatusCancelled, orderRepo.orders[o.ID].Status)
}

// TestCancelOrder_Idempotent 重复取消保持Cancelled,不报错
func TestCancelOrder_Idempotent(t *testing.T) {
	orderRepo := newFakeOrderRepo()
	o := seedCancellable(orderRepo, order.StatusCancelled)
	uc := NewCancelOrderUseCase(orderRepo, fakeTxManager{})

	resp, err := uc.Execute(context.Background(), o.ID)
	require.NoError(t, err)
	assert.Equal(t, "Cancelled", resp.Status)
}

// TestCancelOrder_NoRestock 取消不回补库存
func TestCancelOrder_NoRestock(t *testing.T) {
	uc, bookRepo, orderRepo := placeOrderFixture()

	resp, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items:  []PlaceOrderItem{{BookID: 200, Quantity: 3}},
	})
	require.NoError(t, err)
	require.Equal(t, 97, bookRepo.books[200].Stock)

	cancelUC := NewCancelOrderUseCase(orderRepo, fakeTxManager{})
	_, err = cancelUC.Execute(context.Background(), resp.ID)
	require.NoError(t, err)

	// 库存保持扣减后的值
	assert.Equal(t, 97, bookRepo.books[200].Stock)
}

// TestCancelOrder_NotFound 订单不存在返回404错误
func TestCancelOrder_NotFound(t *testing.T) {
	uc := NewCancelOrderUseCase(newFakeOrderRepo(), fakeTxManager{})

	_, err := uc.Execute(context.Background(), 404)
	assert.ErrorIs(t, err, order.ErrOrderNotFound)
}
