package order

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kohyli/bookstore/internal/domain/book"
	"github.com/kohyli/bookstore/internal/domain/order"
	"github.com/kohyli/bookstore/internal/domain/user"
	apperrors "github.com/kohyli/bookstore/pkg/errors"
	"github.com/kohyli/bookstore/pkg/metrics"
)

func init() {
	metrics.InitMetrics()
}

// =========================================
// 内存Fake:仓储与事务边界
// =========================================

type fakeTxManager struct{}

func (fakeTxManager) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeUserRepo struct {
	users map[uint]*user.User
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error { return nil }

func (r *fakeUserRepo) FindByID(ctx context.Context, id uint) (*user.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return u, nil
}

func (r *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	return nil, apperrors.ErrUserNotFound
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uint) error {
	if _, ok := r.users[id]; !ok {
		return apperrors.ErrUserNotFound
	}
	delete(r.users, id)
	return nil
}

type fakeBookRepo struct {
	books map[uint]*book.Book
}

func (r *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := r.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (r *fakeBookRepo) FindByIDs(ctx context.Context, ids []uint) (map[uint]*book.Book, error) {
	result := make(map[uint]*book.Book)
	for _, id := range ids {
		if b, ok := r.books[id]; ok {
			result[id] = b
		}
	}
	return result, nil
}

func (r *fakeBookRepo) List(ctx context.Context) ([]*book.Book, error) { return nil, nil }

func (r *fakeBookRepo) ListByAuthor(ctx context.Context, authorID uint) ([]*book.Book, error) {
	return nil, nil
}

func (r *fakeBookRepo) LockByID(ctx context.Context, id uint) (*book.Book, error) {
	return r.FindByID(ctx, id)
}

func (r *fakeBookRepo) UpdateStock(ctx context.Context, id uint, delta int) error {
	b, ok := r.books[id]
	if !ok {
		return book.ErrBookNotFound
	}
	if b.Stock+delta < 0 {
		return book.ErrInsufficientStock
	}
	b.Stock += delta
	return nil
}

type fakeOrderRepo struct {
	nextID uint
	orders map[uint]*order.Order
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{nextID: 1, orders: make(map[uint]*order.Order)}
}

func (r *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = r.nextID
	r.nextID++
	for i := range o.Items {
		o.Items[i].ID = uint(i + 1)
		o.Items[i].OrderID = o.ID
	}
	r.orders[o.ID] = o
	return nil
}

func (r *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	o, ok := r.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (r *fakeOrderRepo) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus) error {
	o, ok := r.orders[id]
	if !ok {
		return order.ErrOrderNotFound
	}
	o.Status = status
	return nil
}

func (r *fakeOrderRepo) List(ctx context.Context) ([]*order.Order, error) {
	result := make([]*order.Order, 0, len(r.orders))
	for _, o := range r.orders {
		result = append(result, o)
	}
	return result, nil
}

func (r *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	var result []*order.Order
	for _, o := range r.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, nil
}

func (r *fakeOrderRepo) SalesByBook(ctx context.Context, from, to time.Time, statuses []order.OrderStatus, limit int) ([]order.BookSales, error) {
	return nil, nil
}

// =========================================
// Fixture
// =========================================

func placeOrderFixture() (*PlaceOrderUseCase, *fakeBookRepo, *fakeOrderRepo) {
	userRepo := &fakeUserRepo{users: map[uint]*user.User{
		1: {ID: 1, Email: "jane@example.com"},
	}}
	bookRepo := &fakeBookRepo{books: map[uint]*book.Book{
		200: {ID: 200, Title: "Pride and Prejudice", Price: 1500, Stock: 100},
		201: {ID: 201, Title: "Emma", Price: 2000, Stock: 100},
	}}
	orderRepo := newFakeOrderRepo()
	uc := NewPlaceOrderUseCase(orderRepo, bookRepo, userRepo, fakeTxManager{})
	return uc, bookRepo, orderRepo
}

// TestPlaceOrder 正常下单:总额=Σ(单价×数量),库存对应扣减
func TestPlaceOrder(t *testing.T) {
	uc, bookRepo, _ := placeOrderFixture()

	resp, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items: []PlaceOrderItem{
			{BookID: 200, Quantity: 3},
			{BookID: 201, Quantity: 1},
		},
	})
	require.NoError(t, err)

	// 15.00×3 + 20.00×1 = 65.00
	assert.Equal(t, int64(6500), resp.TotalCents)
	assert.Equal(t, "65.00", resp.Total)
	assert.Equal(t, "Created", resp.Status)
	require.Len(t, resp.Items, 2)
	assert.Equal(t, int64(1500), resp.Items[0].PriceAtPurchaseCents)

	// 库存:100-3=97,100-1=99
	assert.Equal(t, 97, bookRepo.books[200].Stock)
	assert.Equal(t, 99, bookRepo.books[201].Stock)
}

// TestPlaceOrder_EmptyItems 空明细允许,生成总额为0的订单
func TestPlaceOrder_EmptyItems(t *testing.T) {
	uc, _, orderRepo := placeOrderFixture()

	resp, err := uc.Execute(context.Background(), PlaceOrderRequest{UserID: 1})
	require.NoError(t, err)
	assert.Equal(t, int64(0), resp.TotalCents)
	assert.Empty(t, resp.Items)
	assert.Len(t, orderRepo.orders, 1)
}

// TestPlaceOrder_UserNotFound 买家不存在直接404,不碰库存
func TestPlaceOrder_UserNotFound(t *testing.T) {
	uc, bookRepo, orderRepo := placeOrderFixture()

	_, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 99,
		Items:  []PlaceOrderItem{{BookID: 200, Quantity: 1}},
	})
	assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	assert.Equal(t, 100, bookRepo.books[200].Stock)
	assert.Empty(t, orderRepo.orders)
}

// TestPlaceOrder_BookNotFound 明细引用不存在的图书
func TestPlaceOrder_BookNotFound(t *testing.T) {
	uc, _, orderRepo := placeOrderFixture()

	_, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items:  []PlaceOrderItem{{BookID: 999, Quantity: 1}},
	})
	assert.ErrorIs(t, err, book.ErrBookNotFound)
	assert.Empty(t, orderRepo.orders)
}

// TestPlaceOrder_InvalidQuantity 数量<=0报参数错误
func TestPlaceOrder_InvalidQuantity(t *testing.T) {
	uc, bookRepo, _ := placeOrderFixture()

	for _, qty := range []int{0, -1} {
		_, err := uc.Execute(context.Background(), PlaceOrderRequest{
			UserID: 1,
			Items:  []PlaceOrderItem{{BookID: 200, Quantity: qty}},
		})
		assert.ErrorIs(t, err, order.ErrInvalidQuantity, "qty=%d", qty)
	}
	assert.Equal(t, 100, bookRepo.books[200].Stock)
}

// TestPlaceOrder_InsufficientStock 库存不足整单失败
func TestPlaceOrder_InsufficientStock(t *testing.T) {
	uc, bookRepo, orderRepo := placeOrderFixture()

	_, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items:  []PlaceOrderItem{{BookID: 200, Quantity: 101}},
	})
	assert.ErrorIs(t, err, book.ErrInsufficientStock)
	assert.Equal(t, 100, bookRepo.books[200].Stock)
	assert.Empty(t, orderRepo.orders)
}

// TestPlaceOrder_PartialFailureNoMutation 第二行失败时第一行也不得留下任何副作用
// 所有明细行先校验后落库,失败订单零写入
func TestPlaceOrder_PartialFailureNoMutation(t *testing.T) {
	uc, bookRepo, orderRepo := placeOrderFixture()

	_, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items: []PlaceOrderItem{
			{BookID: 200, Quantity: 5},   // 本身可满足
			{BookID: 201, Quantity: 500}, // 库存不足
		},
	})
	require.Error(t, err)

	assert.Equal(t, 100, bookRepo.books[200].Stock)
	assert.Equal(t, 100, bookRepo.books[201].Stock)
	assert.Empty(t, orderRepo.orders)
}

// TestPlaceOrder_PriceSnapshot 下单后改价不影响已有订单
func TestPlaceOrder_PriceSnapshot(t *testing.T) {
	uc, bookRepo, orderRepo := placeOrderFixture()

	resp, err := uc.Execute(context.Background(), PlaceOrderRequest{
		UserID: 1,
		Items:  []PlaceOrderItem{{BookID: 200, Quantity: 2}},
	})
	require.NoError(t, err)

	// 改价
	bookRepo.books[200].Price = 9900

	stored := orderRepo.orders[resp.ID]
	assert.Equal(t, int64(1500), stored.Items[0].PriceAtPurchase)
	assert.Equal(t, int64(3000), stored.Total)
}
