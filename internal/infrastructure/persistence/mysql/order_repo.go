package mysql

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/kohyli/bookstore/internal/domain/order"
	apperrors "github.com/kohyli/bookstore/pkg/errors"
)

// orderRepository 订单仓储实现(MySQL)
// 设计说明:
// 1. 实现domain/order/repository.go定义的接口
// 2. 订单与明细在同一事务中落库(依赖GORM关联插入)
// 3. 状态字段存取经过ParseStatus/String翻译,
//    历史数据的"New"等写法只存在于存储边界
type orderRepository struct {
	db *gorm.DB
}

// NewOrderRepository 创建订单仓储
func NewOrderRepository(db *gorm.DB) order.Repository {
	return &orderRepository{db: db}
}

// Create 创建订单(包含订单明细)
// 注意:必须使用getDB(ctx)参与下单事务
func (r *orderRepository) Create(ctx context.Context, o *order.Order) error {
	model := &OrderModel{
		UserID:    o.UserID,
		OrderDate: o.OrderDate,
		Total:     o.Total,
		Status:    o.Status.String(),
		Items:     make([]OrderItemModel, len(o.Items)),
	}
	for i, item := range o.Items {
		model.Items[i] = OrderItemModel{
			BookID:          item.BookID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		}
	}

	db := getDB(ctx, r.db)
	// GORM关联插入:orders与order_items在同一事务内写入
	if err := db.Create(model).Error; err != nil {
		return apperrors.Wrap(err, "failed to create order")
	}

	// 回填自增ID
	o.ID = model.ID
	for i := range model.Items {
		o.Items[i].ID = model.Items[i].ID
		o.Items[i].OrderID = model.ID
	}
	return nil
}

// FindByID 根据ID查找订单(包含明细)
func (r *orderRepository) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	var model OrderModel
	db := getDB(ctx, r.db)
	err := db.Preload("Items").First(&model, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, order.ErrOrderNotFound
		}
		return nil, apperrors.Wrap(err, "failed to query order")
	}

	return toOrderEntity(&model)
}

// UpdateStatus 更新订单状态
func (r *orderRepository) UpdateStatus(ctx context.Context, id uint, status order.OrderStatus) error {
	db := getDB(ctx, r.db)
	result := db.Model(&OrderModel{}).
		Where("id = ?", id).
		Update("status", status.String())

	if result.Error != nil {
		return apperrors.Wrap(result.Error, "failed to update order status")
	}

	if result.RowsAffected == 0 {
		// 状态未变化时RowsAffected也可能为0,需要区分订单不存在
		var model OrderModel
		if err := getDB(ctx, r.db).Select("id").First(&model, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return order.ErrOrderNotFound
			}
			return apperrors.Wrap(err, "failed to query order")
		}
	}

	return nil
}

// List 查询全部订单(包含明细)
func (r *orderRepository) List(ctx context.Context) ([]*order.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).Preload("Items").Order("id").Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders")
	}
	return toOrderEntities(models)
}

// ListByUserID 查询用户的订单列表(包含明细)
func (r *orderRepository) ListByUserID(ctx context.Context, userID uint) ([]*order.Order, error) {
	var models []OrderModel
	err := r.db.WithContext(ctx).Preload("Items").
		Where("user_id = ?", userID).
		Order("id").
		Find(&models).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to list orders by user")
	}
	return toOrderEntities(models)
}

// SalesByBook 按图书聚合销量
// SQL:
//
//	SELECT oi.book_id, SUM(oi.quantity) AS units_sold
//	FROM order_items oi JOIN orders o ON o.id = oi.order_id
//	WHERE o.order_date >= ? AND o.order_date < ? AND o.status IN (?)
//	GROUP BY oi.book_id
//	ORDER BY units_sold DESC, book_id ASC
//	LIMIT ?
//
// 统计窗口为半开区间[from, to);销量相同按book_id升序保证结果确定
func (r *orderRepository) SalesByBook(ctx context.Context, from, to time.Time, statuses []order.OrderStatus, limit int) ([]order.BookSales, error) {
	// limit<=0约定返回空结果
	if limit <= 0 || len(statuses) == 0 {
		return []order.BookSales{}, nil
	}

	var rows []struct {
		BookID    uint
		UnitsSold int
	}

	err := r.db.WithContext(ctx).
		Table("order_items").
		Select("order_items.book_id AS book_id, SUM(order_items.quantity) AS units_sold").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.order_date >= ? AND orders.order_date < ?", from, to).
		Where("orders.status IN ?", statusTokens(statuses)).
		Group("order_items.book_id").
		Order("units_sold DESC, book_id ASC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, apperrors.Wrap(err, "failed to aggregate sales")
	}

	sales := make([]order.BookSales, len(rows))
	for i, row := range rows {
		sales[i] = order.BookSales{BookID: row.BookID, UnitsSold: row.UnitsSold}
	}
	return sales, nil
}

// statusTokens 枚举 → 存储Token集合
// 历史数据中Created也写作"New",查询时必须同时命中;
// 大小写差异由utf8mb4的大小写不敏感排序规则吸收
func statusTokens(statuses []order.OrderStatus) []string {
	tokens := make([]string, 0, len(statuses)+1)
	for _, s := range statuses {
		tokens = append(tokens, s.String())
		if s == order.StatusCreated {
			tokens = append(tokens, "New")
		}
	}
	return tokens
}

// toOrderEntity GORM模型 → 领域实体
// 状态Token在此边界统一翻译,无法识别的Token上抛错误
func toOrderEntity(model *OrderModel) (*order.Order, error) {
	status, err := order.ParseStatus(model.Status)
	if err != nil {
		return nil, apperrors.Wrapf(err, "order %d has status %q", model.ID, model.Status)
	}

	items := make([]order.OrderItem, len(model.Items))
	for i, item := range model.Items {
		items[i] = order.OrderItem{
			ID:              item.ID,
			OrderID:         item.OrderID,
			BookID:          item.BookID,
			Quantity:        item.Quantity,
			PriceAtPurchase: item.PriceAtPurchase,
		}
	}

	return &order.Order{
		ID:        model.ID,
		UserID:    model.UserID,
		OrderDate: model.OrderDate,
		Total:     model.Total,
		Status:    status,
		Items:     items,
	}, nil
}

func toOrderEntities(models []OrderModel) ([]*order.Order, error) {
	orders := make([]*order.Order, len(models))
	for i := range models {
		o, err := toOrderEntity(&models[i])
		if err != nil {
			return nil, err
		}
		orders[i] = o
	}
	return orders, nil
}
