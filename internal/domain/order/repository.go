package order

import (
	"context"
	"time"
)

// BookSales 某本图书在统计窗口内的销量聚合结果
type BookSales struct {
	BookID    uint
	UnitsSold int
}

// Repository 订单仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 支持事务操作(通过context传递事务)
type Repository interface {
	// Create 创建订单(包含订单明细)
	// 订单和明细必须在同一事务中落库
	Create(ctx context.Context, order *Order) error

	// FindByID 根据ID查找订单(包含订单明细)
	FindByID(ctx context.Context, id uint) (*Order, error)

	// UpdateStatus 更新订单状态
	UpdateStatus(ctx context.Context, id uint, status OrderStatus) error

	// List 查询全部订单(包含明细)
	List(ctx context.Context) ([]*Order, error)

	// ListByUserID 查询用户的订单列表(包含明细)
	ListByUserID(ctx context.Context, userID uint) ([]*Order, error)

	// SalesByBook 按图书聚合销量
	// 统计窗口为半开区间[from, to),只计入statuses中的订单状态,
	// 结果按销量降序、图书ID升序(平局时保证确定性),最多limit条
	// limit<=0约定返回空结果而非错误
	SalesByBook(ctx context.Context, from, to time.Time, statuses []OrderStatus, limit int) ([]BookSales, error)
}
