package order

import (
	"strings"
	"time"
)

// OrderStatus 订单状态
// 设计说明:
// 1. 内部使用封闭的枚举类型,原始字符串绝不在领域内流转
// 2. 历史数据中状态字符串大小写不一致("New"/"completed"/"Cancelled"),
//    由ParseStatus在入库/出库边界统一翻译
// 3. 持久化时写入规范Token(见String方法)
type OrderStatus int

const (
	StatusCreated   OrderStatus = 1 // 已创建(初始状态,旧数据中也写作"New")
	StatusCompleted OrderStatus = 2 // 已完成(由外部流程触发,本服务不产生该迁移)
	StatusCancelled OrderStatus = 3 // 已取消(终态)
)

// String 返回持久化使用的规范Token
func (s OrderStatus) String() string {
	switch s {
	case StatusCreated:
		return "Created"
	case StatusCompleted:
		return "Completed"
	case StatusCancelled:
		return "Cancelled"
	default:
		return "Unknown"
	}
}

// ParseStatus 将存储中的状态Token翻译为枚举
// 兼容历史写法:"New"等价于"Created",大小写不敏感
func ParseStatus(raw string) (OrderStatus, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "created", "new":
		return StatusCreated, nil
	case "completed":
		return StatusCompleted, nil
	case "cancelled":
		return StatusCancelled, nil
	default:
		return 0, ErrUnknownStatus
	}
}

// CountedStatuses 计入销量统计的状态集合
// 契约:所有未取消的订单都计入(Created与Completed),
// 已取消订单无论取消时间先后一律排除
func CountedStatuses() []OrderStatus {
	return []OrderStatus{StatusCreated, StatusCompleted}
}

// Order 订单实体(聚合根)
// 设计说明:
// 1. Order是聚合根,OrderItem是子实体,删除订单级联删除明细
// 2. Total冗余存储创建时刻的总金额(分),不随图书改价变化
// 3. Items保持下单时的输入顺序
type Order struct {
	ID        uint
	UserID    uint        // 买家用户ID
	OrderDate time.Time   // 下单时间(UTC)
	Total     int64       // 订单总金额(分),创建时冻结
	Status    OrderStatus // 订单状态
	Items     []OrderItem // 订单明细(聚合内的子实体,顺序保持)
}

// OrderItem 订单明细项
// 设计说明:
// 1. 不是独立聚合根,必须通过Order访问
// 2. PriceAtPurchase是下单时的价格快照(分),永不根据图书现价重算
// 3. 只保存BookID引用;图书被删除后明细仍然有效(孤儿引用被容忍)
type OrderItem struct {
	ID              uint
	OrderID         uint
	BookID          uint
	Quantity        int   // 购买数量,必须>0
	PriceAtPurchase int64 // 下单时单价(分)
}

// NewOrder 创建新订单(工厂方法)
// 初始状态为Created,下单时间取当前UTC时间
func NewOrder(userID uint, items []OrderItem, total int64) *Order {
	return &Order{
		UserID:    userID,
		OrderDate: time.Now().UTC(),
		Total:     total,
		Status:    StatusCreated,
		Items:     items,
	}
}

// Cancel 取消订单(领域行为)
// 注意:取消不设防护,对已取消订单重复调用幂等地保持Cancelled,
// 这是对外承诺的契约(重复取消安全),不是疏漏
func (o *Order) Cancel() {
	o.Status = StatusCancelled
}

// CalculateTotal 按明细重新计算订单总金额
// 用于创建时校验冗余的Total字段
func (o *Order) CalculateTotal() int64 {
	var total int64
	for _, item := range o.Items {
		total += item.PriceAtPurchase * int64(item.Quantity)
	}
	return total
}

// IsOwnedBy 检查订单是否属于指定用户
func (o *Order) IsOwnedBy(userID uint) bool {
	return o.UserID == userID
}
