package book

import (
	"context"
)

// Repository 图书仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 便于Mock测试,不依赖具体数据库实现
// 3. 图书本身没有写入接口(数据外部种子导入),但下单流程需要
//    锁定与扣减库存,这两个方法必须在事务内调用
type Repository interface {
	// FindByID 根据ID查找图书(预加载作者)
	FindByID(ctx context.Context, id uint) (*Book, error)

	// FindByIDs 按ID批量查找图书(预加载作者)
	// 返回的map以图书ID为键;不存在的ID直接缺席,不报错
	// 用于畅销榜聚合结果的回表查询
	FindByIDs(ctx context.Context, ids []uint) (map[uint]*Book, error)

	// List 查询全部图书(预加载作者),顺序由存储返回顺序决定
	List(ctx context.Context) ([]*Book, error)

	// ListByAuthor 查询指定作者的全部图书
	// 约定:作者不存在时返回空切片而非错误(不校验作者存在性),
	// 这是单数查询与关系查询之间有意保留的契约差异
	ListByAuthor(ctx context.Context, authorID uint) ([]*Book, error)

	// LockByID 悲观锁查询图书(用于订单创建时锁定库存)
	// 使用SELECT FOR UPDATE锁定行,防止并发超卖
	// 必须在事务内调用
	LockByID(ctx context.Context, id uint) (*Book, error)

	// UpdateStock 更新库存(原子操作)
	// delta为正数表示增加,负数表示减少
	// 内部会检查库存是否充足,不足则返回ErrInsufficientStock
	UpdateStock(ctx context.Context, id uint, delta int) error
}
