package order

import (
	"context"
)

// TxManager 工作单元边界
// 设计说明:
// 1. 下单的校验、落库、扣库存必须是一个原子工作单元:
//    要么全部可见,要么全部回滚
// 2. 接口定义在domain层,mysql实现通过context传递事务句柄,
//    仓储方法在事务内自动使用同一连接
// 3. 用例显式依赖该接口注入,不存在隐式的全局存储句柄
type TxManager interface {
	// Transaction 在单个事务中执行fn
	// fn返回error时回滚,返回nil时提交
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
}
