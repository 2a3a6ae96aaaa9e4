package author

import (
	"context"
)

// Repository 作者仓储接口(依赖倒置原则)
// 设计说明:
// 1. 由domain层定义接口,infrastructure层实现
// 2. 作者是只读数据,仓储只有查询方法
type Repository interface {
	// FindByID 根据ID查找作者
	// 如果不存在,返回errors.ErrAuthorNotFound
	FindByID(ctx context.Context, id uint) (*Author, error)

	// List 查询全部作者
	List(ctx context.Context) ([]*Author, error)
}
