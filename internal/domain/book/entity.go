package book

import (
	"time"

	"github.com/kohyli/bookstore/internal/domain/author"
)

// Book 图书实体(聚合根)
// 设计说明:
// 1. 价格使用int64存储"分"为单位(避免浮点数精度问题)
// 2. AuthorID关联作者(多对一);Author在需要时由仓储预加载
// 3. 库存Stock不允许为负,下单扣减由事务+行锁保证
type Book struct {
	ID            uint
	Title         string
	AuthorID      uint
	ISBN          string
	Price         int64 // 价格(单位:分,1元=100分)
	PublishedDate time.Time
	Description   string
	Stock         int    // 库存数量
	CoverImageURL string // 封面图片URL

	// Author 预加载的作者信息,可能为nil(作者被删除或未加载)
	Author *author.Author
}

// HasStock 判断库存是否足够本次购买
func (b *Book) HasStock(quantity int) bool {
	return b.Stock >= quantity
}

// DecrStock 扣减库存(用于订单创建)
// 业务规则:扣减后库存不能为负数
func (b *Book) DecrStock(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if b.Stock < quantity {
		return ErrInsufficientStock
	}
	b.Stock -= quantity
	return nil
}
