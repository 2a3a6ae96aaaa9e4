package book

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/book"
)

// GetBookUseCase 图书详情查询用例
type GetBookUseCase struct {
	bookRepo book.Repository
}

// NewGetBookUseCase 创建图书详情用例
func NewGetBookUseCase(bookRepo book.Repository) *GetBookUseCase {
	return &GetBookUseCase{bookRepo: bookRepo}
}

// Execute 执行图书详情查询
// 图书不存在时返回ErrBookNotFound(边界映射为404)
func (uc *GetBookUseCase) Execute(ctx context.Context, id uint) (*BookResponse, error) {
	b, err := uc.bookRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := ToBookResponse(b)
	return &resp, nil
}
