package book

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/book"
)

// ListBooksUseCase 图书列表查询用例
// 无缓存,每次调用都查库取最新库存
type ListBooksUseCase struct {
	bookRepo book.Repository
}

// NewListBooksUseCase 创建图书列表用例
func NewListBooksUseCase(bookRepo book.Repository) *ListBooksUseCase {
	return &ListBooksUseCase{bookRepo: bookRepo}
}

// Execute 执行图书列表查询
func (uc *ListBooksUseCase) Execute(ctx context.Context) ([]BookResponse, error) {
	books, err := uc.bookRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]BookResponse, len(books))
	for i, b := range books {
		resp[i] = ToBookResponse(b)
	}
	return resp, nil
}
