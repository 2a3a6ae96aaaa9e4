package author

import (
	"context"

	appbook "github.com/kohyli/bookstore/internal/application/book"
	"github.com/kohyli/bookstore/internal/domain/book"
)

// ListAuthorBooksUseCase 作者图书列表查询用例
// 契约:作者不存在时返回空列表而非404,不校验作者存在性
type ListAuthorBooksUseCase struct {
	bookRepo book.Repository
}

// NewListAuthorBooksUseCase 创建作者图书列表用例
func NewListAuthorBooksUseCase(bookRepo book.Repository) *ListAuthorBooksUseCase {
	return &ListAuthorBooksUseCase{bookRepo: bookRepo}
}

// Execute 执行作者图书列表查询
func (uc *ListAuthorBooksUseCase) Execute(ctx context.Context, authorID uint) ([]appbook.BookResponse, error) {
	books, err := uc.bookRepo.ListByAuthor(ctx, authorID)
	if err != nil {
		return nil, err
	}

	resp := make([]appbook.BookResponse, len(books))
	for i, b := range books {
		resp[i] = appbook.ToBookResponse(b)
	}
	return resp, nil
}
