package author

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/author"
)

// GetAuthorUseCase 作者详情查询用例
// 注意:单数查询对缺失作者报404,这与关系查询
// (作者的图书列表)的空集契约是有意保留的差异
type GetAuthorUseCase struct {
	authorRepo author.Repository
}

// NewGetAuthorUseCase 创建作者详情用例
func NewGetAuthorUseCase(authorRepo author.Repository) *GetAuthorUseCase {
	return &GetAuthorUseCase{authorRepo: authorRepo}
}

// Execute 执行作者详情查询
func (uc *GetAuthorUseCase) Execute(ctx context.Context, id uint) (*AuthorResponse, error) {
	a, err := uc.authorRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toAuthorResponse(a)
	return &resp, nil
}
