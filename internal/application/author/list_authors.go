package author

import (
	"context"

	"github.com/kohyli/bookstore/internal/domain/author"
)

// AuthorResponse 作者响应DTO
type AuthorResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Biography string `json:"biography,omitempty"`
}

func toAuthorResponse(a *author.Author) AuthorResponse {
	return AuthorResponse{
		ID:        a.ID,
		FirstName: a.FirstName,
		LastName:  a.LastName,
		Biography: a.Biography,
	}
}

// ListAuthorsUseCase 作者列表查询用例
type ListAuthorsUseCase struct {
	authorRepo author.Repository
}

// NewListAuthorsUseCase 创建作者列表用例
func NewListAuthorsUseCase(authorRepo author.Repository) *ListAuthorsUseCase {
	return &ListAuthorsUseCase{authorRepo: authorRepo}
}

// Execute 执行作者列表查询
func (uc *ListAuthorsUseCase) Execute(ctx context.Context) ([]AuthorResponse, error) {
	authors, err := uc.authorRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]AuthorResponse, len(authors))
	for i, a := range authors {
		resp[i] = toAuthorResponse(a)
	}
	return resp, nil
}
