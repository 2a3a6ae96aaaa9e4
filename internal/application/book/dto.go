package book

import (
	"fmt"
	"time"

	"github.com/kohyli/bookstore/internal/domain/book"
)

// BookResponse 图书响应DTO
// 设计说明:
// 1. DTO是实体的对外投影,与持久化形态解耦
// 2. 价格同时给出分值与格式化字符串,前端无需再做金额运算
// 3. 作者信息嵌套返回,避免客户端二次查询
type BookResponse struct {
	ID            uint            `json:"id"`
	Title         string          `json:"title"`
	ISBN          string          `json:"isbn"`
	PriceCents    int64           `json:"price_cents"`
	Price         string          `json:"price"`
	PublishedDate string          `json:"published_date"`
	Description   string          `json:"description,omitempty"`
	Stock         int             `json:"stock"`
	CoverImageURL string          `json:"cover_image_url,omitempty"`
	Author        *AuthorResponse `json:"author,omitempty"`
}

// AuthorResponse 作者响应DTO
type AuthorResponse struct {
	ID        uint   `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Biography string `json:"biography,omitempty"`
}

// ToBookResponse 领域实体 → 响应DTO
func ToBookResponse(b *book.Book) BookResponse {
	resp := BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		ISBN:          b.ISBN,
		PriceCents:    b.Price,
		Price:         FormatPrice(b.Price),
		Description:   b.Description,
		Stock:         b.Stock,
		CoverImageURL: b.CoverImageURL,
	}
	if !b.PublishedDate.IsZero() {
		resp.PublishedDate = b.PublishedDate.Format(time.DateOnly)
	}
	if b.Author != nil {
		resp.Author = &AuthorResponse{
			ID:        b.Author.ID,
			FirstName: b.Author.FirstName,
			LastName:  b.Author.LastName,
			Biography: b.Author.Biography,
		}
	}
	return resp
}

// FormatPrice 格式化价格(分 → 带两位小数的字符串)
func FormatPrice(cents int64) string {
	return fmt.Sprintf("%d.%02d", cents/100, cents%100)
}
