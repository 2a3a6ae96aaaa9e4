package order

import (
	"time"

	appbook "github.com/kohyli/bookstore/internal/application/book"
	"github.com/kohyli/bookstore/internal/domain/order"
)

// OrderResponse 订单响应DTO
type OrderResponse struct {
	ID         uint                `json:"id"`
	UserID     uint                `json:"user_id"`
	OrderDate  string              `json:"order_date"`
	TotalCents int64               `json:"total_cents"`
	Total      string              `json:"total"`
	Status     string              `json:"status"`
	Items      []OrderItemResponse `json:"items"`
}

// OrderItemResponse 订单明细响应DTO
// Book字段仅在详情查询时填充(回表补全当前图书信息);
// 图书已删除时Title为null,明细本身仍然有效
type OrderItemResponse struct {
	ID                   uint           `json:"id"`
	BookID               uint           `json:"book_id"`
	Quantity             int            `json:"quantity"`
	PriceAtPurchaseCents int64          `json:"price_at_purchase_cents"`
	PriceAtPurchase      string         `json:"price_at_purchase"`
	Book                 *OrderItemBook `json:"book,omitempty"`
}

// OrderItemBook 明细上的图书信息投影
type OrderItemBook struct {
	ID         uint    `json:"id"`
	Title      *string `json:"title"`
	ISBN       string  `json:"isbn,omitempty"`
	PriceCents int64   `json:"price_cents,omitempty"`
	Price      string  `json:"price,omitempty"`
}

// toOrderResponse 领域实体 → 响应DTO
func toOrderResponse(o *order.Order) OrderResponse {
	items := make([]OrderItemResponse, len(o.Items))
	for i, item := range o.Items {
		items[i] = OrderItemResponse{
			ID:                   item.ID,
			BookID:               item.BookID,
			Quantity:             item.Quantity,
			PriceAtPurchaseCents: item.PriceAtPurchase,
			PriceAtPurchase:      appbook.FormatPrice(item.PriceAtPurchase),
		}
	}

	return OrderResponse{
		ID:         o.ID,
		UserID:     o.UserID,
		OrderDate:  o.OrderDate.Format(time.RFC3339),
		TotalCents: o.Total,
		Total:      appbook.FormatPrice(o.Total),
		Status:     o.Status.String(),
		Items:      items,
	}
}

func toOrderResponses(orders []*order.Order) []OrderResponse {
	resp := make([]OrderResponse, len(orders))
	for i, o := range orders {
		resp[i] = toOrderResponse(o)
	}
	return resp
}
