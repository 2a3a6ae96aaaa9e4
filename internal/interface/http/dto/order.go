package dto

// PlaceOrderRequest HTTP层下单请求
// 说明:items允许为空(生成总额为0的订单);
// quantity下限在用例层校验,HTTP层只做结构校验
type PlaceOrderRequest struct {
	Items []PlaceOrderItem `json:"items"`
}

// PlaceOrderItem 下单明细项
type PlaceOrderItem struct {
	BookID   uint `json:"book_id" binding:"required"`
	Quantity int  `json:"quantity" binding:"required"`
}
