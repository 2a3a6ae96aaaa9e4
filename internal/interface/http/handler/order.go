package handler

import (
	"github.com/gin-gonic/gin"

	apporder "github.com/kohyli/bookstore/internal/application/order"
	"github.com/kohyli/bookstore/internal/interface/http/dto"
	apperrors "github.com/kohyli/bookstore/pkg/errors"
	"github.com/kohyli/bookstore/pkg/response"
)

// OrderHandler 订单HTTP处理器
type OrderHandler struct {
	placeOrderUseCase  *apporder.PlaceOrderUseCase
	cancelOrderUseCase *apporder.CancelOrderUseCase
	getOrderUseCase    *apporder.GetOrderUseCase
	listOrdersUseCase  *apporder.ListOrdersUseCase
}

// NewOrderHandler 创建订单处理器
func NewOrderHandler(
	placeOrderUseCase *apporder.PlaceOrderUseCase,
	cancelOrderUseCase *apporder.CancelOrderUseCase,
	getOrderUseCase *apporder.GetOrderUseCase,
	listOrdersUseCase *apporder.ListOrdersUseCase,
) *OrderHandler {
	return &OrderHandler{
		placeOrderUseCase:  placeOrderUseCase,
		cancelOrderUseCase: cancelOrderUseCase,
		getOrderUseCase:    getOrderUseCase,
		listOrdersUseCase:  listOrdersUseCase,
	}
}

// ListOrders 订单列表
// @Summary      订单列表
// @Tags         订单
// @Produce      json
// @Success      200 {object} response.Response{data=[]order.OrderResponse}
// @Router       /orders [get]
func (h *OrderHandler) ListOrders(c *gin.Context) {
	result, err := h.listOrdersUseCase.Execute(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// GetOrder 订单详情
// @Summary      订单详情
// @Description  明细行携带当前图书信息;图书已删除时title为null
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=order.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.getOrderUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// PlaceOrder 创建订单
// @Summary      创建订单
// @Description  为指定用户下单;行锁+条件扣减防止超卖,任一明细失败整单回滚
// @Tags         订单
// @Accept       json
// @Produce      json
// @Param        user_id path int true "买家用户ID"
// @Param        request body dto.PlaceOrderRequest true "订单明细"
// @Success      200 {object} response.Response{data=order.OrderResponse}
// @Failure      400 {object} response.Response "参数错误或库存不足"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Router       /orders/{user_id} [post]
func (h *OrderHandler) PlaceOrder(c *gin.Context) {
	userID, err := parseUintParam(c, "user_id")
	if err != nil {
		response.Error(c, err)
		return
	}

	var req dto.PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperrors.New(apperrors.ErrCodeInvalidParams, "invalid request: "+err.Error()))
		return
	}

	items := make([]apporder.PlaceOrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = apporder.PlaceOrderItem{
			BookID:   item.BookID,
			Quantity: item.Quantity,
		}
	}

	result, err := h.placeOrderUseCase.Execute(c.Request.Context(), apporder.PlaceOrderRequest{
		UserID: userID,
		Items:  items,
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}

// CancelOrder 取消订单
// @Summary      取消订单
// @Description  取消订单(重复取消幂等);不回补库存
// @Tags         订单
// @Produce      json
// @Param        id path int true "订单ID"
// @Success      200 {object} response.Response{data=order.OrderResponse}
// @Failure      404 {object} response.Response "订单不存在"
// @Router       /orders/{id}/cancel [patch]
func (h *OrderHandler) CancelOrder(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.cancelOrderUseCase.Execute(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, result)
}
