package integration

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 订单模块集成测试
// 核心验证点:价格快照与总额计算、库存扣减、失败零副作用、取消幂等

func placeOrder(t *testing.T, userID uint, items []map[string]interface{}) (*Response, int) {
	t.Helper()
	return PostJSON(t, "/orders/"+uitoa(userID), map[string]interface{}{"items": items}, "")
}

func getBook(t *testing.T, id uint) BookData {
	t.Helper()
	resp, status := GetJSON(t, "/books/"+uitoa(id), "")
	require.Equal(t, http.StatusOK, status)
	var b BookData
	require.NoError(t, json.Unmarshal(resp.Data, &b))
	return b
}

// TestPlaceOrder 正常下单:总额与库存扣减
func TestPlaceOrder(t *testing.T) {
	RequireServer(t)

	u, _ := SignupTestUser(t, "buyer")
	book := FindBookWithStock(t, 3)
	stockBefore := book.Stock

	resp, status := placeOrder(t, u.ID, []map[string]interface{}{
		{"book_id": book.ID, "quantity": 3},
	})
	require.Equal(t, http.StatusOK, status, "place order failed: %s", resp.Message)

	var o OrderData
	require.NoError(t, json.Unmarshal(resp.Data, &o))
	assert.Equal(t, u.ID, o.UserID)
	assert.Equal(t, "Created", o.Status)
	assert.Equal(t, book.PriceCents*3, o.TotalCents)
	require.Len(t, o.Items, 1)
	assert.Equal(t, book.PriceCents, o.Items[0].PriceAtPurchaseCents)

	// 库存扣减3
	assert.Equal(t, stockBefore-3, getBook(t, book.ID).Stock)
}

// TestPlaceOrder_Failures 失败路径不留副作用
func TestPlaceOrder_Failures(t *testing.T) {
	RequireServer(t)

	u, _ := SignupTestUser(t, "buyer_fail")
	book := FindBookWithStock(t, 1)
	stockBefore := book.Stock

	t.Run("用户不存在返回404", func(t *testing.T) {
		_, status := placeOrder(t, 999999999, []map[string]interface{}{
			{"book_id": book.ID, "quantity": 1},
		})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("图书不存在返回404", func(t *testing.T) {
		_, status := placeOrder(t, u.ID, []map[string]interface{}{
			{"book_id": 999999999, "quantity": 1},
		})
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("数量为负返回400", func(t *testing.T) {
		_, status := placeOrder(t, u.ID, []map[string]interface{}{
			{"book_id": book.ID, "quantity": -1},
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	t.Run("库存不足整单失败且第一行无副作用", func(t *testing.T) {
		_, status := placeOrder(t, u.ID, []map[string]interface{}{
			{"book_id": book.ID, "quantity": 1},
			{"book_id": book.ID, "quantity": stockBefore + 1000},
		})
		assert.Equal(t, http.StatusBadRequest, status)
	})

	// 所有失败路径结束后库存保持不变
	assert.Equal(t, stockBefore, getBook(t, book.ID).Stock)
}

// TestCancelOrder 取消订单:幂等且不回补库存
func TestCancelOrder(t *testing.T) {
	RequireServer(t)

	u, _ := SignupTestUser(t, "canceller")
	book := FindBookWithStock(t, 2)

	resp, status := placeOrder(t, u.ID, []map[string]interface{}{
		{"book_id": book.ID, "quantity": 2},
	})
	require.Equal(t, http.StatusOK, status, "place order failed: %s", resp.Message)

	var o OrderData
	require.NoError(t, json.Unmarshal(resp.Data, &o))
	stockAfterOrder := getBook(t, book.ID).Stock

	cancelResp, status := Do(t, http.MethodPatch, "/orders/"+uitoa(o.ID)+"/cancel", nil, "")
	require.Equal(t, http.StatusOK, status, "cancel failed: %s", cancelResp.Message)

	var cancelled OrderData
	require.NoError(t, json.Unmarshal(cancelResp.Data, &cancelled))
	assert.Equal(t, "Cancelled", cancelled.Status)

	// 取消不回补库存
	assert.Equal(t, stockAfterOrder, getBook(t, book.ID).Stock)

	// 重复取消幂等
	_, status = Do(t, http.MethodPatch, "/orders/"+uitoa(o.ID)+"/cancel", nil, "")
	assert.Equal(t, http.StatusOK, status)

	// 不存在的订单返回404
	_, status = Do(t, http.MethodPatch, "/orders/999999999/cancel", nil, "")
	assert.Equal(t, http.StatusNotFound, status)
}

// TestGetOrder 订单详情含图书信息
func TestGetOrder(t *testing.T) {
	RequireServer(t)

	u, token := SignupTestUser(t, "reader")
	book := FindBookWithStock(t, 1)

	resp, status := placeOrder(t, u.ID, []map[string]interface{}{
		{"book_id": book.ID, "quantity": 1},
	})
	require.Equal(t, http.StatusOK, status, "place order failed: %s", resp.Message)

	var o OrderData
	require.NoError(t, json.Unmarshal(resp.Data, &o))

	t.Run("详情回表补全图书标题", func(t *testing.T) {
		detailResp, status := GetJSON(t, "/orders/"+uitoa(o.ID), "")
		require.Equal(t, http.StatusOK, status)

		var detail struct {
			Items []struct {
				Book *struct {
					Title *string `json:"title"`
				} `json:"book"`
			} `json:"items"`
		}
		require.NoError(t, json.Unmarshal(detailResp.Data, &detail))
		require.Len(t, detail.Items, 1)
		require.NotNil(t, detail.Items[0].Book)
		require.NotNil(t, detail.Items[0].Book.Title)
		assert.Equal(t, book.Title, *detail.Items[0].Book.Title)
	})

	t.Run("我的订单包含新订单", func(t *testing.T) {
		myResp, status := GetJSON(t, "/users/orders", token)
		require.Equal(t, http.StatusOK, status)

		var mine []OrderData
		require.NoError(t, json.Unmarshal(myResp.Data, &mine))

		found := false
		for _, m := range mine {
			if m.ID == o.ID {
				found = true
			}
		}
		assert.True(t, found)
	})

	t.Run("不存在的订单返回404", func(t *testing.T) {
		_, status := GetJSON(t, "/orders/999999999", "")
		assert.Equal(t, http.StatusNotFound, status)
	})
}
