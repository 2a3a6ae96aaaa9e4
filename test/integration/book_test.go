package integration

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBookCatalog 图书目录公开查询
func TestBookCatalog(t *testing.T) {
	RequireServer(t)

	t.Run("图书列表", func(t *testing.T) {
		resp, status := GetJSON(t, "/books", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, resp.Code)

		var books []BookData
		require.NoError(t, json.Unmarshal(resp.Data, &books))
	})

	t.Run("图书详情与列表一致", func(t *testing.T) {
		b := FindBookWithStock(t, 0)

		resp, status := GetJSON(t, "/books/"+uitoa(b.ID), "")
		require.Equal(t, http.StatusOK, status)

		var detail BookData
		require.NoError(t, json.Unmarshal(resp.Data, &detail))
		assert.Equal(t, b.ID, detail.ID)
		assert.Equal(t, b.Title, detail.Title)
	})

	t.Run("不存在的图书返回404", func(t *testing.T) {
		_, status := GetJSON(t, "/books/999999999", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("非法ID返回400", func(t *testing.T) {
		_, status := GetJSON(t, "/books/not-a-number", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

// TestAuthorCatalog 作者目录:单数查询404,关系查询空集
func TestAuthorCatalog(t *testing.T) {
	RequireServer(t)

	t.Run("作者列表", func(t *testing.T) {
		resp, status := GetJSON(t, "/authors", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, resp.Code)
	})

	t.Run("不存在的作者详情返回404", func(t *testing.T) {
		_, status := GetJSON(t, "/authors/999999999", "")
		assert.Equal(t, http.StatusNotFound, status)
	})

	t.Run("不存在的作者图书列表返回空集而非404", func(t *testing.T) {
		resp, status := GetJSON(t, "/authors/999999999/books", "")
		require.Equal(t, http.StatusOK, status)

		var books []BookData
		require.NoError(t, json.Unmarshal(resp.Data, &books))
		assert.Empty(t, books)
	})
}

// TestBestsellersEndpoint 畅销榜端点契约
func TestBestsellersEndpoint(t *testing.T) {
	RequireServer(t)

	t.Run("默认当前月份", func(t *testing.T) {
		resp, status := GetJSON(t, "/books/bestsellers/monthly", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, 0, resp.Code)
	})

	t.Run("limit为0返回空榜单", func(t *testing.T) {
		resp, status := GetJSON(t, "/books/bestsellers/monthly?limit=0", "")
		require.Equal(t, http.StatusOK, status)
		assert.Equal(t, "[]", string(resp.Data))
	})

	t.Run("非法月份返回400", func(t *testing.T) {
		_, status := GetJSON(t, "/books/bestsellers/monthly?year=2026&month=13", "")
		assert.Equal(t, http.StatusBadRequest, status)
	})
}

func uitoa(v uint) string {
	return strconv.FormatUint(uint64(v), 10)
}
