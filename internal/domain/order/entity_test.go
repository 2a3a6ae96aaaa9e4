package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestParseStatus 测试状态Token翻译
// 重点:历史数据中的"New"与大小写差异必须被归一化
func TestParseStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want OrderStatus
	}{
		{"Created", StatusCreated},
		{"created", StatusCreated},
		{"New", StatusCreated},
		{"new", StatusCreated},
		{"NEW", StatusCreated},
		{"Completed", StatusCompleted},
		{"completed", StatusCompleted},
		{"Cancelled", StatusCancelled},
		{"CANCELLED", StatusCancelled},
		{"  Created  ", StatusCreated},
	}

	for _, c := range cases {
		got, err := ParseStatus(c.raw)
		require.NoError(t, err, "raw=%q", c.raw)
		assert.Equal(t, c.want, got, "raw=%q", c.raw)
	}
}

// TestParseStatus_Unknown 测试无法识别的Token
func TestParseStatus_Unknown(t *testing.T) {
	for _, raw := range []string{"", "shipped", "pending", "canceled"} {
		_, err := ParseStatus(raw)
		assert.ErrorIs(t, err, ErrUnknownStatus, "raw=%q", raw)
	}
}

// TestStatusString 测试持久化Token的规范形式
func TestStatusString(t *testing.T) {
	assert.Equal(t, "Created", StatusCreated.String())
	assert.Equal(t, "Completed", StatusCompleted.String())
	assert.Equal(t, "Cancelled", StatusCancelled.String())
	assert.Equal(t, "Unknown", OrderStatus(99).String())

	// 规范Token必须能被ParseStatus还原(往返一致)
	for _, s := range []OrderStatus{StatusCreated, StatusCompleted, StatusCancelled} {
		parsed, err := ParseStatus(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, parsed)
	}
}

// TestCountedStatuses 销量统计只排除已取消订单
func TestCountedStatuses(t *testing.T) {
	statuses := CountedStatuses()
	assert.ElementsMatch(t, []OrderStatus{StatusCreated, StatusCompleted}, statuses)
	assert.NotContains(t, statuses, StatusCancelled)
}

// TestCalculateTotal 测试按明细计算总金额(单价快照×数量)
func TestCalculateTotal(t *testing.T) {
	o := &Order{
		Items: []OrderItem{
			{BookID: 1, Quantity: 2, PriceAtPurchase: 2500}, // 25.00 × 2
			{BookID: 2, Quantity: 1, PriceAtPurchase: 1500}, // 15.00 × 1
		},
	}
	assert.Equal(t, int64(6500), o.CalculateTotal())
}

// TestCalculateTotal_Empty 空明细订单总金额为0
func TestCalculateTotal_Empty(t *testing.T) {
	o := &Order{Items: []OrderItem{}}
	assert.Equal(t, int64(0), o.CalculateTotal())
}

// TestNewOrder 测试订单工厂方法
func TestNewOrder(t *testing.T) {
	items := []OrderItem{{BookID: 7, Quantity: 3, PriceAtPurchase: 1000}}
	o := NewOrder(42, items, 3000)

	assert.Equal(t, uint(42), o.UserID)
	assert.Equal(t, StatusCreated, o.Status)
	assert.Equal(t, int64(3000), o.Total)
	assert.Len(t, o.Items, 1)
	assert.False(t, o.OrderDate.IsZero())
	assert.Equal(t, "UTC", o.OrderDate.Location().String())
}

// TestCancel 取消不设防护,重复取消幂等
func TestCancel(t *testing.T) {
	o := NewOrder(1, nil, 0)

	o.Cancel()
	assert.Equal(t, StatusCancelled, o.Status)

	// 重复取消保持Cancelled
	o.Cancel()
	assert.Equal(t, StatusCancelled, o.Status)

	// 已完成订单同样可以取消(无状态迁移防护)
	o2 := &Order{Status: StatusCompleted}
	o2.Cancel()
	assert.Equal(t, StatusCancelled, o2.Status)
}

// TestIsOwnedBy 测试订单归属判断
func TestIsOwnedBy(t *testing.T) {
	o := &Order{UserID: 10}
	assert.True(t, o.IsOwnedBy(10))
	assert.False(t, o.IsOwnedBy(11))
}
