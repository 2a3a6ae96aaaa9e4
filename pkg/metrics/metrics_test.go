package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestInitMetrics 测试指标初始化（重复调用不得panic）
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics() // 幂等

	assert.NotNil(t, HTTPRequestsTotal)
	assert.NotNil(t, HTTPRequestDuration)
	assert.NotNil(t, HTTPRequestsInProgress)
	assert.NotNil(t, OrdersPlacedTotal)
	assert.NotNil(t, OrdersCancelledTotal)
}

// TestCounter 测试Counter递增
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, OrdersPlacedTotal)

	IncCounter(OrdersPlacedTotal)
	IncCounter(OrdersPlacedTotal)
	IncCounter(OrdersPlacedTotal)

	assert.Equal(t, before+3, getCounterValue(t, OrdersPlacedTotal))
}

// TestCounterVec 测试带标签的Counter
func TestCounterVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{
		"method": "GET",
		"path":   "/books",
		"status": "200",
	}

	before := getCounterVecValue(t, HTTPRequestsTotal, labels)

	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, labels)
	IncCounterVec(HTTPRequestsTotal, map[string]string{
		"method": "POST",
		"path":   "/orders/1",
		"status": "201",
	})

	assert.Equal(t, before+2, getCounterVecValue(t, HTTPRequestsTotal, labels))
}

// TestGauge 测试Gauge增减
func TestGauge(t *testing.T) {
	InitMetrics()

	before := getGaugeValue(t, HTTPRequestsInProgress)

	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	assert.Equal(t, before+1, getGaugeValue(t, HTTPRequestsInProgress))
}

// TestHistogram 测试Histogram观测
func TestHistogram(t *testing.T) {
	InitMetrics()

	ObserveHistogram(OrderPlacementDuration, 0.05)
	ObserveHistogram(OrderPlacementDuration, 0.2)

	var m dto.Metric
	require.NoError(t, OrderPlacementDuration.Write(&m))
	assert.GreaterOrEqual(t, m.GetHistogram().GetSampleCount(), uint64(2))
}

// =========================================
// 辅助函数：读取指标当前值
// =========================================

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	var m dto.Metric
	require.NoError(t, counter.Write(&m))
	return m.GetCounter().GetValue()
}

func getCounterVecValue(t *testing.T, vec *prometheus.CounterVec, labels map[string]string) float64 {
	var m dto.Metric
	require.NoError(t, vec.With(labels).Write(&m))
	return m.GetCounter().GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	var m dto.Metric
	require.NoError(t, gauge.Write(&m))
	return m.GetGauge().GetValue()
}
