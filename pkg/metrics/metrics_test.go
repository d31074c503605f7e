package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// TestInitMetrics 测试指标初始化（重复调用不panic）
func TestInitMetrics(t *testing.T) {
	InitMetrics()
	InitMetrics()

	if HTTPRequestsTotal == nil || HTTPRequestDuration == nil || HTTPRequestsInProgress == nil {
		t.Fatal("HTTP指标未初始化")
	}
	if InferenceRequestsTotal == nil || CircuitBreakerState == nil || MessagesPublishedTotal == nil {
		t.Fatal("推理/熔断/消息指标未初始化")
	}
}

// TestCounter 测试Counter递增
func TestCounter(t *testing.T) {
	InitMetrics()

	before := getCounterValue(t, BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)
	IncCounter(BooksCreatedTotal)

	if got := getCounterValue(t, BooksCreatedTotal) - before; got != 2 {
		t.Errorf("Counter增量错误: expected=2, got=%f", got)
	}
}

// TestCounterVec 测试不同标签独立计数
func TestCounterVec(t *testing.T) {
	InitMetrics()

	ok := map[string]string{"adapter": "summarizer", "result": "success"}
	fail := map[string]string{"adapter": "summarizer", "result": "failure"}

	beforeOK := getCounterVecValue(t, InferenceRequestsTotal, ok)
	beforeFail := getCounterVecValue(t, InferenceRequestsTotal, fail)

	IncCounterVec(InferenceRequestsTotal, ok)
	IncCounterVec(InferenceRequestsTotal, ok)
	IncCounterVec(InferenceRequestsTotal, fail)

	if got := getCounterVecValue(t, InferenceRequestsTotal, ok) - beforeOK; got != 2 {
		t.Errorf("success计数错误: expected=2, got=%f", got)
	}
	if got := getCounterVecValue(t, InferenceRequestsTotal, fail) - beforeFail; got != 1 {
		t.Errorf("failure计数错误: expected=1, got=%f", got)
	}
}

// TestGauge 测试Gauge增减
func TestGauge(t *testing.T) {
	InitMetrics()

	SetGauge(HTTPRequestsInProgress, 0)
	IncGauge(HTTPRequestsInProgress)
	IncGauge(HTTPRequestsInProgress)
	DecGauge(HTTPRequestsInProgress)

	if got := getGaugeValue(t, HTTPRequestsInProgress); got != 1 {
		t.Errorf("Gauge值错误: expected=1, got=%f", got)
	}
}

// TestGaugeVec 测试熔断器状态
func TestGaugeVec(t *testing.T) {
	InitMetrics()

	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "summarizer"}, 0)
	SetGaugeVec(CircuitBreakerState, map[string]string{"name": "recommender"}, 1)

	if got := getGaugeVecValue(t, CircuitBreakerState, map[string]string{"name": "recommender"}); got != 1 {
		t.Errorf("GaugeVec值错误: expected=1, got=%f", got)
	}
}

// TestHistogramVec 测试耗时记录
func TestHistogramVec(t *testing.T) {
	InitMetrics()

	labels := map[string]string{"adapter": "recommender"}
	before := getHistogramVecCount(t, InferenceDuration, labels)

	ObserveHistogramVec(InferenceDuration, labels, 0.2)
	ObserveHistogramVec(InferenceDuration, labels, 1.5)

	if got := getHistogramVecCount(t, InferenceDuration, labels) - before; got != 2 {
		t.Errorf("HistogramVec观测次数错误: expected=2, got=%d", got)
	}
}

// 未初始化的指标调用便捷函数不应panic
func TestNilSafe(t *testing.T) {
	IncCounter(nil)
	IncCounterVec(nil, nil)
	IncGauge(nil)
	DecGauge(nil)
	SetGauge(nil, 1)
	SetGaugeVec(nil, nil, 1)
	ObserveHistogramVec(nil, nil, 1)
}

func getCounterValue(t *testing.T, counter prometheus.Counter) float64 {
	t.Helper()
	var metric dto.Metric
	if err := counter.Write(&metric); err != nil {
		t.Fatalf("读取Counter值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

func getCounterVecValue(t *testing.T, counterVec *prometheus.CounterVec, labels map[string]string) float64 {
	t.Helper()
	var metric dto.Metric
	if err := counterVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取CounterVec值失败: %v", err)
	}
	return metric.Counter.GetValue()
}

func getGaugeValue(t *testing.T, gauge prometheus.Gauge) float64 {
	t.Helper()
	var metric dto.Metric
	if err := gauge.Write(&metric); err != nil {
		t.Fatalf("读取Gauge值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

func getGaugeVecValue(t *testing.T, gaugeVec *prometheus.GaugeVec, labels map[string]string) float64 {
	t.Helper()
	var metric dto.Metric
	if err := gaugeVec.With(labels).Write(&metric); err != nil {
		t.Fatalf("读取GaugeVec值失败: %v", err)
	}
	return metric.Gauge.GetValue()
}

func getHistogramVecCount(t *testing.T, histogramVec *prometheus.HistogramVec, labels map[string]string) uint64 {
	t.Helper()
	var metric dto.Metric
	histogram := histogramVec.With(labels)
	if err := histogram.(prometheus.Histogram).Write(&metric); err != nil {
		t.Fatalf("读取HistogramVec值失败: %v", err)
	}
	return metric.Histogram.GetSampleCount()
}
