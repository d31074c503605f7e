// Package circuitbreaker 熔断器，保护对外部推理服务的同步调用
//
// 基于sony/gobreaker实现三态转换：
//   - CLOSED：请求正常通过，统计失败次数
//   - OPEN：快速失败，不再调用下游，Timeout后转为HALF_OPEN
//   - HALF_OPEN：放行MaxRequests个探测请求，成功则CLOSED，失败则回到OPEN
//
// 状态变化会记录日志并更新Prometheus指标。
package circuitbreaker

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/xiebiao/bookreviews/pkg/metrics"
)

// State 熔断器状态
type State = gobreaker.State

const (
	StateClosed   = gobreaker.StateClosed
	StateOpen     = gobreaker.StateOpen
	StateHalfOpen = gobreaker.StateHalfOpen
)

// Counts 统计数据
type Counts = gobreaker.Counts

var (
	// ErrOpenState 熔断器打开，请求被拒绝
	ErrOpenState = gobreaker.ErrOpenState

	// ErrTooManyRequests 半开状态下探测请求数已满
	ErrTooManyRequests = gobreaker.ErrTooManyRequests
)

// Config 熔断器配置
type Config struct {
	// MaxRequests 半开状态下允许的最大请求数
	MaxRequests uint32

	// Interval CLOSED状态下统计窗口，到期清零；0表示不清零
	Interval time.Duration

	// Timeout OPEN状态持续时间，之后转为HALF_OPEN
	Timeout time.Duration

	// ReadyToTrip 判断是否应该打开熔断器，为空时连续失败5次熔断
	ReadyToTrip func(counts Counts) bool
}

// ConsecutiveFailures 连续失败n次即熔断
func ConsecutiveFailures(n uint32) func(counts Counts) bool {
	return func(counts Counts) bool {
		return counts.ConsecutiveFailures >= n
	}
}

// FailureRate 计算失败率
func FailureRate(c Counts) float64 {
	if c.Requests == 0 {
		return 0
	}
	return float64(c.TotalFailures) / float64(c.Requests)
}

// CircuitBreaker 熔断器
type CircuitBreaker struct {
	name string
	cb   *gobreaker.CircuitBreaker[struct{}]
}

// NewCircuitBreaker 创建熔断器
func NewCircuitBreaker(name string, config Config) *CircuitBreaker {
	readyToTrip := config.ReadyToTrip
	if readyToTrip == nil {
		readyToTrip = ConsecutiveFailures(5)
	}

	metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, 0)

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: config.MaxRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: readyToTrip,
		OnStateChange: func(name string, from, to gobreaker.State) {
			log.Warn().
				Str("breaker", name).
				Str("from", from.String()).
				Str("to", to.String()).
				Msg("circuit breaker state changed")
			metrics.SetGaugeVec(metrics.CircuitBreakerState, map[string]string{"name": name}, stateValue(to))
		},
		// 调用方主动取消（客户端断开）不算下游失败
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, context.Canceled)
		},
	}

	return &CircuitBreaker{
		name: name,
		cb:   gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// Execute 在熔断器保护下执行请求
// 熔断器打开时直接返回ErrOpenState，不调用req
func (b *CircuitBreaker) Execute(req func() error) error {
	_, err := b.cb.Execute(func() (struct{}, error) {
		return struct{}{}, req()
	})

	result := "success"
	switch {
	case errors.Is(err, ErrOpenState), errors.Is(err, ErrTooManyRequests):
		result = "rejected"
	case err != nil:
		result = "failure"
	}
	metrics.IncCounterVec(metrics.CircuitBreakerRequests, map[string]string{"name": b.name, "result": result})

	return err
}

// Name 熔断器名称
func (b *CircuitBreaker) Name() string {
	return b.name
}

// State 当前状态
func (b *CircuitBreaker) State() State {
	return b.cb.State()
}

// Counts 当前统计
func (b *CircuitBreaker) Counts() Counts {
	return b.cb.Counts()
}

func stateValue(s State) float64 {
	switch s {
	case StateOpen:
		return 1
	case StateHalfOpen:
		return 2
	default:
		return 0
	}
}
