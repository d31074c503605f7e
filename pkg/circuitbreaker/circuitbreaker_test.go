package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"
)

// TestCircuitBreaker_ClosedState 测试关闭状态（正常）
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := NewCircuitBreaker("test-closed", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: ConsecutiveFailures(5),
	})

	for i := 0; i < 10; i++ {
		if err := cb.Execute(func() error { return nil }); err != nil {
			t.Fatalf("期望成功，实际失败: %v", err)
		}
	}

	if cb.State() != StateClosed {
		t.Errorf("期望状态为CLOSED，实际%s", cb.State())
	}
	if counts := cb.Counts(); counts.TotalSuccesses != 10 {
		t.Errorf("期望成功10次，实际%d次", counts.TotalSuccesses)
	}
}

// TestCircuitBreaker_OpenState 测试打开状态（熔断）
func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := NewCircuitBreaker("test-open", Config{
		MaxRequests: 3,
		Interval:    10 * time.Second,
		Timeout:     30 * time.Second,
		ReadyToTrip: ConsecutiveFailures(5),
	})

	for i := 0; i < 5; i++ {
		_ = cb.Execute(func() error { return errors.New("model server unavailable") })
	}

	if cb.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", cb.State())
	}

	// 熔断后不调用实际函数
	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	if !errors.Is(err, ErrOpenState) {
		t.Errorf("期望返回ErrOpenState，实际%v", err)
	}
	if called {
		t.Error("熔断器打开时不应该调用实际函数")
	}
}

// TestCircuitBreaker_HalfOpenRecovery 测试半开状态探测成功后恢复
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	cb := NewCircuitBreaker("test-half-open", Config{
		MaxRequests: 1,
		Interval:    10 * time.Second,
		Timeout:     100 * time.Millisecond,
		ReadyToTrip: ConsecutiveFailures(3),
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	if cb.State() != StateOpen {
		t.Fatalf("期望状态为OPEN，实际%s", cb.State())
	}

	time.Sleep(150 * time.Millisecond)
	if cb.State() != StateHalfOpen {
		t.Fatalf("期望状态为HALF_OPEN，实际%s", cb.State())
	}

	if err := cb.Execute(func() error { return nil }); err != nil {
		t.Fatalf("半开状态探测请求期望成功，实际%v", err)
	}
	if cb.State() != StateClosed {
		t.Errorf("期望状态转为CLOSED，实际%s", cb.State())
	}
}

// TestCircuitBreaker_HalfOpenToOpen 测试半开状态失败后转回打开
func TestCircuitBreaker_HalfOpenToOpen(t *testing.T) {
	cb := NewCircuitBreaker("test-half-open-fail", Config{
		MaxRequests: 1,
		Timeout:     100 * time.Millisecond,
		ReadyToTrip: ConsecutiveFailures(3),
	})

	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errors.New("fail") })
	}
	time.Sleep(150 * time.Millisecond)

	_ = cb.Execute(func() error { return errors.New("still failing") })

	if cb.State() != StateOpen {
		t.Errorf("期望状态转回OPEN，实际%s", cb.State())
	}
}

// 客户端取消不计入失败
func TestCircuitBreaker_CanceledIsNotFailure(t *testing.T) {
	cb := NewCircuitBreaker("test-canceled", Config{
		Timeout:     time.Second,
		ReadyToTrip: ConsecutiveFailures(2),
	})

	for i := 0; i < 5; i++ {
		err := cb.Execute(func() error { return context.Canceled })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("期望透传context.Canceled，实际%v", err)
		}
	}

	if cb.State() != StateClosed {
		t.Errorf("取消请求不应触发熔断，实际状态%s", cb.State())
	}
}

func TestFailureRate(t *testing.T) {
	if got := FailureRate(Counts{}); got != 0 {
		t.Errorf("空统计失败率应为0，实际%f", got)
	}
	if got := FailureRate(Counts{Requests: 4, TotalFailures: 1}); got != 0.25 {
		t.Errorf("期望0.25，实际%f", got)
	}
}

func BenchmarkCircuitBreaker(b *testing.B) {
	cb := NewCircuitBreaker("bench", Config{MaxRequests: 1, Timeout: time.Second})
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cb.Execute(func() error { return nil })
	}
}
