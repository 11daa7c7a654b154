package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBackend = errors.New("redis: connection refused")

// TestCircuitBreaker_ClosedState 测试关闭状态（正常）
func TestCircuitBreaker_ClosedState(t *testing.T) {
	cb := New("closed-test", Config{MaxRequests: 1, Timeout: time.Second, FailureThreshold: 3})

	for i := 0; i < 10; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, "closed-test", cb.Name())
}

// TestCircuitBreaker_OpenState 测试连续失败后熔断
func TestCircuitBreaker_OpenState(t *testing.T) {
	cb := New("open-test", Config{MaxRequests: 1, Timeout: time.Minute, FailureThreshold: 3})

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errBackend })
		assert.ErrorIs(t, err, errBackend)
	}
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(func() error {
		called = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.True(t, IsRejected(err))
	assert.False(t, called, "熔断器打开时不应调用后端")
}

// TestCircuitBreaker_HalfOpenRecovery 测试超时后探测恢复
func TestCircuitBreaker_HalfOpenRecovery(t *testing.T) {
	var mu sync.Mutex
	var transitions []State

	cb := New("half-open-test", Config{MaxRequests: 1, Timeout: 50 * time.Millisecond, FailureThreshold: 1},
		func(name string, from, to State) {
			mu.Lock()
			defer mu.Unlock()
			transitions = append(transitions, to)
		})

	_ = cb.Execute(func() error { return errBackend })
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, StateHalfOpen, cb.State())

	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []State{StateOpen, StateHalfOpen, StateClosed}, transitions)
}

func TestIsRejected(t *testing.T) {
	assert.False(t, IsRejected(errBackend))
	assert.False(t, IsRejected(nil))
}
