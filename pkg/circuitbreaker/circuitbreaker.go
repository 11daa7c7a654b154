// Package circuitbreaker 基于sony/gobreaker的熔断器
//
// 目录服务中Redis缓存和事件发布都是可降级的旁路依赖：
// 它们不可用时请求仍然要成功。熔断器打开后直接跳过这些调用，
// 避免每个请求都等待超时。
//
// 状态转换：
//
//	CLOSED --连续失败达到阈值--> OPEN --Timeout后--> HALF_OPEN
//	HALF_OPEN --探测成功--> CLOSED
//	HALF_OPEN --探测失败--> OPEN
package circuitbreaker

import (
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/xiebiao/catalogstore/pkg/metrics"
)

// State 熔断器状态
type State = gobreaker.State

const (
	StateClosed   = gobreaker.StateClosed
	StateHalfOpen = gobreaker.StateHalfOpen
	StateOpen     = gobreaker.StateOpen
)

// ErrOpenState 熔断器打开时返回
var ErrOpenState = gobreaker.ErrOpenState

// Config 熔断器配置
type Config struct {
	MaxRequests      uint32        // HALF_OPEN状态允许的探测请求数
	Interval         time.Duration // CLOSED状态下统计窗口,0表示不清零
	Timeout          time.Duration // OPEN持续时间
	FailureThreshold uint32        // 连续失败多少次后打开
}

// DefaultConfig 默认配置
func DefaultConfig() Config {
	return Config{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// CircuitBreaker 熔断器
type CircuitBreaker struct {
	cb *gobreaker.CircuitBreaker
}

// New 创建熔断器,状态变化同步到Prometheus指标
func New(name string, cfg Config, onStateChange ...func(name string, from, to State)) *CircuitBreaker {
	threshold := cfg.FailureThreshold
	if threshold == 0 {
		threshold = DefaultConfig().FailureThreshold
	}

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= threshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			metrics.SetBreakerState(name, stateValue(to))
			for _, fn := range onStateChange {
				fn(name, from, to)
			}
		},
	}

	metrics.SetBreakerState(name, stateValue(StateClosed))
	return &CircuitBreaker{cb: gobreaker.NewCircuitBreaker(settings)}
}

// Execute 执行受保护的调用
// 熔断器打开时直接返回ErrOpenState,req不会被调用
func (b *CircuitBreaker) Execute(req func() error) error {
	_, err := b.cb.Execute(func() (interface{}, error) {
		return nil, req()
	})
	return err
}

// State 当前状态
func (b *CircuitBreaker) State() State {
	return b.cb.State()
}

// Name 熔断器名称
func (b *CircuitBreaker) Name() string {
	return b.cb.Name()
}

// IsRejected 判断错误是否由熔断器拒绝产生
func IsRejected(err error) bool {
	return errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests)
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
