package middleware

import (
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
	"github.com/xiebiao/catalogstore/pkg/response"
)

const (
	limiterIdleTTL  = 3 * time.Minute
	limiterSweepGap = time.Minute
)

type client struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// RateLimiter 按客户端IP的令牌桶限流
// 后台goroutine定期清理3分钟未出现的IP,Close后停止
type RateLimiter struct {
	rps   rate.Limit
	burst int

	mu      sync.Mutex
	clients map[string]*client

	done chan struct{}
	once sync.Once
}

// NewRateLimiter 创建限流器
func NewRateLimiter(rps float64, burst int) *RateLimiter {
	l := &RateLimiter{
		rps:     rate.Limit(rps),
		burst:   burst,
		clients: make(map[string]*client),
		done:    make(chan struct{}),
	}
	go l.sweep()
	return l
}

func (l *RateLimiter) sweep() {
	ticker := time.NewTicker(limiterSweepGap)
	defer ticker.Stop()
	for {
		select {
		case <-l.done:
			return
		case now := <-ticker.C:
			l.mu.Lock()
			for ip, c := range l.clients {
				if now.Sub(c.lastSeen) > limiterIdleTTL {
					delete(l.clients, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// Allow 判断该IP本次请求是否放行
func (l *RateLimiter) Allow(ip string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	c, ok := l.clients[ip]
	if !ok {
		c = &client{limiter: rate.NewLimiter(l.rps, l.burst)}
		l.clients[ip] = c
	}
	c.lastSeen = time.Now()
	return c.limiter.Allow()
}

// Handler gin中间件,超限返回429
func (l *RateLimiter) Handler() gin.HandlerFunc {
	retryAfter := "1"
	if l.rps > 0 && l.rps < 1 {
		retryAfter = strconv.Itoa(int(1/float64(l.rps)) + 1)
	}
	return func(c *gin.Context) {
		if !l.Allow(c.ClientIP()) {
			c.Header("Retry-After", retryAfter)
			response.Abort(c, apperrors.ErrTooManyRequests)
			return
		}
		c.Next()
	}
}

// Close 停止后台清理
func (l *RateLimiter) Close() {
	l.once.Do(func() { close(l.done) })
}
