package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/pkg/logger"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

const (
	requestIDKey    = "request_id"
	requestIDHeader = "X-Request-ID"

	slowRequest = 3 * time.Second
)

// RequestLogger 请求日志中间件
// 1. 生成请求ID(上游传入X-Request-ID时沿用)
// 2. 把带request_id的logger放入请求context,后续response.Error等直接使用
// 3. 请求结束后记录方法、路由、状态码、耗时、客户端IP
func RequestLogger(log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		c.Set(requestIDKey, requestID)
		c.Header(requestIDHeader, requestID)

		reqLog := log.With(zap.String("request_id", requestID))
		if traceID := tracing.ExtractTraceID(c.Request.Context()); traceID != "" {
			reqLog = reqLog.With(zap.String("trace_id", traceID))
		}
		c.Request = c.Request.WithContext(logger.WithContext(c.Request.Context(), reqLog))

		start := time.Now()
		c.Next()
		latency := time.Since(start)

		fields := []zap.Field{
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("route", c.FullPath()),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		}
		if len(c.Errors) > 0 {
			fields = append(fields, zap.String("errors", c.Errors.String()))
		}

		switch {
		case c.Writer.Status() >= 500:
			reqLog.Error("request", fields...)
		case latency > slowRequest:
			reqLog.Warn("slow request", fields...)
		default:
			reqLog.Info("request", fields...)
		}
	}
}

// GetRequestID 当前请求ID
func GetRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}
