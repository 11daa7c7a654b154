package middleware

import (
	"fmt"
	"runtime/debug"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
	"github.com/xiebiao/catalogstore/pkg/logger"
	"github.com/xiebiao/catalogstore/pkg/response"
)

// Recovery 捕获panic,返回统一的500响应并关闭连接
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.FromContext(c.Request.Context()).Error("panic recovered",
					zap.Any("panic", r),
					zap.ByteString("stack", debug.Stack()),
				)
				c.Header("Connection", "close")
				response.Abort(c, apperrors.Wrap(fmt.Errorf("panic: %v", r), "系统内部错误"))
			}
		}()
		c.Next()
	}
}
