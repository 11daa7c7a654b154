package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
	"github.com/xiebiao/catalogstore/pkg/logger"
	"github.com/xiebiao/catalogstore/pkg/validator"
)

// Response 统一响应结构
// 设计说明：
// 1. Success标识请求是否成功,HTTP状态码同时反映结果
// 2. Message是用户友好的提示信息
// 3. Data是业务数据,Count是列表条数,失败时两者都省略
// 4. Error只携带分类、错误码与字段详情,从不包含内部错误
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Count   *int        `json:"count,omitempty"`
	Error   *ErrorBody  `json:"error,omitempty"`
}

// ErrorBody 错误详情
type ErrorBody struct {
	Kind    apperrors.Kind    `json:"kind"`
	Code    int               `json:"code"`
	Details map[string]string `json:"details,omitempty"`
}

// Success 成功响应(200)
func Success(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Created 创建成功响应(201)
func Created(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// List 列表响应,附带条数
func List(c *gin.Context, message string, data interface{}, count int) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// Error 错误响应（自动处理AppError）
// 用法：
//
//	item, err := uc.Execute(ctx, req)
//	if err != nil {
//	    response.Error(c, err)
//	    return
//	}
func Error(c *gin.Context, err error) {
	appErr := apperrors.GetAppError(err)
	status := appErr.HTTPStatus()

	// 内部错误只进日志
	log := logger.FromContext(c.Request.Context())
	if status >= http.StatusInternalServerError {
		log.Error("request failed",
			zap.Int("code", appErr.Code),
			zap.String("kind", string(appErr.Kind)),
			zap.Error(err),
		)
	} else if appErr.Err != nil {
		log.Warn("request rejected", zap.Int("code", appErr.Code), zap.Error(appErr.Err))
	}

	message := appErr.Message
	if appErr.Kind == apperrors.KindInternal {
		message = apperrors.ErrInternal.Message
	}

	c.JSON(status, Response{
		Success: false,
		Message: message,
		Error: &ErrorBody{
			Kind:    appErr.Kind,
			Code:    appErr.Code,
			Details: appErr.Details,
		},
	})
}

// Abort 错误响应并终止后续Handler(中间件使用)
func Abort(c *gin.Context, err error) {
	Error(c, err)
	c.Abort()
}

// BindError 参数绑定失败
// 校验失败返回字段详情,JSON格式错误只返回body
func BindError(c *gin.Context, err error) {
	details := validator.Details(err)
	if details == nil {
		details = map[string]string{"body": err.Error()}
	}
	Error(c, apperrors.ErrBindError.WithDetails(details))
}
