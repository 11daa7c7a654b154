package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind 错误分类
// 客户端依赖Kind判断错误性质,Code用于细分具体原因
type Kind string

const (
	KindValidation       Kind = "validation"
	KindNotFound         Kind = "not_found"
	KindConflict         Kind = "conflict"
	KindInvalidOperation Kind = "invalid_operation"
	KindUnauthorized     Kind = "unauthorized"
	KindForbidden        Kind = "forbidden"
	KindRateLimited      Kind = "rate_limited"
	KindStore            Kind = "store"
	KindInternal         Kind = "internal"
)

// AppError 自定义应用错误
// 设计说明：
// 1. Kind是稳定的错误分类标签，决定HTTP状态码
// 2. Code用于客户端判断具体错误原因
// 3. Message是用户友好的提示信息
// 4. Details携带字段级校验信息
// 5. Err是内部错误，仅记录到日志，不返回给客户端
type AppError struct {
	Kind    Kind              `json:"kind"`
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
	Err     error             `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%d] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%d] %s", e.Code, e.Message)
}

// Unwrap 支持errors.Is和errors.As
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is 错误码和消息相同即视为同一错误
// WithDetails/WithCause产生的副本仍然匹配原预定义错误
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Code == e.Code && t.Message == e.Message
}

// HTTPStatus 根据Kind映射HTTP状态码
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindValidation, KindInvalidOperation:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// WithDetails 返回附带字段详情的副本(预定义错误是共享的,不能原地修改)
func (e *AppError) WithDetails(details map[string]string) *AppError {
	cp := *e
	cp.Details = details
	return &cp
}

// WithCause 返回附带内部错误的副本
func (e *AppError) WithCause(err error) *AppError {
	cp := *e
	cp.Err = err
	return &cp
}

// New 创建新的AppError,Kind由错误码区间推导
func New(code int, message string) *AppError {
	return &AppError{
		Kind:    kindOf(code),
		Code:    code,
		Message: message,
	}
}

// Newf 格式化创建AppError
func Newf(code int, format string, args ...interface{}) *AppError {
	return New(code, fmt.Sprintf(format, args...))
}

// Wrap 包装系统错误（如网络错误）
// 用途：将底层错误转换为业务错误，隐藏实现细节
func Wrap(err error, message string) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    ErrCodeInternal,
		Message: message,
		Err:     err,
	}
}

// Wrapf 格式化包装错误
func Wrapf(err error, format string, args ...interface{}) *AppError {
	return Wrap(err, fmt.Sprintf(format, args...))
}

// WrapStore 包装存储层错误
// 仓储实现统一使用它,保证数据库细节不泄露给调用方
func WrapStore(err error, message string) *AppError {
	return &AppError{
		Kind:    KindStore,
		Code:    ErrCodeDatabaseError,
		Message: message,
		Err:     err,
	}
}

// Invalid 创建参数校验错误
func Invalid(message string, details map[string]string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    ErrCodeInvalidParams,
		Message: message,
		Details: details,
	}
}

// =========================================
// 错误码定义
// =========================================
// 规范：
// - 400xx: 业务规则错误（invalid_operation）
// - 4005x-4009x: 唯一性/并发冲突（conflict）
// - 401xx: 认证授权
// - 404xx: 资源不存在
// - 409xx: 参数错误（validation）
// - 5xxxx: 服务端错误（数据库异常、外部服务调用失败）

const (
	// 系统级错误码（50000-50099）
	ErrCodeInternal      = 50000 // 内部错误
	ErrCodeDatabaseError = 50001 // 数据库错误
	ErrCodeRedisError    = 50002 // Redis错误
	ErrCodeBrokerError   = 50003 // 消息队列错误

	// 认证授权错误（40100-40199）
	ErrCodeUnauthorized = 40100 // 未登录
	ErrCodeInvalidToken = 40101 // Token无效
	ErrCodeTokenExpired = 40102 // Token过期
	ErrCodeTokenRevoked = 40103 // Token已注销
	ErrCodeForbidden    = 40104 // 无权限

	// 限流
	ErrCodeTooManyRequests = 42900

	// 资源错误（40400-40499）
	ErrCodeNotFound          = 40400 // 资源不存在(通用)
	ErrCodeItemNotFound      = 40401 // 商品不存在
	ErrCodeCatalogNotFound   = 40402 // 目录类型不存在
	ErrCodeReferenceNotFound = 40403 // 关联实体不存在

	// 业务规则错误（40000-40049）
	ErrCodeBusinessError     = 40000 // 业务错误(通用)
	ErrCodeInsufficientStock = 40001 // 库存不足
	ErrCodeStockOverflow     = 40002 // 库存超出上限

	// 冲突错误（40050-40099）
	ErrCodeDuplicateEntry   = 40050 // 重复记录(通用)
	ErrCodeSlugConflict     = 40051 // slug冲突
	ErrCodeCodeDuplicate    = 40052 // ISBN/SKU重复
	ErrCodeConcurrentUpdate = 40053 // 并发修改冲突

	// 参数错误（40900-40999）
	ErrCodeInvalidParams = 40900 // 参数错误
	ErrCodeBindError     = 40901 // 参数绑定失败
	ErrCodeScopeRequired = 40902 // 缺少店铺范围
	ErrCodeInvalidSort   = 40903 // 排序字段不合法
	ErrCodeBulkMembers   = 40904 // 批量操作包含无效ID
)

// kindOf 按错误码区间推导Kind
func kindOf(code int) Kind {
	switch {
	case code == ErrCodeForbidden:
		return KindForbidden
	case code == ErrCodeTooManyRequests:
		return KindRateLimited
	case code == ErrCodeDatabaseError:
		return KindStore
	case code >= 50000:
		return KindInternal
	case code >= 40900:
		return KindValidation
	case code >= 40400:
		return KindNotFound
	case code >= 40100:
		return KindUnauthorized
	case code >= 40050:
		return KindConflict
	default:
		return KindInvalidOperation
	}
}

// =========================================
// 预定义错误（避免每次都New）
// =========================================

var (
	// 系统错误
	ErrInternal      = New(ErrCodeInternal, "系统内部错误")
	ErrDatabaseError = New(ErrCodeDatabaseError, "数据库错误")
	ErrRedisError    = New(ErrCodeRedisError, "缓存服务错误")

	// 认证授权
	ErrUnauthorized = New(ErrCodeUnauthorized, "请先登录")
	ErrInvalidToken = New(ErrCodeInvalidToken, "无效的Token")
	ErrTokenExpired = New(ErrCodeTokenExpired, "Token已过期")
	ErrTokenRevoked = New(ErrCodeTokenRevoked, "Token已失效，请重新获取")
	ErrForbidden    = New(ErrCodeForbidden, "无权限访问")

	ErrTooManyRequests = New(ErrCodeTooManyRequests, "请求过于频繁，请稍后再试")

	ErrNotFound = New(ErrCodeNotFound, "资源不存在")

	// 参数错误
	ErrInvalidParams = New(ErrCodeInvalidParams, "参数错误")
	ErrBindError     = New(ErrCodeBindError, "参数格式错误")
)

// =========================================
// 辅助函数
// =========================================

// IsAppError 判断是否为AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return errors.As(err, &appErr)
}

// GetAppError 提取AppError（如果不是AppError则包装成Internal错误）
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Wrap(err, "系统内部错误")
}

// KindOf 提取错误分类,非AppError视为internal
func KindOf(err error) Kind {
	if err == nil {
		return ""
	}
	return GetAppError(err).Kind
}

// CodeOf 提取错误码
func CodeOf(err error) int {
	if err == nil {
		return 0
	}
	return GetAppError(err).Code
}
