package inventory

import (
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

// 库存领域错误定义
var (
	// ErrInsufficientStock 扣减后库存为负
	ErrInsufficientStock = apperrors.New(apperrors.ErrCodeInsufficientStock, "insufficient stock")

	// ErrStockOverflow 库存超出上限
	ErrStockOverflow = apperrors.New(apperrors.ErrCodeStockOverflow, "库存超出上限")

	// ErrInvalidOperation 操作必须是add/subtract/set
	ErrInvalidOperation = apperrors.New(apperrors.ErrCodeInvalidParams, "操作必须是add、subtract或set")

	// ErrInvalidQuantity 数量为负
	ErrInvalidQuantity = apperrors.New(apperrors.ErrCodeInvalidParams, "数量必须是非负整数")

	// ErrReasonTooLong 原因过长
	ErrReasonTooLong = apperrors.New(apperrors.ErrCodeInvalidParams, "原因不能超过255个字符")

	// ErrInvalidThreshold 阈值为负
	ErrInvalidThreshold = apperrors.New(apperrors.ErrCodeInvalidParams, "阈值必须是非负整数")

	// ErrConcurrentUpdate 重试次数用尽仍然冲突
	ErrConcurrentUpdate = apperrors.New(apperrors.ErrCodeConcurrentUpdate, "库存正在被其他请求修改,请重试")
)
