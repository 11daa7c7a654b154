package inventory

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Operation 库存操作
type Operation string

const (
	OperationAdd      Operation = "add"
	OperationSubtract Operation = "subtract"
	OperationSet      Operation = "set"
)

// ParseOperation 解析库存操作(大小写不敏感)
func ParseOperation(s string) (Operation, error) {
	switch op := Operation(strings.ToLower(strings.TrimSpace(s))); op {
	case OperationAdd, OperationSubtract, OperationSet:
		return op, nil
	}
	return "", ErrInvalidOperation
}

// MutationType 流水类型
type MutationType string

const (
	MutationPurchase   MutationType = "PURCHASE"
	MutationSale       MutationType = "SALE"
	MutationAdjustment MutationType = "ADJUSTMENT"
)

// Type 操作对应的流水类型
func (op Operation) Type() MutationType {
	switch op {
	case OperationAdd:
		return MutationPurchase
	case OperationSubtract:
		return MutationSale
	default:
		return MutationAdjustment
	}
}

// LedgerEntry 库存流水(只追加,不修改)
// 不变量: NewStock - PreviousStock == Quantity
type LedgerEntry struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	Type          MutationType
	Quantity      int // 带符号的变化量
	PreviousStock int
	NewStock      int
	Reason        string
	CreatedAt     time.Time
}

const maxReasonLength = 255

// StockAdjustment 一次库存调整请求
type StockAdjustment struct {
	Quantity  int
	Operation Operation
	Reason    string
}

// Validate 校验数量和操作
func (a StockAdjustment) Validate() error {
	if _, err := ParseOperation(string(a.Operation)); err != nil {
		return err
	}
	if a.Quantity < 0 {
		return ErrInvalidQuantity
	}
	if len([]rune(a.Reason)) > maxReasonLength {
		return ErrReasonTooLong
	}
	return nil
}

// Apply 计算调整后的库存,生成流水
// 业务规则:
// - add: current + q
// - subtract: current - q,结果为负时拒绝(不截断为0)
// - set: q
func (a StockAdjustment) Apply(itemID uuid.UUID, current, max int, now time.Time) (*LedgerEntry, error) {
	var next int
	switch a.Operation {
	case OperationAdd:
		if a.Quantity > max-current {
			return nil, ErrStockOverflow
		}
		next = current + a.Quantity
	case OperationSubtract:
		if a.Quantity > current {
			return nil, ErrInsufficientStock.WithDetails(map[string]string{
				"available": fmt.Sprint(current),
				"requested": fmt.Sprint(a.Quantity),
			})
		}
		next = current - a.Quantity
	case OperationSet:
		if a.Quantity > max {
			return nil, ErrStockOverflow
		}
		next = a.Quantity
	default:
		return nil, ErrInvalidOperation
	}

	reason := strings.TrimSpace(a.Reason)
	if reason == "" {
		reason = "Stock " + string(a.Operation)
	}

	return &LedgerEntry{
		ID:            uuid.New(),
		ItemID:        itemID,
		Type:          a.Operation.Type(),
		Quantity:      next - current,
		PreviousStock: current,
		NewStock:      next,
		Reason:        reason,
		CreatedAt:     now,
	}, nil
}
