package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
	"github.com/xiebiao/catalogstore/pkg/metrics"
	"github.com/xiebiao/catalogstore/pkg/tracing"
)

// AdjustStockUseCase 库存调整用例
//
// 核心问题: 并发扣减导致库存为负
// 场景: 库存10个,25个请求同时各扣1个
//  1. 账本在事务中 SELECT ... FOR UPDATE 锁定商品行
//  2. 计算新库存,不足直接拒绝(不截断为0)
//  3. UPDATE ... WHERE stock_quantity = 读取值,未命中则整体重试
//  4. 同一事务写入流水,提交后才发布事件、清理缓存
//
// 事件发布与缓存清理失败不影响调整结果
type AdjustStockUseCase struct {
	registry  *catalog.Registry
	ledger    *inventory.Ledger
	cache     ItemCache
	publisher inventory.Publisher
	log       *zap.Logger
}

// NewAdjustStockUseCase 创建库存调整用例
func NewAdjustStockUseCase(
	registry *catalog.Registry,
	ledger *inventory.Ledger,
	cache ItemCache,
	publisher inventory.Publisher,
	log *zap.Logger,
) *AdjustStockUseCase {
	return &AdjustStockUseCase{
		registry:  registry,
		ledger:    ledger,
		cache:     cache,
		publisher: publisher,
		log:       log,
	}
}

// AdjustStockRequest 库存调整请求
type AdjustStockRequest struct {
	ScopeRequest
	ID        string
	Quantity  int
	Operation string // add | subtract | set
	Reason    string
}

// AdjustStockResponse 调整后的商品及本次流水
type AdjustStockResponse struct {
	ItemResponse
	LastLog LedgerEntryResponse `json:"lastInventoryLog"`
}

// Execute 执行库存调整
func (uc *AdjustStockUseCase) Execute(ctx context.Context, req AdjustStockRequest) (resp *AdjustStockResponse, err error) {
	ctx, span := tracing.StartSpan(ctx, tracerName, "AdjustStock",
		attribute.String("catalog", req.Catalog),
		attribute.String("item.id", req.ID),
		attribute.String("operation", req.Operation),
		attribute.Int("quantity", req.Quantity),
	)
	defer func() { tracing.EndSpan(span, err) }()

	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	res, err := uc.ledger.AdjustStock(ctx, scope, id, inventory.StockAdjustment{
		Quantity:  req.Quantity,
		Operation: inventory.Operation(req.Operation),
		Reason:    req.Reason,
	})
	metrics.RecordStockAdjustment(scope.Catalog, operationLabel(req.Operation), adjustResult(err))
	if err != nil {
		return nil, err
	}
	for i := 1; i < res.Attempts; i++ {
		metrics.RecordStockRetry()
	}

	// 提交之后的旁路操作
	uc.cache.Invalidate(ctx, scope, id)
	uc.publish(ctx, scope, res)

	uc.log.Info("库存已调整",
		zap.String("scope", scope.String()),
		zap.String("id", id.String()),
		zap.String("type", string(res.Entry.Type)),
		zap.Int("previous", res.Entry.PreviousStock),
		zap.Int("new", res.Entry.NewStock),
		zap.Int("attempts", res.Attempts),
	)

	return &AdjustStockResponse{
		ItemResponse: ToItemResponse(res.Item),
		LastLog:      ToLedgerEntryResponse(res.Entry),
	}, nil
}

func (uc *AdjustStockUseCase) publish(ctx context.Context, scope catalog.Scope, res *inventory.Result) {
	event := newStockEvent(scope, res)
	_ = uc.publisher.Publish(ctx, inventory.RoutingStockAdjusted, event)

	if res.EnteredLowStock {
		metrics.RecordLowStock(scope.Catalog)
		low := *event
		low.EventID = uuid.New()
		_ = uc.publisher.Publish(ctx, inventory.RoutingLowStock, &low)
	}
}

func newStockEvent(scope catalog.Scope, res *inventory.Result) *inventory.StockEvent {
	event := &inventory.StockEvent{
		EventID:       uuid.New(),
		Catalog:       scope.Catalog,
		ItemID:        res.Item.ID,
		Title:         res.Item.Title,
		Type:          res.Entry.Type,
		Quantity:      res.Entry.Quantity,
		PreviousStock: res.Entry.PreviousStock,
		NewStock:      res.Entry.NewStock,
		Threshold:     res.Item.LowStockThreshold,
		Reason:        res.Entry.Reason,
		OccurredAt:    res.Entry.CreatedAt,
	}
	if scope.Scoped() {
		event.StoreID = scope.StoreID.String()
	}
	return event
}

// operationLabel 非法操作统一记为unknown
func operationLabel(raw string) string {
	op, err := inventory.ParseOperation(raw)
	if err != nil {
		return "unknown"
	}
	return string(op)
}

// adjustResult 指标中的结果标签
func adjustResult(err error) string {
	if err == nil {
		return "success"
	}
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidOperation:
		return "rejected"
	case apperrors.KindConflict:
		return "conflict"
	case apperrors.KindValidation, apperrors.KindNotFound:
		return "invalid"
	default:
		return "error"
	}
}

// LedgerEntryResponse 库存流水DTO
type LedgerEntryResponse struct {
	ID            string `json:"id"`
	ItemID        string `json:"itemId"`
	Type          string `json:"type"`
	Quantity      int    `json:"quantity"`
	PreviousStock int    `json:"previousStock"`
	NewStock      int    `json:"newStock"`
	Reason        string `json:"reason"`
	CreatedAt     string `json:"createdAt"`
}

// ToLedgerEntryResponse 流水实体 → DTO
func ToLedgerEntryResponse(e *inventory.LedgerEntry) LedgerEntryResponse {
	return LedgerEntryResponse{
		ID:            e.ID.String(),
		ItemID:        e.ItemID.String(),
		Type:          string(e.Type),
		Quantity:      e.Quantity,
		PreviousStock: e.PreviousStock,
		NewStock:      e.NewStock,
		Reason:        e.Reason,
		CreatedAt:     e.CreatedAt.Format(time.RFC3339),
	}
}
