package catalog

import (
	"context"
	"strconv"
	"strings"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
)

// LowStockUseCase 低库存查询
type LowStockUseCase struct {
	registry *catalog.Registry
	ledger   *inventory.Ledger
}

// NewLowStockUseCase 创建低库存查询用例
func NewLowStockUseCase(registry *catalog.Registry, ledger *inventory.Ledger) *LowStockUseCase {
	return &LowStockUseCase{registry: registry, ledger: ledger}
}

// LowStockRequest Threshold为空时按各商品自己的阈值
type LowStockRequest struct {
	ScopeRequest
	Threshold string
}

// Execute 执行低库存查询
func (uc *LowStockUseCase) Execute(ctx context.Context, req LowStockRequest) ([]ItemResponse, error) {
	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}

	var threshold *int
	if raw := strings.TrimSpace(req.Threshold); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, inventory.ErrInvalidThreshold
		}
		threshold = &n
	}

	items, err := uc.ledger.LowStock(ctx, scope, threshold)
	if err != nil {
		return nil, err
	}
	return ToItemResponses(items), nil
}

// StockHistoryUseCase 商品库存流水
type StockHistoryUseCase struct {
	registry *catalog.Registry
	ledger   *inventory.Ledger
}

// NewStockHistoryUseCase 创建流水查询用例
func NewStockHistoryUseCase(registry *catalog.Registry, ledger *inventory.Ledger) *StockHistoryUseCase {
	return &StockHistoryUseCase{registry: registry, ledger: ledger}
}

// StockHistoryRequest 流水查询请求,page/limit规则与列表查询相同
type StockHistoryRequest struct {
	ScopeRequest
	ID    string
	Page  string
	Limit string
}

// StockHistoryResponse 流水分页
type StockHistoryResponse = catalog.Page[LedgerEntryResponse]

// Execute 执行流水查询
func (uc *StockHistoryUseCase) Execute(ctx context.Context, req StockHistoryRequest) (*StockHistoryResponse, error) {
	scope, _, err := uc.registry.Resolve(req.Catalog, req.StoreID)
	if err != nil {
		return nil, err
	}
	id, err := parseID(req.ID)
	if err != nil {
		return nil, err
	}

	// 非数字按默认值处理
	page, _ := strconv.Atoi(req.Page)
	limit, _ := strconv.Atoi(req.Limit)

	result, err := uc.ledger.History(ctx, scope, id, page, limit)
	if err != nil {
		return nil, err
	}
	return catalog.MapPage(result, ToLedgerEntryResponse), nil
}
