package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/catalogstore/internal/application/catalog"
	"github.com/xiebiao/catalogstore/internal/interface/http/dto"
	"github.com/xiebiao/catalogstore/pkg/response"
)

// InventoryHandler 库存HTTP处理器
type InventoryHandler struct {
	adjustStock  *appcatalog.AdjustStockUseCase
	lowStock     *appcatalog.LowStockUseCase
	stockHistory *appcatalog.StockHistoryUseCase
}

// NewInventoryHandler 创建库存处理器
func NewInventoryHandler(
	adjustStock *appcatalog.AdjustStockUseCase,
	lowStock *appcatalog.LowStockUseCase,
	stockHistory *appcatalog.StockHistoryUseCase,
) *InventoryHandler {
	return &InventoryHandler{
		adjustStock:  adjustStock,
		lowStock:     lowStock,
		stockHistory: stockHistory,
	}
}

// AdjustStock 调整库存
// @Summary      调整库存
// @Description  add入库(PURCHASE)、subtract出库(SALE,不足时拒绝)、set盘点(ADJUSTMENT);每次调整写一条流水
// @Tags         库存
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string                 true "目录类型"
// @Param        id      path string                 true "商品ID"
// @Param        request body dto.AdjustStockRequest true "数量与操作"
// @Success      200 {object} response.Response{data=appcatalog.AdjustStockResponse}
// @Failure      400 {object} response.Response "库存不足或参数错误"
// @Failure      404 {object} response.Response "商品不存在"
// @Failure      409 {object} response.Response "并发修改冲突,请重试"
// @Router       /api/v1/catalogs/{catalog}/items/{id}/stock [patch]
func (h *InventoryHandler) AdjustStock(c *gin.Context) {
	// 1. 参数绑定
	var req dto.AdjustStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	// 2. 事务内加锁、条件更新、写流水
	result, err := h.adjustStock.Execute(c.Request.Context(), appcatalog.AdjustStockRequest{
		ScopeRequest: scopeOf(c),
		ID:           c.Param("id"),
		Quantity:     *req.Quantity,
		Operation:    req.Operation,
		Reason:       req.Reason,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "库存更新成功", result)
}

// LowStock 低库存商品
// @Summary      低库存商品
// @Description  不传threshold时按各商品自己的低库存阈值;按库存升序
// @Tags         库存
// @Produce      json
// @Param        catalog   path  string true  "目录类型"
// @Param        threshold query int    false "阈值"
// @Success      200 {object} response.Response{data=[]appcatalog.ItemResponse}
// @Failure      400 {object} response.Response "阈值非法"
// @Router       /api/v1/catalogs/{catalog}/items/low-stock [get]
func (h *InventoryHandler) LowStock(c *gin.Context) {
	items, err := h.lowStock.Execute(c.Request.Context(), appcatalog.LowStockRequest{
		ScopeRequest: scopeOf(c),
		Threshold:    c.Query("threshold"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "查询成功", items, len(items))
}

// History 库存流水
// @Summary      库存流水
// @Description  最新的在前
// @Tags         库存
// @Produce      json
// @Param        catalog path  string true  "目录类型"
// @Param        id      path  string true  "商品ID"
// @Param        page    query int    false "页码"
// @Param        limit   query int    false "每页条数"
// @Success      200 {object} response.Response{data=appcatalog.StockHistoryResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/catalogs/{catalog}/items/{id}/inventory-logs [get]
func (h *InventoryHandler) History(c *gin.Context) {
	result, err := h.stockHistory.Execute(c.Request.Context(), appcatalog.StockHistoryRequest{
		ScopeRequest: scopeOf(c),
		ID:           c.Param("id"),
		Page:         c.Query("page"),
		Limit:        c.Query("limit"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "查询成功", result, len(result.Items))
}
