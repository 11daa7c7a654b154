package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/catalogstore/internal/application/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/interface/http/dto"
	"github.com/xiebiao/catalogstore/pkg/response"
)

// ItemHandler 目录商品HTTP处理器
// 同一套处理器同时挂在单店铺和多店铺路由下,范围由:catalog和:storeId决定
type ItemHandler struct {
	listItems    *appcatalog.ListItemsUseCase
	getItem      *appcatalog.GetItemUseCase
	createItem   *appcatalog.CreateItemUseCase
	updateItem   *appcatalog.UpdateItemUseCase
	updateStatus *appcatalog.UpdateStatusUseCase
	deleteItem   *appcatalog.DeleteItemUseCase
	bulkUpdate   *appcatalog.BulkUpdateUseCase
	bulkDelete   *appcatalog.BulkDeleteUseCase
	highlights   *appcatalog.HighlightsUseCase
}

// NewItemHandler 创建商品处理器
func NewItemHandler(
	listItems *appcatalog.ListItemsUseCase,
	getItem *appcatalog.GetItemUseCase,
	createItem *appcatalog.CreateItemUseCase,
	updateItem *appcatalog.UpdateItemUseCase,
	updateStatus *appcatalog.UpdateStatusUseCase,
	deleteItem *appcatalog.DeleteItemUseCase,
	bulkUpdate *appcatalog.BulkUpdateUseCase,
	bulkDelete *appcatalog.BulkDeleteUseCase,
	highlights *appcatalog.HighlightsUseCase,
) *ItemHandler {
	return &ItemHandler{
		listItems:    listItems,
		getItem:      getItem,
		createItem:   createItem,
		updateItem:   updateItem,
		updateStatus: updateStatus,
		deleteItem:   deleteItem,
		bulkUpdate:   bulkUpdate,
		bulkDelete:   bulkDelete,
		highlights:   highlights,
	}
}

// scopeOf 从路由参数取目录与店铺
func scopeOf(c *gin.Context) appcatalog.ScopeRequest {
	return appcatalog.ScopeRequest{
		Catalog: c.Param("catalog"),
		StoreID: c.Param("storeId"),
	}
}

// List 商品列表
// @Summary      商品列表
// @Description  搜索、过滤、排序、分页;count为本页条数,总数见pagination.totalItems
// @Tags         商品
// @Produce      json
// @Param        catalog    path   string true  "目录类型" Enums(book, academic-book, stationery)
// @Param        search     query  string false "标题/描述/作者模糊搜索"
// @Param        categoryId query  string false "分类ID"
// @Param        minPrice   query  string false "最低价格"
// @Param        maxPrice   query  string false "最高价格"
// @Param        sortBy     query  string false "排序字段" Enums(title, price, createdAt, publicationYear, stockQuantity)
// @Param        sortOrder  query  string false "排序方向" Enums(asc, desc)
// @Param        page       query  int    false "页码"
// @Param        limit      query  int    false "每页条数(最大100)"
// @Success      200 {object} response.Response{data=appcatalog.ListItemsResponse}
// @Failure      400 {object} response.Response "排序字段非法"
// @Failure      404 {object} response.Response "目录类型不存在"
// @Router       /api/v1/catalogs/{catalog}/items [get]
func (h *ItemHandler) List(c *gin.Context) {
	var query dto.ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.listItems.Execute(c.Request.Context(), appcatalog.ListItemsRequest{
		ScopeRequest: scopeOf(c),
		Filter:       query.ToFilter(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "查询成功", result, len(result.Items))
}

// Get 商品详情
// @Summary      商品详情
// @Tags         商品
// @Produce      json
// @Param        catalog path string true "目录类型"
// @Param        id      path string true "商品ID"
// @Success      200 {object} response.Response{data=appcatalog.ItemResponse}
// @Failure      400 {object} response.Response "ID格式错误"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/catalogs/{catalog}/items/{id} [get]
func (h *ItemHandler) Get(c *gin.Context) {
	h.get(c, appcatalog.GetItemRequest{ScopeRequest: scopeOf(c), ID: c.Param("id")})
}

// GetBySlug 按slug查询
// @Summary      按slug查询商品
// @Tags         商品
// @Produce      json
// @Param        catalog path string true "目录类型"
// @Param        slug    path string true "slug"
// @Success      200 {object} response.Response{data=appcatalog.ItemResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/catalogs/{catalog}/items/slug/{slug} [get]
func (h *ItemHandler) GetBySlug(c *gin.Context) {
	h.get(c, appcatalog.GetItemRequest{ScopeRequest: scopeOf(c), Slug: c.Param("slug")})
}

// GetByCode 按ISBN/SKU查询
// @Summary      按ISBN/SKU查询商品
// @Tags         商品
// @Produce      json
// @Param        catalog path string true "目录类型"
// @Param        code    path string true "ISBN或SKU"
// @Success      200 {object} response.Response{data=appcatalog.ItemResponse}
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/catalogs/{catalog}/items/code/{code} [get]
func (h *ItemHandler) GetByCode(c *gin.Context) {
	h.get(c, appcatalog.GetItemRequest{ScopeRequest: scopeOf(c), Code: c.Param("code")})
}

func (h *ItemHandler) get(c *gin.Context, req appcatalog.GetItemRequest) {
	item, err := h.getItem.Execute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "查询成功", item)
}

// Create 上架商品
// @Summary      上架商品
// @Description  slug由标题生成,重复时追加数字后缀
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string                true "目录类型"
// @Param        request body dto.CreateItemRequest true "商品信息"
// @Success      201 {object} response.Response{data=appcatalog.ItemResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "未登录"
// @Failure      409 {object} response.Response "ISBN/SKU已存在"
// @Router       /api/v1/catalogs/{catalog}/items [post]
func (h *ItemHandler) Create(c *gin.Context) {
	// 1. 参数绑定与通用校验
	var req dto.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	// 2. 目录相关的校验在领域层完成
	item, err := h.createItem.Execute(c.Request.Context(), appcatalog.CreateItemRequest{
		ScopeRequest: scopeOf(c),
		Draft:        req.ToDraft(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "商品创建成功", item)
}

// Update 部分更新
// @Summary      更新商品
// @Description  只修改请求中出现的字段;标题变化时重新生成slug;库存请使用库存接口
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string                true "目录类型"
// @Param        id      path string                true "商品ID"
// @Param        request body dto.UpdateItemRequest true "更新字段"
// @Success      200 {object} response.Response{data=appcatalog.ItemResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "商品不存在"
// @Failure      409 {object} response.Response "ISBN/SKU已存在"
// @Router       /api/v1/catalogs/{catalog}/items/{id} [put]
func (h *ItemHandler) Update(c *gin.Context) {
	var req dto.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.updateItem.Execute(c.Request.Context(), appcatalog.UpdateItemRequest{
		ScopeRequest: scopeOf(c),
		ID:           c.Param("id"),
		Patch:        req.ToPatch(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "商品更新成功", item)
}

// UpdateStatus 修改销售状态
// @Summary      修改销售状态
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string                  true "目录类型"
// @Param        id      path string                  true "商品ID"
// @Param        request body dto.UpdateStatusRequest true "状态"
// @Success      200 {object} response.Response{data=appcatalog.ItemResponse}
// @Failure      400 {object} response.Response "状态非法"
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/catalogs/{catalog}/items/{id}/status [patch]
func (h *ItemHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	item, err := h.updateStatus.Execute(c.Request.Context(), appcatalog.UpdateStatusRequest{
		ScopeRequest: scopeOf(c),
		ID:           c.Param("id"),
		Status:       req.Status,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "状态更新成功", item)
}

// Delete 软删除
// @Summary      删除商品
// @Description  软删除,商品从所有查询中消失,流水保留
// @Tags         商品
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string true "目录类型"
// @Param        id      path string true "商品ID"
// @Success      200 {object} response.Response
// @Failure      404 {object} response.Response "商品不存在"
// @Router       /api/v1/catalogs/{catalog}/items/{id} [delete]
func (h *ItemHandler) Delete(c *gin.Context) {
	err := h.deleteItem.Execute(c.Request.Context(), appcatalog.DeleteItemRequest{
		ScopeRequest: scopeOf(c),
		ID:           c.Param("id"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, "商品删除成功", nil)
}

// BulkUpdate 批量更新
// @Summary      批量更新
// @Description  所有ID必须属于当前范围且未删除,否则整批失败且不做任何修改
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string                true "目录类型"
// @Param        request body dto.BulkUpdateRequest true "ID列表与更新字段"
// @Success      200 {object} response.Response{data=appcatalog.BulkUpdateResponse}
// @Failure      400 {object} response.Response "存在无效ID"
// @Router       /api/v1/catalogs/{catalog}/items/bulk/update [put]
func (h *ItemHandler) BulkUpdate(c *gin.Context) {
	var req dto.BulkUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bulkUpdate.Execute(c.Request.Context(), appcatalog.BulkUpdateRequest{
		ScopeRequest: scopeOf(c),
		IDs:          req.IDs,
		Patch:        req.Data.ToBulkPatch(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "批量更新成功", result, result.Updated)
}

// BulkDelete 批量软删除
// @Summary      批量删除
// @Description  规则同批量更新
// @Tags         商品
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        catalog path string                true "目录类型"
// @Param        request body dto.BulkDeleteRequest true "ID列表"
// @Success      200 {object} response.Response{data=appcatalog.BulkDeleteResponse}
// @Failure      400 {object} response.Response "存在无效ID"
// @Router       /api/v1/catalogs/{catalog}/items/bulk/delete [delete]
func (h *ItemHandler) BulkDelete(c *gin.Context) {
	var req dto.BulkDeleteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.bulkDelete.Execute(c.Request.Context(), appcatalog.BulkDeleteRequest{
		ScopeRequest: scopeOf(c),
		IDs:          req.IDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "批量删除成功", result, int(result.Deleted))
}

// Featured 精选商品
// @Summary      精选商品
// @Tags         商品
// @Produce      json
// @Param        catalog path  string true  "目录类型"
// @Param        limit   query int    false "条数(默认10,最大50)"
// @Success      200 {object} response.Response{data=[]appcatalog.ItemResponse}
// @Router       /api/v1/catalogs/{catalog}/items/featured [get]
func (h *ItemHandler) Featured(c *gin.Context) {
	h.highlight(c, catalog.HighlightFeatured)
}

// Recommendations 推荐商品
// @Summary      推荐商品
// @Tags         商品
// @Produce      json
// @Param        catalog path  string true  "目录类型"
// @Param        limit   query int    false "条数(默认10,最大50)"
// @Success      200 {object} response.Response{data=[]appcatalog.ItemResponse}
// @Router       /api/v1/catalogs/{catalog}/items/recommendations [get]
func (h *ItemHandler) Recommendations(c *gin.Context) {
	h.highlight(c, catalog.HighlightRecommended)
}

// LatestEditions 最新版本
// @Summary      最新版本
// @Tags         商品
// @Produce      json
// @Param        catalog path  string true  "目录类型"
// @Param        limit   query int    false "条数(默认10,最大50)"
// @Success      200 {object} response.Response{data=[]appcatalog.ItemResponse}
// @Router       /api/v1/catalogs/{catalog}/items/latest-editions [get]
func (h *ItemHandler) LatestEditions(c *gin.Context) {
	h.highlight(c, catalog.HighlightLatestEditions)
}

func (h *ItemHandler) highlight(c *gin.Context, kind catalog.Highlight) {
	items, err := h.highlights.Execute(c.Request.Context(), appcatalog.HighlightsRequest{
		ScopeRequest: scopeOf(c),
		Kind:         kind,
		Limit:        c.Query("limit"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "查询成功", items, len(items))
}
