package handler

import (
	"github.com/gin-gonic/gin"

	appcatalog "github.com/xiebiao/catalogstore/internal/application/catalog"
	appproduct "github.com/xiebiao/catalogstore/internal/application/product"
	"github.com/xiebiao/catalogstore/internal/interface/http/dto"
	"github.com/xiebiao/catalogstore/pkg/response"
)

// ProductHandler 跨目录聚合查询与目录说明
type ProductHandler struct {
	listProducts *appproduct.ListProductsUseCase
	listCatalogs *appcatalog.ListCatalogsUseCase
}

// NewProductHandler 创建聚合查询处理器
func NewProductHandler(listProducts *appproduct.ListProductsUseCase, listCatalogs *appcatalog.ListCatalogsUseCase) *ProductHandler {
	return &ProductHandler{listProducts: listProducts, listCatalogs: listCatalogs}
}

// List 商品聚合列表
// @Summary      商品聚合列表
// @Description  跨目录、跨店铺搜索,默认只返回isActive=true的商品
// @Tags         聚合
// @Produce      json
// @Param        search  query string false "关键字"
// @Param        catalog query string false "目录类型"
// @Param        page    query int    false "页码"
// @Param        limit   query int    false "每页条数"
// @Success      200 {object} response.Response{data=appproduct.ListProductsResponse}
// @Failure      404 {object} response.Response "目录类型不存在"
// @Router       /api/v1/products [get]
func (h *ProductHandler) List(c *gin.Context) {
	var query dto.ListItemsQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BindError(c, err)
		return
	}

	result, err := h.listProducts.Execute(c.Request.Context(), appproduct.ListProductsRequest{
		Catalog: c.Query("catalog"),
		Filter:  query.ToFilter(),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.List(c, "查询成功", result, len(result.Items))
}

// Catalogs 已启用的目录类型及其字段规则
// @Summary      目录类型
// @Tags         聚合
// @Produce      json
// @Success      200 {object} response.Response{data=[]appcatalog.CatalogResponse}
// @Router       /api/v1/catalogs [get]
func (h *ProductHandler) Catalogs(c *gin.Context) {
	catalogs := h.listCatalogs.Execute()
	response.List(c, "查询成功", catalogs, len(catalogs))
}
