package handler

import (
	"github.com/gin-gonic/gin"

	appref "github.com/xiebiao/catalogstore/internal/application/reference"
	"github.com/xiebiao/catalogstore/pkg/response"
)

// ReferenceHandler 作者/出版社/分类
type ReferenceHandler struct {
	list   *appref.ListReferencesUseCase
	create *appref.CreateReferenceUseCase
}

// NewReferenceHandler 创建处理器
func NewReferenceHandler(list *appref.ListReferencesUseCase, create *appref.CreateReferenceUseCase) *ReferenceHandler {
	return &ReferenceHandler{list: list, create: create}
}

// CreateReferenceRequest 新建关联实体
type CreateReferenceRequest struct {
	Name string `json:"name" binding:"required,max=255" example:"Higher Education Press"`
}

// List 按类型列出
// @Summary      关联实体列表
// @Tags         关联实体
// @Produce      json
// @Param        kind path string true "类型" Enums(author, publisher, category)
// @Success      200 {object} response.Response{data=[]appref.ReferenceResponse}
// @Failure      400 {object} response.Response "类型非法"
// @Router       /api/v1/references/{kind} [get]
func (h *ReferenceHandler) List(c *gin.Context) {
	refs, err := h.list.Execute(c.Request.Context(), c.Param("kind"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.List(c, "查询成功", refs, len(refs))
}

// Create 新建
// @Summary      新建关联实体
// @Tags         关联实体
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        kind    path string                 true "类型" Enums(author, publisher, category)
// @Param        request body CreateReferenceRequest true "名称"
// @Success      201 {object} response.Response{data=appref.ReferenceResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "名称已存在"
// @Router       /api/v1/references/{kind} [post]
func (h *ReferenceHandler) Create(c *gin.Context) {
	var req CreateReferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindError(c, err)
		return
	}

	ref, err := h.create.Execute(c.Request.Context(), c.Param("kind"), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "创建成功", ref)
}
