package catalog

import (
	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// CatalogResponse 目录类型说明
type CatalogResponse struct {
	Name         string              `json:"name"`
	Title        string              `json:"title"`
	Scoped       bool                `json:"scoped"`
	CodeLabel    string              `json:"codeLabel"`
	CodeRequired bool                `json:"codeRequired"`
	Fields       map[string]string   `json:"fields"`
	Enums        map[string][]string `json:"enums,omitempty"`
	Attributes   []string            `json:"attributes"`
	SortFields   []string            `json:"sortFields"`
}

// ListCatalogsUseCase 列出已启用的目录类型
type ListCatalogsUseCase struct {
	registry *catalog.Registry
}

// NewListCatalogsUseCase 创建目录列表用例
func NewListCatalogsUseCase(registry *catalog.Registry) *ListCatalogsUseCase {
	return &ListCatalogsUseCase{registry: registry}
}

// Execute 按注册顺序返回
func (uc *ListCatalogsUseCase) Execute() []CatalogResponse {
	sortFields := make([]string, 0, len(catalog.SortFields()))
	for _, f := range catalog.SortFields() {
		sortFields = append(sortFields, string(f))
	}

	schemas := uc.registry.Schemas()
	out := make([]CatalogResponse, len(schemas))
	for i, s := range schemas {
		rules := map[string]catalog.FieldRule{
			"creatorName":    s.CreatorName,
			"classification": s.Classification,
			"subject":        s.Subject,
			"format":         s.Format,
			"condition":      s.Condition,
			"language":       s.Language,
		}

		fields := make(map[string]string, len(rules))
		enums := make(map[string][]string)
		for name, rule := range rules {
			if rule.Label == "" {
				continue
			}
			fields[name] = rule.Label
			if len(rule.Enum) > 0 {
				enums[name] = rule.Enum
			}
		}

		out[i] = CatalogResponse{
			Name:         s.Name,
			Title:        s.Title,
			Scoped:       s.Scoped,
			CodeLabel:    s.Code.Label,
			CodeRequired: s.Code.Required,
			Fields:       fields,
			Enums:        enums,
			Attributes:   s.AttributeKeys(),
			SortFields:   sortFields,
		}
	}
	return out
}
