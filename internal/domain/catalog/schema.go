package catalog

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"
)

// 内置目录类型
const (
	CatalogBook         = "book"
	CatalogAcademicBook = "academic-book"
	CatalogStationery   = "stationery"
)

var (
	AcademicLevels = []string{"PRIMARY", "SECONDARY", "HIGHER_SECONDARY", "UNDERGRADUATE", "POSTGRADUATE", "PROFESSIONAL"}
	BookFormats    = []string{"HARDCOVER", "PAPERBACK", "EBOOK", "AUDIOBOOK"}
	BookConditions = []string{"NEW", "LIKE_NEW", "GOOD", "ACCEPTABLE"}

	isbnPattern = regexp.MustCompile(`^(?:\d{10}|\d{13})$`)
	skuPattern  = regexp.MustCompile(`^[A-Z0-9-]{3,32}$`)
)

// FieldRule 通用列的约束
type FieldRule struct {
	Label    string // 该目录下字段的业务含义,如"学段"
	Required bool
	Enum     []string // 非空时值必须在其中(大小写不敏感,存储为大写)
	Default  string
	MaxLen   int
}

// CodeRule 商品编码约束
type CodeRule struct {
	Label    string // ISBN / SKU
	Pattern  *regexp.Regexp
	Required bool
}

// AttrKind 扩展属性类型
type AttrKind string

const (
	AttrString AttrKind = "string"
	AttrInt    AttrKind = "int"
	AttrBool   AttrKind = "bool"
)

// AttributeRule 扩展属性约束
type AttributeRule struct {
	Kind     AttrKind
	Required bool
	MaxLen   int // string
	Min, Max int // int,Max为0表示不限
}

// Schema 目录类型定义
// 图书、教材、文具之间的差异全部体现在Schema中,领域逻辑只有一份
type Schema struct {
	Name   string
	Title  string
	Scoped bool // 是否多店铺

	Code CodeRule

	RequireAuthor          bool
	RequirePublisher       bool
	RequireCategory        bool
	RequirePublicationYear bool

	CreatorName    FieldRule
	Classification FieldRule
	Subject        FieldRule
	Format         FieldRule
	Condition      FieldRule
	Language       FieldRule

	Attributes map[string]AttributeRule
}

// AttributeKeys 扩展属性名(有序)
func (s *Schema) AttributeKeys() []string {
	keys := make([]string, 0, len(s.Attributes))
	for k := range s.Attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Apply 填充默认值并校验商品
// 通用规则与目录特有规则的错误一起返回
func (s *Schema) Apply(it *Item, now time.Time) error {
	v := NewValidator()

	it.Title = strings.TrimSpace(it.Title)
	it.UniqueCode = strings.TrimSpace(it.UniqueCode)
	if it.Status == "" {
		it.Status = StatusActive
	}

	validateItem(it, v, now)

	switch {
	case it.UniqueCode == "":
		v.Check(!s.Code.Required, "uniqueCode", s.Code.Label+"不能为空")
	case s.Code.Pattern != nil:
		v.Check(s.Code.Pattern.MatchString(it.UniqueCode), "uniqueCode", s.Code.Label+"格式不正确")
	}

	v.Check(!s.RequireAuthor || it.AuthorID != nil, "authorId", "作者不能为空")
	v.Check(!s.RequirePublisher || it.PublisherID != nil, "publisherId", "出版社不能为空")
	v.Check(!s.RequireCategory || it.CategoryID != nil, "categoryId", "分类不能为空")
	v.Check(!s.RequirePublicationYear || it.PublicationYear != nil, "publicationYear", "出版年份不能为空")

	it.CreatorName = s.CreatorName.apply(it.CreatorName, "creatorName", v)
	it.Classification = s.Classification.apply(it.Classification, "classification", v)
	it.Subject = s.Subject.apply(it.Subject, "subject", v)
	it.Format = s.Format.apply(it.Format, "format", v)
	it.Condition = s.Condition.apply(it.Condition, "condition", v)
	it.Language = s.Language.apply(it.Language, "language", v)

	it.Attributes = s.applyAttributes(it.Attributes, v)

	return v.Err()
}

func (r FieldRule) apply(value, key string, v *Validator) string {
	value = strings.TrimSpace(value)
	if value == "" {
		value = r.Default
	}
	if value == "" {
		v.Check(!r.Required, key, r.labelOr(key)+"不能为空")
		return value
	}

	if len(r.Enum) > 0 {
		value = strings.ToUpper(value)
		v.Check(In(value, r.Enum...), key, fmt.Sprintf("%s必须是%s之一", r.labelOr(key), strings.Join(r.Enum, "、")))
	}

	maxLen := r.MaxLen
	if maxLen == 0 {
		maxLen = 100
	}
	v.Check(len([]rune(value)) <= maxLen, key, fmt.Sprintf("%s不能超过%d个字符", r.labelOr(key), maxLen))
	return value
}

func (r FieldRule) labelOr(key string) string {
	if r.Label != "" {
		return r.Label
	}
	return key
}

// applyAttributes 校验扩展属性,整数统一规整为int
func (s *Schema) applyAttributes(attrs map[string]any, v *Validator) map[string]any {
	out := make(map[string]any, len(attrs))

	for key, raw := range attrs {
		rule, ok := s.Attributes[key]
		if !ok {
			v.AddError("attributes."+key, "不支持的属性")
			continue
		}
		if raw == nil {
			continue
		}

		switch rule.Kind {
		case AttrString:
			str, ok := raw.(string)
			if !ok {
				v.AddError("attributes."+key, "必须是字符串")
				continue
			}
			if rule.MaxLen > 0 && len([]rune(str)) > rule.MaxLen {
				v.AddError("attributes."+key, fmt.Sprintf("不能超过%d个字符", rule.MaxLen))
				continue
			}
			out[key] = str

		case AttrInt:
			n, ok := toInt(raw)
			if !ok {
				v.AddError("attributes."+key, "必须是整数")
				continue
			}
			if n < rule.Min || (rule.Max > 0 && n > rule.Max) {
				v.AddError("attributes."+key, "超出取值范围")
				continue
			}
			out[key] = n

		case AttrBool:
			b, ok := raw.(bool)
			if !ok {
				v.AddError("attributes."+key, "必须是布尔值")
				continue
			}
			out[key] = b
		}
	}

	for key, rule := range s.Attributes {
		if _, ok := out[key]; rule.Required && !ok {
			v.AddError("attributes."+key, "不能为空")
		}
	}

	if len(out) == 0 {
		return nil
	}
	return out
}

// toInt JSON解码后数字是float64,这里只接受整数值
func toInt(raw any) (int, bool) {
	switch n := raw.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.Abs(n) > math.MaxInt32 {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

// =========================================
// 目录注册表
// =========================================

// Registry 目录类型注册表
type Registry struct {
	schemas map[string]*Schema
	order   []string
}

// NewRegistry 创建注册表
func NewRegistry(schemas ...*Schema) *Registry {
	r := &Registry{schemas: make(map[string]*Schema, len(schemas))}
	for _, s := range schemas {
		if _, exists := r.schemas[s.Name]; !exists {
			r.order = append(r.order, s.Name)
		}
		r.schemas[s.Name] = s
	}
	return r
}

// Lookup 查找目录类型
func (r *Registry) Lookup(name string) (*Schema, error) {
	if s, ok := r.schemas[name]; ok {
		return s, nil
	}
	return nil, ErrCatalogNotFound
}

// Schemas 按注册顺序返回全部目录类型
func (r *Registry) Schemas() []*Schema {
	out := make([]*Schema, 0, len(r.order))
	for _, name := range r.order {
		out = append(out, r.schemas[name])
	}
	return out
}

// Only 按给定顺序保留部分目录类型(用于配置catalog.enabled)
func (r *Registry) Only(names ...string) (*Registry, error) {
	schemas := make([]*Schema, 0, len(names))
	for _, name := range names {
		s, err := r.Lookup(name)
		if err != nil {
			return nil, ErrCatalogNotFound.WithDetails(map[string]string{"catalog": name})
		}
		schemas = append(schemas, s)
	}
	return NewRegistry(schemas...), nil
}

// DefaultRegistry 内置的三种目录
func DefaultRegistry() *Registry {
	return NewRegistry(BookSchema(), AcademicBookSchema(), StationerySchema())
}

// BookSchema 普通图书(单店铺)
func BookSchema() *Schema {
	return &Schema{
		Name:        CatalogBook,
		Title:       "图书",
		Code:        CodeRule{Label: "ISBN", Pattern: isbnPattern},
		CreatorName: FieldRule{Label: "作者", Required: true},
		Subject:     FieldRule{Label: "分类"},
		Format:      FieldRule{Label: "装帧", Enum: BookFormats},
		Condition:   FieldRule{Label: "品相", Enum: BookConditions, Default: "NEW"},
		Language:    FieldRule{Label: "语言", Default: "English", MaxLen: 50},
		Attributes: map[string]AttributeRule{
			"edition":       {Kind: AttrString, MaxLen: 50},
			"pages":         {Kind: AttrInt, Min: 1},
			"publisherName": {Kind: AttrString, MaxLen: 100},
		},
	}
}

// AcademicBookSchema 教材(多店铺,关联作者/出版社/分类)
func AcademicBookSchema() *Schema {
	return &Schema{
		Name:                   CatalogAcademicBook,
		Title:                  "教材",
		Scoped:                 true,
		Code:                   CodeRule{Label: "ISBN", Pattern: isbnPattern, Required: true},
		RequireAuthor:          true,
		RequirePublisher:       true,
		RequireCategory:        true,
		RequirePublicationYear: true,
		CreatorName:            FieldRule{Label: "作者"},
		Classification:         FieldRule{Label: "学段", Required: true, Enum: AcademicLevels},
		Subject:                FieldRule{Label: "学科", Required: true},
		Format:                 FieldRule{Label: "装帧", Required: true, Enum: BookFormats},
		Condition:              FieldRule{Label: "品相", Enum: BookConditions, Default: "NEW"},
		Language:               FieldRule{Label: "语言", Default: "English", MaxLen: 50},
		Attributes: map[string]AttributeRule{
			"edition": {Kind: AttrString, MaxLen: 50},
			"pages":   {Kind: AttrInt, Min: 1},
			"volume":  {Kind: AttrInt, Min: 1},
		},
	}
}

// StationerySchema 文具(单店铺,SKU编码)
func StationerySchema() *Schema {
	return &Schema{
		Name:           CatalogStationery,
		Title:          "文具",
		Code:           CodeRule{Label: "SKU", Pattern: skuPattern},
		CreatorName:    FieldRule{Label: "品牌"},
		Classification: FieldRule{Label: "品类", Required: true},
		Subject:        FieldRule{Label: "子品类"},
		Attributes: map[string]AttributeRule{
			"color":      {Kind: AttrString, MaxLen: 30},
			"material":   {Kind: AttrString, MaxLen: 50},
			"dimensions": {Kind: AttrString, MaxLen: 50},
			"packSize":   {Kind: AttrInt, Min: 1},
		},
	}
}
