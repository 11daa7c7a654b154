package rdb

import (
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
)

// sortColumns 排序字段 → 列名(白名单,列名不会来自用户输入)
var sortColumns = map[catalog.SortField]string{
	catalog.SortByTitle:           "title",
	catalog.SortByPrice:           "price",
	catalog.SortByCreatedAt:       "created_at",
	catalog.SortByPublicationYear: "publication_year",
	catalog.SortByStockQuantity:   "stock_quantity",
}

// searchColumns 关键字搜索覆盖的列
var searchColumns = []string{"title", "unique_code", "subject", "classification", "description", "creator_name"}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern 转义LIKE通配符,用户输入的%和_按字面匹配
// MySQL和PostgreSQL的LIKE默认都以反斜杠作为转义符
func likePattern(s string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(s)) + "%"
}

// scopeOf 范围条件
func scopeOf(scope catalog.Scope) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where("catalog = ? AND store_id = ?", scope.Catalog, scope.StoreID)
	}
}

// withCriteria 过滤条件 → WHERE子句
// 软删除过滤由gorm.DeletedAt自动追加
func withCriteria(c *catalog.Criteria) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		// 1. 范围
		if !c.AllCatalogs || c.Scope.Catalog != "" {
			db = db.Where("catalog = ?", c.Scope.Catalog)
		}
		if !c.AllCatalogs {
			db = db.Where("store_id = ?", c.Scope.StoreID)
		}

		// 2. 关键字(任一列包含即可)
		if c.Search != "" {
			pattern := likePattern(c.Search)
			conds := make([]string, len(searchColumns))
			args := make([]any, len(searchColumns))
			for i, col := range searchColumns {
				conds[i] = "LOWER(" + col + ") LIKE ?"
				args[i] = pattern
			}
			db = db.Where("("+strings.Join(conds, " OR ")+")", args...)
		}

		// 3. 关联实体
		if c.CategoryID != nil {
			db = db.Where("category_id = ?", *c.CategoryID)
		}
		if c.AuthorID != nil {
			db = db.Where("author_id = ?", *c.AuthorID)
		}
		if c.PublisherID != nil {
			db = db.Where("publisher_id = ?", *c.PublisherID)
		}

		// 4. 文本字段(大小写不敏感)
		if c.Classification != "" {
			db = db.Where("LOWER(classification) = ?", strings.ToLower(c.Classification))
		}
		if c.Subject != "" {
			db = db.Where("LOWER(subject) = ?", strings.ToLower(c.Subject))
		}
		if c.Language != "" {
			db = db.Where("LOWER(language) = ?", strings.ToLower(c.Language))
		}
		if c.Format != "" {
			db = db.Where("format = ?", c.Format)
		}
		if c.Condition != "" {
			db = db.Where("item_condition = ?", c.Condition)
		}

		// 5. 价格区间
		if c.MinPrice != nil {
			db = db.Where("price >= ?", *c.MinPrice)
		}
		if c.MaxPrice != nil {
			db = db.Where("price <= ?", *c.MaxPrice)
		}

		// 6. 标志位
		if c.IsFeatured != nil {
			db = db.Where("is_featured = ?", *c.IsFeatured)
		}
		if c.IsActive != nil {
			db = db.Where("is_active = ?", *c.IsActive)
		}
		if c.IsRecommended != nil {
			db = db.Where("is_recommended = ?", *c.IsRecommended)
		}
		if c.IsLatestEdition != nil {
			db = db.Where("is_latest_edition = ?", *c.IsLatestEdition)
		}
		if c.InStock != nil {
			if *c.InStock {
				db = db.Where("stock_quantity > 0")
			} else {
				db = db.Where("stock_quantity <= 0")
			}
		}
		if c.Status != "" {
			db = db.Where("status = ?", string(c.Status))
		}
		return db
	}
}

// withSort 排序,相同值按id排序保证分页稳定
func withSort(s catalog.Sort) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		col, ok := sortColumns[s.Field]
		if !ok {
			col = "created_at"
		}
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Name: col}, Desc: s.Desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Name: "id"}})
	}
}

// paginate 分页
func paginate(q *catalog.Query) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Offset(q.Offset()).Limit(q.Limit)
	}
}
