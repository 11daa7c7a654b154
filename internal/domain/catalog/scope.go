package catalog

import (
	"github.com/google/uuid"
)

// Scope 唯一性与可见性范围
// slug、ISBN/SKU的唯一性以及查询结果都限定在(Catalog, StoreID)内
type Scope struct {
	Catalog string
	StoreID uuid.UUID
}

// Scoped 是否为多店铺范围
func (s Scope) Scoped() bool {
	return s.StoreID != uuid.Nil
}

func (s Scope) String() string {
	if !s.Scoped() {
		return s.Catalog
	}
	return s.Catalog + "/" + s.StoreID.String()
}

// Check 范围是否符合目录类型:多店铺目录必须带店铺ID,单店铺目录不能带
func (s *Schema) Check(scope Scope) error {
	switch {
	case s.Scoped && !scope.Scoped():
		return ErrScopeRequired
	case !s.Scoped && scope.Scoped():
		return ErrScopeNotSupported
	}
	return nil
}

// Resolve 根据目录名和店铺ID解析范围
// 规则:
// - 目录不存在 → NotFound
// - 多店铺目录缺少店铺ID → ErrScopeRequired
// - 单店铺目录传入店铺ID → ErrScopeNotSupported
func (r *Registry) Resolve(catalog, storeID string) (Scope, *Schema, error) {
	schema, err := r.Lookup(catalog)
	if err != nil {
		return Scope{}, nil, err
	}

	scope := Scope{Catalog: schema.Name}
	switch {
	case schema.Scoped && storeID == "":
		return Scope{}, nil, ErrScopeRequired
	case !schema.Scoped && storeID != "":
		return Scope{}, nil, ErrScopeNotSupported
	case schema.Scoped:
		id, err := uuid.Parse(storeID)
		if err != nil || id == uuid.Nil {
			return Scope{}, nil, ErrInvalidStoreID
		}
		scope.StoreID = id
	}

	return scope, schema, nil
}
