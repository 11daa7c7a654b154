package reference

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Kind 关联实体类型
type Kind string

const (
	KindAuthor    Kind = "author"
	KindPublisher Kind = "publisher"
	KindCategory  Kind = "category"
)

// Kinds 全部关联类型
func Kinds() []Kind {
	return []Kind{KindAuthor, KindPublisher, KindCategory}
}

// ParseKind 解析关联类型
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindAuthor, KindPublisher, KindCategory:
		return k, nil
	}
	return "", ErrInvalidKind
}

// Reference 商品可关联的作者/出版社/分类
// 三者结构相同,按Kind区分
type Reference struct {
	ID        uuid.UUID
	Kind      Kind
	Name      string
	CreatedAt time.Time
}

// NewReference 创建关联实体
func NewReference(kind Kind, name string, now time.Time) *Reference {
	return &Reference{
		ID:        uuid.New(),
		Kind:      kind,
		Name:      strings.TrimSpace(name),
		CreatedAt: now,
	}
}
