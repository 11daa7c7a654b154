package catalog

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const (
	fallbackSlug    = "item"
	maxSlugAttempts = 1000
)

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugSeparate = regexp.MustCompile(`[\s_-]+`)
)

// Slugify 标题 → 基础slug
// 步骤: 转小写 → 去掉非[字母数字_空白-]字符 → 空白/下划线/连字符合并为单个"-" → 去掉首尾"-"
// 结果为空时(标题全是符号或非ASCII字符)使用"item"
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = slugStrip.ReplaceAllString(s, "")
	s = slugSeparate.ReplaceAllString(s, "-")
	s = strings.Trim(s, "-")
	if s == "" {
		return fallbackSlug
	}
	return s
}

// SlugProber 探测slug是否已被占用
type SlugProber interface {
	// SlugExists 范围内是否已有该slug(包含已软删除的记录),excludeID为商品自身ID
	SlugExists(ctx context.Context, scope Scope, slug string, excludeID uuid.UUID) (bool, error)
}

// SlugGenerator 生成范围内唯一的slug
type SlugGenerator struct {
	prober SlugProber
}

// NewSlugGenerator 创建slug生成器
func NewSlugGenerator(prober SlugProber) *SlugGenerator {
	return &SlugGenerator{prober: prober}
}

// Generate 依次尝试 base, base-1, base-2 ... 直到未被占用
// 更新标题时传入商品自身ID,避免与自己冲突
func (g *SlugGenerator) Generate(ctx context.Context, scope Scope, title string, excludeID uuid.UUID) (string, error) {
	base := Slugify(title)
	candidate := base

	for counter := 1; counter <= maxSlugAttempts; counter++ {
		exists, err := g.prober.SlugExists(ctx, scope, candidate, excludeID)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}

	return "", ErrSlugConflict
}
