package catalog

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// fakeProber 内存中的slug占用表
type fakeProber struct {
	taken map[string]uuid.UUID
	err   error
	calls int
}

func (p *fakeProber) SlugExists(_ context.Context, _ Scope, slug string, excludeID uuid.UUID) (bool, error) {
	p.calls++
	if p.err != nil {
		return false, p.err
	}
	owner, ok := p.taken[slug]
	return ok && owner != excludeID, nil
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		title string
		want  string
	}{
		{"Intro to Physics", "intro-to-physics"},
		{"  Hello,   World!  ", "hello-world"},
		{"C++ Primer (5th Edition)", "c-primer-5th-edition"},
		{"snake_case__title", "snake-case-title"},
		{"--Already-Hyphenated--", "already-hyphenated"},
		{"数学 Algebra", "algebra"},
		{"!!!", "item"},
		{"", "item"},
	}

	for _, tc := range cases {
		t.Run(tc.title, func(t *testing.T) {
			assert.Equal(t, tc.want, Slugify(tc.title))
		})
	}
}

func TestSlugGenerator(t *testing.T) {
	scope := Scope{Catalog: CatalogBook}
	ctx := context.Background()

	t.Run("同名商品追加序号", func(t *testing.T) {
		prober := &fakeProber{taken: map[string]uuid.UUID{"algebra": uuid.New()}}
		slug, err := NewSlugGenerator(prober).Generate(ctx, scope, "Algebra", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "algebra-1", slug)
	})

	t.Run("序号递增直到未被占用", func(t *testing.T) {
		prober := &fakeProber{taken: map[string]uuid.UUID{
			"algebra":   uuid.New(),
			"algebra-1": uuid.New(),
			"algebra-2": uuid.New(),
		}}
		slug, err := NewSlugGenerator(prober).Generate(ctx, scope, "Algebra", uuid.New())
		require.NoError(t, err)
		assert.Equal(t, "algebra-3", slug)
		assert.Equal(t, 4, prober.calls)
	})

	t.Run("排除自身ID", func(t *testing.T) {
		self := uuid.New()
		prober := &fakeProber{taken: map[string]uuid.UUID{"algebra": self}}
		slug, err := NewSlugGenerator(prober).Generate(ctx, scope, "Algebra", self)
		require.NoError(t, err)
		assert.Equal(t, "algebra", slug, "更新时自己的slug不算冲突")
	})

	t.Run("探测失败直接返回", func(t *testing.T) {
		boom := errors.New("connection refused")
		_, err := NewSlugGenerator(&fakeProber{err: boom}).Generate(ctx, scope, "Algebra", uuid.New())
		assert.ErrorIs(t, err, boom)
	})
}

var slugCharset = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

func TestSlugProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		title := rapid.String().Draw(t, "title")
		prober := &fakeProber{taken: map[string]uuid.UUID{}}
		gen := NewSlugGenerator(prober)
		scope := Scope{Catalog: CatalogStationery}

		first, err := gen.Generate(context.Background(), scope, title, uuid.New())
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if !slugCharset.MatchString(first) {
			t.Fatalf("slug %q 包含非法字符", first)
		}

		// 第一个slug仍被占用时,同标题必须得到不同的slug
		prober.taken[first] = uuid.New()
		second, err := gen.Generate(context.Background(), scope, title, uuid.New())
		if err != nil {
			t.Fatalf("generate: %v", err)
		}
		if second == first {
			t.Fatalf("重复生成了相同的slug %q", first)
		}
	})
}
