package reference_test

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/catalogstore/internal/domain/reference"
	"github.com/xiebiao/catalogstore/internal/infrastructure/persistence/memory"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

func newService() reference.Service {
	return reference.NewService(memory.NewReferenceRepository(memory.NewStore()))
}

func TestParseKind(t *testing.T) {
	k, err := reference.ParseKind(" Author ")
	require.NoError(t, err)
	assert.Equal(t, reference.KindAuthor, k)

	_, err = reference.ParseKind("editor")
	assert.ErrorIs(t, err, reference.ErrInvalidKind)
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	ref, err := svc.Create(ctx, reference.KindPublisher, "  O'Reilly  ")
	require.NoError(t, err)
	assert.Equal(t, "O'Reilly", ref.Name)
	assert.NotEqual(t, uuid.Nil, ref.ID)

	t.Run("同类型重名(大小写不敏感)", func(t *testing.T) {
		_, err := svc.Create(ctx, reference.KindPublisher, "o'reilly")
		assert.ErrorIs(t, err, reference.ErrNameDuplicate)
		assert.Equal(t, apperrors.KindConflict, apperrors.KindOf(err))
	})

	t.Run("不同类型可以同名", func(t *testing.T) {
		_, err := svc.Create(ctx, reference.KindCategory, "O'Reilly")
		assert.NoError(t, err)
	})

	t.Run("名称非法", func(t *testing.T) {
		_, err := svc.Create(ctx, reference.KindAuthor, "   ")
		assert.ErrorIs(t, err, reference.ErrInvalidName)

		_, err = svc.Create(ctx, reference.KindAuthor, strings.Repeat("a", 101))
		assert.ErrorIs(t, err, reference.ErrInvalidName)
	})
}

func TestEnsureReusesExisting(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	first, err := svc.Ensure(ctx, reference.KindAuthor, "Donald Knuth")
	require.NoError(t, err)
	second, err := svc.Ensure(ctx, reference.KindAuthor, " Donald Knuth ")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	all, err := svc.List(ctx, reference.KindAuthor)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestResolve(t *testing.T) {
	ctx := context.Background()
	svc := newService()

	ref, err := svc.Create(ctx, reference.KindCategory, "Physics")
	require.NoError(t, err)

	got, err := svc.Resolve(ctx, reference.KindCategory, ref.ID)
	require.NoError(t, err)
	assert.Equal(t, "Physics", got.Name)

	// 类型不匹配视为不存在
	_, err = svc.Resolve(ctx, reference.KindAuthor, ref.ID)
	assert.ErrorIs(t, err, reference.ErrReferenceNotFound)
	assert.Equal(t, apperrors.KindNotFound, apperrors.KindOf(err))
	assert.Equal(t, ref.ID.String(), apperrors.GetAppError(err).Details["authorId"])
}
