package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

func TestGenerateAndParse(t *testing.T) {
	m := NewManager("test-secret", "catalogstore", time.Hour)

	token, err := m.GenerateToken("ops-1", RoleManager, "3f1c2b1e-0000-4000-8000-000000000001")
	require.NoError(t, err)

	claims, err := m.ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, "ops-1", claims.UserID)
	assert.Equal(t, RoleManager, claims.Role)
	assert.True(t, claims.TTL(time.Now()) > 50*time.Minute)
}

func TestParseTokenErrors(t *testing.T) {
	m := NewManager("test-secret", "catalogstore", time.Hour)

	t.Run("签名不匹配", func(t *testing.T) {
		other := NewManager("other-secret", "catalogstore", time.Hour)
		token, err := other.GenerateToken("u1", RoleAdmin, "")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.Equal(t, apperrors.ErrCodeInvalidToken, apperrors.CodeOf(err))
	})

	t.Run("已过期", func(t *testing.T) {
		expired := NewManager("test-secret", "catalogstore", -time.Minute)
		token, err := expired.GenerateToken("u1", RoleAdmin, "")
		require.NoError(t, err)

		_, err = m.ParseToken(token)
		assert.Equal(t, apperrors.ErrTokenExpired, err)
	})

	t.Run("格式错误", func(t *testing.T) {
		_, err := m.ParseToken("not-a-token")
		assert.Equal(t, apperrors.KindUnauthorized, apperrors.KindOf(err))
	})
}

func TestCanManageStore(t *testing.T) {
	admin := &Claims{Role: RoleAdmin}
	manager := &Claims{Role: RoleManager, StoreID: "s1"}
	viewer := &Claims{Role: "viewer"}

	assert.True(t, admin.CanManageStore("s2"))
	assert.True(t, manager.CanManageStore("s1"))
	assert.False(t, manager.CanManageStore("s2"))
	assert.False(t, viewer.CanManageStore(""))
}
