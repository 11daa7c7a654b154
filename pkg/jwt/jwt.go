package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
)

// 角色定义
const (
	RoleAdmin   = "admin"   // 平台管理员,可操作任意店铺
	RoleManager = "manager" // 店铺管理员,只能操作StoreID对应店铺
)

// Manager JWT管理器
// 设计说明：
// 1. 目录服务只签发服务间/运维Token，用户登录由身份服务负责
// 2. 写操作需要Bearer Token，读接口公开
type Manager struct {
	secret string
	issuer string
	expire time.Duration
}

// NewManager 创建JWT管理器
func NewManager(secret, issuer string, expire time.Duration) *Manager {
	return &Manager{
		secret: secret,
		issuer: issuer,
		expire: expire,
	}
}

// Claims 自定义JWT Claims
type Claims struct {
	UserID  string `json:"user_id"`
	Role    string `json:"role"`
	StoreID string `json:"store_id,omitempty"` // manager所属店铺
	jwt.RegisteredClaims
}

// CanManageStore 判断是否有权限操作指定店铺
// 单店铺目录(storeID为空)只有admin和未绑定店铺的manager可以修改
func (c *Claims) CanManageStore(storeID string) bool {
	if c.Role == RoleAdmin {
		return true
	}
	if c.Role != RoleManager {
		return false
	}
	return c.StoreID == storeID
}

// GenerateToken 签发Access Token
func (m *Manager) GenerateToken(userID, role, storeID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:  userID,
		Role:    role,
		StoreID: storeID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(m.expire)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    m.issuer,
			Subject:   userID,
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(m.secret))
	if err != nil {
		return "", apperrors.Wrap(err, "生成Token失败")
	}
	return signed, nil
}

// ParseToken 解析并验证Token(签名、exp、nbf)
func (m *Manager) ParseToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("非法的签名算法: %v", token.Header["alg"])
		}
		return []byte(m.secret), nil
	}, jwt.WithIssuer(m.issuer))

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, apperrors.ErrTokenExpired
		}
		return nil, apperrors.ErrInvalidToken.WithCause(err)
	}

	if claims, ok := token.Claims.(*Claims); ok && token.Valid {
		return claims, nil
	}
	return nil, apperrors.ErrInvalidToken
}

// TTL Token剩余有效期(用于黑名单过期时间)
func (c *Claims) TTL(now time.Time) time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return c.ExpiresAt.Sub(now)
}
