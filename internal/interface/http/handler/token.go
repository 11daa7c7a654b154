package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/xiebiao/catalogstore/internal/interface/http/middleware"
	apperrors "github.com/xiebiao/catalogstore/pkg/errors"
	"github.com/xiebiao/catalogstore/pkg/response"
)

// ErrRevocationDisabled 未启用Redis时无法注销Token
var ErrRevocationDisabled = apperrors.New(apperrors.ErrCodeBusinessError, "未启用Token黑名单,无法注销")

// TokenRevoker Token黑名单写入(实现见persistence/redis.TokenBlacklist)
type TokenRevoker interface {
	Revoke(ctx context.Context, token string, ttl time.Duration) error
}

// TokenHandler Token管理
type TokenHandler struct {
	revoker TokenRevoker
}

// NewTokenHandler revoker可以为nil
func NewTokenHandler(revoker TokenRevoker) *TokenHandler {
	return &TokenHandler{revoker: revoker}
}

// Revoke 注销当前Token,剩余有效期内再使用返回401
// @Summary      注销当前Token
// @Tags         认证
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response
// @Failure      400 {object} response.Response "未启用黑名单"
// @Failure      401 {object} response.Response "未认证"
// @Router       /api/v1/auth/revoke [post]
func (h *TokenHandler) Revoke(c *gin.Context) {
	if h.revoker == nil {
		response.Error(c, ErrRevocationDisabled)
		return
	}

	claims, ok := middleware.GetClaims(c)
	token, hasToken := middleware.GetToken(c)
	if !ok || !hasToken {
		response.Error(c, apperrors.ErrUnauthorized)
		return
	}

	if err := h.revoker.Revoke(c.Request.Context(), token, claims.TTL(time.Now())); err != nil {
		response.Error(c, err)
		return
	}
	response.Success(c, "Token已注销", nil)
}
