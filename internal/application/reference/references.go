package reference

import (
	"context"
	"time"

	"github.com/xiebiao/catalogstore/internal/domain/reference"
)

// ReferenceResponse 作者/出版社/分类DTO
type ReferenceResponse struct {
	ID        string `json:"id"`
	Kind      string `json:"kind"`
	Name      string `json:"name"`
	CreatedAt string `json:"createdAt"`
}

func toResponse(ref *reference.Reference) ReferenceResponse {
	return ReferenceResponse{
		ID:        ref.ID.String(),
		Kind:      string(ref.Kind),
		Name:      ref.Name,
		CreatedAt: ref.CreatedAt.Format(time.RFC3339),
	}
}

// ListReferencesUseCase 按类型列出
type ListReferencesUseCase struct {
	service reference.Service
}

// NewListReferencesUseCase 创建列表用例
func NewListReferencesUseCase(service reference.Service) *ListReferencesUseCase {
	return &ListReferencesUseCase{service: service}
}

// Execute 执行查询
func (uc *ListReferencesUseCase) Execute(ctx context.Context, rawKind string) ([]ReferenceResponse, error) {
	kind, err := reference.ParseKind(rawKind)
	if err != nil {
		return nil, err
	}

	refs, err := uc.service.List(ctx, kind)
	if err != nil {
		return nil, err
	}

	out := make([]ReferenceResponse, len(refs))
	for i, ref := range refs {
		out[i] = toResponse(ref)
	}
	return out, nil
}

// CreateReferenceUseCase 创建作者/出版社/分类
type CreateReferenceUseCase struct {
	service reference.Service
}

// NewCreateReferenceUseCase 创建用例
func NewCreateReferenceUseCase(service reference.Service) *CreateReferenceUseCase {
	return &CreateReferenceUseCase{service: service}
}

// Execute 同类型名称重复返回冲突
func (uc *CreateReferenceUseCase) Execute(ctx context.Context, rawKind, name string) (*ReferenceResponse, error) {
	kind, err := reference.ParseKind(rawKind)
	if err != nil {
		return nil, err
	}

	ref, err := uc.service.Create(ctx, kind, name)
	if err != nil {
		return nil, err
	}

	out := toResponse(ref)
	return &out, nil
}
