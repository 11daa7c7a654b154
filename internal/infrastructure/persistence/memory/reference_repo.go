package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/xiebiao/catalogstore/internal/domain/reference"
)

type referenceRepository struct {
	s *Store
}

// NewReferenceRepository 创建关联实体仓储(内存)
func NewReferenceRepository(s *Store) reference.Repository {
	return &referenceRepository{s: s}
}

func (r *referenceRepository) Create(ctx context.Context, ref *reference.Reference) error {
	cp := *ref
	return r.s.write(ctx, func() error {
		for _, existing := range r.s.refs {
			if existing.Kind == ref.Kind && strings.EqualFold(existing.Name, ref.Name) {
				return reference.ErrNameDuplicate
			}
		}
		r.s.refs[ref.ID] = &cp
		return nil
	})
}

func (r *referenceRepository) FindByID(ctx context.Context, kind reference.Kind, id uuid.UUID) (*reference.Reference, error) {
	var found *reference.Reference
	r.s.read(func() {
		if ref, ok := r.s.refs[id]; ok && ref.Kind == kind {
			cp := *ref
			found = &cp
		}
	})
	if found == nil {
		return nil, reference.ErrReferenceNotFound
	}
	return found, nil
}

func (r *referenceRepository) FindByName(ctx context.Context, kind reference.Kind, name string) (*reference.Reference, error) {
	var found *reference.Reference
	r.s.read(func() {
		for _, ref := range r.s.refs {
			if ref.Kind == kind && strings.EqualFold(ref.Name, strings.TrimSpace(name)) {
				cp := *ref
				found = &cp
				return
			}
		}
	})
	if found == nil {
		return nil, reference.ErrReferenceNotFound
	}
	return found, nil
}

func (r *referenceRepository) List(ctx context.Context, kind reference.Kind) ([]*reference.Reference, error) {
	refs := []*reference.Reference{}
	r.s.read(func() {
		for _, ref := range r.s.refs {
			if ref.Kind == kind {
				cp := *ref
				refs = append(refs, &cp)
			}
		}
	})
	sort.Slice(refs, func(i, j int) bool { return refs[i].Name < refs[j].Name })
	return refs, nil
}
