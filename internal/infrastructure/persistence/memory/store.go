// Package memory 进程内存储,实现与rdb相同的仓储接口
// 用于database.driver=memory以及领域/应用层测试
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/xiebiao/catalogstore/internal/domain/catalog"
	"github.com/xiebiao/catalogstore/internal/domain/inventory"
	"github.com/xiebiao/catalogstore/internal/domain/reference"
)

type txKey struct{}

// Store 内存数据
// 事务语义:
// 1. 同一时刻只有一个事务执行(txMu),等价于对所有行加锁
// 2. 事务开始时做快照,fn返回error时恢复快照
// 3. ctx中已有事务时直接执行fn(嵌套调用共用外层事务)
type Store struct {
	txMu sync.Mutex
	mu   sync.RWMutex

	items   map[uuid.UUID]*catalog.Item
	entries []*inventory.LedgerEntry
	refs    map[uuid.UUID]*reference.Reference
}

// NewStore 创建空的内存存储
func NewStore() *Store {
	return &Store{
		items: make(map[uuid.UUID]*catalog.Item),
		refs:  make(map[uuid.UUID]*reference.Reference),
	}
}

// Transaction 实现catalog.Transactor
func (s *Store) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if ctx.Value(txKey{}) != nil {
		return fn(ctx)
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	s.txMu.Lock()
	defer s.txMu.Unlock()

	snap := s.snapshot()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.restore(snap)
		return err
	}
	return nil
}

// write 写操作总在事务中执行,避免与进行中的事务回滚互相覆盖
func (s *Store) write(ctx context.Context, fn func() error) error {
	return s.Transaction(ctx, func(context.Context) error {
		s.mu.Lock()
		defer s.mu.Unlock()
		return fn()
	})
}

// read 只读操作
func (s *Store) read(fn func()) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	fn()
}

type snapshot struct {
	items   map[uuid.UUID]*catalog.Item
	entries []*inventory.LedgerEntry
	refs    map[uuid.UUID]*reference.Reference
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		items:   make(map[uuid.UUID]*catalog.Item, len(s.items)),
		entries: append([]*inventory.LedgerEntry(nil), s.entries...),
		refs:    make(map[uuid.UUID]*reference.Reference, len(s.refs)),
	}
	for id, it := range s.items {
		snap.items[id] = it.Clone()
	}
	for id, ref := range s.refs {
		snap.refs[id] = ref
	}
	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = snap.items
	s.entries = snap.entries
	s.refs = snap.refs
}
