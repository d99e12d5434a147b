package dyndb

import "context"

// MockStore is a ready-to-use fake for the Store[T] interface. Set the Fn
// fields to script behavior; unset functions fall back to not-found / no-op.
type MockStore[T any] struct {
	GetFn         func(ctx context.Context, hashKey any) (*T, error)
	PutIfAbsentFn func(ctx context.Context, item T) error
	UpdateFn      func(ctx context.Context, hashKey any, fields map[string]any) (*T, error)
	DeleteFn      func(ctx context.Context, hashKey any) error
	ScanFn        func(ctx context.Context, sb *ScanBuilder[T]) ([]T, string, error)
}

func (m *MockStore[T]) Get(ctx context.Context, hashKey any) (*T, error) {
	if m.GetFn != nil {
		return m.GetFn(ctx, hashKey)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) PutIfAbsent(ctx context.Context, item T) error {
	if m.PutIfAbsentFn != nil {
		return m.PutIfAbsentFn(ctx, item)
	}
	return nil
}

func (m *MockStore[T]) Update(ctx context.Context, hashKey any, fields map[string]any) (*T, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, hashKey, fields)
	}
	return nil, ErrNotFound
}

func (m *MockStore[T]) Delete(ctx context.Context, hashKey any) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, hashKey)
	}
	return nil
}

// Scan returns a builder whose Exec delegates to ScanFn, so tests can assert
// on the accumulated filter, limit and cursor.
func (m *MockStore[T]) Scan() *ScanBuilder[T] {
	exec := m.ScanFn
	if exec == nil {
		exec = func(ctx context.Context, sb *ScanBuilder[T]) ([]T, string, error) {
			return nil, "", nil
		}
	}
	return &ScanBuilder[T]{exec: exec}
}
