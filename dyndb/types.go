package dyndb

import (
	"context"
	"errors"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// ErrNotFound is returned when the requested item does not exist, or when a
// conditional mutation observed the item vanishing between check and write.
var ErrNotFound = errors.New("dyndb: item not found")

// ErrConflict is returned by PutIfAbsent when an item with the same key
// already exists.
var ErrConflict = errors.New("dyndb: item already exists")

// DynamoDBClient abstracts the subset of the DynamoDB SDK client used by the
// store, so tests can swap in a mock.
type DynamoDBClient interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
}

// Store is the typed single-table gateway.
type Store[T any] interface {
	// Get returns the item for the hash key, or ErrNotFound.
	Get(ctx context.Context, hashKey any) (*T, error)

	// PutIfAbsent writes the item only when no item with the same hash key
	// exists yet. Returns ErrConflict otherwise.
	PutIfAbsent(ctx context.Context, item T) error

	// Update applies a partial SET of the given fields and returns the full
	// post-update item. The item must already exist (ErrNotFound otherwise).
	Update(ctx context.Context, hashKey any, fields map[string]any) (*T, error)

	// Delete removes an existing item. Returns ErrNotFound when the item is
	// already gone.
	Delete(ctx context.Context, hashKey any) error

	// Scan starts a fluent paginated scan.
	Scan() *ScanBuilder[T]
}

// TableConfig describes the table a store operates on.
type TableConfig[T any] struct {
	TableName string `env:"BOOKS_TABLE_NAME"`
	HashKey   string `env:"DYNAMODB_HASH_KEY" envDefault:"id"`
}

// ScanBuilder accumulates scan parameters fluently. Exec runs the scan and
// returns the page of items plus an opaque cursor for the next page ("" when
// the table is exhausted).
type ScanBuilder[T any] struct {
	exec        func(ctx context.Context, sb *ScanBuilder[T]) ([]T, string, error)
	filterField string
	filterValue string
	limit       *int32
	startToken  string
}

// FilterContains restricts results to items whose attribute contains the
// given substring. Only one contains-filter is kept; the last call wins.
func (sb *ScanBuilder[T]) FilterContains(field, value string) *ScanBuilder[T] {
	sb.filterField = field
	sb.filterValue = value
	return sb
}

// Limit caps the number of items evaluated by the scan page.
func (sb *ScanBuilder[T]) Limit(n int32) *ScanBuilder[T] {
	sb.limit = &n
	return sb
}

// StartKey resumes the scan from an opaque cursor previously returned by Exec.
func (sb *ScanBuilder[T]) StartKey(token string) *ScanBuilder[T] {
	sb.startToken = token
	return sb
}

// Exec runs the configured scan.
func (sb *ScanBuilder[T]) Exec(ctx context.Context) ([]T, string, error) {
	return sb.exec(ctx, sb)
}

// Filter exposes the configured contains-filter, mainly for assertions in
// tests built on MockStore.
func (sb *ScanBuilder[T]) Filter() (field, value string) {
	return sb.filterField, sb.filterValue
}

// LimitValue exposes the configured limit (0 when unset).
func (sb *ScanBuilder[T]) LimitValue() int32 {
	if sb.limit == nil {
		return 0
	}
	return *sb.limit
}

// StartToken exposes the configured pagination cursor.
func (sb *ScanBuilder[T]) StartToken() string {
	return sb.startToken
}
