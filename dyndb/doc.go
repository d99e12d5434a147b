// Package dyndb provides a small, strongly typed gateway over the AWS
// DynamoDB SDK (v2) for single-table CRUD services.
//
// The Store[T] interface covers the operations a request handler needs:
// consistent Get, conditional PutIfAbsent, partial Update returning the new
// item image, conditional Delete and a fluent paginated Scan. Pagination is
// exposed as opaque base64 cursors so callers never touch LastEvaluatedKey.
//
// Mutations are guarded with condition expressions: PutIfAbsent fails with
// ErrConflict when the key is taken, and Update/Delete fail with ErrNotFound
// when the item vanished between an existence check and the write.
//
//	store := dyndb.New(client, dyndb.TableConfig[Book]{TableName: "dev-books", HashKey: "id"})
//	book, err := store.Get(ctx, "b-123")
//	items, next, err := store.Scan().FilterContains("author", "King").Limit(10).Exec(ctx)
//
// MockStore is provided for handler and repository tests.
package dyndb
