package books

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/libraryshop/books-api/dyndb"
)

// Repository is the single-table gateway for Book records. It owns id and
// timestamp assignment; callers supply only user data.
type Repository struct {
	store dyndb.Store[Book]
	now   func() time.Time
}

// NewRepository wires a repository to a DynamoDB table.
func NewRepository(client dyndb.DynamoDBClient, tableName string) *Repository {
	return &Repository{
		store: dyndb.New(client, dyndb.TableConfig[Book]{
			TableName: tableName,
			HashKey:   "id",
		}),
		now: time.Now,
	}
}

// NewRepositoryWithStore injects a prebuilt store, mainly for tests.
func NewRepositoryWithStore(store dyndb.Store[Book]) *Repository {
	return &Repository{store: store, now: time.Now}
}

func (r *Repository) timestamp() string {
	return r.now().UTC().Format(time.RFC3339)
}

// Create persists a new book with a fresh id and equal created/updated
// timestamps. The conditional put guarantees the id is never overwritten.
func (r *Repository) Create(ctx context.Context, b Book) (*Book, error) {
	now := r.timestamp()
	b.ID = uuid.NewString()
	b.CreatedAt = now
	b.UpdatedAt = now

	if err := r.store.PutIfAbsent(ctx, b); err != nil {
		return nil, err
	}
	return &b, nil
}

// GetByID returns the book or dyndb.ErrNotFound.
func (r *Repository) GetByID(ctx context.Context, id string) (*Book, error) {
	return r.store.Get(ctx, id)
}

// Update applies a partial field replacement and refreshes updatedAt,
// returning the stored record after the merge. A book deleted concurrently
// surfaces as dyndb.ErrNotFound.
func (r *Repository) Update(ctx context.Context, id string, fields map[string]any) (*Book, error) {
	merged := make(map[string]any, len(fields)+1)
	for k, v := range fields {
		merged[k] = v
	}
	merged["updatedAt"] = r.timestamp()

	return r.store.Update(ctx, id, merged)
}

// Delete removes the book permanently.
func (r *Repository) Delete(ctx context.Context, id string) error {
	return r.store.Delete(ctx, id)
}

// List scans one page of books. When both filters are set, author wins and
// title is ignored. The returned cursor is "" on the last page.
func (r *Repository) List(ctx context.Context, f ListFilter) ([]Book, string, error) {
	scan := r.store.Scan().Limit(f.Limit).StartKey(f.Cursor)

	if f.Author != "" {
		scan = scan.FilterContains("author", f.Author)
	} else if f.Title != "" {
		scan = scan.FilterContains("title", f.Title)
	}

	return scan.Exec(ctx)
}
