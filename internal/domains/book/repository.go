package book

import "context"

// Repository defines book data access. Reads that serve the wire
// eager-load the owning author in a single query.
type Repository interface {
	Create(ctx context.Context, b *Book) (*Book, error)

	// GetByID returns the bare row, no relation attached.
	GetByID(ctx context.Context, id int64) (*Book, error)

	// GetByIDWithAuthor returns the book with its author attached.
	GetByIDWithAuthor(ctx context.Context, id int64) (*Book, error)

	// GetPageWithAuthor returns one page newest first, authors
	// attached, plus the total row count.
	GetPageWithAuthor(ctx context.Context, page, perPage int) ([]Book, int64, error)

	Update(ctx context.Context, b *Book) (*Book, error)

	Delete(ctx context.Context, id int64) error
}
