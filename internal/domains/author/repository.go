package author

import "context"

// Repository defines author data access. Keeping it an interface lets
// handlers and services be tested against in-memory doubles.
type Repository interface {
	// Create inserts a new author and returns it with the assigned id
	// and timestamps.
	Create(ctx context.Context, a *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id int64) (*Author, error)

	// GetPage returns one page ordered newest first, plus the total
	// row count for pagination.
	GetPage(ctx context.Context, page, perPage int) ([]Author, int64, error)

	// Update overwrites every mutable field of an existing author.
	// Returns ErrAuthorNotFound when no row matches.
	Update(ctx context.Context, a *Author) (*Author, error)

	// Delete removes the author. Returns ErrAuthorNotFound when no row
	// matches and ErrAuthorHasBooks while books still reference it.
	Delete(ctx context.Context, id int64) error

	// ExistsByID is a lightweight existence probe, used by the book
	// validator for the author_id foreign key.
	ExistsByID(ctx context.Context, id int64) (bool, error)

	// CountBooks returns the number of books referencing the author.
	CountBooks(ctx context.Context, authorID int64) (int, error)
}
