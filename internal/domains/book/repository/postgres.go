package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
	"library-catalog/pkg/cache"
)

// postgresRepository implements book.Repository. Only bare rows are
// cached; eager-loaded reads always hit the database so an embedded
// author can never go stale.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) book.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	bookCacheKeyPrefix = "book:"
	cacheTTL           = 15 * time.Minute
)

func bookCacheKey(id int64) string {
	return bookCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) Create(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        INSERT INTO books (name, isbn, author_id)
        VALUES ($1, $2, $3)
        RETURNING id, name, isbn, author_id, created_at, updated_at
    `

	var created book.Book
	err := r.pool.QueryRow(ctx, query, b.Name, b.ISBN, b.AuthorID).Scan(
		&created.ID, &created.Name, &created.ISBN, &created.AuthorID,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*book.Book, error) {
	cacheKey := bookCacheKey(id)

	var b book.Book
	if found, err := r.cache.Get(ctx, cacheKey, &b); err == nil && found {
		return &b, nil
	}

	query := `
        SELECT id, name, isbn, author_id, created_at, updated_at
        FROM books
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.ISBN, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, b, cacheTTL)

	return &b, nil
}

func (r *postgresRepository) GetByIDWithAuthor(ctx context.Context, id int64) (*book.Book, error) {
	query := `
        SELECT b.id, b.name, b.isbn, b.author_id, b.created_at, b.updated_at,
               a.id, a.name, a.gender, a.age, a.country, a.genre, a.created_at, a.updated_at
        FROM books b
        JOIN authors a ON a.id = b.author_id
        WHERE b.id = $1
    `

	var b book.Book
	var a author.Author
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Name, &b.ISBN, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
		&a.ID, &a.Name, &a.Gender, &a.Age, &a.Country, &a.Genre, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book with author: %w", err)
	}

	b.Author = &a
	return &b, nil
}

func (r *postgresRepository) GetPageWithAuthor(ctx context.Context, page, perPage int) ([]book.Book, int64, error) {
	offset := (page - 1) * perPage

	query := `
        SELECT b.id, b.name, b.isbn, b.author_id, b.created_at, b.updated_at,
               a.id, a.name, a.gender, a.age, a.country, a.genre, a.created_at, a.updated_at
        FROM books b
        JOIN authors a ON a.id = b.author_id
        ORDER BY b.created_at DESC, b.id DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []book.Book
	for rows.Next() {
		var b book.Book
		var a author.Author
		if err := rows.Scan(
			&b.ID, &b.Name, &b.ISBN, &b.AuthorID, &b.CreatedAt, &b.UpdatedAt,
			&a.ID, &a.Name, &a.Gender, &a.Age, &a.Country, &a.Genre, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan book: %w", err)
		}
		b.Author = &a
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating books: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count books: %w", err)
	}

	return books, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, b *book.Book) (*book.Book, error) {
	query := `
        UPDATE books
        SET name = $1, isbn = $2, author_id = $3, updated_at = NOW()
        WHERE id = $4
        RETURNING id, name, isbn, author_id, created_at, updated_at
    `

	var updated book.Book
	err := r.pool.QueryRow(ctx, query, b.Name, b.ISBN, b.AuthorID, b.ID).Scan(
		&updated.ID, &updated.Name, &updated.ISBN, &updated.AuthorID,
		&updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, book.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}

	_ = r.cache.Delete(ctx, bookCacheKey(b.ID))

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return book.ErrBookNotFound
	}

	_ = r.cache.Delete(ctx, bookCacheKey(id))

	return nil
}
