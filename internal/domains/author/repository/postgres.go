package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog/internal/domains/author"
	"library-catalog/pkg/cache"
)

// postgresRepository implements author.Repository on pgxpool with a
// Redis cache in front of single-row reads.
type postgresRepository struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresRepository(pool *pgxpool.Pool, cache cache.Cache) author.Repository {
	return &postgresRepository{
		pool:  pool,
		cache: cache,
	}
}

const (
	authorCacheKeyPrefix = "author:"
	cacheTTL             = 15 * time.Minute
)

func authorCacheKey(id int64) string {
	return authorCacheKeyPrefix + strconv.FormatInt(id, 10)
}

func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        INSERT INTO authors (name, gender, age, country, genre)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, name, gender, age, country, genre, created_at, updated_at
    `

	var created author.Author
	err := r.pool.QueryRow(ctx, query,
		a.Name, a.Gender, a.Age, a.Country, a.Genre,
	).Scan(
		&created.ID, &created.Name, &created.Gender, &created.Age,
		&created.Country, &created.Genre, &created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id int64) (*author.Author, error) {
	cacheKey := authorCacheKey(id)

	var a author.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT id, name, gender, age, country, genre, created_at, updated_at
        FROM authors
        WHERE id = $1
    `

	err := r.pool.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Name, &a.Gender, &a.Age,
		&a.Country, &a.Genre, &a.CreatedAt, &a.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	_ = r.cache.Set(ctx, cacheKey, a, cacheTTL)

	return &a, nil
}

// GetPage lists authors newest first. The secondary id ordering keeps
// pages stable when rows share a creation timestamp.
func (r *postgresRepository) GetPage(ctx context.Context, page, perPage int) ([]author.Author, int64, error) {
	offset := (page - 1) * perPage

	query := `
        SELECT id, name, gender, age, country, genre, created_at, updated_at
        FROM authors
        ORDER BY created_at DESC, id DESC
        LIMIT $1 OFFSET $2
    `

	rows, err := r.pool.Query(ctx, query, perPage, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []author.Author
	for rows.Next() {
		var a author.Author
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Gender, &a.Age,
			&a.Country, &a.Genre, &a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating authors: %w", err)
	}

	var total int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count authors: %w", err)
	}

	return authors, total, nil
}

func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	query := `
        UPDATE authors
        SET name = $1, gender = $2, age = $3, country = $4, genre = $5,
            updated_at = NOW()
        WHERE id = $6
        RETURNING id, name, gender, age, country, genre, created_at, updated_at
    `

	var updated author.Author
	err := r.pool.QueryRow(ctx, query,
		a.Name, a.Gender, a.Age, a.Country, a.Genre, a.ID,
	).Scan(
		&updated.ID, &updated.Name, &updated.Gender, &updated.Age,
		&updated.Country, &updated.Genre, &updated.CreatedAt, &updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	_ = r.cache.Delete(ctx, authorCacheKey(a.ID))

	return &updated, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id int64) error {
	cmdTag, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return author.ErrAuthorHasBooks
		}
		return fmt.Errorf("failed to delete author: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return author.ErrAuthorNotFound
	}

	_ = r.cache.Delete(ctx, authorCacheKey(id))

	return nil
}

func (r *postgresRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM authors WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check author existence: %w", err)
	}

	return exists, nil
}

func (r *postgresRepository) CountBooks(ctx context.Context, authorID int64) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM books WHERE author_id = $1`, authorID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}

	return count, nil
}
