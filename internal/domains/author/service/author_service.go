package service

import (
	"context"

	"library-catalog/internal/domains/author"
)

type authorService struct {
	repo author.Repository
}

func NewAuthorService(repo author.Repository) author.Service {
	return &authorService{repo: repo}
}

// List returns one page of authors newest first, each with its
// computed book count, plus the total for pagination.
func (s *authorService) List(ctx context.Context, page, perPage int) ([]author.AuthorResource, int64, error) {
	authors, total, err := s.repo.GetPage(ctx, page, perPage)
	if err != nil {
		return nil, 0, err
	}

	resources := make([]author.AuthorResource, 0, len(authors))
	for i := range authors {
		count, err := s.repo.CountBooks(ctx, authors[i].ID)
		if err != nil {
			return nil, 0, err
		}
		resources = append(resources, *authors[i].ToResource(count))
	}

	return resources, total, nil
}

func (s *authorService) Get(ctx context.Context, id int64) (*author.AuthorResource, error) {
	a, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountBooks(ctx, a.ID)
	if err != nil {
		return nil, err
	}

	return a.ToResource(count), nil
}

func (s *authorService) Create(ctx context.Context, req *author.AuthorRequest) (*author.AuthorResource, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	// A brand-new author has no books yet.
	return created.ToResource(0), nil
}

// Update validates the full replacement payload first; the stored row
// is left untouched on any failure.
func (s *authorService) Update(ctx context.Context, id int64, req *author.AuthorRequest) (*author.AuthorResource, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(existing)

	updated, err := s.repo.Update(ctx, existing)
	if err != nil {
		return nil, err
	}

	count, err := s.repo.CountBooks(ctx, updated.ID)
	if err != nil {
		return nil, err
	}

	return updated.ToResource(count), nil
}

// Delete refuses to orphan books: an author with linked books is
// rejected before the row is touched. The FK constraint backs this up.
func (s *authorService) Delete(ctx context.Context, id int64) error {
	count, err := s.repo.CountBooks(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return author.ErrAuthorHasBooks
	}

	return s.repo.Delete(ctx, id)
}
