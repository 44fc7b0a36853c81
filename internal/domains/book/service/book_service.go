package service

import (
	"context"
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/book"
)

type bookService struct {
	repo    book.Repository
	authors author.Repository
}

func NewBookService(repo book.Repository, authors author.Repository) book.Service {
	return &bookService{
		repo:    repo,
		authors: authors,
	}
}

// validate runs the field rules and the author_id existence check in
// one pass so every violated field lands in the same error map.
func (s *bookService) validate(ctx context.Context, req *book.BookRequest) error {
	errs := validation.Errors{}
	if err := req.Validate(); err != nil {
		var verrs validation.Errors
		if !errors.As(err, &verrs) {
			return err
		}
		errs = verrs
	}

	if _, reported := errs["author_id"]; !reported && req.AuthorID != 0 {
		exists, err := s.authors.ExistsByID(ctx, req.AuthorID)
		if err != nil {
			return err
		}
		if !exists {
			errs["author_id"] = errors.New("the selected author does not exist")
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (s *bookService) List(ctx context.Context, page, perPage int) ([]book.BookResource, int64, error) {
	books, total, err := s.repo.GetPageWithAuthor(ctx, page, perPage)
	if err != nil {
		return nil, 0, err
	}

	resources := make([]book.BookResource, 0, len(books))
	for i := range books {
		resources = append(resources, *books[i].ToResource())
	}

	return resources, total, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*book.BookResource, error) {
	b, err := s.repo.GetByIDWithAuthor(ctx, id)
	if err != nil {
		return nil, err
	}

	return b.ToResource(), nil
}

func (s *bookService) Create(ctx context.Context, req *book.BookRequest) (*book.BookResource, error) {
	if err := s.validate(ctx, req); err != nil {
		return nil, err
	}

	created, err := s.repo.Create(ctx, req.ToEntity())
	if err != nil {
		return nil, err
	}

	// Writes do not eager-load; the author field stays null here.
	return created.ToResource(), nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *book.BookRequest) (*book.BookResource, error) {
	if err := s.validate(ctx, req); err != nil {
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

	return updated.ToResource(), nil
}

func (s *bookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
