package book

import "context"

// Service is the book resource contract. Create and Update validate
// the payload, including that author_id resolves to a stored author,
// before any write.
type Service interface {
	List(ctx context.Context, page, perPage int) ([]BookResource, int64, error)
	Get(ctx context.Context, id int64) (*BookResource, error)
	Create(ctx context.Context, req *BookRequest) (*BookResource, error)
	Update(ctx context.Context, id int64, req *BookRequest) (*BookResource, error)
	Delete(ctx context.Context, id int64) error
}
