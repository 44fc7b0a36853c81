package author

import "context"

// Service is the author resource contract: list, get, create, update,
// delete. Create and Update run the validator before any write and
// return a validation.Errors map on failure.
type Service interface {
	List(ctx context.Context, page, perPage int) ([]AuthorResource, int64, error)
	Get(ctx context.Context, id int64) (*AuthorResource, error)
	Create(ctx context.Context, req *AuthorRequest) (*AuthorResource, error)
	Update(ctx context.Context, id int64, req *AuthorRequest) (*AuthorResource, error)
	Delete(ctx context.Context, id int64) error
}
