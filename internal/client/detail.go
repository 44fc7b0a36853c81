package client

import "context"

// AuthorDetailController drives a single-author view: loading until
// the fetch resolves, then either the author or the error it ended
// with. A failed fetch leaves Author nil rather than crashing the
// view.
type AuthorDetailController struct {
	client *Client

	Author  *Author
	Loading bool
	Err     error
}

func NewAuthorDetailController(c *Client) *AuthorDetailController {
	return &AuthorDetailController{client: c}
}

func (dc *AuthorDetailController) Load(ctx context.Context, id int64) error {
	dc.Loading = true

	a, err := dc.client.GetAuthor(ctx, id)
	dc.Loading = false
	dc.Err = err
	if err != nil {
		return err
	}

	dc.Author = a
	return nil
}

// BookDetailController drives a single-book view; the fetched book
// embeds its author.
type BookDetailController struct {
	client *Client

	Book    *Book
	Loading bool
	Err     error
}

func NewBookDetailController(c *Client) *BookDetailController {
	return &BookDetailController{client: c}
}

func (dc *BookDetailController) Load(ctx context.Context, id int64) error {
	dc.Loading = true

	b, err := dc.client.GetBook(ctx, id)
	dc.Loading = false
	dc.Err = err
	if err != nil {
		return err
	}

	dc.Book = b
	return nil
}
