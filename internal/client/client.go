// Package client is the consumer side of the catalog API: a typed
// HTTP client plus the view controllers that drive the list, detail,
// and create/edit-modal flows. View state is never patched in place
// after a mutation; controllers always re-fetch from the server.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"html"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 15 * time.Second

// Client is a typed API client. Page navigation goes strictly through
// server-issued link URLs; the client never constructs page URLs.
type Client struct {
	baseURL string
	http    *http.Client
}

// New creates a client for an API base URL, e.g.
// "http://localhost:8080/api/v1".
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: defaultTimeout},
	}
}

// Wire shapes, mirroring the server's resource contract.

type Author struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Country   string `json:"country"`
	Genre     string `json:"genre"`
	BookCount int    `json:"book_count"`
}

type Book struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	ISBN   string  `json:"isbn"`
	Author *Author `json:"author"`
}

type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// DisplayLabel decodes the HTML entities in a pager label ("&laquo;
// Previous" and friends) for terminal display.
func (l Link) DisplayLabel() string {
	return html.UnescapeString(l.Label)
}

type Meta struct {
	CurrentPage int    `json:"current_page"`
	From        *int   `json:"from"`
	LastPage    int    `json:"last_page"`
	Links       []Link `json:"links"`
	Path        string `json:"path"`
	PerPage     int    `json:"per_page"`
	To          *int   `json:"to"`
	Total       int64  `json:"total"`
}

// NextURL returns the Next step's URL, or nil on the last page.
func (m *Meta) NextURL() *string {
	if m == nil || len(m.Links) == 0 {
		return nil
	}
	return m.Links[len(m.Links)-1].URL
}

type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// Forms carry the full field set; updates resupply every field.

type AuthorForm struct {
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
	Country string `json:"country"`
	Genre   string `json:"genre"`
}

type BookForm struct {
	Name     string `json:"name"`
	ISBN     string `json:"isbn"`
	AuthorID int64  `json:"author_id"`
}

// do performs one request/response cycle, translating the server's
// error bodies into typed errors.
func (c *Client) do(ctx context.Context, method, url string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return &TransportError{Err: err}
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		if out == nil || resp.StatusCode == http.StatusNoContent {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &TransportError{Err: fmt.Errorf("decode response: %w", err)}
		}
		return nil

	case resp.StatusCode == http.StatusNotFound:
		nf := &NotFoundError{}
		_ = json.NewDecoder(resp.Body).Decode(nf)
		return nf

	case resp.StatusCode == http.StatusUnprocessableEntity:
		ve := &ValidationError{}
		if err := json.NewDecoder(resp.Body).Decode(ve); err != nil {
			return &TransportError{Err: fmt.Errorf("decode validation errors: %w", err)}
		}
		return ve

	default:
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &TransportError{
			Err: fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(data)),
		}
	}
}

func fetchPage[T any](ctx context.Context, c *Client, url string) (*Page[T], error) {
	var page Page[T]
	if err := c.do(ctx, http.MethodGet, url, nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Author endpoints.

func (c *Client) AuthorsBaseURL() string {
	return c.baseURL + "/authors"
}

// AuthorsPage fetches a list page by its exact URL (the base listing
// URL or one taken from meta.links).
func (c *Client) AuthorsPage(ctx context.Context, url string) (*Page[Author], error) {
	return fetchPage[Author](ctx, c, url)
}

// AllAuthors walks every page through the Next links and returns the
// accumulated author list, for the book form's selection control.
func (c *Client) AllAuthors(ctx context.Context) ([]Author, error) {
	var all []Author

	url := c.AuthorsBaseURL()
	for {
		page, err := c.AuthorsPage(ctx, url)
		if err != nil {
			return nil, err
		}
		all = append(all, page.Data...)

		next := page.Meta.NextURL()
		if next == nil {
			return all, nil
		}
		url = *next
	}
}

func (c *Client) GetAuthor(ctx context.Context, id int64) (*Author, error) {
	var a Author
	url := fmt.Sprintf("%s/authors/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodGet, url, nil, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) CreateAuthor(ctx context.Context, form AuthorForm) (*Author, error) {
	var a Author
	if err := c.do(ctx, http.MethodPost, c.AuthorsBaseURL(), form, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) UpdateAuthor(ctx context.Context, id int64, form AuthorForm) (*Author, error) {
	var a Author
	url := fmt.Sprintf("%s/authors/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodPut, url, form, &a); err != nil {
		return nil, err
	}
	return &a, nil
}

func (c *Client) DeleteAuthor(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/authors/%d", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}

// Book endpoints.

func (c *Client) BooksBaseURL() string {
	return c.baseURL + "/books"
}

func (c *Client) BooksPage(ctx context.Context, url string) (*Page[Book], error) {
	return fetchPage[Book](ctx, c, url)
}

func (c *Client) GetBook(ctx context.Context, id int64) (*Book, error) {
	var b Book
	url := fmt.Sprintf("%s/books/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodGet, url, nil, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) CreateBook(ctx context.Context, form BookForm) (*Book, error) {
	var b Book
	if err := c.do(ctx, http.MethodPost, c.BooksBaseURL(), form, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) UpdateBook(ctx context.Context, id int64, form BookForm) (*Book, error) {
	var b Book
	url := fmt.Sprintf("%s/books/%d", c.baseURL, id)
	if err := c.do(ctx, http.MethodPut, url, form, &b); err != nil {
		return nil, err
	}
	return &b, nil
}

func (c *Client) DeleteBook(ctx context.Context, id int64) error {
	url := fmt.Sprintf("%s/books/%d", c.baseURL, id)
	return c.do(ctx, http.MethodDelete, url, nil, nil)
}
