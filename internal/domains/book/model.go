package book

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-catalog/internal/domains/author"
)

// Book is the stored entity. Every book belongs to exactly one author
// through AuthorID; Author is populated only on eager-loaded reads.
type Book struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	ISBN      string    `json:"isbn" db:"isbn"`
	AuthorID  int64     `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	Author *author.Author `json:"-" db:"-"`
}

// BookRequest is the full field set for both create and update.
type BookRequest struct {
	Name     string `json:"name"`
	ISBN     string `json:"isbn"`
	AuthorID int64  `json:"author_id"`
}

// Validate checks the field-level rules. The author_id existence check
// needs the store and lives in the service, which merges its failure
// into the same field-error map.
func (r BookRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.ISBN,
			validation.Required.Error("isbn is required"),
		),
		validation.Field(&r.AuthorID,
			validation.Required.Error("author_id is required"),
		),
	)
}

// BookResource is the wire shape of a book. Author is null unless the
// read eager-loaded the relation.
type BookResource struct {
	ID     int64                  `json:"id"`
	Name   string                 `json:"name"`
	ISBN   string                 `json:"isbn"`
	Author *author.EmbeddedAuthor `json:"author"`
}

func (b *Book) ToResource() *BookResource {
	res := &BookResource{
		ID:   b.ID,
		Name: b.Name,
		ISBN: b.ISBN,
	}
	if b.Author != nil {
		res.Author = b.Author.ToEmbedded()
	}
	return res
}

func (r *BookRequest) ToEntity() *Book {
	return &Book{
		Name:     r.Name,
		ISBN:     r.ISBN,
		AuthorID: r.AuthorID,
	}
}

// ApplyTo overwrites every request-supplied field; full replace.
func (r *BookRequest) ApplyTo(b *Book) {
	b.Name = r.Name
	b.ISBN = r.ISBN
	b.AuthorID = r.AuthorID
}
