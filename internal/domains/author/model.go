package author

import (
	"errors"
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Author is the stored entity. Identifiers are assigned by the store
// and immutable; timestamps are maintained by the store.
type Author struct {
	ID        int64     `json:"id" db:"id"`
	Name      string    `json:"name" db:"name"`
	Gender    string    `json:"gender" db:"gender"`
	Age       int       `json:"age" db:"age"`
	Country   string    `json:"country" db:"country"`
	Genre     string    `json:"genre" db:"genre"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// AuthorRequest is the full field set for both create and update.
// Updates are full replaces, so the same rules apply to both.
type AuthorRequest struct {
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
	Country string `json:"country"`
	Genre   string `json:"genre"`
}

const (
	MinAge = 12
	MaxAge = 100

	MinCountryLength = 2
)

// Gender label set. Open to extension but unknown labels are rejected.
var knownGenders = []string{"male", "female"}

func knownGender(value interface{}) error {
	s, _ := value.(string)
	for _, g := range knownGenders {
		if strings.EqualFold(s, g) {
			return nil
		}
	}
	return errors.New("must be a known gender")
}

// Validate checks the full rule set and reports every violated field
// in one pass. The result is a validation.Errors map on failure.
func (r AuthorRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("name is required"),
		),
		validation.Field(&r.Gender,
			validation.Required.Error("gender is required"),
			validation.By(knownGender),
		),
		validation.Field(&r.Age,
			validation.Required.Error("age is required"),
			validation.Min(MinAge).Error("age must be at least 12"),
			validation.Max(MaxAge).Error("age must be at most 100"),
		),
		validation.Field(&r.Country,
			validation.Required.Error("country is required"),
			validation.Length(MinCountryLength, 0).Error("country must be at least 2 characters"),
		),
		validation.Field(&r.Genre,
			validation.Required.Error("genre is required"),
		),
	)
}

// AuthorResource is the wire shape of an author. book_count is
// computed at serialization time, never stored.
type AuthorResource struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Gender    string `json:"gender"`
	Age       int    `json:"age"`
	Country   string `json:"country"`
	Genre     string `json:"genre"`
	BookCount int    `json:"book_count"`
}

// EmbeddedAuthor is the author shape embedded in a book, without
// book_count so the embed costs no extra aggregate query.
type EmbeddedAuthor struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Gender  string `json:"gender"`
	Age     int    `json:"age"`
	Country string `json:"country"`
	Genre   string `json:"genre"`
}

func (a *Author) ToResource(bookCount int) *AuthorResource {
	return &AuthorResource{
		ID:        a.ID,
		Name:      a.Name,
		Gender:    a.Gender,
		Age:       a.Age,
		Country:   a.Country,
		Genre:     a.Genre,
		BookCount: bookCount,
	}
}

func (a *Author) ToEmbedded() *EmbeddedAuthor {
	return &EmbeddedAuthor{
		ID:      a.ID,
		Name:    a.Name,
		Gender:  a.Gender,
		Age:     a.Age,
		Country: a.Country,
		Genre:   a.Genre,
	}
}

// ToEntity converts the validated request into a new entity.
func (r *AuthorRequest) ToEntity() *Author {
	return &Author{
		Name:    r.Name,
		Gender:  r.Gender,
		Age:     r.Age,
		Country: r.Country,
		Genre:   r.Genre,
	}
}

// ApplyTo overwrites every request-supplied field on an existing
// entity. Updates are full replaces, not partial patches.
func (r *AuthorRequest) ApplyTo(a *Author) {
	a.Name = r.Name
	a.Gender = r.Gender
	a.Age = r.Age
	a.Country = r.Country
	a.Genre = r.Genre
}
