package client

import "context"

// BooksController drives the books list view. It mirrors
// AuthorsController and additionally maintains the full author list
// backing the form's author selection control.
type BooksController struct {
	client *Client

	Books []Book
	Meta  *Meta

	// AuthorOptions backs the author select in the form; loaded by
	// walking every page of the authors listing.
	AuthorOptions []Author

	Loading bool

	ModalOpen bool
	EditMode  bool
	Current   *Book
	Form      BookForm

	LastError error
}

func NewBooksController(c *Client) *BooksController {
	return &BooksController{client: c}
}

// Load fetches page 1 of the book listing and the author options;
// called on mount.
func (bc *BooksController) Load(ctx context.Context) error {
	if err := bc.refresh(ctx, bc.client.BooksBaseURL()); err != nil {
		return err
	}

	authors, err := bc.client.AllAuthors(ctx)
	bc.LastError = err
	if err != nil {
		return err
	}
	bc.AuthorOptions = authors
	return nil
}

func (bc *BooksController) refresh(ctx context.Context, url string) error {
	bc.Loading = true

	page, err := bc.client.BooksPage(ctx, url)
	bc.Loading = false
	bc.LastError = err
	if err != nil {
		return err
	}

	bc.Books = page.Data
	bc.Meta = &page.Meta
	return nil
}

func (bc *BooksController) OpenPage(ctx context.Context, link Link) error {
	if link.URL == nil || link.Active {
		return nil
	}
	return bc.refresh(ctx, *link.URL)
}

func (bc *BooksController) OpenCreate() {
	bc.ModalOpen = true
	bc.EditMode = false
	bc.Current = nil
	bc.Form = BookForm{}
}

// OpenEdit pre-populates every field from the selected book; the
// author select is primed from the embedded author.
func (bc *BooksController) OpenEdit(b Book) {
	bc.ModalOpen = true
	bc.EditMode = true
	bc.Current = &b
	bc.Form = BookForm{
		Name: b.Name,
		ISBN: b.ISBN,
	}
	if b.Author != nil {
		bc.Form.AuthorID = b.Author.ID
	}
}

func (bc *BooksController) CloseModal() {
	bc.ModalOpen = false
	bc.EditMode = false
	bc.Current = nil
	bc.Form = BookForm{}
}

// Submit behaves exactly like the authors modal: create or update,
// then close, reset, and re-fetch page 1 of the base listing.
func (bc *BooksController) Submit(ctx context.Context) error {
	if bc.Loading {
		return ErrViewBusy
	}

	bc.Loading = true
	var err error
	if bc.EditMode && bc.Current != nil {
		_, err = bc.client.UpdateBook(ctx, bc.Current.ID, bc.Form)
	} else {
		_, err = bc.client.CreateBook(ctx, bc.Form)
	}
	bc.Loading = false

	bc.CloseModal()
	if refreshErr := bc.refresh(ctx, bc.client.BooksBaseURL()); err == nil {
		err = refreshErr
	}

	bc.LastError = err
	return err
}

func (bc *BooksController) Delete(ctx context.Context, id int64, confirm func() bool) error {
	if bc.Loading {
		return ErrViewBusy
	}
	if confirm == nil || !confirm() {
		return nil
	}

	bc.Loading = true
	err := bc.client.DeleteBook(ctx, id)
	bc.Loading = false

	if refreshErr := bc.refresh(ctx, bc.client.BooksBaseURL()); err == nil {
		err = refreshErr
	}

	bc.LastError = err
	return err
}
