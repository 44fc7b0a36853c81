package client

import "context"

// AuthorsController drives the authors list view: one page of items,
// pagination metadata, a whole-view loading flag, and a single
// create/edit modal. After every mutation the list is re-fetched from
// page 1 of the base listing; local state is never patched in place.
type AuthorsController struct {
	client *Client

	Authors []Author
	Meta    *Meta

	// Loading covers the entire view; while set, user-initiated
	// mutations are rejected with ErrViewBusy.
	Loading bool

	// Modal state.
	ModalOpen bool
	EditMode  bool
	Current   *Author
	Form      AuthorForm

	// LastError records the outcome of the most recent operation so
	// the view can surface it instead of failing silently.
	LastError error
}

func NewAuthorsController(c *Client) *AuthorsController {
	return &AuthorsController{client: c}
}

// Load fetches page 1 of the listing; called on mount.
func (ac *AuthorsController) Load(ctx context.Context) error {
	return ac.refresh(ctx, ac.client.AuthorsBaseURL())
}

// refresh replaces both the item list and the pagination metadata
// from one fetch. On failure the prior (possibly stale) view state is
// kept and the loading indicator cleared.
func (ac *AuthorsController) refresh(ctx context.Context, url string) error {
	ac.Loading = true

	page, err := ac.client.AuthorsPage(ctx, url)
	ac.Loading = false
	ac.LastError = err
	if err != nil {
		return err
	}

	ac.Authors = page.Data
	ac.Meta = &page.Meta
	return nil
}

// OpenPage follows a pager link. Links with a null url (disabled
// steps) or marking the current page are ignored.
func (ac *AuthorsController) OpenPage(ctx context.Context, link Link) error {
	if link.URL == nil || link.Active {
		return nil
	}
	return ac.refresh(ctx, *link.URL)
}

// OpenCreate opens the modal in create mode with an empty form.
func (ac *AuthorsController) OpenCreate() {
	ac.ModalOpen = true
	ac.EditMode = false
	ac.Current = nil
	ac.Form = AuthorForm{}
}

// OpenEdit opens the modal in edit mode, pre-populating every field
// from the selected author.
func (ac *AuthorsController) OpenEdit(a Author) {
	ac.ModalOpen = true
	ac.EditMode = true
	ac.Current = &a
	ac.Form = AuthorForm{
		Name:    a.Name,
		Gender:  a.Gender,
		Age:     a.Age,
		Country: a.Country,
		Genre:   a.Genre,
	}
}

// CloseModal dismisses the modal and resets the form.
func (ac *AuthorsController) CloseModal() {
	ac.ModalOpen = false
	ac.EditMode = false
	ac.Current = nil
	ac.Form = AuthorForm{}
}

// Submit sends the form as a create or update depending on the modal
// mode. Whatever the outcome, the modal closes, the form resets, and
// the list is re-fetched from page 1 of the base listing; the outcome
// itself is returned and kept on LastError for the view.
func (ac *AuthorsController) Submit(ctx context.Context) error {
	if ac.Loading {
		return ErrViewBusy
	}

	ac.Loading = true
	var err error
	if ac.EditMode && ac.Current != nil {
		_, err = ac.client.UpdateAuthor(ctx, ac.Current.ID, ac.Form)
	} else {
		_, err = ac.client.CreateAuthor(ctx, ac.Form)
	}
	ac.Loading = false

	ac.CloseModal()
	if refreshErr := ac.refresh(ctx, ac.client.AuthorsBaseURL()); err == nil {
		err = refreshErr
	}

	ac.LastError = err
	return err
}

// Delete removes an author after the confirmation step and re-fetches
// the base list. Without confirmation nothing is issued.
func (ac *AuthorsController) Delete(ctx context.Context, id int64, confirm func() bool) error {
	if ac.Loading {
		return ErrViewBusy
	}
	if confirm == nil || !confirm() {
		return nil
	}

	ac.Loading = true
	err := ac.client.DeleteAuthor(ctx, id)
	ac.Loading = false

	if refreshErr := ac.refresh(ctx, ac.client.AuthorsBaseURL()); err == nil {
		err = refreshErr
	}

	ac.LastError = err
	return err
}
