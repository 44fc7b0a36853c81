package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"library-catalog/internal/domains/author"
	"library-catalog/internal/domains/author/handler"
	"library-catalog/internal/domains/author/service"
	"library-catalog/internal/shared/pagination"
)

// memoryAuthorRepo is an in-memory author.Repository for handler and
// service tests.
type memoryAuthorRepo struct {
	mu      sync.Mutex
	nextID  int64
	authors map[int64]author.Author

	// books per author id, for CountBooks and delete protection.
	bookCounts map[int64]int
}

func newMemoryAuthorRepo() *memoryAuthorRepo {
	return &memoryAuthorRepo{
		authors:    make(map[int64]author.Author),
		bookCounts: make(map[int64]int),
	}
}

func (r *memoryAuthorRepo) Create(_ context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now()
	stored := *a
	stored.ID = r.nextID
	stored.CreatedAt = now
	stored.UpdatedAt = now
	r.authors[stored.ID] = stored
	return &stored, nil
}

func (r *memoryAuthorRepo) GetByID(_ context.Context, id int64) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.authors[id]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *memoryAuthorRepo) GetPage(_ context.Context, page, perPage int) ([]author.Author, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	all := make([]author.Author, 0, len(r.authors))
	for _, a := range r.authors {
		all = append(all, a)
	}
	// Newest first, matching the listing order of the real store.
	sort.Slice(all, func(i, j int) bool { return all[i].ID > all[j].ID })

	start := (page - 1) * perPage
	if start >= len(all) {
		return []author.Author{}, int64(len(all)), nil
	}
	end := start + perPage
	if end > len(all) {
		end = len(all)
	}
	return all[start:end], int64(len(all)), nil
}

func (r *memoryAuthorRepo) Update(_ context.Context, a *author.Author) (*author.Author, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.authors[a.ID]
	if !ok {
		return nil, author.ErrAuthorNotFound
	}
	stored.Name = a.Name
	stored.Gender = a.Gender
	stored.Age = a.Age
	stored.Country = a.Country
	stored.Genre = a.Genre
	stored.UpdatedAt = time.Now()
	r.authors[a.ID] = stored
	return &stored, nil
}

func (r *memoryAuthorRepo) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.authors[id]; !ok {
		return author.ErrAuthorNotFound
	}
	if r.bookCounts[id] > 0 {
		return author.ErrAuthorHasBooks
	}
	delete(r.authors, id)
	return nil
}

func (r *memoryAuthorRepo) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, ok := r.authors[id]
	return ok, nil
}

func (r *memoryAuthorRepo) CountBooks(_ context.Context, authorID int64) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.bookCounts[authorID], nil
}

func newAuthorRouter(repo author.Repository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	h := handler.NewAuthorHandler(service.NewAuthorService(repo))

	router := gin.New()
	group := router.Group("/api/v1/authors")
	group.GET("", h.List)
	group.GET("/:id", h.Get)
	group.POST("", h.Create)
	group.PUT("/:id", h.Update)
	group.DELETE("/:id", h.Delete)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validAuthorPayload() map[string]interface{} {
	return map[string]interface{}{
		"name":    "Ursula K. Le Guin",
		"gender":  "female",
		"age":     88,
		"country": "United States",
		"genre":   "Science Fiction",
	}
}

func TestAuthorLifecycle(t *testing.T) {
	repo := newMemoryAuthorRepo()
	router := newAuthorRouter(repo)

	// Create.
	w := doJSON(t, router, http.MethodPost, "/api/v1/authors", validAuthorPayload())
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var created author.AuthorResource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Ursula K. Le Guin", created.Name)
	assert.Equal(t, 0, created.BookCount)

	// Get.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/authors/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched author.AuthorResource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, created.ID, fetched.ID)

	// Update is a full replace.
	payload := validAuthorPayload()
	payload["country"] = "US"
	w = doJSON(t, router, http.MethodPut, fmt.Sprintf("/api/v1/authors/%d", created.ID), payload)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated author.AuthorResource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "US", updated.Country)

	// Delete, then the id is gone.
	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/authors/%d", created.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/authors/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorCreateEmptyPayload(t *testing.T) {
	router := newAuthorRouter(newMemoryAuthorRepo())

	w := doJSON(t, router, http.MethodPost, "/api/v1/authors", map[string]interface{}{})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	var body struct {
		Message string              `json:"message"`
		Errors  map[string][]string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "The given data was invalid.", body.Message)
	for _, field := range []string{"name", "gender", "age", "country", "genre"} {
		assert.Contains(t, body.Errors, field)
	}
}

func TestAuthorCreateInvalidDoesNotPersist(t *testing.T) {
	repo := newMemoryAuthorRepo()
	router := newAuthorRouter(repo)

	payload := validAuthorPayload()
	payload["age"] = 11
	w := doJSON(t, router, http.MethodPost, "/api/v1/authors", payload)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)

	assert.Empty(t, repo.authors)
}

func TestAuthorCreateMalformedJSON(t *testing.T) {
	router := newAuthorRouter(newMemoryAuthorRepo())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/authors", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAuthorGetInvalidID(t *testing.T) {
	router := newAuthorRouter(newMemoryAuthorRepo())

	for _, path := range []string{"/api/v1/authors/abc", "/api/v1/authors/0", "/api/v1/authors/-3"} {
		w := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusNotFound, w.Code, path)
	}
}

func TestAuthorUpdateMissing(t *testing.T) {
	router := newAuthorRouter(newMemoryAuthorRepo())

	w := doJSON(t, router, http.MethodPut, "/api/v1/authors/99", validAuthorPayload())
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAuthorDeleteMissing(t *testing.T) {
	router := newAuthorRouter(newMemoryAuthorRepo())

	// Deleting a missing id reports 404, repeatedly.
	for i := 0; i < 2; i++ {
		w := doJSON(t, router, http.MethodDelete, "/api/v1/authors/99", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	}
}

func TestAuthorBookCount(t *testing.T) {
	repo := newMemoryAuthorRepo()
	router := newAuthorRouter(repo)

	w := doJSON(t, router, http.MethodPost, "/api/v1/authors", validAuthorPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created author.AuthorResource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	repo.bookCounts[created.ID] = 3

	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/authors/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var fetched author.AuthorResource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &fetched))
	assert.Equal(t, 3, fetched.BookCount)
}

func TestAuthorDeleteWithBooksConflicts(t *testing.T) {
	repo := newMemoryAuthorRepo()
	router := newAuthorRouter(repo)

	w := doJSON(t, router, http.MethodPost, "/api/v1/authors", validAuthorPayload())
	require.Equal(t, http.StatusCreated, w.Code)
	var created author.AuthorResource
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	repo.bookCounts[created.ID] = 1

	w = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/api/v1/authors/%d", created.ID), nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// Still there.
	w = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/v1/authors/%d", created.ID), nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthorListPagination(t *testing.T) {
	repo := newMemoryAuthorRepo()
	router := newAuthorRouter(repo)

	for i := 0; i < 12; i++ {
		payload := validAuthorPayload()
		payload["name"] = fmt.Sprintf("Author %02d", i+1)
		w := doJSON(t, router, http.MethodPost, "/api/v1/authors", payload)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, router, http.MethodGet, "/api/v1/authors", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var page pagination.Page[author.AuthorResource]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	require.Len(t, page.Data, 10)
	assert.Equal(t, "Author 12", page.Data[0].Name, "newest first")
	assert.Equal(t, int64(12), page.Meta.Total)
	assert.Equal(t, 1, page.Meta.CurrentPage)
	assert.Equal(t, 2, page.Meta.LastPage)
	require.NotNil(t, page.Meta.From)
	require.NotNil(t, page.Meta.To)
	assert.Equal(t, 1, *page.Meta.From)
	assert.Equal(t, 10, *page.Meta.To)

	// Previous, 1, 2, Next.
	require.Len(t, page.Meta.Links, 4)
	assert.Nil(t, page.Meta.Links[0].URL)
	assert.True(t, page.Meta.Links[1].Active)
	require.NotNil(t, page.Meta.Links[3].URL)

	// Page 2 via the Next link's URL shape.
	w = doJSON(t, router, http.MethodGet, "/api/v1/authors?page=2", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &page))

	assert.Len(t, page.Data, 2)
	assert.Equal(t, 2, page.Meta.CurrentPage)
	assert.Nil(t, page.Meta.Links[len(page.Meta.Links)-1].URL, "Next disabled on the last page")
}
