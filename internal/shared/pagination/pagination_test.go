package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetaMiddlePage(t *testing.T) {
	meta := NewMeta("http://localhost/api/v1/authors", 2, 10, 25)

	assert.Equal(t, 2, meta.CurrentPage)
	assert.Equal(t, 3, meta.LastPage)
	assert.Equal(t, 10, meta.PerPage)
	assert.Equal(t, int64(25), meta.Total)
	require.NotNil(t, meta.From)
	require.NotNil(t, meta.To)
	assert.Equal(t, 11, *meta.From)
	assert.Equal(t, 20, *meta.To)

	// Previous, 1, 2, 3, Next.
	require.Len(t, meta.Links, 5)

	prev := meta.Links[0]
	assert.Equal(t, "&laquo; Previous", prev.Label)
	require.NotNil(t, prev.URL)
	assert.Equal(t, "http://localhost/api/v1/authors?page=1", *prev.URL)
	assert.False(t, prev.Active)

	assert.Equal(t, "2", meta.Links[2].Label)
	assert.True(t, meta.Links[2].Active)
	assert.False(t, meta.Links[1].Active)
	assert.False(t, meta.Links[3].Active)

	next := meta.Links[4]
	assert.Equal(t, "Next &raquo;", next.Label)
	require.NotNil(t, next.URL)
	assert.Equal(t, "http://localhost/api/v1/authors?page=3", *next.URL)
}

func TestNewMetaFirstAndLastPage(t *testing.T) {
	first := NewMeta("http://localhost/api/v1/books", 1, 10, 12)
	assert.Equal(t, 2, first.LastPage)
	assert.Nil(t, first.Links[0].URL, "Previous is disabled on page 1")
	require.NotNil(t, first.From)
	require.NotNil(t, first.To)
	assert.Equal(t, 1, *first.From)
	assert.Equal(t, 10, *first.To)

	last := NewMeta("http://localhost/api/v1/books", 2, 10, 12)
	assert.Nil(t, last.Links[len(last.Links)-1].URL, "Next is disabled on the last page")
	require.NotNil(t, last.From)
	require.NotNil(t, last.To)
	assert.Equal(t, 11, *last.From)
	assert.Equal(t, 12, *last.To)
}

func TestNewMetaEmptyListing(t *testing.T) {
	meta := NewMeta("http://localhost/api/v1/authors", 1, 10, 0)

	assert.Equal(t, 1, meta.LastPage, "an empty listing still has one page")
	assert.Nil(t, meta.From)
	assert.Nil(t, meta.To)

	// Previous, 1, Next with both arrows disabled.
	require.Len(t, meta.Links, 3)
	assert.Nil(t, meta.Links[0].URL)
	assert.True(t, meta.Links[1].Active)
	assert.Nil(t, meta.Links[2].URL)
}

func TestNewMetaExactMultiple(t *testing.T) {
	meta := NewMeta("http://localhost/api/v1/authors", 1, 10, 20)
	assert.Equal(t, 2, meta.LastPage, "20 rows at 10 per page is exactly 2 pages")
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=0", 1},
		{"?page=-2", 1},
		{"?page=abc", 1},
	}

	for _, tc := range cases {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/api/v1/authors"+tc.query, nil)
		assert.Equal(t, tc.want, ParsePage(c), "query %q", tc.query)
	}
}

func TestBaseURL(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/api/v1/authors?page=2", nil)
	c.Request.Host = "catalog.test"
	assert.Equal(t, "http://catalog.test/api/v1/authors", BaseURL(c))

	c.Request.Header.Set("X-Forwarded-Proto", "https")
	assert.Equal(t, "https://catalog.test/api/v1/authors", BaseURL(c))
}
