package pagination

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// DefaultPerPage is the fixed page size of every catalog listing.
const DefaultPerPage = 10

// Link is one step of the pager: Previous, a numbered page, or Next.
// URL is null when the step is disabled; Active marks the current page.
type Link struct {
	URL    *string `json:"url"`
	Label  string  `json:"label"`
	Active bool    `json:"active"`
}

// Meta describes the slice of the listing a page covers. Clients must
// navigate exclusively through Links; they never construct page URLs.
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

// Page is the list envelope: items plus pagination metadata.
type Page[T any] struct {
	Data []T  `json:"data"`
	Meta Meta `json:"meta"`
}

// ParsePage reads the ?page query parameter, defaulting to 1.
func ParsePage(c *gin.Context) int {
	page := 1
	if pageStr := c.Query("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}
	return page
}

// BaseURL rebuilds the absolute listing URL from the request, so link
// URLs stay valid for whichever host the client reached us on.
func BaseURL(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if proto := c.GetHeader("X-Forwarded-Proto"); proto != "" {
		scheme = proto
	}
	return fmt.Sprintf("%s://%s%s", scheme, c.Request.Host, c.Request.URL.Path)
}

// NewMeta builds the metadata for one page of a listing.
func NewMeta(path string, page, perPage int, total int64) Meta {
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}

	meta := Meta{
		CurrentPage: page,
		LastPage:    lastPage,
		Path:        path,
		PerPage:     perPage,
		Total:       total,
	}

	if total > 0 && page <= lastPage {
		from := (page-1)*perPage + 1
		to := page * perPage
		if int64(to) > total {
			to = int(total)
		}
		meta.From = &from
		meta.To = &to
	}

	meta.Links = buildLinks(path, page, lastPage)
	return meta
}

func pageURL(path string, page int) *string {
	u := fmt.Sprintf("%s?page=%d", path, page)
	return &u
}

// buildLinks emits Previous, every numbered page, then Next. Labels
// match the original API, HTML entities included; clients decode them
// before display.
func buildLinks(path string, page, lastPage int) []Link {
	links := make([]Link, 0, lastPage+2)

	prev := Link{Label: "&laquo; Previous"}
	if page > 1 {
		prev.URL = pageURL(path, page-1)
	}
	links = append(links, prev)

	for p := 1; p <= lastPage; p++ {
		links = append(links, Link{
			URL:    pageURL(path, p),
			Label:  strconv.Itoa(p),
			Active: p == page,
		})
	}

	next := Link{Label: "Next &raquo;"}
	if page < lastPage {
		next.URL = pageURL(path, page+1)
	}
	links = append(links, next)

	return links
}
