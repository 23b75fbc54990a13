// Package pagination parses page/limit query parameters and builds paginated
// responses.
package pagination

import (
	"errors"
	"net/http"
	"net/url"
	"strconv"
)

const (
	DefaultLimit = 6
	MaxLimit     = 40
)

var (
	ErrInvalidPage = errors.New("invalid page")
)

type Params struct {
	Page  int
	Limit int
}

func (p Params) Offset() int32 {
	return int32((p.Page - 1) * p.Limit)
}

func (p Params) Limit32() int32 {
	return int32(p.Limit)
}

// Page is the body of every paginated response.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// Parse reads page and limit from the query string. A missing or
// non-positive limit falls back to DefaultLimit; larger limits are capped at
// MaxLimit. The page must be a positive integer.
func Parse(r *http.Request) (Params, error) {
	query := r.URL.Query()
	params := Params{Page: 1, Limit: DefaultLimit}

	if raw := query.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return Params{}, ErrInvalidPage
		}
		params.Page = page
	}

	if raw := query.Get("limit"); raw != "" {
		if limit, err := strconv.Atoi(raw); err == nil && limit > 0 {
			params.Limit = min(limit, MaxLimit)
		}
	}
	return params, nil
}

// New builds the page for results out of count items. Requesting a page past
// the last one is ErrInvalidPage, except for the first page of an empty set.
func New[T any](r *http.Request, params Params, count int64, results []T) (Page[T], error) {
	if params.Page > 1 && int64(params.Offset()) >= count {
		return Page[T]{}, ErrInvalidPage
	}
	if results == nil {
		results = []T{}
	}

	page := Page[T]{Count: count, Results: results}
	if int64(params.Page*params.Limit) < count {
		next := pageURL(r, params.Page+1)
		page.Next = &next
	}
	if params.Page > 1 {
		prev := pageURL(r, params.Page-1)
		page.Previous = &prev
	}
	return page, nil
}

func pageURL(r *http.Request, page int) string {
	u := url.URL{
		Scheme: "http",
		Host:   r.Host,
		Path:   r.URL.Path,
	}
	if r.TLS != nil || r.Header.Get("X-Forwarded-Proto") == "https" {
		u.Scheme = "https"
	}

	query := r.URL.Query()
	if page == 1 {
		query.Del("page")
	} else {
		query.Set("page", strconv.Itoa(page))
	}
	u.RawQuery = query.Encode()
	return u.String()
}
