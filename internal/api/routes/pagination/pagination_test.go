package pagination

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		query   string
		want    Params
		wantErr bool
	}{
		{name: "defaults", query: "", want: Params{Page: 1, Limit: DefaultLimit}},
		{name: "explicit", query: "page=3&limit=10", want: Params{Page: 3, Limit: 10}},
		{name: "limit capped", query: "limit=500", want: Params{Page: 1, Limit: MaxLimit}},
		{name: "bad limit ignored", query: "limit=abc", want: Params{Page: 1, Limit: DefaultLimit}},
		{name: "zero limit ignored", query: "limit=0", want: Params{Page: 1, Limit: DefaultLimit}},
		{name: "bad page", query: "page=abc", wantErr: true},
		{name: "zero page", query: "page=0", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodGet, "/api/recipes?"+tt.query, nil)
			got, err := Parse(r)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPage) {
					t.Errorf("Parse() error = %v, want ErrInvalidPage", err)
				}
				return
			}
			if err != nil || got != tt.want {
				t.Errorf("Parse() = %+v, %v; want %+v", got, err, tt.want)
			}
		})
	}
}

func TestParams_Offset(t *testing.T) {
	if got := (Params{Page: 3, Limit: 6}).Offset(); got != 12 {
		t.Errorf("Offset() = %d, want 12", got)
	}
}

func TestNew(t *testing.T) {
	t.Run("middle page links both ways", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "http://example.com/api/recipes?page=2&limit=2&tags=lunch", nil)
		page, err := New(r, Params{Page: 2, Limit: 2}, 5, []int{3, 4})
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if page.Next == nil || *page.Next != "http://example.com/api/recipes?limit=2&page=3&tags=lunch" {
			t.Errorf("next = %v", page.Next)
		}
		if page.Previous == nil || *page.Previous != "http://example.com/api/recipes?limit=2&tags=lunch" {
			t.Errorf("previous = %v", page.Previous)
		}
	})

	t.Run("empty first page", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		page, err := New[int](r, Params{Page: 1, Limit: 6}, 0, nil)
		if err != nil {
			t.Fatalf("New() error = %v", err)
		}
		if page.Results == nil || page.Next != nil || page.Previous != nil {
			t.Errorf("page = %+v", page)
		}
	})

	t.Run("past the end", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/api/users?page=4", nil)
		if _, err := New[int](r, Params{Page: 4, Limit: 6}, 10, nil); !errors.Is(err, ErrInvalidPage) {
			t.Errorf("New() error = %v, want ErrInvalidPage", err)
		}
	})
}
