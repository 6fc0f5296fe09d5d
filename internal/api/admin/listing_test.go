package admin

import (
	"testing"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/pkg/config"
)

var testAdminConfig = &config.AdminConfig{
	DefaultPageSize: 50,
	MaxPageSize:     500,
}

var testSurface = surface{
	filterFields: []string{"status", "is_featured"},
	searchFields: []string{"title", "description"},
	orderFields:  []string{"title", "created_at"},
	defaultOrder: "created_at",
	defaultDesc:  true,
}

func TestBuildParams(t *testing.T) {
	tests := []struct {
		name    string
		req     ListRequest
		wantErr bool
		check   func(t *testing.T, p db.ListParams)
	}{
		{
			name: "defaults applied",
			req:  ListRequest{},
			check: func(t *testing.T, p db.ListParams) {
				if p.Page != 1 || p.PageSize != 50 {
					t.Errorf("pagination = page %d size %d, want 1/50", p.Page, p.PageSize)
				}
				if p.OrderBy != "created_at" || !p.Descending {
					t.Errorf("order = %s desc %v, want created_at DESC", p.OrderBy, p.Descending)
				}
			},
		},
		{
			name: "page size clamped to maximum",
			req:  ListRequest{PageSize: 10000},
			check: func(t *testing.T, p db.ListParams) {
				if p.PageSize != 500 {
					t.Errorf("PageSize = %d, want 500", p.PageSize)
				}
			},
		},
		{
			name: "allowed filter and order",
			req: ListRequest{
				Filters: map[string]interface{}{"status": "published"},
				OrderBy: "title",
			},
			check: func(t *testing.T, p db.ListParams) {
				if p.Filters["status"] != "published" {
					t.Errorf("Filters = %v", p.Filters)
				}
				if p.OrderBy != "title" || p.Descending {
					t.Errorf("order = %s desc %v, want title ASC", p.OrderBy, p.Descending)
				}
			},
		},
		{
			name:    "filter outside allowlist",
			req:     ListRequest{Filters: map[string]interface{}{"password": "x"}},
			wantErr: true,
		},
		{
			name:    "order outside allowlist",
			req:     ListRequest{OrderBy: "id; DROP TABLE users"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := buildParams(&tt.req, testSurface, testAdminConfig)
			if tt.wantErr {
				if !db.IsValidation(err) {
					t.Errorf("buildParams() error = %v, want ValidationError", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("buildParams() error = %v", err)
			}
			tt.check(t, params)
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name string
		in   string
		max  int
		want string
	}{
		{name: "short string unchanged", in: "hello", max: 50, want: "hello"},
		{name: "exact length unchanged", in: "12345", max: 5, want: "12345"},
		{name: "long string truncated", in: "a longer comment body", max: 8, want: "a longer..."},
		{name: "empty string", in: "", max: 5, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := truncate(tt.in, tt.max); got != tt.want {
				t.Errorf("truncate(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
			}
		})
	}
}
