package admin

import (
	"encoding/json"
	"fmt"

	"github.com/ideahub/ideahub/internal/db"
	"github.com/ideahub/ideahub/pkg/config"
)

// ListRequest is the generic read-model query accepted by admin list
// methods: field filters, free-text search, ordering and pagination
type ListRequest struct {
	Page       int                    `json:"page"`
	PageSize   int                    `json:"page_size"`
	OrderBy    string                 `json:"order_by"`
	Descending bool                   `json:"descending"`
	Filters    map[string]interface{} `json:"filters"`
	Search     string                 `json:"search"`
}

// ListResponse wraps a page of results
type ListResponse struct {
	Total    int64       `json:"total"`
	Page     int         `json:"page"`
	PageSize int         `json:"page_size"`
	Results  interface{} `json:"results"`
}

// surface declares the queryable fields of one admin list view. Field sets
// are allowlists; requests naming other columns fail with ValidationError.
type surface struct {
	filterFields []string
	searchFields []string
	orderFields  []string
	defaultOrder string
	defaultDesc  bool
}

func contains(fields []string, name string) bool {
	for _, f := range fields {
		if f == name {
			return true
		}
	}
	return false
}

// buildParams validates a list request against a surface and converts it to
// store listing parameters
func buildParams(req *ListRequest, s surface, cfg *config.AdminConfig) (db.ListParams, error) {
	params := db.ListParams{
		Page:         req.Page,
		PageSize:     req.PageSize,
		Search:       req.Search,
		SearchFields: s.searchFields,
	}

	if params.PageSize <= 0 {
		params.PageSize = cfg.DefaultPageSize
	}
	if params.PageSize > cfg.MaxPageSize {
		params.PageSize = cfg.MaxPageSize
	}
	if params.Page < 1 {
		params.Page = 1
	}

	if len(req.Filters) > 0 {
		params.Filters = make(map[string]interface{}, len(req.Filters))
		for field, value := range req.Filters {
			if !contains(s.filterFields, field) {
				return db.ListParams{}, &db.ValidationError{
					Field:  field,
					Reason: "is not a filterable field",
				}
			}
			params.Filters[field] = value
		}
	}

	switch {
	case req.OrderBy == "":
		params.OrderBy = s.defaultOrder
		params.Descending = s.defaultDesc
	case contains(s.orderFields, req.OrderBy):
		params.OrderBy = req.OrderBy
		params.Descending = req.Descending
	default:
		return db.ListParams{}, &db.ValidationError{
			Field:  req.OrderBy,
			Reason: "is not an orderable field",
		}
	}

	return params, nil
}

// decodeParams unmarshals JSON-RPC params into a typed request
func decodeParams(raw json.RawMessage, out interface{}) error {
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("invalid params: %w", err)
	}
	return nil
}

// truncate shortens a string for list display
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
