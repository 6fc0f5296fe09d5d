package db

import (
	"strings"

	"gorm.io/gorm"
)

// ListParams describes a read-model query: field filters, free-text search
// over named columns, ordering and pagination. Column names must come from
// a caller-side allowlist; they are interpolated into SQL.
type ListParams struct {
	Page         int
	PageSize     int
	OrderBy      string
	Descending   bool
	Filters      map[string]interface{}
	Search       string
	SearchFields []string
}

// Apply attaches the listing clauses to a query
func (p ListParams) Apply(q *gorm.DB) *gorm.DB {
	for field, value := range p.Filters {
		q = q.Where(field+" = ?", value)
	}

	if p.Search != "" && len(p.SearchFields) > 0 {
		pattern := "%" + escapeLike(p.Search) + "%"
		var clauses []string
		var args []interface{}
		for _, field := range p.SearchFields {
			clauses = append(clauses, field+" ILIKE ?")
			args = append(args, pattern)
		}
		q = q.Where(strings.Join(clauses, " OR "), args...)
	}

	if p.OrderBy != "" {
		order := p.OrderBy
		if p.Descending {
			order += " DESC"
		}
		q = q.Order(order)
	}

	if p.PageSize > 0 {
		page := p.Page
		if page < 1 {
			page = 1
		}
		q = q.Offset((page - 1) * p.PageSize).Limit(p.PageSize)
	}

	return q
}

// Count returns the total row count for the filters and search, ignoring
// pagination. The clauses go onto a session clone, leaving the caller's
// chain untouched for the subsequent Apply.
func (p ListParams) Count(q *gorm.DB) (int64, error) {
	counted := ListParams{
		Filters:      p.Filters,
		Search:       p.Search,
		SearchFields: p.SearchFields,
	}
	var total int64
	if err := counted.Apply(q.Session(&gorm.Session{})).Count(&total).Error; err != nil {
		return 0, Translate(err)
	}
	return total, nil
}

func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, "%", `\%`)
	s = strings.ReplaceAll(s, "_", `\_`)
	return s
}
