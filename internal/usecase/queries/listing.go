package queries

import (
	"math"
	"strings"

	"hotel-booking/internal/pkg/errs"
)

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

type SortOrder int

const (
	Asc  SortOrder = 1
	Desc SortOrder = -1
)

func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(s) {
	case "", "desc":
		return Desc, nil
	case "asc":
		return Asc, nil
	default:
		return 0, errs.Validation("order must be asc or desc")
	}
}

// ListParams holds the paging, sorting and free-text part of a catalog listing.
type ListParams struct {
	Page      int
	Limit     int
	SortBy    string
	Order     SortOrder
	Search    string
	Amenities []string
}

// SortSpec is a whitelisted document field; stores append _id as a tiebreaker.
type SortSpec struct {
	Field string
	Order SortOrder
}

type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"total_pages"`
}

func NewPagination(total int64, page, limit int) Pagination {
	totalPages := 0
	if limit > 0 {
		totalPages = int(math.Ceil(float64(total) / float64(limit)))
	}
	return Pagination{Total: total, Page: page, Limit: limit, TotalPages: totalPages}
}

type Page[T any] struct {
	Data       []T        `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// Skip is the number of documents before the requested page.
func (p ListParams) Skip() int64 {
	return int64(p.Page-1) * int64(p.Limit)
}

// normalize applies defaults and resolves sortBy against the allowed field map.
func (p ListParams) normalize(allowed map[string]string, defaultSort string) (ListParams, SortSpec, error) {
	if p.Page == 0 {
		p.Page = DefaultPage
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Page < 1 {
		return p, SortSpec{}, errs.Validation("page must be at least 1")
	}
	if p.Limit < 1 || p.Limit > MaxLimit {
		return p, SortSpec{}, errs.Validationf("limit must be between 1 and %d", MaxLimit)
	}
	if p.Order == 0 {
		p.Order = Desc
	}
	if p.SortBy == "" {
		p.SortBy = defaultSort
	}
	field, ok := allowed[p.SortBy]
	if !ok {
		return p, SortSpec{}, errs.Validationf("cannot sort by %q", p.SortBy)
	}
	p.Search = strings.TrimSpace(p.Search)
	return p, SortSpec{Field: field, Order: p.Order}, nil
}

func validateRange(minV, maxV *float64, name string) error {
	if minV != nil && *minV < 0 {
		return errs.Validationf("min%s must be greater than or equal to 0", name)
	}
	if minV != nil && maxV != nil && *minV > *maxV {
		return errs.Validationf("min%s must not exceed max%s", name, name)
	}
	return nil
}
