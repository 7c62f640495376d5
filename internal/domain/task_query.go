package domain

import "math"

// TaskSortField names a task attribute that listings may be ordered by.
type TaskSortField string

// Sortable task fields.
const (
	SortByCreatedAt  TaskSortField = "createdAt"
	SortByUpdatedAt  TaskSortField = "updatedAt"
	SortByTitle      TaskSortField = "title"
	SortByIsComplete TaskSortField = "isComplete"
	SortByID         TaskSortField = "id"
)

// IsValid reports whether f is one of the sortable fields.
func (f TaskSortField) IsValid() bool {
	switch f {
	case SortByCreatedAt, SortByUpdatedAt, SortByTitle, SortByIsComplete, SortByID:
		return true
	}
	return false
}

// SortOrder is the direction of a listing.
type SortOrder string

// Sort directions.
const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// IsValid reports whether o is asc or desc.
func (o SortOrder) IsValid() bool {
	return o == SortAsc || o == SortDesc
}

// Listing defaults.
const (
	DefaultSortBy    = SortByCreatedAt
	DefaultSortOrder = SortAsc
	DefaultPage      = 1
	DefaultLimit     = 10

	// MaxLimit and MaxPage bound a listing so MaxPage*MaxLimit fits in an
	// int on every platform.
	MaxLimit = 100
	MaxPage  = 1_000_000
)

// TaskQuery describes one page of a user's task listing.
// Zero values are replaced by the listing defaults in WithDefaults.
type TaskQuery struct {
	Search     *string
	IsComplete *bool
	SortBy     TaskSortField
	SortOrder  SortOrder
	Page       int
	Limit      int
}

// WithDefaults returns a copy of q with unset or out-of-range fields
// replaced by the listing defaults.
func (q TaskQuery) WithDefaults() TaskQuery {
	if !q.SortBy.IsValid() {
		q.SortBy = DefaultSortBy
	}
	if !q.SortOrder.IsValid() {
		q.SortOrder = DefaultSortOrder
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Page > MaxPage {
		q.Page = MaxPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Limit > MaxLimit {
		q.Limit = MaxLimit
	}
	if q.Search != nil && *q.Search == "" {
		q.Search = nil
	}
	return q
}

// Offset is the number of matching tasks preceding the requested page.
func (q TaskQuery) Offset() int {
	if q.Page < 1 || q.Limit < 1 {
		return 0
	}
	if q.Page-1 > math.MaxInt/q.Limit {
		return math.MaxInt
	}
	return (q.Page - 1) * q.Limit
}

// PageMetadata describes where a page sits within the full result set.
type PageMetadata struct {
	Total           int  `json:"total"`
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPageMetadata derives pagination metadata from a total count.
// TotalPages is 0 when there are no matches or limit is not positive.
func NewPageMetadata(total, page, limit int) PageMetadata {
	totalPages := 0
	if total > 0 && limit > 0 {
		totalPages = total/limit + min(total%limit, 1)
	}

	// page*limit < total, compared without the multiplication.
	hasNext := total > 0
	if limit > 0 {
		hasNext = page < totalPages
	}

	return PageMetadata{
		Total:           total,
		Page:            page,
		Limit:           limit,
		TotalPages:      totalPages,
		HasNextPage:     hasNext,
		HasPreviousPage: page > 1,
	}
}

// TaskPage is one page of tasks plus its metadata.
type TaskPage struct {
	Data     []*Task      `json:"data"`
	Metadata PageMetadata `json:"metadata"`
}
