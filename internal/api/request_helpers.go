package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/phrazzld/taskr-api/internal/api/middleware"
	"github.com/phrazzld/taskr-api/internal/api/shared"
	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/service"
)

// requireUserID returns the authenticated user's ID or writes a 401.
// Protected routes always run behind the guard, so a miss here means the
// route table is wrong.
func requireUserID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, ok := middleware.GetUserID(r)
	if !ok {
		HandleAPIError(w, r, service.ErrMissingOwner)
		return uuid.Nil, false
	}
	return userID, true
}

// getPathID parses a positive integer path parameter.
func getPathID(r *http.Request, paramName string) (int64, error) {
	raw := chi.URLParam(r, paramName)
	if raw == "" {
		return 0, domain.NewValidationError(paramName, "is required", nil)
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		return 0, domain.NewValidationError(paramName, "must be a positive integer", nil)
	}
	return id, nil
}

// parseTaskListQuery reads and validates the listing parameters.
// Absent parameters stay unset; the service applies defaults.
func parseTaskListQuery(r *http.Request) (domain.TaskQuery, error) {
	values := r.URL.Query()
	var q TaskListQuery

	if v := values.Get("search"); v != "" {
		q.Search = &v
	}
	if v := values.Get("isComplete"); v != "" {
		b, err := strconv.ParseBool(strings.ToLower(v))
		if err != nil {
			return domain.TaskQuery{}, domain.NewValidationError("isComplete", "must be true or false", nil)
		}
		q.IsComplete = &b
	}
	q.SortBy = values.Get("sortBy")
	q.SortOrder = values.Get("sortOrder")

	for _, p := range []struct {
		name string
		dst  **int
	}{
		{"page", &q.Page},
		{"limit", &q.Limit},
	} {
		v := values.Get(p.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return domain.TaskQuery{}, domain.NewValidationError(p.name, "must be an integer", nil)
		}
		*p.dst = &n
	}

	if err := shared.ValidateRequest(&q); err != nil {
		return domain.TaskQuery{}, err
	}

	query := domain.TaskQuery{
		Search:     q.Search,
		IsComplete: q.IsComplete,
		SortBy:     domain.TaskSortField(q.SortBy),
		SortOrder:  domain.SortOrder(q.SortOrder),
	}
	if q.Page != nil {
		query.Page = *q.Page
	}
	if q.Limit != nil {
		query.Limit = *q.Limit
	}
	return query, nil
}
