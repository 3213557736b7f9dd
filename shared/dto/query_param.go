package dto

import (
	"net/http"
	"strconv"
	"strings"
)

const (
	SortDirAsc  = "ASC"
	SortDirDesc = "DESC"
)

const (
	requestParamPage  = "page"
	requestParamLimit = "limit"

	DefaultValuePage  = 1
	DefaultValueLimit = 50
)

type QueryParams struct {
	Page    int    `json:"page"     validate:"omitempty"`
	Limit   int    `json:"limit"    validate:"omitempty"`
	SortBy  string `json:"-"`
	SortDir string `json:"-"        validate:"omitempty,oneof=ASC DESC"`
}

// FromRequest populates pagination from the HTTP request.
// Sorting is never taken from the request; callers set SortBy to a fixed column list.
func (q *QueryParams) FromRequest(r *http.Request, defaultRequest bool) {
	queryParams := r.URL.Query()

	if page := queryParams.Get(requestParamPage); page != "" {
		if pageInt, err := strconv.Atoi(page); err == nil && pageInt > 0 {
			q.Page = pageInt
		}
	}

	if limit := queryParams.Get(requestParamLimit); limit != "" {
		if limitInt, err := strconv.Atoi(limit); err == nil && limitInt > 0 {
			q.Limit = limitInt
		}
	}

	if defaultRequest {
		if q.Page == 0 {
			q.Page = DefaultValuePage
		}

		if q.Limit == 0 {
			q.Limit = DefaultValueLimit
		}
	}
}

// Ordered returns params that sort by the given expression and direction, unpaginated.
func Ordered(sortBy, sortDir string) QueryParams {
	return QueryParams{
		SortBy:  sortBy,
		SortDir: strings.ToUpper(sortDir),
	}
}
