package dto_test

import (
	"cowork/shared/dto"
	"cowork/shared/model"
	"net/http"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: createdAt})

	assert.NotEmpty(t, metadata.CreatedAt)

	parsed, err := time.Parse(time.RFC3339, metadata.CreatedAt)
	assert.NoError(t, err)
	assert.True(t, createdAt.Equal(parsed))
}

func TestFilter_GetWhereClause(t *testing.T) {
	tests := []struct {
		name      string
		filter    dto.Filter
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "equal with table",
			filter:    dto.Filter{Field: "room_id", Value: int64(3), Operator: dto.FilterOperatorEq, Table: "room_reservations"},
			wantWhere: "room_reservations.room_id = :room_id",
			wantArgs:  map[string]any{"room_id": int64(3)},
		},
		{
			name:      "custom arg name",
			filter:    dto.Filter{ArgName: "slot_shift", Field: "shift", Value: "morning", Operator: dto.FilterOperatorEq},
			wantWhere: "shift = :slot_shift",
			wantArgs:  map[string]any{"slot_shift": "morning"},
		},
		{
			name:      "between",
			filter:    dto.Filter{Field: "reservation_date", Value: dto.Between("2024-06-01", "2024-06-30"), Operator: dto.FilterOperatorBetween},
			wantWhere: "reservation_date BETWEEN :reservation_date_from AND :reservation_date_to",
			wantArgs:  map[string]any{"reservation_date_from": "2024-06-01", "reservation_date_to": "2024-06-30"},
		},
		{
			name:      "between with malformed value",
			filter:    dto.Filter{Field: "reservation_date", Value: "2024-06-01", Operator: dto.FilterOperatorBetween},
			wantWhere: "",
			wantArgs:  map[string]any{},
		},
		{
			name:      "in with slice",
			filter:    dto.Filter{Field: "shift", Value: []string{"morning", "evening"}, Operator: dto.FilterOperatorIn},
			wantWhere: "shift IN (:shift_0, :shift_1) ",
			wantArgs:  map[string]any{"shift_0": "morning", "shift_1": "evening"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, args := tt.filter.GetWhereClause()

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.And(
		dto.Filter{Field: "room_id", Value: int64(1), Operator: dto.FilterOperatorEq},
		dto.Filter{Field: "shift", Value: "evening", Operator: dto.FilterOperatorEq},
	)

	where, args := group.GetWhereClause()

	assert.Equal(t, "(room_id = :room_id AND shift = :shift)", where)
	assert.Equal(t, map[string]any{"room_id": int64(1), "shift": "evening"}, args)

	empty := dto.FilterGroup{}
	where, args = empty.GetWhereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name:           "with valid parameters",
			queryParams:    map[string]string{"page": "2", "limit": "20"},
			defaultRequest: false,
			expected:       dto.QueryParams{Page: 2, Limit: 20},
		},
		{
			name:           "defaults when missing",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: dto.DefaultValuePage, Limit: dto.DefaultValueLimit},
		},
		{
			name:           "no defaults when disabled",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
		{
			name:           "invalid values fall back to defaults",
			queryParams:    map[string]string{"page": "-1", "limit": "abc"},
			defaultRequest: true,
			expected:       dto.QueryParams{Page: dto.DefaultValuePage, Limit: dto.DefaultValueLimit},
		},
		{
			name:           "sort is never read from the request",
			queryParams:    map[string]string{"sort_by": "name; DROP TABLE rooms", "sort_dir": "ASC"},
			defaultRequest: false,
			expected:       dto.QueryParams{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, err := url.Parse("http://example.com/v1/rooms")
			assert.NoError(t, err)

			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			req, err := http.NewRequest(http.MethodGet, u.String(), nil)
			assert.NoError(t, err)

			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			assert.Equal(t, tt.expected, *queryParams)
		})
	}
}

func TestOrdered(t *testing.T) {
	params := dto.Ordered("rooms.id", "asc")

	assert.Equal(t, "rooms.id", params.SortBy)
	assert.Equal(t, dto.SortDirAsc, params.SortDir)
	assert.Zero(t, params.Page)
	assert.Zero(t, params.Limit)
}
