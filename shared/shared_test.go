package shared_test

import (
	"context"
	"cowork/shared"
	cacheMocks "cowork/shared/cache/mocks"
	"cowork/shared/dto"
	"errors"
	"reflect"
	"testing"

	"go.uber.org/mock/gomock"
)

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name     string
		total    int
		limit    int
		expected int
	}{
		{
			name:     "zero total returns 1",
			total:    0,
			limit:    10,
			expected: 1,
		},
		{
			name:     "zero limit returns 1",
			total:    100,
			limit:    0,
			expected: 1,
		},
		{
			name:     "exact division",
			total:    100,
			limit:    10,
			expected: 10,
		},
		{
			name:     "division with remainder",
			total:    101,
			limit:    10,
			expected: 11,
		},
		{
			name:     "limit greater than total",
			total:    5,
			limit:    50,
			expected: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.CalculateTotalPage(tt.total, tt.limit)
			if result != tt.expected {
				t.Errorf("expected %d, got %d", tt.expected, result)
			}
		})
	}
}

func TestTransformFields(t *testing.T) {
	type renameRequest struct {
		EventName string  `db:"event_name"`
		Note      *string `db:"note"`
		Start     string  `db:"-"`
		Untagged  string
	}

	note := "moved to the big room"

	tests := []struct {
		name     string
		data     interface{}
		expected map[string]any
	}{
		{
			name: "populated fields",
			data: renameRequest{
				EventName: "Team Sync",
				Note:      &note,
				Start:     "06-01-2024",
				Untagged:  "ignored",
			},
			expected: map[string]any{
				"event_name": "Team Sync",
				"note":       note,
			},
		},
		{
			name:     "all zero values",
			data:     renameRequest{},
			expected: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := shared.TransformFields(tt.data)

			if !reflect.DeepEqual(result, tt.expected) {
				t.Errorf("expected %v, got %v", tt.expected, result)
			}
		})
	}
}

func TestFilterByID(t *testing.T) {
	result := shared.FilterByID(42, "folio", "room_reservations")

	expected := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "folio",
				Value:    int64(42),
				Operator: dto.FilterOperatorEq,
				Table:    "room_reservations",
			},
		},
	}

	if !reflect.DeepEqual(result, expected) {
		t.Errorf("expected %+v, got %+v", expected, result)
	}

	where, args := result.GetWhereClause()
	if where == "" {
		t.Error("expected a where clause")
	}

	if len(args) != 1 {
		t.Errorf("expected 1 argument, got %d", len(args))
	}
}

func TestBuildCacheKey(t *testing.T) {
	if key := shared.BuildCacheKey("room:get", int64(7)); key != "room:get:7" {
		t.Errorf("expected room:get:7, got %s", key)
	}

	key := shared.BuildCacheKeyWithQuery("client:gets", dto.QueryParams{Page: 2, Limit: 50})
	if key != "client:gets:2:50" {
		t.Errorf("expected client:gets:2:50, got %s", key)
	}
}

func TestInvalidateCaches(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	mockCache.EXPECT().Clear(gomock.Any(), "room:gets*").Return(nil)
	shared.InvalidateCaches(context.Background(), mockCache, "room:gets")

	// errors are logged, not returned
	mockCache.EXPECT().Clear(gomock.Any(), "client:gets*").Return(errors.New("redis down"))
	shared.InvalidateCaches(context.Background(), mockCache, "client:gets")
}
