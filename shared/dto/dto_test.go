package dto_test

import (
	"net/http"
	"net/url"
	"staybook/shared/constant"
	"staybook/shared/dto"
	"staybook/shared/model"
	"staybook/shared/timezone"
	"testing"
	"time"
)

func TestMetadata_FromModel(t *testing.T) {
	createdAt := time.Date(2023, 1, 1, 12, 0, 0, 0, time.UTC)
	modifiedAt := time.Date(2023, 1, 2, 12, 0, 0, 0, time.UTC)

	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{
		CreatedAt:  createdAt,
		ModifiedAt: modifiedAt,
		CreatedBy:  "customer-1",
		ModifiedBy: "vendor-1",
	})

	if want := timezone.Format(createdAt, constant.DateFormat); metadata.CreatedAt != want {
		t.Errorf("expected CreatedAt to be %s, got %s", want, metadata.CreatedAt)
	}

	if want := timezone.Format(modifiedAt, constant.DateFormat); metadata.ModifiedAt != want {
		t.Errorf("expected ModifiedAt to be %s, got %s", want, metadata.ModifiedAt)
	}

	if metadata.CreatedBy != "customer-1" || metadata.ModifiedBy != "vendor-1" {
		t.Errorf("unexpected authors %q and %q", metadata.CreatedBy, metadata.ModifiedBy)
	}
}

func TestMetadata_FromModelZeroTimestamps(t *testing.T) {
	metadata := &dto.Metadata{}
	metadata.FromModel(model.Metadata{CreatedAt: time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)})

	if metadata.ModifiedAt != "" {
		t.Errorf("expected empty ModifiedAt for a row never modified, got %s", metadata.ModifiedAt)
	}

	if metadata.CreatedAt == "" {
		t.Error("expected CreatedAt to be rendered")
	}
}

func TestQueryParams_FromRequest(t *testing.T) {
	tests := []struct {
		name           string
		queryParams    map[string]string
		defaultRequest bool
		expected       dto.QueryParams
	}{
		{
			name: "with all valid parameters",
			queryParams: map[string]string{
				"page":     "2",
				"limit":    "20",
				"sort_by":  "name",
				"sort_dir": "ASC",
			},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    2,
				Limit:   20,
				SortBy:  "name",
				SortDir: "ASC",
			},
		},
		{
			name:           "with default request enabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name:           "with default request disabled and no parameters",
			queryParams:    map[string]string{},
			defaultRequest: false,
			expected: dto.QueryParams{
				Page:    0,
				Limit:   0,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid page parameter",
			queryParams: map[string]string{
				"page": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative page parameter",
			queryParams: map[string]string{
				"page": "-1",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with zero page parameter",
			queryParams: map[string]string{
				"page": "0",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage, // Should use default
				Limit:   constant.DefaultValueLimit,
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with invalid limit parameter",
			queryParams: map[string]string{
				"limit": "invalid",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with negative limit parameter",
			queryParams: map[string]string{
				"limit": "-10",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    constant.DefaultValuePage,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "",
				SortDir: "",
			},
		},
		{
			name: "with partial parameters and defaults enabled",
			queryParams: map[string]string{
				"page":    "3",
				"sort_by": "email",
			},
			defaultRequest: true,
			expected: dto.QueryParams{
				Page:    3,
				Limit:   constant.DefaultValueLimit, // Should use default
				SortBy:  "email",
				SortDir: "", // Empty when not provided
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Create a URL with query parameters
			baseURL := "http://example.com/test"
			u, err := url.Parse(baseURL)
			if err != nil {
				t.Fatalf("failed to parse URL: %v", err)
			}

			// Add query parameters
			query := u.Query()
			for key, value := range tt.queryParams {
				query.Set(key, value)
			}
			u.RawQuery = query.Encode()

			// Create HTTP request
			req, err := http.NewRequest("GET", u.String(), nil)
			if err != nil {
				t.Fatalf("failed to create request: %v", err)
			}

			// Test the method
			queryParams := &dto.QueryParams{}
			queryParams.FromRequest(req, tt.defaultRequest)

			// Verify results
			if queryParams.Page != tt.expected.Page {
				t.Errorf("expected Page to be %d, got %d", tt.expected.Page, queryParams.Page)
			}
			if queryParams.Limit != tt.expected.Limit {
				t.Errorf("expected Limit to be %d, got %d", tt.expected.Limit, queryParams.Limit)
			}
			if queryParams.SortBy != tt.expected.SortBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expected.SortBy, queryParams.SortBy)
			}
			if queryParams.SortDir != tt.expected.SortDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expected.SortDir, queryParams.SortDir)
			}
		})
	}
}

func TestSortDirectionConstants(t *testing.T) {
	if dto.SortDirAsc != "ASC" {
		t.Errorf("expected SortDirAsc to be 'ASC', got %s", dto.SortDirAsc)
	}
	if dto.SortDirDesc != "DESC" {
		t.Errorf("expected SortDirDesc to be 'DESC', got %s", dto.SortDirDesc)
	}
}

func TestQueryParams_RestrictSort(t *testing.T) {
	tests := []struct {
		name        string
		params      dto.QueryParams
		expectedBy  string
		expectedDir string
	}{
		{
			name:        "allowed column keeps direction",
			params:      dto.QueryParams{SortBy: "check_in_date", SortDir: dto.SortDirAsc},
			expectedBy:  "bookings.check_in_date",
			expectedDir: dto.SortDirAsc,
		},
		{
			name:        "unknown column falls back to created_at",
			params:      dto.QueryParams{SortBy: "1; DROP TABLE bookings", SortDir: dto.SortDirAsc},
			expectedBy:  "bookings.created_at",
			expectedDir: dto.SortDirAsc,
		},
		{
			name:        "empty params use default ordering",
			params:      dto.QueryParams{},
			expectedBy:  "bookings.created_at",
			expectedDir: dto.SortDirDesc,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params := tt.params
			params.RestrictSort("bookings", "check_in_date", "total_amount")

			if params.SortBy != tt.expectedBy {
				t.Errorf("expected SortBy to be %s, got %s", tt.expectedBy, params.SortBy)
			}

			if params.SortDir != tt.expectedDir {
				t.Errorf("expected SortDir to be %s, got %s", tt.expectedDir, params.SortDir)
			}
		})
	}
}

func TestFilterGroup_GetWhereClause(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			dto.Filter{Field: "customer_id", Value: "c-1", Operator: dto.FilterOperatorEq, Table: "bookings"},
			dto.Filter{ArgName: "status_cancelled", Field: "booking_status", Value: "cancelled", Operator: dto.FilterOperatorNotEq},
			dto.Filter{Field: "vendor_id", Operator: dto.FilterIsNull},
			dto.FilterGroup{
				Operator: dto.FilterGroupOperatorOr,
				Filters: []any{
					dto.Filter{Field: "city", Value: "goa", Operator: dto.FilterOperatorLike},
					dto.Filter{Field: "hotel_id", Value: []string{"h-1", "h-2"}, Operator: dto.FilterOperatorIn},
				},
			},
		},
	}

	where, args := group.GetWhereClause()

	expected := "(bookings.customer_id = :customer_id AND booking_status != :status_cancelled AND vendor_id IS NULL AND " +
		"(LOWER(city) LIKE LOWER(:city) OR hotel_id IN (:hotel_id_0, :hotel_id_1)))"
	if where != expected {
		t.Errorf("expected where %q, got %q", expected, where)
	}

	if args["status_cancelled"] != "cancelled" || args["city"] != "%goa%" || args["hotel_id_1"] != "h-2" {
		t.Errorf("unexpected args: %v", args)
	}

	empty := dto.FilterGroup{}
	if where, _ := empty.GetWhereClause(); where != "" {
		t.Errorf("expected empty where, got %q", where)
	}
}

func TestFilter_EqFold(t *testing.T) {
	filter := dto.Filter{Field: "name", Value: "resort", Operator: dto.FilterOperatorEqFold, Table: "categories"}

	where, args := filter.GetWhereClause()

	if where != "LOWER(categories.name) = LOWER(:name)" {
		t.Errorf("unexpected where %q", where)
	}

	if args["name"] != "resort" {
		t.Errorf("unexpected args: %v", args)
	}
}

func TestFilter_InEdgeCases(t *testing.T) {
	tests := []struct {
		name      string
		value     any
		wantWhere string
		wantArgs  map[string]any
	}{
		{
			name:      "empty portfolio matches nothing",
			value:     []string{},
			wantWhere: "FALSE",
			wantArgs:  map[string]any{},
		},
		{
			name:      "scalar falls back to equality",
			value:     "h-9",
			wantWhere: "bookings.hotel_id = :hotel_id",
			wantArgs:  map[string]any{"hotel_id": "h-9"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filter := dto.Filter{Field: "hotel_id", Value: tt.value, Operator: dto.FilterOperatorIn, Table: "bookings"}

			where, args := filter.GetWhereClause()

			if where != tt.wantWhere {
				t.Errorf("expected where %q, got %q", tt.wantWhere, where)
			}

			if len(args) != len(tt.wantArgs) || args["hotel_id"] != tt.wantArgs["hotel_id"] {
				t.Errorf("unexpected args: %v", args)
			}
		})
	}
}

func TestFilterGroup_SkipsUnknownPredicates(t *testing.T) {
	group := dto.FilterGroup{
		Filters: []any{
			"not a filter",
			dto.Filter{Field: "status", Value: "x", Operator: "between"},
			dto.Filter{Field: "is_active", Value: true, Operator: dto.FilterOperatorEq},
		},
	}

	where, _ := group.GetWhereClause()

	if where != "(is_active = :is_active)" {
		t.Errorf("unexpected where %q", where)
	}
}
