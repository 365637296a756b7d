package vender_test

import (
	"net/http"
	"net/http/httptest"
	"staybook/infras/otel/mocks"
	"staybook/internal/domains/vender/model/dto"
	vendorMocks "staybook/internal/domains/vender/service/mocks"
	"staybook/internal/handlers/vender"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *vendorMocks.MockVendor) {
	t.Helper()

	svc := vendorMocks.NewMockVendor(gomock.NewController(t))
	handler := vender.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func TestHandler_Register(t *testing.T) {
	const validBody = `{
		"businessName": "Coastal Stays",
		"businessType": "Hotel",
		"contactName": "Ravi",
		"emailAddress": "ravi@coastal.example",
		"phoneNumber": "9123456780",
		"password": "partner123",
		"confirmPassword": "partner123"
	}`

	tests := []struct {
		name     string
		body     string
		mock     func(svc *vendorMocks.MockVendor)
		wantCode int
		wantBody string
	}{
		{
			name: "registered",
			body: validBody,
			mock: func(svc *vendorMocks.MockVendor) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(dto.AuthResponse{Vendor: dto.VendorResponse{ID: "vendor-1"}, Token: "access"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: "Vendor registered successfully",
		},
		{
			name:     "missing business name",
			body:     `{"businessType":"Hotel","contactName":"Ravi","emailAddress":"ravi@coastal.example","phoneNumber":"9123456780","password":"partner123","confirmPassword":"partner123"}`,
			wantCode: http.StatusBadRequest,
			wantBody: "BusinessName is required",
		},
		{
			name: "email already registered",
			body: validBody,
			mock: func(svc *vendorMocks.MockVendor) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(dto.AuthResponse{}, failure.Conflict("Email already registered"))
			},
			wantCode: http.StatusBadRequest,
			wantBody: "Email already registered",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.mock != nil {
				tt.mock(svc)
			}

			recorder := httptest.NewRecorder()
			router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/vender/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
		})
	}
}

func TestHandler_Login(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Login(gomock.Any(), gomock.Any()).
		Return(dto.AuthResponse{}, failure.Forbidden("Account is deactivated. Please contact support."))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/vender/login",
		strings.NewReader(`{"emailAddress":"ravi@coastal.example","password":"partner123"}`)))

	assert.Equal(t, http.StatusForbidden, recorder.Code)
}

func TestHandler_GetProfile(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().GetProfile(gomock.Any(), "vendor-1").Return(dto.VendorResponse{ID: "vendor-1", BusinessName: "Coastal Stays"}, nil)

	request := httptest.NewRequest(http.MethodGet, "/vender/profile", nil)
	request = request.WithContext(identity.WithIdentity(request.Context(),
		identity.Identity{ID: "vendor-1", Domain: identity.DomainVendor, Active: true}))

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Coastal Stays")
}
