package admin_test

import (
	"net/http"
	"net/http/httptest"
	"staybook/infras/otel/mocks"
	"staybook/internal/domains/admin/model/dto"
	adminMocks "staybook/internal/domains/admin/service/mocks"
	"staybook/internal/handlers/admin"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newRouter(t *testing.T) (*chi.Mux, *adminMocks.MockAdmin) {
	t.Helper()

	svc := adminMocks.NewMockAdmin(gomock.NewController(t))
	handler := admin.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, request *http.Request) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_Register(t *testing.T) {
	const validBody = `{"username":"root","email":"root@staybook.example","password":"admin123","confirmPassword":"admin123"}`

	tests := []struct {
		name     string
		body     string
		mock     func(svc *adminMocks.MockAdmin)
		wantCode int
		wantBody string
	}{
		{
			name: "first admin",
			body: validBody,
			mock: func(svc *adminMocks.MockAdmin) {
				svc.EXPECT().Register(gomock.Any(), dto.RegisterRequest{
					Username:        "root",
					Email:           "root@staybook.example",
					Password:        "admin123",
					ConfirmPassword: "admin123",
				}).Return(dto.AuthResponse{Admin: dto.AdminResponse{ID: "admin-1", Role: "admin"}, Token: "access"}, nil)
			},
			wantCode: http.StatusCreated,
			wantBody: "Admin registered successfully",
		},
		{
			name: "registration closed",
			body: validBody,
			mock: func(svc *adminMocks.MockAdmin) {
				svc.EXPECT().Register(gomock.Any(), gomock.Any()).
					Return(dto.AuthResponse{}, failure.Forbidden("Admin already exists. Registration is closed."))
			},
			wantCode: http.StatusForbidden,
			wantBody: "Registration is closed",
		},
		{
			name:     "password confirmation mismatch",
			body:     `{"username":"root","email":"root@staybook.example","password":"admin123","confirmPassword":"admin124"}`,
			wantCode: http.StatusBadRequest,
			wantBody: "ConfirmPassword must match Password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.mock != nil {
				tt.mock(svc)
			}

			recorder := serve(router, httptest.NewRequest(http.MethodPost, "/admin/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantCode, recorder.Code)
			assert.Contains(t, recorder.Body.String(), tt.wantBody)
			assert.NotContains(t, recorder.Body.String(), "admin123")
		})
	}
}

func TestHandler_Login(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().Login(gomock.Any(), dto.LoginRequest{Email: "root@staybook.example", Password: "wrong"}).
		Return(dto.AuthResponse{}, failure.Unauthorized("Invalid credentials"))

	recorder := serve(router, httptest.NewRequest(http.MethodPost, "/admin/login",
		strings.NewReader(`{"email":"root@staybook.example","password":"wrong"}`)))

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Invalid credentials")
}

func TestHandler_CheckExists(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().CheckExists(gomock.Any()).Return(dto.ExistsResponse{Exists: true, Count: 1}, nil)

	recorder := serve(router, httptest.NewRequest(http.MethodGet, "/admin/check-exists", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"exists":true`)
}

func TestHandler_Verify(t *testing.T) {
	t.Run("anonymous", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := serve(router, httptest.NewRequest(http.MethodGet, "/admin/verify", nil))

		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})

	t.Run("signed in", func(t *testing.T) {
		router, _ := newRouter(t)

		request := httptest.NewRequest(http.MethodGet, "/admin/verify", nil)
		request = request.WithContext(identity.WithIdentity(request.Context(),
			identity.Identity{ID: "admin-1", Domain: identity.DomainAdmin, Active: true}))

		recorder := serve(router, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "admin-1")
	})
}
