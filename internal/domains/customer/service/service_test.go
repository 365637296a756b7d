package service_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"staybook/config"
	"staybook/infras/jwt"
	jwtMocks "staybook/infras/jwt/mocks"
	"staybook/infras/otel/mocks"
	customerMocks "staybook/internal/domains/customer/mocks"
	"staybook/internal/domains/customer/model"
	"staybook/internal/domains/customer/model/dto"
	"staybook/internal/domains/customer/service"
	"staybook/shared/failure"
	"staybook/shared/password"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func registerRequest() dto.RegisterRequest {
	return dto.RegisterRequest{
		FirstName:       "Asha",
		LastName:        "Rao",
		Email:           "  Asha@Example.com ",
		PhoneNumber:     "+911234567890",
		DateOfBirth:     "1990-05-01",
		Gender:          model.GenderFemale,
		Address:         "12 Beach Road",
		City:            "Goa",
		Country:         "India",
		PostalCode:      "403001",
		Password:        "password123",
		ConfirmPassword: "password123",
		AcceptTerms:     true,
		AcceptPrivacy:   true,
	}
}

func TestCustomerService_Register(t *testing.T) {
	tokenPair := &jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 900}

	tests := []struct {
		name        string
		setupMock   func(repo *customerMocks.MockCustomer, jwtService *jwtMocks.MockJWT)
		expectedErr string
		code        int
	}{
		{
			name: "duplicate email",
			setupMock: func(repo *customerMocks.MockCustomer, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			expectedErr: "Email address is already registered",
			code:        http.StatusBadRequest,
		},
		{
			name: "duplicate phone",
			setupMock: func(repo *customerMocks.MockCustomer, _ *jwtMocks.MockJWT) {
				gomock.InOrder(
					repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil),
					repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil),
				)
			},
			expectedErr: "Phone number is already registered",
			code:        http.StatusBadRequest,
		},
		{
			name: "repository error",
			setupMock: func(repo *customerMocks.MockCustomer, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("db down"))
			},
			expectedErr: "failed to check customer email: db down",
			code:        http.StatusInternalServerError,
		},
		{
			name: "success",
			setupMock: func(repo *customerMocks.MockCustomer, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil).Times(2)
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, customer model.Customer) error {
					assert.Equal(t, "asha@example.com", customer.Email)
					assert.NoError(t, password.Verify("password123", customer.Password))
					assert.True(t, customer.IsActive)
					assert.True(t, customer.Notifications)

					return nil
				})
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), "asha@example.com", "customer").Return(tokenPair, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customerMocks.NewMockCustomer(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtService)

			svc := service.New(repo, jwtService, &config.Config{}, mocks.NewOtel())

			res, err := svc.Register(context.Background(), registerRequest())

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.Token)
			assert.Equal(t, "refresh", res.RefreshToken)
			assert.Equal(t, "1990-05-01", res.Customer.DateOfBirth)

			raw, err := json.Marshal(res)
			require.NoError(t, err)
			assert.NotContains(t, string(raw), "password")
		})
	}
}

func TestCustomerService_Login(t *testing.T) {
	hashed, err := password.Hash("password123")
	require.NoError(t, err)

	active := model.Customer{ID: "customer-1", Email: "asha@example.com", Password: hashed, IsActive: true}
	inactive := active
	inactive.IsActive = false

	tests := []struct {
		name        string
		req         dto.LoginRequest
		setupMock   func(repo *customerMocks.MockCustomer, jwtService *jwtMocks.MockJWT)
		expectedErr string
		code        int
	}{
		{
			name: "unknown email",
			req:  dto.LoginRequest{Email: "nobody@example.com", Password: "password123"},
			setupMock: func(repo *customerMocks.MockCustomer, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)
			},
			expectedErr: "Invalid email or password",
			code:        http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "asha@example.com", Password: "wrong-password"},
			setupMock: func(repo *customerMocks.MockCustomer, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
			},
			expectedErr: "Invalid email or password",
			code:        http.StatusUnauthorized,
		},
		{
			name: "deactivated account",
			req:  dto.LoginRequest{Email: "asha@example.com", Password: "password123"},
			setupMock: func(repo *customerMocks.MockCustomer, _ *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			expectedErr: "Account is deactivated. Please contact support.",
			code:        http.StatusForbidden,
		},
		{
			name: "success",
			req:  dto.LoginRequest{Email: "ASHA@example.com", Password: "password123"},
			setupMock: func(repo *customerMocks.MockCustomer, jwtService *jwtMocks.MockJWT) {
				repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(active, nil)
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
					_, ok := fields[model.FieldLastLogin].(time.Time)
					assert.True(t, ok)

					return nil
				})
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), "customer-1", "asha@example.com", "customer").
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := customerMocks.NewMockCustomer(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			tt.setupMock(repo, jwtService)

			svc := service.New(repo, jwtService, &config.Config{}, mocks.NewOtel())

			res, err := svc.Login(context.Background(), tt.req)

			if tt.expectedErr != "" {
				assert.EqualError(t, err, tt.expectedErr)
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.Token)
			assert.NotNil(t, res.Customer.LastLogin)
		})
	}
}

func TestCustomerService_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

	_, err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{}, "customer-1")
	assert.EqualError(t, err, "No profile fields to update")

	city := "Pune"
	updated := model.Customer{ID: "customer-1", City: city, IsActive: true}

	gomock.InOrder(
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{ID: "customer-1", City: "Goa"}, nil),
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
			assert.Equal(t, &city, fields["city"])
			assert.NotContains(t, fields, "email")
			assert.NotContains(t, fields, "password")

			return nil
		}),
		repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil),
	)

	res, err := svc.UpdateProfile(context.Background(), dto.UpdateProfileRequest{City: &city}, "customer-1")
	require.NoError(t, err)
	assert.Equal(t, "Pune", res.City)
}

func TestCustomerService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := customerMocks.NewMockCustomer(ctrl)
	svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{ID: "customer-1", FirstName: "Asha", LastName: "Rao", IsActive: false}, nil)

	id, err := svc.Resolve(context.Background(), "customer-1")
	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", id.Name)
	assert.False(t, id.Active)

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Customer{}, nil)

	id, err = svc.Resolve(context.Background(), "missing")
	require.NoError(t, err)
	assert.False(t, id.Exists())
}
