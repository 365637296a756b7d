package service_test

import (
	"context"
	"net/http"
	"staybook/config"
	"staybook/infras/jwt"
	jwtMocks "staybook/infras/jwt/mocks"
	"staybook/infras/otel/mocks"
	vendorMocks "staybook/internal/domains/vender/mocks"
	"staybook/internal/domains/vender/model"
	"staybook/internal/domains/vender/model/dto"
	"staybook/internal/domains/vender/service"
	"staybook/shared/failure"
	"staybook/shared/password"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestVendorService_Register(t *testing.T) {
	req := dto.RegisterRequest{
		BusinessName:    "Seaside Stays",
		BusinessType:    "Hotel",
		ContactName:     "Ravi",
		EmailAddress:    "Ravi@Seaside.example",
		PhoneNumber:     "+910000000000",
		Password:        "password123",
		ConfirmPassword: "password123",
	}

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := vendorMocks.NewMockVendor(ctrl)
		svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		_, err := svc.Register(context.Background(), req)
		assert.EqualError(t, err, "Email already registered")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := vendorMocks.NewMockVendor(ctrl)
		jwtService := jwtMocks.NewMockJWT(ctrl)
		svc := service.New(repo, jwtService, &config.Config{}, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, vendor model.Vendor) error {
			assert.Equal(t, "ravi@seaside.example", vendor.Email)
			assert.True(t, vendor.IsActive)

			return nil
		})
		jwtService.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), "ravi@seaside.example", "vendor").
			Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh"}, nil)

		res, err := svc.Register(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "access", res.Token)
		assert.Equal(t, "Seaside Stays", res.Vendor.BusinessName)
	})
}

func TestVendorService_Login(t *testing.T) {
	hashed, err := password.Hash("password123")
	require.NoError(t, err)

	vendor := model.Vendor{ID: "vendor-1", Email: "ravi@seaside.example", Password: hashed, IsActive: true}
	inactive := vendor
	inactive.IsActive = false

	tests := []struct {
		name     string
		found    model.Vendor
		password string
		code     int
	}{
		{name: "unknown vendor", found: model.Vendor{}, password: "password123", code: http.StatusUnauthorized},
		{name: "wrong password", found: vendor, password: "nope-nope", code: http.StatusUnauthorized},
		{name: "inactive vendor", found: inactive, password: "password123", code: http.StatusForbidden},
		{name: "success", found: vendor, password: "password123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := vendorMocks.NewMockVendor(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			svc := service.New(repo, jwtService, &config.Config{}, mocks.NewOtel())

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			if tt.code == 0 {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), "vendor-1", gomock.Any(), "vendor").
					Return(&jwt.TokenPair{AccessToken: "access"}, nil)
			}

			res, err := svc.Login(context.Background(), dto.LoginRequest{EmailAddress: "ravi@seaside.example", Password: tt.password})

			if tt.code != 0 {
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.Token)
		})
	}
}
