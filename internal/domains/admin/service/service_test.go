package service_test

import (
	"context"
	"errors"
	"net/http"
	"staybook/config"
	"staybook/infras/jwt"
	jwtMocks "staybook/infras/jwt/mocks"
	"staybook/infras/otel/mocks"
	adminMocks "staybook/internal/domains/admin/mocks"
	"staybook/internal/domains/admin/model"
	"staybook/internal/domains/admin/model/dto"
	"staybook/internal/domains/admin/service"
	"staybook/shared/failure"
	"staybook/shared/password"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAdminService_Register(t *testing.T) {
	req := dto.RegisterRequest{Username: "root", Email: "Root@Staybook.example", Password: "secret1", ConfirmPassword: "secret1"}

	tests := []struct {
		name      string
		count     int
		insertErr error
		code      int
	}{
		{name: "registration closed once an admin exists", count: 1, code: http.StatusForbidden},
		{name: "duplicate email or username", count: 0, insertErr: &pq.Error{Code: "23505", Constraint: "admins_email_key"}, code: http.StatusBadRequest},
		{name: "first admin", count: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := adminMocks.NewMockAdmin(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			svc := service.New(repo, jwtService, &config.Config{}, mocks.NewOtel())

			repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(tt.count, nil)

			if tt.count == 0 {
				repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, admin model.Admin) error {
					assert.Equal(t, "root@staybook.example", admin.Email)
					assert.Equal(t, model.RoleAdmin, admin.Role)

					return tt.insertErr
				})
			}

			if tt.code == 0 {
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), gomock.Any(), "root@staybook.example", "admin").
					Return(&jwt.TokenPair{AccessToken: "access"}, nil)
			}

			res, err := svc.Register(context.Background(), req)

			if tt.code != 0 {
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access", res.Token)
			assert.Equal(t, "root", res.Admin.Username)
		})
	}
}

func TestAdminService_Login(t *testing.T) {
	hashed, err := password.Hash("secret1")
	require.NoError(t, err)

	admin := model.Admin{ID: "admin-1", Email: "root@staybook.example", Password: hashed, Role: model.RoleAdmin, IsActive: true}
	inactive := admin
	inactive.IsActive = false

	tests := []struct {
		name     string
		found    model.Admin
		password string
		code     int
		message  string
	}{
		{name: "unknown admin", password: "secret1", code: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "wrong password", found: admin, password: "secret2", code: http.StatusUnauthorized, message: "Invalid credentials"},
		{name: "inactive admin", found: inactive, password: "secret1", code: http.StatusForbidden},
		{name: "success", found: admin, password: "secret1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := adminMocks.NewMockAdmin(ctrl)
			jwtService := jwtMocks.NewMockJWT(ctrl)
			svc := service.New(repo, jwtService, &config.Config{}, mocks.NewOtel())

			repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(tt.found, nil)

			if tt.code == 0 {
				repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("db busy"))
				jwtService.EXPECT().GenerateTokenPair(gomock.Any(), "admin-1", gomock.Any(), "admin").
					Return(&jwt.TokenPair{AccessToken: "access"}, nil)
			}

			res, err := svc.Login(context.Background(), dto.LoginRequest{Email: "root@staybook.example", Password: tt.password})

			if tt.code != 0 {
				assert.Equal(t, tt.code, failure.GetCode(err))

				if tt.message != "" {
					assert.EqualError(t, err, tt.message)
				}

				return
			}

			require.NoError(t, err, "a failed last-login stamp must not block the login")
			assert.Equal(t, "access", res.Token)
		})
	}
}

func TestAdminService_CheckExists(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(2, nil)

	res, err := svc.CheckExists(context.Background())
	require.NoError(t, err)
	assert.Equal(t, dto.ExistsResponse{Exists: true, Count: 2}, res)
}

func TestAdminService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

	repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(1, nil)

	_, err := svc.Create(context.Background(), dto.CreateRequest{Username: "ops", Email: "ops@staybook.example", Password: "secret1"})
	assert.EqualError(t, err, "Admin already exists. Registration is closed.")
}

func TestAdminService_CreateInitialAdmin(t *testing.T) {
	t.Run("missing seed settings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := service.New(adminMocks.NewMockAdmin(ctrl), jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

		assert.ErrorIs(t, svc.CreateInitialAdmin(context.Background()), service.ErrSeedPasswordMissing)
	})

	t.Run("existing admin is kept", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := adminMocks.NewMockAdmin(ctrl)
		cfg := &config.Config{}
		cfg.Seed.Admin.Email = "admin@staybook.example"
		cfg.Seed.Admin.Password = "admin123"
		svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), cfg, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)

		assert.NoError(t, svc.CreateInitialAdmin(context.Background()))
	})

	t.Run("creates admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := adminMocks.NewMockAdmin(ctrl)
		cfg := &config.Config{}
		cfg.Seed.Admin.Email = "Admin@Staybook.example"
		cfg.Seed.Admin.Password = "admin123"
		svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), cfg, mocks.NewOtel())

		repo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
		repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, admin model.Admin) error {
			assert.Equal(t, "admin", admin.Username)
			assert.Equal(t, "admin@staybook.example", admin.Email)
			assert.NoError(t, password.Verify("admin123", admin.Password))

			return nil
		})

		assert.NoError(t, svc.CreateInitialAdmin(context.Background()))
	})
}

func TestAdminService_Resolve(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := adminMocks.NewMockAdmin(ctrl)
	svc := service.New(repo, jwtMocks.NewMockJWT(ctrl), &config.Config{}, mocks.NewOtel())

	repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Admin{ID: "admin-1", Username: "root", IsActive: true}, nil)

	res, err := svc.Resolve(context.Background(), "admin-1")
	require.NoError(t, err)
	assert.True(t, res.Exists())
	assert.True(t, res.Active)
	assert.Equal(t, "root", res.Name)
}
