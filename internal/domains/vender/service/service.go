package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staybook/config"
	"staybook/infras/jwt"
	"staybook/infras/otel"
	"staybook/internal/domains/vender/model"
	"staybook/internal/domains/vender/model/dto"
	"staybook/internal/domains/vender/repository"
	"staybook/shared"
	"staybook/shared/constant"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"staybook/shared/password"
	gRepo "staybook/shared/repository"
	"staybook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgEmailRegistered = "Email already registered"
	msgInvalidLogin    = "Invalid email or password"
	msgAccountDisabled = "Account is deactivated. Please contact support."
	msgVendorNotFound  = "Vendor not found"
	constraintEmailIndex = "vendors_email_key"
)

type Vendor interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	GetProfile(ctx context.Context, id string) (dto.VendorResponse, error)
	Resolve(ctx context.Context, id string) (identity.Identity, error)
}

type serviceImpl struct {
	repo repository.Vendor
	jwt  jwt.JWT
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Vendor, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Vendor {
	return &serviceImpl{
		repo: repo,
		jwt:  jwt,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	email := dto.NormalizeEmail(req.EmailAddress)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check vendor email")

		return res, fmt.Errorf("failed to check vendor email: %w", err)
	}

	if exist {
		return res, failure.Conflict(msgEmailRegistered) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	vendor := req.ToModel(hashedPassword)

	if err = s.repo.Insert(ctx, vendor); err != nil {
		if gRepo.IsUniqueViolation(err, constraintEmailIndex) {
			return res, failure.Conflict(msgEmailRegistered) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create vendor")

		return res, fmt.Errorf("failed to create vendor: %w", err)
	}

	tokenPair, err := s.jwt.GenerateTokenPair(ctx, vendor.ID, vendor.Email, string(identity.DomainVendor))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(vendor, tokenPair)

	log.Info().Str("vendor_id", vendor.ID).Msg("vendor registered")

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(dto.NormalizeEmail(req.EmailAddress), model.FieldEmail, model.TableName)

	vendor, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vendor")

		return res, fmt.Errorf("failed to get vendor: %w", err)
	}

	if vendor.ID == constant.Empty {
		return res, failure.Unauthorized(msgInvalidLogin) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, vendor.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")

			return res, fmt.Errorf("failed to verify password: %w", err)
		}

		return res, failure.Unauthorized(msgInvalidLogin) // nolint:wrapcheck
	}

	if !vendor.IsActive {
		return res, failure.Forbidden(msgAccountDisabled) // nolint:wrapcheck
	}

	now := timezone.Now()
	if err = s.repo.Update(ctx, shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, vendor.ID), filter); err != nil {
		log.Warn().Err(err).Str("vendor_id", vendor.ID).Msg("failed to update last login")
	} else {
		vendor.LastLogin = &now
	}

	tokenPair, err := s.jwt.GenerateTokenPair(ctx, vendor.ID, vendor.Email, string(identity.DomainVendor))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(vendor, tokenPair)

	return res, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, id string) (res dto.VendorResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	vendor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vendor")

		return res, fmt.Errorf("failed to get vendor: %w", err)
	}

	if vendor.ID == constant.Empty {
		return res, failure.NotFound(msgVendorNotFound) // nolint:wrapcheck
	}

	res.FromModel(vendor)

	return res, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, id string) (res identity.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	vendor, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve vendor")

		return res, fmt.Errorf("failed to resolve vendor: %w", err)
	}

	if vendor.ID == constant.Empty {
		return res, nil
	}

	return identity.Identity{
		ID:     vendor.ID,
		Email:  vendor.Email,
		Name:   vendor.BusinessName,
		Domain: identity.DomainVendor,
		Active: vendor.IsActive,
	}, nil
}
