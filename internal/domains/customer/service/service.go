package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staybook/config"
	"staybook/infras/jwt"
	"staybook/infras/otel"
	"staybook/internal/domains/customer/model"
	"staybook/internal/domains/customer/model/dto"
	"staybook/internal/domains/customer/repository"
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
	msgEmailRegistered   = "Email address is already registered"
	msgPhoneRegistered   = "Phone number is already registered"
	msgInvalidLogin      = "Invalid email or password"
	msgAccountDisabled   = "Account is deactivated. Please contact support."
	msgCustomerNotFound  = "Customer not found"
	msgNothingToUpdate   = "No profile fields to update"
	constraintEmailIndex = "customers_email_key"
	constraintPhoneIndex = "customers_phone_number_key"
)

type Customer interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	GetProfile(ctx context.Context, id string) (dto.CustomerResponse, error)
	UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, id string) (dto.CustomerResponse, error)
	Resolve(ctx context.Context, id string) (identity.Identity, error)
}

type serviceImpl struct {
	repo repository.Customer
	jwt  jwt.JWT
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Customer, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Customer {
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

	req.Normalize()

	emailTaken, err := s.repo.Exist(ctx, shared.FilterByID(req.Email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer email")

		return res, fmt.Errorf("failed to check customer email: %w", err)
	}

	if emailTaken {
		return res, failure.Conflict(msgEmailRegistered) // nolint:wrapcheck
	}

	phoneTaken, err := s.repo.Exist(ctx, shared.FilterByID(req.PhoneNumber, model.FieldPhoneNumber, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer phone number")

		return res, fmt.Errorf("failed to check customer phone number: %w", err)
	}

	if phoneTaken {
		return res, failure.Conflict(msgPhoneRegistered) // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	customer, err := req.ToModel(hashedPassword)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, customer); err != nil {
		switch {
		case gRepo.IsUniqueViolation(err, constraintEmailIndex):
			return res, failure.Conflict(msgEmailRegistered) // nolint:wrapcheck
		case gRepo.IsUniqueViolation(err, constraintPhoneIndex):
			return res, failure.Conflict(msgPhoneRegistered) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create customer")

		return res, fmt.Errorf("failed to create customer: %w", err)
	}

	tokenPair, err := s.jwt.GenerateTokenPair(ctx, customer.ID, customer.Email, string(identity.DomainCustomer))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(customer, tokenPair)

	log.Info().Str("customer_id", customer.ID).Msg("customer registered")

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(dto.NormalizeEmail(req.Email), model.FieldEmail, model.TableName)

	customer, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized(msgInvalidLogin) // nolint:wrapcheck
	}

	if !customer.IsActive {
		return res, failure.Forbidden(msgAccountDisabled) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, customer.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")

			return res, fmt.Errorf("failed to verify password: %w", err)
		}

		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized(msgInvalidLogin) // nolint:wrapcheck
	}

	now := timezone.Now()
	if err = s.repo.Update(ctx, shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, customer.ID), filter); err != nil {
		log.Error().Err(err).Str("customer_id", customer.ID).Msg("failed to update last login")

		return res, fmt.Errorf("failed to update last login: %w", err)
	}

	customer.LastLogin = &now

	tokenPair, err := s.jwt.GenerateTokenPair(ctx, customer.ID, customer.Email, string(identity.DomainCustomer))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(customer, tokenPair)

	return res, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	return res, nil
}

func (s *serviceImpl) UpdateProfile(ctx context.Context, req dto.UpdateProfileRequest, id string) (res dto.CustomerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(msgNothingToUpdate) // nolint:wrapcheck
	}

	if req.PhoneNumber != nil {
		phoneFilter := shared.FilterByFields(model.TableName, map[string]any{model.FieldPhoneNumber: *req.PhoneNumber})
		phoneFilter.Filters = append(phoneFilter.Filters, shared.FilterNotID(id, model.FieldID, model.TableName))

		taken, err := s.repo.Exist(ctx, phoneFilter)
		if err != nil {
			log.Error().Err(err).Msg("failed to check customer phone number")

			return res, fmt.Errorf("failed to check customer phone number: %w", err)
		}

		if taken {
			return res, failure.Conflict(msgPhoneRegistered) // nolint:wrapcheck
		}
	}

	if _, err = s.get(ctx, id); err != nil {
		return res, err
	}

	if err = s.repo.Update(ctx, shared.TransformFields(req, id), shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if gRepo.IsUniqueViolation(err, constraintPhoneIndex) {
			return res, failure.Conflict(msgPhoneRegistered) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update customer profile")

		return res, fmt.Errorf("failed to update customer profile: %w", err)
	}

	customer, err := s.get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(customer)

	return res, nil
}

// Resolve feeds the auth middleware with the current state of a customer account.
func (s *serviceImpl) Resolve(ctx context.Context, id string) (res identity.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve customer")

		return res, fmt.Errorf("failed to resolve customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, nil
	}

	return identity.Identity{
		ID:     customer.ID,
		Email:  customer.Email,
		Name:   customer.FullName(),
		Domain: identity.DomainCustomer,
		Active: customer.IsActive,
	}, nil
}

func (s *serviceImpl) get(ctx context.Context, id string) (model.Customer, error) {
	customer, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return customer, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return customer, failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
	}

	return customer, nil
}
