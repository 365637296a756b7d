package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"staybook/config"
	"staybook/infras/jwt"
	"staybook/infras/otel"
	"staybook/internal/domains/admin/model"
	"staybook/internal/domains/admin/model/dto"
	"staybook/internal/domains/admin/repository"
	"staybook/shared"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"staybook/shared/password"
	gRepo "staybook/shared/repository"
	"staybook/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	msgInvalidCredentials = "Invalid credentials"
	msgAccountDisabled    = "Account is deactivated. Please contact support."
	msgRegistrationClosed = "Admin already exists. Registration is closed."
	msgAdminTaken         = "Admin with this email or username already exists"
	msgAdminNotFound      = "Admin not found"
)

var ErrSeedPasswordMissing = errors.New("seed admin email and password are required")

type Admin interface {
	Login(ctx context.Context, req dto.LoginRequest) (dto.AuthResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) (dto.AuthResponse, error)
	CheckExists(ctx context.Context) (dto.ExistsResponse, error)
	Create(ctx context.Context, req dto.CreateRequest) (dto.AdminResponse, error)
	GetProfile(ctx context.Context, id string) (dto.AdminResponse, error)
	Resolve(ctx context.Context, id string) (identity.Identity, error)
	CreateInitialAdmin(ctx context.Context) error
}

type serviceImpl struct {
	repo repository.Admin
	jwt  jwt.JWT
	cfg  *config.Config
	otel otel.Otel
}

func New(repo repository.Admin, jwt jwt.JWT, cfg *config.Config, otel otel.Otel) Admin {
	return &serviceImpl{
		repo: repo,
		jwt:  jwt,
		cfg:  cfg,
		otel: otel,
	}
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(dto.NormalizeEmail(req.Email), model.FieldEmail, model.TableName)

	admin, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	if !admin.IsActive {
		return res, failure.Forbidden(msgAccountDisabled) // nolint:wrapcheck
	}

	if err = password.Verify(req.Password, admin.Password); err != nil {
		if !errors.Is(err, password.ErrInvalidPassword) {
			log.Error().Err(err).Msg("failed to verify password")

			return res, fmt.Errorf("failed to verify password: %w", err)
		}

		return res, failure.Unauthorized(msgInvalidCredentials) // nolint:wrapcheck
	}

	now := timezone.Now()
	if err = s.repo.Update(ctx, shared.TransformFields(dto.UpdateLastLoginRequest{LastLogin: now}, admin.ID), filter); err != nil {
		log.Warn().Err(err).Str("admin_id", admin.ID).Msg("failed to update last login")
	} else {
		admin.LastLogin = &now
	}

	return s.issue(ctx, admin)
}

func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.AuthResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureNoAdmin(ctx); err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := req.ToModel(hashedPassword, constant.ContextSystem)

	if err = s.insert(ctx, admin); err != nil {
		return res, err
	}

	log.Info().Str("admin_id", admin.ID).Msg("first admin registered")

	return s.issue(ctx, admin)
}

func (s *serviceImpl) CheckExists(ctx context.Context) (res dto.ExistsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CheckExists")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	count, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return res, fmt.Errorf("failed to count admins: %w", err)
	}

	return dto.ExistsResponse{Exists: count > 0, Count: count}, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateRequest) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if err = s.ensureNoAdmin(ctx); err != nil {
		return res, err
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := req.ToModel(hashedPassword, constant.ContextSystem)

	if err = s.insert(ctx, admin); err != nil {
		return res, err
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) GetProfile(ctx context.Context, id string) (res dto.AdminResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetProfile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get admin")

		return res, fmt.Errorf("failed to get admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, failure.NotFound(msgAdminNotFound) // nolint:wrapcheck
	}

	res.FromModel(admin)

	return res, nil
}

func (s *serviceImpl) Resolve(ctx context.Context, id string) (res identity.Identity, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Resolve")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	admin, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve admin")

		return res, fmt.Errorf("failed to resolve admin: %w", err)
	}

	if admin.ID == constant.Empty {
		return res, nil
	}

	return identity.Identity{
		ID:     admin.ID,
		Email:  admin.Email,
		Name:   admin.Username,
		Domain: identity.DomainAdmin,
		Active: admin.IsActive,
	}, nil
}

// CreateInitialAdmin provisions the admin described by the SEED_ADMIN_* settings. An existing
// admin with the same email is left untouched.
func (s *serviceImpl) CreateInitialAdmin(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".CreateInitialAdmin")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	seed := s.cfg.Seed.Admin
	if seed.Email == constant.Empty || seed.Password == constant.Empty {
		return ErrSeedPasswordMissing
	}

	email := dto.NormalizeEmail(seed.Email)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(email, model.FieldEmail, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check seed admin")

		return fmt.Errorf("failed to check seed admin: %w", err)
	}

	if exist {
		log.Info().Str("email", email).Msg("seed admin already exists")

		return nil
	}

	username := seed.Username
	if username == constant.Empty {
		username = model.RoleAdmin
	}

	hashedPassword, err := password.Hash(seed.Password)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	req := dto.CreateRequest{Username: username, Email: email}
	admin := req.ToModel(hashedPassword, constant.ContextSystem)

	if err = s.repo.Insert(ctx, admin); err != nil {
		log.Error().Err(err).Msg("failed to create seed admin")

		return fmt.Errorf("failed to create seed admin: %w", err)
	}

	log.Info().Str("email", email).Msg("seed admin created")

	return nil
}

func (s *serviceImpl) ensureNoAdmin(ctx context.Context) error {
	count, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count admins")

		return fmt.Errorf("failed to count admins: %w", err)
	}

	if count > 0 {
		return failure.Forbidden(msgRegistrationClosed) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) insert(ctx context.Context, admin model.Admin) error {
	err := s.repo.Insert(ctx, admin)
	if err == nil {
		return nil
	}

	if gRepo.IsUniqueViolation(err, constant.Empty) {
		return failure.Conflict(msgAdminTaken) // nolint:wrapcheck
	}

	log.Error().Err(err).Msg("failed to create admin")

	return fmt.Errorf("failed to create admin: %w", err)
}

func (s *serviceImpl) issue(ctx context.Context, admin model.Admin) (res dto.AuthResponse, err error) {
	tokenPair, err := s.jwt.GenerateTokenPair(ctx, admin.ID, admin.Email, string(identity.DomainAdmin))
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromModel(admin, tokenPair)

	return res, nil
}
