package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/internal/domains/category/model"
	"staybook/internal/domains/category/model/dto"
	"staybook/internal/domains/category/repository"
	"staybook/shared"
	"staybook/shared/cache"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/identity"
	gRepo "staybook/shared/repository"
	"strings"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetCategory     = "category:get"
	cacheActiveCategory  = "category:active"
	msgCategoryNotFound  = "Category not found"
	msgCategoryExists    = "Category with this name already exists"
	msgCategoryNameTaken = "Another category with this name already exists"
	msgNothingToUpdate   = "No category fields to update"
	constraintNameIndex  = "categories_name_lower_key"
)

type Category interface {
	GetAll(ctx context.Context) ([]dto.CategoryResponse, error)
	GetActive(ctx context.Context) ([]dto.CategoryResponse, error)
	Get(ctx context.Context, id string) (dto.CategoryResponse, error)
	Create(ctx context.Context, req dto.CreateCategoryRequest) (dto.CategoryResponse, error)
	Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) (dto.CategoryResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleStatus(ctx context.Context, id string) (dto.CategoryResponse, error)
	Seed(ctx context.Context) (int, error)
}

type serviceImpl struct {
	repo  repository.Category
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Category {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) GetAll(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	params := gDto.QueryParams{SortBy: model.FieldCreatedAt, SortDir: gDto.SortDirDesc}
	params.RestrictSort(model.TableName, model.FieldCreatedAt)

	models, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	return dto.FromModels(models), nil
}

func (s *serviceImpl) GetActive(ctx context.Context) (res []dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheActiveCategory, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheActiveCategory).Msg("cache hit for active categories")

		return res, nil
	}

	params := gDto.QueryParams{SortBy: model.FieldName, SortDir: gDto.SortDirAsc}
	params.RestrictSort(model.TableName, model.FieldName)

	models, err := s.repo.GetAll(ctx, params, shared.FilterByFields(model.TableName, map[string]any{model.FieldIsActive: true}))
	if err != nil {
		log.Error().Err(err).Msg("failed to get active categories")

		return res, fmt.Errorf("failed to get active categories: %w", err)
	}

	res = dto.FromModels(models)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheActiveCategory, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save active categories to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetCategory, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for category")

		return res, nil
	}

	category, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(category)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save category to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateCategoryRequest) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	category := req.ToModel(identity.Actor(ctx))
	if category.Name == constant.Empty {
		return res, failure.BadRequestFromString("Category name is required") // nolint:wrapcheck
	}

	taken, err := s.nameTaken(ctx, category.Name, constant.Empty)
	if err != nil {
		return res, err
	}

	if taken {
		return res, failure.Conflict(msgCategoryExists) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, category); err != nil {
		if gRepo.IsUniqueViolation(err, constraintNameIndex) {
			return res, failure.Conflict(msgCategoryExists) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create category")

		return res, fmt.Errorf("failed to create category: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	res.FromModel(category)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCategoryRequest, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.Normalize()

	if req == (dto.UpdateCategoryRequest{}) {
		return res, failure.BadRequestFromString(msgNothingToUpdate) // nolint:wrapcheck
	}

	if _, err = s.find(ctx, id); err != nil {
		return res, err
	}

	if req.Name != nil {
		var taken bool

		taken, err = s.nameTaken(ctx, *req.Name, id)
		if err != nil {
			return res, err
		}

		if taken {
			return res, failure.Conflict(msgCategoryNameTaken) // nolint:wrapcheck
		}
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(req, identity.Actor(ctx)), filter); err != nil {
		if gRepo.IsUniqueViolation(err, constraintNameIndex) {
			return res, failure.Conflict(msgCategoryNameTaken) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update category")

		return res, fmt.Errorf("failed to update category: %w", err)
	}

	s.invalidate(ctx, id)

	category, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(category)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if category exists")

		return fmt.Errorf("failed to check if category exists: %w", err)
	}

	if !exist {
		return failure.NotFound(msgCategoryNotFound) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete category")

		return fmt.Errorf("failed to delete category: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) ToggleStatus(ctx context.Context, id string) (res dto.CategoryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ToggleStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	category, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	category.IsActive = !category.IsActive

	// TransformFields skips false, so the flag is set explicitly.
	fields := shared.TransformFields(dto.ToggleStatusRequest{}, identity.Actor(ctx))
	fields[model.FieldIsActive] = category.IsActive

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to toggle category status")

		return res, fmt.Errorf("failed to toggle category status: %w", err)
	}

	s.invalidate(ctx, id)

	res.FromModel(category)

	return res, nil
}

// Seed installs every default category whose name is not present yet and returns how many were added.
func (s *serviceImpl) Seed(ctx context.Context) (added int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Seed")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	existing, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{}, model.FieldName)
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories")

		return 0, fmt.Errorf("failed to get categories: %w", err)
	}

	names := make(map[string]struct{}, len(existing))
	for _, category := range existing {
		names[strings.ToLower(category.Name)] = struct{}{}
	}

	missing := []model.Category{}

	for _, def := range model.Defaults {
		if _, ok := names[strings.ToLower(def.Name)]; ok {
			continue
		}

		req := dto.CreateCategoryRequest{Name: def.Name, Description: def.Description}
		missing = append(missing, req.ToModel(constant.ContextSystem))
	}

	if len(missing) == 0 {
		log.Info().Int("existing", len(existing)).Msg("default categories already present")

		return 0, nil
	}

	if err = s.repo.InsertBulk(ctx, missing); err != nil {
		log.Error().Err(err).Msg("failed to seed categories")

		return 0, fmt.Errorf("failed to seed categories: %w", err)
	}

	s.invalidate(ctx, constant.Empty)

	log.Info().Int("added", len(missing)).Msg("default categories seeded")

	return len(missing), nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Category, error) {
	category, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get category")

		return category, fmt.Errorf("failed to get category: %w", err)
	}

	if category.ID == constant.Empty {
		return category, failure.NotFound(msgCategoryNotFound) // nolint:wrapcheck
	}

	return category, nil
}

// nameTaken matches names case-insensitively. excludeID skips the category being renamed.
func (s *serviceImpl) nameTaken(ctx context.Context, name, excludeID string) (bool, error) {
	filter := gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: model.FieldName, Value: name, Operator: gDto.FilterOperatorEqFold, Table: model.TableName},
		},
	}

	if excludeID != constant.Empty {
		filter.Filters = append(filter.Filters, shared.FilterNotID(excludeID, model.FieldID, model.TableName))
	}

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check category name")

		return false, fmt.Errorf("failed to check category name: %w", err)
	}

	return exist, nil
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if id != constant.Empty {
			if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetCategory, id)); err != nil {
				log.Error().Err(err).Msg("failed to delete category from cache")
			}
		}

		shared.InvalidateCaches(c, s.cache, cacheActiveCategory)
	}()
}
