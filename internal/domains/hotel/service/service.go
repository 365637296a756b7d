package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/infras/s3"
	categoryModel "staybook/internal/domains/category/model"
	categoryRepo "staybook/internal/domains/category/repository"
	"staybook/internal/domains/hotel/model"
	"staybook/internal/domains/hotel/model/dto"
	"staybook/internal/domains/hotel/repository"
	"staybook/shared"
	"staybook/shared/cache"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/identity"
	gRepo "staybook/shared/repository"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetHotel    = "hotel:get"
	cacheGetAllHotel = "hotel:gets"
	cacheCountHotel  = "hotel:count"
	cacheListHotel   = "hotel:all"

	msgHotelNotFound    = "Hotel not found"
	msgCategoryNotFound = "Category not found"
	msgVendorNotFound   = "Vendor not found"
	msgNotHotelOwner    = "You do not have permission to modify this hotel"
	msgDuplicateRoom    = "Duplicate room type name"
	msgNothingToUpdate  = "No hotel fields to update"
)

type Hotel interface {
	Create(ctx context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	List(ctx context.Context) ([]dto.HotelResponse, error)
	Get(ctx context.Context, id string) (dto.HotelResponse, error)
	Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (dto.HotelResponse, error)
}

type serviceImpl struct {
	repo         repository.Hotel
	categoryRepo categoryRepo.Category
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
	s3           s3.S3
}

func New(repo repository.Hotel, categoryRepo categoryRepo.Category, cfg *config.Config, cache cache.RedisCache, otel otel.Otel, s3 s3.S3) Hotel {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
		s3:           s3,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateHotelRequest) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	caller, _ := identity.FromContext(ctx)

	var owner *string

	switch caller.Domain {
	case identity.DomainVendor:
		owner = &caller.ID
	case identity.DomainAdmin:
		owner = req.VendorID
	default:
		return res, failure.Forbidden("Only vendors and admins can create hotels") // nolint:wrapcheck
	}

	hotel := req.ToModel(caller.ID, owner)

	if name, dup := hotel.RoomTypes.Duplicate(); dup {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s: %s", msgDuplicateRoom, name)) // nolint:wrapcheck
	}

	if err = s.checkCategory(ctx, hotel.CategoryID); err != nil {
		return res, err
	}

	if err = s.checkImageSizes(req); err != nil {
		return res, err
	}

	urls, err := s.uploadImages(ctx, req.Images())
	if err != nil {
		log.Error().Err(err).Msg("failed to upload hotel images")

		return res, fmt.Errorf("failed to upload hotel images: %w", err)
	}

	if req.MainImage != nil {
		hotel.MainImage, urls = urls[0], urls[1:]
	}

	hotel.AdditionalImages = urls

	if err = s.repo.Insert(ctx, hotel); err != nil {
		s.deleteImages(context.WithoutCancel(ctx), hotel.Images())

		if gRepo.IsForeignKeyViolation(err) {
			return res, failure.BadRequestFromString(msgVendorNotFound) // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create hotel")

		return res, fmt.Errorf("failed to create hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
		shared.InvalidateCaches(c, s.cache, cacheListHotel)
	}()

	log.Info().Str("hotel_id", hotel.ID).Str("domain", string(caller.Domain)).Msg("hotel created")

	res.FromModel(hotel)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetHotelsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	req.RestrictSort(model.TableName, model.FieldCreatedAt, model.FieldHotelName, model.FieldCity, model.FieldStarRating)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotels")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		return res, err
	}

	hotels, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotels")

		return res, fmt.Errorf("failed to get hotels: %w", err)
	}

	res.FromModels(hotels, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotels to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (total int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountHotel, req, filter)

	err = s.cache.Get(ctx, cacheKey, &total)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel count")

		return total, nil
	}

	total, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count hotels")

		return 0, fmt.Errorf("failed to count hotels: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, total, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel count to cache")
		}
	}()

	return total, nil
}

// List returns every hotel without pagination, newest first.
func (s *serviceImpl) List(ctx context.Context) (res []dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = s.cache.Get(ctx, cacheListHotel, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheListHotel).Msg("cache hit for hotel list")

		return res, nil
	}

	params := gDto.QueryParams{}
	params.RestrictSort(model.TableName)

	hotels, err := s.repo.GetAll(ctx, params, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to list hotels")

		return res, fmt.Errorf("failed to list hotels: %w", err)
	}

	res = dto.FromModels(hotels)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheListHotel, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel list to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	cacheKey := shared.BuildCacheKey(cacheGetHotel, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for hotel")

		return res, nil
	}

	hotel, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(hotel)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save hotel to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateHotelRequest, id string) (res dto.HotelResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(msgNothingToUpdate) // nolint:wrapcheck
	}

	hotel, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	caller, _ := identity.FromContext(ctx)
	if caller.Domain != identity.DomainAdmin && !(caller.Domain == identity.DomainVendor && hotel.OwnedBy(caller.ID)) {
		return res, failure.Forbidden(msgNotHotelOwner) // nolint:wrapcheck
	}

	patch := req.Patch()

	if name, dup := patch.RoomTypes.Duplicate(); dup {
		return res, failure.BadRequestFromString(fmt.Sprintf("%s: %s", msgDuplicateRoom, name)) // nolint:wrapcheck
	}

	if err = s.checkCategory(ctx, patch.CategoryID); err != nil {
		return res, err
	}

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	if err = s.repo.Update(ctx, shared.TransformFields(patch, caller.ID), filter); err != nil {
		log.Error().Err(err).Msg("failed to update hotel")

		return res, fmt.Errorf("failed to update hotel: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetHotel, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete hotel from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllHotel)
		shared.InvalidateCaches(c, s.cache, cacheCountHotel)
		shared.InvalidateCaches(c, s.cache, cacheListHotel)
	}()

	updated, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(updated)

	return res, nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Hotel, error) {
	hotel, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return hotel, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return hotel, failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
	}

	return hotel, nil
}

func (s *serviceImpl) checkCategory(ctx context.Context, categoryID *string) error {
	if categoryID == nil {
		return nil
	}

	exist, err := s.categoryRepo.Exist(ctx, shared.FilterByID(*categoryID, categoryModel.FieldID, categoryModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check category")

		return fmt.Errorf("failed to check category: %w", err)
	}

	if !exist {
		return failure.BadRequestFromString(msgCategoryNotFound) // nolint:wrapcheck
	}

	return nil
}
