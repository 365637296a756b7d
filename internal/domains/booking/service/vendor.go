package service

//go:generate go run go.uber.org/mock/mockgen -source=./vendor.go -destination=./mocks/vendor_service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"slices"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/repository"
	hotelModel "staybook/internal/domains/hotel/model"
	hotelRepo "staybook/internal/domains/hotel/repository"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"staybook/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const (
	recentActivityLimit = 10
	msgVendorsOnly      = "Only vendors can view hotel bookings"
)

type VendorBooking interface {
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (dto.VendorBookingsResponse, error)
	Dashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type vendorServiceImpl struct {
	repo      repository.Booking
	hotelRepo hotelRepo.Hotel
	policy    hotelModel.OwnershipPolicy
	otel      otel.Otel
}

func NewVendor(repo repository.Booking, hotelRepo hotelRepo.Hotel, policy hotelModel.OwnershipPolicy, otel otel.Otel) VendorBooking {
	return &vendorServiceImpl{
		repo:      repo,
		hotelRepo: hotelRepo,
		policy:    policy,
		otel:      otel,
	}
}

func (s *vendorServiceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (res dto.VendorBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VendorBooking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := s.portfolio(ctx)
	if err != nil {
		return res, err
	}

	hotelIDs := hotelModel.HotelIDs(hotels)

	if filter.HotelID != constant.Empty {
		if !slices.Contains(hotelIDs, filter.HotelID) {
			hotelIDs = nil
		} else {
			hotelIDs = []string{filter.HotelID}
		}
	}

	res.FromModels(nil, 0, params.Limit)

	if len(hotelIDs) == 0 {
		return res, nil
	}

	group, err := filter.Group(timezone.Now())
	if err != nil {
		return res, err
	}

	group.Filters = append(group.Filters, inHotels(hotelIDs))

	params.RestrictSort(model.TableName, model.FieldCreatedAt)

	summaries, err := s.repo.Summarize(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to summarize vendor bookings")

		return res, fmt.Errorf("failed to summarize vendor bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get vendor bookings")

		return res, fmt.Errorf("failed to get vendor bookings: %w", err)
	}

	res.FromModels(bookings, summaries.Bookings(), params.Limit)
	res.Stats.FromSummaries(summaries)

	return res, nil
}

// Dashboard aggregates the vendor portfolio. The independent queries run concurrently.
func (s *vendorServiceImpl) Dashboard(ctx context.Context) (res dto.DashboardResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".VendorBooking.Dashboard")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	hotels, err := s.portfolio(ctx)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	res.FromRecent(nil, now)

	if len(hotels) == 0 {
		return res, nil
	}

	portfolio := inHotels(hotelModel.HotelIDs(hotels))
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())

	var (
		all, monthly, occupied model.Summaries
		recent                 []model.Booking
	)

	group, groupCtx := errgroup.WithContext(ctx)

	group.Go(func() (err error) {
		all, err = s.repo.Summarize(groupCtx, scoped(portfolio))

		return err
	})

	group.Go(func() (err error) {
		monthly, err = s.repo.Summarize(groupCtx, scoped(portfolio, gDto.Filter{
			ArgName:  "month_start",
			Field:    model.FieldCreatedAt,
			Value:    monthStart,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		}))

		return err
	})

	group.Go(func() (err error) {
		occupied, err = s.repo.Summarize(groupCtx, activeStays(portfolio, now))

		return err
	})

	group.Go(func() (err error) {
		params := gDto.QueryParams{Page: 1, Limit: recentActivityLimit}
		params.RestrictSort(model.TableName, model.FieldCreatedAt)

		recent, err = s.repo.GetAll(groupCtx, params, scoped(portfolio))

		return err
	})

	if err = group.Wait(); err != nil {
		log.Error().Err(err).Msg("failed to aggregate vendor dashboard")

		return res, fmt.Errorf("failed to aggregate vendor dashboard: %w", err)
	}

	inventory := 0
	for _, hotel := range hotels {
		inventory += hotel.RoomTypes.Inventory()
	}

	res.TotalBookings = all.Bookings()
	res.MonthlyRevenue = monthly.Revenue()
	res.ActiveListings = len(hotels)
	res.OccupancyRate = model.OccupancyRate(occupied.Rooms(), inventory)
	res.FromRecent(recent, now)

	return res, nil
}

func (s *vendorServiceImpl) portfolio(ctx context.Context) ([]hotelModel.Hotel, error) {
	caller, err := identity.Require(ctx)
	if err != nil {
		return nil, err //nolint:wrapcheck
	}

	if caller.Domain != identity.DomainVendor {
		return nil, failure.Forbidden(msgVendorsOnly) // nolint:wrapcheck
	}

	hotels, err := s.policy.Portfolio(ctx, caller.ID, s.findHotels)
	if err != nil {
		log.Error().Err(err).Str("vendor_id", caller.ID).Msg("failed to resolve vendor hotels")

		return nil, fmt.Errorf("failed to resolve vendor hotels: %w", err)
	}

	return hotels, nil
}

func (s *vendorServiceImpl) findHotels(ctx context.Context, filter gDto.FilterGroup) ([]hotelModel.Hotel, error) {
	params := gDto.QueryParams{}
	params.RestrictSort(hotelModel.TableName)

	return s.hotelRepo.GetAll(ctx, params, filter, hotelModel.FieldID, hotelModel.FieldRoomTypes) //nolint:wrapcheck
}

func inHotels(hotelIDs []string) gDto.Filter {
	return gDto.Filter{
		ArgName:  "hotel_ids",
		Field:    model.FieldHotelID,
		Value:    hotelIDs,
		Operator: gDto.FilterOperatorIn,
		Table:    model.TableName,
	}
}

func scoped(filters ...gDto.Filter) gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}
	for _, filter := range filters {
		group.Filters = append(group.Filters, filter)
	}

	return group
}

// activeStays matches confirmed bookings whose stay includes now.
func activeStays(portfolio gDto.Filter, now time.Time) gDto.FilterGroup {
	return scoped(
		portfolio,
		gDto.Filter{ArgName: "active_status", Field: model.FieldBookingStatus, Value: model.StatusConfirmed, Operator: gDto.FilterOperatorEq, Table: model.TableName},
		gDto.Filter{ArgName: "active_from", Field: model.FieldCheckInDate, Value: now, Operator: gDto.FilterOperatorLessEq, Table: model.TableName},
		gDto.Filter{ArgName: "active_until", Field: model.FieldCheckOutDate, Value: now, Operator: gDto.FilterOperatorGreaterEq, Table: model.TableName},
	)
}
