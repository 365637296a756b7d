package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"staybook/config"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/event"
	"staybook/internal/domains/booking/model"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/repository"
	customerModel "staybook/internal/domains/customer/model"
	customerRepo "staybook/internal/domains/customer/repository"
	hotelModel "staybook/internal/domains/hotel/model"
	hotelRepo "staybook/internal/domains/hotel/repository"
	"staybook/shared"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/identity"
	gRepo "staybook/shared/repository"
	"staybook/shared/timezone"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	msgBookingNotFound  = "Booking not found"
	msgCustomerNotFound = "Customer not found"
	msgHotelNotFound    = "Hotel not found"
	msgRoomNotFound     = "Selected room type not found"
	msgCannotCancel     = "This booking cannot be cancelled. It's either already cancelled, completed, or within 24 hours of check-in."
	msgCannotUpdate     = "Cannot update cancelled or completed bookings"
	msgNothingToUpdate  = "No booking fields to update"
	msgCustomersOnly    = "Only customers can manage bookings"

	defaultReferenceAttempts = 5
)

type Booking interface {
	Create(ctx context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (dto.GetBookingsResponse, error)
	Get(ctx context.Context, id string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (dto.BookingResponse, error)
	Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (dto.BookingResponse, error)
}

type serviceImpl struct {
	repo         repository.Booking
	customerRepo customerRepo.Customer
	hotelRepo    hotelRepo.Hotel
	events       event.Publisher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	repo repository.Booking,
	customerRepo customerRepo.Customer,
	hotelRepo hotelRepo.Hotel,
	events event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		hotelRepo:    hotelRepo,
		events:       events,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, err := customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	stay, err := req.Stay(timezone.Now())
	if err != nil {
		return res, err
	}

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound(msgCustomerNotFound) // nolint:wrapcheck
	}

	hotel, err := s.hotelRepo.Get(ctx, shared.FilterByID(req.HotelID, hotelModel.FieldID, hotelModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get hotel")

		return res, fmt.Errorf("failed to get hotel: %w", err)
	}

	if hotel.ID == constant.Empty {
		return res, failure.NotFound(msgHotelNotFound) // nolint:wrapcheck
	}

	room, ok := hotel.RoomTypes.Find(req.RoomType)
	if !ok {
		return res, failure.NotFound(msgRoomNotFound) // nolint:wrapcheck
	}

	snapshot := model.CustomerSnapshot{
		Name:  customer.FullName(),
		Email: customer.Email,
		Phone: customer.PhoneNumber,
	}

	booking := req.ToModel(customerID, snapshot, hotel, room, stay)

	if booking, err = s.insert(ctx, booking); err != nil {
		return res, err
	}

	log.Info().Str("booking_id", booking.ID).Str("reference", booking.Reference).Msg("booking created")

	s.events.Created(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// insert stores the booking under a fresh reference, regenerating it when the unique index
// reports a collision.
func (s *serviceImpl) insert(ctx context.Context, booking model.Booking) (model.Booking, error) {
	attempts := s.cfg.Booking.ReferenceMaxAttempts
	if attempts <= 0 {
		attempts = defaultReferenceAttempts
	}

	var err error

	for attempt := 1; attempt <= attempts; attempt++ {
		booking.Reference, err = model.NewReference(timezone.Now())
		if err != nil {
			log.Error().Err(err).Msg("failed to generate booking reference")

			return booking, fmt.Errorf("failed to generate booking reference: %w", err)
		}

		err = s.repo.Insert(ctx, booking)
		if err == nil {
			return booking, nil
		}

		if !gRepo.IsUniqueViolation(err, model.ConstraintReference) {
			log.Error().Err(err).Msg("failed to create booking")

			return booking, fmt.Errorf("failed to create booking: %w", err)
		}

		log.Warn().Int("attempt", attempt).Str("reference", booking.Reference).Msg("booking reference collision, retrying")
	}

	log.Error().Err(err).Int("attempts", attempts).Msg("failed to allocate a unique booking reference")

	return booking, fmt.Errorf("failed to allocate a unique booking reference after %d attempts: %w", attempts, err)
}

func (s *serviceImpl) GetAll(ctx context.Context, params gDto.QueryParams, filter dto.BookingFilter) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, err := customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	group, err := filter.Group(timezone.Now())
	if err != nil {
		return res, err
	}

	group.Filters = append(group.Filters, gDto.Filter{
		Field:    model.FieldCustomerID,
		Value:    customerID,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	params.RestrictSort(model.TableName, model.FieldCreatedAt)

	total, err := s.repo.Count(ctx, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	bookings, err := s.repo.GetAll(ctx, params, group)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(bookings, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, err := customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	booking, err := s.findOwned(ctx, id, customerID)
	if err != nil {
		return res, err
	}

	res.FromModel(booking)

	return res, nil
}

// Cancel moves the booking to cancelled with a compare-and-set on the status that was checked,
// so of two concurrent cancels exactly one wins.
func (s *serviceImpl) Cancel(ctx context.Context, req dto.CancelBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customerID, err := customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	booking, err := s.findOwned(ctx, id, customerID)
	if err != nil {
		return res, err
	}

	now := timezone.Now()

	if !booking.CanBeCancelled(now, s.cancelWindow()) {
		return res, failure.BadRequestFromString(msgCannotCancel) // nolint:wrapcheck
	}

	reason := req.ReasonOrDefault()
	cancelledBy := model.CancelledByCustomer

	fields := map[string]any{
		model.FieldBookingStatus: model.StatusCancelled,
		model.FieldCancelReason:  reason,
		model.FieldCancelledAt:   now,
		model.FieldCancelledBy:   cancelledBy,
		constant.FieldModifiedAt: now,
		constant.FieldModifiedBy: customerID,
	}

	filter := ownedFilter(id, customerID)
	filter.Filters = append(filter.Filters, gDto.Filter{
		ArgName:  "observed_status",
		Field:    model.FieldBookingStatus,
		Value:    booking.BookingStatus,
		Operator: gDto.FilterOperatorEq,
		Table:    model.TableName,
	})

	affected, err := s.repo.UpdateAffected(ctx, fields, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to cancel booking")

		return res, fmt.Errorf("failed to cancel booking: %w", err)
	}

	if affected == 0 {
		log.Warn().Str("booking_id", id).Msg("booking changed concurrently, cancel rejected")

		return res, failure.BadRequestFromString(msgCannotCancel) // nolint:wrapcheck
	}

	booking.BookingStatus = model.StatusCancelled
	booking.CancellationReason = &reason
	booking.CancelledAt = &now
	booking.CancelledBy = &cancelledBy
	booking.ModifiedAt = now
	booking.ModifiedBy = customerID

	s.events.Cancelled(ctx, booking)

	res.FromModel(booking)

	return res, nil
}

// Update applies the patch only while the booking is neither cancelled nor completed. The status
// condition is part of the UPDATE itself.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBookingRequest, id string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if req.IsEmpty() {
		return res, failure.BadRequestFromString(msgNothingToUpdate) // nolint:wrapcheck
	}

	customerID, err := customerFromContext(ctx)
	if err != nil {
		return res, err
	}

	filter := ownedFilter(id, customerID)

	for _, status := range []model.BookingStatus{model.StatusCancelled, model.StatusCompleted} {
		filter.Filters = append(filter.Filters, gDto.Filter{
			ArgName:  "excluded_" + string(status),
			Field:    model.FieldBookingStatus,
			Value:    status,
			Operator: gDto.FilterOperatorNotEq,
			Table:    model.TableName,
		})
	}

	affected, err := s.repo.UpdateAffected(ctx, shared.TransformFields(req.Patch(), customerID), filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to update booking")

		return res, fmt.Errorf("failed to update booking: %w", err)
	}

	booking, err := s.findOwned(ctx, id, customerID)
	if err != nil {
		return res, err
	}

	if affected == 0 {
		return res, failure.BadRequestFromString(msgCannotUpdate) // nolint:wrapcheck
	}

	res.FromModel(booking)

	return res, nil
}

func (s *serviceImpl) findOwned(ctx context.Context, id, customerID string) (model.Booking, error) {
	booking, err := s.repo.Get(ctx, ownedFilter(id, customerID))
	if err != nil {
		log.Error().Err(err).Msg("failed to get booking")

		return booking, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return booking, failure.NotFound(msgBookingNotFound) // nolint:wrapcheck
	}

	return booking, nil
}

func (s *serviceImpl) cancelWindow() time.Duration {
	if hours := s.cfg.Booking.CancellationWindowHours; hours > 0 {
		return time.Duration(hours) * time.Hour
	}

	return model.DefaultCancelWindow
}

func ownedFilter(id, customerID string) gDto.FilterGroup {
	return shared.FilterByFields(model.TableName, map[string]any{
		model.FieldID:         id,
		model.FieldCustomerID: customerID,
	})
}

func customerFromContext(ctx context.Context) (string, error) {
	caller, err := identity.Require(ctx)
	if err != nil {
		return constant.Empty, err //nolint:wrapcheck
	}

	if caller.Domain != identity.DomainCustomer {
		return constant.Empty, failure.Forbidden(msgCustomersOnly) // nolint:wrapcheck
	}

	return caller.ID, nil
}
