package dto

import (
	"net/http"
	"staybook/internal/domains/booking/model"
	hotelModel "staybook/internal/domains/hotel/model"
	"staybook/shared"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	msgInvalidCheckIn  = "Invalid check-in date"
	msgInvalidCheckOut = "Invalid check-out date"
	msgCheckInPast     = "Check-in date cannot be in the past"
	msgCheckOutOrder   = "Check-out date must be after check-in date"
)

type GuestDetailsRequest struct {
	Adults   int `json:"adults"   validate:"gte=1"`
	Children int `json:"children" validate:"gte=0"`
}

type CreateBookingRequest struct {
	HotelID         string               `json:"hotelId"         validate:"required,uuid"`
	RoomType        string               `json:"roomType"        validate:"required"`
	NumberOfRooms   int                  `json:"numberOfRooms"   validate:"omitempty,min=1"`
	CheckInDate     string               `json:"checkInDate"     validate:"required"`
	CheckOutDate    string               `json:"checkOutDate"    validate:"required"`
	NumberOfGuests  int                  `json:"numberOfGuests"  validate:"required,min=1"`
	GuestDetails    *GuestDetailsRequest `json:"guestDetails"    validate:"omitempty"`
	SpecialRequests string               `json:"specialRequests" validate:"omitempty,max=500"`
	ArrivalTime     string               `json:"arrivalTime"`
	IsPetFriendly   bool                 `json:"isPetFriendly"`
	PaymentMethod   string               `json:"paymentMethod"   validate:"omitempty,oneof=credit_card debit_card upi net_banking cash"`
}

// Stay is a validated check-in/check-out pair.
type Stay struct {
	CheckIn  time.Time
	CheckOut time.Time
}

func (s Stay) Nights() int {
	return model.Nights(s.CheckIn, s.CheckOut)
}

// Stay parses the requested dates. Check-in may be any time today or later, where today is the
// calendar day in the application timezone; check-out must follow it.
func (r *CreateBookingRequest) Stay(now time.Time) (Stay, error) {
	checkIn, err := timezone.ParseDate(r.CheckInDate)
	if err != nil {
		return Stay{}, failure.BadRequestFromString(msgInvalidCheckIn) // nolint:wrapcheck
	}

	checkOut, err := timezone.ParseDate(r.CheckOutDate)
	if err != nil {
		return Stay{}, failure.BadRequestFromString(msgInvalidCheckOut) // nolint:wrapcheck
	}

	today := timezone.CalendarDate(timezone.ToAppTime(now))
	if timezone.CalendarDate(checkIn).Before(today) {
		return Stay{}, failure.BadRequestFromString(msgCheckInPast) // nolint:wrapcheck
	}

	if !checkOut.After(checkIn) {
		return Stay{}, failure.BadRequestFromString(msgCheckOutOrder) // nolint:wrapcheck
	}

	return Stay{CheckIn: checkIn, CheckOut: checkOut}, nil
}

func (r *CreateBookingRequest) ToModel(
	customerID string,
	customer model.CustomerSnapshot,
	hotel hotelModel.Hotel,
	room hotelModel.RoomType,
	stay Stay,
) model.Booking {
	rooms := r.NumberOfRooms
	if rooms < 1 {
		rooms = model.DefaultNumberOfRooms
	}

	guests := model.GuestDetails{Adults: r.NumberOfGuests}
	if r.GuestDetails != nil {
		guests = model.GuestDetails{Adults: r.GuestDetails.Adults, Children: r.GuestDetails.Children}
	}

	method := model.DefaultPaymentMethod
	if r.PaymentMethod != constant.Empty {
		method = model.PaymentMethod(r.PaymentMethod)
	}

	nights := stay.Nights()
	now := timezone.Now()

	return model.Booking{
		ID:               uuid.NewString(),
		CustomerID:       customerID,
		HotelID:          hotel.ID,
		RoomType:         room.Name,
		NumberOfRooms:    rooms,
		MaxGuests:        room.MaxGuests,
		PricePerNight:    room.PricePerNight,
		CheckInDate:      stay.CheckIn,
		CheckOutDate:     stay.CheckOut,
		NumberOfNights:   nights,
		NumberOfGuests:   r.NumberOfGuests,
		TotalAmount:      model.Total(room.PricePerNight, nights, rooms),
		PaymentStatus:    model.PaymentPending,
		PaymentMethod:    method,
		BookingStatus:    model.StatusConfirmed,
		SpecialRequests:  strings.TrimSpace(r.SpecialRequests),
		ArrivalTime:      strings.TrimSpace(r.ArrivalTime),
		IsPetFriendly:    r.IsPetFriendly,
		CustomerSnapshot: customer,
		HotelSnapshot: model.HotelSnapshot{
			Name:    hotel.HotelName,
			Address: hotel.Address,
			City:    hotel.City,
		},
		GuestDetails: guests,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type CancelBookingRequest struct {
	Reason string `json:"reason" validate:"omitempty,max=500"`
}

func (r *CancelBookingRequest) ReasonOrDefault() string {
	if reason := strings.TrimSpace(r.Reason); reason != constant.Empty {
		return reason
	}

	return model.DefaultCancelReason
}

type UpdateBookingRequest struct {
	SpecialRequests *string              `json:"specialRequests" validate:"omitempty,max=500"`
	ArrivalTime     *string              `json:"arrivalTime"`
	GuestDetails    *GuestDetailsRequest `json:"guestDetails"    validate:"omitempty"`
	IsPetFriendly   *bool                `json:"isPetFriendly"`
	Notes           *string              `json:"notes"           validate:"omitempty,max=1000"`
}

// BookingPatch holds the columns a customer may still change. Nil fields are left untouched.
type BookingPatch struct {
	SpecialRequests *string `db:"special_requests"`
	ArrivalTime     *string `db:"arrival_time"`
	Adults          *int    `db:"adults"`
	Children        *int    `db:"children"`
	IsPetFriendly   *bool   `db:"is_pet_friendly"`
	Notes           *string `db:"notes"`
}

func (r *UpdateBookingRequest) Patch() BookingPatch {
	patch := BookingPatch{
		SpecialRequests: r.SpecialRequests,
		ArrivalTime:     r.ArrivalTime,
		IsPetFriendly:   r.IsPetFriendly,
		Notes:           r.Notes,
	}

	if r.GuestDetails != nil {
		adults, children := r.GuestDetails.Adults, r.GuestDetails.Children
		patch.Adults = &adults
		patch.Children = &children
	}

	return patch
}

func (r *UpdateBookingRequest) IsEmpty() bool {
	return r.SpecialRequests == nil && r.ArrivalTime == nil && r.GuestDetails == nil &&
		r.IsPetFriendly == nil && r.Notes == nil
}

// BookingFilter carries the optional list filters. HotelID only applies to vendor listings.
type BookingFilter struct {
	Status   string
	Upcoming bool
	HotelID  string
}

// FromRequest reads status, upcoming and hotelId from the query string.
func (f *BookingFilter) FromRequest(r *http.Request) {
	query := r.URL.Query()

	f.Status = strings.TrimSpace(query.Get(constant.RequestParamStatus))
	f.HotelID = strings.TrimSpace(query.Get(constant.RequestParamHotelID))

	if upcoming := shared.ConvertStringToBool(query.Get(constant.RequestParamUpcoming)); upcoming != nil {
		f.Upcoming = *upcoming
	}
}

// Group builds the filters shared by customer and vendor listings.
func (f BookingFilter) Group(now time.Time) (gDto.FilterGroup, error) {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	if f.Status != constant.Empty {
		status, err := model.ParseBookingStatus(f.Status)
		if err != nil {
			return group, failure.BadRequestFromString("Invalid booking status") // nolint:wrapcheck
		}

		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "status_filter",
			Field:    model.FieldBookingStatus,
			Value:    status,
			Operator: gDto.FilterOperatorEq,
			Table:    model.TableName,
		})
	}

	if f.Upcoming {
		group.Filters = append(group.Filters, gDto.Filter{
			ArgName:  "upcoming_from",
			Field:    model.FieldCheckInDate,
			Value:    now,
			Operator: gDto.FilterOperatorGreaterEq,
			Table:    model.TableName,
		})
	}

	return group, nil
}

type GuestDetailsResponse struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type BookingResponse struct {
	ID                 string               `json:"id"`
	BookingReference   string               `json:"bookingReference"`
	CustomerID         string               `json:"customer"`
	CustomerName       string               `json:"customerName"`
	CustomerEmail      string               `json:"customerEmail"`
	CustomerPhone      string               `json:"customerPhone"`
	HotelID            string               `json:"hotel"`
	HotelName          string               `json:"hotelName"`
	HotelAddress       string               `json:"hotelAddress"`
	HotelCity          string               `json:"hotelCity"`
	RoomType           string               `json:"roomType"`
	NumberOfRooms      int                  `json:"numberOfRooms"`
	MaxGuests          int                  `json:"maxGuests"`
	PricePerNight      float64              `json:"pricePerNight"`
	CheckInDate        string               `json:"checkInDate"`
	CheckOutDate       string               `json:"checkOutDate"`
	NumberOfNights     int                  `json:"numberOfNights"`
	NumberOfGuests     int                  `json:"numberOfGuests"`
	GuestDetails       GuestDetailsResponse `json:"guestDetails"`
	TotalAmount        float64              `json:"totalAmount"`
	PaymentStatus      string               `json:"paymentStatus"`
	PaymentMethod      string               `json:"paymentMethod"`
	TransactionID      *string              `json:"transactionId,omitempty"`
	BookingStatus      string               `json:"bookingStatus"`
	SpecialRequests    string               `json:"specialRequests"`
	ArrivalTime        string               `json:"arrivalTime"`
	IsPetFriendly      bool                 `json:"isPetFriendly"`
	Notes              string               `json:"notes,omitempty"`
	CancellationReason *string              `json:"cancellationReason,omitempty"`
	CancelledAt        *string              `json:"cancelledAt,omitempty"`
	CancelledBy        *string              `json:"cancelledBy,omitempty"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(m model.Booking) {
	r.ID = m.ID
	r.BookingReference = m.Reference
	r.CustomerID = m.CustomerID
	r.CustomerName = m.CustomerSnapshot.Name
	r.CustomerEmail = m.CustomerSnapshot.Email
	r.CustomerPhone = m.CustomerSnapshot.Phone
	r.HotelID = m.HotelID
	r.HotelName = m.HotelSnapshot.Name
	r.HotelAddress = m.HotelSnapshot.Address
	r.HotelCity = m.HotelSnapshot.City
	r.RoomType = m.RoomType
	r.NumberOfRooms = m.NumberOfRooms
	r.MaxGuests = m.MaxGuests
	r.PricePerNight = m.PricePerNight
	r.CheckInDate = timezone.Format(m.CheckInDate, constant.DateFormat)
	r.CheckOutDate = timezone.Format(m.CheckOutDate, constant.DateFormat)
	r.NumberOfNights = m.NumberOfNights
	r.NumberOfGuests = m.NumberOfGuests
	r.GuestDetails = GuestDetailsResponse{Adults: m.Adults, Children: m.Children}
	r.TotalAmount = m.TotalAmount
	r.PaymentStatus = string(m.PaymentStatus)
	r.PaymentMethod = string(m.PaymentMethod)
	r.TransactionID = m.TransactionID
	r.BookingStatus = string(m.BookingStatus)
	r.SpecialRequests = m.SpecialRequests
	r.ArrivalTime = m.ArrivalTime
	r.IsPetFriendly = m.IsPetFriendly
	r.Notes = m.Notes
	r.CancellationReason = m.CancellationReason

	if m.CancelledAt != nil {
		cancelledAt := timezone.Format(*m.CancelledAt, constant.DateFormat)
		r.CancelledAt = &cancelledAt
	}

	if m.CancelledBy != nil {
		cancelledBy := string(*m.CancelledBy)
		r.CancelledBy = &cancelledBy
	}

	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Booking) []BookingResponse {
	res := make([]BookingResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	Count     int               `json:"count"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Bookings = FromModels(models)
	r.Count = len(r.Bookings)
}

type StatsResponse struct {
	Total        int     `json:"total"`
	Confirmed    int     `json:"confirmed"`
	Pending      int     `json:"pending"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
	NoShow       int     `json:"noShow"`
	TotalRevenue float64 `json:"totalRevenue"`
}

func (r *StatsResponse) FromSummaries(rows model.Summaries) {
	r.Total = rows.Bookings()
	r.Confirmed = rows.Count(model.StatusConfirmed)
	r.Pending = rows.Count(model.StatusPending)
	r.Completed = rows.Count(model.StatusCompleted)
	r.Cancelled = rows.Count(model.StatusCancelled)
	r.NoShow = rows.Count(model.StatusNoShow)
	r.TotalRevenue = rows.Revenue()
}

type VendorBookingsResponse struct {
	GetBookingsResponse
	Stats StatsResponse `json:"stats"`
}

type RecentBooking struct {
	ID       string  `json:"id"`
	Guest    string  `json:"guest"`
	Property string  `json:"property"`
	Dates    string  `json:"dates"`
	Amount   float64 `json:"amount"`
	Status   string  `json:"status"`
}

type Activity struct {
	ID      int    `json:"id"`
	Type    string `json:"type"`
	Message string `json:"message"`
	Time    string `json:"time"`
}

type DashboardResponse struct {
	TotalBookings  int             `json:"totalBookings"`
	MonthlyRevenue float64         `json:"monthlyRevenue"`
	ActiveListings int             `json:"activeListings"`
	OccupancyRate  float64         `json:"occupancyRate"`
	RecentBookings []RecentBooking `json:"recentBookings"`
	RecentActivity []Activity      `json:"recentActivity"`
}

const (
	recentBookingsLimit = 5
	activityType        = "booking"
)

// FromRecent fills both recent lists from bookings sorted newest first.
func (r *DashboardResponse) FromRecent(bookings []model.Booking, now time.Time) {
	r.RecentBookings = make([]RecentBooking, 0, min(len(bookings), recentBookingsLimit))
	r.RecentActivity = make([]Activity, 0, len(bookings))

	for i, booking := range bookings {
		if i < recentBookingsLimit {
			r.RecentBookings = append(r.RecentBookings, RecentBooking{
				ID:       booking.Reference,
				Guest:    booking.CustomerSnapshot.Name,
				Property: booking.HotelSnapshot.Name,
				Dates: booking.CheckInDate.UTC().Format(constant.DateOnlyFormat) + " - " +
					booking.CheckOutDate.UTC().Format(constant.DateOnlyFormat),
				Amount: booking.TotalAmount,
				Status: string(booking.BookingStatus),
			})
		}

		r.RecentActivity = append(r.RecentActivity, Activity{
			ID:      i + 1,
			Type:    activityType,
			Message: "New booking received for " + booking.HotelSnapshot.Name,
			Time:    model.TimeAgo(now, booking.CreatedAt),
		})
	}
}
