package model

import (
	"staybook/shared/model"
	"time"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID            = "id"
	FieldCustomerID    = "customer_id"
	FieldHotelID       = "hotel_id"
	FieldCheckInDate   = "check_in_date"
	FieldCheckOutDate  = "check_out_date"
	FieldBookingStatus = "booking_status"
	FieldCancelReason  = "cancellation_reason"
	FieldCancelledAt   = "cancelled_at"
	FieldCancelledBy   = "cancelled_by"
	FieldCreatedAt     = "created_at"

	ConstraintReference = "bookings_booking_reference_key"
)

const (
	DefaultCancelReason  = "Cancelled by customer"
	DefaultCancelWindow  = 24 * time.Hour
	DefaultPaymentMethod = PaymentMethodCreditCard
	DefaultNumberOfRooms = 1
)

// CustomerSnapshot is copied from the customer at creation and never updated afterwards.
type CustomerSnapshot struct {
	Name  string `db:"customer_name"`
	Email string `db:"customer_email"`
	Phone string `db:"customer_phone"`
}

// HotelSnapshot is copied from the hotel at creation and never updated afterwards.
type HotelSnapshot struct {
	Name    string `db:"hotel_name"`
	Address string `db:"hotel_address"`
	City    string `db:"hotel_city"`
}

type GuestDetails struct {
	Adults   int `db:"adults"`
	Children int `db:"children"`
}

type Booking struct {
	ID                 string        `db:"id"`
	Reference          string        `db:"booking_reference"`
	CustomerID         string        `db:"customer_id"`
	HotelID            string        `db:"hotel_id"`
	RoomType           string        `db:"room_type"`
	NumberOfRooms      int           `db:"number_of_rooms"`
	MaxGuests          int           `db:"max_guests"`
	PricePerNight      float64       `db:"price_per_night"`
	CheckInDate        time.Time     `db:"check_in_date"`
	CheckOutDate       time.Time     `db:"check_out_date"`
	NumberOfNights     int           `db:"number_of_nights"`
	NumberOfGuests     int           `db:"number_of_guests"`
	TotalAmount        float64       `db:"total_amount"`
	PaymentStatus      PaymentStatus `db:"payment_status"`
	PaymentMethod      PaymentMethod `db:"payment_method"`
	TransactionID      *string       `db:"transaction_id"`
	BookingStatus      BookingStatus `db:"booking_status"`
	SpecialRequests    string        `db:"special_requests"`
	ArrivalTime        string        `db:"arrival_time"`
	IsPetFriendly      bool          `db:"is_pet_friendly"`
	Notes              string        `db:"notes"`
	CancellationReason *string       `db:"cancellation_reason"`
	CancelledAt        *time.Time    `db:"cancelled_at"`
	CancelledBy        *CancelledBy  `db:"cancelled_by"`
	CustomerSnapshot
	HotelSnapshot
	GuestDetails
	model.Metadata
}

// CanBeCancelled reports whether a customer may still cancel: the booking is neither cancelled
// nor completed and check-in is more than window away from now. No-show bookings stay cancellable.
func (b Booking) CanBeCancelled(now time.Time, window time.Duration) bool {
	if b.BookingStatus == StatusCancelled || b.BookingStatus == StatusCompleted {
		return false
	}

	return b.CheckInDate.Sub(now) > window
}

// Occupies reports whether the booking holds rooms at the given instant.
func (b Booking) Occupies(now time.Time) bool {
	return b.BookingStatus == StatusConfirmed && !b.CheckInDate.After(now) && !b.CheckOutDate.Before(now)
}
