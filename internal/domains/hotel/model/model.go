package model

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"staybook/shared/model"

	"github.com/lib/pq"
)

const (
	TableName  = "hotels"
	EntityName = "hotel"

	FieldID         = "id"
	FieldVendorID   = "vendor_id"
	FieldCategoryID = "category_id"
	FieldHotelName  = "hotel_name"
	FieldCity       = "city"
	FieldStarRating = "star_rating"
	FieldRoomTypes  = "room_types"
	FieldCreatedAt  = "created_at"
)

var ErrUnsupportedRoomTypes = errors.New("unsupported room_types column type")

type Hotel struct {
	ID               string         `db:"id"`
	VendorID         *string        `db:"vendor_id"`
	CategoryID       *string        `db:"category_id"`
	HotelName        string         `db:"hotel_name"`
	Description      string         `db:"description"`
	StarRating       int            `db:"star_rating"`
	Address          string         `db:"address"`
	City             string         `db:"city"`
	Country          string         `db:"country"`
	Phone            string         `db:"phone"`
	Email            string         `db:"email"`
	CheckInTime      string         `db:"check_in_time"`
	CheckOutTime     string         `db:"check_out_time"`
	Amenities        pq.StringArray `db:"amenities"`
	MainImage        string         `db:"main_image"`
	AdditionalImages pq.StringArray `db:"additional_images"`
	RoomTypes        RoomTypes      `db:"room_types"`
	model.Metadata
}

// Images lists every stored image URL of the hotel.
func (h Hotel) Images() []string {
	images := make([]string, 0, len(h.AdditionalImages)+1)
	if h.MainImage != "" {
		images = append(images, h.MainImage)
	}

	return append(images, h.AdditionalImages...)
}

// OwnedBy reports whether the hotel belongs to vendorID. Unowned hotels belong to nobody.
func (h Hotel) OwnedBy(vendorID string) bool {
	return h.VendorID != nil && *h.VendorID == vendorID
}

type RoomType struct {
	Name           string   `json:"roomType"`
	PricePerNight  float64  `json:"pricePerNight"`
	MaxGuests      int      `json:"maxGuests"`
	AvailableRooms int      `json:"availableRooms"`
	Description    string   `json:"description,omitempty"`
	Amenities      []string `json:"amenities,omitempty"`
}

// RoomTypes is stored as a JSONB array and keeps its declared order.
type RoomTypes []RoomType

func (r RoomTypes) Value() (driver.Value, error) {
	if r == nil {
		return []byte("[]"), nil
	}

	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal room types: %w", err)
	}

	return raw, nil
}

func (r *RoomTypes) Scan(src any) error {
	var raw []byte

	switch value := src.(type) {
	case nil:
		*r = RoomTypes{}

		return nil
	case []byte:
		raw = value
	case string:
		raw = []byte(value)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedRoomTypes, src)
	}

	if err := json.Unmarshal(raw, r); err != nil {
		return fmt.Errorf("failed to unmarshal room types: %w", err)
	}

	return nil
}

// Find looks a room type up by its exact, case-sensitive name.
func (r RoomTypes) Find(name string) (RoomType, bool) {
	for _, roomType := range r {
		if roomType.Name == name {
			return roomType, true
		}
	}

	return RoomType{}, false
}

// Duplicate returns the first room type name declared more than once.
func (r RoomTypes) Duplicate() (string, bool) {
	seen := make(map[string]struct{}, len(r))

	for _, roomType := range r {
		if _, ok := seen[roomType.Name]; ok {
			return roomType.Name, true
		}

		seen[roomType.Name] = struct{}{}
	}

	return "", false
}

func (r RoomTypes) Inventory() int {
	total := 0
	for _, roomType := range r {
		total += roomType.AvailableRooms
	}

	return total
}
