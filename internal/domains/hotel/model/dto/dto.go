package dto

import (
	"encoding/json"
	"fmt"
	"mime/multipart"
	"staybook/internal/domains/hotel/model"
	"staybook/shared"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	gModel "staybook/shared/model"
	"staybook/shared/timezone"
	"strings"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const MaxAdditionalImages = 10

type BasicInfo struct {
	HotelName   string `json:"hotelName"   validate:"required,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	StarRating  int    `json:"starRating"  validate:"omitempty,min=1,max=5"`
	Address     string `json:"address"     validate:"required"`
	City        string `json:"city"        validate:"required"`
	Country     string `json:"country"     validate:"required"`
}

type ContactInfo struct {
	Phone        string `json:"phone"        validate:"required"`
	Email        string `json:"email"        validate:"required,email"`
	CheckInTime  string `json:"checkInTime"`
	CheckOutTime string `json:"checkOutTime"`
}

type RoomTypeRequest struct {
	RoomType       string   `json:"roomType"       validate:"required,max=100"`
	PricePerNight  float64  `json:"pricePerNight"  validate:"gt=0"`
	MaxGuests      int      `json:"maxGuests"      validate:"gte=1"`
	AvailableRooms int      `json:"availableRooms" validate:"gte=0"`
	Description    string   `json:"description"    validate:"omitempty,max=500"`
	Amenities      []string `json:"amenities"`
}

func toRoomTypes(requests []RoomTypeRequest) model.RoomTypes {
	roomTypes := make(model.RoomTypes, len(requests))
	for i, req := range requests {
		roomTypes[i] = model.RoomType{
			Name:           strings.TrimSpace(req.RoomType),
			PricePerNight:  req.PricePerNight,
			MaxGuests:      req.MaxGuests,
			AvailableRooms: req.AvailableRooms,
			Description:    req.Description,
			Amenities:      req.Amenities,
		}
	}

	return roomTypes
}

// CreateHotelForm holds the raw multipart fields. The structured parts arrive as JSON strings.
type CreateHotelForm struct {
	BasicInfo        string
	ContactInfo      string
	Amenities        string
	RoomTypes        string
	CategoryID       string
	VendorID         string
	MainImage        *multipart.FileHeader
	AdditionalImages []*multipart.FileHeader
}

func (f *CreateHotelForm) Parse() (req CreateHotelRequest, err error) {
	fields := []struct {
		name string
		raw  string
		dest any
	}{
		{"basicInfo", f.BasicInfo, &req.BasicInfo},
		{"contactInfo", f.ContactInfo, &req.ContactInfo},
		{"amenities", f.Amenities, &req.Amenities},
		{"roomTypes", f.RoomTypes, &req.RoomTypes},
	}

	for _, field := range fields {
		if strings.TrimSpace(field.raw) == constant.Empty {
			continue
		}

		if err = json.Unmarshal([]byte(field.raw), field.dest); err != nil {
			return req, failure.BadRequestFromString(fmt.Sprintf("%s must be valid JSON", field.name)) // nolint:wrapcheck
		}
	}

	if categoryID := strings.TrimSpace(f.CategoryID); categoryID != constant.Empty {
		req.CategoryID = &categoryID
	}

	if vendorID := strings.TrimSpace(f.VendorID); vendorID != constant.Empty {
		req.VendorID = &vendorID
	}

	req.MainImage = f.MainImage
	req.AdditionalImages = f.AdditionalImages

	return req, nil
}

type CreateHotelRequest struct {
	BasicInfo        BasicInfo               `validate:"required"`
	ContactInfo      ContactInfo             `validate:"required"`
	Amenities        []string                `validate:"omitempty,dive,required"`
	RoomTypes        []RoomTypeRequest       `validate:"required,min=1,dive"`
	CategoryID       *string                 `validate:"omitempty,uuid"`
	VendorID         *string                 `validate:"omitempty,uuid"`
	MainImage        *multipart.FileHeader   `validate:"omitempty,mimetypes=image/jpeg image/png image/webp"`
	AdditionalImages []*multipart.FileHeader `validate:"max=10,dive,mimetypes=image/jpeg image/png image/webp"`
}

// Images returns every uploaded file, main image first.
func (r *CreateHotelRequest) Images() []*multipart.FileHeader {
	images := make([]*multipart.FileHeader, 0, len(r.AdditionalImages)+1)
	if r.MainImage != nil {
		images = append(images, r.MainImage)
	}

	return append(images, r.AdditionalImages...)
}

func (r *CreateHotelRequest) ToModel(actor string, vendorID *string) model.Hotel {
	now := timezone.Now()

	return model.Hotel{
		ID:               uuid.NewString(),
		VendorID:         vendorID,
		CategoryID:       r.CategoryID,
		HotelName:        strings.TrimSpace(r.BasicInfo.HotelName),
		Description:      r.BasicInfo.Description,
		StarRating:       r.BasicInfo.StarRating,
		Address:          strings.TrimSpace(r.BasicInfo.Address),
		City:             strings.TrimSpace(r.BasicInfo.City),
		Country:          strings.TrimSpace(r.BasicInfo.Country),
		Phone:            strings.TrimSpace(r.ContactInfo.Phone),
		Email:            strings.TrimSpace(r.ContactInfo.Email),
		CheckInTime:      r.ContactInfo.CheckInTime,
		CheckOutTime:     r.ContactInfo.CheckOutTime,
		Amenities:        pq.StringArray(append([]string{}, r.Amenities...)),
		AdditionalImages: pq.StringArray{},
		RoomTypes:        toRoomTypes(r.RoomTypes),
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  actor,
			ModifiedBy: actor,
		},
	}
}

type BasicInfoPatch struct {
	HotelName   *string `json:"hotelName"   validate:"omitempty,min=1,max=200"`
	Description *string `json:"description" validate:"omitempty,max=2000"`
	StarRating  *int    `json:"starRating"  validate:"omitempty,min=1,max=5"`
	Address     *string `json:"address"     validate:"omitempty,min=1"`
	City        *string `json:"city"        validate:"omitempty,min=1"`
	Country     *string `json:"country"     validate:"omitempty,min=1"`
}

type ContactInfoPatch struct {
	Phone        *string `json:"phone"        validate:"omitempty,min=1"`
	Email        *string `json:"email"        validate:"omitempty,email"`
	CheckInTime  *string `json:"checkInTime"`
	CheckOutTime *string `json:"checkOutTime"`
}

type UpdateHotelRequest struct {
	BasicInfo   *BasicInfoPatch    `json:"basicInfo"`
	ContactInfo *ContactInfoPatch  `json:"contactInfo"`
	Amenities   *[]string          `json:"amenities"   validate:"omitempty,dive,required"`
	RoomTypes   *[]RoomTypeRequest `json:"roomTypes"   validate:"omitempty,min=1,dive"`
	CategoryID  *string            `json:"categoryId"  validate:"omitempty,uuid"`
}

// HotelPatch is the flat column view of UpdateHotelRequest. Nil fields are left untouched.
type HotelPatch struct {
	CategoryID   *string         `db:"category_id"`
	HotelName    *string         `db:"hotel_name"`
	Description  *string         `db:"description"`
	StarRating   *int            `db:"star_rating"`
	Address      *string         `db:"address"`
	City         *string         `db:"city"`
	Country      *string         `db:"country"`
	Phone        *string         `db:"phone"`
	Email        *string         `db:"email"`
	CheckInTime  *string         `db:"check_in_time"`
	CheckOutTime *string         `db:"check_out_time"`
	Amenities    pq.StringArray  `db:"amenities"`
	RoomTypes    model.RoomTypes `db:"room_types"`
}

func (r *UpdateHotelRequest) Patch() HotelPatch {
	patch := HotelPatch{CategoryID: r.CategoryID}

	if basic := r.BasicInfo; basic != nil {
		patch.HotelName = basic.HotelName
		patch.Description = basic.Description
		patch.StarRating = basic.StarRating
		patch.Address = basic.Address
		patch.City = basic.City
		patch.Country = basic.Country
	}

	if contact := r.ContactInfo; contact != nil {
		patch.Phone = contact.Phone
		patch.Email = contact.Email
		patch.CheckInTime = contact.CheckInTime
		patch.CheckOutTime = contact.CheckOutTime
	}

	if r.Amenities != nil {
		patch.Amenities = pq.StringArray(append([]string{}, *r.Amenities...))
	}

	if r.RoomTypes != nil {
		patch.RoomTypes = toRoomTypes(*r.RoomTypes)
	}

	return patch
}

func (r *UpdateHotelRequest) IsEmpty() bool {
	patch := r.Patch()

	return patch.CategoryID == nil && patch.HotelName == nil && patch.Description == nil &&
		patch.StarRating == nil && patch.Address == nil && patch.City == nil && patch.Country == nil &&
		patch.Phone == nil && patch.Email == nil && patch.CheckInTime == nil && patch.CheckOutTime == nil &&
		patch.Amenities == nil && patch.RoomTypes == nil
}

type ImagesResponse struct {
	MainImage        string   `json:"mainImage"`
	AdditionalImages []string `json:"additionalImages"`
}

type HotelResponse struct {
	ID          string           `json:"id"`
	VendorID    *string          `json:"vendorId"`
	CategoryID  *string          `json:"categoryId"`
	BasicInfo   BasicInfo        `json:"basicInfo"`
	ContactInfo ContactInfo      `json:"contactInfo"`
	Amenities   []string         `json:"amenities"`
	Images      ImagesResponse   `json:"images"`
	RoomTypes   []model.RoomType `json:"roomTypes"`
	gDto.Metadata
}

func (r *HotelResponse) FromModel(m model.Hotel) {
	r.ID = m.ID
	r.VendorID = m.VendorID
	r.CategoryID = m.CategoryID
	r.BasicInfo = BasicInfo{
		HotelName:   m.HotelName,
		Description: m.Description,
		StarRating:  m.StarRating,
		Address:     m.Address,
		City:        m.City,
		Country:     m.Country,
	}
	r.ContactInfo = ContactInfo{
		Phone:        m.Phone,
		Email:        m.Email,
		CheckInTime:  m.CheckInTime,
		CheckOutTime: m.CheckOutTime,
	}
	r.Amenities = append([]string{}, m.Amenities...)
	r.Images = ImagesResponse{
		MainImage:        m.MainImage,
		AdditionalImages: append([]string{}, m.AdditionalImages...),
	}
	r.RoomTypes = append([]model.RoomType{}, m.RoomTypes...)
	r.Metadata.FromModel(m.Metadata)
}

func FromModels(models []model.Hotel) []HotelResponse {
	res := make([]HotelResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}

type GetHotelsResponse struct {
	Hotels    []HotelResponse `json:"hotels"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetHotelsResponse) FromModels(models []model.Hotel, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)
	r.Hotels = FromModels(models)
}

// HotelFilter narrows the public listing. Both fields match case-insensitive substrings.
type HotelFilter struct {
	City string
	Name string
}

func (f HotelFilter) Group() gDto.FilterGroup {
	group := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd, Filters: []any{}}

	if city := strings.TrimSpace(f.City); city != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldCity,
			Value:    city,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	if name := strings.TrimSpace(f.Name); name != constant.Empty {
		group.Filters = append(group.Filters, gDto.Filter{
			Field:    model.FieldHotelName,
			Value:    name,
			Operator: gDto.FilterOperatorLike,
			Table:    model.TableName,
		})
	}

	return group
}
