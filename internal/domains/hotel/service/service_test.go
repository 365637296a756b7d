package service_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"staybook/config"
	"staybook/infras/otel/mocks"
	s3Mocks "staybook/infras/s3/mocks"
	categoryMocks "staybook/internal/domains/category/mocks"
	hotelMocks "staybook/internal/domains/hotel/mocks"
	"staybook/internal/domains/hotel/model"
	"staybook/internal/domains/hotel/model/dto"
	"staybook/internal/domains/hotel/service"
	cacheMocks "staybook/shared/cache/mocks"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/identity"
	"strings"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const cdn = "https://cdn.staybook.example/"

type deps struct {
	repo     *hotelMocks.MockHotel
	category *categoryMocks.MockCategory
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
}

func newService(t *testing.T) (service.Hotel, deps) {
	t.Helper()

	ctrl := gomock.NewController(t)
	d := deps{
		repo:     hotelMocks.NewMockHotel(ctrl),
		category: categoryMocks.NewMockCategory(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.External.S3.BucketName = "staybook"

	d.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	d.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return service.New(d.repo, d.category, cfg, d.cache, mocks.NewOtel(), d.s3), d
}

// fileHeader round-trips a file through a multipart body so the header can be opened like a real upload.
func fileHeader(t *testing.T, name, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	header := textproto.MIMEHeader{}
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, name))
	header.Set("Content-Type", contentType)

	part, err := writer.CreatePart(header)
	require.NoError(t, err)

	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	form, err := multipart.NewReader(body, writer.Boundary()).ReadForm(1 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { _ = form.RemoveAll() })

	return form.File["file"][0]
}

func vendorCtx(id string) context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{ID: id, Domain: identity.DomainVendor, Active: true})
}

func adminCtx() context.Context {
	return identity.WithIdentity(context.Background(), identity.Identity{ID: "admin-1", Domain: identity.DomainAdmin, Active: true})
}

func createRequest() dto.CreateHotelRequest {
	return dto.CreateHotelRequest{
		BasicInfo:   dto.BasicInfo{HotelName: "Sea Breeze", Address: "1 Beach Rd", City: "Goa", Country: "India", StarRating: 4},
		ContactInfo: dto.ContactInfo{Phone: "+91000", Email: "stay@seabreeze.example"},
		Amenities:   []string{"wifi", "parking"},
		RoomTypes: []dto.RoomTypeRequest{
			{RoomType: "Deluxe", PricePerNight: 2000, MaxGuests: 2, AvailableRooms: 5},
			{RoomType: "Suite", PricePerNight: 4500, MaxGuests: 4, AvailableRooms: 2},
		},
	}
}

func uploadByName(_ context.Context, _, directory string, _ multipart.File, header *multipart.FileHeader, _ string) (string, error) {
	return cdn + directory + "/" + header.Filename, nil
}

func TestHotelService_Create(t *testing.T) {
	t.Run("vendor always owns the hotel and images keep their slots", func(t *testing.T) {
		svc, d := newService(t)

		req := createRequest()
		other := "00000000-0000-0000-0000-000000000000"
		req.VendorID = &other
		req.MainImage = fileHeader(t, "main.jpg", "image/jpeg", []byte("main"))
		req.AdditionalImages = []*multipart.FileHeader{
			fileHeader(t, "lobby.png", "image/png", []byte("lobby")),
			fileHeader(t, "pool.webp", "image/webp", []byte("pool")),
		}

		d.s3.EXPECT().UploadFile(gomock.Any(), "staybook", "hotel", gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(uploadByName).Times(3)
		d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hotel model.Hotel) error {
			require.NotNil(t, hotel.VendorID)
			assert.Equal(t, "vendor-1", *hotel.VendorID)
			assert.Equal(t, cdn+"hotel/main.jpg", hotel.MainImage)
			assert.Equal(t, pq.StringArray{cdn + "hotel/lobby.png", cdn + "hotel/pool.webp"}, hotel.AdditionalImages)
			assert.Len(t, hotel.RoomTypes, 2)

			return nil
		})

		res, err := svc.Create(vendorCtx("vendor-1"), req)
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "Sea Breeze", res.BasicInfo.HotelName)
		assert.Equal(t, cdn+"hotel/main.jpg", res.Images.MainImage)
	})

	t.Run("admin may create an unowned hotel", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, hotel model.Hotel) error {
			assert.Nil(t, hotel.VendorID)
			assert.Empty(t, hotel.MainImage)

			return nil
		})

		_, err := svc.Create(adminCtx(), createRequest())
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
	})

	t.Run("customers cannot create hotels", func(t *testing.T) {
		svc, _ := newService(t)
		ctx := identity.WithIdentity(context.Background(), identity.Identity{ID: "c-1", Domain: identity.DomainCustomer, Active: true})

		_, err := svc.Create(ctx, createRequest())
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("duplicate room type names", func(t *testing.T) {
		svc, _ := newService(t)

		req := createRequest()
		req.RoomTypes = append(req.RoomTypes, dto.RoomTypeRequest{RoomType: "Deluxe", PricePerNight: 1, MaxGuests: 1})

		_, err := svc.Create(vendorCtx("vendor-1"), req)
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
		assert.True(t, strings.HasPrefix(err.Error(), "Duplicate room type name"))
	})

	t.Run("unknown category", func(t *testing.T) {
		svc, d := newService(t)

		req := createRequest()
		category := "4f1b6a8e-2c1d-4b53-9f0e-8c1a2b3c4d5e"
		req.CategoryID = &category

		d.category.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		_, err := svc.Create(vendorCtx("vendor-1"), req)
		assert.EqualError(t, err, "Category not found")
	})

	t.Run("oversized image is rejected before upload", func(t *testing.T) {
		svc, _ := newService(t)

		req := createRequest()
		req.MainImage = fileHeader(t, "huge.jpg", "image/jpeg", []byte("x"))
		req.MainImage.Size = 6 << 20

		_, err := svc.Create(vendorCtx("vendor-1"), req)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("failed upload removes the uploaded images", func(t *testing.T) {
		svc, d := newService(t)

		req := createRequest()
		req.MainImage = fileHeader(t, "main.jpg", "image/jpeg", []byte("main"))
		req.AdditionalImages = []*multipart.FileHeader{fileHeader(t, "broken.png", "image/png", []byte("broken"))}

		d.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(ctx context.Context, bucket, directory string, file multipart.File, header *multipart.FileHeader, name string) (string, error) {
				if header.Filename == "broken.png" {
					return "", errors.New("s3 unavailable")
				}

				return uploadByName(ctx, bucket, directory, file, header, name)
			}).Times(2)
		d.s3.EXPECT().GetObjectNameFromURL("staybook", cdn+"hotel/main.jpg").Return("hotel/main.jpg")
		d.s3.EXPECT().DeleteFile(gomock.Any(), "staybook", "", "hotel/main.jpg").Return(nil)

		_, err := svc.Create(vendorCtx("vendor-1"), req)
		assert.Error(t, err)
		assert.Equal(t, http.StatusInternalServerError, failure.GetCode(err))
	})

	t.Run("failed insert removes the uploaded images", func(t *testing.T) {
		svc, d := newService(t)

		req := createRequest()
		req.MainImage = fileHeader(t, "main.jpg", "image/jpeg", []byte("main"))

		d.s3.EXPECT().UploadFile(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(uploadByName)
		d.repo.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(errors.New("database error"))
		d.s3.EXPECT().GetObjectNameFromURL("staybook", cdn+"hotel/main.jpg").Return("hotel/main.jpg")
		d.s3.EXPECT().DeleteFile(gomock.Any(), "staybook", "", "hotel/main.jpg").Return(errors.New("still down"))

		_, err := svc.Create(vendorCtx("vendor-1"), req)
		assert.Error(t, err)
	})
}

func TestHotelService_Update(t *testing.T) {
	owner := "vendor-1"
	hotel := model.Hotel{ID: "hotel-1", VendorID: &owner, HotelName: "Sea Breeze", RoomTypes: model.RoomTypes{{Name: "Deluxe"}}}
	name := "Sea Breeze Resort"

	tests := []struct {
		name string
		ctx  context.Context
		code int
	}{
		{name: "owner vendor", ctx: vendorCtx("vendor-1")},
		{name: "admin", ctx: adminCtx()},
		{name: "another vendor", ctx: vendorCtx("vendor-2"), code: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, d := newService(t)

			d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel, nil)

			if tt.code == 0 {
				updated := hotel
				updated.HotelName = name

				d.repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, &name, fields[model.FieldHotelName])
						assert.NotContains(t, fields, "room_types")

						return nil
					})
				d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(updated, nil)
			}

			res, err := svc.Update(tt.ctx, dto.UpdateHotelRequest{BasicInfo: &dto.BasicInfoPatch{HotelName: &name}}, "hotel-1")
			time.Sleep(10 * time.Millisecond)

			if tt.code != 0 {
				assert.Equal(t, tt.code, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, name, res.BasicInfo.HotelName)
		})
	}

	t.Run("legacy unowned hotel is admin only", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-legacy"}, nil)

		_, err := svc.Update(vendorCtx("vendor-1"), dto.UpdateHotelRequest{BasicInfo: &dto.BasicInfoPatch{HotelName: &name}}, "hotel-legacy")
		assert.Equal(t, http.StatusForbidden, failure.GetCode(err))
	})

	t.Run("duplicate room types", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(hotel, nil)

		roomTypes := []dto.RoomTypeRequest{{RoomType: "Suite"}, {RoomType: "Suite"}}

		_, err := svc.Update(vendorCtx("vendor-1"), dto.UpdateHotelRequest{RoomTypes: &roomTypes}, "hotel-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("empty patch", func(t *testing.T) {
		svc, _ := newService(t)

		_, err := svc.Update(adminCtx(), dto.UpdateHotelRequest{}, "hotel-1")
		assert.EqualError(t, err, "No hotel fields to update")
	})

	t.Run("not found", func(t *testing.T) {
		svc, d := newService(t)

		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{}, nil)

		_, err := svc.Update(adminCtx(), dto.UpdateHotelRequest{BasicInfo: &dto.BasicInfoPatch{HotelName: &name}}, "hotel-x")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}

func TestHotelService_Get(t *testing.T) {
	t.Run("cache hit", func(t *testing.T) {
		svc, d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), "hotel:get:hotel-1", gomock.Any()).Return(nil)

		_, err := svc.Get(context.Background(), "hotel-1")
		assert.NoError(t, err)
	})

	t.Run("cache miss", func(t *testing.T) {
		svc, d := newService(t)

		d.cache.EXPECT().Get(gomock.Any(), "hotel:get:hotel-1", gomock.Any()).Return(errors.New("cache miss"))
		d.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Hotel{ID: "hotel-1", HotelName: "Sea Breeze"}, nil)

		res, err := svc.Get(context.Background(), "hotel-1")
		time.Sleep(10 * time.Millisecond)

		require.NoError(t, err)
		assert.Equal(t, "Sea Breeze", res.BasicInfo.HotelName)
		assert.Empty(t, res.Images.AdditionalImages)
	})
}

func TestHotelService_GetAll(t *testing.T) {
	svc, d := newService(t)

	d.cache.EXPECT().Get(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("cache miss")).Times(2)
	d.repo.EXPECT().Count(gomock.Any(), gomock.Any()).Return(11, nil)
	d.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Hotel, error) {
			assert.Equal(t, "hotels.created_at", params.SortBy, "unknown sort columns fall back to created_at")

			return []model.Hotel{{ID: "hotel-1"}}, nil
		})

	res, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10, SortBy: "password; DROP TABLE"}, gDto.FilterGroup{})
	time.Sleep(10 * time.Millisecond)

	require.NoError(t, err)
	assert.Equal(t, 2, res.TotalPage)
	assert.Len(t, res.Hotels, 1)
}
