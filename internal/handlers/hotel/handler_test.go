package hotel_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"staybook/infras/otel/mocks"
	hotelMocks "staybook/internal/domains/hotel/service/mocks"
	"staybook/internal/domains/hotel/model/dto"
	"staybook/internal/handlers/hotel"
	gDto "staybook/shared/dto"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	basicInfo   = `{"hotelName":"Sea Breeze","address":"1 Beach Rd","city":"Goa","country":"India","starRating":4}`
	contactInfo = `{"phone":"9876543210","email":"desk@seabreeze.example"}`
	roomTypes   = `[{"roomType":"Deluxe","pricePerNight":2000,"maxGuests":3,"availableRooms":5}]`
)

type image struct {
	field       string
	name        string
	contentType string
}

func newRouter(t *testing.T) (*chi.Mux, *hotelMocks.MockHotel) {
	t.Helper()

	svc := hotelMocks.NewMockHotel(gomock.NewController(t))
	handler := hotel.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func multipartRequest(t *testing.T, fields map[string]string, images ...image) *http.Request {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	for name, value := range fields {
		require.NoError(t, writer.WriteField(name, value))
	}

	for _, img := range images {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="`+img.field+`"; filename="`+img.name+`"`)
		header.Set("Content-Type", img.contentType)

		part, err := writer.CreatePart(header)
		require.NoError(t, err)

		_, err = part.Write([]byte("image-bytes"))
		require.NoError(t, err)
	}

	require.NoError(t, writer.Close())

	request := httptest.NewRequest(http.MethodPost, "/hotels", body)
	request.Header.Set("Content-Type", writer.FormDataContentType())

	return request
}

func TestHandler_CreateHotel(t *testing.T) {
	validFields := map[string]string{
		"basicInfo":   basicInfo,
		"contactInfo": contactInfo,
		"amenities":   `["wifi","pool"]`,
		"roomTypes":   roomTypes,
	}

	t.Run("created with images", func(t *testing.T) {
		router, svc := newRouter(t)

		svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, req dto.CreateHotelRequest) (dto.HotelResponse, error) {
				assert.Equal(t, "Sea Breeze", req.BasicInfo.HotelName)
				assert.Equal(t, []string{"wifi", "pool"}, req.Amenities)
				require.NotNil(t, req.MainImage)
				assert.Equal(t, "main.jpg", req.MainImage.Filename)
				assert.Len(t, req.AdditionalImages, 2)

				return dto.HotelResponse{ID: "hotel-1"}, nil
			})

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, validFields,
			image{field: "mainImage", name: "main.jpg", contentType: "image/jpeg"},
			image{field: "additionalImages", name: "lobby.png", contentType: "image/png"},
			image{field: "additionalImages", name: "pool.webp", contentType: "image/webp"},
		))

		assert.Equal(t, http.StatusCreated, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Hotel created successfully")
	})

	t.Run("rejects unsupported image types", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, validFields,
			image{field: "mainImage", name: "menu.pdf", contentType: "application/pdf"},
		))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects malformed room types", func(t *testing.T) {
		router, _ := newRouter(t)

		fields := map[string]string{"basicInfo": basicInfo, "contactInfo": contactInfo, "roomTypes": "[{"}

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, fields))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "roomTypes must be valid JSON")
	})

	t.Run("requires room types", func(t *testing.T) {
		router, _ := newRouter(t)

		fields := map[string]string{"basicInfo": basicInfo, "contactInfo": contactInfo}

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, multipartRequest(t, fields))

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("rejects a json body", func(t *testing.T) {
		router, _ := newRouter(t)

		request := httptest.NewRequest(http.MethodPost, "/hotels", strings.NewReader(`{}`))
		request.Header.Set("Content-Type", "application/json")

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func TestHandler_GetHotels(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetHotelsResponse, error) {
			assert.Equal(t, 10, params.Limit)

			where, args := filter.GetWhereClause()
			assert.Contains(t, where, "hotels.city")
			assert.Equal(t, "%Goa%", args["city"])

			return dto.GetHotelsResponse{Hotels: []dto.HotelResponse{}}, nil
		})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/hotels?city=Goa", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestHandler_GetAllHotels(t *testing.T) {
	router, svc := newRouter(t)
	svc.EXPECT().List(gomock.Any()).Return([]dto.HotelResponse{{ID: "hotel-1"}}, nil)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/all-hotels", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"hotel-1"`)
}

func TestHandler_GetHotel(t *testing.T) {
	const hotelID = "0b7c3e4a-2f57-4c1e-9a51-0f8a8f8e0c11"

	t.Run("found", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Get(gomock.Any(), hotelID).Return(dto.HotelResponse{ID: hotelID}, nil)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/hotels/"+hotelID, nil))

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("malformed id", func(t *testing.T) {
		router, _ := newRouter(t)

		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, httptest.NewRequest(http.MethodPut, "/hotels/sea-breeze", strings.NewReader(`{"city":"Goa"}`)))

		assert.Equal(t, http.StatusNotFound, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Hotel not found")
	})
}
