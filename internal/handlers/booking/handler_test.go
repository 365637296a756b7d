package booking_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"staybook/infras/otel/mocks"
	bookingMocks "staybook/internal/domains/booking/service/mocks"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/handlers/booking"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const bookingID = "5f0c2d1e-8a43-4b6f-9d2e-7c1a0b3e4f59"

func newRouter(t *testing.T) (*chi.Mux, *bookingMocks.MockBooking) {
	t.Helper()

	svc := bookingMocks.NewMockBooking(gomock.NewController(t))
	handler := booking.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	handler.Router(router)

	return router, svc
}

func serve(router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var request *http.Request
	if body == "" {
		request = httptest.NewRequest(method, target, nil)
	} else {
		request = httptest.NewRequest(method, target, strings.NewReader(body))
	}

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	return recorder
}

func TestHandler_CreateBooking(t *testing.T) {
	const validBody = `{
		"hotelId": "0b7c3e4a-2f57-4c1e-9a51-0f8a8f8e0c11",
		"roomType": "Deluxe",
		"numberOfRooms": 2,
		"checkInDate": "2030-05-01",
		"checkOutDate": "2030-05-04",
		"numberOfGuests": 3
	}`

	tests := []struct {
		name     string
		body     string
		setup    func(svc *bookingMocks.MockBooking)
		wantCode int
		wantBody string
	}{
		{
			name: "created",
			body: validBody,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, req dto.CreateBookingRequest) (dto.BookingResponse, error) {
						assert.Equal(t, "Deluxe", req.RoomType)
						assert.Equal(t, 2, req.NumberOfRooms)

						return dto.BookingResponse{ID: "b-1", BookingReference: "BKLX0ABC123456", TotalAmount: 12000}, nil
					})
			},
			wantCode: http.StatusCreated,
			wantBody: `"message":"Booking created successfully"`,
		},
		{
			name:     "missing hotel",
			body:     `{"roomType":"Deluxe","checkInDate":"2030-05-01","checkOutDate":"2030-05-04","numberOfGuests":1}`,
			wantCode: http.StatusBadRequest,
		},
		{
			name:     "malformed json",
			body:     `{"hotelId":`,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "room type not offered",
			body: validBody,
			setup: func(svc *bookingMocks.MockBooking) {
				svc.EXPECT().Create(gomock.Any(), gomock.Any()).Return(dto.BookingResponse{}, failure.NotFound("Selected room type not found"))
			},
			wantCode: http.StatusNotFound,
			wantBody: `"message":"Selected room type not found"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, svc := newRouter(t)
			if tt.setup != nil {
				tt.setup(svc)
			}

			recorder := serve(router, http.MethodPost, "/bookings", tt.body)

			assert.Equal(t, tt.wantCode, recorder.Code)

			if tt.wantBody != "" {
				assert.Contains(t, recorder.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestHandler_GetBookings(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().GetAll(gomock.Any(), gomock.Any(), dto.BookingFilter{Status: "confirmed", Upcoming: true}).DoAndReturn(
		func(_ context.Context, params gDto.QueryParams, _ dto.BookingFilter) (dto.GetBookingsResponse, error) {
			assert.Equal(t, 2, params.Page)

			return dto.GetBookingsResponse{Bookings: []dto.BookingResponse{}}, nil
		})

	recorder := serve(router, http.MethodGet, "/bookings?status=confirmed&upcoming=true&page=2", "")

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), `"success":true`)
}

func TestHandler_CancelBooking(t *testing.T) {
	t.Run("without a body", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), dto.CancelBookingRequest{}, bookingID).Return(dto.BookingResponse{ID: bookingID, BookingStatus: "cancelled"}, nil)

		recorder := serve(router, http.MethodPost, "/bookings/"+bookingID+"/cancel", "")

		assert.Equal(t, http.StatusOK, recorder.Code)
		assert.Contains(t, recorder.Body.String(), "Booking cancelled successfully")
	})

	t.Run("with a reason", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), dto.CancelBookingRequest{Reason: "Plans changed"}, bookingID).Return(dto.BookingResponse{ID: bookingID}, nil)

		recorder := serve(router, http.MethodPost, "/bookings/"+bookingID+"/cancel", `{"reason":"Plans changed"}`)

		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	t.Run("inside the window", func(t *testing.T) {
		router, svc := newRouter(t)
		svc.EXPECT().Cancel(gomock.Any(), gomock.Any(), bookingID).Return(dto.BookingResponse{}, failure.BadRequestFromString("This booking cannot be cancelled."))

		recorder := serve(router, http.MethodPost, "/bookings/"+bookingID+"/cancel", "")

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		assert.JSONEq(t, `{"success":false,"message":"This booking cannot be cancelled."}`, recorder.Body.String())
	})
}

func TestHandler_UpdateBooking(t *testing.T) {
	router, svc := newRouter(t)

	svc.EXPECT().Update(gomock.Any(), gomock.Any(), bookingID).DoAndReturn(
		func(_ context.Context, req dto.UpdateBookingRequest, _ string) (dto.BookingResponse, error) {
			if assert.NotNil(t, req.Notes) {
				assert.Equal(t, "late arrival", *req.Notes)
			}

			return dto.BookingResponse{ID: bookingID}, nil
		})

	recorder := serve(router, http.MethodPut, "/bookings/"+bookingID, `{"notes":"late arrival"}`)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "Booking updated successfully")
}

func TestHandler_MalformedBookingID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		target string
		body   string
	}{
		{name: "get", method: http.MethodGet, target: "/bookings/not-a-uuid"},
		{name: "update", method: http.MethodPut, target: "/bookings/42", body: `{"notes":"late arrival"}`},
		{name: "cancel", method: http.MethodPost, target: "/bookings/BK123/cancel"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, _ := newRouter(t)

			recorder := serve(router, tt.method, tt.target, tt.body)

			assert.Equal(t, http.StatusNotFound, recorder.Code)
			assert.JSONEq(t, `{"success":false,"message":"Booking not found"}`, recorder.Body.String())
		})
	}
}
