package vendorbooking

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/booking/model/dto"
	"staybook/internal/domains/booking/service"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.VendorBooking
	otel    otel.Otel
}

func New(service service.VendorBooking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/vendor/bookings", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetBookings)
		routerGroup.Get("/dashboard/stats", handler.GetDashboardStats)
	})
}

// GetBookings lists bookings across the vendor's hotels together with status counts.
// @Summary Get vendor bookings
// @Tags Vendor Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Param upcoming query bool false "Only stays that have not started"
// @Param hotelId query string false "Only this hotel"
// @Success 200 {object} response.Data[dto.VendorBookingsResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/vendor/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VendorBooking.GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.BookingFilter{}
	filter.FromRequest(request)

	res, err := handler.service.GetAll(ctx, queryParams, filter)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vendor bookings")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetDashboardStats aggregates bookings, revenue and occupancy for the vendor.
// @Summary Get vendor dashboard stats
// @Tags Vendor Booking
// @Produce json
// @Success 200 {object} response.Data[dto.DashboardResponse]
// @Failure 403 {object} response.Error
// @Router /v1/vendor/bookings/dashboard/stats [get]
// @Security BearerAuth
func (handler *Handler) GetDashboardStats(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VendorBooking.GetDashboardStats")
	defer scope.End()

	res, err := handler.service.Dashboard(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get vendor dashboard")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
