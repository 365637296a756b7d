package hotel

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/hotel/model/dto"
	"staybook/internal/domains/hotel/service"
	"staybook/shared"
	"staybook/shared/constant"
	gDto "staybook/shared/dto"
	"staybook/shared/failure"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgNotFound = "Hotel not found"

const (
	formBasicInfo        = "basicInfo"
	formContactInfo      = "contactInfo"
	formAmenities        = "amenities"
	formRoomTypes        = "roomTypes"
	formCategoryID       = "categoryId"
	formVendorID         = "vendorId"
	formMainImage        = "mainImage"
	formAdditionalImages = "additionalImages"
)

type Handler struct {
	service service.Hotel
	otel    otel.Otel
}

func New(service service.Hotel, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/hotels", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateHotel)
		routerGroup.Get("/", handler.GetHotels)
		routerGroup.Get("/{id}", handler.GetHotel)
		routerGroup.Put("/{id}", handler.UpdateHotel)
	})

	router.Get("/all-hotels", handler.GetAllHotels)
}

// CreateHotel registers a hotel with its images.
// @Summary Create a hotel
// @Description basicInfo, contactInfo, amenities and roomTypes are JSON encoded form fields.
// @Tags Hotel
// @Accept multipart/form-data
// @Produce json
// @Param basicInfo formData string true "Basic info JSON"
// @Param contactInfo formData string true "Contact info JSON"
// @Param amenities formData string false "Amenities JSON array"
// @Param roomTypes formData string true "Room types JSON array"
// @Param categoryId formData string false "Category ID"
// @Param vendorId formData string false "Owning vendor, admin callers only"
// @Param mainImage formData file false "Main image"
// @Param additionalImages formData file false "Additional images, up to 10"
// @Success 201 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/hotels [post]
// @Security BearerAuth
func (handler *Handler) CreateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateHotel")
	defer scope.End()

	if err := request.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("failed to parse multipart form")

		response.WithError(writer, failure.BadRequestFromString("Request must be a valid multipart form"))

		return
	}

	form := dto.CreateHotelForm{
		BasicInfo:        request.FormValue(formBasicInfo),
		ContactInfo:      request.FormValue(formContactInfo),
		Amenities:        request.FormValue(formAmenities),
		RoomTypes:        request.FormValue(formRoomTypes),
		CategoryID:       request.FormValue(formCategoryID),
		VendorID:         request.FormValue(formVendorID),
		AdditionalImages: request.MultipartForm.File[formAdditionalImages],
	}

	if mainImages := request.MultipartForm.File[formMainImage]; len(mainImages) > 0 {
		form.MainImage = mainImages[0]
	}

	req, err := form.Parse()
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err = validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create hotel")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusCreated, "Hotel created successfully", res)
}

// GetHotels lists hotels page by page.
// @Summary List hotels
// @Tags Hotel
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param city query string false "City contains"
// @Param name query string false "Hotel name contains"
// @Success 200 {object} response.Data[dto.GetHotelsResponse]
// @Router /v1/hotels [get]
func (handler *Handler) GetHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotels")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(request, true)

	filter := dto.HotelFilter{
		City: request.URL.Query().Get(constant.RequestParamCity),
		Name: request.URL.Query().Get(constant.RequestParamName),
	}

	res, err := handler.service.GetAll(ctx, queryParams, filter.Group())
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetAllHotels returns every hotel in one response.
// @Summary List all hotels (legacy)
// @Tags Hotel
// @Produce json
// @Success 200 {object} response.Data[[]dto.HotelResponse]
// @Router /v1/all-hotels [get]
func (handler *Handler) GetAllHotels(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAllHotels")
	defer scope.End()

	res, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to list hotels")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetHotel returns one hotel.
// @Summary Get a hotel
// @Tags Hotel
// @Produce json
// @Param id path string true "Hotel ID"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{id} [get]
func (handler *Handler) GetHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetHotel")
	defer scope.End()

	id, err := shared.PathID(request, msgNotFound)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// UpdateHotel patches a hotel. Only its vendor or an admin may do so.
// @Summary Update a hotel
// @Tags Hotel
// @Accept json
// @Produce json
// @Param id path string true "Hotel ID"
// @Param request body dto.UpdateHotelRequest true "Hotel patch"
// @Success 200 {object} response.Data[dto.HotelResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/hotels/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateHotel(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateHotel")
	defer scope.End()

	id, err := shared.PathID(request, msgNotFound)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateHotelRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("hotel_id", id).Msg("failed to update hotel")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "Hotel updated successfully", res)
}
