package vender

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/vender/model/dto"
	"staybook/internal/domains/vender/service"
	"staybook/shared/constant"
	"staybook/shared/identity"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Vendor
	otel    otel.Otel
}

func New(service service.Vendor, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router mounts the vendor account routes. The path keeps the "vender" spelling existing clients use.
func (handler *Handler) Router(router chi.Router) {
	router.Route("/vender", func(routerGroup chi.Router) {
		routerGroup.Post("/register", handler.Register)
		routerGroup.Post("/login", handler.Login)
		routerGroup.Get("/profile", handler.GetProfile)
	})
}

// Register creates a vendor account.
// @Summary Register a vendor
// @Tags Vendor
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Router /v1/vender/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Vendor.Register")
	defer scope.End()

	req := dto.RegisterRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Register(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register vendor")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusCreated, "Vendor registered successfully", res)
}

// Login authenticates a vendor.
// @Summary Vendor login
// @Tags Vendor
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/vender/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Vendor.Login")
	defer scope.End()

	req := dto.LoginRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Login(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Warn().Err(err).Msg("vendor login rejected")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "Login successful", res)
}

// GetProfile returns the signed-in vendor.
// @Summary Get vendor profile
// @Tags Vendor
// @Produce json
// @Success 200 {object} response.Data[dto.VendorResponse]
// @Failure 401 {object} response.Error
// @Router /v1/vender/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Vendor.GetProfile")
	defer scope.End()

	caller, err := identity.Require(ctx)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetProfile(ctx, caller.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("vendor_id", caller.ID).Msg("failed to get vendor profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}
