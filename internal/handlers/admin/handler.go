package admin

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/admin/model/dto"
	"staybook/internal/domains/admin/service"
	"staybook/shared/constant"
	"staybook/shared/identity"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Admin
	otel    otel.Otel
}

func New(service service.Admin, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Post("/login", handler.Login)
		routerGroup.Post("/register", handler.Register)
		routerGroup.Get("/check-exists", handler.CheckExists)
		routerGroup.Post("/create", handler.Create)
		routerGroup.Get("/profile", handler.GetProfile)
		routerGroup.Get("/verify", handler.Verify)
	})
}

// Login authenticates an admin.
// @Summary Admin login
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login Request"
// @Success 200 {object} response.Data[dto.AuthResponse]
// @Failure 401 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/login [post]
func (handler *Handler) Login(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.Login")
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
		log.Warn().Err(err).Msg("admin login rejected")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "Login successful", res)
}

// Register creates the first admin. It is closed once any admin exists.
// @Summary Register the first admin
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Register Request"
// @Success 201 {object} response.Data[dto.AuthResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/register [post]
func (handler *Handler) Register(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.Register")
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
		log.Error().Err(err).Msg("failed to register admin")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusCreated, "Admin registered successfully", res)
}

// CheckExists reports whether registration is still open.
// @Summary Check whether an admin exists
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.ExistsResponse]
// @Router /v1/admin/check-exists [get]
func (handler *Handler) CheckExists(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.CheckExists")
	defer scope.End()

	res, err := handler.service.CheckExists(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to check admin existence")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Create is the legacy bootstrap endpoint. It refuses once an admin exists.
// @Summary Create an admin (bootstrap)
// @Tags Admin
// @Accept json
// @Produce json
// @Param request body dto.CreateRequest true "Create Request"
// @Success 201 {object} response.Data[dto.AdminResponse]
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Router /v1/admin/create [post]
func (handler *Handler) Create(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.Create")
	defer scope.End()

	req := dto.CreateRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create admin")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusCreated, "Admin created successfully", res)
}

// GetProfile returns the signed-in admin.
// @Summary Get admin profile
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[dto.AdminResponse]
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/admin/profile [get]
// @Security BearerAuth
func (handler *Handler) GetProfile(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.GetProfile")
	defer scope.End()

	caller, err := identity.Require(ctx)
	if err != nil {
		response.WithError(writer, err)

		return
	}

	res, err := handler.service.GetProfile(ctx, caller.ID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("admin_id", caller.ID).Msg("failed to get admin profile")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// Verify echoes the identity the token resolved to.
// @Summary Verify an admin token
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Data[identity.Identity]
// @Failure 401 {object} response.Error
// @Router /v1/admin/verify [get]
// @Security BearerAuth
func (handler *Handler) Verify(writer http.ResponseWriter, request *http.Request) {
	_, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".Admin.Verify")
	defer scope.End()

	caller, err := identity.Require(request.Context())
	if err != nil {
		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, caller)
}
