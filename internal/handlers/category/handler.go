package category

import (
	"net/http"
	"staybook/infras/otel"
	"staybook/internal/domains/category/model/dto"
	"staybook/internal/domains/category/service"
	"staybook/shared"
	"staybook/shared/constant"
	"staybook/shared/validator"
	"staybook/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

const msgNotFound = "Category not found"

type Handler struct {
	service service.Category
	otel    otel.Otel
}

func New(service service.Category, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/categories", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetCategories)
		routerGroup.Get("/active", handler.GetActiveCategories)
		routerGroup.Post("/", handler.CreateCategory)
		routerGroup.Get("/{id}", handler.GetCategory)
		routerGroup.Put("/{id}", handler.UpdateCategory)
		routerGroup.Delete("/{id}", handler.DeleteCategory)
		routerGroup.Patch("/{id}/toggle-status", handler.ToggleStatus)
	})
}

// GetCategories lists every category, newest first.
// @Summary List categories
// @Tags Category
// @Produce json
// @Success 200 {object} response.Data[[]dto.CategoryResponse]
// @Failure 401 {object} response.Error
// @Router /v1/categories [get]
// @Security BearerAuth
func (handler *Handler) GetCategories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategories")
	defer scope.End()

	res, err := handler.service.GetAll(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get categories")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetActiveCategories lists active categories by name.
// @Summary List active categories
// @Tags Category
// @Produce json
// @Success 200 {object} response.Data[[]dto.CategoryResponse]
// @Router /v1/categories/active [get]
func (handler *Handler) GetActiveCategories(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetActiveCategories")
	defer scope.End()

	res, err := handler.service.GetActive(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get active categories")

		response.WithError(writer, err)

		return
	}

	response.WithJSON(writer, http.StatusOK, res)
}

// GetCategory returns one category.
// @Summary Get a category
// @Tags Category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Data[dto.CategoryResponse]
// @Failure 404 {object} response.Error
// @Router /v1/categories/{id} [get]
func (handler *Handler) GetCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCategory")
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

// CreateCategory adds a category. Names are unique regardless of case.
// @Summary Create a category
// @Tags Category
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Create Category Request"
// @Success 201 {object} response.Data[dto.CategoryResponse]
// @Failure 400 {object} response.Error
// @Router /v1/categories [post]
// @Security BearerAuth
func (handler *Handler) CreateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateCategory")
	defer scope.End()

	req := dto.CreateCategoryRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create category")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusCreated, "Category created successfully", res)
}

// UpdateCategory edits a category.
// @Summary Update a category
// @Tags Category
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Update Category Request"
// @Success 200 {object} response.Data[dto.CategoryResponse]
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/categories/{id} [put]
// @Security BearerAuth
func (handler *Handler) UpdateCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCategory")
	defer scope.End()

	id, err := shared.PathID(request, msgNotFound)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	req := dto.UpdateCategoryRequest{}

	if err = validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.Update(ctx, req, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category_id", id).Msg("failed to update category")

		response.WithError(writer, err)

		return
	}

	response.WithMessageAndJSON(writer, http.StatusOK, "Category updated successfully", res)
}

// DeleteCategory removes a category. Hotels keep their category id.
// @Summary Delete a category
// @Tags Category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Message
// @Failure 404 {object} response.Error
// @Router /v1/categories/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCategory(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCategory")
	defer scope.End()

	id, err := shared.PathID(request, msgNotFound)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	if err = handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category_id", id).Msg("failed to delete category")

		response.WithError(writer, err)

		return
	}

	response.WithMessage(writer, http.StatusOK, "Category deleted successfully")
}

// ToggleStatus flips a category between active and inactive.
// @Summary Toggle category status
// @Tags Category
// @Produce json
// @Param id path string true "Category ID"
// @Success 200 {object} response.Data[dto.CategoryResponse]
// @Failure 404 {object} response.Error
// @Router /v1/categories/{id}/toggle-status [patch]
// @Security BearerAuth
func (handler *Handler) ToggleStatus(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ToggleCategoryStatus")
	defer scope.End()

	id, err := shared.PathID(request, msgNotFound)
	if err != nil {
		scope.TraceError(err)

		response.WithError(writer, err)

		return
	}

	res, err := handler.service.ToggleStatus(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("category_id", id).Msg("failed to toggle category status")

		response.WithError(writer, err)

		return
	}

	message := "Category deactivated successfully"
	if res.IsActive {
		message = "Category activated successfully"
	}

	response.WithMessageAndJSON(writer, http.StatusOK, message, res)
}
