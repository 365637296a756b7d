package router

import (
	"staybook/internal/handlers/admin"
	"staybook/internal/handlers/auth"
	"staybook/internal/handlers/booking"
	"staybook/internal/handlers/category"
	"staybook/internal/handlers/customer"
	"staybook/internal/handlers/hotel"
	"staybook/internal/handlers/vender"
	"staybook/internal/handlers/vendorbooking"
	"staybook/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth          auth.Handler
	Customer      customer.Handler
	Vendor        vender.Handler
	Admin         admin.Handler
	Category      category.Handler
	Hotel         hotel.Handler
	Booking       booking.Handler
	VendorBooking vendorbooking.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Auth           middleware.Auth
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		routerGroup.Use(r.Auth.Auth)

		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Customer.Router(routerGroup)
		r.DomainHandlers.Vendor.Router(routerGroup)
		r.DomainHandlers.Admin.Router(routerGroup)
		r.DomainHandlers.Category.Router(routerGroup)
		r.DomainHandlers.Hotel.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.VendorBooking.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, auth middleware.Auth) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Auth:           auth,
	}
}
