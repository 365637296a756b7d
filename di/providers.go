package di

import (
	"staybook/config"
	adminService "staybook/internal/domains/admin/service"
	customerService "staybook/internal/domains/customer/service"
	hotelModel "staybook/internal/domains/hotel/model"
	vendorService "staybook/internal/domains/vender/service"
	"staybook/permissions"
	"staybook/shared/identity"
)

// NewIdentityResolvers maps each token role to the service that owns its accounts.
func NewIdentityResolvers(customer customerService.Customer, vendor vendorService.Vendor, admin adminService.Admin) identity.Resolvers {
	return identity.Resolvers{
		identity.DomainCustomer: customer,
		identity.DomainVendor:   vendor,
		identity.DomainAdmin:    admin,
	}
}

func NewOwnershipPolicy(cfg *config.Config) hotelModel.OwnershipPolicy {
	return hotelModel.OwnershipPolicy{LegacyFallback: cfg.App.LegacyHotelFallback}
}

func NewPermissions() *permissions.PermissionData {
	return permissions.Get()
}
