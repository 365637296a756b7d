package model

import "staybook/shared/model"

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID        = "id"
	FieldName      = "name"
	FieldIsActive  = "is_active"
	FieldCreatedAt = "created_at"
)

type Category struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	IsActive    bool   `db:"is_active"`
	model.Metadata
}

type Default struct {
	Name        string
	Description string
}

// Defaults is the catalog installed by the seed command.
var Defaults = []Default{
	{"Luxury Hotel", "High-end hotels with premium amenities, exceptional service, and elegant accommodations for discerning travelers."},
	{"Budget Hotel", "Affordable accommodations offering essential amenities and comfortable stays for budget-conscious travelers."},
	{"Resort", "Vacation properties with extensive facilities, recreational activities, and all-inclusive packages for leisure travelers."},
	{"Boutique Hotel", "Small, stylish hotels with unique character, personalized service, and distinctive design elements."},
	{"Business Hotel", "Hotels catering to business travelers with meeting facilities, conference rooms, and business center services."},
	{"Hostel", "Budget-friendly shared accommodations with dormitory-style rooms, perfect for backpackers and solo travelers."},
	{"Bed & Breakfast", "Cozy lodgings in private homes offering overnight accommodation and homemade breakfast in the morning."},
	{"Motel", "Roadside hotels designed for motorists, offering convenient parking and easy highway access."},
}
