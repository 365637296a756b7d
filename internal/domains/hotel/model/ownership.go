package model

import (
	"context"
	gDto "staybook/shared/dto"
)

// OwnershipPolicy decides which hotels make up a vendor's portfolio.
//
// A vendor owns the hotels whose vendor_id is theirs. Hotels created before ownership was
// recorded have no vendor_id; with LegacyFallback set, a vendor that owns nothing is given
// those unowned hotels instead. Hotels owned by another vendor are never included.
type OwnershipPolicy struct {
	LegacyFallback bool
}

type HotelFinder func(ctx context.Context, filter gDto.FilterGroup) ([]Hotel, error)

func OwnedFilter(vendorID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: FieldVendorID, Value: vendorID, Operator: gDto.FilterOperatorEq, Table: TableName},
		},
	}
}

func UnownedFilter() gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{Field: FieldVendorID, Operator: gDto.FilterIsNull, Table: TableName},
		},
	}
}

func (p OwnershipPolicy) Portfolio(ctx context.Context, vendorID string, find HotelFinder) ([]Hotel, error) {
	owned, err := find(ctx, OwnedFilter(vendorID))
	if err != nil {
		return nil, err
	}

	if len(owned) > 0 || !p.LegacyFallback {
		return owned, nil
	}

	return find(ctx, UnownedFilter())
}

// HotelIDs returns the ids of hotels in portfolio order.
func HotelIDs(hotels []Hotel) []string {
	ids := make([]string, len(hotels))
	for i, hotel := range hotels {
		ids[i] = hotel.ID
	}

	return ids
}
