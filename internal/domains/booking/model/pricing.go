package model

import (
	"math"
	"time"
)

const millisPerDay = 24 * 60 * 60 * 1000

// Nights counts started calendar days between check-in and check-out.
func Nights(checkIn, checkOut time.Time) int {
	return int(math.Ceil(float64(checkOut.Sub(checkIn).Milliseconds()) / millisPerDay))
}

// Total is the stay price. Fewer than one room is billed as one.
func Total(pricePerNight float64, nights, rooms int) float64 {
	return pricePerNight * float64(nights) * float64(max(rooms, 1))
}

// OccupancyRate is the share of declared inventory held by current bookings, as a percentage
// rounded to one decimal. An empty inventory has no occupancy.
func OccupancyRate(occupiedRooms, inventory int) float64 {
	if inventory <= 0 {
		return 0
	}

	return math.Round(float64(occupiedRooms)/float64(inventory)*1000) / 10
}
