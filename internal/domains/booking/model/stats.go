package model

import (
	"fmt"
	"time"
)

// StatusSummary is one row of a bookings aggregate grouped by booking status.
type StatusSummary struct {
	Status   BookingStatus `db:"booking_status"`
	Bookings int           `db:"bookings"`
	Revenue  float64       `db:"revenue"`
	Rooms    int           `db:"rooms"`
}

type Summaries []StatusSummary

func (s Summaries) Bookings() (total int) {
	for _, row := range s {
		total += row.Bookings
	}

	return total
}

// Revenue sums total_amount of paid bookings.
func (s Summaries) Revenue() (total float64) {
	for _, row := range s {
		total += row.Revenue
	}

	return total
}

func (s Summaries) Rooms() (total int) {
	for _, row := range s {
		total += row.Rooms
	}

	return total
}

func (s Summaries) Count(status BookingStatus) int {
	for _, row := range s {
		if row.Status == status {
			return row.Bookings
		}
	}

	return 0
}

// TimeAgo renders the age of an event the way the vendor dashboard shows it.
func TimeAgo(now, at time.Time) string {
	hours := int(now.Sub(at).Hours())

	switch {
	case hours < 1:
		return "Just now"
	case hours < 24:
		return fmt.Sprintf("%d hours ago", hours)
	default:
		return fmt.Sprintf("%d days ago", hours/24)
	}
}
