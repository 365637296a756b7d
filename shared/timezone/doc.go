// Package timezone pins every wall-clock operation to the APP_TIMEZONE location.
//
// Booking dates are calendar days, so "today" and a bare YYYY-MM-DD value are
// both read in this location rather than in the host's local zone. The
// location is loaded from configuration on first use and falls back to UTC
// when the name is empty or unknown to the IANA database.
package timezone
