package timezone

import (
	"staybook/config"
	"staybook/shared/constant"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

const fallbackZone = "UTC"

var (
	loadOnce    sync.Once
	appLocation *time.Location
)

// Location returns the application timezone.
func Location() *time.Location {
	loadOnce.Do(func() {
		appLocation = load(config.Get().App.Timezone)
	})

	return appLocation
}

func load(name string) *time.Location {
	if name == "" {
		log.Warn().Str("fallback", fallbackZone).Msg("APP_TIMEZONE is not set")

		return time.UTC
	}

	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Error().Err(err).Str("timezone", name).Str("fallback", fallbackZone).
			Msg("Unknown APP_TIMEZONE, expected an IANA name such as Asia/Kolkata")

		return time.UTC
	}

	log.Info().Str("timezone", loc.String()).Msg("Application timezone loaded")

	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

func ToAppTime(t time.Time) time.Time {
	return t.In(Location())
}

func Format(t time.Time, layout string) string {
	return ToAppTime(t).Format(layout)
}

// Parse reads value in the application timezone when the layout carries no offset.
func Parse(layout, value string) (time.Time, error) {
	return time.ParseInLocation(layout, value, Location()) //nolint:wrapcheck
}

// ParseDate accepts a YYYY-MM-DD calendar date or a full RFC 3339 timestamp. Calendar dates
// are UTC midnight, so the distance between two of them is always a whole number of days
// whatever the application timezone does with its clocks.
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)

	if date, err := time.Parse(constant.DateOnlyFormat, value); err == nil {
		return date, nil
	}

	return time.Parse(constant.DateFormat, value) //nolint:wrapcheck
}

// CalendarDate returns the day t falls on in its own location, as UTC midnight.
func CalendarDate(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
