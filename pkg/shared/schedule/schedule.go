// Package schedule normalizes raw query inputs (time-of-day, day indicator,
// coordinates) into the canonical form the schedule store is queried with.
package schedule

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

// ValidationError marks malformed client input, reported immediately and never retried
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func newValidationError(format string, args ...interface{}) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// IsValidationError check given error for mapping to 4xx response
func IsValidationError(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}

var (
	clockPattern    = regexp.MustCompile(`^\d{1,2}:\d{2}$`)
	bareHourPattern = regexp.MustCompile(`^\d{1,2}$`)
)

// NormalizeClock validate and normalize a time-of-day string to canonical "HH:mm".
// Accepted shapes: "HH:mm" as is, "H:mm" zero padded, bare 1-2 digit hour to "HH:00".
// Minutes must always be two digits.
func NormalizeClock(raw string) (string, error) {
	raw = strings.TrimSpace(raw)

	switch {
	case clockPattern.MatchString(raw):
		parts := strings.SplitN(raw, ":", 2)
		hour, _ := strconv.Atoi(parts[0])
		minute, _ := strconv.Atoi(parts[1])
		if hour > 23 || minute > 59 {
			return "", newValidationError("time %q out of range, expected hours 00-23 and minutes 00-59", raw)
		}
		return fmt.Sprintf("%02d:%02d", hour, minute), nil

	case bareHourPattern.MatchString(raw):
		hour, _ := strconv.Atoi(raw)
		if hour > 23 {
			return "", newValidationError("time %q out of range, expected hours 00-23", raw)
		}
		return fmt.Sprintf("%02d:00", hour), nil

	default:
		return "", newValidationError("wrong time format %q, correct: HH:mm", raw)
	}
}

// ResolveDay map an optional day indicator to the binary mass day class plus the
// full day of week (0 = Sunday) used by recurring confession matching.
// Absent or 0 means Sunday.
func ResolveDay(day *int) (dayClass string, dayOfWeek int) {
	if day == nil || *day == 0 {
		return "sunday", 0
	}
	return "weekday", ((*day % 7) + 7) % 7
}

// rangeOperators supported on the time query param, e.g. time[gte]=09:00
var rangeOperators = []string{"gte", "gt", "lte", "lt"}

// TimeFilter canonical time-of-day filter: an exact value, or range bounds keyed
// by operator. Zero value means no time constraint.
type TimeFilter struct {
	Eq     string
	Bounds map[string]string
}

// IsZero report whether no time constraint was supplied
func (f TimeFilter) IsZero() bool {
	return f.Eq == "" && len(f.Bounds) == 0
}

// EffectiveTime single time-of-day driving the confession window comparisons:
// the exact value, or the first supplied range bound
func (f TimeFilter) EffectiveTime() string {
	if f.Eq != "" {
		return f.Eq
	}
	for _, op := range rangeOperators {
		if v, ok := f.Bounds[op]; ok {
			return v
		}
	}
	return ""
}

// ParseTimeFilter build a TimeFilter from url query values, accepting either a
// plain "time" param or "time[op]" range params. Each bound is normalized
// independently and keeps its operator tag.
func ParseTimeFilter(query url.Values) (filter TimeFilter, err error) {
	if raw := query.Get("time"); raw != "" {
		filter.Eq, err = NormalizeClock(raw)
		return filter, err
	}

	for _, op := range rangeOperators {
		raw := query.Get("time[" + op + "]")
		if raw == "" {
			continue
		}
		normalized, err := NormalizeClock(raw)
		if err != nil {
			return filter, err
		}
		if filter.Bounds == nil {
			filter.Bounds = make(map[string]string, 2)
		}
		filter.Bounds[op] = normalized
	}
	return filter, nil
}

// ParseCoordinates parse a "lat,lng" pair, returned in (lng, lat) order as
// stored in GeoJSON
func ParseCoordinates(latlng string) (lng, lat float64, err error) {
	parts := strings.Split(latlng, ",")
	if len(parts) != 2 {
		return 0, 0, newValidationError("please provide latitude and longitude in the format lat,lng")
	}

	lat, latErr := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	lng, lngErr := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if latErr != nil || lngErr != nil {
		return 0, 0, newValidationError("please provide correct coordinates, containing only numbers")
	}

	return lng, lat, nil
}
